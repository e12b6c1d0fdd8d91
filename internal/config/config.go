package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Credentials are passed to steamcmd verbatim. Empty values are allowed.
type Credentials struct {
	Username string
	Password string
}

// fileConfig mirrors the config file. Pointers distinguish an absent key
// from a key set to the empty string.
type fileConfig struct {
	Username *string `json:"username" yaml:"username"`
	Password *string `json:"password" yaml:"password"`
}

// Resolve merges credentials: non-empty flag values win over config file
// fields, which win over the empty defaults. An empty path skips the file.
func Resolve(path, flagUser, flagPass string) (Credentials, error) {
	var creds Credentials
	if path != "" {
		fc, err := load(path)
		if err != nil {
			return Credentials{}, err
		}
		if fc.Username != nil {
			creds.Username = *fc.Username
		}
		if fc.Password != nil {
			creds.Password = *fc.Password
		}
	}
	if flagUser != "" {
		creds.Username = flagUser
	}
	if flagPass != "" {
		creds.Password = flagPass
	}
	log.Debug().Str("op", "config/resolve").Bool("username", creds.Username != "").Bool("password", creds.Password != "").Msg("credentials resolved")
	return creds, nil
}

// load reads a JSON config file, or YAML when the extension says so.
func load(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error parsing YAML config %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error parsing JSON config %s: %w", path, err)
		}
	}
	return &fc, nil
}
