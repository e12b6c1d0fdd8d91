package workshop

import "strings"

const redactMask = "***"

// BuildArgs assembles the steamcmd arguments: install dir, login, one
// download directive per mod and the terminating +quit.
func BuildArgs(installDir, gameID string, modIDs []string, username, password string) []string {
	args := []string{
		"+force_install_dir", installDir,
		"+login", username, password,
	}
	for _, modID := range modIDs {
		args = append(args, "+workshop_download_item", gameID, modID, "validate")
	}
	return append(args, "+quit")
}

// Redact joins the command line and masks every occurrence of the
// non-empty credentials.
func Redact(tool string, args []string, username, password string) string {
	return mask(strings.Join(append([]string{tool}, args...), " "), username, password)
}

func mask(s, username, password string) string {
	if username != "" {
		s = strings.ReplaceAll(s, username, redactMask)
	}
	if password != "" {
		s = strings.ReplaceAll(s, password, redactMask)
	}
	return s
}
