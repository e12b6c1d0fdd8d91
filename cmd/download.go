package cmd

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/tanq16/steamwd/internal/config"
	"github.com/tanq16/steamwd/internal/output"
	"github.com/tanq16/steamwd/internal/tools"
	"github.com/tanq16/steamwd/internal/workshop"
)

type options struct {
	tool       string
	username   string
	password   string
	configPath string
	gameID     string
	modIDs     []string
	workDir    string
	verbose    bool
	update     bool
}

// run is the whole pipeline: check tools, resolve credentials, then download.
// Every returned error means exit status 1; failed mods do not produce one.
func run(ctx context.Context, opts options) error {
	results, err := tools.Check([]string{opts.tool})
	if err != nil {
		output.PrintError("Error: Vital tools are missing")
		return err
	}

	creds, err := config.Resolve(opts.configPath, opts.username, opts.password)
	if err != nil {
		output.PrintError(err.Error())
		return err
	}

	d := workshop.NewDownloader(results[0].Path, opts.workDir)
	if opts.update {
		d.Bootstrap(ctx)
		if err := ctx.Err(); err != nil {
			return err
		}
	}

	job := workshop.NewJob(opts.gameID, opts.modIDs, creds, opts.verbose)
	log.Debug().Str("op", "cmd/run").Str("job", job.ID).Str("workdir", opts.workDir).Msgf("Downloading %d mods for game %s", len(job.ModIDs), job.GameID)
	if err := d.Download(ctx, job); err != nil {
		if !workshop.IsCanceled(err) {
			output.PrintError(err.Error())
		}
		return err
	}
	return nil
}
