package workshop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/tanq16/steamwd/internal/config"
	"github.com/tanq16/steamwd/internal/output"
	"github.com/tanq16/steamwd/internal/utils"
)

type Job struct {
	ID          string
	GameID      string
	ModIDs      []string
	Credentials config.Credentials
	Verbose     bool
}

func NewJob(gameID string, modIDs []string, creds config.Credentials, verbose bool) Job {
	return Job{
		ID:          uuid.NewString(),
		GameID:      gameID,
		ModIDs:      modIDs,
		Credentials: creds,
		Verbose:     verbose,
	}
}

type ModStatus struct {
	ModID      string
	Path       string
	Downloaded bool
}

// Downloader drives steamcmd for workshop downloads into Layout.
type Downloader struct {
	Tool   string
	Layout Layout
	Runner Runner
	Stdin  io.Reader
	Stderr io.Writer
}

func NewDownloader(tool, workDir string) *Downloader {
	return &Downloader{
		Tool:   tool,
		Layout: Layout{Root: workDir},
		Runner: ExecRunner{},
		Stdin:  os.Stdin,
		Stderr: os.Stderr,
	}
}

// Bootstrap runs "steamcmd +quit" so steamcmd can update itself before the
// real download. Its result is ignored.
func (d *Downloader) Bootstrap(ctx context.Context) {
	err := d.Runner.Run(ctx, Invocation{
		Path:   d.Tool,
		Args:   []string{"+quit"},
		Stdin:  d.Stdin,
		Stdout: io.Discard,
		Stderr: d.Stderr,
	})
	if err != nil {
		log.Debug().Str("op", "workshop/bootstrap").Err(err).Msg("steamcmd warm-up failed")
	}
}

// Download fetches every mod of the job in a single steamcmd run and reports
// per mod whether its content directory now exists. A failing steamcmd run is
// reported but not returned; only directory setup errors and cancellation are.
func (d *Downloader) Download(ctx context.Context, job Job) error {
	logger := log.With().Str("op", "workshop/download").Str("job", job.ID).Str("game", job.GameID).Logger()
	creds := job.Credentials

	if job.Verbose {
		output.PrintPending("Setting up download directories...")
	}
	if err := d.Layout.Ensure(job.GameID); err != nil {
		logger.Error().Err(err).Msg("Error preparing workshop directories")
		return err
	}

	args := BuildArgs(d.Layout.Root, job.GameID, job.ModIDs, creds.Username, creds.Password)
	if job.Verbose {
		output.PrintPending("Assembling command and list")
		output.PrintStream(strings.Join(job.ModIDs, " "))
		output.PrintDetail("> " + Redact(d.Tool, args, creds.Username, creds.Password))
	}
	logger.Debug().Int("mods", len(job.ModIDs)).Msg("Executing steamcmd")

	output.PrintInfo("Connecting and downloading workshop mods...")
	inv := Invocation{
		Path:   d.Tool,
		Args:   args,
		Stdin:  d.Stdin,
		Stderr: d.Stderr,
	}
	if job.Verbose {
		inv.Stdout = output.Writer()
	} else {
		output.PrintWarning("NOTE: If it locks up here your Steam Guard code will be required below:")
		inv.StreamFunc = func(line string) {
			logger.Debug().Str("src", "steamcmd").Msg(mask(line, creds.Username, creds.Password))
		}
	}

	if err := d.Runner.Run(ctx, inv); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			logger.Debug().Err(err).Msg("steamcmd interrupted")
			return ctxErr
		}
		logger.Error().Err(err).Msg("steamcmd failed")
		output.PrintError(fmt.Sprintf("Failed to download mods: %v", err))
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	output.PrintBlank()
	for _, status := range d.Verify(job.GameID, job.ModIDs) {
		if status.Downloaded {
			output.PrintSuccess(fmt.Sprintf("%s Mod %s successfully downloaded", output.StyleSymbols["pass"], status.ModID))
		} else {
			output.PrintError(fmt.Sprintf("%s Mod %s has failed to be downloaded", output.StyleSymbols["fail"], status.ModID))
		}
	}
	return nil
}

// Verify reports, per mod, whether content/<gameid>/<modid> exists. It says
// nothing about completeness or version of the files inside.
func (d *Downloader) Verify(gameID string, modIDs []string) []ModStatus {
	statuses := make([]ModStatus, 0, len(modIDs))
	for _, modID := range modIDs {
		path := d.Layout.ModDir(gameID, modID)
		statuses = append(statuses, ModStatus{
			ModID:      modID,
			Path:       path,
			Downloaded: utils.DirExists(path),
		})
	}
	return statuses
}

// IsCanceled reports whether err came from an interrupted run.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled)
}
