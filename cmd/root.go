package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/tanq16/steamwd/internal/interrupt"
	"github.com/tanq16/steamwd/internal/output"
	"github.com/tanq16/steamwd/internal/tools"
	"github.com/tanq16/steamwd/internal/utils"
	"github.com/tanq16/steamwd/internal/workshop"
)

var (
	username   string
	password   string
	configPath string
	gameID     string
	modList    []string
	workDir    string
	verbose    bool
	update     bool
	debug      bool
)

var SteamwdVersion = "dev"

var rootCmd = &cobra.Command{
	Use:   "steamwd -g GAMEID -l MODID [MODID...] [-u USER] [-p PASS] [-C CONFIG]",
	Short: "Download Steam Workshop mods through steamcmd",
	Long: `steamwd logs into Steam with steamcmd and downloads the listed workshop
items for a game into <workdir>/steamapps/workshop/content/<gameid>/<modid>.`,
	Version: SteamwdVersion,
	Args:    cobra.ArbitraryArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		utils.InitLogger(debug)
	},
	Run: func(cmd *cobra.Command, args []string) {
		opts := options{
			tool:       tools.SteamCMD,
			username:   username,
			password:   password,
			configPath: configPath,
			gameID:     gameID,
			modIDs:     append(append([]string{}, modList...), args...),
			workDir:    workDir,
			verbose:    verbose,
			update:     update,
		}
		if len(opts.modIDs) == 0 {
			output.PrintError("Error: at least one workshop mod ID is required (--list)")
			os.Exit(1)
		}
		if opts.workDir == "" {
			dir, err := utils.DefaultWorkDir()
			if err != nil {
				output.PrintError(err.Error())
				os.Exit(1)
			}
			opts.workDir = dir
		}

		ctx, stop := interrupt.TerminationContext(cmd.Context())
		defer stop()
		if err := run(ctx, opts); err != nil {
			stop()
			if workshop.IsCanceled(err) {
				output.PrintBlank()
				output.PrintError("Aborted")
			} else {
				log.Debug().Str("op", "cmd/root").Err(err).Msg("run failed")
			}
			os.Exit(1)
		}
	},
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&username, "username", "u", "", "Steam username")
	rootCmd.Flags().StringVarP(&password, "password", "p", "", "Steam password")
	rootCmd.Flags().StringVarP(&configPath, "config", "C", "", "JSON (or YAML) file with username and password")
	rootCmd.Flags().StringVarP(&gameID, "gameid", "g", "", "Steam game ID")
	rootCmd.Flags().StringSliceVarP(&modList, "list", "l", []string{}, "Workshop mod IDs (repeatable, comma separated, or trailing arguments)")
	rootCmd.MarkFlagRequired("gameid")

	// flags without shorthand
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "Print the steamcmd command (credentials masked) and its output")
	rootCmd.Flags().StringVar(&workDir, "workdir", "", "steamcmd install dir (default \"out\" next to the binary)")
	rootCmd.Flags().BoolVar(&update, "update", false, "Run steamcmd once before downloading so it can update itself")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}
