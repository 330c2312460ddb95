package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"caverna/config"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// state is shared by every command of one invocation.
type state struct {
	configFile string
	logLevel   string
	app        config.App
}

func NewRootCommand() *cobra.Command {
	s := &state{}
	rootCmd := &cobra.Command{
		Use:   "caverna",
		Short: "Caverna simulation engine",
		Long: `Plays two player Caverna games between heuristic strategies, lets you step
through a saved game by hand and tunes strategies through tournaments.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			app, err := config.Load(s.configFile)
			if err != nil {
				return err
			}
			s.app = app
			level := app.LogLevel
			if cmd.Flags().Changed("log-level") {
				level = s.logLevel
			}
			return setupLogging(cmd.ErrOrStderr(), level)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&s.configFile, "config", "c", config.DefaultFile, "Path to YAML config file")
	rootCmd.PersistentFlags().StringVarP(&s.logLevel, "log-level", "l", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newMovesCommand(s),
		newGameCommand(s),
		newSimulateCommand(s),
		newTournamentCommand(s),
		newEvolveCommand(s),
		newBalanceCommand(s),
	)
	return rootCmd
}

func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func setupLogging(w io.Writer, level string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"})
	return nil
}
