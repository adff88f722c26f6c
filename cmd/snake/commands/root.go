package commands

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/battlesnakeio/snake/config"
	"github.com/battlesnakeio/snake/version"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var rootCmd = &cobra.Command{
	Use:     "snake",
	Short:   "snake plays the classic snake game in your terminal",
	Version: version.Version,
	RunE: func(c *cobra.Command, args []string) error {
		return playCmd.RunE(c, args)
	},
}

var (
	cfg        = config.Load()
	redrawRate = float64(cfg.RedrawRate)
	logOutput  *os.File
)

func init() {
	rootCmd.PersistentPreRunE = setup

	flags := rootCmd.PersistentFlags()
	flags.IntVarP(&cfg.GridSize, "grid-size", "g", cfg.GridSize, "number of cells per side of the board")
	flags.DurationVarP(&cfg.TickInterval, "tick", "t", cfg.TickInterval, "time between two moves of the snake")
	flags.StringVarP(&cfg.Backend, "backend", "b", cfg.Backend, "high score backend, as one of: [inmem, file, redis, sql]")
	flags.StringVarP(&cfg.BackendArgs, "backend-args", "a", cfg.BackendArgs, "options to pass to the backend being used")
	flags.StringVar(&cfg.HighScoreKey, "key", cfg.HighScoreKey, "key the high score is stored under")
	flags.Float64Var(&redrawRate, "redraw-rate", redrawRate, "maximum screen redraws per second on terminal resize")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level, as one of: [debug, info, warn, error]")
	flags.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "file to write logs to, logs are discarded while playing when unset")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(highScoreCmd)
}

// Execute runs the root command
func Execute() {
	defer closeLog()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func setup(c *cobra.Command, args []string) error {
	cfg.RedrawRate = rate.Limit(redrawRate)
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := log.ParseLevel(cfg.LogLevel)
	log.SetLevel(level)

	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		logOutput = f
		log.SetOutput(f)
	case c == rootCmd || c == playCmd:
		// The terminal belongs to the game.
		log.SetOutput(ioutil.Discard)
	default:
		log.SetOutput(os.Stderr)
	}
	return nil
}

func closeLog() {
	if logOutput != nil {
		logOutput.Close() // nolint: errcheck
		logOutput = nil
	}
}
