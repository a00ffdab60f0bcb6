package cmd

import (
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:           "driftline",
	Short:         "Animate a line across an OpenGL window",
	RunE:          Run,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(debug)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log debug output")
}

func setupLogging(debug bool) {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

// InitError marks failures that happen before the first frame: no window
// system, no window or no OpenGL functions.
type InitError struct {
	err error
}

func (e *InitError) Error() string {
	return e.err.Error()
}

func (e *InitError) Unwrap() error {
	return e.err
}

func FailureMessage(err error) string {
	var initErr *InitError
	if errors.As(err, &initErr) {
		return "Initialisation failed"
	}
	return "driftline failed"
}

func Execute() error {
	return rootCmd.Execute()
}
