package cmd

import (
	"fmt"
	"runtime"

	"github.com/ThatOtherAndrew/Driftline/internal/config"
	"github.com/ThatOtherAndrew/Driftline/internal/draw"
	"github.com/ThatOtherAndrew/Driftline/internal/opengl"
	"github.com/ThatOtherAndrew/Driftline/pkg/window"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the window and run the animation loop",
	RunE:  Run,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runtime.LockOSThread()
}

func Run(cmd *cobra.Command, args []string) error {
	win, err := window.New(config.ScreenWidth, config.ScreenHeight, config.Title, config.GLMajor, config.GLMinor)
	if err != nil {
		return &InitError{err}
	}
	defer win.Destroy()

	if err := opengl.Load(); err != nil {
		return &InitError{fmt.Errorf("failed to load OpenGL functions: %w", err)}
	}
	log.Info().Str("version", opengl.Version()).Msg("OpenGL context ready")

	scene := draw.Setup(opengl.Native{}, log.Logger)
	defer scene.Close()

	width, height := win.FramebufferSize()
	scene.Resize(width, height)
	win.OnResize(scene.Resize)

	frames := scene.Run(win)
	log.Info().Int("frames", frames).Msg("Window closed")

	return nil
}
