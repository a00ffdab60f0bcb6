package cmd

import (
	"fmt"
	"math"

	"github.com/ThatOtherAndrew/Driftline/internal/camera"
	"github.com/ThatOtherAndrew/Driftline/internal/config"
	"github.com/ThatOtherAndrew/Driftline/internal/models"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the camera setup and starting geometry",
	Run:   printInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func printInfo(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	cam := camera.Default()
	eye := cam.Eye()

	fmt.Fprintf(out, "screen:       %dx%d\n", config.ScreenWidth, config.ScreenHeight)
	fmt.Fprintf(out, "fov:          %.1f°\n", float64(config.FOV)*180/math.Pi)
	fmt.Fprintf(out, "eye distance: %.3f\n", cam.EyeDistance())
	fmt.Fprintf(out, "eye:          %.3f %.3f %.3f\n", eye.X(), eye.Y(), eye.Z())
	fmt.Fprintf(out, "zFar:         %.3f\n", cam.FarPlane())
	fmt.Fprintf(out, "speed:        %.1f units/s\n", config.Speed)
	fmt.Fprintln(out, "line:")
	for _, v := range models.NewLine() {
		fmt.Fprintf(out, "  %g %g %g\n", v.X(), v.Y(), v.Z())
	}
}
