package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/gant/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [steps...]",
		Short: "Run the named build steps",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}
			file, _ := cmd.Flags().GetString("file")
			dir, _ := cmd.Flags().GetString("dir")
			defines, _ := cmd.Flags().GetStringArray("define")
			parallel, _ := cmd.Flags().GetInt("parallel")
			timeout, _ := cmd.Flags().GetDuration("timeout")
			watch, _ := cmd.Flags().GetBool("watch-installations")
			metricsFile, _ := cmd.Flags().GetString("metrics-file")
			outputMode, _ := cmd.Flags().GetString("output-mode")
			ci, _ := cmd.Flags().GetBool("ci")

			if ci {
				outputMode = "plain"
			}

			return c.app.Run(cmd.Context(), args, app.RunOptions{
				File:               file,
				Dir:                dir,
				Variables:          defines,
				Parallel:           parallel,
				Timeout:            timeout,
				WatchInstallations: watch,
				MetricsFile:        metricsFile,
				OutputMode:         outputMode,
			})
		},
	}
	cmd.Flags().StringP("file", "f", "", "Step file, or a directory to search for gant.yaml")
	cmd.Flags().StringP("dir", "C", "", "Working directory of the Gant process")
	cmd.Flags().StringArrayP("define", "D", nil, "Build variable as key=value, passed to Gant as -Dkey=value")
	cmd.Flags().IntP("parallel", "p", 1, "Number of steps to run at once")
	cmd.Flags().Duration("timeout", 0, "Abort the run after this duration")
	cmd.Flags().Bool("watch-installations", false, "Reload the installation store when it changes")
	cmd.Flags().String("metrics-file", "", "Write step metrics in Prometheus textfile format to this path")
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, tty, or plain")
	cmd.Flags().Bool("ci", false, "Use plain output (shorthand for --output-mode=plain)")
	return cmd
}
