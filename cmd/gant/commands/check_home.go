package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/gant/internal/ui/output"
	"go.trai.ch/gant/internal/ui/style"
)

func (c *CLI) newCheckHomeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-home <path>",
		Short: "Check that a directory is a Groovy home with Gant installed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := c.app.CheckHome(args[0])
			if !res.OK() {
				return res.Err
			}
			out := output.New(cmd.OutOrStdout())
			_, _ = fmt.Fprintln(out, output.Colorize(out, style.Check+" "+args[0]+" is a Groovy home with Gant", string(style.Green)))
			return nil
		},
	}
}
