package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.trai.ch/gant/internal/core/domain"
)

func (c *CLI) newInstallationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "installations",
		Aliases: []string{"inst"},
		Short:   "Manage the configured Gant installations",
	}

	cmd.AddCommand(c.newInstallationsListCmd())
	cmd.AddCommand(c.newInstallationsAddCmd())
	cmd.AddCommand(c.newInstallationsRemoveCmd())

	return cmd
}

func (c *CLI) newInstallationsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the configured installations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			installations, err := c.app.Installations()
			if err != nil {
				return err
			}
			if len(installations) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no installations configured")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "NAME\tHOME\tJAVA\tANT\tSCRIPTS\tEXECUTABLE")
			for _, inst := range installations {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					inst.Name,
					orDash(inst.ToolHome),
					orDash(inst.JavaHome),
					orDash(inst.AntHome),
					orDash(inst.ScriptsHome),
					inst.ExecutablePath(),
				)
			}
			return w.Flush()
		},
	}
}

func (c *CLI) newInstallationsAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add or replace an installation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			home, _ := cmd.Flags().GetString("home")
			java, _ := cmd.Flags().GetString("java-home")
			ant, _ := cmd.Flags().GetString("ant-home")
			scripts, _ := cmd.Flags().GetString("scripts-home")
			execName, _ := cmd.Flags().GetString("exec-name")

			return c.app.AddInstallation(domain.Installation{
				Name:        args[0],
				ToolHome:    home,
				JavaHome:    java,
				AntHome:     ant,
				ScriptsHome: scripts,
				ExecName:    execName,
			})
		},
	}
	cmd.Flags().String("home", "", "Groovy home that contains bin/gant")
	cmd.Flags().String("java-home", "", "Java home exported as JAVA_HOME")
	cmd.Flags().String("ant-home", "", "Ant home exported as ANT_HOME")
	cmd.Flags().String("scripts-home", "", "Gant scripts directory passed with -P and -L")
	cmd.Flags().String("exec-name", "", "Executable name inside <home>/bin")
	return cmd
}

func (c *CLI) newInstallationsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove an installation",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return c.app.RemoveInstallation(args[0])
		},
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
