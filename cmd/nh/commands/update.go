package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/nh/internal/app"
)

func (c *CLI) newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [dir]",
		Short: "Update the lock file of every flake below a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			return c.app.Update(cmd.Context(), dirArg(args), app.UpdateOptions{
				DryRun: dryRun,
			})
		},
	}
	cmd.Flags().BoolP("dry-run", "n", false, "Print the update commands without running them")
	return cmd
}
