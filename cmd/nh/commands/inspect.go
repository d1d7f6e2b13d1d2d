package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <path>",
		Short: "Classify a single package definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			json, _ := cmd.Flags().GetBool("json")
			return c.app.Inspect(args[0], json)
		},
	}
	cmd.Flags().Bool("json", false, "Print the result as JSON")
	return cmd
}
