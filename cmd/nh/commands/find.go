package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/nh/internal/app"
)

func (c *CLI) newFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find [dir]",
		Short: "List package definitions below a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, _ := cmd.Flags().GetString("filter")
			json, _ := cmd.Flags().GetBool("json")
			return c.app.Find(cmd.Context(), dirArg(args), app.FindOptions{
				Filter: filter,
				JSON:   json,
			})
		},
	}
	cmd.Flags().String("filter", "", "Only show paths fuzzy-matching the pattern")
	cmd.Flags().Bool("json", false, "Print results as JSON")
	return cmd
}
