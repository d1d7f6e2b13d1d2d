package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/nh/internal/app"
)

func (c *CLI) newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info [packages...]",
		Short: "Show metadata of packages",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			flake, _ := cmd.Flags().GetString("flake")
			json, _ := cmd.Flags().GetBool("json")
			return c.app.Info(cmd.Context(), args, app.InfoOptions{
				Flake: flake,
				JSON:  json,
			})
		},
	}
	cmd.Flags().StringP("flake", "f", "", "Flake reference to look packages up in (default from config)")
	cmd.Flags().Bool("json", false, "Print results as JSON")
	return cmd
}
