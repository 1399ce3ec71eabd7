package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/hackidx/internal/app"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List packages in the index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, _ := cmd.Flags().GetString("repo")
			preferred, _ := cmd.Flags().GetBool("preferred")
			all, _ := cmd.Flags().GetBool("all")

			return c.app.List(cmd.OutOrStdout(), repo, app.ListOptions{
				PreferredOnly: preferred,
				All:           all,
			})
		},
	}
	cmd.Flags().BoolP("preferred", "p", false, "Only count versions inside the preferred range")
	cmd.Flags().BoolP("all", "a", false, "Print every version instead of counts")
	return cmd
}
