package articles

import (
	"github.com/spf13/cobra"
)

// Cmd returns the articles command group.
func Cmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "articles",
		Short: "Browse and publish nutrition articles",
	}
	root.AddCommand(
		listCmd(),
		showCmd(),
		createCmd(),
		deleteCmd(),
	)
	return root
}
