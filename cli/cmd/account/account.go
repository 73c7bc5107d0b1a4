package account

import (
	"github.com/spf13/cobra"
)

// Cmd returns the account command group.
func Cmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "account",
		Short: "Log in, register and inspect your session",
	}
	root.AddCommand(
		loginCmd(),
		logoutCmd(),
		registerCmd(),
		whoamiCmd(),
	)
	return root
}

// focusValues translates the CLI's focus names to the platform's stored
// values.
var focusValues = map[string]string{
	"vegan":              "vegana",
	"vegetarian":         "vegetariana",
	"veganAndVegetarian": "vegana_e_vegetariana",
}

func translateFocus(focus string) string {
	if v, ok := focusValues[focus]; ok {
		return v
	}
	return focus
}
