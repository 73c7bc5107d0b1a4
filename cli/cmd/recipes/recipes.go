package recipes

import (
	"github.com/spf13/cobra"

	"github.com/nutriveg/nutriveg-cli/cli/listing"
)

// Cmd returns the recipes command group.
func Cmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "recipes",
		Short: "Browse, publish and rate recipes",
	}
	root.AddCommand(
		listCmd(),
		showCmd(),
		createCmd(),
		deleteCmd(),
		rateCmd(),
	)
	return root
}

// dietValues translates the CLI's English diet names to the platform's
// stored values.
var dietValues = map[string]string{
	"vegan":      "vegano",
	"vegetarian": "vegetariano",
}

func translateDiets(diets []string) []string {
	out := make([]string, 0, len(diets))
	for _, d := range diets {
		if v, ok := dietValues[d]; ok {
			out = append(out, v)
			continue
		}
		out = append(out, d)
	}
	return out
}

// facetsFromFlags builds the filter facets from the recipe filter flags.
func facetsFromFlags(cmd *cobra.Command) (listing.Facets, error) {
	categories, err := cmd.Flags().GetStringSlice("category")
	if err != nil {
		return nil, err
	}
	diets, err := cmd.Flags().GetStringSlice("diet")
	if err != nil {
		return nil, err
	}
	publishers, err := cmd.Flags().GetStringSlice("publisher")
	if err != nil {
		return nil, err
	}
	facets := listing.Facets{}
	if len(categories) > 0 {
		facets["categoria"] = categories
	}
	if len(diets) > 0 {
		facets["alimentacao"] = translateDiets(diets)
	}
	if len(publishers) > 0 {
		facets["publicadoPor"] = publishers
	}
	return facets, nil
}
