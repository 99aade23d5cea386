package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	catalogservice "greencross/internal/catalog/service"
	"greencross/internal/domain"
)

func (r *root) productsCommand() *cobra.Command {
	var filter catalogservice.Filter

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List the menu, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter.Category = strings.ToLower(strings.TrimSpace(filter.Category))
			filter.Strain = strings.ToLower(strings.TrimSpace(filter.Strain))

			if filter.Category != "" && filter.Category != catalogservice.FilterAll && !domain.Category(filter.Category).Valid() {
				return fmt.Errorf("unknown category %q (choose from %s)", filter.Category, joinStrings(domain.Categories))
			}
			if filter.Strain != "" && filter.Strain != catalogservice.FilterAll && !domain.Strain(filter.Strain).Valid() {
				return fmt.Errorf("unknown strain %q (choose from %s)", filter.Strain, joinStrings(domain.Strains))
			}

			return writeProducts(cmd.OutOrStdout(), r.app.Products.Search(cmd.Context(), filter))
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&filter.Category, "category", "", "category to show, or \"all\"")
	flags.StringVar(&filter.Strain, "strain", "", "strain to show, or \"all\"")
	flags.StringVarP(&filter.Search, "search", "s", "", "text to find in the name or description")
	flags.BoolVar(&filter.FeaturedOnly, "featured", false, "only featured products")

	return cmd
}

func (r *root) productCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "product <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := r.app.Products.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeProduct(cmd.OutOrStdout(), *p)
		},
	}
}
