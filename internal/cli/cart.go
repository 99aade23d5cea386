package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"greencross/internal/cart"
)

func (r *root) cartCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show or change your cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeCart(cmd.OutOrStdout(), r.app.Cart)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show your cart",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return writeCart(cmd.OutOrStdout(), r.app.Cart)
			},
		},
		r.cartAddCommand(),
		&cobra.Command{
			Use:   "remove <product-id>",
			Short: "Remove a product from your cart",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				r.app.Cart.RemoveItem(args[0])
				return writeCart(cmd.OutOrStdout(), r.app.Cart)
			},
		},
		&cobra.Command{
			Use:   "set <product-id> <quantity>",
			Short: "Set the quantity of a product; 0 removes it",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				qty, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("quantity must be a whole number: %q", args[1])
				}
				r.app.Cart.UpdateQuantity(args[0], qty)
				return writeCart(cmd.OutOrStdout(), r.app.Cart)
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Empty your cart",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				r.app.Cart.Clear()
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "Your cart is empty.")
				return err
			},
		},
	)

	return cmd
}

func (r *root) cartAddCommand() *cobra.Command {
	var qty int

	cmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to your cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if qty < 1 {
				return fmt.Errorf("--qty must be at least 1")
			}
			p, err := r.app.Products.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			for i := 0; i < qty; i++ {
				r.app.Cart.AddItem(p.ID)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Added %s x%d.\n\n", p.Name, qty)
			return writeCart(out, r.app.Cart)
		},
	}

	cmd.Flags().IntVarP(&qty, "qty", "q", 1, "how many to add")
	return cmd
}

func writeCart(out io.Writer, store *cart.Store) error {
	items, subtotal := store.Snapshot()
	if len(items) == 0 {
		_, err := fmt.Fprintln(out, "Your cart is empty.")
		return err
	}

	tw := newTable(out)
	fmt.Fprintln(tw, "ID\tNAME\tQTY\tPRICE\tTOTAL\t")
	for _, item := range items {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t\n",
			item.Product.ID, item.Product.Name, item.Quantity, price(item.Product), money(item.LineTotal))
	}
	fmt.Fprintf(tw, "\t\t\tSubtotal\t%s\t\n", money(subtotal))
	return tw.Flush()
}
