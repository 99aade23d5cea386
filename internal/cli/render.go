package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"greencross/internal/domain"
	apperrors "greencross/internal/errors"
)

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

func money(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

func price(p domain.Product) string {
	return money(decimal.NewFromFloat(p.Price))
}

func percent(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64) + "%"
}

func strain(p domain.Product) string {
	if !p.HasStrain() {
		return "-"
	}
	return string(p.Strain)
}

func writeProducts(out io.Writer, products []domain.Product) error {
	if len(products) == 0 {
		_, err := fmt.Fprintln(out, "No products match your filters.")
		return err
	}

	tw := newTable(out)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tSTRAIN\tSIZE\tTHC\tPRICE\t")
	for _, p := range products {
		name := p.Name
		if p.Featured {
			name += " *"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			p.ID, name, p.Category, strain(p), p.WeightLabel, percent(p.THCPercent), price(p))
	}
	return tw.Flush()
}

func writeProduct(out io.Writer, p domain.Product) error {
	tw := newTable(out)
	fmt.Fprintf(tw, "Name:\t%s\n", p.Name)
	fmt.Fprintf(tw, "Price:\t%s\n", price(p))
	fmt.Fprintf(tw, "Category:\t%s\n", p.Category)
	fmt.Fprintf(tw, "Strain:\t%s\n", strain(p))
	if p.WeightLabel != "" {
		fmt.Fprintf(tw, "Size:\t%s\n", p.WeightLabel)
	}
	fmt.Fprintf(tw, "THC:\t%s\n", percent(p.THCPercent))
	fmt.Fprintf(tw, "CBD:\t%s\n", percent(p.CBDPercent))
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "\n%s\n", p.Description)
	return err
}

func writeLocation(out io.Writer, loc domain.Location) {
	status := "Open"
	if !loc.IsOpen() {
		status = "Closed"
	}
	fmt.Fprintf(out, "%s (%s)\n", loc.Name, status)
	for _, line := range loc.AddressLines {
		fmt.Fprintf(out, "  %s\n", line)
	}
	if loc.Phone != "" {
		fmt.Fprintf(out, "  %s\n", loc.Phone)
	}
}

func writeValidation(out io.Writer, ve *apperrors.ValidationError) {
	fmt.Fprintln(out, "Please fix the following:")
	for _, d := range ve.Details {
		fmt.Fprintf(out, "  %s: %s\n", d.Field, d.Message)
	}
}

func joinStrings[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
