package cli

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"greencross/internal/checkout"
	"greencross/internal/domain"
	apperrors "greencross/internal/errors"
)

const dateLayout = "2006-01-02"

func (r *root) checkoutCommand() *cobra.Command {
	var form checkout.Form

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Send your cart as a pickup pre-order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if err := r.app.Checkout.OpenCheckout(); err != nil {
				if errors.Is(err, checkout.ErrEmptyCart) {
					return fmt.Errorf("your cart is empty: add something with `storefront cart add`")
				}
				return err
			}

			if err := r.resolvePickup(cmd, &form); err != nil {
				if ve, ok := apperrors.IsValidationError(err); ok {
					writeValidation(out, ve)
				}
				return err
			}

			msg, err := r.app.Checkout.Submit(cmd.Context(), &form)
			if err != nil {
				if ve, ok := apperrors.IsValidationError(err); ok {
					writeValidation(out, ve)
				}
				return err
			}

			_, err = fmt.Fprintln(out, msg)
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&form.FullName, "name", "", "full name")
	flags.StringVar(&form.PhoneNumber, "phone", "", "phone number we can text")
	flags.StringVar(&form.Email, "email", "", "email (optional)")
	flags.StringVar(&form.PickupLocation, "location", "", "pickup location id or name")
	flags.StringVar(&form.PickupDate, "date", "", "pickup date, YYYY-MM-DD")
	flags.StringVar(&form.PickupTime, "time", "", "pickup time: "+strings.Join(domain.PickupTimeSlots, ", "))
	flags.StringVar(&form.SpecialInstructions, "notes", "", "special instructions (optional)")

	return cmd
}

// resolvePickup turns a location id into the display name the order carries
// and checks the date and slot the form would only let you pick.
func (r *root) resolvePickup(cmd *cobra.Command, form *checkout.Form) error {
	var details []apperrors.ValidationDetail

	if form.PickupLocation != "" {
		loc, err := r.app.Locations.Resolve(cmd.Context(), form.PickupLocation)
		if err != nil {
			details = append(details, apperrors.ValidationDetail{
				Field:   "pickupLocation",
				Message: "unknown pickup location, choose one of " + r.locationChoices(cmd),
			})
		} else {
			form.PickupLocation = loc.Name
		}
	}

	if form.PickupDate != "" {
		if _, err := time.Parse(dateLayout, form.PickupDate); err != nil {
			details = append(details, apperrors.ValidationDetail{Field: "pickupDate", Message: "use YYYY-MM-DD"})
		}
	}

	if form.PickupTime != "" && !slices.Contains(domain.PickupTimeSlots, form.PickupTime) {
		details = append(details, apperrors.ValidationDetail{
			Field:   "pickupTime",
			Message: "choose one of " + strings.Join(domain.PickupTimeSlots, ", "),
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("invalid pickup details", details...)
	}
	return nil
}

func (r *root) locationChoices(cmd *cobra.Command) string {
	var choices []string
	for _, loc := range r.app.Locations.List(cmd.Context()) {
		choices = append(choices, fmt.Sprintf("%s (%s, %s)", loc.ID, loc.Name, loc.Street()))
	}
	return strings.Join(choices, "; ")
}
