package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func (r *root) verifyAgeCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:         "verify-age",
		Short:       "Confirm you are 21 or older",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipAgeGate: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if !yes {
				fmt.Fprint(out, "Are you 21 years of age or older? [y/N] ")
				answer, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && !errors.Is(err, io.EOF) {
					return fmt.Errorf("reading answer: %w", err)
				}
				switch strings.ToLower(strings.TrimSpace(answer)) {
				case "y", "yes":
				default:
					return fmt.Errorf("you must be 21 or older to use this storefront")
				}
			}

			r.app.Gate.Confirm()
			fmt.Fprintln(out, "Thanks, you're all set.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm without prompting")
	return cmd
}
