package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var ErrAgeNotVerified = errors.New("you must confirm you are 21 or older first: run `storefront verify-age`")

const skipAgeGate = "skipAgeGate"

type root struct {
	load Loader
	opts GlobalOptions
	app  *App
}

func NewRootCommand(load Loader) *cobra.Command {
	r := &root{load: load}

	cmd := &cobra.Command{
		Use:           "storefront",
		Short:         "Browse the GreenCross menu and place pickup pre-orders",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if isBuiltin(cmd) {
				return nil
			}

			app, err := r.load(r.opts)
			if err != nil {
				return err
			}
			r.app = app

			if cmd.Annotations[skipAgeGate] == "" && !app.Gate.IsVerified() {
				return ErrAgeNotVerified
			}
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&r.opts.ConfigPath, "config", "", "path to a config file")
	flags.StringVar(&r.opts.StatePath, "state", "", "path to the local state file (cart, age confirmation)")
	flags.StringVar(&r.opts.APIURL, "api-url", "", "storefront API base URL")

	cmd.AddCommand(
		r.verifyAgeCommand(),
		r.productsCommand(),
		r.productCommand(),
		r.locationsCommand(),
		r.nearestCommand(),
		r.cartCommand(),
		r.checkoutCommand(),
	)

	return cmd
}

// isBuiltin reports cobra's own help and completion commands.
func isBuiltin(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "help" || c.Name() == "completion" {
			return true
		}
	}
	return false
}
