package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"greencross/internal/domain"
)

func (r *root) locationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "locations",
		Short: "List pickup locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for i, loc := range r.app.Locations.List(cmd.Context()) {
				if i > 0 {
					fmt.Fprintln(out)
				}
				writeLocation(out, loc)
			}
			return nil
		},
	}
}

func (r *root) nearestCommand() *cobra.Command {
	var point domain.Point

	cmd := &cobra.Command{
		Use:   "nearest",
		Short: "Find the pickup location closest to a coordinate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if math.IsNaN(point.Latitude) || point.Latitude < -90 || point.Latitude > 90 {
				return fmt.Errorf("latitude must be between -90 and 90")
			}
			if math.IsNaN(point.Longitude) || point.Longitude < -180 || point.Longitude > 180 {
				return fmt.Errorf("longitude must be between -180 and 180")
			}

			nearest, err := r.app.Locations.FindNearest(cmd.Context(), point)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			writeLocation(out, nearest.Location)
			fmt.Fprintf(out, "  %.1f km away\n", nearest.DistanceKm)
			return nil
		},
	}

	cmd.Flags().Float64Var(&point.Latitude, "lat", 0, "latitude")
	cmd.Flags().Float64Var(&point.Longitude, "lng", 0, "longitude")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lng")

	return cmd
}
