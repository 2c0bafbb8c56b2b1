package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"campuseats/internal/directory"
	"campuseats/internal/geo"
)

var (
	filterCity     string
	filterProvider string
	filterSearch   string
)

// restaurantsCmd lists restaurants with the same filter and ordering
// pipeline the interactive list uses.
var restaurantsCmd = &cobra.Command{
	Use:   "restaurants",
	Short: "List campus restaurants",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		ctx := cmd.Context()

		// The directory refresh and the location race run concurrently;
		// neither depends on the other.
		var loc *geo.Point
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			return a.dir.Refresh(gctx)
		})
		g.Go(func() error {
			loc = a.locator.Locate(gctx)
			return nil
		})
		if err := g.Wait(); err != nil {
			return err
		}

		filtered := a.dir.Filter(filterCity, filterProvider, filterSearch)
		ordered := directory.Order(filtered, a.sessions.User(), loc)

		if len(ordered) == 0 {
			fmt.Println(a.tr.T("no_results"))
			return nil
		}

		user := a.sessions.User()
		for _, r := range ordered {
			mark := " "
			if user != nil && user.FavouriteRestaurant == r.ID {
				mark = "♥"
			}
			line := fmt.Sprintf("%s %-28s %-12s %-10s", mark, r.Name, r.City, r.Company)
			if loc != nil && r.Location.Valid() {
				line += "  " + geo.FormatKm(loc.DistanceTo(r.Location.Lat(), r.Location.Lon()))
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	restaurantsCmd.Flags().StringVar(&filterCity, "city", "", "filter by exact city")
	restaurantsCmd.Flags().StringVar(&filterProvider, "provider", "", "filter by exact provider")
	restaurantsCmd.Flags().StringVar(&filterSearch, "search", "", "filter by name substring")
	rootCmd.AddCommand(restaurantsCmd)
}
