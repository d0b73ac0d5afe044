package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmorel/prospec/internal/property"
)

func newListCmd() *cobra.Command {
	var (
		search     string
		kind       string
		city       string
		status     string
		ownerKind  string
		energy     []string
		minPrice   float64
		maxPrice   float64
		minSurface float64
		maxSurface float64
		minRooms   int
		minScore   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List visible properties",
		Long:  "List the properties visible to the logged-in account, optionally narrowed by filters.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := property.Filter{
				Search:      search,
				Type:        kind,
				City:        city,
				Status:      property.Status(status),
				OwnerKind:   property.OwnerKind(ownerKind),
				EnergyClass: energy,
			}
			if minPrice > 0 {
				f.MinPrice = &minPrice
			}
			if maxPrice > 0 {
				f.MaxPrice = &maxPrice
			}
			if minSurface > 0 {
				f.MinSurface = &minSurface
			}
			if maxSurface > 0 {
				f.MaxSurface = &maxSurface
			}
			if minRooms > 0 {
				f.MinRooms = &minRooms
			}
			if minScore > 0 {
				f.OpportunityScoreMin = &minScore
			}
			return runList(f)
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "free-text search (reference, address, owner)")
	cmd.Flags().StringVar(&kind, "type", "", "property type (Appartement, Maison, ...)")
	cmd.Flags().StringVar(&city, "city", "", "city")
	cmd.Flags().StringVar(&status, "status", "", "status (available|pending|sold|option|negotiation)")
	cmd.Flags().StringVar(&ownerKind, "owner-kind", "", "owner kind (individual|company)")
	cmd.Flags().StringSliceVar(&energy, "energy-class", nil, "energy classes to include")
	cmd.Flags().Float64Var(&minPrice, "min-price", 0, "minimum price in euros")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "maximum price in euros")
	cmd.Flags().Float64Var(&minSurface, "min-surface", 0, "minimum surface in m²")
	cmd.Flags().Float64Var(&maxSurface, "max-surface", 0, "maximum surface in m²")
	cmd.Flags().IntVar(&minRooms, "min-rooms", 0, "minimum number of rooms")
	cmd.Flags().IntVar(&minScore, "min-score", 0, "minimum opportunity score (1-10)")

	return cmd
}

func runList(f property.Filter) error {
	database, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(database)

	user, err := requireSession(database)
	if err != nil {
		return err
	}

	props := property.Apply(visibleTo(user, loadProperties()), f)

	if isJSON() {
		return printJSON(props)
	}
	return printPropertyTable(props)
}
