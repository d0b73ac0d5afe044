package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

func newMapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "map",
		Short: "Export visible properties as GeoJSON",
		Long:  "Writes the visible properties with coordinates as a GeoJSON FeatureCollection to stdout, ready for any map client.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMap()
		},
	}
}

type mapFeature struct {
	Type       string                 `json:"type"`
	Geometry   mapGeometry            `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

type mapGeometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

func runMap() error {
	database, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(database)

	user, err := requireSession(database)
	if err != nil {
		return err
	}

	features := []mapFeature{}
	for _, p := range visibleTo(user, loadProperties()) {
		if p.Address.Latitude == nil || p.Address.Longitude == nil {
			continue
		}
		features = append(features, mapFeature{
			Type: "Feature",
			Geometry: mapGeometry{
				Type:        "Point",
				Coordinates: [2]float64{*p.Address.Longitude, *p.Address.Latitude},
			},
			Properties: map[string]interface{}{
				"id":        p.ID,
				"reference": p.Reference,
				"type":      p.Type,
				"city":      p.Address.City,
				"price":     p.Financials.Price,
				"status":    p.Status,
			},
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]interface{}{
		"type":     "FeatureCollection",
		"features": features,
	})
}
