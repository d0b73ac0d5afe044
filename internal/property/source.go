package property

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

//go:embed data/properties.json
var demoData []byte

// Demo returns the bundled demo property set.
func Demo() []*Property {
	props, err := parse(demoData)
	if err != nil {
		// The embedded data set is validated by tests.
		panic(fmt.Sprintf("parsing embedded property data: %v", err))
	}
	return props
}

// Load reads a property set from a JSON file, or the bundled demo set when
// path is empty. Unreadable or malformed files degrade to an empty set with
// a warning; the application renders with whatever data it has.
func Load(path string) []*Property {
	if path == "" {
		return Demo()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("reading property data", "path", path, "error", err)
		return nil
	}

	props, err := parse(data)
	if err != nil {
		slog.Warn("parsing property data", "path", path, "error", err)
		return nil
	}
	return props
}

func parse(data []byte) ([]*Property, error) {
	var props []*Property
	if err := json.Unmarshal(data, &props); err != nil {
		return nil, err
	}
	return props, nil
}

// FindByID returns the property with the given id, or nil.
func FindByID(props []*Property, id string) *Property {
	for _, p := range props {
		if p.ID == id {
			return p
		}
	}
	return nil
}
