package web

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/jmorel/prospec/internal/activity"
	"github.com/jmorel/prospec/internal/property"
)

// visibleProperties applies the section access filter for the current user.
func (s *Server) visibleProperties(r *http.Request) []*property.Property {
	user := currentUser(r)
	return property.VisibleTo(s.props, string(user.Role), user.Sections)
}

// handlePropertyList returns the properties visible to the user, narrowed
// by any query-parameter filters.
func (s *Server) handlePropertyList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	filter, err := filterFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	props := property.Apply(s.visibleProperties(r), filter)
	writeJSON(w, http.StatusOK, props)
}

// handlePropertyRoute routes /api/properties/{id}[/letter] requests.
func (s *Server) handlePropertyRoute(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/properties/")

	if id, ok := strings.CutSuffix(path, "/letter"); ok {
		s.handleLetterGenerate(w, r, id)
		return
	}
	if id, ok := strings.CutSuffix(path, "/letters"); ok {
		s.handleLetterHistory(w, r, id)
		return
	}

	s.handlePropertyDetail(w, r, path)
}

// handlePropertyDetail returns one visible property and records the view.
func (s *Server) handlePropertyDetail(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	prop := property.FindByID(s.visibleProperties(r), id)
	if prop == nil {
		writeError(w, http.StatusNotFound, "property not found")
		return
	}

	err := s.activity.Log(currentUser(r).Email, activity.ActionPropertyViewed,
		map[string]interface{}{"propertyId": prop.ID})
	if err != nil {
		slog.Warn("recording property view", "error", err)
	}

	writeJSON(w, http.StatusOK, prop)
}

// geoFeature is one property as a GeoJSON feature for the map view.
type geoFeature struct {
	Type       string                 `json:"type"`
	Geometry   geoPoint               `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

type geoPoint struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// handleMap returns visible properties with coordinates as a GeoJSON
// FeatureCollection. Tile rendering and credentials are the map client's
// concern.
func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	features := []geoFeature{}
	for _, p := range s.visibleProperties(r) {
		if p.Address.Latitude == nil || p.Address.Longitude == nil {
			continue
		}
		features = append(features, geoFeature{
			Type: "Feature",
			Geometry: geoPoint{
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

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"type":     "FeatureCollection",
		"features": features,
	})
}

// filterFromQuery builds a property filter from URL query parameters.
func filterFromQuery(q url.Values) (property.Filter, error) {
	var f property.Filter

	f.Search = q.Get("search")
	f.Type = q.Get("type")
	f.City = q.Get("city")
	f.Status = property.Status(q.Get("status"))
	f.OwnerKind = property.OwnerKind(q.Get("ownerKind"))
	if classes := q.Get("energyClass"); classes != "" {
		f.EnergyClass = strings.Split(classes, ",")
	}

	var err error
	if f.MinPrice, err = floatParam(q, "minPrice"); err != nil {
		return f, err
	}
	if f.MaxPrice, err = floatParam(q, "maxPrice"); err != nil {
		return f, err
	}
	if f.MinSurface, err = floatParam(q, "minSurface"); err != nil {
		return f, err
	}
	if f.MaxSurface, err = floatParam(q, "maxSurface"); err != nil {
		return f, err
	}
	if f.MinRooms, err = intParam(q, "minRooms"); err != nil {
		return f, err
	}
	if f.YearBuiltMin, err = intParam(q, "yearBuiltMin"); err != nil {
		return f, err
	}
	if f.YearBuiltMax, err = intParam(q, "yearBuiltMax"); err != nil {
		return f, err
	}
	if f.OpportunityScoreMin, err = intParam(q, "opportunityScoreMin"); err != nil {
		return f, err
	}
	if v := q.Get("hasElevator"); v != "" {
		b := v == "true"
		f.HasElevator = &b
	}
	if v := q.Get("hasParking"); v != "" {
		b := v == "true"
		f.HasParking = &b
	}

	return f, nil
}

func floatParam(q url.Values, name string) (*float64, error) {
	v := q.Get(name)
	if v == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, &paramError{name: name}
	}
	return &parsed, nil
}

func intParam(q url.Values, name string) (*int, error) {
	v := q.Get(name)
	if v == "" {
		return nil, nil
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return nil, &paramError{name: name}
	}
	return &parsed, nil
}

type paramError struct {
	name string
}

func (e *paramError) Error() string {
	return "invalid value for " + e.name
}
