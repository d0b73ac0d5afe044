// Package property provides the prospection domain model and filtering.
package property

import (
	"encoding/json"
	"strings"
)

// Status represents where a property stands in the prospection pipeline.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusPending     Status = "pending"
	StatusSold        Status = "sold"
	StatusOption      Status = "option"
	StatusNegotiation Status = "negotiation"
)

// ValidStatus returns true if s is a known property status.
func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusAvailable, StatusPending, StatusSold, StatusOption, StatusNegotiation:
		return true
	}
	return false
}

// Address is a structured postal address with optional coordinates.
type Address struct {
	Number         string   `json:"number,omitempty"`
	Street         string   `json:"street"`
	City           string   `json:"city"`
	PostalCode     string   `json:"postalCode"`
	AdditionalInfo string   `json:"additionalInfo,omitempty"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
}

// StreetLine returns the number and street joined, skipping blanks.
func (a Address) StreetLine() string {
	parts := make([]string, 0, 2)
	if a.Number != "" {
		parts = append(parts, a.Number)
	}
	if a.Street != "" {
		parts = append(parts, a.Street)
	}
	return strings.Join(parts, " ")
}

// Features describes the physical characteristics of a property.
type Features struct {
	Surface          float64 `json:"surface"`
	Rooms            int     `json:"rooms,omitempty"`
	Bedrooms         int     `json:"bedrooms,omitempty"`
	Bathrooms        int     `json:"bathrooms,omitempty"`
	Floors           int     `json:"floors,omitempty"`
	FloorNumber      int     `json:"floorNumber,omitempty"`
	YearBuilt        int     `json:"yearBuilt,omitempty"`
	HasElevator      bool    `json:"hasElevator,omitempty"`
	HasBalcony       bool    `json:"hasBalcony,omitempty"`
	HasParking       bool    `json:"hasParking,omitempty"`
	HasGarden        bool    `json:"hasGarden,omitempty"`
	HasTerrace       bool    `json:"hasTerrace,omitempty"`
	HasBasement      bool    `json:"hasBasement,omitempty"`
	HasAttic         bool    `json:"hasAttic,omitempty"`
	EnergyClass      string  `json:"energyClass,omitempty"`
	GasEmissionClass string  `json:"gasEmissionClass,omitempty"`
	Condition        string  `json:"condition,omitempty"`
}

// Financials carries the pricing and investment figures of a property.
type Financials struct {
	Price                    float64 `json:"price"`
	RentalPrice              float64 `json:"rentalPrice,omitempty"`
	EstimatedRentalYield     float64 `json:"estimatedRentalYield,omitempty"`
	Tax                      float64 `json:"tax,omitempty"`
	Charges                  float64 `json:"charges,omitempty"`
	NotaryFees               float64 `json:"notaryFees,omitempty"`
	AcquisitionCosts         float64 `json:"acquisitionCosts,omitempty"`
	EstimatedRenovationCosts float64 `json:"estimatedRenovationCosts,omitempty"`
	EstimatedResalePrice     float64 `json:"estimatedResalePrice,omitempty"`
	ROI                      float64 `json:"roi,omitempty"`
}

// Contact is one entry in a property's contact history.
type Contact struct {
	ContactName            string `json:"contactName,omitempty"`
	ContactPhone           string `json:"contactPhone,omitempty"`
	ContactEmail           string `json:"contactEmail,omitempty"`
	LastContactDate        string `json:"lastContactDate,omitempty"`
	NextContactDate        string `json:"nextContactDate,omitempty"`
	ContactNotes           string `json:"contactNotes,omitempty"`
	PreferredContactMethod string `json:"preferredContactMethod,omitempty"`
}

// Property represents a prospected real-estate asset.
type Property struct {
	ID               string                     `json:"id"`
	Reference        string                     `json:"reference"`
	Type             string                     `json:"type"`
	SubType          string                     `json:"subType,omitempty"`
	Name             string                     `json:"name,omitempty"`
	Address          Address                    `json:"address"`
	Building         string                     `json:"building,omitempty"`
	Features         Features                   `json:"features"`
	Financials       Financials                 `json:"financials"`
	Description      string                     `json:"description,omitempty"`
	Status           Status                     `json:"status"`
	Section          string                     `json:"section,omitempty"`
	Owners           []Owner                    `json:"owners"`
	Contacts         []Contact                  `json:"contacts,omitempty"`
	Documents        []string                   `json:"documents,omitempty"`
	Notes            string                     `json:"notes,omitempty"`
	CreatedAt        string                     `json:"createdAt"`
	UpdatedAt        string                     `json:"updatedAt"`
	AcquisitionDate  string                     `json:"acquisitionDate,omitempty"`
	ExpectedResale   string                     `json:"expectedResaleDate,omitempty"`
	OpportunityScore *int                       `json:"opportunityScore,omitempty"`
	Extra            map[string]json.RawMessage `json:"-"`
}

// knownPropertyKeys lists the JSON keys decoded into named fields;
// anything else lands in Extra.
var knownPropertyKeys = []string{
	"id", "reference", "type", "subType", "name", "address", "building",
	"features", "financials", "description", "status", "section", "owners",
	"contacts", "documents", "notes", "createdAt", "updatedAt",
	"acquisitionDate", "expectedResaleDate", "opportunityScore",
}

// UnmarshalJSON decodes a property and collects unrecognized keys into Extra,
// so records with source-file extras survive a round trip.
func (p *Property) UnmarshalJSON(data []byte) error {
	type alias Property
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, k := range knownPropertyKeys {
		delete(raw, k)
	}
	if len(raw) > 0 {
		a.Extra = raw
	}

	*p = Property(a)
	return nil
}

// MarshalJSON re-emits the property including its Extra fields.
func (p Property) MarshalJSON() ([]byte, error) {
	type alias Property
	data, err := json.Marshal(alias(p))
	if err != nil {
		return nil, err
	}
	if len(p.Extra) == 0 {
		return data, nil
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, err
	}
	for k, v := range p.Extra {
		if _, taken := merged[k]; !taken {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}

// FirstOwner returns the first owner, or a zero owner if none is recorded.
// Owner lists are expected non-empty but source data does not guarantee it.
func (p *Property) FirstOwner() Owner {
	if len(p.Owners) == 0 {
		return Owner{}
	}
	return p.Owners[0]
}
