package property

import (
	"slices"
	"strings"
)

// Filter holds the optional criteria of a property search. Pointer fields
// distinguish "not set" from a legitimate zero.
type Filter struct {
	Search              string
	Type                string
	City                string
	MinPrice            *float64
	MaxPrice            *float64
	MinSurface          *float64
	MaxSurface          *float64
	MinRooms            *int
	Status              Status
	OwnerKind           OwnerKind
	HasElevator         *bool
	HasParking          *bool
	YearBuiltMin        *int
	YearBuiltMax        *int
	EnergyClass         []string
	OpportunityScoreMin *int
}

// Apply returns the properties matching f, as a new order-preserving slice.
// It composes with (and is independent of) the section access filter.
func Apply(props []*Property, f Filter) []*Property {
	out := make([]*Property, 0, len(props))
	for _, p := range props {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// Match reports whether a single property satisfies every set criterion.
func (f Filter) Match(p *Property) bool {
	if f.Search != "" && !matchSearch(p, f.Search) {
		return false
	}
	if f.Type != "" && !strings.EqualFold(p.Type, f.Type) {
		return false
	}
	if f.City != "" && !strings.EqualFold(p.Address.City, f.City) {
		return false
	}
	if f.MinPrice != nil && p.Financials.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Financials.Price > *f.MaxPrice {
		return false
	}
	if f.MinSurface != nil && p.Features.Surface < *f.MinSurface {
		return false
	}
	if f.MaxSurface != nil && p.Features.Surface > *f.MaxSurface {
		return false
	}
	if f.MinRooms != nil && p.Features.Rooms < *f.MinRooms {
		return false
	}
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.OwnerKind != "" && !hasOwnerKind(p, f.OwnerKind) {
		return false
	}
	if f.HasElevator != nil && p.Features.HasElevator != *f.HasElevator {
		return false
	}
	if f.HasParking != nil && p.Features.HasParking != *f.HasParking {
		return false
	}
	if f.YearBuiltMin != nil && p.Features.YearBuilt < *f.YearBuiltMin {
		return false
	}
	if f.YearBuiltMax != nil && (p.Features.YearBuilt == 0 || p.Features.YearBuilt > *f.YearBuiltMax) {
		return false
	}
	if len(f.EnergyClass) > 0 && !slices.Contains(f.EnergyClass, p.Features.EnergyClass) {
		return false
	}
	if f.OpportunityScoreMin != nil {
		if p.OpportunityScore == nil || *p.OpportunityScore < *f.OpportunityScoreMin {
			return false
		}
	}
	return true
}

// matchSearch does a case-insensitive substring search over the fields a
// user would reach for: reference, name, address, city, owner names.
func matchSearch(p *Property, search string) bool {
	needle := strings.ToLower(search)

	haystacks := []string{
		p.Reference,
		p.Name,
		p.Address.StreetLine(),
		p.Address.City,
		p.Description,
	}
	for _, o := range p.Owners {
		haystacks = append(haystacks, o.DisplayName())
	}

	for _, h := range haystacks {
		if h != "" && strings.Contains(strings.ToLower(h), needle) {
			return true
		}
	}
	return false
}

func hasOwnerKind(p *Property, kind OwnerKind) bool {
	for _, o := range p.Owners {
		if o.Kind == kind {
			return true
		}
	}
	return false
}
