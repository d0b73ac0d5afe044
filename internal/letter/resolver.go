package letter

import (
	"fmt"
	"strings"
	"time"

	"github.com/jmorel/prospec/internal/property"
)

// frenchMonths indexes time.Month values to their French names.
var frenchMonths = [...]string{
	time.January:   "janvier",
	time.February:  "février",
	time.March:     "mars",
	time.April:     "avril",
	time.May:       "mai",
	time.June:      "juin",
	time.July:      "juillet",
	time.August:    "août",
	time.September: "septembre",
	time.October:   "octobre",
	time.November:  "novembre",
	time.December:  "décembre",
}

// Resolve derives a value for every catalog token from the property, the
// agent identity, and the current time. It is a pure function, total over
// any property: a missing or zero source field falls back to the token's
// example value, so a legitimately empty real value reads the same as "no
// data" (preserved source behavior).
func Resolve(p *property.Property, agent Agent, now time.Time) map[string]string {
	values := make(map[string]string, len(Variables))

	for _, v := range Variables {
		var value string
		switch v.Token {
		case "{{nom_proprietaire}}":
			value = p.FirstOwner().DisplayName()
		case "{{adresse_bien}}":
			value = p.Address.StreetLine()
		case "{{ville_bien}}":
			value = p.Address.City
		case "{{code_postal}}":
			value = p.Address.PostalCode
		case "{{prix_bien}}":
			if p.Financials.Price != 0 {
				value = FormatPrice(p.Financials.Price)
			}
		case "{{surface_bien}}":
			if p.Features.Surface != 0 {
				value = FormatSurface(p.Features.Surface)
			}
		case "{{date_courrier}}":
			value = FormatDate(now)
		case "{{nom_agent}}":
			value = agent.Name
		case "{{telephone_agent}}":
			value = agent.Phone
		case "{{email_agent}}":
			value = agent.Email
		}

		if value == "" {
			value = v.Example
		}
		values[v.Token] = value
	}

	return values
}

// FormatPrice renders an amount in the French locale style: space-grouped
// thousands with a euro suffix, e.g. "450 000 €". Fractional cents are
// dropped; prospection prices are whole euros.
func FormatPrice(amount float64) string {
	return groupThousands(int64(amount)) + " €"
}

// FormatSurface renders a surface with its unit, e.g. "85 m²".
func FormatSurface(surface float64) string {
	if surface == float64(int64(surface)) {
		return fmt.Sprintf("%d m²", int64(surface))
	}
	return fmt.Sprintf("%.1f m²", surface)
}

// FormatDate renders a date the French long way, e.g. "15 novembre 2023".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%02d %s %d", t.Day(), frenchMonths[t.Month()], t.Year())
}

// groupThousands inserts a space every three digits from the right.
func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	if len(s) > 3 {
		var parts []string
		for len(s) > 3 {
			parts = append([]string{s[len(s)-3:]}, parts...)
			s = s[:len(s)-3]
		}
		parts = append([]string{s}, parts...)
		s = strings.Join(parts, " ")
	}

	if neg {
		return "-" + s
	}
	return s
}
