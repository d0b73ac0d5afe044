package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/jmorel/prospec/internal/letter"
	"github.com/jmorel/prospec/internal/property"
)

// printJSON marshals v as indented JSON and writes it to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printPropertySummary prints a single property in text format.
func printPropertySummary(p *property.Property) {
	fmt.Printf("Property %s (%s)\n", p.ID, p.Reference)
	fmt.Printf("  Type:     %s\n", p.Type)
	fmt.Printf("  Address:  %s, %s %s\n", p.Address.StreetLine(), p.Address.PostalCode, p.Address.City)
	if p.Financials.Price > 0 {
		fmt.Printf("  Price:    %s\n", letter.FormatPrice(p.Financials.Price))
	}
	if p.Features.Surface > 0 {
		fmt.Printf("  Surface:  %s\n", letter.FormatSurface(p.Features.Surface))
	}
	if p.Features.Rooms > 0 {
		fmt.Printf("  Rooms:    %d\n", p.Features.Rooms)
	}
	if p.Features.YearBuilt > 0 {
		fmt.Printf("  Built:    %d\n", p.Features.YearBuilt)
	}
	if p.Features.EnergyClass != "" {
		fmt.Printf("  Energy:   %s\n", p.Features.EnergyClass)
	}
	fmt.Printf("  Status:   %s\n", p.Status)
	if p.Section != "" {
		fmt.Printf("  Section:  %s\n", p.Section)
	}
	if p.OpportunityScore != nil {
		fmt.Printf("  Score:    %d/10\n", *p.OpportunityScore)
	}
	if p.Description != "" {
		fmt.Printf("  Notes:    %s\n", p.Description)
	}

	for _, o := range p.Owners {
		name := o.DisplayName()
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Printf("  Owner:    %s", name)
		if o.Kind == property.OwnerCompany && o.LegalType != "" {
			fmt.Printf(" (%s)", o.LegalType)
		}
		if o.Phone != "" {
			fmt.Printf(" — %s", o.Phone)
		}
		fmt.Println()
	}

	for _, c := range p.Contacts {
		fmt.Printf("  Contact:  %s", c.ContactName)
		if c.NextContactDate != "" {
			fmt.Printf(" (next: %s)", c.NextContactDate)
		}
		fmt.Println()
	}
}

// printPropertyTable prints a list of properties as a formatted table.
func printPropertyTable(props []*property.Property) error {
	if len(props) == 0 {
		fmt.Println("No properties found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tREFERENCE\tTYPE\tCITY\tPRICE\tSURFACE\tSTATUS\tSCORE"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "--\t---------\t----\t----\t-----\t-------\t------\t-----"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, p := range props {
		price := "-"
		if p.Financials.Price > 0 {
			price = letter.FormatPrice(p.Financials.Price)
		}
		surface := "-"
		if p.Features.Surface > 0 {
			surface = letter.FormatSurface(p.Features.Surface)
		}
		score := "-"
		if p.OpportunityScore != nil {
			score = fmt.Sprintf("%d", *p.OpportunityScore)
		}

		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.Reference, truncate(p.Type, 20), p.Address.City,
			price, surface, p.Status, score); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	fmt.Printf("\nTotal: %d properties\n", len(props))
	return nil
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
