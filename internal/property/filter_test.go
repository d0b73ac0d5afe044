package property

import "testing"

func testProps(t *testing.T) []*Property {
	t.Helper()
	props := Demo()
	if len(props) < 5 {
		t.Fatalf("demo set has %d properties, want at least 5", len(props))
	}
	return props
}

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }
func boolPtr(b bool) *bool        { return &b }

func TestApplyEmptyFilterKeepsEverything(t *testing.T) {
	props := testProps(t)

	got := Apply(props, Filter{})
	if len(got) != len(props) {
		t.Errorf("got %d, want %d", len(got), len(props))
	}
}

func TestFilterByType(t *testing.T) {
	props := testProps(t)

	got := Apply(props, Filter{Type: "maison"})
	if len(got) != 1 {
		t.Fatalf("got %d, want 1", len(got))
	}
	if got[0].Reference != "PRO-2023-002" {
		t.Errorf("reference = %q", got[0].Reference)
	}
}

func TestFilterByPriceRange(t *testing.T) {
	props := testProps(t)

	got := Apply(props, Filter{MinPrice: floatPtr(400000), MaxPrice: floatPtr(600000)})
	if len(got) != 2 {
		t.Fatalf("got %d, want 2", len(got))
	}
}

func TestFilterBySearchOwnerName(t *testing.T) {
	props := testProps(t)

	got := Apply(props, Filter{Search: "tilleuls"})
	if len(got) != 1 {
		t.Fatalf("got %d, want 1", len(got))
	}
	if got[0].ID != "3" {
		t.Errorf("id = %q, want 3", got[0].ID)
	}
}

func TestFilterByOwnerKind(t *testing.T) {
	props := testProps(t)

	got := Apply(props, Filter{OwnerKind: OwnerCompany})
	if len(got) != 1 {
		t.Fatalf("got %d, want 1", len(got))
	}
}

func TestFilterByOpportunityScore(t *testing.T) {
	props := testProps(t)

	got := Apply(props, Filter{OpportunityScoreMin: intPtr(8)})
	// Properties without a score never match a score criterion.
	if len(got) != 2 {
		t.Fatalf("got %d, want 2", len(got))
	}
}

func TestFilterByFeatureFlags(t *testing.T) {
	props := testProps(t)

	got := Apply(props, Filter{HasElevator: boolPtr(true)})
	if len(got) != 1 {
		t.Fatalf("got %d, want 1", len(got))
	}
	if got[0].ID != "1" {
		t.Errorf("id = %q, want 1", got[0].ID)
	}
}

func TestFilterComposesWithAccessFilter(t *testing.T) {
	props := testProps(t)

	visible := VisibleTo(props, "user", []string{"A"})
	got := Apply(visible, Filter{Type: "Immeuble"})
	if len(got) != 1 {
		t.Fatalf("got %d, want 1", len(got))
	}
	if got[0].ID != "3" {
		t.Errorf("id = %q, want 3", got[0].ID)
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	props := testProps(t)

	got := Apply(props, Filter{City: "Paris"})
	if len(got) != 2 {
		t.Fatalf("got %d, want 2", len(got))
	}
	if got[0].ID != "1" || got[1].ID != "3" {
		t.Errorf("order = %s, %s; want 1, 3", got[0].ID, got[1].ID)
	}
}
