package property

import "testing"

func sectioned(sections ...string) []*Property {
	props := make([]*Property, len(sections))
	for i, s := range sections {
		props[i] = &Property{ID: string(rune('a' + i)), Section: s}
	}
	return props
}

func TestVisibleToAdminSeesEverything(t *testing.T) {
	props := sectioned("A", "B", "C")

	got := VisibleTo(props, "admin", []string{"A"})
	if len(got) != 3 {
		t.Fatalf("got %d properties, want 3", len(got))
	}
	for i := range props {
		if got[i] != props[i] {
			t.Errorf("order changed at %d", i)
		}
	}
}

func TestVisibleToUserFiltersBySection(t *testing.T) {
	props := sectioned("A", "B", "A")

	got := VisibleTo(props, "user", []string{"A"})
	if len(got) != 2 {
		t.Fatalf("got %d properties, want 2", len(got))
	}
	if got[0] != props[0] || got[1] != props[2] {
		t.Error("expected the two section-A properties in original order")
	}
}

func TestVisibleToUserEmptySectionsSeesEverything(t *testing.T) {
	// No restriction configured means no filtering for now; flagged for
	// product review before any real deployment.
	props := sectioned("A", "B")

	got := VisibleTo(props, "user", nil)
	if len(got) != 2 {
		t.Fatalf("got %d properties, want 2", len(got))
	}
}

func TestVisibleToDoesNotMutateInput(t *testing.T) {
	props := sectioned("A", "B", "A")

	got := VisibleTo(props, "user", []string{"A"})
	got[0] = nil

	if props[0] == nil {
		t.Error("input slice was mutated")
	}
	if len(props) != 3 {
		t.Errorf("input length changed to %d", len(props))
	}
}
