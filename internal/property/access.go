package property

import "slices"

// VisibleTo returns the subset of props the given user may see, as a new
// order-preserving slice. Admins see everything. A non-admin user with no
// allowed sections configured also sees everything: an empty section list
// means "no restriction configured", not "nothing allowed".
//
// This filter runs before any search or attribute filter composes on top.
func VisibleTo(props []*Property, role string, sections []string) []*Property {
	if role == "admin" || len(sections) == 0 {
		out := make([]*Property, len(props))
		copy(out, props)
		return out
	}

	out := make([]*Property, 0, len(props))
	for _, p := range props {
		if slices.Contains(sections, p.Section) {
			out = append(out, p)
		}
	}
	return out
}
