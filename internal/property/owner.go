package property

import (
	"encoding/json"
	"strings"
)

// OwnerKind discriminates the two owner variants.
type OwnerKind string

const (
	OwnerIndividual OwnerKind = "individual"
	OwnerCompany    OwnerKind = "company"
)

// Owner is a tagged union of an individual or a company owner.
// Kind is set at construction or while decoding and is the only
// discriminator; downstream code must never infer the variant from
// which fields happen to be populated.
type Owner struct {
	Kind OwnerKind `json:"kind"`

	// Individual fields
	Civility        string `json:"civility,omitempty"`
	Qualification   string `json:"qualification,omitempty"`
	FirstName       string `json:"firstName,omitempty"`
	LastName        string `json:"lastName,omitempty"`
	MaidenName      string `json:"maidenName,omitempty"`
	BirthDate       string `json:"birthDate,omitempty"`
	Age             int    `json:"age,omitempty"`
	MaritalStatus   string `json:"maritalStatus,omitempty"`
	SpouseFirstName string `json:"spouseFirstName,omitempty"`
	SpouseLastName  string `json:"spouseLastName,omitempty"`

	// Company fields
	Name             string `json:"name,omitempty"`
	LegalType        string `json:"type,omitempty"`
	Siret            string `json:"siret,omitempty"`
	ManagerFirstName string `json:"managerFirstName,omitempty"`
	ManagerLastName  string `json:"managerLastName,omitempty"`

	// Shared
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// NewIndividualOwner constructs an individual owner.
func NewIndividualOwner(firstName, lastName string) Owner {
	return Owner{Kind: OwnerIndividual, FirstName: firstName, LastName: lastName}
}

// NewCompanyOwner constructs a company owner.
func NewCompanyOwner(name, legalType string) Owner {
	return Owner{Kind: OwnerCompany, Name: name, LegalType: legalType}
}

// UnmarshalJSON decodes an owner, inferring the kind tag once for legacy
// records that carry none: a name means a company, a lastName an individual.
func (o *Owner) UnmarshalJSON(data []byte) error {
	type alias Owner
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	if a.Kind == "" {
		switch {
		case a.Name != "":
			a.Kind = OwnerCompany
		case a.LastName != "":
			a.Kind = OwnerIndividual
		}
	}

	*o = Owner(a)
	return nil
}

// DisplayName returns the owner's name for display and letters:
// the company name, or the individual's first and last names joined.
// Empty if the record carries no usable name.
func (o Owner) DisplayName() string {
	if o.Kind == OwnerCompany {
		return o.Name
	}

	parts := make([]string, 0, 2)
	if o.FirstName != "" {
		parts = append(parts, o.FirstName)
	}
	if o.LastName != "" {
		parts = append(parts, o.LastName)
	}
	return strings.Join(parts, " ")
}
