// Package template provides letter template storage and lifecycle.
package template

import "time"

// Kind classifies a letter template.
type Kind string

const (
	KindOffer    Kind = "offer"
	KindContact  Kind = "contact"
	KindFollowUp Kind = "follow-up"
	KindLegal    Kind = "legal"
)

// ValidKind returns true if k is a known template kind.
func ValidKind(k string) bool {
	switch Kind(k) {
	case KindOffer, KindContact, KindFollowUp, KindLegal:
		return true
	}
	return false
}

// KindLabels maps each template kind to its display label.
var KindLabels = map[Kind]string{
	KindOffer:    "Offre",
	KindContact:  "Contact",
	KindFollowUp: "Suivi",
	KindLegal:    "Légal",
}

// LetterTemplate is an editable letter model.
type LetterTemplate struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Type         Kind      `json:"type"`
	HTMLContent  string    `json:"htmlContent"`
	CreatedBy    string    `json:"createdBy"`
	LastModified time.Time `json:"lastModified"`
}
