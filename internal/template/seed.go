package template

import (
	"time"

	"github.com/jmorel/prospec/internal/letter"
)

// DefaultID is the ID of the standard prospection letter template.
const DefaultID = "default"

// demoTemplates is the bundled template set, inserted on first open.
var demoTemplates = []LetterTemplate{
	{
		ID:           DefaultID,
		Name:         "Modèle classique",
		Description:  "Lettre de prospection standard avec coordonnées de l'agent.",
		Type:         KindContact,
		HTMLContent:  letter.DefaultTemplate,
		CreatedBy:    "Admin",
		LastModified: time.Date(2023, 11, 12, 8, 0, 0, 0, time.UTC),
	},
	{
		ID:          "1",
		Name:        "Offre d'achat standard",
		Description: "Modèle de lettre pour présenter une offre d'achat formelle avec paramètres ajustables.",
		Type:        KindOffer,
		HTMLContent: `<div>
  <h2>Offre d'achat standard</h2>
  <p>Madame, Monsieur,</p>
  <p>Prix d'achat proposé : {{prix_bien}}</p>
  <p>Cordialement,<br/>{{nom_agent}}</p>
</div>`,
		CreatedBy:    "Admin",
		LastModified: time.Date(2023, 11, 10, 10, 30, 0, 0, time.UTC),
	},
	{
		ID:          "2",
		Name:        "Premier contact propriétaire",
		Description: "Modèle pour initier le contact avec un propriétaire identifié.",
		Type:        KindContact,
		HTMLContent: `<div>
  <h2>Premier contact propriétaire</h2>
  <p>Bonjour {{nom_proprietaire}},</p>
  <p>Je souhaite vous contacter concernant votre bien situé {{adresse_bien}}.</p>
</div>`,
		CreatedBy:    "Admin",
		LastModified: time.Date(2023, 11, 5, 14, 45, 0, 0, time.UTC),
	},
	{
		ID:          "3",
		Name:        "Suivi après visite",
		Description: "Lettre de suivi pour remercier le propriétaire après une visite du bien.",
		Type:        KindFollowUp,
		HTMLContent: `<div>
  <h2>Suivi après visite</h2>
  <p>Bonjour {{nom_proprietaire}},</p>
  <p>Merci de nous avoir reçus lors de la visite de votre bien situé {{adresse_bien}}.</p>
  <p>{{nom_agent}}</p>
</div>`,
		CreatedBy:    "Admin",
		LastModified: time.Date(2023, 10, 28, 9, 15, 0, 0, time.UTC),
	},
	{
		ID:          "4",
		Name:        "Convocation assemblée copropriété",
		Description: "Modèle pour convoquer les propriétaires à une assemblée générale.",
		Type:        KindLegal,
		HTMLContent: `<div>
  <h2>Convocation assemblée copropriété</h2>
  <p>Vous êtes convié à l'assemblée générale des copropriétaires de l'immeuble situé {{adresse_bien}}, {{code_postal}} {{ville_bien}}.</p>
</div>`,
		CreatedBy:    "Admin",
		LastModified: time.Date(2023, 10, 15, 16, 30, 0, 0, time.UTC),
	},
}
