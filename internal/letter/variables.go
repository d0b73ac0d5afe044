// Package letter implements template variable resolution and letter
// generation: a fixed catalog of {{placeholder}} tokens, per-token value
// derivation from a property, single-pass substitution, and PDF export.
package letter

// Variable is one catalog entry: a literal token, its human label, and the
// example value substituted when real data is missing.
type Variable struct {
	Token   string `json:"token"`
	Label   string `json:"label"`
	Example string `json:"example"`
}

// Variables is the fixed, process-wide token catalog. It is not
// user-editable; templates reference these tokens literally.
var Variables = []Variable{
	{Token: "{{nom_proprietaire}}", Label: "Nom du propriétaire", Example: "M. Dupont"},
	{Token: "{{adresse_bien}}", Label: "Adresse du bien", Example: "123 Rue Principale"},
	{Token: "{{ville_bien}}", Label: "Ville", Example: "Paris"},
	{Token: "{{code_postal}}", Label: "Code postal", Example: "75001"},
	{Token: "{{prix_bien}}", Label: "Prix du bien", Example: "450 000 €"},
	{Token: "{{surface_bien}}", Label: "Surface du bien", Example: "85 m²"},
	{Token: "{{date_courrier}}", Label: "Date du courrier", Example: "15 novembre 2023"},
	{Token: "{{nom_agent}}", Label: "Nom de l'agent", Example: "Sophie Martin"},
	{Token: "{{telephone_agent}}", Label: "Téléphone de l'agent", Example: "06 12 34 56 78"},
	{Token: "{{email_agent}}", Label: "Email de l'agent", Example: "sophie.martin@exemple.com"},
}

// Agent identifies the prospection agent signing the letters.
type Agent struct {
	Name  string `yaml:"name" json:"name"`
	Phone string `yaml:"phone" json:"phone"`
	Email string `yaml:"email" json:"email"`
}

// DefaultTemplate is the standard prospection letter shipped with the app.
const DefaultTemplate = `<div style="font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px;">
  <div style="text-align: right; margin-bottom: 40px;">
    <p><strong>{{nom_agent}}</strong><br>
    {{telephone_agent}}<br>
    {{email_agent}}<br>
    {{date_courrier}}</p>
  </div>

  <div style="margin-bottom: 40px;">
    <p><strong>{{nom_proprietaire}}</strong><br>
    {{adresse_bien}}<br>
    {{code_postal}} {{ville_bien}}</p>
  </div>

  <div style="margin-bottom: 30px;">
    <p><strong>Objet :</strong> Proposition concernant votre bien situé {{adresse_bien}}</p>
  </div>

  <p>Madame, Monsieur,</p>

  <p>Je me permets de vous contacter au sujet de votre bien immobilier situé {{adresse_bien}} à {{ville_bien}} ({{code_postal}}).</p>

  <p>Suite à une analyse approfondie du marché immobilier dans votre secteur, je souhaite vous faire part de mon intérêt pour votre propriété d'une surface de {{surface_bien}}.</p>

  <p>Je serais ravi(e) de pouvoir échanger avec vous sur ce sujet, au cours d'un entretien à votre convenance, afin de vous présenter en détail les opportunités actuelles.</p>

  <p>Je reste à votre entière disposition pour toute information complémentaire et vous prie d'agréer, Madame, Monsieur, l'expression de mes salutations distinguées.</p>

  <div style="margin-top: 40px;">
    <p><strong>{{nom_agent}}</strong><br>
    Conseiller immobilier<br>
    {{telephone_agent}}</p>
  </div>
</div>`
