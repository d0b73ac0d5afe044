package letter

import (
	"strings"
	"testing"

	"github.com/jmorel/prospec/internal/property"
)

func TestSubstituteReplacesAllTokens(t *testing.T) {
	values := Resolve(fullProperty(), testAgent, testDate)

	out := Substitute(DefaultTemplate, values)

	for _, v := range Variables {
		if strings.Contains(out, v.Token) {
			t.Errorf("token %s survived substitution", v.Token)
		}
	}
	if !strings.Contains(out, "Martin Dupont") {
		t.Error("expected resolved owner name in output")
	}
	if !strings.Contains(out, "450 000 €") {
		t.Error("expected resolved price in output")
	}
}

func TestSubstituteSinglePassDoesNotRecurse(t *testing.T) {
	// An adversarial owner named after a token must not be re-substituted
	// by the later price rule.
	p := fullProperty()
	p.Owners = []property.Owner{property.NewIndividualOwner("", "{{prix_bien}}")}

	values := Resolve(p, testAgent, testDate)
	out := Substitute("Bonjour {{nom_proprietaire}}, prix : {{prix_bien}}", values)

	want := "Bonjour {{prix_bien}}, prix : 450 000 €"
	if out != want {
		t.Errorf("out = %q, want %q", out, want)
	}
}

func TestSubstituteIsIdempotentOnceResolved(t *testing.T) {
	values := Resolve(fullProperty(), testAgent, testDate)

	once := Substitute(DefaultTemplate, values)
	twice := Substitute(once, values)

	if once != twice {
		t.Error("second substitution changed fully-resolved output")
	}
}

func TestSubstituteLeavesUnknownTokens(t *testing.T) {
	out := Substitute("Hello {{unknown_token}}", map[string]string{})
	if out != "Hello {{unknown_token}}" {
		t.Errorf("out = %q, want unknown token untouched", out)
	}
}

func TestSubstituteEmptyTemplate(t *testing.T) {
	if out := Substitute("", map[string]string{"{{x}}": "y"}); out != "" {
		t.Errorf("out = %q, want empty", out)
	}
}
