package letter

import (
	"fmt"
	"io"
	"time"

	"github.com/jmorel/prospec/internal/property"
)

// Generator orchestrates letter production: resolve the token values for a
// property, substitute them into the template, and hand the final HTML to
// the renderer.
type Generator struct {
	agent    Agent
	renderer Renderer
	now      func() time.Time
}

// NewGenerator creates a letter generator.
func NewGenerator(agent Agent, renderer Renderer) *Generator {
	return &Generator{agent: agent, renderer: renderer, now: time.Now}
}

// HTML resolves and substitutes the template for a property, returning the
// final letter HTML.
func (g *Generator) HTML(template string, p *property.Property) string {
	values := Resolve(p, g.agent, g.now())
	return Substitute(template, values)
}

// PDF generates the letter and writes it as a PDF to w. A renderer failure
// is returned to the caller; there is no retry.
func (g *Generator) PDF(template string, p *property.Property, w io.Writer) error {
	if err := g.renderer.Render(g.HTML(template, p), w); err != nil {
		return fmt.Errorf("rendering letter for property %s: %w", p.ID, err)
	}
	return nil
}
