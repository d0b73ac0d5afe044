package letter

import (
	"fmt"
	"html"
	"io"
	"regexp"
	"strings"

	"github.com/go-pdf/fpdf"
)

// Renderer turns final letter HTML into a document on w.
// The core only depends on this seam; rendering fidelity is the
// collaborator's concern.
type Renderer interface {
	Render(html string, w io.Writer) error
}

// A4 layout constants, in millimetres.
const (
	pageMargin = 10.0
	lineHeight = 5.5
)

// PDFRenderer writes letters as portrait A4 PDFs with fixed margins.
// The HTML is flattened to text paragraphs: tags carry layout intent the
// letter templates only use for paragraph breaks, so block boundaries
// become breaks and everything else is stripped.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDF renderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render implements Renderer.
func (r *PDFRenderer) Render(content string, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 11)

	// Core PDF fonts are cp1252; translate for accented French text.
	translate := pdf.UnicodeTranslatorFromDescriptor("")

	for _, line := range flattenHTML(content) {
		if line == "" {
			pdf.Ln(lineHeight / 2)
			continue
		}
		pdf.MultiCell(0, lineHeight, translate(line), "", "L", false)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("laying out letter: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

var (
	lineBreakTags  = regexp.MustCompile(`(?i)<br\s*/?>`)
	blockCloseTags = regexp.MustCompile(`(?i)</(p|div|h[1-6]|li|tr|ul|ol|table)>`)
	anyTag         = regexp.MustCompile(`<[^>]*>`)
)

// flattenHTML reduces letter HTML to a list of text lines; an empty string
// marks a paragraph break. Consecutive breaks collapse to one.
func flattenHTML(content string) []string {
	text := lineBreakTags.ReplaceAllString(content, "\n")
	text = blockCloseTags.ReplaceAllString(text, "\n\n")
	text = anyTag.ReplaceAllString(text, "")
	text = html.UnescapeString(text)

	var lines []string
	blankPending := false
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			if len(lines) > 0 {
				blankPending = true
			}
			continue
		}
		if blankPending {
			lines = append(lines, "")
			blankPending = false
		}
		lines = append(lines, line)
	}
	return lines
}
