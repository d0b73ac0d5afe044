package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmorel/prospec/internal/activity"
	"github.com/jmorel/prospec/internal/letter"
	"github.com/jmorel/prospec/internal/property"
	"github.com/jmorel/prospec/internal/store"
	"github.com/jmorel/prospec/internal/template"
)

func newGenerateCmd() *cobra.Command {
	var (
		templateID string
		out        string
	)

	cmd := &cobra.Command{
		Use:   "generate <property-id>",
		Short: "Generate an owner letter as PDF",
		Long:  "Resolves the template variables for a property, substitutes them into the letter template, and writes the result as a PDF file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(args[0], templateID, out)
		},
	}

	cmd.Flags().StringVar(&templateID, "template", template.DefaultID, "template ID")
	cmd.Flags().StringVar(&out, "out", "courrier.pdf", "output PDF path")

	return cmd
}

func runGenerate(propertyID, templateID, out string) error {
	database, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(database)

	user, err := requireSession(database)
	if err != nil {
		return err
	}

	prop := property.FindByID(visibleTo(user, loadProperties()), propertyID)
	if prop == nil {
		return fmt.Errorf("property %s not found", propertyID)
	}

	templates, err := template.NewStore(database)
	if err != nil {
		return err
	}
	tmpl, err := templates.Get(templateID)
	if err != nil {
		return err
	}

	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	generator := letter.NewGenerator(getAgent(), letter.NewPDFRenderer())
	if err := generator.PDF(tmpl.HTMLContent, prop, file); err != nil {
		if cerr := file.Close(); cerr != nil {
			return fmt.Errorf("%w (also failed to close output: %v)", err, cerr)
		}
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}

	// Record the generation; a logging failure does not undo the PDF.
	logger := activity.NewLogger(store.New(database))
	details := map[string]interface{}{"propertyId": prop.ID, "templateId": tmpl.ID}
	if err := logger.Log(user.Email, activity.ActionPDFGenerated, details); err != nil {
		fmt.Fprintf(os.Stderr, "warning: recording pdf generation: %v\n", err)
	}
	if err := logger.Log(user.Email, activity.ActionTemplateUsed, details); err != nil {
		fmt.Fprintf(os.Stderr, "warning: recording template use: %v\n", err)
	}
	if err := logger.LogLetter(prop.ID, tmpl.ID, tmpl.Name, user.Email); err != nil {
		fmt.Fprintf(os.Stderr, "warning: recording letter history: %v\n", err)
	}

	fmt.Printf("✓ Letter written to %s\n", out)
	return nil
}
