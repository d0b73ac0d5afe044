package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jmorel/prospec/internal/template"
)

func newTemplatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Manage letter templates",
		Long:  "List, inspect, create, duplicate and delete the letter templates stored in the local database.",
	}

	cmd.AddCommand(
		newTemplatesListCmd(),
		newTemplatesShowCmd(),
		newTemplatesAddCmd(),
		newTemplatesDuplicateCmd(),
		newTemplatesDeleteCmd(),
	)

	return cmd
}

// openTemplateStore opens the database and the template store over it.
// The caller closes the returned database.
func openTemplateStore() (*template.Store, func(), error) {
	database, err := openDB()
	if err != nil {
		return nil, nil, err
	}

	templates, err := template.NewStore(database)
	if err != nil {
		closeDB(database)
		return nil, nil, err
	}
	return templates, func() { closeDB(database) }, nil
}

func newTemplatesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List letter templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplatesList()
		},
	}
}

func runTemplatesList() error {
	templates, done, err := openTemplateStore()
	if err != nil {
		return err
	}
	defer done()

	list, err := templates.List()
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(list)
	}

	if len(list) == 0 {
		fmt.Println("No templates.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tNAME\tTYPE\tMODIFIED"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	for _, t := range list {
		label := template.KindLabels[t.Type]
		if label == "" {
			label = string(t.Type)
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			t.ID, truncate(t.Name, 40), label, t.LastModified.Format("2006-01-02 15:04")); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	fmt.Printf("\nTotal: %d templates\n", len(list))
	return nil
}

func newTemplatesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <template-id>",
		Short: "Show one template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplatesShow(args[0])
		},
	}
}

func runTemplatesShow(id string) error {
	templates, done, err := openTemplateStore()
	if err != nil {
		return err
	}
	defer done()

	t, err := templates.Get(id)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(t)
	}

	fmt.Printf("Template %s\n", t.ID)
	fmt.Printf("  Name:        %s\n", t.Name)
	fmt.Printf("  Type:        %s\n", t.Type)
	if t.Description != "" {
		fmt.Printf("  Description: %s\n", t.Description)
	}
	if t.CreatedBy != "" {
		fmt.Printf("  Created by:  %s\n", t.CreatedBy)
	}
	fmt.Printf("  Modified:    %s\n", t.LastModified.Format("2006-01-02 15:04"))
	fmt.Printf("\n%s\n", t.HTMLContent)
	return nil
}

func newTemplatesAddCmd() *cobra.Command {
	var (
		name        string
		kind        string
		description string
		file        string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a template from an HTML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplatesAdd(name, kind, description, file)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "template name (required)")
	cmd.Flags().StringVar(&kind, "type", string(template.KindContact), "template type (offer|contact|follow-up|legal)")
	cmd.Flags().StringVar(&description, "description", "", "template description")
	cmd.Flags().StringVar(&file, "file", "", "HTML content file (required)")

	return cmd
}

func runTemplatesAdd(name, kind, description, file string) error {
	if file == "" {
		return fmt.Errorf("--file is required")
	}
	content, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("reading template file: %w", err)
	}

	database, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(database)

	user, err := requireSession(database)
	if err != nil {
		return err
	}

	templates, err := template.NewStore(database)
	if err != nil {
		return err
	}

	created, err := templates.Create(template.LetterTemplate{
		Name:        name,
		Type:        template.Kind(kind),
		Description: description,
		HTMLContent: string(content),
		CreatedBy:   user.Email,
	})
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(created)
	}
	fmt.Printf("✓ Template %s created.\n", created.ID)
	return nil
}

func newTemplatesDuplicateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "duplicate <template-id>",
		Short: "Duplicate a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplatesDuplicate(args[0])
		},
	}
}

func runTemplatesDuplicate(id string) error {
	database, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(database)

	user, err := requireSession(database)
	if err != nil {
		return err
	}

	templates, err := template.NewStore(database)
	if err != nil {
		return err
	}

	dup, err := templates.Duplicate(id, user.Email)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(dup)
	}
	fmt.Printf("✓ Created %s (%s).\n", dup.ID, dup.Name)
	return nil
}

func newTemplatesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <template-id>",
		Short: "Delete a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplatesDelete(args[0])
		},
	}
}

func runTemplatesDelete(id string) error {
	templates, done, err := openTemplateStore()
	if err != nil {
		return err
	}
	defer done()

	if err := templates.Delete(id); err != nil {
		return err
	}

	fmt.Printf("✓ Template %s deleted.\n", id)
	return nil
}
