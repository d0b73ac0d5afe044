package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmorel/prospec/internal/property"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <property-id>",
		Short: "Show one property",
		Long:  "Show the full details of one property visible to the logged-in account.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(args[0])
		},
	}
}

func runShow(id string) error {
	database, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(database)

	user, err := requireSession(database)
	if err != nil {
		return err
	}

	prop := property.FindByID(visibleTo(user, loadProperties()), id)
	if prop == nil {
		return fmt.Errorf("property %s not found", id)
	}

	if isJSON() {
		return printJSON(prop)
	}
	printPropertySummary(prop)
	return nil
}
