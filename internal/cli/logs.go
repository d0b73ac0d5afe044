package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmorel/prospec/internal/activity"
	"github.com/jmorel/prospec/internal/auth"
	"github.com/jmorel/prospec/internal/store"
)

func newLogsCmd() *cobra.Command {
	var (
		letters bool
		clear   bool
	)

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show recorded activity (admin only)",
		Long:  "Shows the action log, or with --letters the per-property letter history. Requires an admin session.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogs(letters, clear)
		},
	}

	cmd.Flags().BoolVar(&letters, "letters", false, "show letter history instead of the action log")
	cmd.Flags().BoolVar(&clear, "clear", false, "clear the action log")

	return cmd
}

func runLogs(letters, clear bool) error {
	database, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(database)

	user, err := requireSession(database)
	if err != nil {
		return err
	}
	if user.Role != auth.RoleAdmin {
		return fmt.Errorf("admin access required")
	}

	logger := activity.NewLogger(store.New(database))

	if clear {
		if err := logger.Clear(); err != nil {
			return err
		}
		fmt.Println("✓ Action log cleared.")
		return nil
	}

	if letters {
		history, err := logger.AllLetterHistory()
		if err != nil {
			return err
		}
		if isJSON() {
			return printJSON(history)
		}
		if len(history) == 0 {
			fmt.Println("No letters recorded.")
			return nil
		}
		for propertyID, entries := range history {
			fmt.Printf("Property %s:\n", propertyID)
			for _, e := range entries {
				fmt.Printf("  [%s] %s by %s\n", e.Date, e.TemplateName, e.UserEmail)
			}
		}
		return nil
	}

	entries, err := logger.Entries()
	if err != nil {
		return err
	}
	if isJSON() {
		return printJSON(entries)
	}
	if len(entries) == 0 {
		fmt.Println("No activity recorded.")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("[%s] %s %s", e.Timestamp, e.UserEmail, e.Action)
		if id, ok := e.Details["propertyId"]; ok {
			fmt.Printf(" (property %v)", id)
		}
		fmt.Println()
	}
	return nil
}
