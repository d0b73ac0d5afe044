package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmorel/prospec/internal/auth"
	"github.com/jmorel/prospec/internal/store"
)

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogout()
		},
	}
}

func runLogout() error {
	database, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(database)

	sessions := auth.NewSessionStore(store.New(database))
	if err := sessions.Clear(); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}

	fmt.Println("✓ Logged out.")
	return nil
}
