package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmorel/prospec/internal/auth"
	"github.com/jmorel/prospec/internal/store"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the stored session",
		Long:  "Shows the logged-in account and its allowed sections, if a session is stored.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus()
		},
	}
}

func runStatus() error {
	database, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(database)

	sessions := auth.NewSessionStore(store.New(database))
	user, _, ok := sessions.Restore()
	if !ok {
		fmt.Println("Not logged in.")
		fmt.Println("\nRun 'prospec login' to authenticate.")
		return nil
	}

	if isJSON() {
		return printJSON(user)
	}

	fmt.Printf("Account:  %s <%s>\n", user.Name, user.Email)
	fmt.Printf("Role:     %s\n", user.Role)
	if user.Role == auth.RoleAdmin || len(user.Sections) == 0 {
		fmt.Println("Sections: all")
	} else {
		fmt.Printf("Sections: %s\n", strings.Join(user.Sections, ", "))
	}
	return nil
}
