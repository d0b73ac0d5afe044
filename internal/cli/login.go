package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmorel/prospec/internal/auth"
	"github.com/jmorel/prospec/internal/store"
)

func newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store a session",
		Long:  "Validates credentials against the demo account list and stores the session locally.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(email, password)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email (prompted if omitted)")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted if omitted)")

	return cmd
}

func runLogin(email, password string) error {
	reader := bufio.NewReader(os.Stdin)

	if email == "" {
		fmt.Print("Email: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		email = strings.TrimSpace(line)
	}
	if password == "" {
		fmt.Print("Password: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		password = strings.TrimSpace(line)
	}

	// No simulated latency on the CLI path; the delay exists for UI realism.
	service := auth.NewServiceWithDelay(0)
	result, err := service.Login(context.Background(), email, password)
	if err != nil {
		return fmt.Errorf("logging in: %w", err)
	}
	if !result.Success {
		return fmt.Errorf("%s", result.Error)
	}

	database, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(database)

	sessions := auth.NewSessionStore(store.New(database))
	if err := sessions.Save(*result.User, result.Token); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}

	fmt.Printf("✓ Logged in as %s (%s)\n", result.User.Name, result.User.Role)
	return nil
}
