// Package cli defines the cobra command tree for prospec.
package cli

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmorel/prospec/internal/auth"
	"github.com/jmorel/prospec/internal/config"
	"github.com/jmorel/prospec/internal/db"
	"github.com/jmorel/prospec/internal/property"
	"github.com/jmorel/prospec/internal/store"
)

var (
	flagFormat     string
	flagDataDir    string
	flagProperties string
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "prospec",
		Short:         "Manage real-estate prospection data",
		Long:          "A tool to browse prospected properties, generate owner letters as PDF, and manage letter templates. Data lives in a local SQLite database.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagDataDir, "data", "", "data directory (default: ~/.config/prospec)")
	root.PersistentFlags().StringVar(&flagProperties, "properties", "", "property data file (default: bundled demo set)")

	root.AddCommand(
		newListCmd(),
		newShowCmd(),
		newMapCmd(),
		newGenerateCmd(),
		newTemplatesCmd(),
		newLogsCmd(),
		newServeCmd(),
		newLoginCmd(),
		newLogoutCmd(),
		newStatusCmd(),
		newVersionCmd(),
	)

	return root
}

// openDB opens the SQLite database using the --data flag, the environment,
// or the default data directory.
func openDB() (*sql.DB, error) {
	cfg := config.FromEnv()
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	path, err := cfg.DatabasePath()
	if err != nil {
		return nil, err
	}
	return db.Open(path)
}

// loadProperties returns the property set from the --properties flag, the
// environment, or the bundled demo data.
func loadProperties() []*property.Property {
	path := flagProperties
	if path == "" {
		path = os.Getenv("PROSPEC_PROPERTIES")
	}
	return property.Load(path)
}

// requireSession restores the saved session or fails with a login hint.
func requireSession(database *sql.DB) (auth.User, error) {
	sessions := auth.NewSessionStore(store.New(database))
	user, _, ok := sessions.Restore()
	if !ok {
		return auth.User{}, fmt.Errorf("not logged in (run 'prospec login')")
	}
	return user, nil
}

// visibleTo applies the section access filter for the session user.
func visibleTo(user auth.User, props []*property.Property) []*property.Property {
	return property.VisibleTo(props, string(user.Role), user.Sections)
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}

// closeDB closes the database, logging any error to stderr.
func closeDB(database *sql.DB) {
	if err := database.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: closing database: %v\n", err)
	}
}
