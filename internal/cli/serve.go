package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmorel/prospec/internal/config"
	"github.com/jmorel/prospec/internal/logging"
	"github.com/jmorel/prospec/internal/web"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the JSON API server",
		Long:  "Starts an HTTP server exposing the prospection API: login, properties, letter templates, PDF generation and activity logs.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port)
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "port to listen on")

	return cmd
}

func runServe(port int) error {
	logging.Setup(config.FromEnv().DevMode)

	database, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(database)

	server, err := web.NewServer(database, loadProperties(), getAgent())
	if err != nil {
		return err
	}

	return server.ListenAndServe(port)
}
