package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/NejeNejeNeje/ropa-sub001/config"
	"github.com/NejeNejeNeje/ropa-sub001/internal/app"
	"github.com/NejeNejeNeje/ropa-sub001/internal/db"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ropa",
		Short: "Swap marketplace matching and reputation core",
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run()
		},
	})

	var migrationsPath string
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfigOrPanic()
			return db.RunMigrations(cfg.DBConfig, migrationsPath)
		},
	}
	migrateCmd.Flags().StringVar(&migrationsPath, "path", "migrations", "path to migration files")
	rootCmd.AddCommand(migrateCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
