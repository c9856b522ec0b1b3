package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mariana/talent-hub/internal/db"
)

var migrateSchemaPath string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Long:  `Apply schema.sql to the database pointed to by DATABASE_URL. The schema is idempotent.`,
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().StringVar(&migrateSchemaPath, "schema", "schema.sql", "Path to the schema file")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(_ *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	schema, err := os.ReadFile(migrateSchemaPath)
	if err != nil {
		return fmt.Errorf("failed to read schema file: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.ExecSchema(ctx, string(schema)); err != nil {
		return err
	}

	fmt.Println("Schema applied.")
	return nil
}
