package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/notebookai/dblifecycle/internal/database"
	"github.com/notebookai/dblifecycle/internal/prompt"
)

var provisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Create the schema and seed rows over a direct connection",
	Long: `Connects directly to PostgreSQL and applies the idempotent schema
script: the pgvector extension, seven tables, seven indexes, and three seed
rows. Safe to run repeatedly.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("=== NotebookAI Database Setup ===")
		fmt.Println()

		err := runProvision(cmd.Context())
		if errors.Is(err, prompt.ErrCancelled) {
			fmt.Println("\nSetup cancelled by user")
			return nil
		}
		return err
	},
}

func runProvision(ctx context.Context) error {
	params, err := promptConnectionParams()
	if err != nil {
		return err
	}

	db, err := openDatabase(ctx, params)
	if err != nil {
		return err
	}
	defer db.Close()

	lc := database.NewLifecycle(db, logger)

	fmt.Println("Executing database schema...")
	if err := lc.Provision(ctx); err != nil {
		return err
	}

	fmt.Println("Database schema created successfully!")
	fmt.Println("Sample data inserted!")

	present, missing, err := lc.VerifyProvision(ctx)
	if err != nil {
		return err
	}

	fmt.Println("\nCreated tables:", strings.Join(present, ", "))
	if len(missing) > 0 {
		fmt.Println("Missing tables:", strings.Join(missing, ", "))
	}

	fmt.Println("\n=== Setup Complete ===")
	fmt.Println("Your NotebookAI database is ready to use.")
	fmt.Println("\nSample data created:")
	fmt.Println("- Demo user: demo@notebookai.com")
	fmt.Println("- Sample notebook: 'Sample Research Notebook'")
	fmt.Println("- Welcome note with instructions")

	logger.Info("provisioning complete", "tables", len(present), "missing", len(missing))
	return nil
}
