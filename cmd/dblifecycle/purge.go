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

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete all rows from every table except users",
	Long: `Deletes all rows from the dependent tables in foreign-key order
(chat_history, notes, document_vectors, documents, notebooks, sessions),
preserving the users table. Tables absent from the live schema are skipped.

Each delete commits independently: if a later delete fails, earlier tables
stay purged.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		err := runPurge(cmd.Context())
		if errors.Is(err, prompt.ErrCancelled) {
			fmt.Println("\nCleanup cancelled by user")
			return nil
		}
		return err
	},
}

func runPurge(ctx context.Context) error {
	fmt.Println("=== NotebookAI Database Cleanup ===")
	fmt.Println()
	fmt.Println("WARNING: This will delete ALL data except users!")
	fmt.Println("The following tables will be cleared:")
	for _, table := range database.PurgeOrder {
		fmt.Printf("- %s\n", table)
	}
	fmt.Printf("\nThe '%s' table will be preserved.\n", database.RootTable)
	fmt.Println("Note: each delete commits on its own; a mid-run failure leaves earlier tables purged.")
	fmt.Println()

	confirmed, err := prompter.Confirm("Are you sure you want to proceed?")
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Println("Cleanup cancelled.")
		return nil
	}
	fmt.Println()

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

	existing, err := lc.ExistingTables(ctx, database.PurgeOrder)
	if err != nil {
		return err
	}

	plan := database.PurgePlan(existing)
	if len(plan) == 0 {
		fmt.Println("No tables found to clean up.")
		return nil
	}
	fmt.Printf("Found tables to clean: %s\n", strings.Join(existing, ", "))

	fmt.Println("\nCurrent row counts:")
	for _, table := range existing {
		count, err := lc.RowCount(ctx, table)
		if err != nil {
			return err
		}
		fmt.Printf("- %s: %d rows\n", table, count)
	}

	userCount, err := lc.RowCount(ctx, database.RootTable)
	if err != nil {
		return err
	}
	fmt.Printf("- %s: %d rows (will be preserved)\n", database.RootTable, userCount)

	fmt.Println("\nExecuting cleanup queries...")

	var totalDeleted int64
	for _, table := range plan {
		fmt.Printf("Cleaning %s...\n", table)
		deleted, err := lc.PurgeTable(ctx, table)
		if err != nil {
			return err
		}
		totalDeleted += deleted
		fmt.Printf("Deleted %d rows from %s\n", deleted, table)
		logger.Info("purged table", "table", table, "rows", deleted)
	}

	fmt.Println("\nCleanup completed successfully!")
	fmt.Printf("Total rows deleted: %d\n", totalDeleted)
	fmt.Printf("Users preserved: %d rows\n", userCount)

	fmt.Println("\nVerifying cleanup...")
	for _, table := range plan {
		count, err := lc.RowCount(ctx, table)
		if err != nil {
			return err
		}
		fmt.Printf("- %s: %d rows remaining\n", table, count)
	}

	remainingUsers, err := lc.RowCount(ctx, database.RootTable)
	if err != nil {
		return err
	}
	fmt.Printf("- %s: %d rows (preserved)\n", database.RootTable, remainingUsers)

	fmt.Println("\n=== Cleanup Complete ===")
	fmt.Println("Your NotebookAI database has been cleaned up.")
	fmt.Println("All user data has been preserved.")

	logger.Info("purge complete", "tables", len(plan), "rows_deleted", totalDeleted, "users_preserved", remainingUsers)
	return nil
}
