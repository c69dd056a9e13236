package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/notebookai/dblifecycle/internal/database"
	"github.com/notebookai/dblifecycle/internal/prompt"
	"github.com/notebookai/dblifecycle/internal/supabase"
)

var provisionRemoteCmd = &cobra.Command{
	Use:   "provision-remote",
	Short: "Create the schema through the Supabase REST RPC endpoint",
	Long: `Applies the same idempotent schema script as provision, but through
the hosted exec_sql RPC using a service-role key instead of a direct
database connection.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("=== NotebookAI Database Setup (Remote) ===")
		fmt.Println()

		err := runProvisionRemote(cmd.Context())
		if errors.Is(err, prompt.ErrCancelled) {
			fmt.Println("\nSetup cancelled by user")
			return nil
		}
		return err
	},
}

func runProvisionRemote(ctx context.Context) error {
	fmt.Println("Please provide your Supabase credentials:")

	projectURL, err := prompter.LineDefault("SUPABASE_URL (e.g., https://your-project.supabase.co): ", cfg.Supabase.URL)
	if err != nil {
		return err
	}
	serviceKey, err := prompter.LineDefault("SUPABASE_SERVICE_ROLE_KEY: ", cfg.Supabase.ServiceRoleKey)
	if err != nil {
		return err
	}

	if projectURL == "" || serviceKey == "" {
		return fmt.Errorf("SUPABASE_URL and SUPABASE_SERVICE_ROLE_KEY are required")
	}

	projectRef, err := supabase.ProjectRef(projectURL)
	if err != nil {
		return err
	}

	// The key is a JWT; inspect its claims to catch an anon key or a key
	// from another project before sending anything.
	if info, err := supabase.InspectKey(serviceKey); err != nil {
		logger.Warn("could not inspect service key", "error", err)
	} else {
		if !info.IsServiceRole() {
			fmt.Printf("Warning: key role is %q, expected %q\n", info.Role, supabase.ServiceRoleName)
		}
		if info.ProjectRef != "" && info.ProjectRef != projectRef {
			fmt.Printf("Warning: key belongs to project %q, not %q\n", info.ProjectRef, projectRef)
		}
		if info.Expired(time.Now()) {
			fmt.Printf("Warning: key expired at %s\n", info.ExpiresAt.Format(time.RFC3339))
		}
	}

	fmt.Printf("\nConnecting to Supabase project: %s\n\n", projectRef)
	fmt.Println("Executing database schema...")

	client := supabase.NewClient(projectRef, serviceKey)
	if err := client.ExecSQL(ctx, database.SchemaSQL); err != nil {
		return err
	}

	fmt.Println("Database schema created successfully!")
	fmt.Println("Sample data inserted!")
	fmt.Println("\n=== Setup Complete ===")
	fmt.Println("Your NotebookAI database is ready to use.")
	fmt.Println("\nSample data created:")
	fmt.Println("- Demo user: demo@notebookai.com")
	fmt.Println("- Sample notebook: 'Sample Research Notebook'")
	fmt.Println("- Welcome note with instructions")

	logger.Info("remote provisioning complete", "project", projectRef)
	return nil
}
