package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/notebookai/dblifecycle/internal/config"
	"github.com/notebookai/dblifecycle/internal/logging"
	"github.com/notebookai/dblifecycle/internal/prompt"
)

// Exit codes. User cancellation (interrupt, EOF, or a "no" confirmation) is
// success, not an error.
const (
	exitSuccess = 0
	exitError   = 1
)

// Set by PersistentPreRunE so all subcommands can use them.
var (
	cfg      config.Config
	logger   *slog.Logger
	prompter *prompt.Prompter
)

var rootCmd = &cobra.Command{
	Use:   "dblifecycle",
	Short: "Provision and purge the NotebookAI database",
	Long: `dblifecycle performs one-time administrative operations against the
NotebookAI PostgreSQL/Supabase database. All connection parameters are
gathered interactively; environment variables (or a .env file) pre-fill the
prompts.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logger, err = logging.New(cfg.Logging)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		logger = logger.With("run_id", uuid.NewString())

		prompter = prompt.NewStdin()

		cancelOnSignal()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(provisionCmd)
	rootCmd.AddCommand(provisionRemoteCmd)
	rootCmd.AddCommand(purgeCmd)
}

// cancelOnSignal maps an interrupt during a prompt or a running statement to
// a clean exit.
func cancelOnSignal() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-c
		fmt.Println("\nCancelled by user")
		os.Exit(exitSuccess)
	}()
}
