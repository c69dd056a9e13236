// Package main provides the dblifecycle CLI: one-time administrative
// operations (schema provisioning and data purge) against the NotebookAI
// PostgreSQL database.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// A .env in the working directory pre-fills the prompts; absence is fine.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitError)
	}
}
