package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/lib/pq"
)

// Lifecycle performs the provisioning and purge operations against a single
// database connection.
type Lifecycle struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewLifecycle creates a lifecycle manager over an open connection.
func NewLifecycle(db *sql.DB, logger *slog.Logger) *Lifecycle {
	return &Lifecycle{db: db, logger: logger}
}

// Provision applies the full schema script in a single multi-statement
// exec. Any SQL error aborts the script; statements already executed remain
// committed, which is safe because every statement is idempotent.
func (l *Lifecycle) Provision(ctx context.Context) error {
	l.logger.Info("executing database schema")

	if _, err := l.db.ExecContext(ctx, SchemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	return nil
}

// VerifyProvision returns the tables present in the public schema alongside
// any expected table that is missing.
func (l *Lifecycle) VerifyProvision(ctx context.Context) (present, missing []string, err error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT table_name FROM information_schema.tables
		WHERE table_schema = 'public'
		ORDER BY table_name
	`)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	found := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		present = append(present, name)
		found[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to list tables: %w", err)
	}

	for _, name := range ExpectedTables {
		if !found[name] {
			missing = append(missing, name)
		}
	}

	return present, missing, nil
}

// ExistingTables reports which of the candidate tables exist in the public
// schema, sorted by name.
func (l *Lifecycle) ExistingTables(ctx context.Context, candidates []string) ([]string, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT table_name FROM information_schema.tables
		WHERE table_schema = 'public'
		AND table_name = ANY($1)
		ORDER BY table_name
	`, pq.Array(candidates))
	if err != nil {
		return nil, fmt.Errorf("failed to query existing tables: %w", err)
	}
	defer rows.Close()

	var existing []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		existing = append(existing, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to query existing tables: %w", err)
	}

	return existing, nil
}

// RowCount returns the number of rows in the named table.
func (l *Lifecycle) RowCount(ctx context.Context, table string) (int64, error) {
	var count int64
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", pq.QuoteIdentifier(table))
	if err := l.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", table, err)
	}
	return count, nil
}

// PurgeTable deletes all rows from the named table, returning the number of
// rows removed. The delete autocommits: a failure in a later table does not
// roll it back.
func (l *Lifecycle) PurgeTable(ctx context.Context, table string) (int64, error) {
	query := fmt.Sprintf("DELETE FROM %s", pq.QuoteIdentifier(table))
	res, err := l.db.ExecContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to purge %s: %w", table, err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read rows affected for %s: %w", table, err)
	}
	return deleted, nil
}

// PurgePlan filters PurgeOrder down to the tables that actually exist,
// preserving the leaf-to-root delete order. The root table is never part of
// a plan.
func PurgePlan(existing []string) []string {
	found := make(map[string]bool, len(existing))
	for _, name := range existing {
		found[name] = true
	}

	var plan []string
	for _, name := range PurgeOrder {
		if found[name] {
			plan = append(plan, name)
		}
	}
	return plan
}
