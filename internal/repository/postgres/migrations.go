package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations contains all database migrations in order
var migrations = []Migration{
	{
		Version: 1,
		Name:    "initial_schema",
		SQL: `
			-- Create page_checks table: one row per completed extraction
			CREATE TABLE IF NOT EXISTS page_checks (
				id BIGSERIAL PRIMARY KEY,
				url TEXT NOT NULL,
				missing BOOLEAN NOT NULL,
				checked_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
			);

			CREATE INDEX IF NOT EXISTS idx_page_checks_url
			ON page_checks(url);

			CREATE INDEX IF NOT EXISTS idx_page_checks_checked_at
			ON page_checks(checked_at DESC);
		`,
	},
}

// RunMigrations executes all pending database migrations
func RunMigrations(db *sql.DB, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	// Create migrations table
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			applied_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	err = db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM migrations").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}

	logger.Info("Current migration version", "version", currentVersion)

	// Apply pending migrations
	applied := 0
	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		logger.Info("Applying migration",
			"version", migration.Version,
			"name", migration.Name,
		)

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", migration.Version, err)
		}

		if _, err := tx.Exec(migration.SQL); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to apply migration %d (%s): %w", migration.Version, migration.Name, err)
		}

		if _, err := tx.Exec("INSERT INTO migrations (version, name) VALUES ($1, $2)",
			migration.Version, migration.Name); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}

		applied++
		logger.Info("Migration applied successfully", "version", migration.Version)
	}

	if applied == 0 {
		logger.Info("No migrations to apply - database is up to date")
	} else {
		logger.Info("Database migrations completed", "applied", applied)
	}

	return nil
}

// GetMigrationStatus returns the current migration status
func GetMigrationStatus(db *sql.DB) (int, error) {
	var version int
	err := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM migrations").Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("failed to get migration status: %w", err)
	}
	return version, nil
}

// ResetDatabase drops all tables (for testing)
func ResetDatabase(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	logger.Warn("Resetting database - all data will be lost")

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	dropSQL := []string{
		"DROP TABLE IF EXISTS page_checks CASCADE",
		"DROP TABLE IF EXISTS migrations CASCADE",
	}

	for _, stmt := range dropSQL {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute drop statement: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reset transaction: %w", err)
	}

	logger.Info("Database reset completed")
	return nil
}
