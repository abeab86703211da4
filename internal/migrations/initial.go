package migrations

import (
	"context"
	"database/sql"
)

// GetInitialMigrations returns the migrations that create the line table
func GetInitialMigrations() []Migration {
	return []Migration{
		{
			Version: 1,
			Name:    "create_record_lines",
			Up: func(ctx context.Context, tx *sql.Tx) error {
				_, err := tx.ExecContext(ctx, `
					CREATE TABLE IF NOT EXISTS record_lines (
						id INTEGER PRIMARY KEY AUTOINCREMENT,
						kind TEXT NOT NULL,
						line TEXT NOT NULL,
						created_at DATETIME DEFAULT CURRENT_TIMESTAMP
					)
				`)
				return err
			},
			Down: func(ctx context.Context, tx *sql.Tx) error {
				_, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS record_lines")
				return err
			},
		},
	}
}
