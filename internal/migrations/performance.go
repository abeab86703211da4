package migrations

import (
	"context"
	"database/sql"
)

// GetPerformanceMigrations returns index migrations
func GetPerformanceMigrations() []Migration {
	return []Migration{
		{
			Version: 2,
			Name:    "add_record_lines_kind_index",
			Up: func(ctx context.Context, tx *sql.Tx) error {
				_, err := tx.ExecContext(ctx, "CREATE INDEX IF NOT EXISTS idx_record_lines_kind ON record_lines(kind, id)")
				return err
			},
			Down: func(ctx context.Context, tx *sql.Tx) error {
				_, err := tx.ExecContext(ctx, "DROP INDEX IF EXISTS idx_record_lines_kind")
				return err
			},
		},
	}
}
