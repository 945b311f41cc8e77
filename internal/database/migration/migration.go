package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

type migrationStep struct {
	Name string
	SQL  string
}

// sentinelTable is created by the last table step; its presence means the schema is in place.
const sentinelTable = "public.review"

var steps = []migrationStep{
	{
		Name: "create_table_pokemon",
		SQL: `CREATE TABLE IF NOT EXISTS pokemon (
  id          SERIAL      PRIMARY KEY,
  name        TEXT        NOT NULL,
  type        TEXT        NOT NULL,
  sprite_path TEXT,
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_pokemon_type",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_pokemon_type ON pokemon (type);`,
	},
	{
		Name: "create_table_review",
		SQL: `CREATE TABLE IF NOT EXISTS review (
  id          SERIAL      PRIMARY KEY,
  title       TEXT        NOT NULL,
  content     TEXT        NOT NULL,
  stars       INTEGER     NOT NULL CHECK (stars BETWEEN 1 AND 5),
  pokemon_id  INTEGER     REFERENCES pokemon (id) ON DELETE CASCADE,
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_review_pokemon_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_review_pokemon_id ON review (pokemon_id);`,
	},
}

// EnsureMigrated creates the pokemon and review tables when the sentinel table is missing.
func EnsureMigrated(ctx context.Context, db *sql.DB, log logrus.FieldLogger, dbHost string) error {
	start := time.Now()
	base := log.WithFields(logrus.Fields{
		"component": "database",
		"db_host":   dbHost,
	})

	base.WithFields(logrus.Fields{"event": "db_migration_check", "status": "starting"}).Info("checking schema")

	var exists bool
	err := db.QueryRowContext(ctx, "SELECT to_regclass($1) IS NOT NULL", sentinelTable).Scan(&exists)
	if err != nil {
		base.WithFields(logrus.Fields{
			"event":       "db_migration_failed",
			"status":      "error",
			"duration_ms": time.Since(start).Milliseconds(),
		}).WithError(err).Error("failed to check sentinel table")
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		base.WithFields(logrus.Fields{
			"event":       "db_migration_skip",
			"status":      "success",
			"duration_ms": time.Since(start).Milliseconds(),
		}).Info("schema already exists, skipping migration")
		return nil
	}

	base.WithFields(logrus.Fields{"event": "db_migration_start", "status": "in_progress"}).Info("applying schema")

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			base.WithFields(logrus.Fields{
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			}).WithError(err).Error("migration step failed")
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		base.WithFields(logrus.Fields{
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		}).Info("migration step applied")
	}

	base.WithFields(logrus.Fields{
		"event":       "db_migration_success",
		"status":      "success",
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("schema migrated")

	return nil
}
