package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateSingleFlightIndex creates the partial unique index that enforces the
// single-flight invariant: at most one running OrchestratorExecution per
// stack. Ent indexes cannot express the WHERE clause, so this runs as raw
// SQL after migrations (idempotent).
func CreateSingleFlightIndex(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS orchestrator_executions_stack_running
		ON orchestrator_executions (stack_id)
		WHERE status = 'running'`)
	if err != nil {
		return fmt.Errorf("failed to create running-execution index: %w", err)
	}

	return nil
}
