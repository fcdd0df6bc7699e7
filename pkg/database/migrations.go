package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These indexes enable efficient full-text search on the requirement and
// error_message fields of workflow executions.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// GIN index for requirement full-text search
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_workflow_executions_requirement_gin
		ON workflow_executions USING gin(to_tsvector('english', requirement))`)
	if err != nil {
		return fmt.Errorf("failed to create requirement GIN index: %w", err)
	}

	// GIN index for error_message full-text search
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_workflow_executions_error_message_gin
		ON workflow_executions USING gin(to_tsvector('english', COALESCE(error_message, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create error_message GIN index: %w", err)
	}

	return nil
}
