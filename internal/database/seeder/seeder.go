package seeder

import (
	"context"

	"inclusive-jobs/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

// Table names the columns a seeder writes.
type Table struct {
	Name    string
	Columns []string
}

// SchemaAware seeders are checked against information_schema before they run.
type SchemaAware interface {
	Tables() []Table
}
