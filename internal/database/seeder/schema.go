package seeder

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"inclusive-jobs/internal/database"
)

var ErrSchemaMismatch = errors.New("schema mismatch")

// checkTables loads the public columns of every listed table in one query and
// reports all missing ones together.
func checkTables(ctx context.Context, q database.Querier, tables []Table) error {
	if len(tables) == 0 {
		return nil
	}

	names := make([]string, 0, len(tables))
	for _, t := range tables {
		if t.Name == "" {
			return fmt.Errorf("%w: empty table name", ErrSchemaMismatch)
		}
		names = append(names, t.Name)
	}

	rows, err := q.Query(ctx,
		`SELECT table_name, column_name
		   FROM information_schema.columns
		  WHERE table_schema = 'public' AND table_name = ANY($1)`,
		names,
	)
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}
	defer rows.Close()

	have := map[string]struct{}{}
	for rows.Next() {
		var table, col string
		if err := rows.Scan(&table, &col); err != nil {
			return fmt.Errorf("read schema: %w", err)
		}
		have[table+"."+col] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("read schema: %w", err)
	}

	var missing []string
	for _, t := range tables {
		for _, c := range t.Columns {
			if _, ok := have[t.Name+"."+c]; !ok {
				missing = append(missing, t.Name+"."+c)
			}
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("%w: missing %s", ErrSchemaMismatch, strings.Join(missing, ", "))
	}
	return nil
}
