// Package dataset supplies the grid's rows: either a table read from a
// SQLite file or a generated sample set.
package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite"

	"gridsel/internal/domain"
	"gridsel/internal/eventbus"
)

// Service loads datasets and publishes the result on the event bus.
type Service interface {
	Load(ctx context.Context) error
}

type service struct {
	bus        eventbus.EventBus
	path       string
	table      string
	sampleRows int

	mu      sync.Mutex
	loading bool
}

// NewService creates a dataset service. An empty path selects the generated
// sample dataset. The service reloads itself on ReloadRequestedEvent.
func NewService(bus eventbus.EventBus, path, table string, sampleRows int) Service {
	s := &service{
		bus:        bus,
		path:       path,
		table:      table,
		sampleRows: sampleRows,
	}

	bus.Subscribe(eventbus.EventReloadRequested, func(e eventbus.DomainEvent) {
		go func() {
			if err := s.Load(context.Background()); err != nil {
				log.Printf("dataset reload failed: %v", err)
			}
		}()
	})

	return s
}

// Load reads the configured source and publishes RowsLoadedEvent, or
// DatasetErrorEvent on failure.
func (s *service) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return fmt.Errorf("load already in progress")
	}
	s.loading = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	var (
		ds  domain.Dataset
		err error
	)
	if s.path == "" {
		ds = SampleDataset(s.sampleRows)
	} else {
		ds, err = s.loadSQLite(ctx)
	}
	if err != nil {
		s.bus.Publish(eventbus.DatasetErrorEvent{
			Message: fmt.Sprintf("loading %s", s.path),
			Err:     err,
		})
		return err
	}

	log.Printf("dataset %q loaded: %d rows, %d columns", ds.Name, len(ds.Rows), len(ds.Columns))
	s.bus.Publish(eventbus.RowsLoadedEvent{Dataset: ds})
	return nil
}

// loadSQLite reads every row of the configured table, using the result
// columns as the grid's column layout.
func (s *service) loadSQLite(ctx context.Context) (domain.Dataset, error) {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %q", s.table))
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("failed to query table %s: %w", s.table, err)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("failed to read columns: %w", err)
	}

	ds := domain.Dataset{Name: s.table}
	for _, name := range names {
		ds.Columns = append(ds.Columns, domain.Column{
			Title: name,
			Kind:  domain.ColumnData,
			Width: columnWidth(name),
		})
	}

	values := make([]sql.NullString, len(names))
	scan := make([]interface{}, len(names))
	for i := range values {
		scan[i] = &values[i]
	}

	var id int64
	for rows.Next() {
		if err := rows.Scan(scan...); err != nil {
			return domain.Dataset{}, fmt.Errorf("failed to scan row: %w", err)
		}
		row := domain.Row{ID: id}
		for _, v := range values {
			row.Cells = append(row.Cells, v.String)
		}
		ds.Rows = append(ds.Rows, row)
		id++
	}
	if err := rows.Err(); err != nil {
		return domain.Dataset{}, fmt.Errorf("failed to read rows: %w", err)
	}

	return ds, nil
}

func columnWidth(title string) int {
	if w := len(title) + 4; w > 12 {
		return w
	}
	return 12
}
