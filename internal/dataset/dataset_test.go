package dataset

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridsel/internal/domain"
	"gridsel/internal/eventbus"
)

// captureBus records published events synchronously for assertions.
type captureBus struct {
	mu     sync.Mutex
	events []eventbus.DomainEvent
}

func (b *captureBus) Publish(event eventbus.DomainEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
}

func (b *captureBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() {
	return func() {}
}

func (b *captureBus) last() eventbus.DomainEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.events[len(b.events)-1]
}

func TestSampleDatasetShape(t *testing.T) {
	ds := SampleDataset(25)

	assert.Len(t, ds.Rows, 25)
	require.Len(t, ds.Columns, 5)
	for _, col := range ds.Columns {
		assert.Equal(t, domain.ColumnData, col.Kind)
		assert.Greater(t, col.Width, 0)
	}
	for _, row := range ds.Rows {
		assert.Len(t, row.Cells, len(ds.Columns))
	}

	// Deterministic across calls.
	assert.Equal(t, ds, SampleDataset(25))
}

func TestLoadSamplePublishesRows(t *testing.T) {
	bus := &captureBus{}
	svc := NewService(bus, "", "records", 10)

	require.NoError(t, svc.Load(context.Background()))

	loaded, ok := bus.last().(eventbus.RowsLoadedEvent)
	require.True(t, ok)
	assert.Len(t, loaded.Dataset.Rows, 10)
}

func TestLoadSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE records (name TEXT, qty INTEGER)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO records VALUES ('bolt', 12), ('nut', 40)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	bus := &captureBus{}
	svc := NewService(bus, path, "records", 0)
	require.NoError(t, svc.Load(context.Background()))

	loaded, ok := bus.last().(eventbus.RowsLoadedEvent)
	require.True(t, ok)
	require.Len(t, loaded.Dataset.Columns, 2)
	assert.Equal(t, "name", loaded.Dataset.Columns[0].Title)
	require.Len(t, loaded.Dataset.Rows, 2)
	assert.Equal(t, []string{"bolt", "12"}, loaded.Dataset.Rows[0].Cells)
}

func TestLoadMissingTablePublishesError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	require.NoError(t, db.Ping())
	require.NoError(t, db.Close())

	bus := &captureBus{}
	svc := NewService(bus, path, "missing", 0)

	require.Error(t, svc.Load(context.Background()))
	_, ok := bus.last().(eventbus.DatasetErrorEvent)
	assert.True(t, ok)
}
