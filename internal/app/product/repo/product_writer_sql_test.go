package repo

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contracts "github.com/murkotick/catalog-admin/internal/app/product/contracts"
	domain "github.com/murkotick/catalog-admin/internal/app/product/domain"
	"github.com/murkotick/catalog-admin/internal/pkg/sqldb"
	"github.com/murkotick/catalog-admin/internal/pkg/sqldb/sqldbtest"
)

func newSQLWriter(t *testing.T) (*SQLProductWriter, *sqldb.DB) {
	t.Helper()
	db := sqldbtest.New(t)
	logger, _ := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return NewSQLProductWriter(db, logger), db
}

func countOutbox(t *testing.T, db *sqldb.DB, eventType string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRowContext(context.Background(),
		db.Rebind(`SELECT COUNT(*) FROM outbox_events WHERE event_type = ?`), eventType).Scan(&n))
	return n
}

func storedVersion(t *testing.T, db *sqldb.DB, id int64) int64 {
	t.Helper()
	var v int64
	require.NoError(t, db.QueryRowContext(context.Background(),
		db.Rebind(`SELECT version FROM products WHERE product_id = ?`), id).Scan(&v))
	return v
}

func TestSQLWriter_InsertAssignsIDAndWritesOutbox(t *testing.T) {
	w, db := newSQLWriter(t)
	ctx := context.Background()
	cat := sqldbtest.Category(t, db, "Tools")

	p := newProduct(t, "Hammer", "12.50", cat, time.Now().UTC())
	id, err := w.InsertProduct(ctx, p)
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))
	assert.Equal(t, id, p.ID())
	assert.Equal(t, 1, countOutbox(t, db, "product.created"))

	var aggregate string
	require.NoError(t, db.QueryRowContext(ctx, `SELECT aggregate_id FROM outbox_events`).Scan(&aggregate))
	assert.Equal(t, p.DomainEvents()[0].AggregateID(), aggregate)
}

func TestSQLWriter_InsertUnknownCategory(t *testing.T) {
	w, db := newSQLWriter(t)

	p := newProduct(t, "Ghost", "1", 999, time.Now().UTC())
	_, err := w.InsertProduct(context.Background(), p)
	require.ErrorIs(t, err, domain.ErrCategoryNotFound)
	assert.Equal(t, 0, countOutbox(t, db, "product.created"))
}

func TestSQLWriter_UpdateOutcomes(t *testing.T) {
	w, db := newSQLWriter(t)
	ctx := context.Background()
	cat := sqldbtest.Category(t, db, "Tools")

	p := newProduct(t, "Hammer", "12.50", cat, time.Now().UTC())
	id, err := w.InsertProduct(ctx, p)
	require.NoError(t, err)

	price := decimal.RequireFromString("13")
	first := domain.ReconstructProduct(id, "Hammer", p.Price(), cat, 1, p.CreatedAt(), p.UpdatedAt())
	require.NoError(t, first.Replace(domain.ProductInput{Name: "Claw Hammer", Price: &price, CategoryID: cat}, time.Now().UTC()))

	outcome, err := w.UpdateProduct(ctx, first, 1)
	require.NoError(t, err)
	assert.Equal(t, contracts.UpdateApplied, outcome)
	assert.Equal(t, int64(2), storedVersion(t, db, id))
	assert.Equal(t, 1, countOutbox(t, db, "product.updated"))

	second := domain.ReconstructProduct(id, "Hammer", p.Price(), cat, 1, p.CreatedAt(), p.UpdatedAt())
	require.NoError(t, second.Replace(domain.ProductInput{Name: "Stale", Price: &price, CategoryID: cat}, time.Now().UTC()))
	outcome, err = w.UpdateProduct(ctx, second, 1)
	require.NoError(t, err)
	assert.Equal(t, contracts.UpdateConflict, outcome)

	var name string
	require.NoError(t, db.QueryRowContext(ctx, db.Rebind(`SELECT name FROM products WHERE product_id = ?`), id).Scan(&name))
	assert.Equal(t, "Claw Hammer", name)
	assert.Equal(t, 1, countOutbox(t, db, "product.updated"))

	ghost := domain.ReconstructProduct(id+100, "x", price, cat, 1, p.CreatedAt(), p.UpdatedAt())
	outcome, err = w.UpdateProduct(ctx, ghost, 1)
	require.NoError(t, err)
	assert.Equal(t, contracts.UpdateAbsent, outcome)
}

func TestSQLWriter_DeleteIsIdempotent(t *testing.T) {
	w, db := newSQLWriter(t)
	ctx := context.Background()
	cat := sqldbtest.Category(t, db, "Tools")

	p := newProduct(t, "Saw", "20", cat, time.Now().UTC())
	id, err := w.InsertProduct(ctx, p)
	require.NoError(t, err)

	deleted, err := w.DeleteProduct(ctx, domain.NewProductDeletedEvent(id, time.Now().UTC()))
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = w.DeleteProduct(ctx, domain.NewProductDeletedEvent(id, time.Now().UTC()))
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, 1, countOutbox(t, db, "product.deleted"))
}

func TestSQLWriter_CreateCategory(t *testing.T) {
	w, _ := newSQLWriter(t)

	id, err := w.CreateCategory(context.Background(), " Garden ")
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	_, err = w.CreateCategory(context.Background(), "  ")
	assert.ErrorIs(t, err, domain.ErrEmptyCategoryName)
}
