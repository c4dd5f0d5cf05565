package create_product_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contracts "github.com/murkotick/catalog-admin/internal/app/product/contracts"
	"github.com/murkotick/catalog-admin/internal/app/product/domain"
	"github.com/murkotick/catalog-admin/internal/app/product/queries"
	"github.com/murkotick/catalog-admin/internal/app/product/queries/get_product"
	"github.com/murkotick/catalog-admin/internal/app/product/repo"
	"github.com/murkotick/catalog-admin/internal/app/product/usecases/create_product"
	shared "github.com/murkotick/catalog-admin/internal/app/product/usecases/shared"
	"github.com/murkotick/catalog-admin/internal/pkg/clock"
	"github.com/murkotick/catalog-admin/internal/pkg/sqldb"
	"github.com/murkotick/catalog-admin/internal/pkg/sqldb/sqldbtest"
)

var fixedNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

type brokenWriter struct{ contracts.ProductWriter }

func (brokenWriter) InsertProduct(context.Context, *domain.Product) (int64, error) {
	return 0, errors.New("disk on fire")
}

func setup(t *testing.T) (*sqldb.DB, contracts.ReadModel, *test.Hook, logrus.FieldLogger) {
	t.Helper()
	db := sqldbtest.New(t)
	logger, hook := test.NewNullLogger()
	return db, queries.NewSQLReadModel(db), hook, logger
}

func productCount(t *testing.T, db *sqldb.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM products`).Scan(&n))
	return n
}

func TestExecute_CreatesProductVisibleInDetail(t *testing.T) {
	db, rm, _, logger := setup(t)
	cat := sqldbtest.Category(t, db, "Garden")

	it := create_product.NewInteractor(repo.NewSQLProductWriter(db, logger), rm, clock.NewFake(fixedNow), logger)
	id, err := it.Execute(context.Background(), create_product.Request{Name: "Rake", Price: "19.95", CategoryID: cat})
	require.NoError(t, err)
	require.Greater(t, id, int64(0))

	got, err := get_product.NewHandler(rm).Execute(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Rake", got.Name)
	assert.Equal(t, "19.95", got.Price.StringFixed(2))
	assert.Equal(t, int64(1), got.Version)
	require.NotNil(t, got.Category)
	assert.Equal(t, "Garden", got.Category.Name)
}

func TestExecute_InvalidInputWritesNothing(t *testing.T) {
	db, rm, _, logger := setup(t)
	sqldbtest.Category(t, db, "Garden")
	sqldbtest.Category(t, db, "Books")

	it := create_product.NewInteractor(repo.NewSQLProductWriter(db, logger), rm, clock.NewFake(fixedNow), logger)
	_, err := it.Execute(context.Background(), create_product.Request{Name: " ", Price: "abc", CategoryID: 0})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	var ferr *shared.FormError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, domain.MsgNameRequired, ferr.Form.FieldErrors[domain.InputName])
	assert.Equal(t, domain.MsgPriceInvalid, ferr.Form.FieldErrors[domain.InputPrice])
	assert.Equal(t, domain.MsgCategoryRequired, ferr.Form.FieldErrors[domain.InputCategoryID])
	assert.Equal(t, "abc", ferr.Form.Price, "submitted text is echoed")
	require.Len(t, ferr.Form.Categories, 2)
	assert.Equal(t, "Books", ferr.Form.Categories[0].Name)

	assert.Equal(t, 0, productCount(t, db))
}

func TestExecute_PriceBelowMinimum(t *testing.T) {
	db, rm, _, logger := setup(t)
	cat := sqldbtest.Category(t, db, "Garden")

	it := create_product.NewInteractor(repo.NewSQLProductWriter(db, logger), rm, clock.NewFake(fixedNow), logger)
	_, err := it.Execute(context.Background(), create_product.Request{Name: "Seed", Price: "0", CategoryID: cat})

	var ferr *shared.FormError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, domain.MsgPriceOutOfRange, ferr.Form.FieldErrors[domain.InputPrice])
	assert.True(t, ferr.Form.Categories[0].Selected)
	assert.Equal(t, 0, productCount(t, db))
}

func TestExecute_PriceScale(t *testing.T) {
	db, rm, _, logger := setup(t)
	cat := sqldbtest.Category(t, db, "Garden")
	it := create_product.NewInteractor(repo.NewSQLProductWriter(db, logger), rm, clock.NewFake(fixedNow), logger)

	_, err := it.Execute(context.Background(), create_product.Request{Name: "Seed", Price: "9.999", CategoryID: cat})
	var ferr *shared.FormError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, domain.MsgPriceScale, ferr.Form.FieldErrors[domain.InputPrice])
	assert.Equal(t, 0, productCount(t, db))

	id, err := it.Execute(context.Background(), create_product.Request{Name: "Seed", Price: "9.990", CategoryID: cat})
	require.NoError(t, err)
	got, err := get_product.NewHandler(rm).Execute(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("9.99")), got.Price.String())
}

func TestExecute_UnknownCategory(t *testing.T) {
	db, rm, _, logger := setup(t)

	it := create_product.NewInteractor(repo.NewSQLProductWriter(db, logger), rm, clock.NewFake(fixedNow), logger)
	_, err := it.Execute(context.Background(), create_product.Request{Name: "Seed", Price: "1.00", CategoryID: 404})

	var ferr *shared.FormError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, domain.MsgCategoryNotFound, ferr.Form.FieldErrors[domain.InputCategoryID])
	assert.Empty(t, ferr.Form.Categories)
	assert.Equal(t, 0, productCount(t, db))
}

func TestExecute_StoreFailureShowsGenericMessage(t *testing.T) {
	db, rm, hook, logger := setup(t)
	cat := sqldbtest.Category(t, db, "Garden")

	it := create_product.NewInteractor(brokenWriter{}, rm, clock.NewFake(fixedNow), logger)
	_, err := it.Execute(context.Background(), create_product.Request{Name: "Hose", Price: "7.5", CategoryID: cat})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPersistence)

	var ferr *shared.FormError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, []string{domain.MsgUnableToSave}, ferr.Form.Errors)
	assert.Empty(t, ferr.Form.FieldErrors)
	assert.Equal(t, "Hose", ferr.Form.Name)
	assert.Equal(t, "7.5", ferr.Form.Price)
	require.Len(t, ferr.Form.Categories, 1)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}
