package list_products_test

import (
	"context"
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/catalog-admin/internal/app/product/domain"
	"github.com/murkotick/catalog-admin/internal/app/product/queries"
	"github.com/murkotick/catalog-admin/internal/app/product/queries/list_products"
	"github.com/murkotick/catalog-admin/internal/app/product/repo"
	"github.com/murkotick/catalog-admin/internal/pkg/sqldb/sqldbtest"
)

func seed(t *testing.T, names ...string) *list_products.Handler {
	t.Helper()
	db := sqldbtest.New(t)
	logger, _ := test.NewNullLogger()
	w := repo.NewSQLProductWriter(db, logger)
	cat := sqldbtest.Category(t, db, "General")

	price := decimal.RequireFromString("1.00")
	for _, n := range names {
		p, err := domain.NewProduct(domain.ProductInput{Name: n, Price: &price, CategoryID: cat}, time.Now().UTC())
		require.NoError(t, err)
		_, err = w.InsertProduct(context.Background(), p)
		require.NoError(t, err)
	}
	return list_products.NewHandler(queries.NewSQLReadModel(db))
}

func itemNames(t *testing.T, h *list_products.Handler, search string, page int) []string {
	t.Helper()
	res, err := h.Execute(context.Background(), list_products.Request{SearchString: search, Page: page})
	require.NoError(t, err)
	out := make([]string, 0, len(res.Items))
	for _, it := range res.Items {
		out = append(out, it.Name)
	}
	return out
}

func TestExecute_FilterIsCaseInsensitiveSubstring(t *testing.T) {
	h := seed(t, "Blue Widget", "red widget", "Gadget", "WIDGETRON")

	got := itemNames(t, h, "wIdGeT", 1)
	assert.Equal(t, []string{"Blue Widget", "red widget", "WIDGETRON"}, got)
	for _, n := range got {
		assert.Contains(t, strings.ToLower(n), "widget")
	}
}

func TestExecute_SearchTreatsWildcardsLiterally(t *testing.T) {
	h := seed(t, "100% Cotton", "1000 Cotton", "a_b", "axb")

	assert.Equal(t, []string{"100% Cotton"}, itemNames(t, h, "0%", 1))
	assert.Equal(t, []string{"a_b"}, itemNames(t, h, "_", 1))
}

func TestExecute_PagingCoversFilteredSetOnce(t *testing.T) {
	var all []string
	for i := 0; i < 23; i++ {
		all = append(all, fmt.Sprintf("Item %02d", i))
	}
	h := seed(t, all...)

	res, err := h.Execute(context.Background(), list_products.Request{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 23, res.TotalCount)
	assert.Equal(t, 3, res.TotalPages)
	assert.Equal(t, list_products.PageSize, res.PageSize)
	assert.False(t, res.HasPrevious)
	assert.True(t, res.HasNext)

	var seen []string
	for page := 1; page <= res.TotalPages; page++ {
		got := itemNames(t, h, "", page)
		assert.LessOrEqual(t, len(got), list_products.PageSize)
		seen = append(seen, got...)
	}
	assert.Equal(t, all, seen)
}

func TestExecute_OrderedByNameIgnoringCase(t *testing.T) {
	h := seed(t, "banana", "Apple", "cherry", "Banana split")

	assert.Equal(t, []string{"Apple", "banana", "Banana split", "cherry"}, itemNames(t, h, "", 1))
}

func TestExecute_PageNormalizationAndOutOfRange(t *testing.T) {
	h := seed(t, "One", "Two")

	res, err := h.Execute(context.Background(), list_products.Request{Page: -4, SearchString: "o"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Page)
	assert.Equal(t, "o", res.CurrentFilter)
	assert.Len(t, res.Items, 2)

	res, err = h.Execute(context.Background(), list_products.Request{Page: 9})
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.NotNil(t, res.Items)
	assert.Equal(t, 9, res.Page)
	assert.Equal(t, 2, res.TotalCount)
	assert.Equal(t, 1, res.TotalPages)
	assert.True(t, res.HasPrevious)
	assert.False(t, res.HasNext)
}

func TestExecute_HugePageIsEmpty(t *testing.T) {
	h := seed(t, "One", "Two")

	for _, page := range []int{math.MaxInt/list_products.PageSize + 2, math.MaxInt} {
		res, err := h.Execute(context.Background(), list_products.Request{Page: page})
		require.NoError(t, err)
		assert.Empty(t, res.Items)
		assert.Equal(t, page, res.Page)
		assert.Equal(t, 2, res.TotalCount)
		assert.Equal(t, 1, res.TotalPages)
		assert.False(t, res.HasNext)
	}
}

func TestExecute_EmptyStore(t *testing.T) {
	h := seed(t)

	res, err := h.Execute(context.Background(), list_products.Request{})
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.Equal(t, 0, res.TotalPages)
	assert.False(t, res.HasNext)
}
