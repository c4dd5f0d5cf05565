package repo

import (
	"math/big"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contracts "github.com/murkotick/catalog-admin/internal/app/product/contracts"
	domain "github.com/murkotick/catalog-admin/internal/app/product/domain"
	"github.com/murkotick/catalog-admin/internal/models/m_product"
)

func newProduct(t *testing.T, name, price string, categoryID int64, now time.Time) *domain.Product {
	t.Helper()
	d := decimal.RequireFromString(price)
	p, err := domain.NewProduct(domain.ProductInput{Name: name, Price: &d, CategoryID: categoryID}, now)
	require.NoError(t, err)
	return p
}

// TestInsertMut_Values verifies the insert map for a freshly created product.
func TestInsertMut_Values(t *testing.T) {
	r := NewProductRepo()

	now := time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)
	p := newProduct(t, "Test Product", "19.99", 4, now)
	p.AssignID(77)

	values := buildInsertValues(p)
	require.NotNil(t, values)

	assert.Equal(t, int64(77), values[m_product.ColProductID])
	assert.Equal(t, "Test Product", values[m_product.ColName])
	assert.Equal(t, int64(4), values[m_product.ColCategoryID])
	assert.Equal(t, int64(1), values[m_product.ColVersion])
	assert.Equal(t, now, values[m_product.ColCreatedAt])
	assert.Equal(t, now, values[m_product.ColUpdatedAt])

	price, ok := values[m_product.ColPrice].(big.Rat)
	require.True(t, ok, "price should be a NUMERIC-compatible big.Rat")
	assert.Equal(t, "19.99", price.FloatString(2))

	require.NotNil(t, r.InsertMut(p))
	assert.Nil(t, r.InsertMut(nil))
}

// TestReplaceMut_OverwritesAllFields checks that an update writes every
// replaceable column even when only one changed.
func TestReplaceMut_OverwritesAllFields(t *testing.T) {
	r := NewProductRepo()

	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := domain.ReconstructProduct(5, "Old", decimal.RequireFromString("3.50"), 2, 4, created, created)

	later := created.Add(time.Minute)
	newPrice := decimal.RequireFromString("3.50")
	require.NoError(t, p.Replace(domain.ProductInput{Name: "New", Price: &newPrice, CategoryID: 2}, later))

	values := buildReplaceValues(p, 5)
	assert.Equal(t, "New", values[m_product.ColName])
	assert.Equal(t, int64(2), values[m_product.ColCategoryID])
	assert.Equal(t, int64(5), values[m_product.ColVersion])
	assert.Equal(t, later, values[m_product.ColUpdatedAt])
	assert.Contains(t, values, m_product.ColPrice)
	assert.NotContains(t, values, m_product.ColProductID)
	assert.NotContains(t, values, m_product.ColCreatedAt)

	require.NotNil(t, r.ReplaceMut(p, 5))
	require.NotNil(t, r.DeleteMut(5))
}

func TestPriceNumericRoundTrip(t *testing.T) {
	in := decimal.RequireFromString("1234.56")
	out, err := m_product.PriceFromNumeric(m_product.PriceToNumeric(in))
	require.NoError(t, err)
	assert.True(t, in.Equal(out))
	assert.Equal(t, "1234.56", out.String())
}

func TestOutboxRepo_InsertMuts(t *testing.T) {
	r := NewOutboxRepo()
	muts := r.InsertMuts([]*contracts.OutboxEvent{
		{EventID: "a", EventType: "product.created", AggregateID: "1", PayloadJSON: "{}", Status: contracts.OutboxStatusPending},
		nil,
	})
	assert.Len(t, muts, 1)
}

func TestRandomID_Positive(t *testing.T) {
	seen := map[int64]bool{}
	for i := 0; i < 100; i++ {
		id := RandomID()
		assert.Greater(t, id, int64(0))
		seen[id] = true
	}
	assert.Len(t, seen, 100)
}
