package repo

import (
	"cloud.google.com/go/spanner"

	domain "github.com/murkotick/catalog-admin/internal/app/product/domain"
	"github.com/murkotick/catalog-admin/internal/models/m_product"
)

// ProductRepo builds Spanner mutations for products but never applies them.
type ProductRepo struct{}

func NewProductRepo() *ProductRepo {
	return &ProductRepo{}
}

// buildInsertValues constructs the values map used for insertion.
// It's unexported so tests in the same package can inspect the map without
// relying on spanner.Mutation internals.
func buildInsertValues(p *domain.Product) map[string]interface{} {
	return m_product.BuildInsertMap(p.ID(), p.Name(), p.Price(), p.CategoryID(), p.Version(),
		p.CreatedAt().UTC(), p.UpdatedAt().UTC())
}

// buildReplaceValues holds every replaceable column plus the next version.
func buildReplaceValues(p *domain.Product, nextVersion int64) map[string]interface{} {
	return m_product.BuildReplaceMap(p.Name(), p.Price(), p.CategoryID(), nextVersion, p.UpdatedAt().UTC())
}

// InsertMut builds an Insert mutation for a product whose id is already assigned.
func (r *ProductRepo) InsertMut(p *domain.Product) *spanner.Mutation {
	if p == nil {
		return nil
	}
	return m_product.InsertMutation(buildInsertValues(p))
}

// ReplaceMut overwrites name, price and category and stamps nextVersion.
func (r *ProductRepo) ReplaceMut(p *domain.Product, nextVersion int64) *spanner.Mutation {
	if p == nil {
		return nil
	}
	return m_product.UpdateMutation(p.ID(), buildReplaceValues(p, nextVersion))
}

// DeleteMut removes the product row.
func (r *ProductRepo) DeleteMut(productID int64) *spanner.Mutation {
	return m_product.DeleteMutation(productID)
}
