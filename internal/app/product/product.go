// Package product assembles the catalog's command and query handlers for
// the transports.
package product

import (
	"github.com/sirupsen/logrus"

	contracts "github.com/murkotick/catalog-admin/internal/app/product/contracts"
	"github.com/murkotick/catalog-admin/internal/app/product/queries/get_product"
	"github.com/murkotick/catalog-admin/internal/app/product/queries/list_categories"
	"github.com/murkotick/catalog-admin/internal/app/product/queries/list_products"
	"github.com/murkotick/catalog-admin/internal/app/product/usecases/create_product"
	"github.com/murkotick/catalog-admin/internal/app/product/usecases/delete_product"
	"github.com/murkotick/catalog-admin/internal/app/product/usecases/product_form"
	"github.com/murkotick/catalog-admin/internal/app/product/usecases/update_product"
	"github.com/murkotick/catalog-admin/internal/pkg/clock"
)

// Commands groups write interactors.
type Commands struct {
	Create *create_product.Interactor
	Update *update_product.Interactor
	Delete *delete_product.Interactor
	Forms  *product_form.Interactor
}

// Queries groups read handlers.
type Queries struct {
	Get        *get_product.Handler
	List       *list_products.Handler
	Categories *list_categories.Handler
}

func New(writer contracts.ProductWriter, readModel contracts.ReadModel, clk clock.Clock, logger logrus.FieldLogger) (Commands, Queries) {
	cmd := Commands{
		Create: create_product.NewInteractor(writer, readModel, clk, logger),
		Update: update_product.NewInteractor(writer, readModel, clk, logger),
		Delete: delete_product.NewInteractor(writer, readModel, clk, logger),
		Forms:  product_form.NewInteractor(readModel),
	}
	qry := Queries{
		Get:        get_product.NewHandler(readModel),
		List:       list_products.NewHandler(readModel),
		Categories: list_categories.NewHandler(readModel),
	}
	return cmd, qry
}
