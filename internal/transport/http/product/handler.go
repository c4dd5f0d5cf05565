package product

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/murkotick/catalog-admin/internal/app/product"
	"github.com/murkotick/catalog-admin/internal/app/product/domain"
	"github.com/murkotick/catalog-admin/internal/app/product/queries/list_products"
	"github.com/murkotick/catalog-admin/internal/app/product/usecases/create_product"
	"github.com/murkotick/catalog-admin/internal/app/product/usecases/update_product"
	"github.com/murkotick/catalog-admin/internal/auth"
	"github.com/murkotick/catalog-admin/internal/transport/http/middleware"
	"github.com/murkotick/catalog-admin/internal/transport/http/response"
)

// Handler exposes the catalog over JSON.
type Handler struct {
	commands app.Commands
	queries  app.Queries
	gate     *auth.Gate
	log      logrus.FieldLogger
}

func NewHandler(cmd app.Commands, qry app.Queries, gate *auth.Gate, logger logrus.FieldLogger) *Handler {
	return &Handler{commands: cmd, queries: qry, gate: gate, log: logger}
}

func (h *Handler) RegisterRoutes(router gin.IRouter) {
	allow := func(op auth.Operation) gin.HandlerFunc {
		return middleware.Authorize(h.gate, op)
	}

	products := router.Group("/products")
	{
		products.GET("", allow(auth.OpListProducts), h.ListProducts)
		products.GET("/new", allow(auth.OpNewProductForm), h.NewProductForm)
		products.POST("", allow(auth.OpCreateProduct), h.CreateProduct)
		products.GET("/:id", allow(auth.OpProductDetail), h.GetProduct)
		products.GET("/:id/edit", allow(auth.OpEditProductForm), h.EditProductForm)
		products.PUT("/:id", allow(auth.OpUpdateProduct), h.UpdateProduct)
		products.GET("/:id/delete", allow(auth.OpDeleteConfirm), h.DeleteConfirmation)
		products.DELETE("/:id", allow(auth.OpDeleteProduct), h.DeleteProduct)
	}
}

func (h *Handler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))

	out, err := h.queries.List.Execute(c.Request.Context(), list_products.Request{
		SearchString: c.Query("searchString"),
		Page:         page,
	})
	if err != nil {
		h.log.WithError(err).Error("Failed to list products")
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Products retrieved successfully", out)
}

func (h *Handler) GetProduct(c *gin.Context) {
	out, err := h.queries.Get.Execute(c.Request.Context(), parseID(c.Param("id")))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Product retrieved successfully", out)
}

func (h *Handler) NewProductForm(c *gin.Context) {
	form, err := h.commands.Forms.NewForm(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("Failed to prepare product form")
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Product form", form)
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Failed to bind JSON for create product: %v", err)
		response.Fail(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	id, err := h.commands.Create.Execute(c.Request.Context(), create_product.Request{
		Name:       req.Name,
		Price:      string(req.Price),
		CategoryID: req.CategoryID,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Location", "/products/"+strconv.FormatInt(id, 10))
	response.Success(c, http.StatusCreated, "Product created successfully", createdResponse{ID: id})
}

func (h *Handler) EditProductForm(c *gin.Context) {
	form, err := h.commands.Forms.EditForm(c.Request.Context(), parseID(c.Param("id")))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Product form", form)
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	pathID := parseID(c.Param("id"))
	if pathID == 0 {
		writeError(c, domain.ErrProductNotFound)
		return
	}

	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Failed to bind JSON for update product ID %d: %v", pathID, err)
		response.Fail(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	err := h.commands.Update.Execute(c.Request.Context(), update_product.Request{
		PathID:     pathID,
		ProductID:  req.ProductID,
		Version:    req.Version,
		Name:       req.Name,
		Price:      string(req.Price),
		CategoryID: req.CategoryID,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	out, err := h.queries.Get.Execute(c.Request.Context(), pathID)
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		// Saved, but deleted again before we could read it back.
		response.Success(c, http.StatusOK, "Product updated successfully", nil)
		return
	case err != nil:
		h.log.WithError(err).WithField("product_id", pathID).Error("Failed to read back updated product")
		response.Success(c, http.StatusOK, "Product updated successfully", nil)
		return
	}
	response.Success(c, http.StatusOK, "Product updated successfully", out)
}

func (h *Handler) DeleteConfirmation(c *gin.Context) {
	out, err := h.commands.Delete.Confirm(c.Request.Context(), parseID(c.Param("id")))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Confirm deletion", out)
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	if err := h.commands.Delete.Execute(c.Request.Context(), parseID(c.Param("id"))); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
