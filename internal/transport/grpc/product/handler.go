package product

import (
	"context"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/murkotick/catalog-admin/internal/app/identity/usecases/login"
	app "github.com/murkotick/catalog-admin/internal/app/product"
	"github.com/murkotick/catalog-admin/internal/app/product/queries/list_products"
	"github.com/murkotick/catalog-admin/internal/auth"
)

// Operations maps each gated method to its policy entry. Methods absent
// from both Operations and PublicMethods are refused by the interceptor.
var Operations = map[string]auth.Operation{
	MethodListProducts:          auth.OpListProducts,
	MethodGetProduct:            auth.OpProductDetail,
	MethodNewProductForm:        auth.OpNewProductForm,
	MethodCreateProduct:         auth.OpCreateProduct,
	MethodEditProductForm:       auth.OpEditProductForm,
	MethodUpdateProduct:         auth.OpUpdateProduct,
	MethodGetDeleteConfirmation: auth.OpDeleteConfirm,
	MethodDeleteProduct:         auth.OpDeleteProduct,
}

// PublicMethods are reachable without consulting the policy.
var PublicMethods = map[string]bool{
	MethodLogin: true,
}

// Handler is a thin gRPC transport adapter.
// It validates input, maps Struct documents to application requests and
// delegates to the CQRS handlers.
type Handler struct {
	commands app.Commands
	queries  app.Queries
	login    *login.Interactor
	log      logrus.FieldLogger
}

func NewHandler(cmd app.Commands, qry app.Queries, l *login.Interactor, logger logrus.FieldLogger) *Handler {
	return &Handler{commands: cmd, queries: qry, login: l, log: logger}
}

var _ CatalogAdminServer = (*Handler)(nil)

func (h *Handler) ListProducts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	search, err := textField(req, "searchString")
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	page, err := int64Field(req, "page")
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	token, err := textField(req, "pageToken")
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if token != "" {
		p, err := decodePageToken(token)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "invalid pageToken")
		}
		page = int64(p)
	}

	out, err := h.queries.List.Execute(ctx, list_products.Request{SearchString: search, Page: int(page)})
	if err != nil {
		h.log.WithError(err).Error("Failed to list products")
		return nil, mapError(err)
	}
	return mapProductPageToStruct(out), nil
}

func (h *Handler) GetProduct(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := requireID(req, "productId")
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	out, err := h.queries.Get.Execute(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return mapProductDTOToStruct(out), nil
}

func (h *Handler) NewProductForm(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	form, err := h.commands.Forms.NewForm(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return mapFormToStruct(form), nil
}

func (h *Handler) CreateProduct(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	appReq, err := mapCreateProductRequest(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	id, err := h.commands.Create.Execute(ctx, appReq)
	if err != nil {
		return nil, mapError(err)
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{"id": idValue(id)}}, nil
}

func (h *Handler) EditProductForm(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := requireID(req, "productId")
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	form, err := h.commands.Forms.EditForm(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return mapFormToStruct(form), nil
}

func (h *Handler) UpdateProduct(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := validateUpdateProduct(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	appReq, err := mapUpdateProductRequest(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	if err := h.commands.Update.Execute(ctx, appReq); err != nil {
		return nil, mapError(err)
	}
	return &structpb.Struct{}, nil
}

func (h *Handler) GetDeleteConfirmation(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := requireID(req, "productId")
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	out, err := h.commands.Delete.Confirm(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return mapProductDTOToStruct(out), nil
}

func (h *Handler) DeleteProduct(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := requireID(req, "productId")
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	if err := h.commands.Delete.Execute(ctx, id); err != nil {
		return nil, mapError(err)
	}
	return &structpb.Struct{}, nil
}

func (h *Handler) Login(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := validateLogin(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	appReq, err := mapLoginRequest(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	res, err := h.login.Execute(ctx, appReq)
	if err != nil {
		if status.Code(mapError(err)) == codes.Internal {
			h.log.WithError(err).Error("Login failed")
		}
		return nil, mapError(err)
	}
	return mapLoginResultToStruct(res), nil
}
