package product

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully-qualified gRPC service name. Requests and replies
// are google.protobuf.Struct documents; see mappers.go for their fields.
const ServiceName = "catalog.v1.CatalogAdmin"

// Full method names, as seen by interceptors.
const (
	MethodListProducts          = "/" + ServiceName + "/ListProducts"
	MethodGetProduct            = "/" + ServiceName + "/GetProduct"
	MethodNewProductForm        = "/" + ServiceName + "/NewProductForm"
	MethodCreateProduct         = "/" + ServiceName + "/CreateProduct"
	MethodEditProductForm       = "/" + ServiceName + "/EditProductForm"
	MethodUpdateProduct         = "/" + ServiceName + "/UpdateProduct"
	MethodGetDeleteConfirmation = "/" + ServiceName + "/GetDeleteConfirmation"
	MethodDeleteProduct         = "/" + ServiceName + "/DeleteProduct"
	MethodLogin                 = "/" + ServiceName + "/Login"
)

// CatalogAdminServer is the server API for the CatalogAdmin service.
type CatalogAdminServer interface {
	ListProducts(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetProduct(context.Context, *structpb.Struct) (*structpb.Struct, error)
	NewProductForm(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CreateProduct(context.Context, *structpb.Struct) (*structpb.Struct, error)
	EditProductForm(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateProduct(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetDeleteConfirmation(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteProduct(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Login(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

func RegisterCatalogAdminServer(s grpc.ServiceRegistrar, srv CatalogAdminServer) {
	s.RegisterService(&ServiceDesc, srv)
}

type unaryMethod func(CatalogAdminServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

// unaryHandler adapts a server method to grpc.MethodDesc, running any
// configured interceptor around it.
func unaryHandler(fullMethod string, call unaryMethod) func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(CatalogAdminServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(CatalogAdminServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ServiceDesc is the grpc.ServiceDesc for the CatalogAdmin service.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CatalogAdminServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListProducts", Handler: unaryHandler(MethodListProducts, CatalogAdminServer.ListProducts)},
		{MethodName: "GetProduct", Handler: unaryHandler(MethodGetProduct, CatalogAdminServer.GetProduct)},
		{MethodName: "NewProductForm", Handler: unaryHandler(MethodNewProductForm, CatalogAdminServer.NewProductForm)},
		{MethodName: "CreateProduct", Handler: unaryHandler(MethodCreateProduct, CatalogAdminServer.CreateProduct)},
		{MethodName: "EditProductForm", Handler: unaryHandler(MethodEditProductForm, CatalogAdminServer.EditProductForm)},
		{MethodName: "UpdateProduct", Handler: unaryHandler(MethodUpdateProduct, CatalogAdminServer.UpdateProduct)},
		{MethodName: "GetDeleteConfirmation", Handler: unaryHandler(MethodGetDeleteConfirmation, CatalogAdminServer.GetDeleteConfirmation)},
		{MethodName: "DeleteProduct", Handler: unaryHandler(MethodDeleteProduct, CatalogAdminServer.DeleteProduct)},
		{MethodName: "Login", Handler: unaryHandler(MethodLogin, CatalogAdminServer.Login)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catalog/v1/catalog_admin.proto",
}

// Client calls CatalogAdmin over an established connection.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Call invokes fullMethod with in and returns the reply document.
func (c *Client) Call(ctx context.Context, fullMethod string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	if in == nil {
		in = &structpb.Struct{}
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, fullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
