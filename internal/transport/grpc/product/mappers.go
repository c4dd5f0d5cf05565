package product

import (
	"fmt"
	"strconv"
	"strings"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/murkotick/catalog-admin/internal/app/identity/usecases/login"
	"github.com/murkotick/catalog-admin/internal/app/product/dto"
	"github.com/murkotick/catalog-admin/internal/app/product/usecases/create_product"
	"github.com/murkotick/catalog-admin/internal/app/product/usecases/update_product"
	"github.com/murkotick/catalog-admin/internal/app/product/utils"
)

// Ids travel as decimal strings: Struct numbers are doubles and cannot hold
// every int64. Numbers are still accepted on input.

func int64Field(s *structpb.Struct, key string) (int64, error) {
	v, ok := s.GetFields()[key]
	if !ok {
		return 0, nil
	}
	switch k := v.GetKind().(type) {
	case *structpb.Value_NullValue:
		return 0, nil
	case *structpb.Value_NumberValue:
		f := k.NumberValue
		if f != float64(int64(f)) {
			return 0, fmt.Errorf("%s must be an integer", key)
		}
		return int64(f), nil
	case *structpb.Value_StringValue:
		t := strings.TrimSpace(k.StringValue)
		if t == "" {
			return 0, nil
		}
		n, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%s must be an integer", key)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%s must be an integer", key)
	}
}

// textField returns strings as is and numbers in their shortest form, so a
// price may be sent either way.
func textField(s *structpb.Struct, key string) (string, error) {
	v, ok := s.GetFields()[key]
	if !ok {
		return "", nil
	}
	switch k := v.GetKind().(type) {
	case *structpb.Value_NullValue:
		return "", nil
	case *structpb.Value_StringValue:
		return k.StringValue, nil
	case *structpb.Value_NumberValue:
		return strconv.FormatFloat(k.NumberValue, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("%s must be a string", key)
	}
}

func mapCreateProductRequest(req *structpb.Struct) (create_product.Request, error) {
	name, err := textField(req, "name")
	if err != nil {
		return create_product.Request{}, err
	}
	price, err := textField(req, "price")
	if err != nil {
		return create_product.Request{}, err
	}
	categoryID, err := int64Field(req, "categoryId")
	if err != nil {
		return create_product.Request{}, err
	}
	return create_product.Request{Name: name, Price: price, CategoryID: categoryID}, nil
}

func mapUpdateProductRequest(req *structpb.Struct) (update_product.Request, error) {
	var out update_product.Request
	var err error

	if out.PathID, err = int64Field(req, "id"); err != nil {
		return out, err
	}
	if out.ProductID, err = int64Field(req, "productId"); err != nil {
		return out, err
	}
	if out.Version, err = int64Field(req, "version"); err != nil {
		return out, err
	}
	if out.Name, err = textField(req, "name"); err != nil {
		return out, err
	}
	if out.Price, err = textField(req, "price"); err != nil {
		return out, err
	}
	if out.CategoryID, err = int64Field(req, "categoryId"); err != nil {
		return out, err
	}
	return out, nil
}

func mapLoginRequest(req *structpb.Struct) (login.Request, error) {
	identifier, err := textField(req, "identifier")
	if err != nil {
		return login.Request{}, err
	}
	secret, err := textField(req, "secret")
	if err != nil {
		return login.Request{}, err
	}
	return login.Request{Identifier: identifier, Secret: secret}, nil
}

func idValue(id int64) *structpb.Value {
	return structpb.NewStringValue(strconv.FormatInt(id, 10))
}

func optionalString(s *string) *structpb.Value {
	if s == nil {
		return structpb.NewNullValue()
	}
	return structpb.NewStringValue(*s)
}

func mapCategoryToStruct(c *dto.CategoryDTO) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"categoryId": idValue(c.CategoryID),
		"name":       structpb.NewStringValue(c.Name),
	}}
}

func mapProductDTOToStruct(p *dto.ProductDTO) *structpb.Struct {
	fields := map[string]*structpb.Value{
		"productId":  idValue(p.ProductID),
		"name":       structpb.NewStringValue(p.Name),
		"price":      structpb.NewStringValue(p.Price.String()),
		"categoryId": idValue(p.CategoryID),
		"version":    structpb.NewNumberValue(float64(p.Version)),
		"createdAt":  optionalString(p.CreatedAt),
		"updatedAt":  optionalString(p.UpdatedAt),
	}
	if p.Category != nil {
		fields["category"] = structpb.NewStructValue(mapCategoryToStruct(p.Category))
	}
	return &structpb.Struct{Fields: fields}
}

func mapProductPageToStruct(page *dto.ProductPage) *structpb.Struct {
	items := make([]*structpb.Value, 0, len(page.Items))
	for _, it := range page.Items {
		items = append(items, structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{
			"productId":  idValue(it.ProductID),
			"name":       structpb.NewStringValue(it.Name),
			"price":      structpb.NewStringValue(it.Price.String()),
			"categoryId": idValue(it.CategoryID),
		}}))
	}

	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"items":         structpb.NewListValue(&structpb.ListValue{Values: items}),
		"page":          structpb.NewNumberValue(float64(page.Page)),
		"pageSize":      structpb.NewNumberValue(float64(page.PageSize)),
		"totalCount":    structpb.NewNumberValue(float64(page.TotalCount)),
		"totalPages":    structpb.NewNumberValue(float64(page.TotalPages)),
		"hasPrevious":   structpb.NewBoolValue(page.HasPrevious),
		"hasNext":       structpb.NewBoolValue(page.HasNext),
		"currentFilter": structpb.NewStringValue(page.CurrentFilter),
		"nextPageToken": structpb.NewStringValue(encodePageToken(page)),
	}}
}

func mapFormToStruct(form *dto.ProductForm) *structpb.Struct {
	fieldErrors := make(map[string]*structpb.Value, len(form.FieldErrors))
	for k, msg := range form.FieldErrors {
		fieldErrors[k] = structpb.NewStringValue(msg)
	}
	errs := make([]*structpb.Value, 0, len(form.Errors))
	for _, msg := range form.Errors {
		errs = append(errs, structpb.NewStringValue(msg))
	}
	cats := make([]*structpb.Value, 0, len(form.Categories))
	for _, c := range form.Categories {
		cats = append(cats, structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{
			"categoryId": idValue(c.CategoryID),
			"name":       structpb.NewStringValue(c.Name),
			"selected":   structpb.NewBoolValue(c.Selected),
		}}))
	}

	fields := map[string]*structpb.Value{
		"name":        structpb.NewStringValue(form.Name),
		"price":       structpb.NewStringValue(form.Price),
		"categoryId":  idValue(form.CategoryID),
		"fieldErrors": structpb.NewStructValue(&structpb.Struct{Fields: fieldErrors}),
		"errors":      structpb.NewListValue(&structpb.ListValue{Values: errs}),
		"categories":  structpb.NewListValue(&structpb.ListValue{Values: cats}),
	}
	if form.ProductID != 0 {
		fields["productId"] = idValue(form.ProductID)
		fields["version"] = structpb.NewNumberValue(float64(form.Version))
	}
	return &structpb.Struct{Fields: fields}
}

func mapLoginResultToStruct(res *login.Result) *structpb.Struct {
	roles := make([]*structpb.Value, 0, len(res.Roles))
	for _, r := range res.Roles {
		roles = append(roles, structpb.NewStringValue(r))
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"token":     structpb.NewStringValue(res.Token),
		"expiresAt": structpb.NewStringValue(utils.FormatTime(res.ExpiresAt)),
		"roles":     structpb.NewListValue(&structpb.ListValue{Values: roles}),
	}}
}
