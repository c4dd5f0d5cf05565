package product

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"
)

// requireID reads a mandatory id. Zero or negative ids are let through so
// that the application reports them as not found.
func requireID(req *structpb.Struct, key string) (int64, error) {
	if req == nil {
		return 0, fmt.Errorf("request is required")
	}
	if _, ok := req.GetFields()[key]; !ok {
		return 0, fmt.Errorf("%s is required", key)
	}
	return int64Field(req, key)
}

func validateUpdateProduct(req *structpb.Struct) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}
	for _, key := range []string{"id", "productId"} {
		if _, ok := req.GetFields()[key]; !ok {
			return fmt.Errorf("%s is required", key)
		}
	}
	return nil
}

func validateLogin(req *structpb.Struct) error {
	for _, key := range []string{"identifier", "secret"} {
		s, err := textField(req, key)
		if err != nil {
			return err
		}
		if s == "" {
			return fmt.Errorf("%s is required", key)
		}
	}
	return nil
}
