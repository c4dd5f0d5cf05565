package product

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	identity "github.com/murkotick/catalog-admin/internal/app/identity/domain"
	"github.com/murkotick/catalog-admin/internal/app/product/domain"
	shared "github.com/murkotick/catalog-admin/internal/app/product/usecases/shared"
	"github.com/murkotick/catalog-admin/internal/auth"
)

// mapError translates application errors into gRPC statuses. A rejected
// form is attached as a google.protobuf.Struct detail. Unknown errors become
// codes.Internal without their text.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) {
		return status.Error(codes.Canceled, err.Error())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	var ferr *shared.FormError
	if errors.As(err, &ferr) {
		code, msg := codes.InvalidArgument, "invalid product"
		if errors.Is(err, domain.ErrPersistence) {
			code, msg = codes.Internal, domain.MsgUnableToSave
		}
		st, derr := status.New(code, msg).WithDetails(mapFormToStruct(ferr.Form))
		if derr != nil {
			return status.Error(code, msg)
		}
		return st.Err()
	}

	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return status.Error(codes.NotFound, "product not found")
	case errors.Is(err, domain.ErrConcurrencyConflict):
		return status.Error(codes.Aborted, "product was changed by someone else")
	case errors.Is(err, domain.ErrPersistence):
		return status.Error(codes.Internal, domain.MsgUnableToSave)
	case errors.Is(err, identity.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, "invalid login attempt")
	case errors.Is(err, auth.ErrUnauthenticated):
		return status.Error(codes.Unauthenticated, "authentication required")
	case errors.Is(err, auth.ErrForbidden):
		return status.Error(codes.PermissionDenied, "not allowed")
	}

	return status.Error(codes.Internal, "internal error")
}
