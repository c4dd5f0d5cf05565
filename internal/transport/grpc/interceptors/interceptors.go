// Package interceptors holds the unary server interceptors shared by the
// gRPC services.
package interceptors

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/murkotick/catalog-admin/internal/auth"
)

// TokenParser verifies a bearer token.
type TokenParser interface {
	Parse(raw string) (*auth.Principal, error)
}

// UnaryLogging logs every call with its status code and latency.
func UnaryLogging(logger logrus.FieldLogger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		code := status.Code(err)
		entry := logger.WithFields(logrus.Fields{
			"method":     info.FullMethod,
			"code":       code.String(),
			"latency_ms": time.Since(start).Milliseconds(),
		})
		switch code {
		case codes.OK:
			entry.Info("RPC completed successfully")
		case codes.Internal, codes.Unknown, codes.Unavailable, codes.DataLoss:
			entry.Error("RPC completed with server error")
		default:
			entry.Warn("RPC completed with client error")
		}
		return resp, err
	}
}

// UnaryAuth reads the bearer token from the "authorization" metadata, puts
// the principal into the context and checks the gate for the method's
// operation. Methods in public skip the gate; methods in neither map are
// refused.
func UnaryAuth(tokens TokenParser, gate *auth.Gate, ops map[string]auth.Operation, public map[string]bool) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		p, err := principalFromMetadata(ctx, tokens)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid or expired token")
		}
		if p != nil {
			ctx = auth.WithPrincipal(ctx, p)
		}

		if public[info.FullMethod] {
			return handler(ctx, req)
		}
		op, ok := ops[info.FullMethod]
		if !ok {
			return nil, status.Error(codes.PermissionDenied, "method not allowed")
		}

		err = gate.Authorize(op, p)
		switch {
		case err == nil:
			return handler(ctx, req)
		case errors.Is(err, auth.ErrUnauthenticated):
			return nil, status.Error(codes.Unauthenticated, "authentication required")
		default:
			return nil, status.Error(codes.PermissionDenied, "not allowed")
		}
	}
}

func principalFromMetadata(ctx context.Context, tokens TokenParser) (*auth.Principal, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, nil
	}
	values := md.Get("authorization")
	if len(values) == 0 || values[0] == "" {
		return nil, nil
	}

	parts := strings.SplitN(values[0], " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, errors.New("invalid authorization metadata")
	}
	return tokens.Parse(strings.TrimSpace(parts[1]))
}
