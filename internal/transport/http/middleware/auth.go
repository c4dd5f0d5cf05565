package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/murkotick/catalog-admin/internal/auth"
	"github.com/murkotick/catalog-admin/internal/transport/http/response"
)

// TokenParser verifies a bearer token.
type TokenParser interface {
	Parse(raw string) (*auth.Principal, error)
}

// Authenticate attaches the caller's principal to the request context when
// an Authorization header is present. Requests without one continue as
// anonymous; a malformed or invalid token is rejected.
func Authenticate(tokens TokenParser, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
			log.Warn("Middleware: invalid Authorization header format")
			response.Abort(c, http.StatusUnauthorized, "Invalid Authorization header format")
			return
		}

		p, err := tokens.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			log.WithError(err).Warn("Middleware: token rejected")
			response.Abort(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		c.Request = c.Request.WithContext(auth.WithPrincipal(c.Request.Context(), p))
		c.Next()
	}
}

// Authorize lets the request through only if the gate admits the caller for op.
func Authorize(gate *auth.Gate, op auth.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := gate.Authorize(op, auth.PrincipalFrom(c.Request.Context()))
		switch {
		case err == nil:
			c.Next()
		case errors.Is(err, auth.ErrUnauthenticated):
			response.Abort(c, http.StatusUnauthorized, "Authentication required")
		default:
			response.Abort(c, http.StatusForbidden, "You are not allowed to perform this action")
		}
	}
}
