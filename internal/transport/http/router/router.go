// Package router builds the gin engine serving the catalog API.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/murkotick/catalog-admin/internal/app/product"
	"github.com/murkotick/catalog-admin/internal/app/identity/usecases/login"
	"github.com/murkotick/catalog-admin/internal/auth"
	"github.com/murkotick/catalog-admin/internal/transport/http/account"
	"github.com/murkotick/catalog-admin/internal/transport/http/middleware"
	"github.com/murkotick/catalog-admin/internal/transport/http/product"
	"github.com/murkotick/catalog-admin/internal/transport/http/response"
)

type Deps struct {
	Commands app.Commands
	Queries  app.Queries
	Login    *login.Interactor
	Gate     *auth.Gate
	Tokens   middleware.TokenParser
	Log      logrus.FieldLogger
}

func New(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(middleware.Authenticate(d.Tokens, d.Log))

	r.GET("/healthz", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "ok", nil)
	})

	product.NewHandler(d.Commands, d.Queries, d.Gate, d.Log).RegisterRoutes(r)
	account.NewHandler(d.Login, d.Log).RegisterRoutes(r)

	return r
}
