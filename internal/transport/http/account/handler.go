package account

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/murkotick/catalog-admin/internal/app/identity/domain"
	"github.com/murkotick/catalog-admin/internal/app/identity/usecases/login"
	"github.com/murkotick/catalog-admin/internal/transport/http/response"
)

type loginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Secret     string `json:"secret"     binding:"required"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Roles     []string  `json:"roles"`
}

type Handler struct {
	login *login.Interactor
	log   logrus.FieldLogger
}

func NewHandler(l *login.Interactor, logger logrus.FieldLogger) *Handler {
	return &Handler{login: l, log: logger}
}

func (h *Handler) RegisterRoutes(router gin.IRouter) {
	router.POST("/account/login", h.Login)
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Identifier and secret are required", nil)
		return
	}

	res, err := h.login.Execute(c.Request.Context(), login.Request{Identifier: req.Identifier, Secret: req.Secret})
	if errors.Is(err, domain.ErrInvalidCredentials) {
		response.Fail(c, http.StatusUnauthorized, "Invalid login attempt", nil)
		return
	}
	if err != nil {
		h.log.WithError(err).Error("Login failed")
		response.Fail(c, http.StatusInternalServerError, "Internal server error", nil)
		return
	}

	response.Success(c, http.StatusOK, "Signed in", loginResponse{
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
		Roles:     res.Roles,
	})
}
