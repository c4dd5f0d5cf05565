package bootstrap

import (
	"github.com/sirupsen/logrus"

	"github.com/murkotick/catalog-admin/internal/app/identity/usecases/login"
	"github.com/murkotick/catalog-admin/internal/app/identity/usecases/seed"
	"github.com/murkotick/catalog-admin/internal/app/product"
	"github.com/murkotick/catalog-admin/internal/auth"
	"github.com/murkotick/catalog-admin/internal/config"
	"github.com/murkotick/catalog-admin/internal/pkg/clock"
)

// App holds every service the transports and tooling call into.
type App struct {
	Commands product.Commands
	Queries  product.Queries
	Seed     *seed.Interactor
	Login    *login.Interactor
	Gate     *auth.Gate
	Tokens   *auth.TokenIssuer
}

func NewApp(cfg *config.Config, store *Store, clk clock.Clock, logger logrus.FieldLogger) (*App, error) {
	tokens, err := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return nil, err
	}

	policy := auth.DefaultPolicy()
	if cfg.AuthDeleteRequiresAdmin {
		policy = policy.WithDeleteRequiresAdmin()
	}

	cmd, qry := product.New(store.Writer, store.ReadModel, clk, logger)
	return &App{
		Commands: cmd,
		Queries:  qry,
		Seed:     seed.NewInteractor(store.Identity, clk, logger, cfg.AdminIdentifier, cfg.AdminSecret),
		Login:    login.NewInteractor(store.Identity, tokens, logger),
		Gate:     auth.NewGate(policy),
		Tokens:   tokens,
	}, nil
}
