// Package bootstrap opens the configured store and assembles the
// application services on top of it.
package bootstrap

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/spanner"
	"github.com/sirupsen/logrus"

	identitycontracts "github.com/murkotick/catalog-admin/internal/app/identity/contracts"
	identityrepo "github.com/murkotick/catalog-admin/internal/app/identity/repo"
	"github.com/murkotick/catalog-admin/internal/app/product/contracts"
	"github.com/murkotick/catalog-admin/internal/app/product/queries"
	"github.com/murkotick/catalog-admin/internal/app/product/repo"
	"github.com/murkotick/catalog-admin/internal/config"
	"github.com/murkotick/catalog-admin/internal/pkg/committer"
	"github.com/murkotick/catalog-admin/internal/pkg/spannerdb"
	"github.com/murkotick/catalog-admin/internal/pkg/sqldb"
	"github.com/murkotick/catalog-admin/migrations"
)

// Writer is the product write side plus category reference data.
type Writer interface {
	contracts.ProductWriter
	contracts.CategoryWriter
}

// Store is one open backend with every adapter the application needs.
type Store struct {
	Driver    string
	Writer    Writer
	ReadModel contracts.ReadModel
	Identity  identitycontracts.Provider

	close func() error
}

func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// OpenStore connects to the backend named by cfg.StoreDriver. The schema is
// not touched; call Migrate first on a fresh database.
func OpenStore(ctx context.Context, cfg *config.Config, logger logrus.FieldLogger) (*Store, error) {
	switch cfg.StoreDriver {
	case config.DriverSQLite, config.DriverPostgres:
		db, err := sqldb.Open(ctx, cfg.StoreDriver, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return &Store{
			Driver:    cfg.StoreDriver,
			Writer:    repo.NewSQLProductWriter(db, logger),
			ReadModel: queries.NewSQLReadModel(db),
			Identity:  identityrepo.NewSQLProvider(db),
			close:     db.Close,
		}, nil

	case config.DriverSpanner:
		client, err := spanner.NewClient(ctx, cfg.SpannerDatabase)
		if err != nil {
			return nil, fmt.Errorf("spanner.NewClient: %w", err)
		}
		cm := committer.NewAdapter(client)
		return &Store{
			Driver:    cfg.StoreDriver,
			Writer:    repo.NewSpannerProductWriter(cm),
			ReadModel: queries.NewSpannerReadModel(client),
			Identity:  identityrepo.NewSpannerProvider(client, cm),
			close: func() error {
				client.Close()
				return nil
			},
		}, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

// Migrate brings the configured backend's schema up to date. For Spanner
// the instance is created too when running against the emulator.
func Migrate(ctx context.Context, cfg *config.Config, logger logrus.FieldLogger) error {
	if cfg.StoreDriver != config.DriverSpanner {
		db, err := sqldb.Open(ctx, cfg.StoreDriver, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.Migrate(ctx); err != nil {
			return err
		}
		logger.WithField("driver", cfg.StoreDriver).Info("Schema applied")
		return nil
	}

	name, err := spannerdb.ParseName(cfg.SpannerDatabase)
	if err != nil {
		return err
	}
	stmts, err := migrations.Statements(config.DriverSpanner)
	if err != nil {
		return err
	}

	admin, err := spannerdb.NewAdmin(ctx)
	if err != nil {
		return err
	}
	defer admin.Close()

	if os.Getenv("SPANNER_EMULATOR_HOST") != "" {
		if err := admin.EnsureInstance(ctx, name); err != nil {
			return err
		}
	}
	if err := admin.EnsureDatabase(ctx, name); err != nil {
		return err
	}
	applied, err := admin.ApplySchema(ctx, name, stmts)
	if err != nil {
		return err
	}

	log := logger.WithFields(logrus.Fields{"driver": cfg.StoreDriver, "database": name.String()})
	if applied {
		log.WithField("statements", len(stmts)).Info("Schema applied")
	} else {
		log.Info("Schema already present")
	}
	return nil
}
