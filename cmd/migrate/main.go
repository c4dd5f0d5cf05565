package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/murkotick/catalog-admin/internal/app/product/domain"
	"github.com/murkotick/catalog-admin/internal/bootstrap"
	"github.com/murkotick/catalog-admin/internal/config"
	"github.com/murkotick/catalog-admin/internal/pkg/clock"
	"github.com/murkotick/catalog-admin/internal/pkg/logger"
)

var timeout time.Duration

var rootCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the catalog schema to the configured store",
	Long: `migrate applies the embedded schema for STORE_DRIVER (sqlite, postgres or
spanner). Against the Spanner emulator the instance and database are created
when missing.

Usage (emulator):

	SPANNER_EMULATOR_HOST=localhost:9010 STORE_DRIVER=spanner JWT_SECRET=dev go run ./cmd/migrate`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withConfig(func(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
			return bootstrap.Migrate(ctx, cfg, log)
		})
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the default roles and the admin principal if missing",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(ctx context.Context, _ *bootstrap.Store, a *bootstrap.App) error {
			return a.Seed.EnsureBootstrapState(ctx)
		})
	},
}

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage category reference data",
}

var categoryAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := domain.NormalizeCategoryName(args[0])
		if err != nil {
			return err
		}
		return withApp(func(ctx context.Context, store *bootstrap.Store, _ *bootstrap.App) error {
			id, err := store.Writer.CreateCategory(ctx, name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created category %q with id %d\n", name, id)
			return nil
		})
	},
}

func init() {
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "Overall deadline for the command")

	categoryCmd.AddCommand(categoryAddCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(categoryCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func withConfig(fn func(ctx context.Context, cfg *config.Config, log *logrus.Logger) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return fn(ctx, cfg, log)
}

func withApp(fn func(ctx context.Context, store *bootstrap.Store, a *bootstrap.App) error) error {
	return withConfig(func(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
		store, err := bootstrap.OpenStore(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer store.Close()

		a, err := bootstrap.NewApp(cfg, store, clock.RealClock{}, log)
		if err != nil {
			return err
		}
		return fn(ctx, store, a)
	})
}
