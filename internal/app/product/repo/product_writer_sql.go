package repo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"

	contracts "github.com/murkotick/catalog-admin/internal/app/product/contracts"
	domain "github.com/murkotick/catalog-admin/internal/app/product/domain"
	"github.com/murkotick/catalog-admin/internal/app/product/outbox"
	"github.com/murkotick/catalog-admin/internal/app/product/utils"
	"github.com/murkotick/catalog-admin/internal/models/m_outbox"
	"github.com/murkotick/catalog-admin/internal/pkg/sqldb"
)

// SQLProductWriter satisfies contracts.ProductWriter and
// contracts.CategoryWriter on SQLite or Postgres.
type SQLProductWriter struct {
	db  *sqldb.DB
	log logrus.FieldLogger
}

func NewSQLProductWriter(db *sqldb.DB, logger logrus.FieldLogger) *SQLProductWriter {
	return &SQLProductWriter{db: db, log: logger}
}

func (w *SQLProductWriter) InsertProduct(ctx context.Context, p *domain.Product) (int64, error) {
	query := w.db.Rebind(`INSERT INTO products (name, price, category_id, version, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING product_id`)

	err := w.db.InTx(ctx, func(tx *sql.Tx) error {
		var id int64
		if err := tx.QueryRowContext(ctx, query,
			p.Name(), p.Price(), p.CategoryID(), p.Version(),
			utils.FormatTime(p.CreatedAt()), utils.FormatTime(p.UpdatedAt()),
		).Scan(&id); err != nil {
			return err
		}
		p.AssignID(id)
		return w.insertOutbox(ctx, tx, p.DomainEvents())
	})
	if err != nil {
		if sqldb.IsForeignKeyViolation(err) {
			w.log.Warnf("Attempted to create product with non-existent category ID: %d", p.CategoryID())
			return 0, fmt.Errorf("could not create product: %w", domain.ErrCategoryNotFound)
		}
		return 0, fmt.Errorf("could not create product: %w", err)
	}

	w.log.WithFields(logrus.Fields{"product_id": p.ID(), "name": p.Name()}).Debug("Product row inserted")
	return p.ID(), nil
}

func (w *SQLProductWriter) UpdateProduct(ctx context.Context, p *domain.Product, expectedVersion int64) (contracts.UpdateOutcome, error) {
	update := w.db.Rebind(`UPDATE products
		SET name = ?, price = ?, category_id = ?, version = version + 1, updated_at = ?
		WHERE product_id = ? AND version = ?`)
	exists := w.db.Rebind(`SELECT COUNT(*) FROM products WHERE product_id = ?`)

	outcome := contracts.UpdateApplied
	err := w.db.InTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, update,
			p.Name(), p.Price(), p.CategoryID(), utils.FormatTime(p.UpdatedAt()),
			p.ID(), expectedVersion)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("could not confirm product update: %w", err)
		}
		if n == 1 {
			return w.insertOutbox(ctx, tx, p.DomainEvents())
		}

		var count int
		if err := tx.QueryRowContext(ctx, exists, p.ID()).Scan(&count); err != nil {
			return err
		}
		if count == 0 {
			outcome = contracts.UpdateAbsent
		} else {
			outcome = contracts.UpdateConflict
		}
		return nil
	})
	if err != nil {
		if sqldb.IsForeignKeyViolation(err) {
			w.log.Warnf("Attempted to update product ID %d with non-existent category ID: %d", p.ID(), p.CategoryID())
			return contracts.UpdateConflict, fmt.Errorf("could not update product: %w", domain.ErrCategoryNotFound)
		}
		return contracts.UpdateConflict, fmt.Errorf("could not update product: %w", err)
	}

	if outcome != contracts.UpdateApplied {
		w.log.WithFields(logrus.Fields{
			"product_id":       p.ID(),
			"expected_version": expectedVersion,
			"outcome":          outcome.String(),
		}).Warn("Product update not applied")
	}
	return outcome, nil
}

func (w *SQLProductWriter) DeleteProduct(ctx context.Context, ev *domain.ProductDeletedEvent) (bool, error) {
	query := w.db.Rebind(`DELETE FROM products WHERE product_id = ?`)

	deleted := false
	err := w.db.InTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, query, ev.ProductID)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("could not confirm product deletion: %w", err)
		}
		if n == 0 {
			return nil
		}
		deleted = true
		return w.insertOutbox(ctx, tx, []domain.DomainEvent{ev})
	})
	if err != nil {
		return false, fmt.Errorf("could not delete product: %w", err)
	}

	if !deleted {
		w.log.Debugf("Delete of non-existent product ID %d ignored", ev.ProductID)
	}
	return deleted, nil
}

func (w *SQLProductWriter) CreateCategory(ctx context.Context, name string) (int64, error) {
	name, err := domain.NormalizeCategoryName(name)
	if err != nil {
		return 0, err
	}

	var id int64
	query := w.db.Rebind(`INSERT INTO categories (name) VALUES (?) RETURNING category_id`)
	if err := w.db.QueryRowContext(ctx, query, name).Scan(&id); err != nil {
		return 0, fmt.Errorf("could not create category: %w", err)
	}
	return id, nil
}

func (w *SQLProductWriter) insertOutbox(ctx context.Context, tx *sql.Tx, events []domain.DomainEvent) error {
	rows, err := outbox.BuildEvents(events)
	if err != nil {
		return err
	}

	query := w.db.Rebind(m_outbox.InsertSQL())
	for _, e := range rows {
		values := m_outbox.InsertValues(e.EventID, e.EventType, e.AggregateID, e.PayloadJSON, e.Status,
			utils.FormatTime(e.CreatedAtUTC))
		if _, err := tx.ExecContext(ctx, query, values...); err != nil {
			return fmt.Errorf("could not write outbox event %s: %w", e.EventType, err)
		}
	}
	return nil
}
