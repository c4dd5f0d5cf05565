package repo_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/iterator"

	app "github.com/murkotick/catalog-admin/internal/app/product"
	"github.com/murkotick/catalog-admin/internal/app/product/domain"
	"github.com/murkotick/catalog-admin/internal/app/product/queries"
	"github.com/murkotick/catalog-admin/internal/app/product/queries/list_products"
	"github.com/murkotick/catalog-admin/internal/app/product/repo"
	"github.com/murkotick/catalog-admin/internal/app/product/usecases/create_product"
	"github.com/murkotick/catalog-admin/internal/app/product/usecases/update_product"
	"github.com/murkotick/catalog-admin/internal/pkg/clock"
	"github.com/murkotick/catalog-admin/internal/pkg/committer"
	"github.com/murkotick/catalog-admin/internal/pkg/spannerdb/spannerdbtest"
)

func eventTypes(ctx context.Context, t *testing.T, client *spanner.Client, aggregateID int64) []string {
	t.Helper()
	iter := client.Single().Query(ctx, spanner.Statement{
		SQL: `SELECT event_type FROM outbox_events
		      WHERE aggregate_id = @id
		      ORDER BY created_at ASC, event_id ASC`,
		Params: map[string]interface{}{"id": strconv.FormatInt(aggregateID, 10)},
	})
	defer iter.Stop()

	out := []string{}
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out
		}
		require.NoError(t, err)
		var s string
		require.NoError(t, row.Columns(&s))
		out = append(out, s)
	}
}

func TestSpannerProductFlow(t *testing.T) {
	client := spannerdbtest.New(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	logger, _ := test.NewNullLogger()
	clk := clock.NewFake(time.Now().UTC().Truncate(time.Second))
	writer := repo.NewSpannerProductWriter(committer.NewAdapter(client))
	cmd, qry := app.New(writer, queries.NewSpannerReadModel(client), clk, logger)

	cat, err := writer.CreateCategory(ctx, "Books")
	require.NoError(t, err)

	id, err := cmd.Create.Execute(ctx, create_product.Request{Name: "Go in Action", Price: "39.99", CategoryID: cat})
	require.NoError(t, err)

	got, err := qry.Get.Execute(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Go in Action", got.Name)
	assert.Equal(t, "39.99", got.Price.StringFixed(2))
	assert.Equal(t, "Books", got.Category.Name)

	page, err := qry.List.Execute(ctx, list_products.Request{SearchString: "ACTION"})
	require.NoError(t, err)
	require.Equal(t, 1, page.TotalCount)

	clk.Advance(time.Second)
	first := update_product.Request{PathID: id, ProductID: id, Version: 1, Name: "Go in Action, 2nd ed.", Price: "44.99", CategoryID: cat}
	require.NoError(t, cmd.Update.Execute(ctx, first))
	second := first
	second.Name = "Someone else's edit"
	assert.ErrorIs(t, cmd.Update.Execute(ctx, second), domain.ErrConcurrencyConflict)

	_, err = cmd.Create.Execute(ctx, create_product.Request{Name: "Orphan", Price: "1", CategoryID: cat + 1})
	assert.ErrorIs(t, err, domain.ErrValidation)

	clk.Advance(time.Second)
	require.NoError(t, cmd.Delete.Execute(ctx, id))
	require.NoError(t, cmd.Delete.Execute(ctx, id))
	_, err = qry.Get.Execute(ctx, id)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	assert.Equal(t, []string{"product.created", "product.updated", "product.deleted"}, eventTypes(ctx, t, client, id))
}
