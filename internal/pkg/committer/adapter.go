package committer

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
)

// Adapter applies plans against a Spanner database.
type Adapter struct {
	client *spanner.Client
}

func NewAdapter(client *spanner.Client) *Adapter {
	return &Adapter{client: client}
}

// Apply runs the plan's guards and buffers its mutations in a single
// read-write transaction. Spanner may retry the function on abort, so
// guards must be free of side effects outside tx.
func (a *Adapter) Apply(ctx context.Context, plan *Plan) error {
	if plan == nil || plan.IsEmpty() {
		return nil
	}

	if a.client == nil {
		return fmt.Errorf("committer: spanner client is nil")
	}

	_, err := a.client.ReadWriteTransaction(ctx, func(ctx context.Context, tx *spanner.ReadWriteTransaction) error {
		for _, g := range plan.Guards() {
			if err := g(ctx, tx); err != nil {
				return err
			}
		}
		if len(plan.Mutations()) == 0 {
			return nil
		}
		return tx.BufferWrite(plan.Mutations())
	})
	return err
}
