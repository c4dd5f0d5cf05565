package repo

import (
	"cloud.google.com/go/spanner"

	contracts "github.com/murkotick/catalog-admin/internal/app/product/contracts"
	"github.com/murkotick/catalog-admin/internal/models/m_outbox"
)

// OutboxRepo builds Spanner mutations for the transactional outbox.
type OutboxRepo struct{}

func NewOutboxRepo() *OutboxRepo {
	return &OutboxRepo{}
}

func (r *OutboxRepo) InsertMut(e *contracts.OutboxEvent) *spanner.Mutation {
	if e == nil {
		return nil
	}
	return m_outbox.InsertMutation(m_outbox.InsertValues(
		e.EventID,
		e.EventType,
		e.AggregateID,
		e.PayloadJSON,
		e.Status,
		e.CreatedAtUTC,
	))
}

// InsertMuts converts a batch of events.
func (r *OutboxRepo) InsertMuts(events []*contracts.OutboxEvent) []*spanner.Mutation {
	out := make([]*spanner.Mutation, 0, len(events))
	for _, e := range events {
		if m := r.InsertMut(e); m != nil {
			out = append(out, m)
		}
	}
	return out
}
