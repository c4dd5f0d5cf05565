package committer

import (
	"context"

	"cloud.google.com/go/spanner"
)

// Guard runs inside the read-write transaction before any mutation is
// buffered. Returning an error aborts the commit; the error is passed back
// from Apply unchanged so callers can match their own sentinels.
type Guard func(ctx context.Context, tx *spanner.ReadWriteTransaction) error

// Plan collects the reads that must hold and the mutations to apply
// atomically once they do.
type Plan struct {
	guards    []Guard
	mutations []*spanner.Mutation
}

func NewPlan() *Plan {
	return &Plan{
		mutations: make([]*spanner.Mutation, 0),
	}
}

func (p *Plan) Add(m *spanner.Mutation) {
	if m == nil {
		return
	}
	p.mutations = append(p.mutations, m)
}

// Require adds a guard. Guards run in the order they were added.
func (p *Plan) Require(g Guard) {
	if g == nil {
		return
	}
	p.guards = append(p.guards, g)
}

func (p *Plan) IsEmpty() bool {
	return len(p.mutations) == 0 && len(p.guards) == 0
}

func (p *Plan) Mutations() []*spanner.Mutation {
	return p.mutations
}

func (p *Plan) Guards() []Guard {
	return p.guards
}
