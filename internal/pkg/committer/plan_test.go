package committer

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan_IgnoresNil(t *testing.T) {
	p := NewPlan()
	p.Add(nil)
	p.Require(nil)
	assert.True(t, p.IsEmpty())
}

func TestPlan_CollectsInOrder(t *testing.T) {
	p := NewPlan()
	first := spanner.Delete("products", spanner.Key{int64(1)})
	second := spanner.Delete("products", spanner.Key{int64(2)})
	p.Add(first)
	p.Add(second)

	var calls []int
	p.Require(func(context.Context, *spanner.ReadWriteTransaction) error { calls = append(calls, 1); return nil })
	p.Require(func(context.Context, *spanner.ReadWriteTransaction) error { calls = append(calls, 2); return nil })

	require.False(t, p.IsEmpty())
	assert.Equal(t, []*spanner.Mutation{first, second}, p.Mutations())
	require.Len(t, p.Guards(), 2)
	for _, g := range p.Guards() {
		require.NoError(t, g(context.Background(), nil))
	}
	assert.Equal(t, []int{1, 2}, calls)
}

func TestAdapter_EmptyPlanIsNoop(t *testing.T) {
	a := NewAdapter(nil)
	assert.NoError(t, a.Apply(context.Background(), NewPlan()))
	assert.Error(t, a.Apply(context.Background(), func() *Plan { p := NewPlan(); p.Add(spanner.Delete("x", spanner.Key{1})); return p }()))
}
