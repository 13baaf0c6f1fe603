package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextOrder(t *testing.T) {
	assert.Equal(t, 0, NextOrder(0, true))
	assert.Equal(t, 1, NextOrder(0, false))
	assert.Equal(t, 8, NextOrder(7, false))
}

func TestMoveAdjacent(t *testing.T) {
	ids := []string{"a", "b", "c"}

	t.Run("up swaps with previous", func(t *testing.T) {
		assert.Equal(t, []string{"b", "a", "c"}, MoveAdjacent(ids, 1, MoveUp))
	})

	t.Run("down swaps with next", func(t *testing.T) {
		assert.Equal(t, []string{"a", "c", "b"}, MoveAdjacent(ids, 1, MoveDown))
	})

	t.Run("first item up is a no-op", func(t *testing.T) {
		assert.Equal(t, ids, MoveAdjacent(ids, 0, MoveUp))
	})

	t.Run("last item down is a no-op", func(t *testing.T) {
		assert.Equal(t, ids, MoveAdjacent(ids, 2, MoveDown))
	})

	t.Run("index out of range is a no-op", func(t *testing.T) {
		assert.Equal(t, ids, MoveAdjacent(ids, 5, MoveUp))
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		_ = MoveAdjacent(ids, 1, MoveUp)
		assert.Equal(t, []string{"a", "b", "c"}, ids)
	})
}

func TestReorderPlan(t *testing.T) {
	current := []string{"a", "b", "c"}

	t.Run("exact permutation maps ids to indexes", func(t *testing.T) {
		plan, err := ReorderPlan(current, []string{"c", "a", "b"})
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"c": 0, "a": 1, "b": 2}, plan)
	})

	t.Run("missing member fails closed", func(t *testing.T) {
		plan, err := ReorderPlan(current, []string{"c", "a"})
		require.Nil(t, plan)
		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, []string{"b"}, conflict.Missing)
		assert.Empty(t, conflict.Unexpected)
	})

	t.Run("unknown id fails closed", func(t *testing.T) {
		_, err := ReorderPlan(current, []string{"c", "a", "b", "x"})
		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, []string{"x"}, conflict.Unexpected)
		assert.Empty(t, conflict.Missing)
	})

	t.Run("duplicate id counts as unexpected and missing", func(t *testing.T) {
		_, err := ReorderPlan(current, []string{"a", "a", "b"})
		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, []string{"a"}, conflict.Unexpected)
		assert.Equal(t, []string{"c"}, conflict.Missing)
	})

	t.Run("empty collections agree", func(t *testing.T) {
		plan, err := ReorderPlan(nil, nil)
		require.NoError(t, err)
		assert.Empty(t, plan)
	})
}
