package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeta(t *testing.T) {
	t.Run("exact pages", func(t *testing.T) {
		m := Meta(Query{Page: 0, Size: 10}, 20)
		assert.Equal(t, int64(20), m.TotalElements)
		assert.Equal(t, 2, m.TotalPages)
		assert.False(t, m.Last)

		assert.True(t, Meta(Query{Page: 1, Size: 10}, 20).Last)
	})

	t.Run("partial final page", func(t *testing.T) {
		m := Meta(Query{Page: 1, Size: 10}, 12)
		assert.Equal(t, 2, m.TotalPages)
		assert.True(t, m.Last)
	})

	t.Run("page past the end is last, not an error", func(t *testing.T) {
		m := Meta(Query{Page: 5, Size: 10}, 12)
		assert.Equal(t, int64(12), m.TotalElements)
		assert.Equal(t, 2, m.TotalPages)
		assert.True(t, m.Last)
	})

	t.Run("empty collection", func(t *testing.T) {
		m := Meta(Query{Page: 0, Size: 10}, 0)
		assert.Equal(t, 0, m.TotalPages)
		assert.True(t, m.Last)
	})

	t.Run("single element", func(t *testing.T) {
		m := Meta(Query{Page: 0, Size: 10}, 1)
		assert.Equal(t, 1, m.TotalPages)
		assert.True(t, m.Last)
	})
}
