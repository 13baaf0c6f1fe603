package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTogglePublished(t *testing.T) {
	s := State{Published: false}
	assert.True(t, s.TogglePublished().Published)
	assert.False(t, s.TogglePublished().TogglePublished().Published, "double toggle restores the original state")
}

func TestToggleFeatured(t *testing.T) {
	s := State{Published: false, Featured: false}
	flipped := s.ToggleFeatured()
	assert.True(t, flipped.Featured)
	assert.False(t, flipped.Published, "featuring never touches published")
	assert.Equal(t, s, flipped.ToggleFeatured())
}

func TestPublic(t *testing.T) {
	assert.True(t, State{Published: true}.Public())
	assert.False(t, State{Published: false}.Public())
	assert.False(t, State{Published: false, Featured: true}.Public(), "featured-but-unpublished stays hidden")
	assert.True(t, State{Published: true, Featured: true}.Public())
}
