package bilingual

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	t.Run("bengali always returns canonical text", func(t *testing.T) {
		assert.Equal(t, "স্মরণ", Resolve("স্মরণ", "Remembrance", LangBn))
		assert.Equal(t, "স্মরণ", Resolve("স্মরণ", "", LangBn))
	})
	t.Run("english returns english when present", func(t *testing.T) {
		assert.Equal(t, "Remembrance", Resolve("স্মরণ", "Remembrance", LangEn))
	})
	t.Run("english falls back to bengali when empty", func(t *testing.T) {
		assert.Equal(t, "স্মরণ", Resolve("স্মরণ", "", LangEn))
	})
	t.Run("whitespace-only english counts as present", func(t *testing.T) {
		assert.Equal(t, "   ", Resolve("স্মরণ", "   ", LangEn))
	})
	t.Run("empty bengali propagates unchanged", func(t *testing.T) {
		assert.Equal(t, "", Resolve("", "", LangEn))
		assert.Equal(t, "", Resolve("", "", LangBn))
	})
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, LangEn, Normalize("en"))
	assert.Equal(t, LangEn, Normalize("en-US"))
	assert.Equal(t, LangBn, Normalize("bn"))
	assert.Equal(t, LangBn, Normalize(""))
	assert.Equal(t, LangBn, Normalize("fr"))
}
