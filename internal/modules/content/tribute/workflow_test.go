package tribute

import (
	"testing"

	"github.com/smaranika/core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSubmission(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, ValidateSubmission("Karim", "স্মরণে রইলেন তিনি, আমাদের হৃদয়ে"))
	})

	t.Run("missing author name", func(t *testing.T) {
		err := ValidateSubmission("  ", "স্মরণে")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"authorName"}, verr.Fields)
	})

	t.Run("missing both fields are enumerated", func(t *testing.T) {
		err := ValidateSubmission("", "")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"authorName", "contentBn"}, verr.Fields)
	})
}

func TestApprove(t *testing.T) {
	t.Run("pending to approved", func(t *testing.T) {
		tr := models.Tribute{Status: models.TributePending}
		Approve(&tr)
		assert.Equal(t, models.TributeApproved, tr.Status)
		assert.True(t, tr.Public())
	})

	t.Run("idempotent re-approval", func(t *testing.T) {
		tr := models.Tribute{Status: models.TributeApproved}
		Approve(&tr)
		assert.Equal(t, models.TributeApproved, tr.Status)
	})

	t.Run("rejected to approved is permitted and clears the reason", func(t *testing.T) {
		tr := models.Tribute{Status: models.TributeRejected, RejectReason: "spam"}
		Approve(&tr)
		assert.Equal(t, models.TributeApproved, tr.Status)
		assert.Empty(t, tr.RejectReason)
	})
}

func TestReject(t *testing.T) {
	t.Run("pending to rejected with reason", func(t *testing.T) {
		tr := models.Tribute{Status: models.TributePending}
		Reject(&tr, "spam")
		assert.Equal(t, models.TributeRejected, tr.Status)
		assert.Equal(t, "spam", tr.RejectReason)
		assert.False(t, tr.Public())
	})

	t.Run("reason is optional", func(t *testing.T) {
		tr := models.Tribute{Status: models.TributeApproved}
		Reject(&tr, "")
		assert.Equal(t, models.TributeRejected, tr.Status)
		assert.Empty(t, tr.RejectReason)
	})

	t.Run("featured rejected tribute stays hidden", func(t *testing.T) {
		tr := models.Tribute{Status: models.TributeRejected, Featured: true}
		assert.False(t, tr.Public())
	})
}
