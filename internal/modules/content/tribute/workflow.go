package tribute

import (
	"fmt"
	"strings"

	"github.com/smaranika/core/internal/models"
)

// ValidationError reports the submission fields that failed validation.
// Recoverable by resubmission.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid tribute submission: %s", strings.Join(e.Fields, ", "))
}

// ValidateSubmission checks the fields a tribute cannot exist without.
// Length limits live in the request binding; this guards the workflow entry.
func ValidateSubmission(authorName, contentBn string) error {
	var fields []string
	if strings.TrimSpace(authorName) == "" {
		fields = append(fields, "authorName")
	}
	if strings.TrimSpace(contentBn) == "" {
		fields = append(fields, "contentBn")
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Approve moves a tribute to APPROVED. The transition is a permissive
// overwrite: approving an already-approved or rejected tribute succeeds
// and lands in the same state. A prior rejection reason is cleared.
func Approve(t *models.Tribute) {
	t.Status = models.TributeApproved
	t.RejectReason = ""
}

// Reject moves a tribute to REJECTED from any state, optionally recording
// a reason.
func Reject(t *models.Tribute, reason string) {
	t.Status = models.TributeRejected
	t.RejectReason = strings.TrimSpace(reason)
}
