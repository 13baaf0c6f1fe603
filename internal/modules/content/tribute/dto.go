package tribute

import (
	"time"

	"github.com/smaranika/core/internal/models"
	"github.com/smaranika/core/internal/modules/processing/markdown"
	"github.com/smaranika/core/internal/pkg/bilingual"
)

// SubmitTributeDTO is the public submission body. ContentBn is canonical
// and must carry at least 20 characters.
type SubmitTributeDTO struct {
	AuthorName     string `json:"authorName"     binding:"required,min=2,max=120"`
	AuthorEmail    string `json:"authorEmail"    binding:"omitempty,email"`
	AuthorLocation string `json:"authorLocation" binding:"max=200"`
	AuthorRelation string `json:"authorRelation" binding:"max=200"`
	TributeType    string `json:"tributeType"    binding:"max=60"`
	ContentBn      string `json:"contentBn"      binding:"required,min=20"`
	ContentEn      string `json:"contentEn"`
}

// RejectTributeDTO optionally attaches a moderation reason.
type RejectTributeDTO struct {
	Reason string `json:"reason" binding:"max=500"`
}

type tributeResponse struct {
	ID             string               `json:"id"`
	AuthorName     string               `json:"authorName"`
	AuthorLocation string               `json:"authorLocation,omitempty"`
	AuthorRelation string               `json:"authorRelation,omitempty"`
	TributeType    string               `json:"tributeType,omitempty"`
	Content        string               `json:"content"`
	ContentHTML    string               `json:"contentHtml,omitempty"`
	ContentBn      string               `json:"contentBn"`
	ContentEn      string               `json:"contentEn,omitempty"`
	Status         models.TributeStatus `json:"status"`
	Featured       bool                 `json:"featured"`
	Created        time.Time            `json:"created"`
}

// adminTributeResponse adds moderation-only fields.
type adminTributeResponse struct {
	tributeResponse
	AuthorEmail  string `json:"authorEmail,omitempty"`
	RejectReason string `json:"rejectReason,omitempty"`
}

func toResponse(t *models.Tribute, lang bilingual.Lang) tributeResponse {
	content := bilingual.Resolve(t.ContentBn, t.ContentEn, lang)
	resp := tributeResponse{
		ID:             t.ID,
		AuthorName:     t.AuthorName,
		AuthorLocation: t.AuthorLocation,
		AuthorRelation: t.AuthorRelation,
		TributeType:    t.TributeType,
		Content:        content,
		ContentBn:      t.ContentBn,
		ContentEn:      t.ContentEn,
		Status:         t.Status,
		Featured:       t.Featured,
		Created:        t.CreatedAt,
	}
	if html, err := markdown.Render(content); err == nil {
		resp.ContentHTML = html
	}
	return resp
}

func toAdminResponse(t *models.Tribute, lang bilingual.Lang) adminTributeResponse {
	return adminTributeResponse{
		tributeResponse: toResponse(t, lang),
		AuthorEmail:     t.AuthorEmail,
		RejectReason:    t.RejectReason,
	}
}
