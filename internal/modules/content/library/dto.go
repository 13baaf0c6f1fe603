package library

import (
	"time"

	"github.com/smaranika/core/internal/models"
	"github.com/smaranika/core/internal/modules/processing/markdown"
	"github.com/smaranika/core/internal/pkg/bilingual"
)

// CreateContentDTO is the request body for creating any content record.
// TitleBn is the canonical field; everything else is optional.
type CreateContentDTO struct {
	TitleBn       string     `json:"titleBn" binding:"required"`
	TitleEn       string     `json:"titleEn"`
	DescriptionBn string     `json:"descriptionBn"`
	DescriptionEn string     `json:"descriptionEn"`
	BodyBn        string     `json:"bodyBn"`
	BodyEn        string     `json:"bodyEn"`
	MediaURL      string     `json:"mediaUrl"`
	CoverURL      string     `json:"coverUrl"`
	LinkURL       string     `json:"linkUrl"`
	Source        string     `json:"source"`
	Address       string     `json:"address"`
	Latitude      *float64   `json:"latitude"`
	Longitude     *float64   `json:"longitude"`
	OccurredAt    *time.Time `json:"occurredAt"`
	Published     *bool      `json:"published"`
	Featured      *bool      `json:"featured"`
}

func (d *CreateContentDTO) Apply(c *models.ContentBase, defaultPublished bool) {
	c.TitleBn = d.TitleBn
	c.TitleEn = d.TitleEn
	c.DescriptionBn = d.DescriptionBn
	c.DescriptionEn = d.DescriptionEn
	c.BodyBn = d.BodyBn
	c.BodyEn = d.BodyEn
	c.MediaURL = d.MediaURL
	c.CoverURL = d.CoverURL
	c.LinkURL = d.LinkURL
	c.Source = d.Source
	c.Address = d.Address
	c.Latitude = d.Latitude
	c.Longitude = d.Longitude
	c.OccurredAt = d.OccurredAt

	c.Published = defaultPublished
	if d.Published != nil {
		c.Published = *d.Published
	}
	if d.Featured != nil {
		c.Featured = *d.Featured
	}
}

// UpdateContentDTO is the request body for partial updates.
type UpdateContentDTO struct {
	TitleBn       *string    `json:"titleBn"`
	TitleEn       *string    `json:"titleEn"`
	DescriptionBn *string    `json:"descriptionBn"`
	DescriptionEn *string    `json:"descriptionEn"`
	BodyBn        *string    `json:"bodyBn"`
	BodyEn        *string    `json:"bodyEn"`
	MediaURL      *string    `json:"mediaUrl"`
	CoverURL      *string    `json:"coverUrl"`
	LinkURL       *string    `json:"linkUrl"`
	Source        *string    `json:"source"`
	Address       *string    `json:"address"`
	Latitude      *float64   `json:"latitude"`
	Longitude     *float64   `json:"longitude"`
	OccurredAt    *time.Time `json:"occurredAt"`
	Published     *bool      `json:"published"`
	Featured      *bool      `json:"featured"`
}

func (d *UpdateContentDTO) Changes() map[string]interface{} {
	updates := map[string]interface{}{}
	setStr := func(col string, v *string) {
		if v != nil {
			updates[col] = *v
		}
	}
	setStr("title_bn", d.TitleBn)
	setStr("title_en", d.TitleEn)
	setStr("description_bn", d.DescriptionBn)
	setStr("description_en", d.DescriptionEn)
	setStr("body_bn", d.BodyBn)
	setStr("body_en", d.BodyEn)
	setStr("media_url", d.MediaURL)
	setStr("cover_url", d.CoverURL)
	setStr("link_url", d.LinkURL)
	setStr("source", d.Source)
	setStr("address", d.Address)
	if d.Latitude != nil {
		updates["latitude"] = *d.Latitude
	}
	if d.Longitude != nil {
		updates["longitude"] = *d.Longitude
	}
	if d.OccurredAt != nil {
		updates["occurred_at"] = *d.OccurredAt
	}
	if d.Published != nil {
		updates["published"] = *d.Published
	}
	if d.Featured != nil {
		updates["featured"] = *d.Featured
	}
	return updates
}

// ContentResponse is the API response shape shared by all content types.
// Title/description/body are resolved for the request language; the raw
// bilingual pairs ride along for the admin editor.
type ContentResponse struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	Body          string     `json:"body,omitempty"`
	BodyHTML      string     `json:"bodyHtml,omitempty"`
	TitleBn       string     `json:"titleBn"`
	TitleEn       string     `json:"titleEn,omitempty"`
	DescriptionBn string     `json:"descriptionBn,omitempty"`
	DescriptionEn string     `json:"descriptionEn,omitempty"`
	BodyBn        string     `json:"bodyBn,omitempty"`
	BodyEn        string     `json:"bodyEn,omitempty"`
	MediaURL      string     `json:"mediaUrl,omitempty"`
	CoverURL      string     `json:"coverUrl,omitempty"`
	LinkURL       string     `json:"linkUrl,omitempty"`
	Source        string     `json:"source,omitempty"`
	Address       string     `json:"address,omitempty"`
	Latitude      *float64   `json:"latitude,omitempty"`
	Longitude     *float64   `json:"longitude,omitempty"`
	OccurredAt    *time.Time `json:"occurredAt,omitempty"`
	Published     bool       `json:"published"`
	Featured      bool       `json:"featured"`
	Created       time.Time  `json:"created"`
	Modified      time.Time  `json:"modified"`
}

// ToResponse maps a content base to the API shape for the given language.
func ToResponse(c *models.ContentBase, lang bilingual.Lang, renderBody bool) ContentResponse {
	resp := ContentResponse{
		ID:            c.ID,
		Title:         bilingual.Resolve(c.TitleBn, c.TitleEn, lang),
		Description:   bilingual.Resolve(c.DescriptionBn, c.DescriptionEn, lang),
		Body:          bilingual.Resolve(c.BodyBn, c.BodyEn, lang),
		TitleBn:       c.TitleBn,
		TitleEn:       c.TitleEn,
		DescriptionBn: c.DescriptionBn,
		DescriptionEn: c.DescriptionEn,
		BodyBn:        c.BodyBn,
		BodyEn:        c.BodyEn,
		MediaURL:      c.MediaURL,
		CoverURL:      c.CoverURL,
		LinkURL:       c.LinkURL,
		Source:        c.Source,
		Address:       c.Address,
		Latitude:      c.Latitude,
		Longitude:     c.Longitude,
		OccurredAt:    c.OccurredAt,
		Published:     c.Published,
		Featured:      c.Featured,
		Created:       c.CreatedAt,
		Modified:      c.UpdatedAt,
	}
	if renderBody && resp.Body != "" {
		if html, err := markdown.Render(resp.Body); err == nil {
			resp.BodyHTML = html
		}
	}
	return resp
}
