package models

import (
	"time"

	"github.com/smaranika/core/internal/pkg/lifecycle"
)

// ContentBase carries the fields shared by every publishable entity:
// bilingual text pairs (Bengali canonical, English optional), the
// publication state, and the metadata superset used across entity types.
type ContentBase struct {
	Base
	TitleBn       string `json:"title_bn"       gorm:"not null"`
	TitleEn       string `json:"title_en"`
	DescriptionBn string `json:"description_bn" gorm:"type:text"`
	DescriptionEn string `json:"description_en" gorm:"type:text"`
	BodyBn        string `json:"body_bn"        gorm:"type:longtext"`
	BodyEn        string `json:"body_en"        gorm:"type:longtext"`

	// Opaque URLs supplied by the caller; never validated or fetched here.
	MediaURL string `json:"media_url"`
	CoverURL string `json:"cover_url"`
	LinkURL  string `json:"link_url"`

	Source     string     `json:"source"`
	Address    string     `json:"address"`
	Latitude   *float64   `json:"latitude"`
	Longitude  *float64   `json:"longitude"`
	OccurredAt *time.Time `json:"occurred_at"`

	Published bool `json:"published" gorm:"default:true;index"`
	Featured  bool `json:"featured"  gorm:"default:false"`
}

// Content returns the embedded base; every content model implements this
// so the generic library service can reach the shared fields.
func (c *ContentBase) Content() *ContentBase { return c }

// State returns the publication state.
func (c *ContentBase) State() lifecycle.State {
	return lifecycle.State{Published: c.Published, Featured: c.Featured}
}
