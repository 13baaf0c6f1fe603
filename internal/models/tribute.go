package models

// TributeStatus is the moderation state of a user-submitted tribute.
type TributeStatus string

const (
	TributePending  TributeStatus = "PENDING"
	TributeApproved TributeStatus = "APPROVED"
	TributeRejected TributeStatus = "REJECTED"
)

// Tribute is a public-submitted memorial message. Unlike admin-authored
// content it is gated by Status, not a published flag: it is publicly
// visible iff Status == APPROVED. Featured pins an approved tribute on the
// homepage and has no effect in any other status.
type Tribute struct {
	Base
	AuthorName     string `json:"author_name"     gorm:"not null"`
	AuthorEmail    string `json:"author_email"`
	AuthorLocation string `json:"author_location"`
	AuthorRelation string `json:"author_relation"`
	TributeType    string `json:"tribute_type"`

	ContentBn string `json:"content_bn" gorm:"type:longtext;not null"`
	ContentEn string `json:"content_en" gorm:"type:longtext"`

	Status       TributeStatus `json:"status"        gorm:"type:varchar(16);default:'PENDING';index"`
	RejectReason string        `json:"reject_reason"`
	Featured     bool          `json:"featured"      gorm:"default:false"`

	IP    string `json:"-" gorm:"column:ip"`
	Agent string `json:"-" gorm:"type:varchar(512)"`
}

func (Tribute) TableName() string { return "tributes" }

// Public reports whether the tribute is visible on public endpoints.
func (t Tribute) Public() bool { return t.Status == TributeApproved }
