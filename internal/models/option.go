package models

// OptionModel stores site settings as name/value pairs (site title pair,
// default language, hero image, footer text).
type OptionModel struct {
	Base
	Name  string `json:"name"  gorm:"uniqueIndex;not null"`
	Value string `json:"value" gorm:"type:longtext"`
}

func (OptionModel) TableName() string { return "options" }
