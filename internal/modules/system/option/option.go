// Package option stores site settings as name/value rows. A small public
// snapshot (site title, default language and similar presentation keys)
// feeds the frontend; everything else is admin-only.
package option

import (
	"errors"

	"github.com/smaranika/core/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNotFound = errors.New("option not found")

// publicKeys are exposed on the unauthenticated site snapshot.
var publicKeys = []string{
	"site_title_bn",
	"site_title_en",
	"site_subtitle_bn",
	"site_subtitle_en",
	"default_language",
	"footer_text_bn",
	"footer_text_en",
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) All() (map[string]string, error) {
	var rows []models.OptionModel
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.Name] = row.Value
	}
	return out, nil
}

// Public returns the snapshot of presentation keys; absent keys are omitted.
func (s *Service) Public() (map[string]string, error) {
	var rows []models.OptionModel
	if err := s.db.Where("name IN ?", publicKeys).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.Name] = row.Value
	}
	return out, nil
}

func (s *Service) Get(name string) (string, error) {
	var row models.OptionModel
	if err := s.db.First(&row, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return row.Value, nil
}

// Set upserts one option.
func (s *Service) Set(name, value string) error {
	row := models.OptionModel{Name: name, Value: value}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
}

func (s *Service) Delete(name string) error {
	res := s.db.Delete(&models.OptionModel{}, "name = ?", name)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
