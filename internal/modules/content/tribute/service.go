package tribute

import (
	"errors"

	"github.com/smaranika/core/internal/models"
	"github.com/smaranika/core/internal/pkg/pagination"
	"github.com/smaranika/core/internal/pkg/response"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("tribute not found")

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Submit stores a public tribute submission. Status is always PENDING
// regardless of input; moderation is the only path to visibility.
func (s *Service) Submit(dto *SubmitTributeDTO, ip, agent string) (*models.Tribute, error) {
	if err := ValidateSubmission(dto.AuthorName, dto.ContentBn); err != nil {
		return nil, err
	}

	t := models.Tribute{
		AuthorName:     dto.AuthorName,
		AuthorEmail:    dto.AuthorEmail,
		AuthorLocation: dto.AuthorLocation,
		AuthorRelation: dto.AuthorRelation,
		TributeType:    dto.TributeType,
		ContentBn:      dto.ContentBn,
		ContentEn:      dto.ContentEn,
		Status:         models.TributePending,
		IP:             ip,
		Agent:          agent,
	}
	if err := s.db.Create(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns a page of tributes, featured first. Public listings see
// APPROVED tributes only; admin listings may filter by status.
func (s *Service) List(q pagination.Query, publicOnly bool, status *models.TributeStatus) ([]models.Tribute, response.Pagination, error) {
	tx := s.db.Model(&models.Tribute{}).Order("featured DESC, created_at DESC")
	if publicOnly {
		tx = tx.Where("status = ?", models.TributeApproved)
	} else if status != nil {
		tx = tx.Where("status = ?", *status)
	}
	var tributes []models.Tribute
	pag, err := pagination.Paginate(tx, q, &tributes)
	return tributes, pag, err
}

func (s *Service) GetByID(id string) (*models.Tribute, error) {
	var t models.Tribute
	if err := s.db.First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// Approve applies the APPROVED transition and persists the status fields.
func (s *Service) Approve(id string) (*models.Tribute, error) {
	t, err := s.require(id)
	if err != nil {
		return nil, err
	}
	Approve(t)
	return t, s.saveStatus(t)
}

// Reject applies the REJECTED transition with an optional reason.
func (s *Service) Reject(id, reason string) (*models.Tribute, error) {
	t, err := s.require(id)
	if err != nil {
		return nil, err
	}
	Reject(t, reason)
	return t, s.saveStatus(t)
}

// ToggleFeatured flips the featured flag in any status; it only shows
// publicly once the tribute is APPROVED.
func (s *Service) ToggleFeatured(id string) (*models.Tribute, error) {
	res := s.db.Model(&models.Tribute{}).
		Where("id = ?", id).
		UpdateColumn("featured", gorm.Expr("NOT featured"))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetByID(id)
}

// Delete removes a tribute in any state.
func (s *Service) Delete(id string) error {
	res := s.db.Delete(&models.Tribute{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Service) require(id string) (*models.Tribute, error) {
	t, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrNotFound
	}
	return t, nil
}

func (s *Service) saveStatus(t *models.Tribute) error {
	return s.db.Model(t).Updates(map[string]interface{}{
		"status":        t.Status,
		"reject_reason": t.RejectReason,
	}).Error
}
