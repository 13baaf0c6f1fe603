// Package user handles the admin account: registration of the first (and
// only) user, login with revocable sessions, and profile management.
package user

import (
	"errors"
	"time"

	"github.com/smaranika/core/internal/database"
	"github.com/smaranika/core/internal/models"
	"github.com/smaranika/core/internal/pkg/session"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrAlreadyExists  = errors.New("an admin account already exists")
	ErrBadCredentials = errors.New("invalid username or password")
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Register creates the admin account. The site is single-admin: once any
// user row exists, registration is closed.
func (s *Service) Register(dto *RegisterDTO) (*models.UserModel, error) {
	var count int64
	if err := s.db.Model(&models.UserModel{}).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &models.UserModel{
		Username: dto.Username,
		Name:     dto.Name,
		Password: string(hashed),
		Mail:     dto.Mail,
	}
	if u.Name == "" {
		u.Name = dto.Username
	}
	if err := s.db.Create(u).Error; err != nil {
		if database.IsDuplicateEntry(err) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}
	return u, nil
}

// Login verifies credentials and issues a session-bound token. The last
// login time/IP are recorded best-effort after the session exists.
func (s *Service) Login(dto *LoginDTO, ip, ua string) (string, *models.UserModel, error) {
	var u models.UserModel
	if err := s.db.First(&u, "username = ?", dto.Username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrBadCredentials
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(dto.Password)) != nil {
		return "", nil, ErrBadCredentials
	}

	token, _, err := session.Issue(s.db, u.ID, ip, ua, session.DefaultTTL)
	if err != nil {
		return "", nil, err
	}

	now := time.Now()
	_ = s.db.Model(&u).Updates(map[string]interface{}{
		"last_login_time": &now,
		"last_login_ip":   ip,
	}).Error
	u.LastLoginTime = &now
	u.LastLoginIP = ip

	return token, &u, nil
}

func (s *Service) GetByID(id string) (*models.UserModel, error) {
	var u models.UserModel
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// GetMaster returns the admin account, for the public profile endpoint.
func (s *Service) GetMaster() (*models.UserModel, error) {
	var u models.UserModel
	if err := s.db.Order("created_at ASC").First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *Service) Update(id string, dto *UpdateUserDTO) (*models.UserModel, error) {
	u, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if dto.Name != nil {
		updates["name"] = *dto.Name
	}
	if dto.Avatar != nil {
		updates["avatar"] = *dto.Avatar
	}
	if dto.Mail != nil {
		updates["mail"] = *dto.Mail
	}
	if dto.Password != nil && *dto.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*dto.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		updates["password"] = string(hashed)
	}
	if len(updates) == 0 {
		return u, nil
	}
	if err := s.db.Model(u).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Logout revokes the session behind the presented token.
func (s *Service) Logout(userID, sessionID string) error {
	err := session.Revoke(s.db, userID, sessionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil // already revoked or expired
	}
	return err
}
