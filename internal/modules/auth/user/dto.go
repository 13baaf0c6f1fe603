package user

import (
	"time"

	"github.com/smaranika/core/internal/models"
)

type RegisterDTO struct {
	Username string `json:"username" binding:"required,min=3,max=40"`
	Name     string `json:"name"     binding:"max=80"`
	Password string `json:"password" binding:"required,min=8,max=128"`
	Mail     string `json:"mail"     binding:"omitempty,email"`
}

type LoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateUserDTO struct {
	Name     *string `json:"name"     binding:"omitempty,max=80"`
	Avatar   *string `json:"avatar"`
	Mail     *string `json:"mail"     binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=8,max=128"`
}

type userResponse struct {
	ID            string     `json:"id"`
	Username      string     `json:"username"`
	Name          string     `json:"name"`
	Avatar        string     `json:"avatar,omitempty"`
	Mail          string     `json:"mail,omitempty"`
	LastLoginTime *time.Time `json:"lastLoginTime,omitempty"`
	Created       time.Time  `json:"created"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

func toResponse(u *models.UserModel) userResponse {
	return userResponse{
		ID:            u.ID,
		Username:      u.Username,
		Name:          u.Name,
		Avatar:        u.Avatar,
		Mail:          u.Mail,
		LastLoginTime: u.LastLoginTime,
		Created:       u.CreatedAt,
	}
}
