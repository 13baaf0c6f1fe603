package models

import "time"

// UserModel represents a site admin/moderator.
type UserModel struct {
	Base
	Username      string     `json:"username"        gorm:"uniqueIndex;not null"`
	Name          string     `json:"name"`
	Avatar        string     `json:"avatar"`
	Password      string     `json:"-"               gorm:"not null"`
	Mail          string     `json:"mail"`
	LastLoginTime *time.Time `json:"last_login_time"`
	LastLoginIP   string     `json:"last_login_ip"`
}

func (UserModel) TableName() string { return "users" }

// UserSession is a revocable login session bound to a JWT.
type UserSession struct {
	Base
	UserID    string     `json:"-"          gorm:"index;not null"`
	IP        string     `json:"ip"`
	UA        string     `json:"ua"         gorm:"type:varchar(512)"`
	ExpiresAt time.Time  `json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at"`
}

func (UserSession) TableName() string { return "user_sessions" }
