package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	BaseModel
	Name         string   `gorm:"size:255;not null" json:"name"`
	Email        string   `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"column:password;not null" json:"-"`
	Role         UserRole `gorm:"size:20;not null" json:"role"`

	// Relations
	AccessTokens []AccessToken `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

// AccessToken - выданный bearer токен. Запись существует, пока токен не отозван.
// ID совпадает с claim "jti" в JWT.
type AccessToken struct {
	ID         string     `gorm:"primaryKey;size:36" json:"id"`
	UserID     uint       `gorm:"not null;index" json:"user_id"`
	Name       string     `gorm:"size:100" json:"name"`
	LastUsedAt *time.Time `json:"last_used_at"`
	ExpiresAt  *time.Time `json:"expires_at"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (t *AccessToken) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// Expired - токены без ExpiresAt не истекают
func (t *AccessToken) Expired(now time.Time) bool {
	return t.ExpiresAt != nil && !now.Before(*t.ExpiresAt)
}
