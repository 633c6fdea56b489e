package models

import (
	"time"

	"github.com/Narug1fps/cardapio-sub000/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a staff account for the admin panel.
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Name     string    `gorm:"not null" json:"name"`

	Role     string `gorm:"type:varchar(20);not null;default:'staff'" json:"role"` // 'admin' or 'staff'
	IsActive bool   `gorm:"default:true" json:"isActive"`

	LastLogin *time.Time `json:"lastLogin,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Hash the password before the row is written.
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}
