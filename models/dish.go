package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Dish is a single menu item. CategoryID is a plain reference: deleting a
// category intentionally leaves its dishes in place (no cascade, no
// reassignment), so a dish may point at a category that no longer exists.
type Dish struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Price       float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	CategoryID  uuid.UUID `gorm:"type:uuid;index" json:"categoryId"`
	ImageURL    string    `json:"imageUrl"`
	IsAvailable bool      `gorm:"default:true" json:"isAvailable"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (d *Dish) BeforeCreate(tx *gorm.DB) (err error) {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return
}
