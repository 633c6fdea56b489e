package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Table statuses are informational for the staff UI; order activity does not
// transition them automatically.
const (
	TableAvailable = "available"
	TableOccupied  = "occupied"
	TableReserved  = "reserved"
)

// Table is a physical seating unit, the unit of bill aggregation. Orders
// reference it by Number, not by ID.
type Table struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Number      int       `gorm:"index;not null" json:"number"`
	DisplayName string    `json:"displayName"`
	Seats       int       `gorm:"default:4" json:"seats"`
	IsActive    bool      `gorm:"default:true" json:"isActive"`
	Status      string    `gorm:"type:varchar(20);not null;default:'available'" json:"status"`

	// QRPayload is the customer menu URL encoded in the table's QR code;
	// QRImageURL points at the external rendering endpoint for it.
	QRPayload  string `json:"qrPayload"`
	QRImageURL string `json:"qrImageUrl"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (t *Table) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}

func ValidTableStatus(s string) bool {
	switch s {
	case TableAvailable, TableOccupied, TableReserved:
		return true
	}
	return false
}
