package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailyReport is an aggregated sales summary for one calendar day. The
// reports endpoint computes it live; the nightly scheduler also persists a
// snapshot row per day.
type DailyReport struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Date time.Time `gorm:"uniqueIndex;not null" json:"date"`

	TotalOrders       int     `json:"totalOrders"`
	TotalRevenue      float64 `gorm:"type:decimal(10,2)" json:"totalRevenue"`
	CancelledCount    int     `json:"cancelledCount"`
	AverageOrderValue float64 `gorm:"type:decimal(10,2)" json:"averageOrderValue"`
	TopDishName       string  `json:"topDishName"`
	TopDishQuantity   int     `json:"topDishQuantity"`

	CreatedAt time.Time `json:"createdAt"`
}

func (r *DailyReport) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
