package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CallType string

const (
	CallBill       CallType = "bill"
	CallAssistance CallType = "assistance"
	CallOrderReady CallType = "order_ready"
)

func (t CallType) Valid() bool {
	switch t {
	case CallBill, CallAssistance, CallOrderReady:
		return true
	}
	return false
}

type CallStatus string

const (
	CallPending      CallStatus = "pending"
	CallAcknowledged CallStatus = "acknowledged"
	CallCompleted    CallStatus = "completed"
)

func (s CallStatus) Valid() bool {
	switch s {
	case CallPending, CallAcknowledged, CallCompleted:
		return true
	}
	return false
}

// CanTransitionTo enforces the monotonic chain pending → acknowledged →
// completed; completed is terminal.
func (s CallStatus) CanTransitionTo(next CallStatus) bool {
	switch {
	case s == CallPending && next == CallAcknowledged:
		return true
	case s == CallAcknowledged && next == CallCompleted:
		return true
	}
	return false
}

// WaiterCall is a service request raised from a table, independent of any
// order. Completed calls are excluded from "active calls" views by the
// presentation layer, not here.
type WaiterCall struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	TableNumber  int        `gorm:"index;not null" json:"tableNumber"`
	Type         CallType   `gorm:"type:varchar(20);not null" json:"type"`
	Status       CallStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CustomerName string     `json:"customerName"`
	Note         string     `json:"note"`

	CreatedAt      time.Time  `json:"createdAt"`
	AcknowledgedAt *time.Time `json:"acknowledgedAt,omitempty"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
}

func (w *WaiterCall) BeforeCreate(tx *gorm.DB) (err error) {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return
}
