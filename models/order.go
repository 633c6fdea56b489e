package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
	// OrderSettled marks an order closed out by table finalization. It is
	// only ever applied through the finalize operation, never through the
	// status PATCH endpoint.
	OrderSettled OrderStatus = "settled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderPreparing, OrderReady, OrderDelivered, OrderCancelled, OrderSettled:
		return true
	}
	return false
}

// Terminal reports whether no further transition may leave s.
func (s OrderStatus) Terminal() bool {
	switch s {
	case OrderDelivered, OrderCancelled, OrderSettled:
		return true
	}
	return false
}

// CanTransitionTo enforces the order state machine: pending → preparing →
// ready → delivered along the fulfillment path, cancellation from any
// non-terminal state, and settlement (finalize) from any non-terminal state.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.Terminal() || !next.Valid() {
		return false
	}
	switch next {
	case OrderCancelled, OrderSettled:
		return true
	case OrderPreparing:
		return s == OrderPending
	case OrderReady:
		return s == OrderPreparing
	case OrderDelivered:
		return s == OrderReady
	}
	return false
}

// Order is one customer submission of dish lines tied to a table. Total is
// fixed at creation time from the captured item prices and is never
// recomputed from current dish prices.
type Order struct {
	ID           uuid.UUID   `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	TableNumber  int         `gorm:"index;not null" json:"tableNumber"`
	Status       OrderStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Total        float64     `gorm:"type:decimal(10,2);not null" json:"total"`
	CustomerName string      `json:"customerName"`
	Notes        string      `json:"notes"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return
}

// IsUnpaid reports whether the order still counts toward its table's
// aggregate balance. The predicate is evaluated locally over the status
// enum, never inferred from a store filter string.
func (o *Order) IsUnpaid() bool {
	return !o.Status.Terminal()
}

// OrderItem is one dish line. DishName and UnitPrice are captured at order
// time so later renames or price changes do not rewrite history.
type OrderItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrderID    uuid.UUID `gorm:"type:uuid;index;not null" json:"orderId"`
	DishID     uuid.UUID `gorm:"type:uuid;index;not null" json:"dishId"`
	DishName   string    `gorm:"not null" json:"dishName"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	UnitPrice  float64   `gorm:"type:decimal(10,2);not null" json:"unitPrice"`
	TotalPrice float64   `gorm:"type:decimal(10,2);not null" json:"totalPrice"`
	Note       string    `json:"note"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return
}
