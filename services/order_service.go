package services

import (
	"errors"
	"fmt"

	"github.com/Narug1fps/cardapio-sub000/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrValidation wraps rejected input; controllers map it to 400.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound maps to 404.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidTransition marks a status change the state machine forbids.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// OrderLine is one dish line of a cart submission. DishName and UnitPrice
// are the values captured client-side at submission time.
type OrderLine struct {
	DishID    uuid.UUID `json:"dishId"`
	DishName  string    `json:"dishName"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unitPrice"`
	Note      string    `json:"note"`
}

type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// Create persists one order plus one item per line. The order total is
// Σ(quantity × unitPrice), fixed here and never recomputed from current
// dish prices.
func (s *OrderService) Create(tableNumber int, customerName, notes string, lines []OrderLine) (*models.Order, error) {
	if tableNumber <= 0 {
		return nil, fmt.Errorf("%w: table number is required", ErrValidation)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: order has no items", ErrValidation)
	}

	var total float64
	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		if line.DishName == "" {
			return nil, fmt.Errorf("%w: item is missing a dish name", ErrValidation)
		}
		if line.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be at least 1 for %q", ErrValidation, line.DishName)
		}
		if line.UnitPrice <= 0 {
			return nil, fmt.Errorf("%w: unit price must be positive for %q", ErrValidation, line.DishName)
		}

		lineTotal := float64(line.Quantity) * line.UnitPrice
		total += lineTotal

		items = append(items, models.OrderItem{
			DishID:     line.DishID,
			DishName:   line.DishName,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
			TotalPrice: lineTotal,
			Note:       line.Note,
		})
	}

	order := models.Order{
		TableNumber:  tableNumber,
		Status:       models.OrderPending,
		Total:        total,
		CustomerName: customerName,
		Notes:        notes,
		Items:        items,
	}

	if err := s.db.Create(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// List returns orders with nested items, newest first. An empty status
// returns everything.
func (s *OrderService) List(status models.OrderStatus) ([]models.Order, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	query := s.db.Preload("Items").Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListByTable returns a table's orders with nested items, newest first.
func (s *OrderService) ListByTable(tableNumber int) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Items").
		Where("table_number = ?", tableNumber).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// Get returns one order with its items.
func (s *OrderService) Get(id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// UpdateStatus applies a status change after validating it against the
// order state machine. Settlement is only reachable through table
// finalization, so "settled" is rejected here.
func (s *OrderService) UpdateStatus(id uuid.UUID, next models.OrderStatus) (*models.Order, error) {
	if !next.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, next)
	}
	if next == models.OrderSettled {
		return nil, fmt.Errorf("%w: orders are settled by finalizing their table", ErrInvalidTransition)
	}

	var order models.Order
	if err := s.db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, next)
	}

	order.Status = next
	if err := s.db.Save(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}
