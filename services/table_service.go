package services

import (
	"fmt"

	"github.com/Narug1fps/cardapio-sub000/models"
	"gorm.io/gorm"
)

type TableService struct {
	db *gorm.DB
}

func NewTableService(db *gorm.DB) *TableService {
	return &TableService{db: db}
}

// UnpaidBalance sums the totals of a table's orders that still count as
// unpaid. The predicate is Order.IsUnpaid evaluated here, not a status
// filter pushed to the store, so it cannot drift from the enum.
func (s *TableService) UnpaidBalance(tableNumber int) (float64, error) {
	if tableNumber <= 0 {
		return 0, fmt.Errorf("%w: table number is required", ErrValidation)
	}

	var orders []models.Order
	if err := s.db.Where("table_number = ?", tableNumber).Find(&orders).Error; err != nil {
		return 0, err
	}

	var balance float64
	for _, order := range orders {
		if order.IsUnpaid() {
			balance += order.Total
		}
	}
	return balance, nil
}

// Finalize settles a table's bill: every unpaid order transitions to
// "settled" inside one transaction, so a partial batch can never leave the
// balance half-cleared. Finalizing a table with no unpaid orders is a no-op.
func (s *TableService) Finalize(tableNumber int) (int, error) {
	if tableNumber <= 0 {
		return 0, fmt.Errorf("%w: table number is required", ErrValidation)
	}

	settled := 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var orders []models.Order
		if err := tx.Where("table_number = ?", tableNumber).Find(&orders).Error; err != nil {
			return err
		}

		for _, order := range orders {
			if !order.IsUnpaid() {
				continue
			}
			if err := tx.Model(&models.Order{}).
				Where("id = ?", order.ID).
				Update("status", models.OrderSettled).Error; err != nil {
				return err
			}
			settled++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return settled, nil
}
