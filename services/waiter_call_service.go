package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Narug1fps/cardapio-sub000/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WaiterCallService struct {
	db *gorm.DB
}

func NewWaiterCallService(db *gorm.DB) *WaiterCallService {
	return &WaiterCallService{db: db}
}

// Create inserts a pending call for the table.
func (s *WaiterCallService) Create(tableNumber int, callType models.CallType, customerName, note string) (*models.WaiterCall, error) {
	if tableNumber <= 0 {
		return nil, fmt.Errorf("%w: table number is required", ErrValidation)
	}
	if !callType.Valid() {
		return nil, fmt.Errorf("%w: unknown call type %q", ErrValidation, callType)
	}

	call := models.WaiterCall{
		TableNumber:  tableNumber,
		Type:         callType,
		Status:       models.CallPending,
		CustomerName: customerName,
		Note:         note,
	}
	if err := s.db.Create(&call).Error; err != nil {
		return nil, err
	}
	return &call, nil
}

// List returns calls newest first; an empty status returns everything.
// Filtering completed calls out of "active" views is the caller's job.
func (s *WaiterCallService) List(status models.CallStatus) ([]models.WaiterCall, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	query := s.db.Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var calls []models.WaiterCall
	if err := query.Find(&calls).Error; err != nil {
		return nil, err
	}
	return calls, nil
}

// UpdateStatus advances a call along pending → acknowledged → completed,
// stamping the matching timestamp on each step.
func (s *WaiterCallService) UpdateStatus(id uuid.UUID, next models.CallStatus) (*models.WaiterCall, error) {
	if !next.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, next)
	}

	var call models.WaiterCall
	if err := s.db.First(&call, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !call.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, call.Status, next)
	}

	now := time.Now()
	call.Status = next
	switch next {
	case models.CallAcknowledged:
		call.AcknowledgedAt = &now
	case models.CallCompleted:
		call.CompletedAt = &now
	}

	if err := s.db.Save(&call).Error; err != nil {
		return nil, err
	}
	return &call, nil
}
