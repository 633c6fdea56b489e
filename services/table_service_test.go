package services

import (
	"testing"

	"github.com/Narug1fps/cardapio-sub000/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedOrder(t *testing.T, svc *OrderService, tableNumber int, price float64) *models.Order {
	t.Helper()
	order, err := svc.Create(tableNumber, "", "", []OrderLine{
		{DishID: uuid.New(), DishName: "Prato", Quantity: 1, UnitPrice: price},
	})
	require.NoError(t, err)
	return order
}

func TestTableServiceUnpaidBalance(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderService(db)
	tables := NewTableService(db)

	seedOrder(t, orders, 7, 40.00)
	seedOrder(t, orders, 7, 15.00)
	seedOrder(t, orders, 8, 99.00) // other table, must not leak in

	balance, err := tables.UnpaidBalance(7)
	require.NoError(t, err)
	assert.Equal(t, 55.00, balance)
}

func TestTableServiceBalanceExcludesTerminalOrders(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderService(db)
	tables := NewTableService(db)

	open := seedOrder(t, orders, 3, 20.00)
	delivered := seedOrder(t, orders, 3, 30.00)
	cancelled := seedOrder(t, orders, 3, 40.00)

	for _, next := range []models.OrderStatus{models.OrderPreparing, models.OrderReady, models.OrderDelivered} {
		_, err := orders.UpdateStatus(delivered.ID, next)
		require.NoError(t, err)
	}
	_, err := orders.UpdateStatus(cancelled.ID, models.OrderCancelled)
	require.NoError(t, err)

	balance, err := tables.UnpaidBalance(3)
	require.NoError(t, err)
	assert.Equal(t, open.Total, balance)
}

func TestTableServiceFinalizeZeroesBalance(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderService(db)
	tables := NewTableService(db)

	seedOrder(t, orders, 7, 40.00)
	seedOrder(t, orders, 7, 15.00)

	settled, err := tables.Finalize(7)
	require.NoError(t, err)
	assert.Equal(t, 2, settled)

	balance, err := tables.UnpaidBalance(7)
	require.NoError(t, err)
	assert.Equal(t, 0.00, balance)

	// The orders moved to the settled terminal status, not delivered or
	// cancelled.
	listed, err := orders.ListByTable(7)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	for _, order := range listed {
		assert.Equal(t, models.OrderSettled, order.Status)
	}
}

func TestTableServiceFinalizeIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderService(db)
	tables := NewTableService(db)

	seedOrder(t, orders, 2, 12.00)

	_, err := tables.Finalize(2)
	require.NoError(t, err)

	settled, err := tables.Finalize(2)
	require.NoError(t, err)
	assert.Zero(t, settled)

	balance, err := tables.UnpaidBalance(2)
	require.NoError(t, err)
	assert.Equal(t, 0.00, balance)
}

func TestTableServiceFinalizeEmptyTable(t *testing.T) {
	tables := NewTableService(newTestDB(t))

	settled, err := tables.Finalize(42)
	require.NoError(t, err)
	assert.Zero(t, settled)
}

func TestTableServiceRejectsBadTableNumber(t *testing.T) {
	tables := NewTableService(newTestDB(t))

	_, err := tables.UnpaidBalance(0)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = tables.Finalize(-1)
	assert.ErrorIs(t, err, ErrValidation)
}
