package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCart(t *testing.T) (*Cart, *MemoryCartStorage) {
	t.Helper()
	storage := NewMemoryCartStorage()
	cart, err := AttachCart(context.Background(), storage, "session-1")
	require.NoError(t, err)
	return cart, storage
}

func TestCartAddItemMergesByDish(t *testing.T) {
	cart, _ := newTestCart(t)
	ctx := context.Background()
	dishID := uuid.New()

	require.NoError(t, cart.AddItem(ctx, dishID, "Pizza", 30.00, 1, ""))
	require.NoError(t, cart.AddItem(ctx, dishID, "Pizza", 30.00, 2, ""))

	state := cart.State()
	require.Len(t, state.Items, 1)
	assert.Equal(t, 3, state.Items[0].Quantity)
	assert.Equal(t, 3, cart.ItemCount())
	assert.Equal(t, 90.00, cart.Total())
}

func TestCartUpdateQuantityToZeroRemovesLine(t *testing.T) {
	cart, _ := newTestCart(t)
	ctx := context.Background()
	pizza := uuid.New()
	soda := uuid.New()

	require.NoError(t, cart.AddItem(ctx, pizza, "Pizza", 30.00, 2, ""))
	require.NoError(t, cart.AddItem(ctx, soda, "Soda", 5.00, 1, ""))

	require.NoError(t, cart.UpdateQuantity(ctx, pizza, 0))

	state := cart.State()
	require.Len(t, state.Items, 1)
	assert.Equal(t, soda, state.Items[0].DishID)
	assert.Equal(t, 1, cart.ItemCount())
	assert.Equal(t, 5.00, cart.Total())
}

func TestCartUpdateQuantitySetsLine(t *testing.T) {
	cart, _ := newTestCart(t)
	ctx := context.Background()
	dishID := uuid.New()

	require.NoError(t, cart.AddItem(ctx, dishID, "Pizza", 30.00, 2, ""))
	require.NoError(t, cart.UpdateQuantity(ctx, dishID, 5))

	assert.Equal(t, 5, cart.ItemCount())
	assert.Equal(t, 150.00, cart.Total())
}

func TestCartSwitchingTablesClearsItems(t *testing.T) {
	cart, _ := newTestCart(t)
	ctx := context.Background()

	require.NoError(t, cart.SelectTable(ctx, 4))
	require.NoError(t, cart.AddItem(ctx, uuid.New(), "Pizza", 30.00, 1, ""))

	require.NoError(t, cart.SelectTable(ctx, 9))

	state := cart.State()
	assert.Equal(t, 9, state.TableNumber)
	assert.Empty(t, state.Items)
}

func TestCartReselectingSameTableKeepsItems(t *testing.T) {
	cart, _ := newTestCart(t)
	ctx := context.Background()

	require.NoError(t, cart.SelectTable(ctx, 4))
	require.NoError(t, cart.AddItem(ctx, uuid.New(), "Pizza", 30.00, 1, ""))

	require.NoError(t, cart.SelectTable(ctx, 4))

	assert.Len(t, cart.State().Items, 1)
}

func TestCartPersistsAcrossAttach(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryCartStorage()

	cart, err := AttachCart(ctx, storage, "session-1")
	require.NoError(t, err)
	require.NoError(t, cart.SelectTable(ctx, 6))
	require.NoError(t, cart.AddItem(ctx, uuid.New(), "Pizza", 30.00, 2, "extra cheese"))
	orderID := uuid.New()
	require.NoError(t, cart.RememberOrder(ctx, orderID))

	// Simulates a page reload: a fresh container attached to the same
	// session sees the persisted draft before any routing decision.
	reloaded, err := AttachCart(ctx, storage, "session-1")
	require.NoError(t, err)
	state := reloaded.State()
	assert.Equal(t, 6, state.TableNumber)
	require.Len(t, state.Items, 1)
	assert.Equal(t, "extra cheese", state.Items[0].Note)
	assert.Equal(t, []uuid.UUID{orderID}, state.OrderIDs)
}

func TestCartDetachDropsStoredSession(t *testing.T) {
	cart, storage := newTestCart(t)
	ctx := context.Background()

	require.NoError(t, cart.SelectTable(ctx, 7))
	require.NoError(t, cart.AddItem(ctx, uuid.New(), "Pizza", 30.00, 1, ""))
	require.NoError(t, cart.RememberOrder(ctx, uuid.New()))

	require.NoError(t, cart.Detach(ctx))

	state := cart.State()
	assert.Zero(t, state.TableNumber)
	assert.Empty(t, state.Items)
	assert.Empty(t, state.OrderIDs)

	persisted, err := storage.Load(ctx, "session-1")
	require.NoError(t, err)
	assert.Nil(t, persisted)
}

func TestCartSessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryCartStorage()

	first, err := AttachCart(ctx, storage, "session-1")
	require.NoError(t, err)
	require.NoError(t, first.AddItem(ctx, uuid.New(), "Pizza", 30.00, 1, ""))

	second, err := AttachCart(ctx, storage, "session-2")
	require.NoError(t, err)
	assert.Zero(t, second.ItemCount())
}

func TestCartLinesMatchDraft(t *testing.T) {
	cart, _ := newTestCart(t)
	ctx := context.Background()
	dishID := uuid.New()

	require.NoError(t, cart.AddItem(ctx, dishID, "Pizza", 30.00, 2, "well done"))

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, OrderLine{
		DishID:    dishID,
		DishName:  "Pizza",
		Quantity:  2,
		UnitPrice: 30.00,
		Note:      "well done",
	}, lines[0])
}
