package services

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// CartItem is one draft dish line held client-side before submission.
type CartItem struct {
	DishID    uuid.UUID `json:"dishId"`
	DishName  string    `json:"dishName"`
	UnitPrice float64   `json:"unitPrice"`
	Quantity  int       `json:"quantity"`
	Note      string    `json:"note"`
}

// CartState is the persisted shape of a customer session: the selected
// table, the draft items, and the ids of orders the session already placed
// (for "my orders" highlighting).
type CartState struct {
	TableNumber  int         `json:"tableNumber"`
	CustomerName string      `json:"customerName"`
	Items        []CartItem  `json:"items"`
	OrderIDs     []uuid.UUID `json:"orderIds"`
}

// CartStorage is the durable key-value port carts persist through. Keyed by
// session id; Load returns (nil, nil) for an unknown session.
type CartStorage interface {
	Load(ctx context.Context, sessionID string) (*CartState, error)
	Save(ctx context.Context, sessionID string, state *CartState) error
	Delete(ctx context.Context, sessionID string) error
}

// Cart is an explicit state container for one customer session. AttachCart
// performs the single synchronous load of persisted state, so every routing
// decision that follows sees settled state instead of racing an async init.
type Cart struct {
	mu        sync.Mutex
	storage   CartStorage
	sessionID string
	state     CartState
}

func AttachCart(ctx context.Context, storage CartStorage, sessionID string) (*Cart, error) {
	cart := &Cart{storage: storage, sessionID: sessionID}
	persisted, err := storage.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if persisted != nil {
		cart.state = *persisted
	}
	return cart, nil
}

// SelectTable binds the cart to a table. Switching to a different table
// while the cart holds items discards them, so a draft for table A can
// never leak onto table B.
func (c *Cart) SelectTable(ctx context.Context, tableNumber int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.TableNumber != 0 && c.state.TableNumber != tableNumber && len(c.state.Items) > 0 {
		c.state.Items = nil
	}
	c.state.TableNumber = tableNumber
	return c.persist(ctx)
}

// AddItem merges by dish id: adding a dish that is already in the cart
// increments its quantity instead of creating a second line.
func (c *Cart) AddItem(ctx context.Context, dishID uuid.UUID, dishName string, unitPrice float64, quantity int, note string) error {
	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.state.Items {
		if c.state.Items[i].DishID == dishID {
			c.state.Items[i].Quantity += quantity
			if note != "" {
				c.state.Items[i].Note = note
			}
			return c.persist(ctx)
		}
	}

	c.state.Items = append(c.state.Items, CartItem{
		DishID:    dishID,
		DishName:  dishName,
		UnitPrice: unitPrice,
		Quantity:  quantity,
		Note:      note,
	})
	return c.persist(ctx)
}

// UpdateQuantity sets a line's quantity; zero or negative removes the line.
func (c *Cart) UpdateQuantity(ctx context.Context, dishID uuid.UUID, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.state.Items {
		if c.state.Items[i].DishID != dishID {
			continue
		}
		if quantity <= 0 {
			c.state.Items = append(c.state.Items[:i], c.state.Items[i+1:]...)
		} else {
			c.state.Items[i].Quantity = quantity
		}
		return c.persist(ctx)
	}
	return nil
}

// RemoveItem drops a line entirely.
func (c *Cart) RemoveItem(ctx context.Context, dishID uuid.UUID) error {
	return c.UpdateQuantity(ctx, dishID, 0)
}

// Detach forgets the session entirely: the draft, the table selection and
// the placed-order history all go, and the storage key is removed rather
// than rewritten as an empty state.
func (c *Cart) Detach(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = CartState{}
	return c.storage.Delete(ctx, c.sessionID)
}

// Clear empties the draft but keeps the table selection and placed-order
// history.
func (c *Cart) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Items = nil
	return c.persist(ctx)
}

// SetCustomerName records the display name used on submissions.
func (c *Cart) SetCustomerName(ctx context.Context, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.CustomerName = name
	return c.persist(ctx)
}

// RememberOrder appends a placed order's id to the session history.
func (c *Cart) RememberOrder(ctx context.Context, orderID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.OrderIDs = append(c.state.OrderIDs, orderID)
	return c.persist(ctx)
}

// Lines converts the draft into order lines for submission.
func (c *Cart) Lines() []OrderLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	lines := make([]OrderLine, 0, len(c.state.Items))
	for _, item := range c.state.Items {
		lines = append(lines, OrderLine{
			DishID:    item.DishID,
			DishName:  item.DishName,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Note:      item.Note,
		})
	}
	return lines
}

// Total is Σ(unitPrice × quantity) over the draft.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, item := range c.state.Items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total
}

// ItemCount is Σ(quantity) over the draft.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, item := range c.state.Items {
		count += item.Quantity
	}
	return count
}

// State returns a copy of the current session state.
func (c *Cart) State() CartState {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := c.state
	state.Items = append([]CartItem(nil), c.state.Items...)
	state.OrderIDs = append([]uuid.UUID(nil), c.state.OrderIDs...)
	return state
}

func (c *Cart) persist(ctx context.Context) error {
	state := c.state
	return c.storage.Save(ctx, c.sessionID, &state)
}
