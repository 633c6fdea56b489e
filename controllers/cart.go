// controllers/cart.go
package controllers

import (
	"net/http"

	"github.com/Narug1fps/cardapio-sub000/config"
	"github.com/Narug1fps/cardapio-sub000/services"
	"github.com/Narug1fps/cardapio-sub000/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CartStore backs the per-session cart state. Main wires Redis when
// REDIS_ADDR is set and falls back to in-process storage otherwise.
var CartStore services.CartStorage = services.NewMemoryCartStorage()

// SelectCartTableInput binds the cart to a table
type SelectCartTableInput struct {
	TableNumber int `json:"tableNumber" binding:"required,gt=0"`
}

// AddCartItemInput adds (or merges) one dish line
type AddCartItemInput struct {
	DishID    uuid.UUID `json:"dishId" binding:"required"`
	DishName  string    `json:"dishName" binding:"required"`
	UnitPrice float64   `json:"unitPrice" binding:"required,gt=0"`
	Quantity  int       `json:"quantity" binding:"omitempty,min=1"`
	Note      string    `json:"note"`
}

// UpdateCartItemInput sets a line's quantity; zero removes the line
type UpdateCartItemInput struct {
	DishID   uuid.UUID `json:"dishId" binding:"required"`
	Quantity *int      `json:"quantity" binding:"required"`
}

// CheckoutInput submits the draft as an order
type CheckoutInput struct {
	CustomerName string `json:"customerName"`
	Notes        string `json:"notes"`
}

// attachCart loads the session's persisted cart before any decision is
// made on it. The session id comes from the X-Session-ID header the client
// generates once and keeps in local storage.
func attachCart(c *gin.Context) (*services.Cart, bool) {
	sessionID := c.GetHeader("X-Session-ID")
	if sessionID == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "X-Session-ID header required")
		return nil, false
	}

	cart, err := services.AttachCart(c.Request.Context(), CartStore, sessionID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load cart")
		return nil, false
	}
	return cart, true
}

func cartResponse(cart *services.Cart) gin.H {
	return gin.H{
		"cart":      cart.State(),
		"total":     cart.Total(),
		"itemCount": cart.ItemCount(),
	}
}

// GetCart returns the session's draft with derived totals
func GetCart(c *gin.Context) {
	cart, ok := attachCart(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, cartResponse(cart))
}

// SelectCartTable binds the cart to a table; switching tables with a
// non-empty cart discards the draft
func SelectCartTable(c *gin.Context) {
	cart, ok := attachCart(c)
	if !ok {
		return
	}

	var input SelectCartTableInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := cart.SelectTable(c.Request.Context(), input.TableNumber); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update cart")
		return
	}
	c.JSON(http.StatusOK, cartResponse(cart))
}

// AddCartItem adds a dish line, merging by dish id
func AddCartItem(c *gin.Context) {
	cart, ok := attachCart(c)
	if !ok {
		return
	}

	var input AddCartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}

	err := cart.AddItem(c.Request.Context(), input.DishID, input.DishName, input.UnitPrice, quantity, input.Note)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update cart")
		return
	}
	c.JSON(http.StatusOK, cartResponse(cart))
}

// UpdateCartItem sets a line's quantity; quantity <= 0 removes it
func UpdateCartItem(c *gin.Context) {
	cart, ok := attachCart(c)
	if !ok {
		return
	}

	var input UpdateCartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := cart.UpdateQuantity(c.Request.Context(), input.DishID, *input.Quantity); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update cart")
		return
	}
	c.JSON(http.StatusOK, cartResponse(cart))
}

// RemoveCartItem drops one dish line from the draft
func RemoveCartItem(c *gin.Context) {
	cart, ok := attachCart(c)
	if !ok {
		return
	}

	dishUUID, err := uuid.Parse(c.Param("dishId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid dish ID format")
		return
	}

	if err := cart.RemoveItem(c.Request.Context(), dishUUID); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update cart")
		return
	}
	c.JSON(http.StatusOK, cartResponse(cart))
}

// ResetCartSession forgets the session entirely, dropping the stored key.
// Meant for when the customer leaves the restaurant and the session id
// should no longer resolve to anything.
func ResetCartSession(c *gin.Context) {
	cart, ok := attachCart(c)
	if !ok {
		return
	}

	if err := cart.Detach(c.Request.Context()); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to reset cart")
		return
	}
	c.JSON(http.StatusOK, cartResponse(cart))
}

// ClearCart empties the draft
func ClearCart(c *gin.Context) {
	cart, ok := attachCart(c)
	if !ok {
		return
	}

	if err := cart.Clear(c.Request.Context()); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update cart")
		return
	}
	c.JSON(http.StatusOK, cartResponse(cart))
}

// CheckoutCart submits the draft as an order for the selected table, then
// clears the draft and remembers the order id for "my orders" views
func CheckoutCart(c *gin.Context) {
	cart, ok := attachCart(c)
	if !ok {
		return
	}

	var input CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	ctx := c.Request.Context()
	if input.CustomerName != "" {
		if err := cart.SetCustomerName(ctx, input.CustomerName); err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update cart")
			return
		}
	}

	state := cart.State()
	order, err := services.NewOrderService(config.DB).
		Create(state.TableNumber, state.CustomerName, input.Notes, cart.Lines())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if err := cart.RememberOrder(ctx, order.ID); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update cart")
		return
	}
	if err := cart.Clear(ctx); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update cart")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"order": order,
		"cart":  cart.State(),
	})
}
