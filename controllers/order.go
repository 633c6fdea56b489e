// controllers/order.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/Narug1fps/cardapio-sub000/config"
	"github.com/Narug1fps/cardapio-sub000/models"
	"github.com/Narug1fps/cardapio-sub000/services"
	"github.com/Narug1fps/cardapio-sub000/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrderItemInput is one dish line of an order submission
type OrderItemInput struct {
	DishID    uuid.UUID `json:"dishId" binding:"required"`
	DishName  string    `json:"dishName" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
	UnitPrice float64   `json:"unitPrice" binding:"required,gt=0"`
	Note      string    `json:"note"`
}

// CreateOrderInput defines the expected JSON structure for creating an order
type CreateOrderInput struct {
	TableNumber  int              `json:"tableNumber" binding:"required,gt=0"`
	CustomerName string           `json:"customerName"`
	Notes        string           `json:"notes"`
	Items        []OrderItemInput `json:"items" binding:"required,min=1"`
}

// UpdateOrderStatusInput is the PATCH body {id, status}
type UpdateOrderStatusInput struct {
	ID     uuid.UUID          `json:"id" binding:"required"`
	Status models.OrderStatus `json:"status" binding:"required"`
}

// CreateOrder persists a cart submission as an order with captured prices
func CreateOrder(c *gin.Context) {
	var input CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	lines := make([]services.OrderLine, 0, len(input.Items))
	for _, item := range input.Items {
		lines = append(lines, services.OrderLine{
			DishID:    item.DishID,
			DishName:  item.DishName,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Note:      item.Note,
		})
	}

	order, err := services.NewOrderService(config.DB).
		Create(input.TableNumber, input.CustomerName, input.Notes, lines)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GetOrders lists orders newest first; ?status= filters by status and
// ?tableNumber= scopes to one table
func GetOrders(c *gin.Context) {
	orderService := services.NewOrderService(config.DB)

	if tableNumber := c.Query("tableNumber"); tableNumber != "" {
		number, err := strconv.Atoi(tableNumber)
		if err != nil || number <= 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid table number")
			return
		}
		orders, err := orderService.ListByTable(number)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
		return
	}

	orders, err := orderService.List(models.OrderStatus(c.Query("status")))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus applies a guarded status transition
func UpdateOrderStatus(c *gin.Context) {
	var input UpdateOrderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	order, err := services.NewOrderService(config.DB).UpdateStatus(input.ID, input.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}
