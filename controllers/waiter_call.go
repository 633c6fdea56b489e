// controllers/waiter_call.go
package controllers

import (
	"net/http"

	"github.com/Narug1fps/cardapio-sub000/config"
	"github.com/Narug1fps/cardapio-sub000/models"
	"github.com/Narug1fps/cardapio-sub000/services"
	"github.com/Narug1fps/cardapio-sub000/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateWaiterCallInput defines the expected JSON structure for raising a call
type CreateWaiterCallInput struct {
	TableNumber  int             `json:"tableNumber" binding:"required,gt=0"`
	Type         models.CallType `json:"type" binding:"required"`
	CustomerName string          `json:"customerName"`
	Note         string          `json:"note"`
}

// UpdateWaiterCallInput is the PATCH body {id, status}
type UpdateWaiterCallInput struct {
	ID     uuid.UUID         `json:"id" binding:"required"`
	Status models.CallStatus `json:"status" binding:"required"`
}

// CreateWaiterCall raises a pending service request from a table
func CreateWaiterCall(c *gin.Context) {
	var input CreateWaiterCallInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	call, err := services.NewWaiterCallService(config.DB).
		Create(input.TableNumber, input.Type, input.CustomerName, input.Note)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, call)
}

// GetWaiterCalls lists calls newest first; ?status= filters
func GetWaiterCalls(c *gin.Context) {
	calls, err := services.NewWaiterCallService(config.DB).
		List(models.CallStatus(c.Query("status")))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, calls)
}

// UpdateWaiterCallStatus advances a call and stamps the step's timestamp
func UpdateWaiterCallStatus(c *gin.Context) {
	var input UpdateWaiterCallInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	call, err := services.NewWaiterCallService(config.DB).UpdateStatus(input.ID, input.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, call)
}
