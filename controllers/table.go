// controllers/table.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/Narug1fps/cardapio-sub000/config"
	"github.com/Narug1fps/cardapio-sub000/models"
	"github.com/Narug1fps/cardapio-sub000/services"
	"github.com/Narug1fps/cardapio-sub000/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateTableInput defines the expected JSON structure for creating a table
type CreateTableInput struct {
	Number      int    `json:"number" binding:"required,gt=0"`
	DisplayName string `json:"displayName"`
	Seats       int    `json:"seats" binding:"omitempty,gt=0"`
	Status      string `json:"status" binding:"omitempty,oneof=available occupied reserved"`
}

// UpdateTableInput defines the expected JSON structure for updating a table
type UpdateTableInput struct {
	Number      *int    `json:"number" binding:"omitempty,gt=0"`
	DisplayName *string `json:"displayName"`
	Seats       *int    `json:"seats" binding:"omitempty,gt=0"`
	IsActive    *bool   `json:"isActive"`
	Status      *string `json:"status" binding:"omitempty,oneof=available occupied reserved"`
}

// FinalizeTableInput is the body of POST /api/tables/finalize
type FinalizeTableInput struct {
	TableNumber int `json:"tableNumber" binding:"required,gt=0"`
}

// CreateTable creates a table and derives its QR payload
func CreateTable(c *gin.Context) {
	var input CreateTableInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	seats := input.Seats
	if seats == 0 {
		seats = 4
	}
	status := input.Status
	if status == "" {
		status = models.TableAvailable
	}

	payload := utils.MenuURL(input.Number)
	table := models.Table{
		Number:      input.Number,
		DisplayName: input.DisplayName,
		Seats:       seats,
		IsActive:    true,
		Status:      status,
		QRPayload:   payload,
		QRImageURL:  utils.QRImageURL(payload),
	}

	if err := config.DB.Create(&table).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create table")
		return
	}

	c.JSON(http.StatusCreated, table)
}

// GetTables retrieves all tables ordered by number
func GetTables(c *gin.Context) {
	var tables []models.Table
	if err := config.DB.Order("number ASC").Find(&tables).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve tables")
		return
	}

	c.JSON(http.StatusOK, tables)
}

// GetTable retrieves a table together with its current unpaid balance
func GetTable(c *gin.Context) {
	tableUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid table ID format")
		return
	}

	var table models.Table
	if err := config.DB.First(&table, "id = ?", tableUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Table not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	balance, err := services.NewTableService(config.DB).UnpaidBalance(table.Number)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"table":         table,
		"unpaidBalance": balance,
	})
}

// UpdateTable updates an existing table; changing the number re-derives the
// QR payload
func UpdateTable(c *gin.Context) {
	tableUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid table ID format")
		return
	}

	var input UpdateTableInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var table models.Table
	if err := config.DB.First(&table, "id = ?", tableUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Table not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Number != nil {
		table.Number = *input.Number
		table.QRPayload = utils.MenuURL(table.Number)
		table.QRImageURL = utils.QRImageURL(table.QRPayload)
	}
	if input.DisplayName != nil {
		table.DisplayName = *input.DisplayName
	}
	if input.Seats != nil {
		table.Seats = *input.Seats
	}
	if input.IsActive != nil {
		table.IsActive = *input.IsActive
	}
	if input.Status != nil {
		table.Status = *input.Status
	}

	if err := config.DB.Save(&table).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update table")
		return
	}

	c.JSON(http.StatusOK, table)
}

// DeleteTable deletes a table
func DeleteTable(c *gin.Context) {
	tableUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid table ID format")
		return
	}

	result := config.DB.Where("id = ?", tableUUID).Delete(&models.Table{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete table")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Table not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Table deleted successfully"})
}

// FinalizeTable settles the table's bill: every unpaid order becomes
// settled and the aggregate balance reads zero afterwards
func FinalizeTable(c *gin.Context) {
	var input FinalizeTableInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	tableService := services.NewTableService(config.DB)
	settled, err := tableService.Finalize(input.TableNumber)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	balance, err := tableService.UnpaidBalance(input.TableNumber)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tableNumber":   input.TableNumber,
		"settledOrders": settled,
		"unpaidBalance": balance,
	})
}
