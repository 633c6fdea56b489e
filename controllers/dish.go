// controllers/dish.go
package controllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/Narug1fps/cardapio-sub000/config"
	"github.com/Narug1fps/cardapio-sub000/models"
	"github.com/Narug1fps/cardapio-sub000/storage"
	"github.com/Narug1fps/cardapio-sub000/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ImageStore is the object store dish images upload to. Wired in main when
// S3 is configured; the upload endpoint reports unavailable otherwise.
var ImageStore storage.ObjectStore

// CreateDishInput defines the expected JSON structure for creating a dish
type CreateDishInput struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	Price       float64   `json:"price" binding:"required,gt=0"`
	CategoryID  uuid.UUID `json:"categoryId" binding:"required"`
	ImageURL    string    `json:"imageUrl"`
	IsAvailable *bool     `json:"isAvailable"`
}

// UpdateDishInput defines the expected JSON structure for updating a dish
type UpdateDishInput struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Price       *float64   `json:"price" binding:"omitempty,gt=0"`
	CategoryID  *uuid.UUID `json:"categoryId"`
	ImageURL    *string    `json:"imageUrl"`
	IsAvailable *bool      `json:"isAvailable"`
}

// CreateDish creates a new dish in a category
func CreateDish(c *gin.Context) {
	var input CreateDishInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Validate the category exists
	var category models.Category
	if err := config.DB.First(&category, "id = ?", input.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Category not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	isAvailable := true
	if input.IsAvailable != nil {
		isAvailable = *input.IsAvailable
	}

	dish := models.Dish{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		CategoryID:  input.CategoryID,
		ImageURL:    input.ImageURL,
		IsAvailable: isAvailable,
	}

	if err := config.DB.Create(&dish).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create dish")
		return
	}

	c.JSON(http.StatusCreated, dish)
}

// GetDishes retrieves dishes, optionally filtered by categoryId
func GetDishes(c *gin.Context) {
	query := config.DB.Order("name ASC")

	if categoryID := c.Query("categoryId"); categoryID != "" {
		categoryUUID, err := uuid.Parse(categoryID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid category ID format")
			return
		}
		query = query.Where("category_id = ?", categoryUUID)
	}

	var dishes []models.Dish
	if err := query.Find(&dishes).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve dishes")
		return
	}

	c.JSON(http.StatusOK, dishes)
}

// GetDish retrieves a specific dish by ID
func GetDish(c *gin.Context) {
	dishUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid dish ID format")
		return
	}

	var dish models.Dish
	if err := config.DB.First(&dish, "id = ?", dishUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Dish not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, dish)
}

// UpdateDish updates an existing dish
func UpdateDish(c *gin.Context) {
	dishUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid dish ID format")
		return
	}

	var input UpdateDishInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var dish models.Dish
	if err := config.DB.First(&dish, "id = ?", dishUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Dish not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.CategoryID != nil {
		var category models.Category
		if err := config.DB.First(&category, "id = ?", *input.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Category not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
		dish.CategoryID = *input.CategoryID
	}

	if input.Name != nil {
		dish.Name = *input.Name
	}
	if input.Description != nil {
		dish.Description = *input.Description
	}
	if input.Price != nil {
		dish.Price = *input.Price
	}
	if input.ImageURL != nil {
		dish.ImageURL = *input.ImageURL
	}
	if input.IsAvailable != nil {
		dish.IsAvailable = *input.IsAvailable
	}

	if err := config.DB.Save(&dish).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update dish")
		return
	}

	c.JSON(http.StatusOK, dish)
}

// DeleteDish deletes a dish
func DeleteDish(c *gin.Context) {
	dishUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid dish ID format")
		return
	}

	result := config.DB.Where("id = ?", dishUUID).Delete(&models.Dish{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete dish")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Dish not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Dish deleted successfully"})
}

// UploadDishImage stores a dish photo in the object store and updates the
// dish's image URL.
func UploadDishImage(c *gin.Context) {
	if ImageStore == nil {
		utils.RespondWithError(c, http.StatusServiceUnavailable, "Image storage is not configured")
		return
	}

	dishUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid dish ID format")
		return
	}

	var dish models.Dish
	if err := config.DB.First(&dish, "id = ?", dishUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Dish not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Image file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to read image")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to read image")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := fmt.Sprintf("dishes/%s%s", dish.ID, filepath.Ext(fileHeader.Filename))
	url, err := ImageStore.Put(c.Request.Context(), key, contentType, data)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to upload image")
		return
	}

	dish.ImageURL = url
	if err := config.DB.Save(&dish).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update dish")
		return
	}

	c.JSON(http.StatusOK, dish)
}
