package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Narug1fps/cardapio-sub000/config"
	"github.com/Narug1fps/cardapio-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupCategoryRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Category{}))
	config.DB = db

	r := gin.New()
	r.POST("/api/categories", CreateCategory)
	r.GET("/api/categories", GetCategories)
	return r
}

func doCategoryRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createCategory(t *testing.T, r *gin.Engine, body gin.H) models.Category {
	t.Helper()

	w := doCategoryRequest(t, r, http.MethodPost, "/api/categories", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var category models.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &category))
	return category
}

func TestCreateCategoryDefaultsDisplayOrderToEnd(t *testing.T) {
	r := setupCategoryRouter(t)

	first := createCategory(t, r, gin.H{"name": "Entradas"})
	assert.Equal(t, 0, first.DisplayOrder)

	second := createCategory(t, r, gin.H{"name": "Pratos Principais"})
	assert.Equal(t, 1, second.DisplayOrder)

	// An explicit order is kept as given, and later defaults continue
	// from the new maximum.
	pinned := createCategory(t, r, gin.H{"name": "Sobremesas", "displayOrder": 10})
	assert.Equal(t, 10, pinned.DisplayOrder)

	last := createCategory(t, r, gin.H{"name": "Bebidas"})
	assert.Equal(t, 11, last.DisplayOrder)
}

func TestCreateCategoryRequiresName(t *testing.T) {
	r := setupCategoryRouter(t)

	w := doCategoryRequest(t, r, http.MethodPost, "/api/categories", gin.H{"description": "sem nome"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCategoriesSortedByDisplayOrder(t *testing.T) {
	r := setupCategoryRouter(t)

	createCategory(t, r, gin.H{"name": "Sobremesas", "displayOrder": 2})
	createCategory(t, r, gin.H{"name": "Entradas", "displayOrder": 0})
	createCategory(t, r, gin.H{"name": "Pratos Principais", "displayOrder": 1})

	w := doCategoryRequest(t, r, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var categories []models.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	require.Len(t, categories, 3)
	assert.Equal(t, "Entradas", categories[0].Name)
	assert.Equal(t, "Pratos Principais", categories[1].Name)
	assert.Equal(t, "Sobremesas", categories[2].Name)
}
