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

func setupSettingsRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.MenuSettings{}))
	config.DB = db

	r := gin.New()
	r.GET("/api/settings", GetSettings)
	r.PUT("/api/settings", UpdateSettings)
	return r
}

func doSettingsRequest(t *testing.T, r *gin.Engine, method string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, "/api/settings", &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetSettingsCreatesDefaultsOnFirstRead(t *testing.T) {
	r := setupSettingsRouter(t)

	w := doSettingsRequest(t, r, http.MethodGet, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var settings models.MenuSettings
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &settings))
	assert.Equal(t, "Restaurant", settings.RestaurantName)
	assert.Equal(t, "BRL", settings.CurrencyCode)
	assert.Equal(t, "#b91c1c", settings.PrimaryColor)
	assert.True(t, settings.ShowPrices)

	// A second read reuses the singleton instead of creating another row.
	w = doSettingsRequest(t, r, http.MethodGet, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, config.DB.Model(&models.MenuSettings{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdateSettingsMergesPartialInput(t *testing.T) {
	r := setupSettingsRouter(t)

	w := doSettingsRequest(t, r, http.MethodPut, gin.H{
		"restaurantName": "Cantina da Nona",
		"primaryColor":   "#112233",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var settings models.MenuSettings
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &settings))
	assert.Equal(t, "Cantina da Nona", settings.RestaurantName)
	assert.Equal(t, "#112233", settings.PrimaryColor)
	// Untouched fields keep their defaults.
	assert.Equal(t, "#f59e0b", settings.SecondaryColor)
	assert.Equal(t, "BRL", settings.CurrencyCode)

	var count int64
	require.NoError(t, config.DB.Model(&models.MenuSettings{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdateSettingsRejectsInvalidHexColor(t *testing.T) {
	r := setupSettingsRouter(t)

	w := doSettingsRequest(t, r, http.MethodPut, gin.H{"primaryColor": "red"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doSettingsRequest(t, r, http.MethodPut, gin.H{"cardTextColor": "#12345"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateSettingsRejectsInvalidCurrencyCode(t *testing.T) {
	r := setupSettingsRouter(t)

	w := doSettingsRequest(t, r, http.MethodPut, gin.H{"currencyCode": "re$"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
