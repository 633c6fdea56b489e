// controllers/settings.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/Narug1fps/cardapio-sub000/config"
	"github.com/Narug1fps/cardapio-sub000/models"
	"github.com/Narug1fps/cardapio-sub000/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UpdateSettingsInput defines the expected JSON structure for updating the
// menu settings singleton
type UpdateSettingsInput struct {
	RestaurantName *string `json:"restaurantName"`
	LogoURL        *string `json:"logoUrl"`
	BannerURL      *string `json:"bannerUrl"`

	PrimaryColor    *string `json:"primaryColor"`
	SecondaryColor  *string `json:"secondaryColor"`
	BackgroundColor *string `json:"backgroundColor"`
	TextColor       *string `json:"textColor"`
	AccentColor     *string `json:"accentColor"`
	FontFamily      *string `json:"fontFamily"`

	ShowPrices   *bool   `json:"showPrices"`
	ShowImages   *bool   `json:"showImages"`
	CurrencyCode *string `json:"currencyCode"`

	WelcomeText *string `json:"welcomeText"`
	FooterText  *string `json:"footerText"`

	CardBackgroundColor *string `json:"cardBackgroundColor"`
	CardTextColor       *string `json:"cardTextColor"`
	CardBorderRadius    *string `json:"cardBorderRadius"`
	CardSize            *string `json:"cardSize"`
}

// loadSettings fetches the singleton row, creating the defaults on first read.
func loadSettings() (*models.MenuSettings, error) {
	var settings models.MenuSettings
	err := config.DB.First(&settings, "id = ?", 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.DefaultMenuSettings()
		if createErr := config.DB.Create(&settings).Error; createErr != nil {
			// A concurrent first read may have created the row already.
			if err := config.DB.First(&settings, "id = ?", 1).Error; err != nil {
				return nil, createErr
			}
		}
		return &settings, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// GetSettings returns the menu settings singleton
func GetSettings(c *gin.Context) {
	settings, err := loadSettings()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve settings")
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateSettings partially updates the menu settings singleton
func UpdateSettings(c *gin.Context) {
	var input UpdateSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	for name, color := range map[string]*string{
		"primaryColor":        input.PrimaryColor,
		"secondaryColor":      input.SecondaryColor,
		"backgroundColor":     input.BackgroundColor,
		"textColor":           input.TextColor,
		"accentColor":         input.AccentColor,
		"cardBackgroundColor": input.CardBackgroundColor,
		"cardTextColor":       input.CardTextColor,
	} {
		if color != nil && !utils.ValidateHexColor(*color) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid hex color for "+name)
			return
		}
	}
	if input.CurrencyCode != nil && !utils.ValidateCurrencyCode(*input.CurrencyCode) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid currency code")
		return
	}

	settings, err := loadSettings()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve settings")
		return
	}

	if input.RestaurantName != nil {
		settings.RestaurantName = *input.RestaurantName
	}
	if input.LogoURL != nil {
		settings.LogoURL = *input.LogoURL
	}
	if input.BannerURL != nil {
		settings.BannerURL = *input.BannerURL
	}
	if input.PrimaryColor != nil {
		settings.PrimaryColor = *input.PrimaryColor
	}
	if input.SecondaryColor != nil {
		settings.SecondaryColor = *input.SecondaryColor
	}
	if input.BackgroundColor != nil {
		settings.BackgroundColor = *input.BackgroundColor
	}
	if input.TextColor != nil {
		settings.TextColor = *input.TextColor
	}
	if input.AccentColor != nil {
		settings.AccentColor = *input.AccentColor
	}
	if input.FontFamily != nil {
		settings.FontFamily = *input.FontFamily
	}
	if input.ShowPrices != nil {
		settings.ShowPrices = *input.ShowPrices
	}
	if input.ShowImages != nil {
		settings.ShowImages = *input.ShowImages
	}
	if input.CurrencyCode != nil {
		settings.CurrencyCode = *input.CurrencyCode
	}
	if input.WelcomeText != nil {
		settings.WelcomeText = *input.WelcomeText
	}
	if input.FooterText != nil {
		settings.FooterText = *input.FooterText
	}
	if input.CardBackgroundColor != nil {
		settings.CardBackgroundColor = *input.CardBackgroundColor
	}
	if input.CardTextColor != nil {
		settings.CardTextColor = *input.CardTextColor
	}
	if input.CardBorderRadius != nil {
		settings.CardBorderRadius = *input.CardBorderRadius
	}
	if input.CardSize != nil {
		settings.CardSize = *input.CardSize
	}

	if err := config.DB.Save(settings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update settings")
		return
	}

	c.JSON(http.StatusOK, settings)
}
