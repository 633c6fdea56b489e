package models

import "time"

// MenuSettings is a singleton row (ID is always 1) holding the restaurant's
// branding and menu display configuration.
type MenuSettings struct {
	ID uint `gorm:"primaryKey" json:"-"`

	RestaurantName string `gorm:"not null;default:'Restaurant'" json:"restaurantName"`
	LogoURL        string `json:"logoUrl"`
	BannerURL      string `json:"bannerUrl"`

	PrimaryColor    string `gorm:"default:'#b91c1c'" json:"primaryColor"`
	SecondaryColor  string `gorm:"default:'#f59e0b'" json:"secondaryColor"`
	BackgroundColor string `gorm:"default:'#fffbeb'" json:"backgroundColor"`
	TextColor       string `gorm:"default:'#1c1917'" json:"textColor"`
	AccentColor     string `gorm:"default:'#15803d'" json:"accentColor"`
	FontFamily      string `gorm:"default:'Inter'" json:"fontFamily"`

	ShowPrices   bool   `gorm:"default:true" json:"showPrices"`
	ShowImages   bool   `gorm:"default:true" json:"showImages"`
	CurrencyCode string `gorm:"type:varchar(3);default:'BRL'" json:"currencyCode"`

	WelcomeText string `json:"welcomeText"`
	FooterText  string `json:"footerText"`

	CardBackgroundColor string `gorm:"default:'#ffffff'" json:"cardBackgroundColor"`
	CardTextColor       string `gorm:"default:'#1c1917'" json:"cardTextColor"`
	CardBorderRadius    string `gorm:"default:'rounded-xl'" json:"cardBorderRadius"`
	CardSize            string `gorm:"default:'md'" json:"cardSize"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// DefaultMenuSettings returns the row created on first read.
func DefaultMenuSettings() MenuSettings {
	return MenuSettings{
		ID:                  1,
		RestaurantName:      "Restaurant",
		PrimaryColor:        "#b91c1c",
		SecondaryColor:      "#f59e0b",
		BackgroundColor:     "#fffbeb",
		TextColor:           "#1c1917",
		AccentColor:         "#15803d",
		FontFamily:          "Inter",
		ShowPrices:          true,
		ShowImages:          true,
		CurrencyCode:        "BRL",
		CardBackgroundColor: "#ffffff",
		CardTextColor:       "#1c1917",
		CardBorderRadius:    "rounded-xl",
		CardSize:            "md",
	}
}
