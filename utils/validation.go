// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateHexColor checks a CSS hex color like #fff or #b91c1c.
func ValidateHexColor(color string) bool {
	return hexColorRe.MatchString(strings.TrimSpace(color))
}

// ValidateCurrencyCode checks a three-letter ISO 4217 style code.
func ValidateCurrencyCode(code string) bool {
	code = strings.TrimSpace(code)
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
