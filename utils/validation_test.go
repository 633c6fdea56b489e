package utils

import "testing"

func TestValidateHexColor(t *testing.T) {
	valid := []string{"#fff", "#FFF", "#b91c1c", "#FFFFFF", " #1c1917 "}
	for _, c := range valid {
		if !ValidateHexColor(c) {
			t.Errorf("ValidateHexColor(%q) = false", c)
		}
	}

	invalid := []string{"", "fff", "#ff", "#ffff", "#gggggg", "red"}
	for _, c := range invalid {
		if ValidateHexColor(c) {
			t.Errorf("ValidateHexColor(%q) = true", c)
		}
	}
}

func TestValidateCurrencyCode(t *testing.T) {
	valid := []string{"BRL", "USD", "EUR"}
	for _, c := range valid {
		if !ValidateCurrencyCode(c) {
			t.Errorf("ValidateCurrencyCode(%q) = false", c)
		}
	}

	invalid := []string{"", "br", "brl", "BRLX", "B1L"}
	for _, c := range invalid {
		if ValidateCurrencyCode(c) {
			t.Errorf("ValidateCurrencyCode(%q) = true", c)
		}
	}
}
