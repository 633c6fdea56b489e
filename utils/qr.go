// utils/qr.go
package utils

import (
	"fmt"
	"net/url"
	"os"
)

const qrRenderEndpoint = "https://api.qrserver.com/v1/create-qr-code/"

// MenuURL builds the customer menu URL a table's QR code points at.
// The base comes from MENU_BASE_URL (e.g. https://menu.example.com).
func MenuURL(tableNumber int) string {
	base := os.Getenv("MENU_BASE_URL")
	if base == "" {
		base = "http://localhost:3000"
	}
	return fmt.Sprintf("%s/?table=%d", base, tableNumber)
}

// QRImageURL returns the URL of the rendered QR image for a payload.
// Rendering is delegated to an external endpoint; nothing is generated here.
func QRImageURL(payload string) string {
	q := url.Values{}
	q.Set("size", "300x300")
	q.Set("data", payload)
	return qrRenderEndpoint + "?" + q.Encode()
}
