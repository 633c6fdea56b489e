package utils

import (
	"net/url"
	"strings"
	"testing"
)

func TestMenuURL(t *testing.T) {
	t.Setenv("MENU_BASE_URL", "https://menu.example.com")
	if got := MenuURL(7); got != "https://menu.example.com/?table=7" {
		t.Errorf("MenuURL(7) = %q", got)
	}

	t.Setenv("MENU_BASE_URL", "")
	if got := MenuURL(2); got != "http://localhost:3000/?table=2" {
		t.Errorf("MenuURL(2) = %q", got)
	}
}

func TestQRImageURLEncodesPayload(t *testing.T) {
	payload := "https://menu.example.com/?table=7"
	got := QRImageURL(payload)

	if !strings.HasPrefix(got, qrRenderEndpoint+"?") {
		t.Fatalf("QRImageURL() = %q, want %q prefix", got, qrRenderEndpoint)
	}

	parsed, err := url.Parse(got)
	if err != nil {
		t.Fatalf("QRImageURL() is not a valid URL: %v", err)
	}
	if data := parsed.Query().Get("data"); data != payload {
		t.Errorf("data param = %q, want %q", data, payload)
	}
	if size := parsed.Query().Get("size"); size != "300x300" {
		t.Errorf("size param = %q", size)
	}
}
