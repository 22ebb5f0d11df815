// Package qr turns text into QR code PNG images.
package qr

import (
	"errors"
	"fmt"
	"image/color"
	"regexp"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// Preset edge lengths for the final PNG, in pixels.
const (
	SizeSmall  = 200
	SizeMedium = 300
	SizeLarge  = 500
)

// Bounds for an explicit pixel size.
const (
	MinPixels = 128
	MaxPixels = 2048
)

var hexColorRE = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Options control the appearance of a generated code. The zero value
// produces a black-on-white image at the medium preset.
type Options struct {
	FillColor string // module color as #RRGGBB; invalid values fall back to black
	BackColor string // background color as #RRGGBB; invalid values fall back to white
	Pixels    int    // exact edge length; 0 means SizeMedium
}

// SizeForPreset maps the size keys "sm", "md" and "lg" to pixel edge
// lengths. Unknown keys get the medium preset.
func SizeForPreset(key string) int {
	switch strings.ToLower(key) {
	case "sm":
		return SizeSmall
	case "lg":
		return SizeLarge
	default:
		return SizeMedium
	}
}

// NormalizeLink trims whitespace and prepends https:// when the input has
// no HTTP scheme. Empty input stays empty.
func NormalizeLink(link string) string {
	link = strings.TrimSpace(link)
	if link == "" {
		return ""
	}
	low := strings.ToLower(link)
	if !strings.HasPrefix(low, "http://") && !strings.HasPrefix(low, "https://") {
		link = "https://" + link
	}
	return link
}

// Encode renders text as a QR code PNG with error-correction level Medium
// and the standard 4-module quiet zone. Returns PNG bytes.
func Encode(text string, opts Options) ([]byte, error) {
	if text == "" {
		return nil, errors.New("empty text")
	}

	size := opts.Pixels
	if size == 0 {
		size = SizeMedium
	}
	if size < MinPixels || size > MaxPixels {
		return nil, fmt.Errorf("invalid size %d: must be between %d and %d", size, MinPixels, MaxPixels)
	}

	q, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("build qr code: %w", err)
	}
	q.ForegroundColor = parseHexColor(opts.FillColor, color.RGBA{A: 255})
	q.BackgroundColor = parseHexColor(opts.BackColor, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	png, err := q.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("render png: %w", err)
	}
	return png, nil
}

func parseHexColor(s string, fallback color.RGBA) color.RGBA {
	if !hexColorRE.MatchString(s) {
		return fallback
	}
	var r, g, b uint8
	fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
