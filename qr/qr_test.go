package qr

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestEncode(t *testing.T) {
	b, err := Encode("https://example.com", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(b) < 8 || !bytes.HasPrefix(b, pngMagic) {
		t.Fatalf("not png: %v", b[:8])
	}

	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != SizeMedium || bounds.Dy() != SizeMedium {
		t.Fatalf("got %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), SizeMedium, SizeMedium)
	}
}

func TestEncodeDeterministic(t *testing.T) {
	a, err := Encode("https://example.com", Options{Pixels: SizeLarge})
	if err != nil {
		t.Fatal(err)
	}
	b, err := Encode("https://example.com", Options{Pixels: SizeLarge})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Fatal("same input produced different images")
	}
}

func TestEncodeEmpty(t *testing.T) {
	if _, err := Encode("", Options{}); err == nil {
		t.Fatal("expected error for empty text")
	}
}

func TestEncodeSizeBounds(t *testing.T) {
	for _, size := range []int{64, 4096, -1} {
		if _, err := Encode("hello", Options{Pixels: size}); err == nil {
			t.Fatalf("expected error for size %d", size)
		}
	}
}

func TestEncodeColors(t *testing.T) {
	b, err := Encode("hello", Options{FillColor: "#ff0000", BackColor: "#00ff00"})
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		t.Fatal(err)
	}

	// The corner sits inside the quiet zone, so it must be the background.
	wantBack := color.RGBA{G: 255, A: 255}
	r, g, bl, a := img.At(0, 0).RGBA()
	got := color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(bl >> 8), uint8(a >> 8)}
	if got != wantBack {
		t.Fatalf("corner pixel = %v, want %v", got, wantBack)
	}

	// Some module must carry the fill color.
	wantFill := color.RGBA{R: 255, A: 255}
	found := false
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y && !found; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			if (color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(bl >> 8), uint8(a >> 8)}) == wantFill {
				found = true
				break
			}
		}
	}
	if !found {
		t.Fatal("fill color not present in image")
	}
}

func TestEncodeInvalidColorFallsBack(t *testing.T) {
	a, err := Encode("hello", Options{FillColor: "red", BackColor: "ffffff"})
	if err != nil {
		t.Fatal(err)
	}
	b, err := Encode("hello", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Fatal("invalid colors should fall back to the defaults")
	}
}

func TestNormalizeLink(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://example.com", "https://example.com"},
		{"http://example.com", "http://example.com"},
		{"HTTPS://example.com", "HTTPS://example.com"},
		{"example.com", "https://example.com"},
		{"  example.com  ", "https://example.com"},
		{"", ""},
		{"   ", ""},
	}
	for _, c := range cases {
		if got := NormalizeLink(c.in); got != c.want {
			t.Errorf("NormalizeLink(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSizeForPreset(t *testing.T) {
	cases := []struct {
		key  string
		want int
	}{
		{"sm", SizeSmall},
		{"md", SizeMedium},
		{"lg", SizeLarge},
		{"LG", SizeLarge},
		{"", SizeMedium},
		{"huge", SizeMedium},
	}
	for _, c := range cases {
		if got := SizeForPreset(c.key); got != c.want {
			t.Errorf("SizeForPreset(%q) = %d, want %d", c.key, got, c.want)
		}
	}
}
