package services

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"strings"
	"testing"
)

func pngDataURI(t *testing.T, width, height int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding fixture: %v", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestProcessImageDownscales(t *testing.T) {
	src := pngDataURI(t, 2000, 1000)

	out, err := ProcessImage(src, 500, 80, "image/png")
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if !strings.HasPrefix(out, "data:image/png;base64,") {
		t.Fatalf("expected a png data URI, got %q", out[:40])
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(out, "data:image/png;base64,"))
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	decoded, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("output is not a valid image: %v", err)
	}
	bounds := decoded.Bounds()
	if bounds.Dx() != 500 || bounds.Dy() != 250 {
		t.Fatalf("expected 500x250 output, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestProcessImageKeepsSmallImages(t *testing.T) {
	src := pngDataURI(t, 300, 200)

	out, err := ProcessImage(src, 1200, 80, "image/jpeg")
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	raw, _ := base64.StdEncoding.DecodeString(strings.TrimPrefix(out, "data:image/jpeg;base64,"))
	decoded, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("output is not a valid image: %v", err)
	}
	if decoded.Bounds().Dx() != 300 {
		t.Fatalf("small images must keep their width, got %d", decoded.Bounds().Dx())
	}
}

func TestProcessImageRejectsGarbage(t *testing.T) {
	if _, err := ProcessImage("no soy base64!!", 1200, 80, "image/jpeg"); err == nil {
		t.Fatal("expected an error for invalid base64")
	}
	garbage := base64.StdEncoding.EncodeToString([]byte("definitely not an image"))
	if _, err := ProcessImage(garbage, 1200, 80, "image/jpeg"); err == nil {
		t.Fatal("expected an error for a non-image payload")
	}
}

func TestProcessImageRejectsHEIC(t *testing.T) {
	src := "data:image/heic;base64,AAAA"
	_, err := ProcessImage(src, 1200, 80, "image/jpeg")
	if err == nil || !strings.Contains(err.Error(), "HEIC") {
		t.Fatalf("expected a descriptive HEIC error, got %v", err)
	}
}

func TestProcessImageRejectsUnknownOutputFormat(t *testing.T) {
	src := pngDataURI(t, 10, 10)
	if _, err := ProcessImage(src, 1200, 80, "image/webp"); err == nil {
		t.Fatal("expected an error for unsupported output format")
	}
}
