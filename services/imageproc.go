package services

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif" // decode-only input support
	"image/jpeg"
	"image/png"
	"strings"

	"golang.org/x/image/draw"
)

// ProcessImage downscales and re-encodes an uploaded image, returning a data
// URI string ready to store. The persistence layer stores the string as-is;
// all validation happens here.
//
// src may be a full data URI or bare base64. maxWidth caps the output width
// (height scales proportionally), quality is the JPEG quality (1-100) and
// format is "image/jpeg" or "image/png".
func ProcessImage(src string, maxWidth int, quality int, format string) (string, error) {
	if maxWidth <= 0 {
		maxWidth = 1200
	}
	if quality <= 0 || quality > 100 {
		quality = 80
	}
	if format == "" {
		format = "image/jpeg"
	}
	if format != "image/jpeg" && format != "image/png" {
		return "", fmt.Errorf("formato de salida no soportado: %s", format)
	}

	payload := src
	if i := strings.Index(src, ","); i != -1 {
		header := src[:i]
		payload = src[i+1:]
		if strings.Contains(header, "image/heic") || strings.Contains(header, "image/heif") {
			return "", fmt.Errorf("el formato HEIC no es soportado, sube una foto en JPG o PNG")
		}
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("la imagen no es base64 válido: %w", err)
	}

	srcImg, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("el archivo no es una imagen válida (se aceptan JPG, PNG y GIF): %w", err)
	}

	bounds := srcImg.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width > maxWidth {
		scaled := image.NewRGBA(image.Rect(0, 0, maxWidth, height*maxWidth/width))
		draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), srcImg, bounds, draw.Over, nil)
		srcImg = scaled
	}

	var out bytes.Buffer
	switch format {
	case "image/png":
		err = png.Encode(&out, srcImg)
	default:
		err = jpeg.Encode(&out, srcImg, &jpeg.Options{Quality: quality})
	}
	if err != nil {
		return "", fmt.Errorf("no se pudo codificar la imagen: %w", err)
	}

	return "data:" + format + ";base64," + base64.StdEncoding.EncodeToString(out.Bytes()), nil
}
