// Package barcodes generates and renders EAN-13 product barcodes.
package barcodes

import (
	"fmt"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/ean"
)

const (
	imageWidth  = 300
	imageHeight = 120
)

// Checksum computes the EAN-13 check digit for a 12-digit payload.
func Checksum(digits string) (int, error) {
	if len(digits) != 12 {
		return 0, fmt.Errorf("expected 12 digits, got %d", len(digits))
	}
	sum := 0
	for i, r := range digits {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("invalid digit %q at position %d", r, i)
		}
		d := int(r - '0')
		if i%2 == 1 {
			d *= 3
		}
		sum += d
	}
	return (10 - sum%10) % 10, nil
}

// Complete appends the check digit to a 12-digit payload.
func Complete(digits string) (string, error) {
	check, err := Checksum(digits)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%d", digits, check), nil
}

// Validate reports whether code is a well-formed 13-digit EAN-13
// number with a correct check digit.
func Validate(code string) error {
	if len(code) != 13 {
		return fmt.Errorf("expected 13 digits, got %d", len(code))
	}
	check, err := Checksum(code[:12])
	if err != nil {
		return err
	}
	if int(code[12]-'0') != check {
		return fmt.Errorf("check digit mismatch: want %d", check)
	}
	return nil
}

// Random returns a random valid EAN-13 code.
func Random(rng *rand.Rand) string {
	digits := make([]byte, 12)
	for i := range digits {
		digits[i] = byte('0' + rng.Intn(10))
	}
	code, _ := Complete(string(digits))
	return code
}

// SaveImage renders code as a PNG under dir and returns the file path.
// The file is named after the code itself, matching the static route.
func SaveImage(code, dir string) (string, error) {
	bc, err := ean.Encode(code)
	if err != nil {
		return "", fmt.Errorf("encode barcode %s: %w", code, err)
	}

	scaled, err := barcode.Scale(bc, imageWidth, imageHeight)
	if err != nil {
		return "", fmt.Errorf("scale barcode %s: %w", code, err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create barcode dir: %w", err)
	}

	path := filepath.Join(dir, code+".png")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create barcode file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, scaled); err != nil {
		return "", fmt.Errorf("write barcode image: %w", err)
	}
	return path, nil
}
