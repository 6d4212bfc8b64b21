package barcodes

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	tests := []struct {
		digits string
		want   int
	}{
		{"880123456789", 3},
		{"400638133393", 1},
		{"590123412345", 7},
	}

	for _, tt := range tests {
		got, err := Checksum(tt.digits)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "checksum of %s", tt.digits)
	}
}

func TestChecksum_RejectsBadInput(t *testing.T) {
	_, err := Checksum("12345")
	assert.Error(t, err)

	_, err = Checksum("88012345678X")
	assert.Error(t, err)
}

func TestComplete(t *testing.T) {
	code, err := Complete("880123456789")
	require.NoError(t, err)
	assert.Equal(t, "8801234567893", code)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate("8801234567893"))
	assert.Error(t, Validate("8801234567890"), "wrong check digit")
	assert.Error(t, Validate("880123456789"), "too short")
}

func TestRandom_AlwaysValid(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		code := Random(rng)
		require.Len(t, code, 13)
		assert.NoError(t, Validate(code), "code %s", code)
	}
}

func TestSaveImage(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "barcodes")

	path, err := SaveImage("8801234567893", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "8801234567893.png"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestSaveImage_RejectsInvalidCode(t *testing.T) {
	_, err := SaveImage("not-a-barcode", t.TempDir())
	assert.Error(t, err)
}
