package qr

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	dir := t.TempDir()

	plates := []string{"B1234XYZ", "D 5678 ABC", "F99"}
	for _, plate := range plates {
		t.Run(plate, func(t *testing.T) {
			path, err := Encode(dir, plate)
			require.NoError(t, err)
			assert.Equal(t, ImagePath(dir, plate), path)

			got, err := Decode(path)
			require.NoError(t, err)
			assert.Equal(t, plate, got)
		})
	}
}

func TestEncodeOverwrites(t *testing.T) {
	dir := t.TempDir()

	first, err := Encode(dir, "B1234XYZ")
	require.NoError(t, err)
	firstInfo, err := os.Stat(first)
	require.NoError(t, err)

	second, err := Encode(dir, "B1234XYZ")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	secondInfo, err := os.Stat(second)
	require.NoError(t, err)
	assert.False(t, secondInfo.ModTime().Before(firstInfo.ModTime()))
}

func TestEncodeEmptyPlate(t *testing.T) {
	_, err := Encode(t.TempDir(), "")
	assert.Error(t, err)
}

func TestEncodeCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "qr")
	path, err := Encode(dir, "B1234XYZ")
	require.NoError(t, err)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestDecodeNotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "upload.png")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a png"), 0o644))

	_, err := Decode(path)
	assert.ErrorIs(t, err, ErrNoCode)
}

func TestDecodeMissingFile(t *testing.T) {
	_, err := Decode(filepath.Join(t.TempDir(), "absent.png"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoCode, "missing file is an I/O failure, not a codec failure")
}

func TestImagePath(t *testing.T) {
	assert.Equal(t, filepath.Join("data", "qr", "QR_B1234XYZ.png"),
		ImagePath(filepath.Join("data", "qr"), "B1234XYZ"))
	assert.Equal(t, filepath.Join("data", "qr"), Dir("data"))
}
