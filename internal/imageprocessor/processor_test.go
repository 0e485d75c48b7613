package imageprocessor

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	return img
}

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, testImage(width, height)))
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, testImage(width, height), nil))
	return buf.Bytes()
}

func TestPreview_ResizesLargePNG(t *testing.T) {
	p := NewProcessor(0, 100)

	preview, err := p.Preview(encodePNG(t, 400, 200))
	require.NoError(t, err)
	assert.Equal(t, "image/png", preview.ContentType)
	assert.Equal(t, ".png", preview.Ext)
	assert.Equal(t, 400, preview.Width)
	assert.Equal(t, 200, preview.Height)

	decoded, err := png.Decode(bytes.NewReader(preview.Data))
	require.NoError(t, err)
	assert.Equal(t, 100, decoded.Bounds().Dx())
	assert.Equal(t, 50, decoded.Bounds().Dy())
}

func TestPreview_KeepsSmallJPEG(t *testing.T) {
	p := NewProcessor(90, 400)

	preview, err := p.Preview(encodeJPEG(t, 120, 300))
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", preview.ContentType)
	assert.Equal(t, ".jpg", preview.Ext)

	decoded, err := jpeg.Decode(bytes.NewReader(preview.Data))
	require.NoError(t, err)
	assert.Equal(t, 120, decoded.Bounds().Dx())
	assert.Equal(t, 300, decoded.Bounds().Dy())
}

func TestPreview_TallImage(t *testing.T) {
	p := NewProcessor(DefaultQuality, 50)

	preview, err := p.Preview(encodeJPEG(t, 100, 400))
	require.NoError(t, err)

	decoded, err := jpeg.Decode(bytes.NewReader(preview.Data))
	require.NoError(t, err)
	assert.Equal(t, 12, decoded.Bounds().Dx())
	assert.Equal(t, 50, decoded.Bounds().Dy())
}

func TestPreview_InvalidData(t *testing.T) {
	_, err := NewProcessor(0, 0).Preview([]byte("definitely not an image"))
	assert.Error(t, err)
}

func TestSupports(t *testing.T) {
	assert.True(t, Supports("image/jpeg"))
	assert.True(t, Supports("image/png"))
	assert.False(t, Supports("image/svg+xml"))
	assert.False(t, Supports("application/pdf"))
}
