package imageprocessor

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
)

const (
	DefaultQuality = 85
	DefaultMaxSide = 400
)

// Preview - уменьшенная копия изображения и размеры оригинала
type Preview struct {
	Data        []byte
	ContentType string
	Ext         string

	// Размеры исходного изображения
	Width  int
	Height int
}

// Processor делает превью для загруженных изображений (jpeg, png)
type Processor struct {
	quality int // JPEG quality (1-100)
	maxSide int // максимальная сторона превью в пикселях
}

func NewProcessor(quality, maxSide int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}
	if maxSide <= 0 {
		maxSide = DefaultMaxSide
	}
	return &Processor{
		quality: quality,
		maxSide: maxSide,
	}
}

// Supports - для каких типов делается превью
func Supports(contentType string) bool {
	return contentType == "image/jpeg" || contentType == "image/png"
}

// Preview декодирует изображение и вписывает его в квадрат maxSide x maxSide.
// Маленькие изображения не увеличиваются. Формат сохраняется.
func (p *Processor) Preview(data []byte) (*Preview, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	resized := p.resize(img, p.maxSide, p.maxSide)

	var buf bytes.Buffer
	preview := &Preview{Width: bounds.Dx(), Height: bounds.Dy()}
	switch format {
	case "jpeg":
		if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: p.quality}); err != nil {
			return nil, fmt.Errorf("failed to encode JPEG: %w", err)
		}
		preview.ContentType, preview.Ext = "image/jpeg", ".jpg"
	case "png":
		if err := png.Encode(&buf, resized); err != nil {
			return nil, fmt.Errorf("failed to encode PNG: %w", err)
		}
		preview.ContentType, preview.Ext = "image/png", ".png"
	default:
		return nil, fmt.Errorf("unsupported image format: %s", format)
	}

	preview.Data = buf.Bytes()
	return preview, nil
}

// resize вписывает изображение в maxWidth x maxHeight с сохранением пропорций
func (p *Processor) resize(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width <= maxWidth && height <= maxHeight {
		return img
	}

	ratio := float64(width) / float64(height)
	newWidth := maxWidth
	newHeight := maxHeight

	if float64(maxWidth)/float64(maxHeight) > ratio {
		newWidth = int(float64(maxHeight) * ratio)
	} else {
		newHeight = int(float64(maxWidth) / ratio)
	}
	newWidth = max(newWidth, 1)
	newHeight = max(newHeight, 1)

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	return dst
}
