// Package pdf assembles page images into a multi-page A4 PDF.
package pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"

	"github.com/go-pdf/fpdf"

	"github.com/sahilbrid/nyaay-saathi/internal/ports"
)

// ErrNoPages is returned when Assemble is called without images.
var ErrNoPages = errors.New("no pages to assemble")

// Assembler implements ports.PageAssembler with fpdf. Each image is placed at
// the top-left of its own portrait A4 page, scaled to the full page width
// with its aspect ratio kept.
type Assembler struct{}

var _ ports.PageAssembler = Assembler{}

// NewAssembler returns an Assembler.
func NewAssembler() Assembler {
	return Assembler{}
}

// Assemble encodes pages in order and returns the PDF bytes.
func (Assembler) Assemble(ctx context.Context, pages []image.Image) ([]byte, error) {
	if len(pages) == 0 {
		return nil, ErrNoPages
	}

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	pageWidth, _ := doc.GetPageSize()

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	var buf bytes.Buffer

	for i, img := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		b := img.Bounds()
		if b.Dx() == 0 || b.Dy() == 0 {
			return nil, fmt.Errorf("page %d: empty image", i+1)
		}

		buf.Reset()
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("page %d: encoding png: %w", i+1, err)
		}

		name := fmt.Sprintf("page-%d", i+1)
		doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(buf.Bytes()))

		doc.AddPage()
		height := pageWidth * float64(b.Dy()) / float64(b.Dx())
		doc.ImageOptions(name, 0, 0, pageWidth, height, false, opts, 0, "")

		if err := doc.Error(); err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}
	}

	var out bytes.Buffer
	if err := doc.Output(&out); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}
	return out.Bytes(), nil
}
