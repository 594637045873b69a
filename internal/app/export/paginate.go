// Package export turns a rendered document page into a downloadable file.
// The paginated path rasterizes the page once at a fixed width, cuts the
// raster into A4-proportioned bands and assembles one PDF page per band.
// The print path hands the page to the browser's own print engine instead.
package export

import (
	"errors"
	"image"
	"image/draw"
	"math"
	"regexp"
	"strings"
)

// A4 paper in millimetres.
const (
	a4WidthMM  = 210
	a4HeightMM = 297
)

// ErrEmptyRaster is returned when the captured page has no pixels.
var ErrEmptyRaster = errors.New("rasterized page is empty")

// PageHeight returns the height of one A4 page laid out at width pixels.
func PageHeight(width int) int {
	return int(math.Round(float64(width) * a4HeightMM / a4WidthMM))
}

// Band is a horizontal slice of the raster that becomes one page.
type Band struct {
	Offset int
	Height int
}

// Bands splits content of the given total height into page bands. The first
// band starts at zero; another follows for as long as the height not yet
// placed is strictly greater than one page. The last band keeps its natural
// height, so content of exactly k pages yields k bands and content shorter
// than a page yields one.
func Bands(total, page int) []Band {
	if total <= 0 || page <= 0 {
		return nil
	}

	bands := []Band{{Offset: 0, Height: min(total, page)}}
	for remaining, offset := total, page; remaining > page; remaining, offset = remaining-page, offset+page {
		bands = append(bands, Band{Offset: offset, Height: min(page, total-offset)})
	}
	return bands
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// Paginate crops img into page bands. Page height derives from the image
// width, so the bands keep A4 proportions at any scale factor.
func Paginate(img image.Image) ([]image.Image, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrEmptyRaster
	}

	bands := Bands(b.Dy(), PageHeight(b.Dx()))
	pages := make([]image.Image, 0, len(bands))
	for _, band := range bands {
		r := image.Rect(b.Min.X, b.Min.Y+band.Offset, b.Max.X, b.Min.Y+band.Offset+band.Height)
		pages = append(pages, crop(img, r))
	}
	return pages, nil
}

func crop(img image.Image, r image.Rectangle) image.Image {
	if s, ok := img.(subImager); ok {
		return s.SubImage(r)
	}
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(dst, dst.Bounds(), img, r.Min, draw.Src)
	return dst
}

var whitespace = regexp.MustCompile(`\s+`)

// Filename derives the download name from a category title: lower case,
// whitespace runs replaced by a hyphen, ".pdf" suffix.
func Filename(title string) string {
	return whitespace.ReplaceAllString(strings.ToLower(title), "-") + ".pdf"
}
