package ports

import (
	"context"
	"image"

	"github.com/sahilbrid/nyaay-saathi/internal/domain/document"
	"github.com/sahilbrid/nyaay-saathi/internal/domain/form"
)

// SnapshotStore persists document snapshots under a string key.
// Implemented by the storage adapters; called by the session manager.
type SnapshotStore interface {
	// Load returns the snapshot stored under key.
	// Returns domain.ErrNotFound if nothing is stored.
	Load(ctx context.Context, key string) (document.Snapshot, error)

	// Save stores snap under key, replacing any previous value.
	Save(ctx context.Context, key string, snap document.Snapshot) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// PageMedia selects the stylesheet variant of a rendered page.
type PageMedia string

const (
	// MediaScreen lays the document out in the fixed-width export container.
	MediaScreen PageMedia = "screen"
	// MediaPrint adds print rules so the browser's page breaking applies.
	MediaPrint PageMedia = "print"
)

// Renderer maps form data to document markup.
type Renderer interface {
	// Render returns the document body for a category. It never fails: an
	// unknown category yields a fallback paragraph.
	Render(categoryID string, values form.Values) string

	// Page wraps rendered markup in a standalone HTML page with the document
	// stylesheet.
	Page(title, markup string, media PageMedia) string
}

// Rasterizer lays an HTML page out at a fixed CSS width and captures it as a
// single full-height image.
type Rasterizer interface {
	Rasterize(ctx context.Context, page string, widthPx int, scale float64) (image.Image, error)
}

// Printer prints an HTML page to PDF with the engine's own page breaking.
type Printer interface {
	PrintPDF(ctx context.Context, page string) ([]byte, error)
}

// PageAssembler combines page images into one downloadable document.
type PageAssembler interface {
	Assemble(ctx context.Context, pages []image.Image) ([]byte, error)
}
