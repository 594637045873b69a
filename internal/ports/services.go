package ports

import (
	"context"

	"github.com/sahilbrid/nyaay-saathi/internal/domain/category"
	"github.com/sahilbrid/nyaay-saathi/internal/domain/document"
	"github.com/sahilbrid/nyaay-saathi/internal/domain/form"
)

// PrintEngine selects how the print path produces its output.
type PrintEngine string

const (
	// PrintEngineHTML returns a standalone printable page; the client's own
	// print dialog does the page breaking.
	PrintEngineHTML PrintEngine = "html"
	// PrintEngineChrome prints the page to PDF in the headless browser using
	// CSS page breaking. No rasterization takes place.
	PrintEngineChrome PrintEngine = "chrome"
)

// IsValid returns true if the engine is one of the defined constants.
func (e PrintEngine) IsValid() bool {
	return e == PrintEngineHTML || e == PrintEngineChrome
}

// DocumentService defines the service port for the document synthesis
// pipeline. Implemented by the application layer; called by inbound adapters
// (HTTP handlers, CLI commands). Every session-scoped method takes the session
// ID explicitly; an unknown ID starts a session, restoring its snapshot if
// one was persisted.
type DocumentService interface {
	// ListCategories returns every category in display order.
	ListCategories(ctx context.Context) []category.Category

	// GetCategory returns a category by ID.
	// Returns domain.ErrNotFound if the category does not exist.
	GetCategory(ctx context.Context, id string) (category.Category, error)

	// StartSession creates a session with a new ID and empty state.
	StartSession(ctx context.Context) (StateView, error)

	// EndSession drops the in-memory session. Its snapshot is kept so a
	// later request with the same ID restores the state.
	EndSession(ctx context.Context, sessionID string) error

	// State returns the current document state of a session.
	State(ctx context.Context, sessionID string) (StateView, error)

	// SelectCategory records the selected category. Form data is kept.
	// Returns domain.ErrNotFound if the category does not exist.
	SelectCategory(ctx context.Context, sessionID, categoryID string) (StateView, error)

	// UpdateFormData merges values into the stored form data. Field problems
	// of the merged keys are reported in StateView.Issues; they never block
	// the update.
	UpdateFormData(ctx context.Context, sessionID string, values form.Values) (StateView, error)

	// Reset clears category and form data.
	Reset(ctx context.Context, sessionID string) (StateView, error)

	// Form returns the form contract of a category. An unknown category is
	// not an error: the view reports Found=false and carries the base layout.
	Form(ctx context.Context, sessionID, categoryID string) (FormView, error)

	// Submit validates values against the full schema of the category and,
	// when valid, stores them and selects the category.
	// Returns domain.ErrNotFound for an unknown category and a
	// *domain.ValidationError when any field fails. Stored data is left
	// untouched on failure.
	Submit(ctx context.Context, sessionID, categoryID string, values form.Values) (StateView, error)

	// Preview renders the stored form data with the category's template and
	// returns a standalone HTML page.
	// Returns domain.ErrNotFound for an unknown category and
	// domain.ErrIncomplete when no form data has been stored.
	Preview(ctx context.Context, sessionID, categoryID string) (string, error)

	// Export renders, rasterizes and paginates the document into a PDF.
	// Returns domain.ErrNotFound, domain.ErrIncomplete, or an error wrapping
	// domain.ErrExport when rasterization or assembly fails. Session state is
	// never modified.
	Export(ctx context.Context, sessionID, categoryID string) (Artifact, error)

	// Print produces the print path output selected by engine.
	// Errors are as for Export.
	Print(ctx context.Context, sessionID, categoryID string, engine PrintEngine) (Artifact, error)
}

// StateView is a session's document state as seen by callers.
type StateView struct {
	SessionID string
	State     document.State
	// Complete reports whether the stored data passes full validation for
	// the selected category.
	Complete bool
	// Persisted is false when the last snapshot write failed and the state
	// lives in memory only.
	Persisted bool
	// Issues maps field names to validation messages of the latest edit.
	Issues map[string]string
}

// FormView is the contract a client needs to present a category form.
type FormView struct {
	CategoryID string
	// Category is nil when Found is false.
	Category      *category.Category
	Found         bool
	Layout        form.Layout
	Schema        form.Schema
	InitialValues form.Values
}

// Artifact is one downloadable export result.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
	// Pages is the number of pages for paginated exports, zero otherwise.
	Pages int
}
