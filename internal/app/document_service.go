// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sahilbrid/nyaay-saathi/internal/app/export"
	"github.com/sahilbrid/nyaay-saathi/internal/app/session"
	"github.com/sahilbrid/nyaay-saathi/internal/domain"
	"github.com/sahilbrid/nyaay-saathi/internal/domain/catalog"
	"github.com/sahilbrid/nyaay-saathi/internal/domain/category"
	"github.com/sahilbrid/nyaay-saathi/internal/domain/document"
	"github.com/sahilbrid/nyaay-saathi/internal/domain/form"
	"github.com/sahilbrid/nyaay-saathi/internal/ports"
)

const contentTypeHTML = "text/html; charset=utf-8"

var _ ports.DocumentService = (*DocumentService)(nil)

// DocumentService implements ports.DocumentService. It resolves categories
// through the catalog, keeps per-session state in the session manager, and
// hands rendered pages to the exporter.
type DocumentService struct {
	catalog  *catalog.Catalog
	sessions *session.Manager
	renderer ports.Renderer
	exporter *export.Exporter
	logger   *slog.Logger
}

// NewDocumentService creates a DocumentService. A nil logger discards output.
func NewDocumentService(
	c *catalog.Catalog,
	sessions *session.Manager,
	renderer ports.Renderer,
	exporter *export.Exporter,
	logger *slog.Logger,
) *DocumentService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &DocumentService{
		catalog:  c,
		sessions: sessions,
		renderer: renderer,
		exporter: exporter,
		logger:   logger,
	}
}

// ListCategories returns every category in display order.
func (s *DocumentService) ListCategories(_ context.Context) []category.Category {
	return s.catalog.Categories()
}

// GetCategory returns a category by ID.
func (s *DocumentService) GetCategory(_ context.Context, id string) (category.Category, error) {
	cat, ok := s.catalog.Category(id)
	if !ok {
		return category.Category{}, categoryNotFound(id)
	}
	return cat, nil
}

// StartSession creates a session with empty state.
func (s *DocumentService) StartSession(ctx context.Context) (ports.StateView, error) {
	sess := s.sessions.Start(ctx)
	s.logger.InfoContext(ctx, "session started", slog.String("session_id", sess.ID()))
	return s.view(sess, sess.State(), nil), nil
}

// EndSession evicts the session from memory.
func (s *DocumentService) EndSession(ctx context.Context, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return domain.NewValidationError(map[string]string{"session_id": domain.MsgRequired})
	}
	s.sessions.End(ctx, sessionID)
	return nil
}

// State returns the current state of a session.
func (s *DocumentService) State(ctx context.Context, sessionID string) (ports.StateView, error) {
	sess, err := s.session(ctx, "State", sessionID)
	if err != nil {
		return ports.StateView{}, err
	}
	return s.view(sess, sess.State(), nil), nil
}

// SelectCategory records categoryID as the selected category.
func (s *DocumentService) SelectCategory(ctx context.Context, sessionID, categoryID string) (ports.StateView, error) {
	if _, ok := s.catalog.Category(categoryID); !ok {
		return ports.StateView{}, categoryNotFound(categoryID)
	}

	sess, err := s.session(ctx, "SelectCategory", sessionID)
	if err != nil {
		return ports.StateView{}, err
	}

	st := sess.SetCategory(ctx, categoryID)
	s.logger.InfoContext(ctx, "category selected",
		slog.String("session_id", sessionID),
		slog.String("category", categoryID),
	)
	return s.view(sess, st, nil), nil
}

// UpdateFormData merges values into the session's form data. Problems with
// the merged fields are reported, not rejected.
func (s *DocumentService) UpdateFormData(ctx context.Context, sessionID string, values form.Values) (ports.StateView, error) {
	sess, err := s.session(ctx, "UpdateFormData", sessionID)
	if err != nil {
		return ports.StateView{}, err
	}

	st := sess.SetFormData(ctx, values)
	issues := fieldIssues(s.catalog.Schema(st.Category).ValidatePartial(values))
	return s.view(sess, st, issues), nil
}

// Reset clears the session's state.
func (s *DocumentService) Reset(ctx context.Context, sessionID string) (ports.StateView, error) {
	sess, err := s.session(ctx, "Reset", sessionID)
	if err != nil {
		return ports.StateView{}, err
	}

	st := sess.Reset(ctx)
	s.logger.InfoContext(ctx, "session reset", slog.String("session_id", sessionID))
	return s.view(sess, st, nil), nil
}

// Form returns the form contract of categoryID with values pre-filled from
// the session when it holds data for that category.
func (s *DocumentService) Form(ctx context.Context, sessionID, categoryID string) (ports.FormView, error) {
	sess, err := s.session(ctx, "Form", sessionID)
	if err != nil {
		return ports.FormView{}, err
	}

	entry, found := s.catalog.Lookup(categoryID)
	if !found {
		entry = s.catalog.Base()
	}

	fv := ports.FormView{
		CategoryID:    categoryID,
		Found:         found,
		Layout:        entry.Layout,
		Schema:        entry.Schema,
		InitialValues: sess.State().InitialValues(categoryID, entry.Schema.Defaults()),
	}
	if found {
		cat := entry.Category
		fv.Category = &cat
	}
	return fv, nil
}

// Submit validates values against the full schema and stores them.
func (s *DocumentService) Submit(ctx context.Context, sessionID, categoryID string, values form.Values) (ports.StateView, error) {
	entry, ok := s.catalog.Lookup(categoryID)
	if !ok {
		return ports.StateView{}, categoryNotFound(categoryID)
	}

	sess, err := s.session(ctx, "Submit", sessionID)
	if err != nil {
		return ports.StateView{}, err
	}

	if err := entry.Schema.Validate(values); err != nil {
		s.logger.InfoContext(ctx, "submission rejected",
			slog.String("session_id", sessionID),
			slog.String("category", categoryID),
			slog.Any("error", err),
		)
		return ports.StateView{}, err
	}

	st := sess.Submit(ctx, categoryID, values)
	s.logger.InfoContext(ctx, "form submitted",
		slog.String("session_id", sessionID),
		slog.String("category", categoryID),
	)
	return s.view(sess, st, nil), nil
}

// Preview renders the stored data as a standalone page.
func (s *DocumentService) Preview(ctx context.Context, sessionID, categoryID string) (string, error) {
	entry, st, err := s.document(ctx, "Preview", sessionID, categoryID)
	if err != nil {
		return "", err
	}
	return s.page(entry, st, ports.MediaScreen), nil
}

// Export produces the paginated PDF of the stored data.
func (s *DocumentService) Export(ctx context.Context, sessionID, categoryID string) (ports.Artifact, error) {
	entry, st, err := s.document(ctx, "Export", sessionID, categoryID)
	if err != nil {
		return ports.Artifact{}, err
	}

	artifact, err := s.exporter.Export(ctx, categoryID, entry.Category.Title, s.page(entry, st, ports.MediaScreen))
	if err != nil {
		s.logger.ErrorContext(ctx, "export failed",
			slog.String("operation", "Export"),
			slog.String("session_id", sessionID),
			slog.String("category", categoryID),
			slog.Any("error", err),
		)
		return ports.Artifact{}, err
	}
	return artifact, nil
}

// Print produces the print output for engine.
func (s *DocumentService) Print(ctx context.Context, sessionID, categoryID string, engine ports.PrintEngine) (ports.Artifact, error) {
	if !engine.IsValid() {
		return ports.Artifact{}, domain.NewValidationError(map[string]string{
			"engine": fmt.Sprintf("must be one of %s, %s", ports.PrintEngineHTML, ports.PrintEngineChrome),
		})
	}

	entry, st, err := s.document(ctx, "Print", sessionID, categoryID)
	if err != nil {
		return ports.Artifact{}, err
	}

	page := s.page(entry, st, ports.MediaPrint)
	if engine == ports.PrintEngineHTML {
		return ports.Artifact{
			Filename:    strings.TrimSuffix(export.Filename(entry.Category.Title), ".pdf") + ".html",
			ContentType: contentTypeHTML,
			Data:        []byte(page),
		}, nil
	}

	artifact, err := s.exporter.Print(ctx, categoryID, entry.Category.Title, page)
	if err != nil {
		s.logger.ErrorContext(ctx, "print failed",
			slog.String("operation", "Print"),
			slog.String("session_id", sessionID),
			slog.String("category", categoryID),
			slog.Any("error", err),
		)
		return ports.Artifact{}, err
	}
	return artifact, nil
}

func (s *DocumentService) session(ctx context.Context, op, sessionID string) (*session.Session, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		s.logger.InfoContext(ctx, "session lookup failed",
			slog.String("operation", op),
			slog.Any("error", err),
		)
		return nil, err
	}
	return sess, nil
}

// document resolves what Preview, Export and Print render: a known category
// and a session that has stored form data.
func (s *DocumentService) document(ctx context.Context, op, sessionID, categoryID string) (catalog.Entry, document.State, error) {
	entry, ok := s.catalog.Lookup(categoryID)
	if !ok {
		return catalog.Entry{}, document.State{}, categoryNotFound(categoryID)
	}

	sess, err := s.session(ctx, op, sessionID)
	if err != nil {
		return catalog.Entry{}, document.State{}, err
	}

	st := sess.State()
	if !st.HasFormData() {
		return catalog.Entry{}, document.State{}, fmt.Errorf("session %s: %w", sessionID, domain.ErrIncomplete)
	}
	return entry, st, nil
}

func (s *DocumentService) page(entry catalog.Entry, st document.State, media ports.PageMedia) string {
	markup := s.renderer.Render(entry.Category.ID, st.FormData)
	return s.renderer.Page(entry.Category.Title, markup, media)
}

func (s *DocumentService) view(sess *session.Session, st document.State, issues map[string]string) ports.StateView {
	return ports.StateView{
		SessionID: sess.ID(),
		State:     st,
		Complete:  s.complete(st),
		Persisted: sess.Persisted(),
		Issues:    issues,
	}
}

func (s *DocumentService) complete(st document.State) bool {
	entry, ok := s.catalog.Lookup(st.Category)
	if !ok || !st.HasFormData() {
		return false
	}
	return entry.Schema.Validate(st.FormData) == nil
}

func categoryNotFound(id string) error {
	return fmt.Errorf("category %q: %w", id, domain.ErrNotFound)
}

// fieldIssues unpacks a *domain.ValidationError into its field map.
func fieldIssues(err error) map[string]string {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return nil
	}
	return verr.Fields
}
