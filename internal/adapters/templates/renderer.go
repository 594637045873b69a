// Package templates renders category documents from embedded pongo2
// templates and wraps them in standalone HTML pages.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"

	"github.com/sahilbrid/nyaay-saathi/internal/domain/catalog"
	"github.com/sahilbrid/nyaay-saathi/internal/domain/form"
	"github.com/sahilbrid/nyaay-saathi/internal/ports"
)

//go:embed files
var files embed.FS

const (
	documentDir  = "documents"
	pageTemplate = "page.html"

	// FallbackMarkup is rendered for categories without a template.
	FallbackMarkup = "<p>No template available for this category.</p>"

	defaultPageWidth = 794
)

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

func sanitizer() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.UGCPolicy()
		p.AllowAttrs("class").Matching(regexp.MustCompile(`^[a-z][a-z -]*$`)).Globally()
		policy = p
	})
	return policy
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithClock sets the time source for the document date.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) { r.now = now }
}

// WithLogger sets the logger used for template execution failures.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) { r.logger = logger }
}

// WithPageWidth sets the width in CSS pixels of the screen page container.
func WithPageWidth(px int) Option {
	return func(r *Renderer) { r.pageWidth = px }
}

// Renderer implements ports.Renderer.
type Renderer struct {
	catalog   *catalog.Catalog
	set       *pongo2.TemplateSet
	documents map[string]*pongo2.Template
	page      *pongo2.Template
	now       func() time.Time
	logger    *slog.Logger
	pageWidth int
}

var _ ports.Renderer = (*Renderer)(nil)

// New compiles the page template and the document template of every category
// in the catalog. A category whose template file is missing fails here rather
// than on first render.
func New(c *catalog.Catalog, opts ...Option) (*Renderer, error) {
	ensureFilters()

	root, err := fs.Sub(files, "files")
	if err != nil {
		return nil, fmt.Errorf("template root: %w", err)
	}

	r := &Renderer{
		catalog:   c,
		set:       pongo2.NewSet("documents", pongo2.NewFSLoader(root)),
		documents: make(map[string]*pongo2.Template),
		now:       time.Now,
		logger:    slog.Default(),
		pageWidth: defaultPageWidth,
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.page, err = r.set.FromFile(pageTemplate); err != nil {
		return nil, fmt.Errorf("compiling %s: %w", pageTemplate, err)
	}

	for _, cat := range c.Categories() {
		entry, ok := c.Lookup(cat.ID)
		if !ok || entry.Template == "" {
			continue
		}
		name := path.Join(documentDir, entry.Template)
		tpl, err := r.set.FromFile(name)
		if err != nil {
			return nil, fmt.Errorf("compiling %s: %w", name, err)
		}
		r.documents[cat.ID] = tpl
	}

	return r, nil
}

// Render returns the sanitized document body for categoryID. Unknown
// categories and execution failures yield FallbackMarkup.
func (r *Renderer) Render(categoryID string, values form.Values) string {
	tpl, ok := r.documents[categoryID]
	if !ok {
		return FallbackMarkup
	}

	// Blank values count as unset so optional sections stay hidden.
	data := make(form.Values, len(values))
	for name, v := range values {
		data[name] = strings.TrimSpace(v)
	}

	out, err := tpl.Execute(pongo2.Context{
		"data":  data,
		"today": r.now().Format(LongDate),
	})
	if err != nil {
		r.logger.Error("document template failed",
			slog.String("operation", "Render"),
			slog.String("category", categoryID),
			slog.Any("error", err),
		)
		return FallbackMarkup
	}

	return sanitizer().Sanitize(strings.TrimSpace(out))
}

// Page wraps markup in a standalone HTML document. markup is sanitized again
// so callers may pass untrusted input.
func (r *Renderer) Page(title, markup string, media ports.PageMedia) string {
	body := sanitizer().Sanitize(markup)

	out, err := r.page.Execute(pongo2.Context{
		"title": title,
		"body":  body,
		"media": string(media),
		"width": r.pageWidth,
	})
	if err != nil {
		r.logger.Error("page template failed",
			slog.String("operation", "Page"),
			slog.Any("error", err),
		)
		return "<!DOCTYPE html><html><body>" + body + "</body></html>"
	}
	return out
}
