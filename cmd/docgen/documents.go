package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sahilbrid/nyaay-saathi/internal/app/export"
	"github.com/sahilbrid/nyaay-saathi/internal/domain"
	"github.com/sahilbrid/nyaay-saathi/internal/domain/form"
	"github.com/sahilbrid/nyaay-saathi/internal/ports"
)

// Output formats of render, fill and batch.
const (
	formatHTML  = "html"
	formatPDF   = "pdf"
	formatPrint = "print"
)

var formats = []string{formatHTML, formatPDF, formatPrint}

// documentFile is the YAML input of render and batch, and the output of fill.
type documentFile struct {
	Category string            `yaml:"category,omitempty"`
	Data     map[string]string `yaml:"data"`
}

func readDocumentFile(path string) (documentFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return documentFile{}, fmt.Errorf("reading %s: %w", path, err)
	}
	var doc documentFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return documentFile{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if doc.Data == nil {
		doc.Data = map[string]string{}
	}
	return doc, nil
}

func writeDocumentFile(path string, doc documentFile) error {
	raw, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return writeFile(path, raw)
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func checkFormat(format string, engine ports.PrintEngine) error {
	if !slices.Contains(formats, format) {
		return fmt.Errorf("unknown format %q (want one of: %s)", format, strings.Join(formats, ", "))
	}
	if format == formatPrint && !engine.IsValid() {
		return fmt.Errorf("unknown print engine %q (want html or chrome)", engine)
	}
	return nil
}

// generate runs one document through its own session: full validation, then
// the output path selected by format. The session is ended afterwards.
func (c *cli) generate(
	ctx context.Context,
	categoryID string,
	values form.Values,
	format string,
	engine ports.PrintEngine,
) (ports.Artifact, error) {
	view, err := c.svc.StartSession(ctx)
	if err != nil {
		return ports.Artifact{}, fmt.Errorf("starting session: %w", err)
	}
	sid := view.SessionID
	defer func() {
		if err := c.svc.EndSession(ctx, sid); err != nil {
			c.logger.WarnContext(ctx, "failed to end session", slog.Any("error", err))
		}
	}()

	if _, err := c.svc.Submit(ctx, sid, categoryID, values); err != nil {
		return ports.Artifact{}, describe(err)
	}

	switch format {
	case formatPDF:
		return c.svc.Export(ctx, sid, categoryID)
	case formatPrint:
		return c.svc.Print(ctx, sid, categoryID, engine)
	default:
		page, err := c.svc.Preview(ctx, sid, categoryID)
		if err != nil {
			return ports.Artifact{}, err
		}
		cat, err := c.svc.GetCategory(ctx, categoryID)
		if err != nil {
			return ports.Artifact{}, err
		}
		return ports.Artifact{
			Filename:    htmlName(cat.Title),
			ContentType: "text/html; charset=utf-8",
			Data:        []byte(page),
		}, nil
	}
}

func htmlName(title string) string {
	return strings.TrimSuffix(export.Filename(title), ".pdf") + ".html"
}

// describe lists field failures one per line so a terminal user can fix the
// input file.
func describe(err error) error {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	names := make([]string, 0, len(verr.Fields))
	for name := range verr.Fields {
		names = append(names, name)
	}
	slices.Sort(names)

	var b strings.Builder
	b.WriteString("form data is invalid:")
	for _, name := range names {
		fmt.Fprintf(&b, "\n  %s: %s", name, verr.Fields[name])
	}
	return fmt.Errorf("%s: %w", b.String(), domain.ErrValidation)
}
