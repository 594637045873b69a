package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/sahilbrid/nyaay-saathi/internal/domain"
	"github.com/sahilbrid/nyaay-saathi/internal/platform/telemetry"
	"github.com/sahilbrid/nyaay-saathi/internal/ports"
)

const (
	contentTypePDF = "application/pdf"

	engineRaster = "raster"
	engineChrome = "chrome"
)

// Options fixes the layout width and resolution of rasterization.
type Options struct {
	PageWidthPx int
	ScaleFactor float64
}

// Exporter runs the export pipeline. It is stateless between calls.
type Exporter struct {
	rasterizer ports.Rasterizer
	assembler  ports.PageAssembler
	printer    ports.Printer
	opts       Options
	logger     *slog.Logger
	metrics    *telemetry.Metrics
}

// New creates an Exporter. metrics may be nil.
func New(
	rasterizer ports.Rasterizer,
	assembler ports.PageAssembler,
	printer ports.Printer,
	opts Options,
	logger *slog.Logger,
	metrics *telemetry.Metrics,
) *Exporter {
	return &Exporter{
		rasterizer: rasterizer,
		assembler:  assembler,
		printer:    printer,
		opts:       opts,
		logger:     logger,
		metrics:    metrics,
	}
}

// Export rasterizes page, slices it into A4 bands and assembles a PDF named
// after title. Any failure wraps domain.ErrExport and nothing is returned.
func (e *Exporter) Export(ctx context.Context, categoryID, title, page string) (ports.Artifact, error) {
	ctx, span := e.startSpan(ctx, "export.Paginated", categoryID, engineRaster)
	defer span.End()
	start := time.Now()

	artifact, err := e.paginated(ctx, title, page)
	e.finish(ctx, span, categoryID, engineRaster, start, artifact.Pages, err)
	return artifact, err
}

func (e *Exporter) paginated(ctx context.Context, title, page string) (ports.Artifact, error) {
	raster, err := e.rasterizer.Rasterize(ctx, page, e.opts.PageWidthPx, e.opts.ScaleFactor)
	if err != nil {
		return ports.Artifact{}, fmt.Errorf("%w: rasterize: %w", domain.ErrExport, err)
	}

	pages, err := Paginate(raster)
	if err != nil {
		return ports.Artifact{}, fmt.Errorf("%w: paginate: %w", domain.ErrExport, err)
	}

	data, err := e.assembler.Assemble(ctx, pages)
	if err != nil {
		return ports.Artifact{}, fmt.Errorf("%w: assemble: %w", domain.ErrExport, err)
	}

	return ports.Artifact{
		Filename:    Filename(title),
		ContentType: contentTypePDF,
		Data:        data,
		Pages:       len(pages),
	}, nil
}

// Print prints page to PDF with the browser's own page breaking. No
// rasterization or pagination takes place.
func (e *Exporter) Print(ctx context.Context, categoryID, title, page string) (ports.Artifact, error) {
	ctx, span := e.startSpan(ctx, "export.Print", categoryID, engineChrome)
	defer span.End()
	start := time.Now()

	var artifact ports.Artifact
	data, err := e.printer.PrintPDF(ctx, page)
	if err != nil {
		err = fmt.Errorf("%w: print: %w", domain.ErrExport, err)
	} else {
		artifact = ports.Artifact{Filename: Filename(title), ContentType: contentTypePDF, Data: data}
	}

	e.finish(ctx, span, categoryID, engineChrome, start, 0, err)
	return artifact, err
}

func (e *Exporter) startSpan(ctx context.Context, name, categoryID, engine string) (context.Context, trace.Span) {
	return otel.GetTracerProvider().Tracer("export").Start(ctx, name,
		trace.WithAttributes(
			attribute.String(string(telemetry.AttrCategory), categoryID),
			attribute.String(string(telemetry.AttrEngine), engine),
		),
	)
}

func (e *Exporter) finish(
	ctx context.Context,
	span trace.Span,
	categoryID, engine string,
	start time.Time,
	pages int,
	err error,
) {
	result := "success"
	if err != nil {
		result = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, "export failed")
		e.logger.ErrorContext(ctx, "export failed",
			slog.String("operation", "Export"),
			slog.String("category", categoryID),
			slog.String("engine", engine),
			slog.Any("error", err),
		)
	} else {
		e.logger.InfoContext(ctx, "document exported",
			slog.String("category", categoryID),
			slog.String("engine", engine),
			slog.Int("pages", pages),
			slog.Duration("elapsed", time.Since(start)),
		)
	}

	if e.metrics == nil {
		return
	}
	attrs := metric.WithAttributes(
		telemetry.AttrCategory.String(categoryID),
		telemetry.AttrEngine.String(engine),
		telemetry.AttrResult.String(result),
	)
	e.metrics.ExportTotal.Add(ctx, 1, attrs)
	e.metrics.ExportDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	if pages > 0 {
		e.metrics.ExportPages.Record(ctx, int64(pages), attrs)
	}
}
