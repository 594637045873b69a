package main

import (
	"bytes"
	"context"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sahilbrid/nyaay-saathi/internal/adapters/pdf"
	"github.com/sahilbrid/nyaay-saathi/internal/adapters/storage"
	"github.com/sahilbrid/nyaay-saathi/internal/adapters/templates"
	"github.com/sahilbrid/nyaay-saathi/internal/app"
	"github.com/sahilbrid/nyaay-saathi/internal/app/export"
	"github.com/sahilbrid/nyaay-saathi/internal/app/session"
	"github.com/sahilbrid/nyaay-saathi/internal/domain"
	"github.com/sahilbrid/nyaay-saathi/internal/domain/catalog"
	"github.com/sahilbrid/nyaay-saathi/internal/domain/category"
	"github.com/sahilbrid/nyaay-saathi/internal/domain/form"
	"github.com/sahilbrid/nyaay-saathi/mocks"
)

func wageTheftData() map[string]string {
	return map[string]string{
		"fullName":            "Asha Rao",
		"email":               "asha@example.com",
		"phoneNumber":         "5551234567",
		"dateOfBirth":         "1990-05-01",
		"address":             "12 Elm Street",
		"city":                "Springfield",
		"state":               "IL",
		"zipCode":             "62701",
		"employerName":        "Acme Co",
		"employerAddress":     "1 Industrial Way",
		"employmentStartDate": "2024-01-15",
		"unpaidAmount":        "1200",
	}
}

// newTestCLI wires the real pipeline with the browser replaced by rasterizer.
func newTestCLI(t *testing.T, rasterizer *mocks.MockRasterizer) *cli {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	c := catalog.MustLoad(category.Default())
	renderer, err := templates.New(c,
		templates.WithLogger(logger),
		templates.WithClock(func() time.Time { return time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC) }),
	)
	require.NoError(t, err)

	exporter := export.New(rasterizer, pdf.NewAssembler(), mocks.NewMockPrinter(t),
		export.Options{PageWidthPx: 794, ScaleFactor: 1}, logger, nil)

	return &cli{
		svc:    app.NewDocumentService(c, session.NewManager(storage.NewMemory(), logger), renderer, exporter, logger),
		logger: logger,
	}
}

func execute(t *testing.T, c *cli, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(c)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeYAML(t *testing.T, path string, doc documentFile) {
	t.Helper()
	raw, err := yaml.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o600))
}

func TestCategories_ListsAllInOrder(t *testing.T) {
	t.Parallel()

	out, err := execute(t, newTestCLI(t, mocks.NewMockRasterizer(t)), "categories")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	assert.True(t, strings.HasPrefix(lines[1], category.EvictionNotice))
	assert.True(t, strings.HasPrefix(lines[7], category.ImmigrationPetition))
}

func TestLayout(t *testing.T) {
	t.Parallel()

	t.Run("known category", func(t *testing.T) {
		t.Parallel()
		out, err := execute(t, newTestCLI(t, mocks.NewMockRasterizer(t)), "layout", category.WageTheft)
		require.NoError(t, err)

		var doc layoutDoc
		require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
		assert.False(t, doc.NotFound)
		assert.Equal(t, "Wage Theft Complaint", doc.Title)
		require.Len(t, doc.Sections, 3)
		assert.Equal(t, "personalDetails", doc.Sections[0].Name)
		assert.Equal(t, "employerDetails", doc.Sections[1].Name)
	})

	t.Run("unknown category prints the personal section", func(t *testing.T) {
		t.Parallel()
		out, err := execute(t, newTestCLI(t, mocks.NewMockRasterizer(t)), "layout", "tax-appeal")
		require.NoError(t, err)

		var doc layoutDoc
		require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
		assert.True(t, doc.NotFound)
		require.Len(t, doc.Sections, 1)
		assert.Equal(t, "personalDetails", doc.Sections[0].Name)
	})
}

func TestRender_HTML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "claim.yaml")
	writeYAML(t, input, documentFile{Data: wageTheftData()})

	out, err := execute(t, newTestCLI(t, mocks.NewMockRasterizer(t)),
		"render", category.WageTheft, "-f", input, "--out", dir)
	require.NoError(t, err)

	path := filepath.Join(dir, "wage-theft-complaint.html")
	assert.Equal(t, path, strings.TrimSpace(out))

	page, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(page), "Acme Co")
	assert.Contains(t, string(page), "$1200")
	assert.NotContains(t, string(page), "Employment end date")
}

func TestRender_PDF(t *testing.T) {
	t.Parallel()

	rasterizer := mocks.NewMockRasterizer(t)
	rasterizer.EXPECT().Rasterize(mock.Anything, mock.Anything, 794, 1.0).
		Return(image.NewRGBA(image.Rect(0, 0, 794, 500)), nil)

	dir := t.TempDir()
	input := filepath.Join(dir, "claim.yaml")
	writeYAML(t, input, documentFile{Data: wageTheftData()})

	_, err := execute(t, newTestCLI(t, rasterizer),
		"render", category.WageTheft, "-f", input, "--format", "pdf", "--out", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "wage-theft-complaint.pdf"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestRender_InvalidDataListsFields(t *testing.T) {
	t.Parallel()

	data := wageTheftData()
	delete(data, "employerName")
	data["unpaidAmount"] = "a lot"

	dir := t.TempDir()
	input := filepath.Join(dir, "claim.yaml")
	writeYAML(t, input, documentFile{Data: data})

	_, err := execute(t, newTestCLI(t, mocks.NewMockRasterizer(t)),
		"render", category.WageTheft, "-f", input, "--out", dir)
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "employerName: Employer name is required")
	assert.Contains(t, err.Error(), "unpaidAmount:")

	_, statErr := os.Stat(filepath.Join(dir, "wage-theft-complaint.html"))
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestRender_FlagErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "claim.yaml")
	writeYAML(t, input, documentFile{Data: wageTheftData()})

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown format", []string{"--format", "docx"}, "unknown format"},
		{"unknown engine", []string{"--format", "print", "--engine", "laser"}, "unknown print engine"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			args := append([]string{"render", category.WageTheft, "-f", input, "--out", dir}, tt.args...)
			_, err := execute(t, newTestCLI(t, mocks.NewMockRasterizer(t)), args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestBatch_RendersEachFileAndReportsFailures(t *testing.T) {
	t.Parallel()

	in := t.TempDir()
	out := t.TempDir()
	writeYAML(t, filepath.Join(in, "asha.yaml"), documentFile{Category: category.WageTheft, Data: wageTheftData()})
	writeYAML(t, filepath.Join(in, "ravi.yaml"), documentFile{Category: category.WageTheft, Data: wageTheftData()})
	writeYAML(t, filepath.Join(in, "broken.yaml"), documentFile{Data: wageTheftData()})

	stdout, err := execute(t, newTestCLI(t, mocks.NewMockRasterizer(t)), "batch", in, "--out", out, "-w", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.yaml: category is required")

	for _, name := range []string{"asha.html", "ravi.html"} {
		assert.FileExists(t, filepath.Join(out, name))
		assert.Contains(t, stdout, name)
	}
	assert.NoFileExists(t, filepath.Join(out, "broken.html"))
}

func TestBatch_EmptyDirectory(t *testing.T) {
	t.Parallel()

	_, err := execute(t, newTestCLI(t, mocks.NewMockRasterizer(t)), "batch", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no *.yaml files")
}

// scriptedPrompter answers from a map and records the fields it was asked.
type scriptedPrompter struct {
	answers map[string]string
	asked   []string
	checks  map[string]string
}

func (p *scriptedPrompter) Ask(_ context.Context, field form.FieldDescriptor, _ string, check func(string) string) (string, error) {
	p.asked = append(p.asked, field.Name)
	v := p.answers[field.Name]
	if msg := check(v); msg != "" {
		p.checks[field.Name] = msg
	}
	return v, nil
}

func TestFill_WritesAnswersAndRenders(t *testing.T) {
	t.Parallel()

	c := newTestCLI(t, mocks.NewMockRasterizer(t))
	p := &scriptedPrompter{answers: wageTheftData(), checks: map[string]string{}}
	c.prompter = p
	dir := t.TempDir()

	_, err := execute(t, c, "fill", category.WageTheft, "--out", dir, "--render")
	require.NoError(t, err)

	assert.Equal(t, "fullName", p.asked[0])
	assert.Contains(t, p.asked, "violationDetails")
	assert.Empty(t, p.checks)

	doc, err := readDocumentFile(filepath.Join(dir, "wage-theft.yaml"))
	require.NoError(t, err)
	assert.Equal(t, category.WageTheft, doc.Category)
	assert.Equal(t, "Acme Co", doc.Data["employerName"])
	assert.FileExists(t, filepath.Join(dir, "wage-theft-complaint.html"))
}

func TestFill_ChecksEachAnswer(t *testing.T) {
	t.Parallel()

	c := newTestCLI(t, mocks.NewMockRasterizer(t))
	answers := wageTheftData()
	answers["email"] = "not-an-email"
	p := &scriptedPrompter{answers: answers, checks: map[string]string{}}
	c.prompter = p

	_, err := execute(t, c, "fill", category.WageTheft, "--out", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "Please enter a valid email address", p.checks["email"])
}

func TestFill_UnknownCategory(t *testing.T) {
	t.Parallel()

	_, err := execute(t, newTestCLI(t, mocks.NewMockRasterizer(t)), "fill", "tax-appeal", "--out", t.TempDir())
	require.ErrorIs(t, err, domain.ErrNotFound)
}
