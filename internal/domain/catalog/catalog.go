// Package catalog binds each registered category to its validation schema,
// its grouped field layout, and the template that renders it. The three are
// derived from one embedded definition per category so that schema and
// layout can never name different fields.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sahilbrid/nyaay-saathi/internal/domain/category"
	"github.com/sahilbrid/nyaay-saathi/internal/domain/form"
)

//go:embed definitions/*.yaml
var definitions embed.FS

const personalFile = "personal.yaml"

type fieldDef struct {
	Name     string `yaml:"name"`
	Label    string `yaml:"label"`
	Kind     string `yaml:"kind"`
	Required bool   `yaml:"required"`
	Min      int    `yaml:"min"`
	Message  string `yaml:"message"`
}

type sectionDef struct {
	Name        string     `yaml:"name"`
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	Fields      []fieldDef `yaml:"fields"`
}

type categoryDef struct {
	ID       string       `yaml:"id"`
	Template string       `yaml:"template"`
	Sections []sectionDef `yaml:"sections"`
}

// Entry is the full form contract of one category.
type Entry struct {
	Category category.Category
	Schema   form.Schema
	Layout   form.Layout
	// Template is the file name of the document template, relative to the
	// renderer's template root.
	Template string
}

// Catalog is an immutable lookup of entries by category ID.
type Catalog struct {
	registry *category.Registry
	base     Entry
	entries  map[string]Entry
}

// Load parses the embedded definitions against the given registry. Every
// registered category must have exactly one definition and every definition
// must name a registered category.
func Load(registry *category.Registry) (*Catalog, error) {
	return loadFS(definitions, "definitions", registry)
}

// MustLoad is Load for package initialisation and tests. It panics on error.
func MustLoad(registry *category.Registry) *Catalog {
	c, err := Load(registry)
	if err != nil {
		panic(err)
	}
	return c
}

func loadFS(fsys fs.FS, dir string, registry *category.Registry) (*Catalog, error) {
	var personal sectionDef
	if err := decodeFile(fsys, path.Join(dir, personalFile), &personal); err != nil {
		return nil, err
	}

	base, err := buildEntry(category.Category{}, "", []sectionDef{personal})
	if err != nil {
		return nil, fmt.Errorf("personal section: %w", err)
	}

	files, err := fs.Glob(fsys, path.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("listing definitions: %w", err)
	}

	c := &Catalog{
		registry: registry,
		base:     base,
		entries:  make(map[string]Entry, len(files)),
	}

	for _, file := range files {
		if path.Base(file) == personalFile {
			continue
		}

		var def categoryDef
		if err := decodeFile(fsys, file, &def); err != nil {
			return nil, err
		}

		cat, ok := registry.Get(def.ID)
		if !ok {
			return nil, fmt.Errorf("%s: unknown category %q", file, def.ID)
		}
		if _, dup := c.entries[def.ID]; dup {
			return nil, fmt.Errorf("%s: duplicate definition for %q", file, def.ID)
		}

		entry, err := buildEntry(cat, def.Template, append([]sectionDef{personal}, def.Sections...))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		c.entries[def.ID] = entry
	}

	var missing []string
	for _, cat := range registry.List() {
		if _, ok := c.entries[cat.ID]; !ok {
			missing = append(missing, cat.ID)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("no definition for categories: %s", strings.Join(missing, ", "))
	}

	return c, nil
}

func decodeFile(fsys fs.FS, name string, out any) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

// buildEntry derives schema and layout from the same section list, so the
// field-name sets are equal by construction.
func buildEntry(cat category.Category, template string, sections []sectionDef) (Entry, error) {
	entry := Entry{Category: cat, Template: template}
	seen := make(map[string]bool)
	var errs []error

	for _, sd := range sections {
		section := form.Section{
			Name:        sd.Name,
			Title:       sd.Title,
			Description: sd.Description,
			Fields:      make([]form.FieldDescriptor, 0, len(sd.Fields)),
		}
		for _, fd := range sd.Fields {
			kind := form.Kind(fd.Kind)
			switch {
			case fd.Name == "":
				errs = append(errs, fmt.Errorf("section %s: field without name", sd.Name))
				continue
			case seen[fd.Name]:
				errs = append(errs, fmt.Errorf("field %s: declared twice", fd.Name))
				continue
			case !kind.IsValid():
				errs = append(errs, fmt.Errorf("field %s: unknown kind %q", fd.Name, fd.Kind))
				continue
			}
			seen[fd.Name] = true

			entry.Schema.Fields = append(entry.Schema.Fields, form.Field{
				Name:      fd.Name,
				Kind:      kind,
				Required:  fd.Required,
				MinLength: fd.Min,
				Message:   fd.Message,
			})
			section.Fields = append(section.Fields, form.FieldDescriptor{
				Name:     fd.Name,
				Label:    fd.Label,
				Input:    kind.Input(),
				Required: fd.Required,
			})
		}
		entry.Layout.Sections = append(entry.Layout.Sections, section)
	}

	return entry, errors.Join(errs...)
}

// Categories returns every registered category in display order.
func (c *Catalog) Categories() []category.Category {
	return c.registry.List()
}

// Category looks up category metadata by ID.
func (c *Catalog) Category(id string) (category.Category, bool) {
	return c.registry.Get(id)
}

// Lookup returns the entry of a known category.
func (c *Catalog) Lookup(id string) (Entry, bool) {
	e, ok := c.entries[id]
	return e, ok
}

// Base returns the entry used for unknown categories: the personal section
// alone, with no category and no template.
func (c *Catalog) Base() Entry {
	return c.base
}

// resolve never fails; unknown IDs resolve to the base entry.
func (c *Catalog) resolve(id string) Entry {
	if e, ok := c.entries[id]; ok {
		return e
	}
	return c.base
}

// Schema returns the validation schema for id, or the base schema.
func (c *Catalog) Schema(id string) form.Schema {
	return c.resolve(id).Schema
}

// FieldLayout returns the grouped layout for id, or the base layout.
func (c *Catalog) FieldLayout(id string) form.Layout {
	return c.resolve(id).Layout
}

// DefaultValues maps every schema field of id to the empty string.
func (c *Catalog) DefaultValues(id string) form.Values {
	return c.resolve(id).Schema.Defaults()
}
