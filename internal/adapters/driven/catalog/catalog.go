// Package catalog provides the fallback catalogs and surface definitions.
//
// The built-in catalogs are embedded from defaults.toml. An optional
// override file in TOML or YAML replaces whole surfaces by name and may
// add new ones. Every catalog is validated when loaded; an empty or
// incomplete catalog is a configuration defect and loading fails.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/mdsolution/vitrine/internal/core/domain"
	"github.com/mdsolution/vitrine/internal/core/ports/driven"
)

//go:embed defaults.toml
var defaultsTOML []byte

// Ensure Catalog implements the interface.
var _ driven.CatalogProvider = (*Catalog)(nil)

// Format identifies a catalog file encoding.
type Format string

// Supported formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("catalog: %s: %w", path, domain.ErrUnsupportedType)
	}
}

type catalogFile struct {
	Surfaces []surfaceDef `toml:"surface" yaml:"surface"`
}

type surfaceDef struct {
	Name         string              `toml:"name" yaml:"name"`
	Title        string              `toml:"title" yaml:"title"`
	Category     string              `toml:"category" yaml:"category"`
	Page         string              `toml:"page" yaml:"page"`
	CategoryOnly bool                `toml:"category_only" yaml:"category_only"`
	Single       bool                `toml:"single" yaml:"single"`
	MatchByName  bool                `toml:"match_by_name" yaml:"match_by_name"`
	Entries      []domain.Descriptor `toml:"entry" yaml:"entry"`
}

func (d *surfaceDef) surface() domain.Surface {
	return domain.Surface{
		Name:         d.Name,
		Title:        d.Title,
		Category:     domain.Category(d.Category),
		Page:         d.Page,
		CategoryOnly: d.CategoryOnly,
		Single:       d.Single,
		MatchByName:  d.MatchByName,
	}
}

// Catalog holds validated surfaces and their fallback entries.
// It is immutable and safe for concurrent use.
type Catalog struct {
	surfaces []domain.Surface
	entries  map[string][]domain.Descriptor
}

// Default returns the built-in catalog.
func Default() (*Catalog, error) {
	defs, err := parse(defaultsTOML, FormatTOML)
	if err != nil {
		return nil, fmt.Errorf("catalog: built-in defaults: %w", err)
	}
	return build(defs)
}

// Load returns the built-in catalog with the override file at path
// applied. An empty path loads the built-in catalog only.
func Load(path string) (*Catalog, error) {
	base, err := parse(defaultsTOML, FormatTOML)
	if err != nil {
		return nil, fmt.Errorf("catalog: built-in defaults: %w", err)
	}
	if path == "" {
		return build(base)
	}

	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read override: %w", err)
	}
	override, err := parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", path, err)
	}
	return build(merge(base, override))
}

// Parse decodes and validates a standalone catalog document.
func Parse(data []byte, format Format) (*Catalog, error) {
	defs, err := parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return build(defs)
}

func parse(data []byte, format Format) ([]surfaceDef, error) {
	var f catalogFile
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
		}
	default:
		return nil, fmt.Errorf("format %q: %w", format, domain.ErrUnsupportedType)
	}
	return f.Surfaces, nil
}

// merge replaces base surfaces by name and appends new ones.
func merge(base, override []surfaceDef) []surfaceDef {
	out := make([]surfaceDef, len(base))
	copy(out, base)

	index := make(map[string]int, len(out))
	for i := range out {
		index[out[i].Name] = i
	}
	for _, def := range override {
		if i, ok := index[def.Name]; ok {
			out[i] = def
			continue
		}
		index[def.Name] = len(out)
		out = append(out, def)
	}
	return out
}

func build(defs []surfaceDef) (*Catalog, error) {
	c := &Catalog{
		surfaces: make([]domain.Surface, 0, len(defs)),
		entries:  make(map[string][]domain.Descriptor, len(defs)),
	}
	for i := range defs {
		def := &defs[i]
		if err := validateSurface(def); err != nil {
			return nil, err
		}
		if _, dup := c.entries[def.Name]; dup {
			return nil, fmt.Errorf("catalog: duplicate surface %q: %w", def.Name, domain.ErrInvalidInput)
		}
		c.surfaces = append(c.surfaces, def.surface())
		c.entries[def.Name] = domain.CloneDescriptors(def.Entries)
	}
	return c, nil
}

func validateSurface(def *surfaceDef) error {
	if strings.TrimSpace(def.Name) == "" {
		return fmt.Errorf("catalog: surface without a name: %w", domain.ErrInvalidInput)
	}
	if !domain.Category(def.Category).IsValid() {
		return fmt.Errorf("catalog: surface %q: unknown category %q: %w",
			def.Name, def.Category, domain.ErrInvalidInput)
	}
	if strings.TrimSpace(def.Page) == "" {
		return fmt.Errorf("catalog: surface %q: page is required: %w", def.Name, domain.ErrInvalidInput)
	}
	if len(def.Entries) == 0 {
		return fmt.Errorf("catalog: surface %q: %w", def.Name, domain.ErrEmptyCatalog)
	}
	for i := range def.Entries {
		if missing := def.Entries[i].Missing(); len(missing) > 0 {
			return fmt.Errorf("catalog: surface %q entry %d: missing %s: %w",
				def.Name, i, strings.Join(missing, ", "), domain.ErrIncompleteCatalog)
		}
	}
	return nil
}

// Surfaces returns every surface in definition order.
func (c *Catalog) Surfaces() []domain.Surface {
	out := make([]domain.Surface, len(c.surfaces))
	copy(out, c.surfaces)
	return out
}

// Surface returns one surface by name.
func (c *Catalog) Surface(name string) (domain.Surface, error) {
	for _, s := range c.surfaces {
		if s.Name == name {
			return s, nil
		}
	}
	return domain.Surface{}, fmt.Errorf("%q: %w", name, domain.ErrUnknownSurface)
}

// Catalog returns a surface's fallback entries. Callers must not modify
// the returned slice.
func (c *Catalog) Catalog(name string) ([]domain.Descriptor, error) {
	entries, ok := c.entries[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, domain.ErrUnknownSurface)
	}
	return entries, nil
}

// Export encodes the catalog as TOML in the override file layout.
func (c *Catalog) Export() ([]byte, error) {
	f := catalogFile{Surfaces: make([]surfaceDef, len(c.surfaces))}
	for i, s := range c.surfaces {
		f.Surfaces[i] = surfaceDef{
			Name:         s.Name,
			Title:        s.Title,
			Category:     s.Category.String(),
			Page:         s.Page,
			CategoryOnly: s.CategoryOnly,
			Single:       s.Single,
			MatchByName:  s.MatchByName,
			Entries:      c.entries[s.Name],
		}
	}
	data, err := toml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("catalog: export: %w", err)
	}
	return data, nil
}
