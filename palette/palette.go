// Package palette loads named color sets from YAML or JSON documents.
//
// A palette document looks like:
//
//	name: brand
//	colors:
//	  - name: primary
//	    encoding: SrgbAU8
//	    components: [255, 128, 0, 255]
//	  - name: glow
//	    encoding: LinearSrgb
//	    components: [4.0, 2.0, 0.5]
//
// Both formats are checked against the same JSON schema before the colors
// are validated, so malformed documents are rejected with a description of
// every problem at once.
package palette

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/colorenc"
)

// Format is a palette serialization format.
type Format uint8

const (
	// YAML documents, the default.
	YAML Format = iota
	// JSON documents.
	JSON
)

// String returns "yaml" or "json".
func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case JSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// FormatFromPath picks a format by file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

var (
	// ErrUnknownFormat is returned for unsupported formats or extensions.
	ErrUnknownFormat = errors.New("palette: unknown format")

	// ErrSchema is returned when a document does not match the palette schema.
	ErrSchema = errors.New("palette: document does not match schema")

	// ErrEmptyName is returned for colors without a name.
	ErrEmptyName = errors.New("palette: empty color name")

	// ErrDuplicateName is returned when two colors share a name.
	ErrDuplicateName = errors.New("palette: duplicate color name")

	// ErrNotFound is returned by Get for names not in the palette.
	ErrNotFound = errors.New("palette: color not found")
)

//go:embed schema.json
var schemaJSON string

var loadSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
})

// Entry is a named color.
type Entry struct {
	Name  string
	Color colorenc.Dynamic
}

// Palette is an ordered set of uniquely named colors. Name lookup ignores
// case. A Palette is immutable and safe for concurrent use.
type Palette struct {
	name    string
	entries []Entry
	index   map[string]int
}

// New builds a palette from entries, rejecting empty and duplicate names.
func New(name string, entries ...Entry) (*Palette, error) {
	p := &Palette{
		name:    name,
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	fold := cases.Fold()
	for _, e := range entries {
		if strings.TrimSpace(e.Name) == "" {
			return nil, ErrEmptyName
		}
		key := fold.String(e.Name)
		if _, dup := p.index[key]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, e.Name)
		}
		if !e.Color.Encoding().Valid() {
			return nil, fmt.Errorf("palette: color %q: %w", e.Name, colorenc.ErrUnknownEncoding)
		}
		p.index[key] = len(p.entries)
		p.entries = append(p.entries, e)
	}
	return p, nil
}

// Name returns the palette name, which may be empty.
func (p *Palette) Name() string { return p.name }

// Len returns the number of colors.
func (p *Palette) Len() int { return len(p.entries) }

// Names returns the color names in document order.
func (p *Palette) Names() []string {
	names := make([]string, len(p.entries))
	for i, e := range p.entries {
		names[i] = e.Name
	}
	return names
}

// Entries returns a copy of the colors in document order.
func (p *Palette) Entries() []Entry {
	return append([]Entry(nil), p.entries...)
}

// Lookup returns the color with the given name.
func (p *Palette) Lookup(name string) (colorenc.Dynamic, bool) {
	i, ok := p.index[cases.Fold().String(name)]
	if !ok {
		return colorenc.Dynamic{}, false
	}
	return p.entries[i].Color, true
}

// Get looks up a color and converts it to T.
func Get[T colorenc.Target[T]](p *Palette, name string) (T, error) {
	d, ok := p.Lookup(name)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return colorenc.ConvertDynamic[T](d)
}

type document struct {
	Name   string     `yaml:"name,omitempty" json:"name,omitempty"`
	Colors []colorDoc `yaml:"colors" json:"colors"`
}

type colorDoc struct {
	Name       string            `yaml:"name" json:"name"`
	Encoding   colorenc.Encoding `yaml:"encoding" json:"encoding"`
	Components []float64         `yaml:"components,flow" json:"components"`
}

// Parse decodes a palette document.
func Parse(data []byte, f Format) (*Palette, error) {
	var raw any
	switch f {
	case YAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("palette: parse yaml: %w", err)
		}
	case JSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("palette: parse json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	if err := validate(raw); err != nil {
		return nil, err
	}

	var doc document
	switch f {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("palette: decode yaml: %w", err)
		}
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("palette: decode json: %w", err)
		}
	}

	entries := make([]Entry, 0, len(doc.Colors))
	for _, c := range doc.Colors {
		d, err := colorenc.NewDynamic(c.Encoding, c.Components...)
		if err != nil {
			return nil, fmt.Errorf("palette: color %q: %w", c.Name, err)
		}
		entries = append(entries, Entry{Name: c.Name, Color: d})
	}

	p, err := New(doc.Name, entries...)
	if err != nil {
		return nil, err
	}
	colorenc.LoggerFor("palette").Debug("parsed", "name", p.name, "format", f, "colors", len(p.entries))
	return p, nil
}

func validate(raw any) error {
	schema, err := loadSchema()
	if err != nil {
		return fmt.Errorf("palette: load schema: %w", err)
	}
	result, err := schema.Validate(gojsonschema.NewGoLoader(raw))
	if err != nil {
		return fmt.Errorf("palette: validate: %w", err)
	}
	if result.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrSchema, strings.Join(msgs, "; "))
}

// Load reads a palette file, picking the format from its extension.
func Load(path string) (*Palette, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("palette: read %s: %w", path, err)
	}
	p, err := Parse(data, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Marshal encodes the palette in the given format.
func (p *Palette) Marshal(f Format) ([]byte, error) {
	doc := document{Name: p.name, Colors: make([]colorDoc, len(p.entries))}
	for i, e := range p.entries {
		doc.Colors[i] = colorDoc{Name: e.Name, Encoding: e.Color.Encoding(), Components: e.Color.Components()}
	}
	switch f {
	case YAML:
		return yaml.Marshal(doc)
	case JSON:
		return json.MarshalIndent(doc, "", "  ")
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}
