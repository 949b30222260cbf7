package sheet

import (
	"fmt"
	"strings"

	"github.com/gsconfig/go-gsconfig/debug"
	"github.com/gsconfig/go-gsconfig/ir"
	"github.com/gsconfig/go-gsconfig/parse"
)

// Format selects how a page's grid is extracted, taken from the page title
// suffix: "items.json" extracts as config data, "stats.csv" and
// "notes.raw" keep the raw grid. A title without a suffix extracts as
// json.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatRaw  Format = "raw"
)

// Schema describes a multi-column data layout: one key column and several
// data columns. Empty data cells fall back to the Default column, or to
// the first data column when Default is empty.
type Schema struct {
	Key     string
	Data    []string
	Default string
}

// Page is one spreadsheet sheet: a title and a grid of cells, the first
// row holding headers.
type Page struct {
	title        string
	rows         [][]string
	skipPrefixes []string
	schema       *Schema
	keyData      [2]string
	conv         *parse.Converter
}

type PageOption func(*Page)

// WithConverter replaces the cell converter; the default is a v1
// parse.Converter.
func WithConverter(conv *parse.Converter) PageOption {
	return func(p *Page) { p.conv = conv }
}

// WithSchema extracts by a multi-column schema instead of probing the
// layout.
func WithSchema(s Schema) PageOption {
	return func(p *Page) { p.schema = &s }
}

// WithKeyData names the two-column layout headers, "key" and "data" by
// default.
func WithKeyData(key, data string) PageOption {
	return func(p *Page) { p.keyData = [2]string{key, data} }
}

// SkipPrefixes sets the header prefixes excluded from free-form
// extraction; "#" and "." by default.
func SkipPrefixes(prefixes ...string) PageOption {
	return func(p *Page) { p.skipPrefixes = prefixes }
}

func NewPage(title string, rows [][]string, opts ...PageOption) (*Page, error) {
	p := &Page{
		title:        title,
		rows:         rows,
		skipPrefixes: []string{"#", "."},
		keyData:      [2]string{"key", "data"},
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.conv == nil {
		conv, err := parse.New()
		if err != nil {
			return nil, err
		}
		p.conv = conv
	}
	return p, nil
}

func (p *Page) Title() string {
	return p.title
}

// Name is the title without its format suffix.
func (p *Page) Name() string {
	name, _ := splitTitle(p.title)
	return name
}

func (p *Page) Format() Format {
	_, format := splitTitle(p.title)
	return format
}

func splitTitle(title string) (string, Format) {
	if i := strings.LastIndexByte(title, '.'); i >= 0 {
		switch f := Format(title[i+1:]); f {
		case FormatJSON, FormatCSV, FormatRaw:
			return title[:i], f
		}
	}
	return title, FormatJSON
}

// Extract converts the grid by the page format. CSV and raw pages come
// back as an array of string arrays; json pages are extracted by schema,
// by the two-column key/data layout when both headers are present, or
// free-form with one object per row.
func (p *Page) Extract() (*ir.Node, error) {
	if debug.Sheet() {
		debug.Logf("sheet: extracting %s as %s", p.title, p.Format())
	}
	switch p.Format() {
	case FormatCSV, FormatRaw:
		return gridNode(p.rows), nil
	case FormatJSON:
		return p.extractJSON()
	default:
		return nil, fmt.Errorf("%w: %s", ErrFormat, p.Format())
	}
}

func (p *Page) extractJSON() (*ir.Node, error) {
	if len(p.rows) == 0 {
		return ir.FromSlice(nil), nil
	}
	if p.schema != nil {
		return p.extractSchema()
	}
	headers := p.rows[0]
	if indexOf(headers, p.keyData[0]) >= 0 && indexOf(headers, p.keyData[1]) >= 0 {
		return p.extractKeyData()
	}
	return p.extractFreeForm()
}

// extractSchema produces one object per data column, keyed by the column
// header, each mapping row keys to parsed cell data.
func (p *Page) extractSchema() (*ir.Node, error) {
	s := p.schema
	required := append([]string{s.Key}, s.Data...)
	headers, data, err := p.filterRows(required)
	if err != nil {
		return nil, err
	}
	keyIdx := indexOf(headers, s.Key)
	defaultKey := s.Default
	if defaultKey == "" {
		defaultKey = s.Data[0]
	}
	defaultIdx := indexOf(headers, defaultKey)
	if defaultIdx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSchema, defaultKey)
	}
	out := ir.Object()
	for _, dataKey := range s.Data {
		dataIdx := indexOf(headers, dataKey)
		column := ir.Object()
		for _, row := range data {
			value := cell(row, dataIdx)
			if value == "" {
				value = cell(row, defaultIdx)
			}
			node, err := p.conv.Jsonify(value)
			if err != nil {
				return nil, fmt.Errorf("page %s, key %q: %w", p.title, cell(row, keyIdx), err)
			}
			column.Set(cell(row, keyIdx), node)
		}
		out.Set(dataKey, column)
	}
	return out, nil
}

// extractKeyData reads the two-column layout: one object mapping the key
// column to the parsed data column.
func (p *Page) extractKeyData() (*ir.Node, error) {
	headers, data, err := p.filterRows(p.keyData[:])
	if err != nil {
		return nil, err
	}
	keyIdx := indexOf(headers, p.keyData[0])
	dataIdx := indexOf(headers, p.keyData[1])
	out := ir.Object()
	for _, row := range data {
		node, err := p.conv.Jsonify(cell(row, dataIdx))
		if err != nil {
			return nil, fmt.Errorf("page %s, key %q: %w", p.title, cell(row, keyIdx), err)
		}
		out.Set(cell(row, keyIdx), node)
	}
	return out, nil
}

// extractFreeForm treats the first row as keys and every following row as
// one config object, rebuilding each row as 'key = {cell}, ...' shorthand
// so nested cell syntax parses naturally. A single row unwraps.
func (p *Page) extractFreeForm() (*ir.Node, error) {
	var required []string
	for _, h := range p.rows[0] {
		if h == "" || p.skipped(h) {
			continue
		}
		required = append(required, h)
	}
	headers, data, err := p.filterRows(required)
	if err != nil {
		return nil, err
	}
	var out []*ir.Node
	for _, row := range data {
		parts := make([]string, 0, len(headers))
		for i, h := range headers {
			parts = append(parts, fmt.Sprintf("%s = {%s}", h, cell(row, i)))
		}
		node, err := p.conv.Jsonify(strings.Join(parts, ", "))
		if err != nil {
			return nil, fmt.Errorf("page %s: %w", p.title, err)
		}
		out = append(out, node)
	}
	if len(out) == 1 {
		return out[0], nil
	}
	return ir.FromSlice(out), nil
}

// filterRows keeps only the required columns and drops rows whose
// required cells are all empty. The returned rows are reindexed to the
// required headers.
func (p *Page) filterRows(required []string) ([]string, [][]string, error) {
	headers := p.rows[0]
	indices := make([]int, len(required))
	for i, h := range required {
		idx := indexOf(headers, h)
		if idx < 0 {
			return nil, nil, fmt.Errorf("%w: %q in page %s", ErrSchema, h, p.title)
		}
		indices[i] = idx
	}
	var data [][]string
	for _, row := range p.rows[1:] {
		filtered := make([]string, len(indices))
		empty := true
		for i, idx := range indices {
			filtered[i] = cell(row, idx)
			if strings.TrimSpace(filtered[i]) != "" {
				empty = false
			}
		}
		if !empty {
			data = append(data, filtered)
		}
	}
	return required, data, nil
}

func (p *Page) skipped(header string) bool {
	for _, prefix := range p.skipPrefixes {
		if strings.HasPrefix(header, prefix) {
			return true
		}
	}
	return false
}

func gridNode(rows [][]string) *ir.Node {
	out := make([]*ir.Node, len(rows))
	for i, row := range rows {
		cells := make([]*ir.Node, len(row))
		for j, c := range row {
			cells[j] = ir.FromString(c)
		}
		out[i] = ir.FromSlice(cells)
	}
	return ir.FromSlice(out)
}

func indexOf(headers []string, name string) int {
	for i, h := range headers {
		if h == name {
			return i
		}
	}
	return -1
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
