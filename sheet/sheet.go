// Package sheet extracts config data from spreadsheet pages. A page is a
// titled grid of cells; the title's suffix picks the extraction format and
// cells holding config shorthand go through the parse package.
package sheet

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

var (
	ErrSchema = errors.New("schema column not found")
	ErrFormat = errors.New("unknown page format")
)

// Provider supplies the cell grid of a named page. Rows may be ragged:
// trailing empty cells are omitted.
type Provider interface {
	Rows(name string) ([][]string, error)
}

// File reads pages from an xlsx workbook.
type File struct {
	f *excelize.File
}

func OpenXLSX(path string) (*File, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &File{f: f}, nil
}

func (f *File) Rows(name string) ([][]string, error) {
	return f.f.GetRows(name)
}

func (f *File) Sheets() []string {
	return f.f.GetSheetList()
}

func (f *File) Close() error {
	return f.f.Close()
}

// Pages builds a Page for every sheet in the workbook.
func Pages(f *File, opts ...PageOption) ([]*Page, error) {
	var res []*Page
	for _, name := range f.Sheets() {
		rows, err := f.Rows(name)
		if err != nil {
			return nil, fmt.Errorf("sheet %s: %w", name, err)
		}
		page, err := NewPage(name, rows, opts...)
		if err != nil {
			return nil, err
		}
		res = append(res, page)
	}
	return res, nil
}
