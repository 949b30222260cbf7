package sheet_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"

	"github.com/gsconfig/go-gsconfig/encode"
	"github.com/gsconfig/go-gsconfig/parse"
	"github.com/gsconfig/go-gsconfig/sheet"
)

type SheetSuite struct {
	suite.Suite
}

func TestSheetSuite(t *testing.T) {
	suite.Run(t, new(SheetSuite))
}

func (s *SheetSuite) extract(p *sheet.Page) string {
	node, err := p.Extract()
	s.Require().NoError(err, "Extract")
	return encode.JSON(node)
}

func (s *SheetSuite) TestTitleFormats() {
	for title, want := range map[string]struct {
		name   string
		format sheet.Format
	}{
		"items.json":  {"items", sheet.FormatJSON},
		"stats.csv":   {"stats", sheet.FormatCSV},
		"notes.raw":   {"notes", sheet.FormatRaw},
		"plain":       {"plain", sheet.FormatJSON},
		"has.dots.gs": {"has.dots.gs", sheet.FormatJSON},
	} {
		p, err := sheet.NewPage(title, nil)
		s.Require().NoError(err)
		s.Equal(want.name, p.Name(), title)
		s.Equal(want.format, p.Format(), title)
	}
}

func (s *SheetSuite) TestFreeForm() {
	rows := [][]string{
		{"name", "#note", "price"},
		{"sword", "ignored", "{cost = 10, rare = true}"},
		{"shield", "", "{cost = 5, rare = false}"},
	}
	p, err := sheet.NewPage("items.json", rows)
	s.Require().NoError(err)
	s.Equal(
		`[{"name":"sword","price":[{"cost":10,"rare":true}]},`+
			`{"name":"shield","price":[{"cost":5,"rare":false}]}]`,
		s.extract(p))
}

func (s *SheetSuite) TestFreeFormSingleRowUnwraps() {
	rows := [][]string{
		{"name", "price"},
		{"sword", "10"},
	}
	p, err := sheet.NewPage("items.json", rows)
	s.Require().NoError(err)
	s.Equal(`{"name":"sword","price":10}`, s.extract(p))
}

func (s *SheetSuite) TestFreeFormDropsEmptyRows() {
	rows := [][]string{
		{"name"},
		{""},
		{"sword"},
		{},
	}
	p, err := sheet.NewPage("items.json", rows)
	s.Require().NoError(err)
	s.Equal(`{"name":"sword"}`, s.extract(p))
}

func (s *SheetSuite) TestKeyData() {
	rows := [][]string{
		{"key", "data", "#comment"},
		{"speed", "10", "x"},
		{"spawn", "a = 1, b = {2, 3}", ""},
	}
	p, err := sheet.NewPage("conf.json", rows)
	s.Require().NoError(err)
	s.Equal(`{"speed":10,"spawn":{"a":1,"b":[2,3]}}`, s.extract(p))
}

func (s *SheetSuite) TestSchema() {
	rows := [][]string{
		{"id", "base", "event"},
		{"hero", "hp = 100", "hp = 150"},
		{"mob", "hp = 10", ""},
	}
	p, err := sheet.NewPage("balance.json", rows,
		sheet.WithSchema(sheet.Schema{Key: "id", Data: []string{"base", "event"}}))
	s.Require().NoError(err)
	// empty event cells fall back to the base column
	s.Equal(
		`{"base":{"hero":{"hp":100},"mob":{"hp":10}},`+
			`"event":{"hero":{"hp":150},"mob":{"hp":10}}}`,
		s.extract(p))
}

func (s *SheetSuite) TestSchemaMissingColumn() {
	rows := [][]string{
		{"id", "base"},
		{"hero", "hp = 100"},
	}
	p, err := sheet.NewPage("balance.json", rows,
		sheet.WithSchema(sheet.Schema{Key: "id", Data: []string{"nope"}}))
	s.Require().NoError(err)
	_, err = p.Extract()
	s.True(errors.Is(err, sheet.ErrSchema), "got %v", err)
}

func (s *SheetSuite) TestRawGrid() {
	rows := [][]string{
		{"a", "b"},
		{"1", "2"},
	}
	p, err := sheet.NewPage("grid.raw", rows)
	s.Require().NoError(err)
	s.Equal(`[["a","b"],["1","2"]]`, s.extract(p))
}

func (s *SheetSuite) TestConverterOption() {
	rows := [][]string{
		{"key", "data"},
		{"one", "a!list = 1"},
	}
	conv, err := parse.New(parse.V2())
	s.Require().NoError(err)
	p, err := sheet.NewPage("conf.json", rows, sheet.WithConverter(conv))
	s.Require().NoError(err)
	s.Equal(`{"one":{"a":[1]}}`, s.extract(p))
}

func (s *SheetSuite) TestXLSXFile() {
	tmpDir := s.T().TempDir()
	path := filepath.Join(tmpDir, "balance.xlsx")

	f := excelize.NewFile()
	s.Require().NoError(f.SetSheetName("Sheet1", "items.json"))
	for cell, value := range map[string]string{
		"A1": "key", "B1": "data",
		"A2": "speed", "B2": "10",
		"A3": "loot", "B3": "{gold = 5, gems = 1}",
	} {
		s.Require().NoError(f.SetCellValue("items.json", cell, value))
	}
	s.Require().NoError(f.SaveAs(path))

	file, err := sheet.OpenXLSX(path)
	s.Require().NoError(err)
	defer file.Close()

	pages, err := sheet.Pages(file)
	s.Require().NoError(err)
	s.Require().Len(pages, 1)
	s.Equal("items", pages[0].Name())
	s.Equal(
		`{"speed":10,"loot":{"gold":5,"gems":1}}`,
		s.extract(pages[0]))
}

func (s *SheetSuite) TestOpenMissingFile() {
	_, err := sheet.OpenXLSX(filepath.Join(s.T().TempDir(), "nope.xlsx"))
	s.Error(err)
}
