package models

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSpec indicates a sheet description that cannot be decoded.
var ErrInvalidSpec = errors.New("invalid sheet spec")

// borderStyles maps border names to excelize border style numbers.
var borderStyles = map[string]int{
	"none":   0,
	"thin":   1,
	"medium": 2,
	"dashed": 3,
	"dotted": 4,
	"thick":  5,
	"double": 6,
}

// StyleSpec is the declarative form of a StyleFn used in sheet files.
// Unset fields leave the default style untouched.
type StyleSpec struct {
	FontSize    float64 `yaml:"fontSize" json:"fontSize,omitempty"`
	Bold        *bool   `yaml:"bold" json:"bold,omitempty"`
	Italic      *bool   `yaml:"italic" json:"italic,omitempty"`
	FontColor   string  `yaml:"fontColor" json:"fontColor,omitempty"`
	Fill        string  `yaml:"fill" json:"fill,omitempty"`
	Horizontal  string  `yaml:"horizontal" json:"horizontal,omitempty"`
	Vertical    string  `yaml:"vertical" json:"vertical,omitempty"`
	Border      string  `yaml:"border" json:"border,omitempty"`
	BorderColor string  `yaml:"borderColor" json:"borderColor,omitempty"`
	WrapText    *bool   `yaml:"wrapText" json:"wrapText,omitempty"`
}

// Func compiles the spec into a StyleFn. A nil spec yields a nil StyleFn.
func (s *StyleSpec) Func() (StyleFn, error) {
	if s == nil {
		return nil, nil
	}
	border, ok := 0, true
	if s.Border != "" {
		border, ok = borderStyles[s.Border]
		if !ok {
			return nil, fmt.Errorf("%w: unknown border style %q", ErrInvalidSpec, s.Border)
		}
	}
	spec := *s
	return func(cell *Cell) {
		if spec.FontSize > 0 {
			cell.Font().Size = spec.FontSize
		}
		if spec.Bold != nil {
			cell.Font().Bold = *spec.Bold
		}
		if spec.Italic != nil {
			cell.Font().Italic = *spec.Italic
		}
		if spec.FontColor != "" {
			cell.Font().Color = spec.FontColor
		}
		if spec.Fill != "" {
			cell.SetFill(spec.Fill)
		}
		if spec.Horizontal != "" {
			cell.Alignment().Horizontal = spec.Horizontal
		}
		if spec.Vertical != "" {
			cell.Alignment().Vertical = spec.Vertical
		}
		if spec.WrapText != nil {
			cell.Alignment().WrapText = *spec.WrapText
		}
		if spec.Border != "" {
			color := spec.BorderColor
			if color == "" {
				color = "000000"
			}
			cell.SetBorder(border, color)
		}
	}, nil
}

type titleDoc struct {
	Title     string     `yaml:"title"`
	MergeCell string     `yaml:"mergeCell"`
	Style     *StyleSpec `yaml:"titleCellStyle"`
}

type sheetDoc struct {
	SheetName   string      `yaml:"sheetName"`
	Data        []yaml.Node `yaml:"data"`
	TitleRow    *titleDoc   `yaml:"titleRow"`
	Headers     []string    `yaml:"headers"`
	Width       []float64   `yaml:"width"`
	HeaderStyle *StyleSpec  `yaml:"headerCellStyle"`
	DataStyle   *StyleSpec  `yaml:"dataCellStyle"`
}

type sheetFile struct {
	Sheets []sheetDoc `yaml:"sheets"`
}

// LoadSheets decodes sheet descriptions from a YAML or JSON document. The
// document is either a list of sheets or a mapping with a "sheets" list.
// Object rows keep the key order of the document.
func LoadSheets(r io.Reader) ([]SheetSpec, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var root yaml.Node
	if err := yaml.Unmarshal(raw, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}
	if len(root.Content) == 0 {
		return nil, nil
	}

	var docs []sheetDoc
	doc := root.Content[0]
	switch doc.Kind {
	case yaml.SequenceNode:
		err = doc.Decode(&docs)
	case yaml.MappingNode:
		var file sheetFile
		err = doc.Decode(&file)
		docs = file.Sheets
	default:
		return nil, fmt.Errorf("%w: expected a list of sheets or a mapping with \"sheets\"", ErrInvalidSpec)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}

	specs := make([]SheetSpec, 0, len(docs))
	for i := range docs {
		spec, err := docs[i].toSpec()
		if err != nil {
			return nil, fmt.Errorf("sheet %d (%q): %w", i+1, docs[i].SheetName, err)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func (d *sheetDoc) toSpec() (SheetSpec, error) {
	spec := SheetSpec{
		SheetName: d.SheetName,
		Headers:   d.Headers,
		Widths:    d.Width,
	}

	var err error
	if spec.HeaderStyle, err = d.HeaderStyle.Func(); err != nil {
		return spec, err
	}
	if spec.DataStyle, err = d.DataStyle.Func(); err != nil {
		return spec, err
	}

	if d.TitleRow != nil {
		titleStyle, err := d.TitleRow.Style.Func()
		if err != nil {
			return spec, err
		}
		spec.TitleRow = &TitleRowSpec{
			Title:      d.TitleRow.Title,
			MergeRange: d.TitleRow.MergeCell,
			Style:      titleStyle,
		}
	}

	spec.Data = make([]RowValue, 0, len(d.Data))
	for i := range d.Data {
		row, err := rowFromNode(&d.Data[i])
		if err != nil {
			return spec, fmt.Errorf("data row %d: %w", i+1, err)
		}
		spec.Data = append(spec.Data, row)
	}
	return spec, nil
}

// rowFromNode dispatches a YAML node to the matching RowValue variant.
func rowFromNode(n *yaml.Node) (RowValue, error) {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}

	switch n.Kind {
	case yaml.MappingNode:
		row := make(ObjectRow, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			value, err := nodeValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			row = append(row, Field{Key: n.Content[i].Value, Value: value})
		}
		return row, nil
	case yaml.SequenceNode:
		row := make(ArrayRow, 0, len(n.Content))
		for _, item := range n.Content {
			value, err := nodeValue(item)
			if err != nil {
				return nil, err
			}
			row = append(row, value)
		}
		return row, nil
	default:
		value, err := nodeValue(n)
		if err != nil {
			return nil, err
		}
		return ScalarRow{Value: value}, nil
	}
}

func nodeValue(n *yaml.Node) (interface{}, error) {
	var v interface{}
	if err := n.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidSpec, n.Line, err)
	}
	return v, nil
}
