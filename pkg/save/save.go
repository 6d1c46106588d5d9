package save

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/constants"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/errors"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/indicators"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/join"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/profile"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/regions"
)

// Views are the artifacts written by Save. Join may be nil when no geometry
// is available; its sheet then holds only the header.
type Views struct {
	Records    []regions.Record  `json:"records"`
	Indicators []indicators.Code `json:"indicators"`
	Join       *join.Result      `json:"join,omitempty"`
	Profile    *profile.Table    `json:"profile"`
}

// Save writes v according to opts.
func Save(v Views, opts ...Option) error {
	o := Defaults().Apply(opts...)
	if !o.format.IsValid() {
		return errors.NewValidationError("format", o.format.String(), "unsupported save format")
	}
	if o.writer == nil && o.path == "" {
		return errors.NewValidationError("path", "", "a path or writer is required")
	}

	if o.writer != nil {
		return write(o.writer, v, &o)
	}

	f, err := os.OpenFile(o.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("create", o.path, err)
	}
	if err := write(f, v, &o); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.WrapIO("close", o.path, err)
	}
	return nil
}

func write(w io.Writer, v Views, o *Options) error {
	if o.format == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	return writeWorkbook(w, v, o)
}

func writeWorkbook(w io.Writer, v Views, o *Options) error {
	if len(o.sheets) == 0 {
		return errors.NewValidationError("sheets", "", "no sheet selected")
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, name := range o.sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
				return errors.WrapResource("rename", "sheet", name, err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return errors.WrapResource("create", "sheet", name, err)
		}

		for r, row := range Rows(name, v) {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(name, cell, &row); err != nil {
				return errors.WrapResource("write", "sheet", name, err)
			}
		}
		if err := f.SetPanes(name, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		}); err != nil {
			return errors.WrapResource("freeze", "sheet", name, err)
		}
	}

	if err := f.Write(w); err != nil {
		return errors.WrapIO("write", "workbook", err)
	}
	return nil
}

// Rows returns the cells of one sheet, header first. Absent values are nil.
func Rows(sheet string, v Views) [][]any {
	switch sheet {
	case SheetRegions:
		return regionRows(v)
	case SheetJoined:
		return joinedRows(v.Join)
	case SheetSymbolic:
		return symbolicRows(v.Profile)
	case SheetIndicators:
		return indicatorRows()
	}
	return nil
}

func regionRows(v Views) [][]any {
	header := []any{"Province", "Key", "Cluster ID", "Cluster"}
	for _, code := range v.Indicators {
		header = append(header, indicators.MustByCode(code).Label())
	}
	rows := [][]any{header}
	for _, r := range v.Records {
		row := []any{r.Name, r.Key, r.ClusterID, r.ClusterLabel()}
		for _, code := range v.Indicators {
			if val, ok := r.Value(code); ok {
				row = append(row, val)
			} else {
				row = append(row, nil)
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func joinedRows(res *join.Result) [][]any {
	rows := [][]any{{"Feature", "Key", "Display Name", "Name Source", "Cluster", "Matched"}}
	if res == nil {
		return rows
	}
	for _, j := range res.Rows {
		rows = append(rows, []any{j.Name, j.Key, j.DisplayName, j.DisplaySource, j.ClusterLabel, j.Matched()})
	}
	return rows
}

func symbolicRows(t *profile.Table) [][]any {
	if t == nil {
		t = profile.Profile(nil)
	}
	header := []any{"Cluster", "Type"}
	for _, d := range t.Dimensions {
		header = append(header, d.String())
	}
	header = append(header, "Members")

	rows := [][]any{header}
	for _, r := range t.Rows {
		row := []any{r.Cluster, r.Type}
		for _, d := range t.Dimensions {
			l := r.Dimension(d)
			row = append(row, l.Symbol()+" "+l.String())
		}
		row = append(row, strings.Join(r.Members, ", "))
		rows = append(rows, row)
	}
	return rows
}

func indicatorRows() [][]any {
	rows := [][]any{{"Code", "Name", "Unit", "Polarity", "Dimension", "Definition"}}
	for _, ind := range indicators.All() {
		rows = append(rows, []any{
			string(ind.Code), ind.Name, ind.Unit, ind.Polarity.String(), ind.Dimension.String(), ind.Definition,
		})
	}
	return rows
}
