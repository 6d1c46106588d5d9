package tabular

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"io"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/errors"
)

// readXLSX returns the raw cell values of sheet, or of the first sheet when
// sheet is empty.
func readXLSX(path, sheet string) ([][]string, string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, "", errors.NewParseError("xlsx", path, "cannot open workbook", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, "", errors.NewParseError("xlsx", path, "workbook has no sheets", nil)
		}
		sheet = sheets[0]
	}

	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, "", errors.NewNotFoundError("sheet", sheet)
	}

	// Raw values so that number formats (thousand separators, percent) do
	// not leak into parsing.
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, "", errors.NewParseError("xlsx", path, "cannot read sheet "+sheet, err)
	}
	return rows, sheet, nil
}

// readCSV reads a comma, semicolon or tab separated file. The separator is
// taken from the header line.
func readCSV(path string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = sniffComma(data)
	r.FieldsPerRecord = -1
	// Leading space trimming would swallow empty tab separated fields.
	r.TrimLeadingSpace = r.Comma != '\t'

	var rows [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WrapParse("csv", path, err)
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

// sniffComma picks the most frequent of tab, semicolon and comma in the
// header line. Ties go to the comma.
func sniffComma(data []byte) rune {
	line, _, _ := bufio.NewReader(bytes.NewReader(data)).ReadLine()
	best, count := ',', bytes.Count(line, []byte(","))
	for _, sep := range []rune{';', '\t'} {
		if n := bytes.Count(line, []byte(string(sep))); n > count {
			best, count = sep, n
		}
	}
	return best
}
