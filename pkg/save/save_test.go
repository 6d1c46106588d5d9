package save_test

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/errors"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/indicators"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/join"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/profile"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/regions"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/save"
)

func views() save.Views {
	records := []regions.Record{
		{Name: "Aceh", Key: "ACEH", ClusterID: 0, Values: map[indicators.Code]float64{indicators.X1: 70}},
		{Name: "Papua", Key: "PAPUA", ClusterID: -1, Values: map[indicators.Code]float64{}},
	}
	features := []regions.Feature{{Name: "DI. ACEH", Key: "ACEH"}}
	return save.Views{
		Records:    records,
		Indicators: []indicators.Code{indicators.X1},
		Join:       join.Join(features, records),
		Profile:    profile.Profile(records),
	}
}

func TestSaveWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.xlsx")
	require.NoError(t, save.Save(views(), save.WithPath(path)))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, save.Sheets(), f.GetSheetList())

	rows, err := f.GetRows(save.SheetRegions)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Province", "Key", "Cluster ID", "Cluster", "Indeks Ketahanan Pangan (IKP) (X1)"}, rows[0])
	assert.Equal(t, []string{"Aceh", "ACEH", "0", "Cluster 0", "70"}, rows[1])
	assert.Equal(t, []string{"Papua", "PAPUA", "-1", "Noise (Outlier)"}, rows[2][:4])
	if len(rows[2]) > 4 {
		assert.Empty(t, rows[2][4], "absent values stay empty")
	}

	joined, err := f.GetRows(save.SheetJoined)
	require.NoError(t, err)
	require.Len(t, joined, 2)
	assert.Equal(t, "Aceh", joined[1][2])
	assert.Contains(t, []string{"TRUE", "1"}, joined[1][5])

	symbolic, err := f.GetRows(save.SheetSymbolic)
	require.NoError(t, err)
	assert.Len(t, symbolic, 3)
	assert.Equal(t, "Province: Papua", symbolic[2][1])

	inds, err := f.GetRows(save.SheetIndicators)
	require.NoError(t, err)
	assert.Len(t, inds, indicators.Len()+1)
}

func TestSaveSelectedSheets(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, save.Save(views(),
		save.WithWriter(&buf),
		save.WithSheets(save.SheetIndicators, "nope", save.SheetRegions),
	))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{save.SheetRegions, save.SheetIndicators}, f.GetSheetList(), "workbook order is fixed")
}

func TestSaveWithoutGeometry(t *testing.T) {
	v := views()
	v.Join = nil
	assert.Equal(t, [][]any{{"Feature", "Key", "Display Name", "Name Source", "Cluster", "Matched"}}, save.Rows(save.SheetJoined, v))
}

func TestSaveJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, save.Save(views(), save.WithWriter(&buf), save.WithFormat(save.FormatJSON)))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Contains(t, got, "records")
	assert.Contains(t, got, "profile")
	assert.Contains(t, got, "join")
}

func TestSaveErrors(t *testing.T) {
	err := save.Save(views())
	assert.True(t, errors.IsValidationError(err), "no destination")

	err = save.Save(views(), save.WithPath("x.xlsx"), save.WithFormat(save.Format(9)))
	assert.True(t, errors.IsValidationError(err))

	err = save.Save(views(), save.WithPath(filepath.Join(t.TempDir(), "missing", "x.xlsx")))
	var ioErr *errors.IOError
	assert.ErrorAs(t, err, &ioErr)

	err = save.Save(views(), save.WithWriter(&bytes.Buffer{}), save.WithSheets("nope"))
	assert.True(t, errors.IsValidationError(err))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "xlsx", save.FormatXLSX.String())
	assert.Equal(t, "json", save.FormatJSON.String())
	assert.False(t, save.Format(7).IsValid())
	assert.Equal(t, "unknown", save.Format(7).String())
}
