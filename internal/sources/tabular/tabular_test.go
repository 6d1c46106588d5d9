package tabular

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/canonical"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/errors"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/indicators"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/logging"
)

func writeWorkbook(t *testing.T, sheet string, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
		require.NoError(t, f.DeleteSheet("Sheet1"))
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "clusters.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func writeText(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFetchXLSX(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]any{
		{"Provinsi", "X1", "X2", "X13", "Cluster"},
		{"DI. ACEH", 71.5, 1500000, 90, 0},
		{"Papua", 40.2, nil, 12, -1},
		{"", 1, 2, 3, 0},
		{"Bali", 80, 700000, "n/a", 1.0},
		{"Jawa Barat", 75, 9000000, 1400, "satu"},
	})

	ds, err := New(WithPath(path)).Fetch(context.Background())
	require.NoError(t, err)

	require.Len(t, ds.Records, 3)
	assert.Equal(t, 2, ds.Skipped)
	assert.False(t, ds.Synthetic)
	assert.Equal(t, "Sheet1", ds.Sheet)
	assert.Equal(t, []indicators.Code{indicators.X1, indicators.X2, indicators.X13}, ds.Indicators)

	aceh := ds.Records[0]
	assert.Equal(t, "DI. ACEH", aceh.Name)
	assert.Equal(t, "ACEH", aceh.Key)
	assert.Equal(t, 0, aceh.ClusterID)
	assert.Equal(t, "Cluster 0", aceh.ClusterLabel())
	assert.InDelta(t, 71.5, aceh.Values[indicators.X1], 1e-9)

	papua := ds.Records[1]
	assert.True(t, papua.IsNoise())
	_, ok := papua.Values[indicators.X2]
	assert.False(t, ok, "empty cell is absent")

	bali := ds.Records[2]
	assert.Equal(t, 1, bali.ClusterID)
	_, ok = bali.Values[indicators.X13]
	assert.False(t, ok, "non-numeric cell is absent")
}

func TestFetchXLSXNamedSheet(t *testing.T) {
	path := writeWorkbook(t, "hasil", [][]any{
		{"province", "Indeks Ketahanan Pangan (IKP)", "klaster"},
		{"NTB", 60, 2},
	})

	ds, err := New(WithPath(path), WithSheet("hasil")).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, ds.Records, 1)
	assert.Equal(t, "NUSA TENGGARA BARAT", ds.Records[0].Key)
	assert.Equal(t, 2, ds.Records[0].ClusterID)
	assert.Equal(t, []indicators.Code{indicators.X1}, ds.Indicators)

	_, err = New(WithPath(path), WithSheet("missing")).Fetch(context.Background())
	assert.True(t, errors.IsNotFound(err))
}

func TestFetchCSV(t *testing.T) {
	path := writeText(t, "clusters.csv",
		"\xef\xbb\xbfNama;Produksi Padi;Harga Komoditas Beras;Cluster\n"+
			"Kep. Riau;1200,5;14000;1\n"+
			"Jakarta;0;15500;-1\n"+
			";;;\n")

	ds, err := New(WithPath(path)).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, ds.Records, 2)
	assert.Equal(t, 0, ds.Skipped, "blank lines are not counted")
	assert.Equal(t, "KEPULAUAN RIAU", ds.Records[0].Key)
	assert.InDelta(t, 1200.5, ds.Records[0].Values[indicators.X2], 1e-9)
	assert.Equal(t, "DKI JAKARTA", ds.Records[1].Key)
	assert.Equal(t, []indicators.Code{indicators.X2, indicators.X7}, ds.Indicators)
}

func TestSniffComma(t *testing.T) {
	tests := []struct {
		header string
		want   rune
	}{
		{"Provinsi,X1,Cluster", ','},
		{"Provinsi;X1;Cluster", ';'},
		{"Provinsi\tX1\tCluster", '\t'},
		{"Provinsi\tHarga, Rp\tCluster", '\t'},
		{"Provinsi", ','},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sniffComma([]byte(tt.header+"\nrow")), tt.header)
	}
}

func TestFetchTSV(t *testing.T) {
	path := writeText(t, "clusters.txt", "Provinsi\tX1\tX2\tCluster\nBali\t\t120\t0\n")

	ds, err := New(WithPath(path)).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, ds.Records, 1)
	_, ok := ds.Records[0].Values[indicators.X1]
	assert.False(t, ok, "empty field stays empty")
	assert.InDelta(t, 120, ds.Records[0].Values[indicators.X2], 1e-9)
	assert.Equal(t, 0, ds.Records[0].ClusterID)
}

func TestFetchCustomTable(t *testing.T) {
	table, err := canonical.Default().Merge(canonical.MustParse([]byte("SULAWESI UTARA: [SULUT]\n")))
	require.NoError(t, err)

	path := writeText(t, "c.csv", "Provinsi,X1,Cluster\nSulut,50,0\n")
	ds, err := New(WithPath(path), WithTable(table)).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "SULAWESI UTARA", ds.Records[0].Key)
}

func TestFetchErrors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(t.TempDir(), "nope.xlsx")},
		{"unsupported extension", writeText(t, "data.json", "{}")},
		{"no name column", writeText(t, "a.csv", "Wilayah,X1,Cluster\nAceh,1,0\n")},
		{"no cluster column", writeText(t, "b.csv", "Provinsi,X1\nAceh,1\n")},
		{"no usable rows", writeText(t, "c.csv", "Provinsi,X1,Cluster\n,1,0\nAceh,1,x\n")},
		{"empty file", writeText(t, "d.csv", "")},
		{"corrupt workbook", writeText(t, "e.xlsx", "not a zip")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(WithPath(tt.path)).Fetch(ctx)
			require.Error(t, err)
		})
	}
}

func TestSkippedRowsAreLogged(t *testing.T) {
	tl := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), tl.Logger)

	path := writeText(t, "skip.csv", "Provinsi,X1,Cluster\nAceh,70,0\nJawa Barat,75,satu\n")
	ds, err := New(WithPath(path)).Fetch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, ds.Skipped)

	tl.AssertContains(t, "Skipping row with non-integer cluster")
	tl.AssertContains(t, `"region":"Jawa Barat"`)
	tl.AssertContains(t, `"source":"attributes"`)
}

func TestLoadOrSynthetic(t *testing.T) {
	tl := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), tl.Logger)

	var causes []error
	ds, err := New(WithPath(filepath.Join(t.TempDir(), "missing.xlsx"))).
		LoadOrSynthetic(ctx, func(err error) { causes = append(causes, err) })
	require.NoError(t, err)
	require.NotNil(t, ds)
	assert.True(t, ds.Synthetic)
	assert.Len(t, ds.Records, len(SyntheticProvinces))
	require.Len(t, causes, 1)
	assert.True(t, errors.IsSourceUnavailable(causes[0]))
	tl.AssertContains(t, "using synthetic records")
	tl.AssertContains(t, `"level":"warn"`)

	path := writeText(t, "ok.csv", "Provinsi,Cluster,X1\nAceh,0,70\n")
	ds, err = New(WithPath(path)).LoadOrSynthetic(ctx, nil)
	require.NoError(t, err)
	assert.False(t, ds.Synthetic)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	ds, err = New(WithPath(filepath.Join(t.TempDir(), "missing.xlsx"))).LoadOrSynthetic(canceled, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, ds)
}

func TestSynthetic(t *testing.T) {
	a := Synthetic()
	b := Synthetic()
	assert.Equal(t, a, b, "deterministic across calls")

	require.NotEmpty(t, a.Records)
	assert.True(t, a.Synthetic)
	assert.Len(t, a.Indicators, 14)

	for _, rec := range a.Records {
		assert.Equal(t, rec.Name, rec.Key)
		assert.Contains(t, []int{0, 1, -1}, rec.ClusterID)
		require.Len(t, rec.Values, 14)
		for code, v := range rec.Values {
			assert.GreaterOrEqual(t, v, 10.0, code)
			assert.Less(t, v, 100.0, code)
		}
	}
}

func TestParseHelpers(t *testing.T) {
	for in, want := range map[string]float64{"1.5": 1.5, " 2 ": 2, "3,25": 3.25, "-4": -4, "1e3": 1000} {
		got, ok := parseNumber(in)
		assert.True(t, ok, in)
		assert.InDelta(t, want, got, 1e-9, in)
	}
	for _, in := range []string{"", "abc", "NaN", "Inf", "1,000,000"} {
		_, ok := parseNumber(in)
		assert.False(t, ok, in)
	}

	for in, want := range map[string]int{"0": 0, "-1": -1, "2.0": 2, " 3 ": 3} {
		got, ok := parseCluster(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	for _, in := range []string{"", "1.5", "x", "NaN"} {
		_, ok := parseCluster(in)
		assert.False(t, ok, in)
	}

	assert.Equal(t, 2, findColumn([]string{"X1", "Name", "provinsi"}, NameColumns), "priority order beats column order")
	assert.Equal(t, -1, findColumn([]string{"X1"}, ClusterColumns))
}
