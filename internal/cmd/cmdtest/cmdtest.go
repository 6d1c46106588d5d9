// Package cmdtest builds command fixtures backed by a real client reading
// small temporary data files.
package cmdtest

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	pangan "github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/internal/appcontext"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/logging"
)

// Attributes holds three provinces in two clusters and one outlier.
const Attributes = `Provinsi,Cluster,X1,X2,X7,X9
Aceh,0,70,120,25,65
Sumatera Barat,0,75,110,22,68
Papua,-1,40,80,40,55
`

// Boundaries holds the boundary features of Aceh, Papua and a province
// missing from Attributes.
const Boundaries = `{"type":"FeatureCollection","features":[
  {"type":"Feature","properties":{"Propinsi":"DI. ACEH"},"geometry":{"type":"Point","coordinates":[95.3,5.5]}},
  {"type":"Feature","properties":{"Propinsi":"PAPUA"},"geometry":{"type":"Point","coordinates":[138.1,-4.2]}},
  {"type":"Feature","properties":{"Propinsi":"BALI"},"geometry":{"type":"Point","coordinates":[115.1,-8.4]}}
]}`

// WriteFile writes content to a file in a temporary directory.
func WriteFile(t testing.TB, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// NewClient creates a client over Attributes and Boundaries.
func NewClient(t testing.TB, opts ...pangan.Option) pangan.Client {
	t.Helper()
	base := []pangan.Option{
		pangan.WithAttributePath(WriteFile(t, "clusters.csv", Attributes)),
		pangan.WithGeometryPath(WriteFile(t, "prov.geojson", Boundaries)),
		pangan.WithLowMatchThreshold(1),
		pangan.WithLogger(logging.NewNopLogger()),
	}
	c, err := pangan.New(append(base, opts...)...)
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	return c
}

// NewMock returns an application context serving c in format.
func NewMock(c pangan.Client, format string) *appcontext.Mock {
	return &appcontext.Mock{
		ClientFunc:       func() (pangan.Client, error) { return c, nil },
		OutputFormatFunc: func() string { return format },
		LoggerFunc: func() *zerolog.Logger {
			return logging.NewNopLogger()
		},
	}
}

// Run executes cmd with args and returns what it wrote to stdout and stderr.
func Run(cmd *cobra.Command, args ...string) (stdout, stderr string, err error) {
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}
