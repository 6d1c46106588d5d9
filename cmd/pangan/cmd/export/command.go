// Package export implements the export command.
package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/internal/appcontext"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/internal/cmd/alerts"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/errors"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/save"
)

// DefaultPath is the export file name when none is given.
const DefaultPath = "ketahanan-pangan.xlsx"

// NewCommand creates the export command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var sheets []string

	cmd := &cobra.Command{
		Use:     "export [file]",
		GroupID: "reference",
		Short:   "Write every view to an Excel workbook",
		Long: fmt.Sprintf(`Export writes the province records, the boundary join, the symbolic
profile and the indicator catalog to one workbook with the sheets %s.
A .json file name writes the same views as one JSON document instead.`,
			strings.Join(save.Sheets(), ", ")),
		Args: cobra.MaximumNArgs(1),
		Example: `  pangan export
  pangan export laporan.xlsx --sheet symbolic --sheet indicators
  pangan export views.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := DefaultPath
			if len(args) == 1 {
				path = args[0]
			}

			format, err := formatFor(path)
			if err != nil {
				return err
			}

			client, err := app.Client()
			if err != nil {
				return err
			}
			if err := client.Save(cmd.Context(),
				save.WithPath(path),
				save.WithFormat(format),
				save.WithSheets(sheets...),
			); err != nil {
				return err
			}

			w := alerts.NewWriter(cmd.ErrOrStderr(), app.OutputFormat(), true)
			return w.Write(alerts.NewSuccess("Exported views to " + path))
		},
	}

	cmd.Flags().StringSliceVar(&sheets, "sheet", nil, "sheet to include (repeatable): "+strings.Join(save.Sheets(), ", "))

	return cmd
}

func formatFor(path string) (save.Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx":
		return save.FormatXLSX, nil
	case ".json":
		return save.FormatJSON, nil
	default:
		return 0, errors.NewValidationError("file", path, "export file must end in .xlsx or .json")
	}
}
