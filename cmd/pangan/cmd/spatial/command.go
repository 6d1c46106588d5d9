// Package spatial implements the join command.
package spatial

import (
	"github.com/spf13/cobra"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/internal/appcontext"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/internal/cmd/output"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/internal/cmd/table"
)

// NewCommand creates the join command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var summary bool

	cmd := &cobra.Command{
		Use:     "join",
		GroupID: "core",
		Short:   "Join province boundaries to the cluster records",
		Long: `Join attaches each boundary feature to the attribute record with the same
canonical province key. Every feature yields exactly one row; features without
a record are labeled "No Data". Use -o geojson for a FeatureCollection ready
for a map renderer.`,
		Args: cobra.NoArgs,
		Example: `  pangan join                       # One row per feature
  pangan join --summary             # Match statistics
  pangan join -o geojson > map.json # FeatureCollection`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}
			res, err := client.Join(cmd.Context())
			if err != nil {
				return err
			}

			format := output.Format(app.OutputFormat())
			if summary {
				return output.Render(cmd.OutOrStdout(), format, res.Stats, func(bool) any {
					return table.JoinStatsToTableData(res)
				})
			}
			return output.Render(cmd.OutOrStdout(), format, res, func(wide bool) any {
				return table.JoinToTableData(res, wide)
			})
		},
	}

	cmd.Flags().BoolVar(&summary, "summary", false, "show match statistics instead of rows")

	return cmd
}
