// Package profile implements the symbolic profile commands.
package profile

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/internal/appcontext"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/internal/cmd/output"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/internal/cmd/table"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/constants"
)

// NewCommand creates the profile command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "profile",
		GroupID: "analysis",
		Short:   "Show the symbolic profile of each cluster",
		Long: `Profile standardizes every indicator across provinces and labels each
cluster, and each outlier province on its own, per thematic dimension:

  ✅ favorable   ⚠️ neutral   ❌ unfavorable

Use -o wide for the label and mean z-score of every indicator.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}
			t, err := client.Profile(cmd.Context())
			if err != nil {
				return err
			}

			return output.Render(cmd.OutOrStdout(), output.Format(app.OutputFormat()), t, func(wide bool) any {
				return output.Document{
					Title: "Symbolic cluster profile",
					Sections: []output.Section{
						{Data: table.ProfileToTableData(t, wide)},
						{
							Heading: "Legend",
							Text:    fmt.Sprintf("%d clusters and outliers, %d indicators", len(t.Rows), len(t.Indicators)),
							Data:    table.LabelLegendToTableData(constants.NeutralBand),
						},
					},
				}
			})
		},
	}
}
