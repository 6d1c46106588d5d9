package profile

import (
	"github.com/spf13/cobra"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/internal/appcontext"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/internal/cmd/output"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/internal/cmd/table"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/indicators"
)

// NewAveragesCommand creates the averages command.
func NewAveragesCommand(app appcontext.Interface) *cobra.Command {
	var outliers []string

	cmd := &cobra.Command{
		Use:     "averages <dimension>",
		GroupID: "analysis",
		Short:   "Compare cluster means on one dimension",
		Long: `Averages shows the raw mean of each indicator of a dimension per cluster,
optionally next to the own values of selected outlier provinces.

Dimensions: general, availability, accessibility, utilization, stability.`,
		Args: cobra.ExactArgs(1),
		Example: `  pangan averages availability
  pangan averages stability --outlier Papua --outlier "DKI Jakarta"`,
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			var names []string
			for _, d := range indicators.Dimensions() {
				names = append(names, d.Short())
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}
			ap, err := client.Averages(cmd.Context(), indicators.Dimension(args[0]), outliers...)
			if err != nil {
				return err
			}
			return output.Render(cmd.OutOrStdout(), output.Format(app.OutputFormat()), ap, func(bool) any {
				return output.Document{
					Title:    "Cluster averages: " + ap.Dimension.String(),
					Sections: []output.Section{{Data: table.AveragesToTableData(ap)}},
				}
			})
		},
	}

	cmd.Flags().StringSliceVar(&outliers, "outlier", nil, "outlier province to compare (repeatable)")

	return cmd
}

// NewDistributionCommand creates the distribution command.
func NewDistributionCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "distribution <indicator>",
		GroupID: "analysis",
		Short:   "Show one indicator's values per cluster",
		Long: `Distribution lists the raw values of an indicator, grouped by cluster label.
The indicator is given by code (X1 to X14) or by its descriptive name.`,
		Args: cobra.ExactArgs(1),
		Example: `  pangan distribution X7
  pangan distribution "Prevalensi Balita Wasting" -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ind, err := indicators.Lookup(args[0])
			if err != nil {
				return err
			}
			client, err := app.Client()
			if err != nil {
				return err
			}
			dv, err := client.Distribution(cmd.Context(), ind.Code)
			if err != nil {
				return err
			}
			return output.Render(cmd.OutOrStdout(), output.Format(app.OutputFormat()), dv, func(bool) any {
				return table.DistributionToTableData(dv)
			})
		},
	}
}
