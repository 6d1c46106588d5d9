// Package regions implements the tabular province commands.
package regions

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/internal/appcontext"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/internal/cmd/output"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/internal/cmd/table"
	pkgregions "github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/regions"
)

// NewCommand creates the regions command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var (
		cluster string
		legend  bool
	)

	cmd := &cobra.Command{
		Use:     "regions",
		GroupID: "core",
		Short:   "List provinces with their cluster",
		Aliases: []string{"provinces", "ls"},
		Args:    cobra.NoArgs,
		Example: `  pangan regions                           # All provinces
  pangan regions --cluster "Cluster 0"     # Members of one cluster
  pangan regions --cluster noise -o wide   # Outliers with every indicator
  pangan regions --legend                  # Members per cluster label`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			format := output.Format(app.OutputFormat())

			if legend {
				l, err := client.Legend(ctx)
				if err != nil {
					return err
				}
				return output.Render(cmd.OutOrStdout(), format, l, func(bool) any {
					return table.LegendToTableData(l)
				})
			}

			ds, err := client.Attributes(ctx)
			if err != nil {
				return err
			}
			records := pkgregions.Filter(ds.Records, clusterLabel(cluster))
			app.Logger().Debug().Int("records", len(records)).Str("cluster", cluster).Msg("Listing regions")

			return output.Render(cmd.OutOrStdout(), format, records, func(wide bool) any {
				return table.RecordsToTableData(records, ds.Indicators, wide)
			})
		},
	}

	cmd.Flags().StringVarP(&cluster, "cluster", "c", "", `show one cluster label, e.g. "Cluster 0" or "noise"`)
	cmd.Flags().BoolVar(&legend, "legend", false, "group province names by cluster label")

	return cmd
}

// NewRegionCommand creates the region detail command.
func NewRegionCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "region <name>",
		GroupID: "core",
		Short:   "Show one province's indicators",
		Long: `Region looks a province up by any known spelling of its name, for
example "DI. Aceh", "NAD" or "Nanggroe Aceh Darussalam".`,
		Args: cobra.ExactArgs(1),
		Example: `  pangan region "Jawa Timur"
  pangan region NTB -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}
			r, err := client.Region(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return output.Render(cmd.OutOrStdout(), output.Format(app.OutputFormat()), r, func(bool) any {
				return table.RegionToTableData(*r)
			})
		},
	}
}

// clusterLabel accepts "noise" and bare ids as shorthands.
func clusterLabel(s string) string {
	switch {
	case s == "":
		return ""
	case strings.EqualFold(s, "noise"), strings.EqualFold(s, "outlier"):
		return pkgregions.NoiseLabel
	}
	if id, err := strconv.Atoi(s); err == nil {
		return pkgregions.ClusterLabel(id)
	}
	return s
}
