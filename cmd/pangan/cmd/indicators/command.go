// Package indicators implements the indicator catalog command.
package indicators

import (
	"github.com/spf13/cobra"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/internal/appcontext"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/internal/cmd/output"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/internal/cmd/table"
	pkgindicators "github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/indicators"
)

// NewCommand creates the indicators command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var dimension string

	cmd := &cobra.Command{
		Use:     "indicators [code]",
		GroupID: "reference",
		Short:   "Describe the fourteen food-security indicators",
		Long: `Indicators lists the catalog of indicators with their unit, polarity and
dimension. With -o markdown the catalog is written as one table per dimension.`,
		Args: cobra.MaximumNArgs(1),
		Example: `  pangan indicators                      # Whole catalog
  pangan indicators X9 -o wide           # One indicator with its definition
  pangan indicators -d stability         # One dimension
  pangan indicators -o markdown > ind.md # Reference document`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := output.Format(app.OutputFormat())

			if len(args) == 1 {
				ind, err := pkgindicators.Lookup(args[0])
				if err != nil {
					return err
				}
				list := []pkgindicators.Indicator{ind}
				return output.Render(cmd.OutOrStdout(), format, ind, func(wide bool) any {
					return table.IndicatorsToTableData(list, wide)
				})
			}

			dims := pkgindicators.Dimensions()
			if dimension != "" {
				d, err := pkgindicators.ParseDimension(dimension)
				if err != nil {
					return err
				}
				dims = []pkgindicators.Dimension{d}
			}

			var all []pkgindicators.Indicator
			for _, d := range dims {
				all = append(all, pkgindicators.InDimension(d)...)
			}

			return output.Render(cmd.OutOrStdout(), format, all, func(wide bool) any {
				if format != output.FormatMarkdown {
					return table.IndicatorsToTableData(all, wide)
				}
				doc := output.Document{Title: "Food-security indicators"}
				for _, d := range dims {
					doc.Sections = append(doc.Sections, output.Section{
						Heading: d.String(),
						Data:    table.IndicatorsToTableData(pkgindicators.InDimension(d), true),
					})
				}
				return doc
			})
		},
	}

	cmd.Flags().StringVarP(&dimension, "dimension", "d", "", "show one dimension only")

	return cmd
}
