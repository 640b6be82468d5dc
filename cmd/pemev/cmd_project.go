package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ja7ad/pemev/pkg/report"
	"github.com/ja7ad/pemev/pkg/scenario"
)

func newProjectCmd(a *app) *cobra.Command {
	var flags struct {
		growth float64
		years  float64
	}
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project future energy use without ethical scoring",
		Long: `Project multiplies current power by a growth factor and reports the resulting
Kardashev level, progress toward Type I and the remaining energy gap.

Without --growth the reference outlooks are projected.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := a.build(cmd.Context())
			if err != nil {
				return err
			}

			outlooks := scenario.Outlooks()
			if cmd.Flags().Changed("growth") {
				outlooks = []scenario.Outlook{{GrowthFactor: flags.growth, Years: flags.years}}
			}

			projections := make([]scenario.Projection, 0, len(outlooks))
			for _, o := range outlooks {
				p, err := st.eval.Project(o.GrowthFactor, o.Years)
				if err != nil {
					return fmt.Errorf("project: %w", err)
				}
				p.Name = o.Name
				projections = append(projections, p)
			}

			out := cmd.OutOrStdout()
			switch a.output {
			case report.Text:
				return writeProjections(out, projections)
			case report.JSON, report.YAML:
				d := st.document()
				d.Projections = projections
				return d.Encode(out, a.output)
			default:
				return unsupported(cmd, a.output)
			}
		},
	}
	f := cmd.Flags()
	f.Float64VarP(&flags.growth, "growth", "g", 1000, "energy growth factor (> 0)")
	f.Float64VarP(&flags.years, "years", "y", 50, "time horizon in years (>= 0)")
	return cmd
}

func writeProjections(w io.Writer, projections []scenario.Projection) error {
	for i, p := range projections {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if p.Name != "" {
			if _, err := fmt.Fprintf(w, "=== %s ===\n", p.Name); err != nil {
				return err
			}
		}
		if err := report.WriteProjection(w, p); err != nil {
			return err
		}
	}
	return nil
}
