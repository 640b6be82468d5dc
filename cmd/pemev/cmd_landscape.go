package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ja7ad/pemev/pkg/ethics"
	"github.com/ja7ad/pemev/pkg/landscape"
	"github.com/ja7ad/pemev/pkg/report"
)

func newLandscapeCmd(a *app) *cobra.Command {
	var flags struct {
		points   int
		startExp float64
		stopExp  float64
		out      string
	}
	cmd := &cobra.Command{
		Use:   "landscape",
		Short: "Sample the ethical score over growth factors and chart it",
		Long: `Landscape samples three equity/sustainability profiles (high, medium and the
current real-world hints) over log-spaced growth factors and renders them
with the threshold line and the remorse-free zone above it.

The default output is an SVG chart; --format csv|json|yaml dumps the samples,
--format table summarizes each curve and --format html embeds the chart in a
report page.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if flags.points <= 0 {
				return fmt.Errorf("landscape: --points must be > 0")
			}
			format := a.output
			if !cmd.Flags().Changed("format") {
				format = report.SVG
			}

			st, err := a.build(cmd.Context())
			if err != nil {
				return err
			}
			var bonus float64
			if st.cfg.Robustness.Enabled {
				if bonus, err = ethics.RobustnessBonus(st.cfg.Robustness.Stakeholders); err != nil {
					return err
				}
			}

			sampler := landscape.NewSampler(st.cfg.Baseline, st.scorer.Weights())
			factors := landscape.LogSpace(flags.startExp, flags.stopExp, flags.points)
			curves := sampler.Curves(factors, st.cfg.Hints, bonus)
			chart := report.Chart{
				Threshold: st.cfg.Threshold,
				Curves:    curves,
				Subtitle:  fmt.Sprintf("weights %s, robustness bonus %.2f", st.scorer.Weights(), bonus),
			}

			w, closeFn, err := openOutput(cmd.OutOrStdout(), flags.out)
			if err != nil {
				return err
			}
			switch format {
			case report.SVG:
				err = report.WriteSVG(w, chart)
			case report.CSV:
				err = report.WriteCurvesCSV(w, curves)
			case report.Text, report.Table:
				err = report.WriteCurvesTable(w, curves, st.cfg.Threshold)
			case report.JSON, report.YAML:
				d := st.document()
				d.Curves = curves
				err = d.Encode(w, format)
			case report.HTML:
				var svg bytes.Buffer
				if err = report.WriteSVG(&svg, chart); err == nil {
					err = report.WriteHTML(w, st.document(), svg.Bytes())
				}
			default:
				err = unsupported(cmd, format)
			}
			if cerr := closeFn(); err == nil {
				err = cerr
			}
			return err
		},
	}
	f := cmd.Flags()
	f.IntVarP(&flags.points, "points", "n", landscape.DefaultPoints, "samples per curve")
	f.Float64Var(&flags.startExp, "start-exp", landscape.DefaultStartExp, "first growth factor as a power of ten")
	f.Float64Var(&flags.stopExp, "stop-exp", landscape.DefaultStopExp, "last growth factor as a power of ten")
	f.StringVarP(&flags.out, "out", "o", "", "write to a file instead of stdout")
	return cmd
}
