package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ja7ad/pemev/pkg/report"
)

func newBaselineCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "baseline",
		Short: "Show the current energy baseline and progress toward Type I",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := a.build(cmd.Context())
			if err != nil {
				return err
			}
			s, err := st.eval.Summary()
			if err != nil {
				return fmt.Errorf("baseline: %w", err)
			}

			out := cmd.OutOrStdout()
			switch a.output {
			case report.Text:
				return report.WriteBaseline(out, s)
			case report.JSON, report.YAML:
				d := st.document()
				d.Baseline = &s
				return d.Encode(out, a.output)
			default:
				return unsupported(cmd, a.output)
			}
		},
	}
}

func unsupported(cmd *cobra.Command, f report.Format) error {
	return fmt.Errorf("%w: %s does not support %q", report.ErrFormat, cmd.Name(), f)
}
