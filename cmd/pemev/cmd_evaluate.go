package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ja7ad/pemev/pkg/report"
	"github.com/ja7ad/pemev/pkg/scenario"
)

func newEvaluateCmd(a *app) *cobra.Command {
	var flags struct {
		preset         string
		growth         float64
		years          float64
		equity         float64
		sustainability float64
	}
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score a growth scenario and classify it",
		Long: `Evaluate scores one growth scenario: future Kardashev progress weighted with
equity and sustainability, plus the robustness bonus when enabled.

Equity and sustainability left unset are taken from the real-world hints.
--preset selects a reference path (current, balanced, risky, breakthrough);
explicit flags override the preset's values.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var ns scenario.NamedScenario
			if flags.preset != "" {
				p, ok := scenario.Preset(flags.preset)
				if !ok {
					return fmt.Errorf("unknown preset %q", flags.preset)
				}
				ns = p
			} else {
				ns = scenario.NamedScenario{Scenario: scenario.Hinted(flags.growth, flags.years)}
			}

			f := cmd.Flags()
			if f.Changed("growth") || flags.preset == "" {
				ns.GrowthFactor = flags.growth
			}
			if f.Changed("years") || flags.preset == "" {
				ns.Years = flags.years
			}
			if f.Changed("equity") {
				eq := flags.equity
				ns.Equity = &eq
			}
			if f.Changed("sustainability") {
				s := flags.sustainability
				ns.Sustainability = &s
			}

			st, err := a.build(cmd.Context())
			if err != nil {
				return err
			}
			res, err := st.eval.Evaluate(ns.Scenario)
			if err != nil {
				return fmt.Errorf("evaluate: %w", err)
			}
			return a.writeResults(cmd.OutOrStdout(), cmd, st, []scenario.Entry{{Name: ns.Name, Result: res}})
		},
	}
	f := cmd.Flags()
	f.StringVarP(&flags.preset, "preset", "p", "", "reference path: current, balanced, risky, breakthrough")
	f.Float64VarP(&flags.growth, "growth", "g", 1000, "energy growth factor (> 0)")
	f.Float64VarP(&flags.years, "years", "y", 50, "time horizon in years (>= 0)")
	f.Float64Var(&flags.equity, "equity", 0, "equity score in [0,1] (default: real-world hint)")
	f.Float64Var(&flags.sustainability, "sustainability", 0, "sustainability score in [0,1] (default: real-world hint)")
	return cmd
}

func newCurrentCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Evaluate the present state (no growth) with real-world hints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := a.build(cmd.Context())
			if err != nil {
				return err
			}
			res, err := st.eval.CurrentState()
			if err != nil {
				return fmt.Errorf("current: %w", err)
			}
			return a.writeResults(cmd.OutOrStdout(), cmd, st, []scenario.Entry{{Name: "current", Result: res}})
		},
	}
}

// writeResults renders entries in the selected output format.
func (a *app) writeResults(w io.Writer, cmd *cobra.Command, st *stack, entries []scenario.Entry) error {
	switch a.output {
	case report.Text:
		return report.WriteEntries(w, entries)
	case report.Table:
		return report.WriteTable(w, entries)
	case report.CSV:
		return report.WriteCSV(w, entries)
	case report.JSON, report.YAML:
		d := st.document()
		d.Results = report.Rows(entries)
		return d.Encode(w, a.output)
	case report.HTML:
		d := st.document()
		d.Results = report.Rows(entries)
		return report.WriteHTML(w, d, nil)
	default:
		return unsupported(cmd, a.output)
	}
}
