// Package report renders baselines, projections and evaluations for people
// (text blocks, aligned tables, HTML) and for tools (CSV, JSON, YAML, SVG).
// It only formats; every number comes from pkg/scenario or pkg/landscape.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ja7ad/pemev/pkg/scenario"
)

// ErrFormat is returned for an unknown output format.
var ErrFormat = errors.New("report: unknown format")

// Format selects an output encoding.
type Format string

const (
	Text  Format = "text"
	Table Format = "table"
	JSON  Format = "json"
	YAML  Format = "yaml"
	CSV   Format = "csv"
	SVG   Format = "svg"
	HTML  Format = "html"
)

// ParseFormat accepts a format name in any case. Empty means Text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return Text, nil
	case Text, Table, JSON, YAML, CSV, SVG, HTML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrFormat, s)
	}
}

// WriteBaseline prints the baseline block.
func WriteBaseline(w io.Writer, s scenario.Summary) error {
	var b strings.Builder
	fmt.Fprintf(&b, "PEMEV Baseline - %s\n", s.Date.Format("2006-01-02"))
	fmt.Fprintf(&b, "Current energy use: %s (%s)\n", s.CurrentPower.Scientific(), s.CurrentPower.Humanized())
	fmt.Fprintf(&b, "Type I target: %s (%s)\n", s.TargetPower.Scientific(), s.TargetPower.Humanized())
	fmt.Fprintf(&b, "Full progress at: %s\n", s.FullProgressPower.Scientific())
	fmt.Fprintf(&b, "Energy gap: ~%.0fx needed\n", s.GapFactor)
	fmt.Fprintf(&b, "Current Kardashev: %.3f (stated ~%.2f, drift %+.4f)\n", s.Index, s.StatedIndex, s.AnchorDrift)
	fmt.Fprintf(&b, "Progress to Type I: %.1f%%\n", s.ProgressPct)
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteProjection prints a growth projection without ethical scoring.
func WriteProjection(w io.Writer, p scenario.Projection) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Scenario: %gx energy growth over ~%g years\n", p.GrowthFactor, p.Years)
	fmt.Fprintf(&b, "Future energy use: %s (%s)\n", p.FuturePower.Scientific(), p.FuturePower.Humanized())
	fmt.Fprintf(&b, "Future Kardashev level: %.3f\n", p.Index)
	fmt.Fprintf(&b, "Progress to Type I: %.1f%%\n", p.ProgressPct)
	fmt.Fprintf(&b, "Remaining energy gap: ~%.0fx\n", p.RemainingGap)
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteEvaluation prints one evaluation. name may be empty.
func WriteEvaluation(w io.Writer, name string, r scenario.Result) error {
	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "[%s]\n", name)
	}
	fmt.Fprintf(&b, "Ethical Evaluation: %gx growth over ~%g years\n", r.GrowthFactor, r.Years)
	fmt.Fprintf(&b, "Future energy use: %s\n", r.FuturePower.Scientific())
	fmt.Fprintf(&b, "Projected Kardashev: %.3f (progress %.4f)\n", r.Index, r.Progress)
	fmt.Fprintf(&b, "Equity: %.2f | Sustainability: %.2f", r.Equity, r.Sustainability)
	if r.UsedHints {
		b.WriteString(" (real-world hints)")
	}
	b.WriteString("\n")
	if r.Bonus > 0 {
		fmt.Fprintf(&b, "Robustness bonus: +%.2f\n", r.Bonus)
	}
	fmt.Fprintf(&b, "Ethical score: %.3f (threshold %.2f) | Remorse horizon: %.2f\n", r.Score, r.Threshold, r.RemorseHorizon)
	fmt.Fprintf(&b, "Guidance: %s\n", r.Classification.Guidance())
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteEntries prints every batch entry as a text block separated by blank
// lines. Failed entries print their error.
func WriteEntries(w io.Writer, entries []scenario.Entry) error {
	for i, e := range entries {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if e.Err != nil {
			if _, err := fmt.Fprintf(w, "[%s]\nerror: %v\n", e.Name, e.Err); err != nil {
				return err
			}
			continue
		}
		if err := WriteEvaluation(w, e.Name, e.Result); err != nil {
			return err
		}
	}
	return nil
}
