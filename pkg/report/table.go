package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/ja7ad/pemev/pkg/landscape"
	"github.com/ja7ad/pemev/pkg/scenario"
	"github.com/ja7ad/pemev/pkg/util"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// WriteTable prints entries as an aligned table.
func WriteTable(w io.Writer, entries []scenario.Entry) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "NAME\tGROWTH\tYEARS\tK\tPROGRESS\tEQUITY\tSUST\tBONUS\tSCORE\tHORIZON\tCLASS")
	fmt.Fprintln(tw, "----\t------\t-----\t-\t--------\t------\t----\t-----\t-----\t-------\t-----")
	for _, e := range entries {
		if e.Err != nil {
			fmt.Fprintf(tw, "%s\t-\t-\t-\t-\t-\t-\t-\t-\t-\tERROR: %v\n", e.Name, e.Err)
			continue
		}
		r := e.Result
		fmt.Fprintf(tw, "%s\t%g\t%g\t%.3f\t%.4f\t%.2f\t%.2f\t%.2f\t%.3f\t%.3f\t%s\n",
			e.Name, r.GrowthFactor, r.Years, r.Index, r.Progress,
			r.Equity, r.Sustainability, r.Bonus, r.Score, r.RemorseHorizon, r.Classification)
	}
	return tw.Flush()
}

var entryHeader = []string{
	"name", "growth_factor", "years", "future_power_w", "kardashev_index", "progress",
	"equity", "sustainability", "used_hints", "robustness_bonus", "ethical_score",
	"remorse_horizon", "threshold", "classification", "error",
}

// WriteCSV writes entries as CSV with a header row.
func WriteCSV(w io.Writer, entries []scenario.Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(entryHeader); err != nil {
		return err
	}
	for _, e := range entries {
		var rec []string
		if e.Err != nil {
			rec = make([]string, len(entryHeader))
			rec[0] = e.Name
			rec[len(rec)-1] = e.Err.Error()
		} else {
			r := e.Result
			rec = []string{
				e.Name,
				util.FmtFloat(r.GrowthFactor), util.FmtFloat(r.Years),
				util.FmtFloat(r.FuturePower.ToFloat64()), util.FmtFloat(r.Index), util.FmtFloat(r.Progress),
				util.FmtFloat(r.Equity), util.FmtFloat(r.Sustainability),
				strconv.FormatBool(r.UsedHints),
				util.FmtFloat(r.Bonus), util.FmtFloat(r.Score),
				util.FmtFloat(r.RemorseHorizon), util.FmtFloat(r.Threshold),
				r.Classification.String(), "",
			}
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCurvesCSV writes one row per curve point.
func WriteCurvesCSV(w io.Writer, curves []landscape.Curve) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"curve", "equity", "sustainability", "growth_factor", "score"}); err != nil {
		return err
	}
	for _, c := range curves {
		for _, p := range c.Points {
			if err := cw.Write([]string{
				c.Name, util.FmtFloat(c.Equity), util.FmtFloat(c.Sustainability),
				util.FmtFloat(p.Growth), util.FmtFloat(p.Score),
			}); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCurvesTable summarizes each curve: its score range and the first
// growth factor reaching threshold.
func WriteCurvesTable(w io.Writer, curves []landscape.Curve, threshold float64) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "CURVE\tEQUITY\tSUST\tMIN\tMAX\tCROSSES AT")
	fmt.Fprintln(tw, "-----\t------\t----\t---\t---\t----------")
	for _, c := range curves {
		lo, _ := c.Min()
		hi, _ := c.Max()
		cross := "never"
		if p, ok := c.FirstAbove(threshold); ok {
			cross = fmt.Sprintf("%.1fx", p.Growth)
		}
		fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%.3f\t%.3f\t%s\n",
			c.Name, c.Equity, c.Sustainability, lo.Score, hi.Score, cross)
	}
	return tw.Flush()
}
