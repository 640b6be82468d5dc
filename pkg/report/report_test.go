package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ja7ad/pemev/pkg/config"
	"github.com/ja7ad/pemev/pkg/landscape"
	"github.com/ja7ad/pemev/pkg/scenario"
	"github.com/ja7ad/pemev/pkg/weights"
)

func evaluator() *scenario.Evaluator { return scenario.New(config.Default(), nil, nil) }

func batch(t *testing.T) []scenario.Entry {
	t.Helper()
	items := append(scenario.Presets(), scenario.NamedScenario{Name: "broken", Scenario: scenario.Path(0, 1, 0.5, 0.5)})
	return evaluator().EvaluateBatch(items)
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{"": Text, "TEXT": Text, " json ": JSON, "yaml": YAML, "csv": CSV, "svg": SVG, "html": HTML, "table": Table}
	for in, want := range cases {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("xml")
	assert.True(t, errors.Is(err, ErrFormat))
}

func TestWriteBaseline(t *testing.T) {
	s, err := evaluator().Summary()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteBaseline(&buf, s))
	out := buf.String()

	assert.Contains(t, out, "PEMEV Baseline - 2026-01-01")
	assert.Contains(t, out, "Current energy use: 2.30e+13 W (23.00 TW)")
	assert.Contains(t, out, "Type I target: 1.74e+17 W")
	assert.Contains(t, out, "Full progress at: 1.00e+16 W")
	assert.Contains(t, out, "Energy gap: ~7565x needed")
	assert.Contains(t, out, "Current Kardashev: 0.736 (stated ~0.73, drift +0.0062)")
	assert.Contains(t, out, "Progress to Type I: 73.6%")
}

func TestWriteProjection(t *testing.T) {
	p, err := evaluator().Project(1000, 50)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteProjection(&buf, p))
	out := buf.String()

	assert.Contains(t, out, "Scenario: 1000x energy growth over ~50 years")
	assert.Contains(t, out, "Future energy use: 2.30e+16 W")
	assert.Contains(t, out, "Future Kardashev level: 1.036")
	assert.Contains(t, out, "Progress to Type I: 103.6%")
	assert.Contains(t, out, "Remaining energy gap: ~8x")
}

func TestWriteEvaluation(t *testing.T) {
	res, err := evaluator().Evaluate(scenario.Path(1000, 50, 0.95, 0.98), scenario.WithRobustness(3))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteEvaluation(&buf, "balanced", res))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "[balanced]\n"))
	assert.Contains(t, out, "Ethical Evaluation: 1000x growth over ~50 years")
	assert.Contains(t, out, "Equity: 0.95 | Sustainability: 0.98\n")
	assert.Contains(t, out, "Robustness bonus: +0.20")
	assert.Contains(t, out, "Ethical score: 1.174 (threshold 0.95) | Remorse horizon: -1.17")
	assert.Contains(t, out, "Guidance: RECOMMEND — Aligned with remorse-free flourishing")

	cur, err := evaluator().CurrentState()
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, WriteEvaluation(&buf, "", cur))
	assert.Contains(t, buf.String(), "(real-world hints)")
	assert.NotContains(t, buf.String(), "Robustness bonus")
	assert.Contains(t, buf.String(), "Guidance: REJECT — Risk of misalignment or future remorse")
}

func TestWriteEntries(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteEntries(&buf, batch(t)))
	out := buf.String()
	assert.Equal(t, 5, strings.Count(out, "["))
	assert.Contains(t, out, "[broken]\nerror: growth_factor=0: must be > 0")
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, batch(t)))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.Contains(t, lines[3], "balanced")
	assert.Contains(t, lines[3], "RECOMMEND")
	assert.Contains(t, lines[4], "REJECT")
	assert.Contains(t, lines[6], "ERROR:")
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, batch(t)))

	recs, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 6)
	assert.Equal(t, entryHeader, recs[0])

	balanced := recs[2]
	assert.Equal(t, "balanced", balanced[0])
	assert.Equal(t, "1000", balanced[1])
	assert.Equal(t, "RECOMMEND", balanced[13])
	assert.Empty(t, balanced[14])

	broken := recs[5]
	assert.Equal(t, "broken", broken[0])
	assert.Empty(t, broken[1])
	assert.Contains(t, broken[14], "growth_factor")
}

func TestDocument_Encode(t *testing.T) {
	ev := evaluator()
	s, err := ev.Summary()
	require.NoError(t, err)

	d := NewDocument(weights.Default(), ev.Threshold())
	d.Provenance = weights.FromPrimary.String()
	d.Baseline = &s
	d.Results = Rows(batch(t))

	_, err = uuid.Parse(d.RunID)
	require.NoError(t, err)
	assert.NotEqual(t, d.RunID, NewDocument(weights.Default(), 0.95).RunID)

	var js bytes.Buffer
	require.NoError(t, d.Encode(&js, JSON))
	var back map[string]any
	require.NoError(t, json.Unmarshal(js.Bytes(), &back))
	assert.Equal(t, d.RunID, back["run_id"])
	assert.Equal(t, "primary", back["weight_provenance"])
	results := back["results"].([]any)
	require.Len(t, results, 5)
	assert.Equal(t, "RECOMMEND", results[1].(map[string]any)["result"].(map[string]any)["classification"])
	assert.Contains(t, results[4].(map[string]any)["error"], "growth_factor")

	var ys bytes.Buffer
	require.NoError(t, d.Encode(&ys, YAML))
	var ydoc struct {
		RunID   string `yaml:"run_id"`
		Results []struct {
			Name   string `yaml:"name"`
			Result *struct {
				Classification string  `yaml:"classification"`
				Score          float64 `yaml:"ethical_score"`
			} `yaml:"result"`
		} `yaml:"results"`
	}
	require.NoError(t, yaml.Unmarshal(ys.Bytes(), &ydoc))
	assert.Equal(t, d.RunID, ydoc.RunID)
	require.Len(t, ydoc.Results, 5)
	assert.InDelta(t, 0.974, ydoc.Results[1].Result.Score, 1e-9)
	assert.Nil(t, ydoc.Results[4].Result)

	assert.True(t, errors.Is(d.Encode(&ys, CSV), ErrFormat))
}

func curves() []landscape.Curve {
	s := landscape.NewSampler(config.Default().Baseline, weights.Default())
	return s.Curves(landscape.DefaultFactors(), config.Default().Hints, 0.2)
}

func TestWriteCurves(t *testing.T) {
	cs := curves()

	var buf bytes.Buffer
	require.NoError(t, WriteCurvesCSV(&buf, cs))
	recs, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, recs, 1+3*landscape.DefaultPoints)
	assert.Equal(t, []string{"high", "0.95", "0.98", "1"}, recs[1][:4])

	buf.Reset()
	require.NoError(t, WriteCurvesTable(&buf, cs, 0.95))
	out := buf.String()
	assert.Contains(t, out, "high")
	assert.Contains(t, out, "1.174")
	assert.Contains(t, out, "never")
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, Chart{Threshold: 0.95, Curves: curves(), Subtitle: "weights <default>"}))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, "<svg xmlns=\"http://www.w3.org/2000/svg\"")
	assert.Equal(t, 3, strings.Count(out, "<polyline"))
	assert.Contains(t, out, `class="threshold"`)
	assert.Contains(t, out, `class="zone"`)
	assert.Contains(t, out, "Ethical threshold (0.95)")
	assert.Contains(t, out, "Remorse-free zone")
	assert.Contains(t, out, "10000x")
	assert.Contains(t, out, "weights &lt;default&gt;")
	assert.NotContains(t, out, "<default>")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
}

func TestWriteSVG_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, Chart{Threshold: 0.95}))
	assert.Contains(t, buf.String(), "<svg")
	assert.NotContains(t, buf.String(), "<polyline")
	assert.NotContains(t, buf.String(), "NaN")
}

func TestWriteHTML(t *testing.T) {
	d := NewDocument(weights.Default(), 0.95)
	d.Results = Rows(batch(t))

	var chart bytes.Buffer
	require.NoError(t, WriteSVG(&chart, Chart{Threshold: 0.95, Curves: curves()}))

	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, d, chart.Bytes()))
	out := buf.String()

	assert.Contains(t, out, "<title>PEMEV Report</title>")
	assert.Contains(t, out, d.RunID)
	assert.Contains(t, out, `<tr class="RECOMMEND">`)
	assert.Contains(t, out, "error: growth_factor=0")
	assert.Contains(t, out, "<svg")
	assert.NotContains(t, out, "<?xml")

	buf.Reset()
	require.NoError(t, WriteHTML(&buf, d, nil))
	assert.NotContains(t, buf.String(), "Ethical landscape")
}
