package scenario

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja7ad/pemev/pkg/kardashev"
)

func TestSummary(t *testing.T) {
	s, err := newEvaluator().Summary()
	require.NoError(t, err)

	assert.Equal(t, 2026, s.Date.Year())
	assert.InDelta(t, 0.73617, s.Index, 1e-5)
	assert.Equal(t, 0.73, s.StatedIndex)
	assert.InDelta(t, 0.00617, s.AnchorDrift, 1e-5)
	assert.InDelta(t, 73.617, s.ProgressPct, 1e-3)
	assert.InDelta(t, 7565.2, s.GapFactor, 0.1)
	assert.InEpsilon(t, 2.3e13, s.CurrentPower.ToFloat64(), 1e-12)
	assert.InEpsilon(t, 1e16, s.FullProgressPower.ToFloat64(), 1e-12)
}

func TestProject(t *testing.T) {
	ev := newEvaluator()

	p, err := ev.Project(1000, 50)
	require.NoError(t, err)
	assert.InEpsilon(t, 2.3e16, p.FuturePower.ToFloat64(), 1e-12)
	assert.InDelta(t, 1.03617, p.Index, 1e-5)
	assert.InDelta(t, 103.617, p.ProgressPct, 1e-3)
	assert.InDelta(t, 7.565, p.RemainingGap, 1e-3)

	_, err = ev.Project(0, 50)
	assert.True(t, errors.Is(err, kardashev.ErrDomain))
	_, err = ev.Project(10, -1)
	assert.True(t, errors.Is(err, kardashev.ErrDomain))
}

func TestOutlooks(t *testing.T) {
	ev := newEvaluator()
	out := Outlooks()
	require.Len(t, out, 3)

	last, err := ev.Project(out[2].GrowthFactor, out[2].Years)
	require.NoError(t, err)
	assert.InDelta(t, 1.12408, last.Index, 1e-5)
	assert.InDelta(t, 1.0, last.RemainingGap, 1e-3, "the last outlook closes the energy gap")

	near, err := ev.Project(out[0].GrowthFactor, out[0].Years)
	require.NoError(t, err)
	assert.InDelta(t, 83.617, near.ProgressPct, 1e-3)
	assert.Empty(t, near.Name)
}

func TestCurrentState(t *testing.T) {
	res, err := newEvaluator().CurrentState()
	require.NoError(t, err)
	assert.InDelta(t, 0.335196, res.Score, 1e-6)
	assert.InDelta(t, -0.335196, res.RemorseHorizon, 1e-6)
	assert.Equal(t, Reject, res.Classification)
	assert.True(t, res.UsedHints)
	assert.Equal(t, 0.35, res.Equity)
	assert.Equal(t, 0.65, res.Sustainability)
}

func TestPresets(t *testing.T) {
	names := make([]string, 0, 4)
	for _, p := range Presets() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"current", "balanced", "risky", "breakthrough"}, names)

	p, ok := Preset("balanced")
	require.True(t, ok)
	assert.Equal(t, 1000.0, p.GrowthFactor)
	assert.Equal(t, 0.95, *p.Equity)

	_, ok = Preset("nope")
	assert.False(t, ok)

	// presets hand out independent copies
	p.GrowthFactor = 1
	again, _ := Preset("balanced")
	assert.Equal(t, 1000.0, again.GrowthFactor)
}

func TestEvaluateBatch(t *testing.T) {
	yes, no := true, false
	items := []NamedScenario{
		{Name: "balanced", Scenario: Path(1000, 50, 0.95, 0.98)},
		{Scenario: Path(100, 50, 0.95, 0.98), Robust: &yes},
		{Name: "broken", Scenario: Path(-1, 50, 0.95, 0.98)},
		{Name: "plain", Scenario: Path(100, 50, 0.95, 0.98), Robust: &no},
	}

	out := newEvaluator().EvaluateBatch(items)
	require.Len(t, out, 4)

	assert.Equal(t, "balanced", out[0].Name)
	require.NoError(t, out[0].Err)
	assert.Equal(t, Recommend, out[0].Result.Classification)

	assert.Equal(t, "scenario-2", out[1].Name)
	require.NoError(t, out[1].Err)
	assert.InDelta(t, 1.10147, out[1].Result.Score, 1e-5)
	assert.Equal(t, Recommend, out[1].Result.Classification)

	assert.Equal(t, "broken", out[2].Name)
	assert.True(t, errors.Is(out[2].Err, kardashev.ErrDomain))
	assert.Equal(t, Result{}, out[2].Result)

	require.NoError(t, out[3].Err)
	assert.Equal(t, 0.0, out[3].Result.Bonus)
	assert.Equal(t, Reject, out[3].Result.Classification)
}

func TestEvaluateBatch_RowOverrideBeatsCallOption(t *testing.T) {
	no := false
	out := newEvaluator().EvaluateBatch(
		[]NamedScenario{{Name: "a", Scenario: Path(100, 50, 0.95, 0.98), Robust: &no}},
		WithRobustness(3),
	)
	require.Len(t, out, 1)
	assert.Equal(t, 0.0, out[0].Result.Bonus)
}

func TestParseBatch(t *testing.T) {
	data := []byte(`
scenarios:
  - name: balanced
    growth_factor: 1000
    years: 50
    equity: 0.95
    sustainability: 0.98
  - name: hinted
    growth_factor: 10
    years: 5
    robust: true
`)
	items, err := ParseBatch(data)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "balanced", items[0].Name)
	assert.Equal(t, 1000.0, items[0].GrowthFactor)
	require.NotNil(t, items[0].Equity)
	assert.Equal(t, 0.95, *items[0].Equity)
	assert.Nil(t, items[0].Robust)

	assert.Nil(t, items[1].Equity)
	assert.Nil(t, items[1].Sustainability)
	require.NotNil(t, items[1].Robust)
	assert.True(t, *items[1].Robust)
}

func TestParseBatch_Errors(t *testing.T) {
	_, err := ParseBatch([]byte("scenarios:\n  - name: x\n    growht: 3\n"))
	assert.Error(t, err, "unknown fields are rejected")

	items, err := ParseBatch(nil)
	assert.NoError(t, err)
	assert.Empty(t, items)

	items, err = ParseBatch([]byte("# nothing here\n"))
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestLoadBatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "batch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scenarios:\n  - name: one\n    growth_factor: 2\n    years: 1\n"), 0o644))

	items, err := LoadBatch(path)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "one", items[0].Name)

	_, err = LoadBatch(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
