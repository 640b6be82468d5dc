package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Presets returns the reference growth paths.
func Presets() []NamedScenario {
	return []NamedScenario{
		{Name: "current", Scenario: Hinted(1, 0)},
		{Name: "balanced", Scenario: Path(1000, 50, 0.95, 0.98)},
		{Name: "risky", Scenario: Path(2000, 40, 0.5, 0.6)},
		{Name: "breakthrough", Scenario: Path(5000, 25, 0.92, 0.95)},
	}
}

// Preset looks up a reference path by name.
func Preset(name string) (NamedScenario, bool) {
	for _, p := range Presets() {
		if p.Name == name {
			return p, true
		}
	}
	return NamedScenario{}, false
}

// Entry is one row of a batch run. Exactly one of Result and Err is set.
type Entry struct {
	Name   string
	Result Result
	Err    error
}

// EvaluateBatch evaluates every scenario independently; a failing row does
// not stop the batch.
func (e *Evaluator) EvaluateBatch(items []NamedScenario, opts ...Option) []Entry {
	out := make([]Entry, 0, len(items))
	for i, it := range items {
		name := it.Name
		if name == "" {
			name = fmt.Sprintf("scenario-%d", i+1)
		}
		rowOpts := append([]Option(nil), opts...)
		if it.Robust != nil {
			if *it.Robust {
				rowOpts = append(rowOpts, WithRobustness(e.robustness.Stakeholders))
			} else {
				rowOpts = append(rowOpts, WithoutRobustness())
			}
		}
		res, err := e.Evaluate(it.Scenario, rowOpts...)
		if err != nil {
			e.log.Warn("scenario rejected as invalid", "name", name, "err", err)
			out = append(out, Entry{Name: name, Err: err})
			continue
		}
		out = append(out, Entry{Name: name, Result: res})
	}
	return out
}

type batchFile struct {
	Scenarios []NamedScenario `yaml:"scenarios"`
}

// LoadBatch reads a YAML file of the form
//
//	scenarios:
//	  - name: balanced
//	    growth_factor: 1000
//	    years: 50
//	    equity: 0.95
//	    sustainability: 0.98
//	    robust: true
func LoadBatch(path string) ([]NamedScenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read batch: %w", err)
	}
	return ParseBatch(data)
}

// ParseBatch decodes the LoadBatch format.
func ParseBatch(data []byte) ([]NamedScenario, error) {
	var f batchFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("parse batch yaml: %w", err)
	}
	return f.Scenarios, nil
}
