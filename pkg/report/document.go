package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/ja7ad/pemev/pkg/landscape"
	"github.com/ja7ad/pemev/pkg/scenario"
	"github.com/ja7ad/pemev/pkg/weights"
)

// Row is one named evaluation, or the error that prevented it.
type Row struct {
	Name   string           `json:"name" yaml:"name"`
	Result *scenario.Result `json:"result,omitempty" yaml:"result,omitempty"`
	Error  string           `json:"error,omitempty" yaml:"error,omitempty"`
}

// Rows converts batch entries.
func Rows(entries []scenario.Entry) []Row {
	out := make([]Row, 0, len(entries))
	for _, e := range entries {
		row := Row{Name: e.Name}
		if e.Err != nil {
			row.Error = e.Err.Error()
		} else {
			r := e.Result
			row.Result = &r
		}
		out = append(out, row)
	}
	return out
}

// Document is the machine-readable report of a run.
type Document struct {
	RunID       string         `json:"run_id" yaml:"run_id"`
	GeneratedAt time.Time      `json:"generated_at" yaml:"generated_at"`
	Weights     weights.Triple `json:"weights" yaml:"weights"`
	// Provenance names the entropy path when weights were seeded.
	Provenance  string                `json:"weight_provenance,omitempty" yaml:"weight_provenance,omitempty"`
	Threshold   float64               `json:"threshold" yaml:"threshold"`
	Baseline    *scenario.Summary     `json:"baseline,omitempty" yaml:"baseline,omitempty"`
	Projections []scenario.Projection `json:"projections,omitempty" yaml:"projections,omitempty"`
	Results     []Row                 `json:"results,omitempty" yaml:"results,omitempty"`
	Curves      []landscape.Curve     `json:"curves,omitempty" yaml:"curves,omitempty"`
}

// NewDocument stamps a fresh run ID and timestamp.
func NewDocument(w weights.Triple, threshold float64) *Document {
	return &Document{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC().Truncate(time.Second),
		Weights:     w,
		Threshold:   threshold,
	}
}

// Encode writes d as JSON or YAML.
func (d *Document) Encode(w io.Writer, f Format) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q is not a document format", ErrFormat, f)
	}
}
