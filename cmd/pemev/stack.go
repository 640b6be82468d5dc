package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ja7ad/pemev/pkg/config"
	"github.com/ja7ad/pemev/pkg/entropy"
	"github.com/ja7ad/pemev/pkg/ethics"
	"github.com/ja7ad/pemev/pkg/logging"
	"github.com/ja7ad/pemev/pkg/report"
	"github.com/ja7ad/pemev/pkg/scenario"
	"github.com/ja7ad/pemev/pkg/weights"
)

// stack is the evaluation pipeline built from a resolved config.
type stack struct {
	cfg        config.Config
	scorer     *ethics.Scorer
	eval       *scenario.Evaluator
	provenance string
}

// primarySource picks the entropy source for seeding: fixed hex bytes when
// configured, otherwise the remote service.
func primarySource(cfg config.Entropy) (entropy.Source, error) {
	if cfg.Hex != "" {
		b, err := hex.DecodeString(cfg.Hex)
		if err != nil {
			return nil, fmt.Errorf("entropy hex: %w", err)
		}
		return entropy.Static{Bytes: b}, nil
	}
	r := entropy.NewRemote(cfg.Endpoint, cfg.Timeout)
	r.UserAgent = "pemev/" + version + " (+https://github.com/ja7ad/pemev)"
	r.Logger = slog.Default()
	return r, nil
}

// seed derives a triple from entropy. It never fails on entropy problems:
// those fall back to local bytes or the ultra-safe triple.
func seed(ctx context.Context, cfg config.Entropy) (weights.Triple, weights.Provenance, error) {
	src, err := primarySource(cfg)
	if err != nil {
		return weights.Triple{}, 0, err
	}
	t, prov := weights.NewSeeder(src, slog.Default()).Seed(ctx)
	return t, prov, nil
}

func (a *app) build(ctx context.Context) (*stack, error) {
	scorer := ethics.NewScorer(a.cfg.Weights)
	st := &stack{cfg: a.cfg, scorer: scorer}

	if a.cfg.Entropy.Seed {
		t, prov, err := seed(ctx, a.cfg.Entropy)
		if err != nil {
			return nil, err
		}
		scorer.Reseed(t)
		st.provenance = prov.String()
		logging.New("cli").Info("weights seeded", "source", st.provenance, "weights", t.String())
	}

	st.eval = scenario.New(a.cfg, scorer, nil).WithLogger(slog.Default())
	return st, nil
}

func (st *stack) document() *report.Document {
	d := report.NewDocument(st.scorer.Weights(), st.cfg.Threshold)
	d.Provenance = st.provenance
	return d
}

// openOutput returns stdout for an empty path, or creates path and its
// parent directories.
func openOutput(stdout io.Writer, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return stdout, func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, f.Close, nil
}
