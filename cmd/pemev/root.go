package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ja7ad/pemev/pkg/config"
	"github.com/ja7ad/pemev/pkg/entropy"
	"github.com/ja7ad/pemev/pkg/logging"
	"github.com/ja7ad/pemev/pkg/report"
)

// app carries the global flags and the resolved configuration of one
// command invocation.
type app struct {
	configPath string
	logLevel   string
	logFormat  string
	format     string

	// overrides, applied only when the flag was set
	seed           bool
	entropyURL     string
	entropyTimeout time.Duration
	entropyHex     string
	threshold      float64
	robust         bool
	stakeholders   int

	getenv func(string) string

	cfg    config.Config
	output report.Format
}

func newApp() *app { return &app{getenv: os.Getenv} }

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "pemev",
		Short: "Planetary energy mastery ethical evaluation",
		Long: `pemev scores civilizational energy growth scenarios.

It converts a power figure into a Kardashev index, measures progress from the
present toward Type I, combines that progress with equity and sustainability
into a weighted ethical score and classifies the scenario against a threshold.
Weights may be seeded from a remote quantum entropy service with local and
fixed fallbacks.

Examples:
  pemev baseline
  pemev evaluate --growth 1000 --years 50 --equity 0.95 --sustainability 0.98
  pemev evaluate --preset risky --robust --format json
  pemev batch scenarios.yaml --format table
  pemev seed --entropy-hex 010000000000000001000000000000000200000000000000
  pemev landscape --robust -o landscape.svg`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.prepare(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML config file (defaults are used when empty)")
	pf.StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "text", "log format: text or json")
	pf.StringVarP(&a.format, "format", "f", "text", "output format: text, table, csv, json, yaml (svg and html where supported)")

	pf.BoolVar(&a.seed, "seed", false, "seed weights from entropy instead of the configured triple")
	pf.StringVar(&a.entropyURL, "entropy-url", entropy.DefaultEndpoint, "remote entropy endpoint")
	pf.DurationVar(&a.entropyTimeout, "entropy-timeout", entropy.DefaultTimeout, "remote entropy timeout")
	pf.StringVar(&a.entropyHex, "entropy-hex", "", "fixed 24-byte entropy as 48 hex characters (reproducible seeding)")
	pf.Float64Var(&a.threshold, "threshold", 0.95, "classification threshold")
	pf.BoolVar(&a.robust, "robust", false, "apply the stakeholder robustness bonus")
	pf.IntVar(&a.stakeholders, "stakeholders", 3, "stakeholder count for the robustness bonus")

	root.AddCommand(
		newBaselineCmd(a),
		newProjectCmd(a),
		newEvaluateCmd(a),
		newCurrentCmd(a),
		newBatchCmd(a),
		newSeedCmd(a),
		newLandscapeCmd(a),
		newConfigCmd(a),
	)
	return root
}

// prepare configures logging and resolves the config: defaults, then the
// config file, then PEMEV_* variables, then explicitly set flags.
func (a *app) prepare(cmd *cobra.Command) error {
	level, err := logging.ParseLevel(a.logLevel)
	if err != nil {
		return err
	}
	logging.Init(level, a.logFormat, cmd.ErrOrStderr())

	if a.output, err = report.ParseFormat(a.format); err != nil {
		return err
	}

	cfg := config.Default()
	if a.configPath != "" {
		if cfg, err = config.Load(a.configPath); err != nil {
			return err
		}
	}
	cfg = config.ApplyEnv(cfg, a.getenv)

	f := cmd.Flags()
	if f.Changed("seed") {
		cfg.Entropy.Seed = a.seed
	}
	if f.Changed("entropy-url") {
		cfg.Entropy.Endpoint = a.entropyURL
	}
	if f.Changed("entropy-timeout") {
		cfg.Entropy.Timeout = a.entropyTimeout
	}
	if f.Changed("entropy-hex") {
		cfg.Entropy.Hex = a.entropyHex
	}
	if f.Changed("threshold") {
		cfg.Threshold = a.threshold
	}
	if f.Changed("robust") {
		cfg.Robustness.Enabled = a.robust
	}
	if f.Changed("stakeholders") {
		cfg.Robustness.Stakeholders = a.stakeholders
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	a.cfg = cfg
	return nil
}
