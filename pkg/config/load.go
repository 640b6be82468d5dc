package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML config file over Default(). Keys absent from the file
// keep their default value; unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML (JSON is accepted as a YAML subset) over Default().
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config yaml: %w", err)
	}
	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encode config yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Environment variables read by ApplyEnv.
const (
	EnvSeed           = "PEMEV_SEED"
	EnvEntropyURL     = "PEMEV_ENTROPY_URL"
	EnvEntropyTimeout = "PEMEV_ENTROPY_TIMEOUT"
	EnvEntropyHex     = "PEMEV_ENTROPY_HEX"
	EnvThreshold      = "PEMEV_THRESHOLD"
)

// ApplyEnv overlays PEMEV_* variables on cfg. Unparseable values are
// ignored. PEMEV_ENTROPY_TIMEOUT accepts a duration ("10s") or whole seconds.
func ApplyEnv(cfg Config, getenv func(string) string) Config {
	if getenv == nil {
		getenv = os.Getenv
	}
	if v := getenv(EnvSeed); v != "" {
		cfg.Entropy.Seed = v == "true" || v == "1"
	}
	if v := getenv(EnvEntropyURL); v != "" {
		cfg.Entropy.Endpoint = v
	}
	if v := getenv(EnvEntropyTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Entropy.Timeout = d
		} else if sec, err := strconv.Atoi(v); err == nil && sec > 0 {
			cfg.Entropy.Timeout = time.Duration(sec) * time.Second
		}
	}
	if v := getenv(EnvEntropyHex); v != "" {
		cfg.Entropy.Hex = strings.TrimSpace(v)
	}
	if v := getenv(EnvThreshold); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Threshold = f
		}
	}
	return cfg
}
