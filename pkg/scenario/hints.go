package scenario

import "github.com/ja7ad/pemev/pkg/config"

// HintProvider supplies current real-world equity and sustainability
// estimates for scenarios that leave them unset.
type HintProvider interface {
	Hints() config.Hints
}

// StaticHints returns fixed hints.
type StaticHints config.Hints

func (h StaticHints) Hints() config.Hints { return config.Hints(h) }

// HintFunc adapts a function to HintProvider.
type HintFunc func() config.Hints

func (f HintFunc) Hints() config.Hints { return f() }
