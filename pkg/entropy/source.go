// Package entropy supplies raw random bytes for weight seeding.
//
// A Source never fails loudly: Fetch returns a Result that is either OK with
// exactly n bytes, or empty with the reason attached. Callers decide how to
// fall back (see pkg/weights).
//
// Implementations:
//
//   - Remote: one GET against a randomness service returning hex text.
//   - Local:  crypto/rand; always OK.
//   - Static: fixed bytes, for reproducible runs and tests.
package entropy

import (
	"context"
	"crypto/rand"
	"fmt"
)

// Source supplies n random bytes.
type Source interface {
	Fetch(ctx context.Context, n int) Result
}

// Result is the typed outcome of a fetch.
type Result struct {
	Bytes []byte
	// Err is nil on success; otherwise it wraps ErrFetch.
	Err error
}

// OK reports whether the fetch produced bytes.
func (r Result) OK() bool { return r.Err == nil && len(r.Bytes) > 0 }

func ok(b []byte) Result { return Result{Bytes: b} }

func empty(err error) Result {
	return Result{Err: fmt.Errorf("%w: %w", ErrFetch, err)}
}

// Local reads from the operating system's secure generator.
type Local struct{}

func (Local) Fetch(_ context.Context, n int) Result {
	if n <= 0 {
		return empty(ErrBadLength)
	}
	b := make([]byte, n)
	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = rand.Read(b)
	return ok(b)
}

// Static returns a copy of fixed bytes. A request for a different length
// than len(Bytes) yields an empty Result.
type Static struct {
	Bytes []byte
}

func (s Static) Fetch(_ context.Context, n int) Result {
	if n <= 0 {
		return empty(ErrBadLength)
	}
	if len(s.Bytes) != n {
		return empty(fmt.Errorf("%w: have %d bytes, want %d", ErrMalformed, len(s.Bytes), n))
	}
	out := make([]byte, n)
	copy(out, s.Bytes)
	return ok(out)
}
