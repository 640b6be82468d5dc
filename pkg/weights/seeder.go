package weights

import (
	"context"
	"log/slog"

	"github.com/ja7ad/pemev/pkg/entropy"
)

// Provenance records which path produced a seeded triple.
type Provenance int

const (
	FromPrimary  Provenance = iota // primary source bytes decoded
	FromLocal                      // primary empty, local bytes decoded
	FromFallback                   // bytes could not be decoded
)

func (p Provenance) String() string {
	switch p {
	case FromPrimary:
		return "primary"
	case FromLocal:
		return "local"
	case FromFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Seeder turns entropy into a Triple.
//
// Failure handling has two independent layers:
//   - source level: an empty Primary result is replaced by Local bytes;
//   - decode level: bytes that do not decode yield Fallback().
//
// Seed never returns an error.
type Seeder struct {
	Primary entropy.Source
	Local   entropy.Source
	Logger  *slog.Logger
}

// NewSeeder returns a Seeder with entropy.Local as the local source.
// primary may be nil to seed from local entropy only.
func NewSeeder(primary entropy.Source, logger *slog.Logger) *Seeder {
	return &Seeder{Primary: primary, Local: entropy.Local{}, Logger: logger}
}

// Seed never fails: the Provenance says whether the triple came from the
// primary source, from local entropy, or is Fallback().
func (s *Seeder) Seed(ctx context.Context) (Triple, Provenance) {
	log := s.Logger
	if log == nil {
		log = slog.Default()
	}
	log = log.With(slog.String("component", "seeder"))

	local := s.Local
	if local == nil {
		local = entropy.Local{}
	}

	prov := FromLocal
	var raw []byte
	if s.Primary != nil {
		res := s.Primary.Fetch(ctx, EntropyLen)
		if res.OK() {
			raw, prov = res.Bytes, FromPrimary
		} else {
			log.Info("falling back to local entropy", "reason", res.Err)
		}
	}
	if raw == nil {
		// a failing local source leaves raw empty, which decodes to the fallback
		raw = local.Fetch(ctx, EntropyLen).Bytes
	}

	t, err := derive(raw)
	if err != nil {
		log.Warn("entropy decode failed, using ultra-safe weights", "err", err)
		return t, FromFallback
	}
	log.Debug("weights seeded", "source", prov.String(), "weights", t.String())
	return t, prov
}
