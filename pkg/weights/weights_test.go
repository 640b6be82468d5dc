package weights

import (
	"context"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja7ad/pemev/pkg/entropy"
)

func pack(a, b, c uint64) []byte {
	buf := make([]byte, EntropyLen)
	binary.LittleEndian.PutUint64(buf[0:], a)
	binary.LittleEndian.PutUint64(buf[8:], b)
	binary.LittleEndian.PutUint64(buf[16:], c)
	return buf
}

type failing struct{ calls int }

func (f *failing) Fetch(context.Context, int) entropy.Result {
	f.calls++
	return entropy.Result{Err: entropy.ErrFetch}
}

func TestDefaultAndFallback(t *testing.T) {
	require.NoError(t, Default().Validate())
	assert.InDelta(t, 1.0, Fallback().Sum(), 1e-9)
	assert.Equal(t, Triple{0.33, 0.34, 0.33}, Fallback())
}

func TestDecode_Proportions(t *testing.T) {
	tr, err := Decode(pack(1, 2, 1))
	require.NoError(t, err)
	assert.InDelta(t, 0.25, tr.Energy, 1e-12)
	assert.InDelta(t, 0.50, tr.Equity, 1e-12)
	assert.InDelta(t, 0.25, tr.Sustainability, 1e-12)
	require.NoError(t, tr.Validate())
}

func TestDecode_ExtremeValues(t *testing.T) {
	tr, err := Decode(pack(math.MaxUint64, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, Triple{Energy: 1}, tr)

	tr, err = Decode(pack(math.MaxUint64, math.MaxUint64, math.MaxUint64))
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3, tr.Equity, 1e-12)
}

func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		want error
	}{
		{"nil", nil, ErrDecodeLength},
		{"short", make([]byte, 23), ErrDecodeLength},
		{"long", make([]byte, 32), ErrDecodeLength},
		{"all_zero", make([]byte, 24), ErrDegenerateSum},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrDecode))
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestDerive_FallsBackWithoutError(t *testing.T) {
	assert.Equal(t, Fallback(), Derive(make([]byte, 24)))
	assert.Equal(t, Fallback(), Derive([]byte{1, 2, 3}))
	assert.Equal(t, Fallback(), Derive(nil))

	tr := Derive(pack(3, 3, 4))
	assert.InDelta(t, 0.4, tr.Sustainability, 1e-12)

	fb, err := derive(make([]byte, 24))
	assert.ErrorIs(t, err, ErrDecode)
	assert.Equal(t, Fallback(), fb)

	ok, err := derive(pack(3, 3, 4))
	require.NoError(t, err)
	assert.Equal(t, tr, ok)
}

func TestTriple_Validate(t *testing.T) {
	assert.ErrorIs(t, Triple{0.5, 0.6, -0.1}.Validate(), ErrInvalid)
	assert.ErrorIs(t, Triple{0.5, 0.5, 0.5}.Validate(), ErrInvalid)
	assert.ErrorIs(t, Triple{math.NaN(), 0.5, 0.5}.Validate(), ErrInvalid)
	assert.NoError(t, Triple{0.2, 0.2, 0.6}.Validate())
}

func TestTriple_Normalize(t *testing.T) {
	n, err := Triple{3, 4, 3}.Normalize()
	require.NoError(t, err)
	assert.InDelta(t, 0.4, n.Equity, 1e-12)

	_, err = Triple{}.Normalize()
	assert.ErrorIs(t, err, ErrDegenerateSum)
}

func TestSeeder_Primary(t *testing.T) {
	s := NewSeeder(entropy.Static{Bytes: pack(1, 1, 2)}, nil)
	tr, prov := s.Seed(context.Background())
	assert.Equal(t, FromPrimary, prov)
	assert.InDelta(t, 0.5, tr.Sustainability, 1e-12)
}

func TestSeeder_SourceLevelFallback(t *testing.T) {
	primary := &failing{}
	s := &Seeder{Primary: primary, Local: entropy.Static{Bytes: pack(2, 1, 1)}}

	tr, prov := s.Seed(context.Background())
	assert.Equal(t, FromLocal, prov)
	assert.Equal(t, 1, primary.calls, "primary is tried exactly once")
	assert.InDelta(t, 0.5, tr.Energy, 1e-12)
}

func TestSeeder_DecodeLevelFallback(t *testing.T) {
	s := &Seeder{Primary: entropy.Static{Bytes: make([]byte, 24)}}
	tr, prov := s.Seed(context.Background())
	assert.Equal(t, FromFallback, prov)
	assert.Equal(t, Fallback(), tr)
	assert.Equal(t, Derive(make([]byte, 24)), tr)
}

func TestSeeder_BothSourcesEmpty(t *testing.T) {
	s := &Seeder{Primary: &failing{}, Local: &failing{}}
	tr, prov := s.Seed(context.Background())
	assert.Equal(t, FromFallback, prov)
	assert.Equal(t, Fallback(), tr)
}

func TestSeeder_LocalOnly(t *testing.T) {
	tr, prov := NewSeeder(nil, nil).Seed(context.Background())
	require.Equal(t, FromLocal, prov)
	require.NoError(t, tr.Validate())
}

func TestProvenance_String(t *testing.T) {
	assert.Equal(t, "primary", FromPrimary.String())
	assert.Equal(t, "local", FromLocal.String())
	assert.Equal(t, "fallback", FromFallback.String())
	assert.Equal(t, "unknown", Provenance(42).String())
}
