package weights

import "errors"

var (
	// ErrDecode is the root of every entropy decoding failure.
	ErrDecode = errors.New("weights: decode failed")

	// ErrDecodeLength indicates entropy that is not exactly EntropyLen bytes.
	ErrDecodeLength = errors.New("weights: entropy length")

	// ErrDegenerateSum indicates entropy decoding to three zero integers.
	ErrDegenerateSum = errors.New("weights: degenerate sum")

	// ErrInvalid indicates a triple with a negative component or a sum away from 1.
	ErrInvalid = errors.New("weights: invalid triple")
)
