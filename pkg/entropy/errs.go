package entropy

import "errors"

var (
	// ErrFetch is the root of every entropy failure. Sources never return it
	// directly; it is carried inside an empty Result.
	ErrFetch = errors.New("entropy: fetch failed")

	// ErrStatus indicates a non-2xx response from the remote service.
	ErrStatus = errors.New("entropy: unexpected status")

	// ErrMalformed indicates a body that is not exactly 2*n hex characters.
	ErrMalformed = errors.New("entropy: malformed response")

	// ErrBadLength indicates a request for n <= 0 bytes.
	ErrBadLength = errors.New("entropy: invalid length")
)
