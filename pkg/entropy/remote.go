package entropy

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultEndpoint is the QDay quantum randomness service.
	DefaultEndpoint = "https://qday.dev/v1/bytes"
	// DefaultTimeout bounds the single remote attempt.
	DefaultTimeout = 10 * time.Second
	// DefaultUserAgent identifies the client to the service.
	DefaultUserAgent = "pemev/dev (+https://github.com/ja7ad/pemev)"

	bodySlack = 64
)

// Remote fetches hex-encoded random bytes from an HTTP service:
//
//	GET <Endpoint>?length=<n>  ->  200 text/plain, 2*n hex characters
//
// Exactly one attempt is made. Transport errors, timeouts, non-2xx statuses
// and malformed bodies all produce an empty Result and a WARN log line.
type Remote struct {
	Endpoint   string
	Timeout    time.Duration
	UserAgent  string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// NewRemote returns a Remote with defaults for every empty field.
func NewRemote(endpoint string, timeout time.Duration) *Remote {
	r := &Remote{Endpoint: endpoint, Timeout: timeout}
	r.defaults()
	return r
}

func (r *Remote) defaults() {
	if r.Endpoint == "" {
		r.Endpoint = DefaultEndpoint
	}
	if r.Timeout <= 0 {
		r.Timeout = DefaultTimeout
	}
	if r.UserAgent == "" {
		r.UserAgent = DefaultUserAgent
	}
	if r.HTTPClient == nil {
		r.HTTPClient = &http.Client{Timeout: r.Timeout}
	}
	if r.Logger == nil {
		r.Logger = slog.Default()
	}
}

// Fetch makes one attempt for n bytes. It never writes to r and is safe for
// concurrent use.
func (r *Remote) Fetch(ctx context.Context, n int) Result {
	cp := *r
	cp.defaults()
	r = &cp
	log := r.Logger.With(slog.String("component", "entropy"), slog.String("endpoint", r.Endpoint), slog.Int("length", n))

	b, err := r.fetch(ctx, n)
	if err != nil {
		log.Warn("remote entropy unavailable", "err", err)
		return empty(err)
	}
	log.Debug("remote entropy fetched")
	return ok(b)
}

func (r *Remote) fetch(ctx context.Context, n int) ([]byte, error) {
	if n <= 0 {
		return nil, ErrBadLength
	}

	u, err := url.Parse(r.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}
	q := u.Query()
	q.Set("length", strconv.Itoa(n))
	u.RawQuery = q.Encode()

	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("User-Agent", r.UserAgent)
	req.Header.Set("Accept", "text/plain")

	resp, err := r.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", ErrStatus, resp.Status)
	}

	// hex text plus some slack for whitespace; one byte past the limit marks truncation
	limit := int64(2*n + bodySlack)
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", ErrMalformed, limit)
	}
	return decodeHex(strings.TrimSpace(string(body)), n)
}

func decodeHex(s string, n int) ([]byte, error) {
	if len(s) != 2*n {
		return nil, fmt.Errorf("%w: got %d hex chars, want %d", ErrMalformed, len(s), 2*n)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return b, nil
}
