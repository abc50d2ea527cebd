// Package httpx builds the outbound HTTP clients used by the bot.
package httpx

import (
	"net"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	defaultClientTimeout         = 30 * time.Second
	defaultDialTimeout           = 5 * time.Second
	defaultIdleConnTimeout       = 90 * time.Second
	defaultExpectContinueTimeout = 1 * time.Second
	defaultMaxIdleConns          = 32
	defaultMaxIdleConnsPerHost   = 8
)

// Option customizes a client built by NewClient.
type Option func(*options)

type options struct {
	traced bool
}

// WithTracing wraps the transport so every request carries a client span.
func WithTracing() Option {
	return func(o *options) { o.traced = true }
}

// NewClient returns a hardened HTTP client whose whole exchange, headers
// and body included, is bounded by timeout. The dial and TLS handshake are
// capped separately so an unreachable host fails fast.
func NewClient(timeout time.Duration, opts ...Option) *http.Client {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if timeout <= 0 {
		timeout = defaultClientTimeout
	}

	dialTimeout := timeout
	if dialTimeout > defaultDialTimeout {
		dialTimeout = defaultDialTimeout
	}

	var transport http.RoundTripper = &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: dialTimeout, KeepAlive: 30 * time.Second}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          defaultMaxIdleConns,
		MaxIdleConnsPerHost:   defaultMaxIdleConnsPerHost,
		IdleConnTimeout:       defaultIdleConnTimeout,
		TLSHandshakeTimeout:   dialTimeout,
		ResponseHeaderTimeout: timeout,
		ExpectContinueTimeout: defaultExpectContinueTimeout,
	}
	if o.traced {
		transport = otelhttp.NewTransport(transport)
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
