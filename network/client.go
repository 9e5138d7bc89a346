// Package network holds the HTTP plumbing used to download source pages.
package network

import (
	"net"
	"net/http"
	"time"

	"github.com/m3ugen/m3ugen/constant"
	"github.com/m3ugen/m3ugen/key"
	"github.com/spf13/viper"
)

// Client is the HTTP client shared by every fetch. It sets no deadlines of its
// own: the fetcher's per-request context is the only bound on a request.
var Client = &http.Client{
	Transport: newTransport(),
}

// newTransport initializes a pooled http.Transport. Dial, handshake and header
// waits are left unbounded so that fetch.timeout is never cut short.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.DialContext = (&net.Dialer{KeepAlive: 30 * time.Second}).DialContext
	t.TLSHandshakeTimeout = 0
	t.ResponseHeaderTimeout = 0
	t.MaxIdleConns = 10
	t.MaxIdleConnsPerHost = 2
	t.IdleConnTimeout = 30 * time.Second
	return t
}

// NewFetcher builds the fetcher described by the current configuration.
func NewFetcher() *HTTPFetcher {
	client := Client
	if viper.GetBool(key.FetchTLSFingerprint) {
		client = &http.Client{Transport: NewFingerprintTransport()}
	}

	timeout := time.Duration(viper.GetInt(key.FetchTimeout)) * time.Second
	if timeout <= 0 {
		timeout = constant.DefaultTimeoutSeconds * time.Second
	}

	ua := viper.GetString(key.FetchUserAgent)
	if ua == "" {
		ua = constant.UserAgent
	}

	return &HTTPFetcher{
		Client:    client,
		Timeout:   timeout,
		UserAgent: ua,
	}
}
