package network

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"io"
	"net"
	"net/http"

	"github.com/m3ugen/m3ugen/log"
	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

// FingerprintTransport sends requests over TLS connections that present
// Chrome's Client Hello. Some streaming sites sit behind bot filters that
// reject the Go handshake outright.
//
// Each request dials one connection and speaks whichever protocol the server
// picked during ALPN: HTTP/2 for h2, HTTP/1.1 otherwise. A request is never
// sent twice. Plain http:// URLs are sent through the regular transport.
type FingerprintTransport struct {
	h2    *http2.Transport
	plain http.RoundTripper

	// roots overrides the system certificate pool when set.
	roots *x509.CertPool
}

// NewFingerprintTransport returns a ready-to-use FingerprintTransport.
func NewFingerprintTransport() *FingerprintTransport {
	return &FingerprintTransport{
		h2:    &http2.Transport{},
		plain: newTransport(),
	}
}

// RoundTrip implements http.RoundTripper.
func (t *FingerprintTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme != "https" {
		return t.plain.RoundTrip(req)
	}

	port := req.URL.Port()
	if port == "" {
		port = "443"
	}

	conn, err := t.dial(req.Context(), net.JoinHostPort(req.URL.Hostname(), port))
	if err != nil {
		return nil, fmt.Errorf("fingerprint request: %w", err)
	}

	proto := conn.ConnectionState().NegotiatedProtocol
	log.Debugf("fingerprint connection to %s negotiated %q", req.URL.Host, proto)

	if proto == http2.NextProtoTLS {
		return t.roundTripH2(conn, req)
	}
	return roundTripH1(conn, req)
}

func (t *FingerprintTransport) roundTripH2(conn net.Conn, req *http.Request) (*http.Response, error) {
	cc, err := t.h2.NewClientConn(conn)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("fingerprint request: %w", err)
	}

	resp, err := cc.RoundTrip(req)
	if err != nil {
		_ = cc.Close()
		return nil, fmt.Errorf("fingerprint request: %w", err)
	}

	resp.Body = &connBody{ReadCloser: resp.Body, conn: cc}
	return resp, nil
}

// roundTripH1 sends req over an already negotiated connection. The
// single-use transport closes conn once the body is consumed.
func roundTripH1(conn net.Conn, req *http.Request) (*http.Response, error) {
	used := false
	h1 := &http.Transport{
		DisableKeepAlives: true,
		DialTLSContext: func(context.Context, string, string) (net.Conn, error) {
			if used {
				return nil, fmt.Errorf("connection to %s already used", req.URL.Host)
			}
			used = true
			return conn, nil
		},
	}

	resp, err := h1.RoundTrip(req)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("fingerprint request: %w", err)
	}
	return resp, nil
}

// connBody closes the HTTP/2 connection together with the response body.
type connBody struct {
	io.ReadCloser
	conn io.Closer
}

func (b *connBody) Close() error {
	err := b.ReadCloser.Close()
	_ = b.conn.Close()
	return err
}

// dial opens a TLS connection mimicking Chrome 120, advertising its usual
// ALPN list (h2 and http/1.1).
func (t *FingerprintTransport) dial(ctx context.Context, addr string) (*utls.UConn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
		RootCAs:    t.roots,
	}, utls.HelloChrome_120)

	if err := tlsConn.HandshakeContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("tls handshake: %w", err)
	}

	return tlsConn, nil
}
