// Package netx reports point-in-time connectivity towards the catalog API.
package netx

import (
	"context"
	"net"
	"net/url"
	"time"
)

// Checker answers "are we online right now". It is polled at the top of each
// repository operation, never streamed.
type Checker interface {
	IsConnected(ctx context.Context) bool
}

// DialChecker probes a host:port with a plain TCP dial. A successful dial is
// taken as "online"; any error, including a timeout, as "offline".
type DialChecker struct {
	addr    string
	timeout time.Duration
}

// NewDialChecker builds a checker for the API base URL, e.g.
// "https://api.thecatapi.com/v1". The port is inferred from the scheme when
// the URL does not carry one.
func NewDialChecker(baseURL string, timeout time.Duration) (*DialChecker, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}

	host := u.Host
	if u.Port() == "" {
		port := "443"
		if u.Scheme == "http" {
			port = "80"
		}
		host = net.JoinHostPort(u.Hostname(), port)
	}

	return &DialChecker{addr: host, timeout: timeout}, nil
}

func (c *DialChecker) IsConnected(ctx context.Context) bool {
	dialCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var d net.Dialer
	conn, err := d.DialContext(dialCtx, "tcp", c.addr)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}
