package tcp

import (
	"context"
	"fmt"
	"net"

	"tcp-handshake/pkg/transport"
)

// Dial opens one outbound TCP connection with the transport options
// applied. The caller wraps the result in a Conn or SessionConn and owns
// it for exactly one handshake.
func Dial(ctx context.Context, addr string, options ...transport.Option) (net.Conn, error) {
	opts := transport.DefaultOptions()

	for _, o := range options {
		o(opts)
	}

	dialer := &net.Dialer{
		Timeout:   opts.DialTimeout,
		KeepAlive: opts.KeepAlivePeriod,
	}

	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial tcp %s failed: %w", addr, err)
	}

	if tcpConn, ok := conn.(*net.TCPConn); ok {
		if opts.KeepAlive {
			if err := tcpConn.SetKeepAlive(true); err != nil {
				_ = conn.Close()
				return nil, fmt.Errorf("set keep-alive failed: %w", err)
			}

			if err := tcpConn.SetKeepAlivePeriod(opts.KeepAlivePeriod); err != nil {
				_ = conn.Close()
				return nil, fmt.Errorf("set keep-alive period failed: %w", err)
			}
		}

		if opts.NoDelay {
			if err := tcpConn.SetNoDelay(true); err != nil {
				_ = conn.Close()
				return nil, fmt.Errorf("set no delay failed: %w", err)
			}
		}
	}

	return conn, nil
}
