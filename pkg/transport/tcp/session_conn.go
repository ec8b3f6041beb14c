package tcp

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"tcp-handshake/pkg/protocol"
	"tcp-handshake/pkg/transport"
)

// SessionConn is the suspension-capable frame transport. Every read is
// individually bounded by the earlier of the ctx deadline and the per-read
// timeout, so one ctx can cap a whole multi-step session. A timeout
// surfaces protocol.ErrTimeout without closing the underlying connection;
// the caller decides when the stream is released.
type SessionConn struct {
	conn net.Conn
	opts *transport.Options
}

var _ transport.FrameTransport = (*SessionConn)(nil)

func NewSessionConn(conn net.Conn, options ...transport.Option) *SessionConn {
	opts := transport.DefaultOptions()

	for _, o := range options {
		o(opts)
	}

	return &SessionConn{conn: conn, opts: opts}
}

func (c *SessionConn) ReadFrame(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", protocol.ErrTimeout
	}

	deadline := time.Now().Add(c.opts.ReadTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	if err := c.conn.SetReadDeadline(deadline); err != nil {
		return "", fmt.Errorf("set read deadline failed: %w", err)
	}

	buf := make([]byte, protocol.MsgSize)

	n, err := c.conn.Read(buf)
	if err != nil {
		return "", mapReadError(err)
	}
	if n == 0 {
		return "", protocol.ErrPeerDisconnected
	}

	return strings.TrimSpace(strings.TrimRight(string(buf[:n]), "\x00")), nil
}

func (c *SessionConn) WriteFrame(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return protocol.ErrTimeout
	}

	if d, ok := ctx.Deadline(); ok {
		if err := c.conn.SetWriteDeadline(d); err != nil {
			return fmt.Errorf("set write deadline failed: %w", err)
		}
	}

	if _, err := c.conn.Write([]byte(msg)); err != nil {
		return fmt.Errorf("write to connection failed: %w", err)
	}
	return nil
}

func (c *SessionConn) Close() error {
	return c.conn.Close()
}

func (c *SessionConn) RemoteAddr() net.Addr {
	return c.conn.RemoteAddr()
}
