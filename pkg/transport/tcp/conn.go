package tcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"tcp-handshake/pkg/protocol"
	"tcp-handshake/pkg/transport"
)

// Conn is the blocking frame transport. Every read is bounded by the fixed
// per-call timeout chosen when the conn was acquired; the ctx argument is
// accepted for interface compatibility but carries no deadline of its own.
type Conn struct {
	conn net.Conn
	opts *transport.Options
}

var _ transport.FrameTransport = (*Conn)(nil)

func NewConn(conn net.Conn, options ...transport.Option) *Conn {
	opts := transport.DefaultOptions()

	for _, o := range options {
		o(opts)
	}

	return &Conn{conn: conn, opts: opts}
}

func (c *Conn) ReadFrame(ctx context.Context) (string, error) {
	if c.opts.ReadTimeout > 0 {
		if err := c.conn.SetReadDeadline(time.Now().Add(c.opts.ReadTimeout)); err != nil {
			return "", fmt.Errorf("set read deadline failed: %w", err)
		}
	}

	buf := make([]byte, protocol.MsgSize)

	n, err := c.conn.Read(buf)
	if err != nil {
		return "", mapReadError(err)
	}
	if n == 0 {
		return "", protocol.ErrPeerDisconnected
	}

	return strings.TrimRight(string(buf[:n]), "\x00"), nil
}

func (c *Conn) WriteFrame(ctx context.Context, msg string) error {
	if _, err := c.conn.Write([]byte(msg)); err != nil {
		return fmt.Errorf("write to connection failed: %w", err)
	}
	return nil
}

func (c *Conn) Close() error {
	return c.conn.Close()
}

func (c *Conn) RemoteAddr() net.Addr {
	return c.conn.RemoteAddr()
}

func mapReadError(err error) error {
	if errors.Is(err, io.EOF) {
		return protocol.ErrPeerDisconnected
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return protocol.ErrTimeout
	}
	return fmt.Errorf("read from connection failed: %w", err)
}
