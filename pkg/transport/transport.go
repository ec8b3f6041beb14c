package transport

import (
	"context"
	"net"
)

// FrameTransport reads and writes one protocol message per call against a
// byte stream the holder exclusively owns. Implementations differ only in
// how a read deadline is enforced; the handshake logic never knows which
// one it was given.
type FrameTransport interface {
	// ReadFrame performs a single read of at most protocol.MsgSize bytes
	// and returns the frame text with trailing NUL padding stripped.
	// A zero-byte read maps to protocol.ErrPeerDisconnected; an expired
	// deadline maps to protocol.ErrTimeout.
	ReadFrame(ctx context.Context) (string, error)

	// WriteFrame writes the raw bytes of msg, unpadded. A short write is
	// fatal and not retried.
	WriteFrame(ctx context.Context, msg string) error

	Close() error
	RemoteAddr() net.Addr
}
