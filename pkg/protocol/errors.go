package protocol

import (
	"errors"
	"fmt"
)

var (
	// ErrPeerDisconnected reports a zero-byte read: the peer closed the
	// stream before the expected message arrived.
	ErrPeerDisconnected = errors.New("peer disconnected unexpectedly")

	// ErrTimeout reports a read that did not complete within its deadline.
	// The session holding the stream must be abandoned.
	ErrTimeout = errors.New("connection timeout")
)

type MessageFormatError struct {
	Message string
}

func (e *MessageFormatError) Error() string {
	return fmt.Sprintf("invalid message format: expected 'HELLO <number>', got %q", e.Message)
}

type SequenceNumberError struct {
	Token string
}

func (e *SequenceNumberError) Error() string {
	return fmt.Sprintf("invalid sequence number: %s", e.Token)
}

// SequenceMismatchError is the client-side step-2 failure: the reply did
// not carry the expected acknowledgement sequence.
type SequenceMismatchError struct {
	Expected int32
	Received int32
}

func (e *SequenceMismatchError) Error() string {
	return fmt.Sprintf("sequence mismatch: expected %d, received %d", e.Expected, e.Received)
}
