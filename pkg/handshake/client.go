package handshake

import (
	"context"

	"tcp-handshake/pkg/protocol"
)

// RunClient drives the client side of the exchange: send HELLO X, receive
// HELLO Y and require Y == X+1, send HELLO Y+1. The client does not wait
// for anything after the third message; either side may close first.
func (s *Session) RunClient(ctx context.Context, initialSeq int32) error {
	first := protocol.FormatHello(initialSeq)
	if err := s.t.WriteFrame(ctx, first); err != nil {
		return s.fail(err)
	}
	s.phase = PhaseSentFirst
	s.log.Infof("sent: %s", first)

	s.phase = PhaseAwaitingSecond
	reply, err := s.t.ReadFrame(ctx)
	if err != nil {
		return s.fail(err)
	}
	s.log.Infof("received: %s", reply)

	received, err := protocol.ParseHello(reply)
	if err != nil {
		return s.fail(err)
	}

	expected := initialSeq + 1
	if received != expected {
		return s.fail(&protocol.SequenceMismatchError{
			Expected: expected,
			Received: received,
		})
	}
	s.phase = PhaseReceivedSecond

	final := protocol.FormatHello(received + 1)
	if err := s.t.WriteFrame(ctx, final); err != nil {
		return s.fail(err)
	}
	s.log.Infof("sent: %s", final)

	s.phase = PhaseComplete
	return nil
}
