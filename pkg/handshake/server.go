package handshake

import (
	"context"

	"tcp-handshake/pkg/protocol"
)

// RunServer drives the server side: receive HELLO X, send HELLO X+1,
// receive the final HELLO and check it against X+2.
//
// The final check is deliberately weaker than the client's step-2 check: a
// wrong final sequence is logged but the session still returns success.
// Only the client enforces its acknowledgement.
func (s *Session) RunServer(ctx context.Context) error {
	peer := s.peer()

	first, err := s.t.ReadFrame(ctx)
	if err != nil {
		return s.fail(err)
	}
	s.log.Infof("received from %s: %s", peer, first)

	clientSeq, err := protocol.ParseHello(first)
	if err != nil {
		return s.fail(err)
	}

	serverSeq := clientSeq + 1
	reply := protocol.FormatHello(serverSeq)
	if err := s.t.WriteFrame(ctx, reply); err != nil {
		return s.fail(err)
	}
	s.phase = PhaseSentSecond
	s.log.Infof("sent to %s: %s", peer, reply)

	s.phase = PhaseAwaitingThird
	final, err := s.t.ReadFrame(ctx)
	if err != nil {
		return s.fail(err)
	}
	s.log.Infof("received from %s: %s", peer, final)

	finalSeq, err := protocol.ParseHello(final)
	if err != nil {
		return s.fail(err)
	}

	if finalSeq != serverSeq+1 {
		s.log.Errorf("expected HELLO %d, received HELLO %d from %s", serverSeq+1, finalSeq, peer)
	}

	s.phase = PhaseComplete
	return nil
}
