package handshake

import (
	"time"

	"tcp-handshake/pkg/transport"
)

// Timeout defaults shared by the binaries. The blocking transports bound
// each read at ReadTimeout with no aggregate deadline; the suspension-
// capable variants cap the whole 3-step session instead.
const (
	ReadTimeout          = 5 * time.Second
	ClientSessionTimeout = 10 * time.Second
	ServerSessionTimeout = 30 * time.Second
)

type Role int

const (
	RoleClient Role = iota
	RoleServer
)

func (r Role) String() string {
	if r == RoleServer {
		return "server"
	}
	return "client"
}

// Phase tracks where a session is in the 3-step exchange. SentSecond is
// the server's mid-point, ReceivedSecond the client's.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseSentFirst
	PhaseAwaitingSecond
	PhaseSentSecond
	PhaseReceivedSecond
	PhaseAwaitingThird
	PhaseComplete
	PhaseFailed
)

// Session is the state of one in-progress handshake. It exclusively owns
// its transport and is never reused: Close releases the stream once the
// exchange completes, errors, or times out.
type Session struct {
	role  Role
	t     transport.FrameTransport
	phase Phase
	log   Logger
}

func NewClientSession(t transport.FrameTransport, logger Logger) *Session {
	return newSession(RoleClient, t, logger)
}

func NewServerSession(t transport.FrameTransport, logger Logger) *Session {
	return newSession(RoleServer, t, logger)
}

func newSession(role Role, t transport.FrameTransport, logger Logger) *Session {
	if logger == nil {
		logger = NopLogger()
	}

	return &Session{
		role:  role,
		t:     t,
		phase: PhaseNotStarted,
		log:   logger,
	}
}

func (s *Session) Role() Role {
	return s.role
}

func (s *Session) Phase() Phase {
	return s.phase
}

func (s *Session) Close() error {
	return s.t.Close()
}

func (s *Session) peer() string {
	if addr := s.t.RemoteAddr(); addr != nil {
		return addr.String()
	}
	return "unknown"
}

func (s *Session) fail(err error) error {
	s.phase = PhaseFailed
	return err
}
