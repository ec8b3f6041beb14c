package dispatch_test

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"tcp-handshake/pkg/dispatch"
	"tcp-handshake/pkg/handshake"
	"tcp-handshake/pkg/transport"
	"tcp-handshake/pkg/transport/tcp"
)

func startDispatcher(t *testing.T, executor dispatch.Executor, options ...dispatch.Option) (string, *dispatch.Dispatcher) {
	t.Helper()

	opts := append([]dispatch.Option{
		dispatch.WithReadTimeout(500 * time.Millisecond),
	}, options...)

	d := dispatch.NewDispatcher(executor, opts...)
	require.NoError(t, d.Listen(context.Background(), "127.0.0.1:0"))

	go d.Serve(context.Background())
	t.Cleanup(func() { d.Close() })

	return d.Addr().String(), d
}

func runClient(t *testing.T, addr string, initialSeq int32) error {
	t.Helper()

	conn, err := tcp.Dial(context.Background(), addr,
		transport.WithDialTimeout(time.Second))
	if err != nil {
		return err
	}

	sess := handshake.NewClientSession(
		tcp.NewConn(conn, transport.WithReadTimeout(time.Second)), nil)
	defer sess.Close()

	return sess.RunClient(context.Background(), initialSeq)
}

func TestDispatcherStrategies(t *testing.T) {
	cases := []struct {
		name     string
		executor dispatch.Executor
		options  []dispatch.Option
	}{
		{name: "sequential", executor: dispatch.SequentialExecutor{}},
		{name: "threaded", executor: dispatch.SpawnExecutor{}},
		{name: "pool", executor: dispatch.NewPoolExecutor(2)},
		{
			name:     "async",
			executor: dispatch.LoopExecutor{},
			options:  []dispatch.Option{dispatch.WithSessionTimeout(2 * time.Second)},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			addr, _ := startDispatcher(t, tc.executor, tc.options...)
			require.NoError(t, runClient(t, addr, 100))
		})
	}
}

// A peer that never writes must time out without taking the accept loop
// down with it; the next client gets serviced normally. Sequential is the
// strictest case since the stalled session blocks the loop itself.
func TestDispatcherSurvivesStalledPeer(t *testing.T) {
	addr, _ := startDispatcher(t, dispatch.SequentialExecutor{})

	stalled, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer stalled.Close()

	require.NoError(t, runClient(t, addr, 200))
}

func TestDispatcherSurvivesMalformedClient(t *testing.T) {
	addr, _ := startDispatcher(t, dispatch.SpawnExecutor{})

	bad, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	bad.Write([]byte("HI 5"))
	bad.Close()

	require.NoError(t, runClient(t, addr, 300))
}

// N well-behaved clients with N well above the worker count must all
// complete, and none may observe another session's sequence numbers — a
// cross-talk would surface as a SequenceMismatchError because every client
// uses a distinct base.
func TestDispatcherConcurrentClients(t *testing.T) {
	pool := dispatch.NewPoolExecutor(4)
	addr, _ := startDispatcher(t, pool)

	var g errgroup.Group
	for i := 0; i < 32; i++ {
		seq := int32(1000 + i*10)
		g.Go(func() error {
			if err := runClient(t, addr, seq); err != nil {
				return fmt.Errorf("client with seq %d: %w", seq, err)
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
}

func TestDispatcherStats(t *testing.T) {
	addr, d := startDispatcher(t, dispatch.SequentialExecutor{})

	require.NoError(t, runClient(t, addr, 100))
	require.NoError(t, runClient(t, addr, 200))

	stats := d.Stats()
	assert.Equal(t, "sequential", stats.Strategy)
	assert.Equal(t, int64(2), stats.TotalConnections)
}
