package dispatch

import (
	"context"
	"fmt"
	"net"
	"sync/atomic"
	"time"

	"tcp-handshake/pkg/handshake"
	"tcp-handshake/pkg/transport"
	"tcp-handshake/pkg/transport/tcp"
)

// Dispatcher is the accept-loop driver shared by every server deployment.
// It accepts connections, hands each one to the executor as an isolated
// task, and keeps accepting no matter how a task ends: one bad client
// never terminates the server.
type Dispatcher struct {
	executor Executor
	opts     *Options
	listener net.Listener
	closed   atomic.Bool

	// atomic counters
	activeConnections int64
	totalConnections  int64
}

type Options struct {
	Logger      handshake.Logger
	ReadTimeout time.Duration

	// SessionTimeout > 0 switches the dispatcher to the suspension-capable
	// transport and caps each whole session with a ctx deadline. Zero
	// keeps the blocking transport with its fixed per-read timeout.
	SessionTimeout time.Duration
}

func DefaultDispatchOptions() *Options {
	return &Options{
		Logger:      handshake.NopLogger(),
		ReadTimeout: handshake.ReadTimeout,
	}
}

type Option func(*Options)

func WithLogger(logger handshake.Logger) Option {
	return func(opts *Options) {
		if logger != nil {
			opts.Logger = logger
		}
	}
}

func WithReadTimeout(timeout time.Duration) Option {
	return func(opts *Options) {
		opts.ReadTimeout = timeout
	}
}

func WithSessionTimeout(timeout time.Duration) Option {
	return func(opts *Options) {
		opts.SessionTimeout = timeout
	}
}

func NewDispatcher(executor Executor, options ...Option) *Dispatcher {
	opts := DefaultDispatchOptions()

	for _, o := range options {
		o(opts)
	}

	return &Dispatcher{
		executor: executor,
		opts:     opts,
	}
}

func (d *Dispatcher) Listen(ctx context.Context, addr string) error {
	if d.listener != nil {
		return fmt.Errorf("already listening on %s", d.listener.Addr())
	}

	lc := net.ListenConfig{}

	listener, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	d.listener = listener
	d.opts.Logger.Infof("listening on %s", listener.Addr())

	return nil
}

// Serve accepts connections until the listener is closed or ctx is
// canceled. Per-connection failures are logged with the peer identity and
// the loop moves on; only an unrecoverable accept error ends it.
func (d *Dispatcher) Serve(ctx context.Context) error {
	if d.listener == nil {
		return fmt.Errorf("not listening, call Listen() first")
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		d.listener.Close()
	}()

	for {
		conn, err := d.listener.Accept()
		if err != nil {
			select {
			case <-done:
				return ctx.Err()
			default:
			}

			if d.closed.Load() {
				return nil
			}

			if ne, ok := err.(net.Error); ok && ne.Temporary() {
				d.opts.Logger.Errorf("failed to accept connection: %v", err)
				time.Sleep(10 * time.Millisecond)
				continue
			}

			return fmt.Errorf("accept connection failed: %w", err)
		}

		peer := conn.RemoteAddr()
		d.opts.Logger.Infof("accepted connection from %s", peer)

		atomic.AddInt64(&d.activeConnections, 1)
		atomic.AddInt64(&d.totalConnections, 1)

		d.executor.Run(func() {
			d.handle(ctx, conn, peer)
		})
	}
}

// handle runs one server-role handshake to completion and releases the
// stream. The task owns conn exclusively; nothing here is shared with
// other sessions.
func (d *Dispatcher) handle(ctx context.Context, conn net.Conn, peer net.Addr) {
	defer atomic.AddInt64(&d.activeConnections, -1)

	var t transport.FrameTransport
	cancel := func() {}

	if d.opts.SessionTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, d.opts.SessionTimeout)
		t = tcp.NewSessionConn(conn, transport.WithReadTimeout(d.opts.ReadTimeout))
	} else {
		t = tcp.NewConn(conn, transport.WithReadTimeout(d.opts.ReadTimeout))
	}
	defer cancel()

	sess := handshake.NewServerSession(t, d.opts.Logger)
	defer sess.Close()

	activeSessions.Inc()
	start := time.Now()

	err := sess.RunServer(ctx)

	handshakeDuration.WithLabelValues(d.executor.Name()).Observe(time.Since(start).Seconds())
	activeSessions.Dec()

	if err != nil {
		handshakesTotal.WithLabelValues(d.executor.Name(), "error").Inc()
		d.opts.Logger.Errorf("handshake failed with %s: %v", peer, err)
		return
	}

	handshakesTotal.WithLabelValues(d.executor.Name(), "success").Inc()
	d.opts.Logger.Infof("handshake completed with %s", peer)
}

func (d *Dispatcher) Close() error {
	if !d.closed.CompareAndSwap(false, true) {
		return nil
	}

	if d.listener != nil {
		if err := d.listener.Close(); err != nil {
			return fmt.Errorf("close listener failed: %w", err)
		}
	}

	return nil
}

func (d *Dispatcher) Addr() net.Addr {
	if d.listener != nil {
		return d.listener.Addr()
	}
	return nil
}

func (d *Dispatcher) Stats() Stats {
	return Stats{
		Strategy:          d.executor.Name(),
		ActiveConnections: atomic.LoadInt64(&d.activeConnections),
		TotalConnections:  atomic.LoadInt64(&d.totalConnections),
	}
}

type Stats struct {
	Strategy          string
	ActiveConnections int64
	TotalConnections  int64
}
