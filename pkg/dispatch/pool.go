package dispatch

import (
	"runtime"
	"sync"

	"github.com/eapache/queue"
)

// PoolExecutor runs tasks on a fixed set of reusable workers. When every
// worker is busy, newly submitted tasks wait in an unbounded FIFO backlog
// until one frees up; nothing is ever rejected.
type PoolExecutor struct {
	mu      sync.Mutex
	cond    *sync.Cond
	backlog *queue.Queue
	closed  bool
	size    int
	wg      sync.WaitGroup
}

var _ Executor = (*PoolExecutor)(nil)

func NewPoolExecutor(size int) *PoolExecutor {
	if size <= 0 {
		size = OptimalPoolSize()
	}

	p := &PoolExecutor{
		backlog: queue.New(),
		size:    size,
	}
	p.cond = sync.NewCond(&p.mu)

	p.wg.Add(size)
	for i := 0; i < size; i++ {
		go p.worker()
	}

	return p
}

func (p *PoolExecutor) Name() string { return "pool" }

func (p *PoolExecutor) Size() int { return p.size }

func (p *PoolExecutor) Run(task func()) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.backlog.Add(task)
	p.mu.Unlock()

	p.cond.Signal()
}

func (p *PoolExecutor) worker() {
	defer p.wg.Done()

	for {
		p.mu.Lock()
		for p.backlog.Length() == 0 && !p.closed {
			p.cond.Wait()
		}
		if p.backlog.Length() == 0 {
			// closed and drained
			p.mu.Unlock()
			return
		}
		task := p.backlog.Remove().(func())
		p.mu.Unlock()

		task()
	}
}

// Close stops accepting new tasks and waits for the workers to drain the
// backlog.
func (p *PoolExecutor) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.mu.Unlock()

	p.cond.Broadcast()
	p.wg.Wait()
}

// OptimalPoolSize returns max(4, 2 x available parallelism). Handshakes
// are I/O bound, so the pool runs more workers than cores.
func OptimalPoolSize() int {
	n := runtime.NumCPU() * 2
	if n < 4 {
		n = 4
	}
	return n
}
