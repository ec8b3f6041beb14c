package dispatch

// Executor abstracts how the dispatcher schedules one handshake task. The
// accept loop is identical across deployments; only Run decides whether a
// task blocks the loop, gets its own goroutine, or queues for a worker.
type Executor interface {
	Name() string
	Run(task func())
}

// SequentialExecutor services one connection at a time, inside the accept
// loop itself. A stalled peer holds up every other client for as long as
// its per-read timeout allows.
type SequentialExecutor struct{}

func (SequentialExecutor) Name() string { return "sequential" }

func (SequentialExecutor) Run(task func()) { task() }

// SpawnExecutor gives every connection its own goroutine. Concurrency is
// unbounded; the stream moves into the goroutine and nothing is shared
// across tasks.
type SpawnExecutor struct{}

func (SpawnExecutor) Name() string { return "threaded" }

func (SpawnExecutor) Run(task func()) { go task() }

// LoopExecutor is the cooperative deployment: each connection runs as an
// independently scheduled task that suspends at every read, write, and
// timeout wait. Paired by the dispatcher with the suspension-capable
// transport and a whole-session deadline.
type LoopExecutor struct{}

func (LoopExecutor) Name() string { return "async" }

func (LoopExecutor) Run(task func()) { go task() }
