// Worker-pool handshake server: a fixed set of workers drains an
// unbounded backlog of accepted connections.
package main

import (
	"tcp-handshake/internal/servermain"
	"tcp-handshake/pkg/config"
	"tcp-handshake/pkg/dispatch"
	"tcp-handshake/pkg/handshake"
)

func main() {
	servermain.Main(func(cfg *config.Config, logger handshake.Logger) dispatch.Executor {
		pool := dispatch.NewPoolExecutor(cfg.Server.WorkerPoolSize)
		logger.Infof("worker pool size: %d", pool.Size())
		return pool
	}, false)
}
