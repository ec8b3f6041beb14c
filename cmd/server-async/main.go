// Event-driven handshake server: each connection is a cooperative task
// over the suspension-capable transport, with the whole session capped by
// one deadline.
package main

import (
	"tcp-handshake/internal/servermain"
	"tcp-handshake/pkg/config"
	"tcp-handshake/pkg/dispatch"
	"tcp-handshake/pkg/handshake"
)

func main() {
	servermain.Main(func(*config.Config, handshake.Logger) dispatch.Executor {
		return dispatch.LoopExecutor{}
	}, true)
}
