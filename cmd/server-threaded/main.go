// Thread-per-connection handshake server: every accepted connection gets
// its own goroutine, bounded only by what the runtime can carry.
package main

import (
	"tcp-handshake/internal/servermain"
	"tcp-handshake/pkg/config"
	"tcp-handshake/pkg/dispatch"
	"tcp-handshake/pkg/handshake"
)

func main() {
	servermain.Main(func(*config.Config, handshake.Logger) dispatch.Executor {
		return dispatch.SpawnExecutor{}
	}, false)
}
