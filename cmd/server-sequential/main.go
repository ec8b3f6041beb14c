// Sequential handshake server: one client at a time, serviced inside the
// accept loop.
package main

import (
	"tcp-handshake/internal/servermain"
	"tcp-handshake/pkg/config"
	"tcp-handshake/pkg/dispatch"
	"tcp-handshake/pkg/handshake"
)

func main() {
	servermain.Main(func(*config.Config, handshake.Logger) dispatch.Executor {
		return dispatch.SequentialExecutor{}
	}, false)
}
