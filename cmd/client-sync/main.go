// Blocking handshake client: opens one connection, runs the client role
// once with a fixed per-read timeout, and exits.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"tcp-handshake/pkg/cli"
	"tcp-handshake/pkg/config"
	"tcp-handshake/pkg/handshake"
	"tcp-handshake/pkg/transport"
	"tcp-handshake/pkg/transport/tcp"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	host, port, initialSeq, err := cli.ParseClientArgs(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	cfg := config.Default()
	if *configPath != "" {
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: load config: %v\n", err)
			os.Exit(1)
		}
	}

	logger := log.New(os.Stderr)

	addr := cli.ServerAddr(host, port)
	conn, err := tcp.Dial(context.Background(), addr,
		transport.WithDialTimeout(cfg.Client.DialTimeout.Duration))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: failed to connect to %s: %v\n", addr, err)
		os.Exit(1)
	}

	sess := handshake.NewClientSession(
		tcp.NewConn(conn, transport.WithReadTimeout(cfg.Client.ReadTimeout.Duration)),
		logger,
	)
	defer sess.Close()

	if err := sess.RunClient(context.Background(), initialSeq); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	logger.Infof("handshake completed successfully")
}
