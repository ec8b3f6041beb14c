// Event-driven handshake client: one session over the suspension-capable
// transport, the whole exchange capped by a single deadline.
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

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Client.SessionTimeout.Duration)
	defer cancel()

	addr := cli.ServerAddr(host, port)
	logger.Infof("connecting to %s", addr)

	conn, err := tcp.Dial(ctx, addr,
		transport.WithDialTimeout(cfg.Client.DialTimeout.Duration))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: failed to connect to %s: %v\n", addr, err)
		os.Exit(1)
	}
	logger.Infof("connected to %s", addr)

	sess := handshake.NewClientSession(
		tcp.NewSessionConn(conn, transport.WithReadTimeout(cfg.Client.ReadTimeout.Duration)),
		logger,
	)
	defer sess.Close()

	if err := sess.RunClient(ctx, initialSeq); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	logger.Infof("handshake completed successfully")
}
