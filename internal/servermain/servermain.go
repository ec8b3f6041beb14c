// Package servermain carries the shared wiring of the server binaries:
// argument parsing, configuration, logging, metrics, optional registry
// announcement, and the accept-loop lifecycle. The binaries differ only in
// the executor they hand over.
package servermain

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tcp-handshake/pkg/cli"
	"tcp-handshake/pkg/config"
	"tcp-handshake/pkg/dispatch"
	"tcp-handshake/pkg/handshake"
	"tcp-handshake/pkg/registry"
	"tcp-handshake/pkg/registry/etcd"
	"tcp-handshake/pkg/registry/memory"
)

// ExecutorFactory builds the dispatch strategy once configuration is
// loaded.
type ExecutorFactory func(cfg *config.Config, logger handshake.Logger) dispatch.Executor

// Main runs a handshake server to completion. suspendable selects the
// suspension-capable transport with a whole-session deadline instead of
// the blocking per-read timeout.
func Main(makeExecutor ExecutorFactory, suspendable bool) {
	configPath := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	port, err := cli.ParseServerArgs(flag.Args())
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

	if cfg.Server.MetricsAddress != "" {
		go serveMetrics(cfg.Server.MetricsAddress, logger)
	}

	executor := makeExecutor(cfg, logger)

	opts := []dispatch.Option{
		dispatch.WithLogger(logger),
		dispatch.WithReadTimeout(cfg.Server.ReadTimeout.Duration),
	}
	if suspendable {
		opts = append(opts, dispatch.WithSessionTimeout(cfg.Server.SessionTimeout.Duration))
	}

	d := dispatch.NewDispatcher(executor, opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := d.Listen(ctx, cli.BindAddr(port)); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	if closeReg := announce(ctx, cfg, executor.Name(), port, logger); closeReg != nil {
		defer closeReg()
	}

	if err := d.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Errorf("serve failed: %v", err)
		os.Exit(1)
	}
}

func serveMetrics(addr string, logger handshake.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	logger.Infof("metrics on http://%s/metrics", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Errorf("metrics listener failed: %v", err)
	}
}

// announce registers this server's endpoint when the config names a
// registry. Returns a cleanup func, or nil when registration is off.
func announce(ctx context.Context, cfg *config.Config, strategy string, port uint16, logger handshake.Logger) func() {
	var reg registry.Registry

	switch cfg.Registry.Type {
	case "", "none":
		return nil
	case "memory":
		reg = memory.NewRegistry()
	case "etcd":
		var err error
		reg, err = etcd.NewRegistry(&etcd.Config{
			Endpoints:   cfg.Registry.Etcd.Endpoints,
			DialTimeout: cfg.Registry.Etcd.DialTimeout.Duration,
			KeyPrefix:   cfg.Registry.Etcd.KeyPrefix,
			LeaseTTL:    cfg.Registry.Etcd.LeaseTTL,
		})
		if err != nil {
			logger.Errorf("registry unavailable, continuing without it: %v", err)
			return nil
		}
	default:
		logger.Errorf("unknown registry type %q, continuing without it", cfg.Registry.Type)
		return nil
	}

	host, err := os.Hostname()
	if err != nil {
		host = "localhost"
	}

	inst := registry.NewInstance(net.JoinHostPort(host, strconv.Itoa(int(port))), strategy)
	if err := reg.Register(ctx, inst); err != nil {
		logger.Errorf("register instance failed: %v", err)
		_ = reg.Close()
		return nil
	}

	logger.Infof("registered as %s", inst.ID)

	return func() {
		_ = reg.Deregister(context.Background(), inst.ID)
		_ = reg.Close()
	}
}
