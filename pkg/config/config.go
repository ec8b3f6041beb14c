package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"tcp-handshake/pkg/handshake"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Client   ClientConfig   `yaml:"client"`
	Registry RegistryConfig `yaml:"registry"`
}

type ServerConfig struct {
	ReadTimeout    Duration `yaml:"read_timeout"`
	SessionTimeout Duration `yaml:"session_timeout"`
	WorkerPoolSize int      `yaml:"worker_pool_size"`
	MetricsAddress string   `yaml:"metrics_address"`
}

type ClientConfig struct {
	DialTimeout    Duration `yaml:"dial_timeout"`
	ReadTimeout    Duration `yaml:"read_timeout"`
	SessionTimeout Duration `yaml:"session_timeout"`
}

type RegistryConfig struct {
	Type string `yaml:"type"` // etcd/memory/none
	Etcd struct {
		Endpoints   []string `yaml:"endpoints"`
		DialTimeout Duration `yaml:"dial_timeout"`
		KeyPrefix   string   `yaml:"key_prefix"`
		LeaseTTL    int64    `yaml:"lease_ttl"`
	} `yaml:"etcd"`
}

type Duration struct{ time.Duration }

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	dd, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	d.Duration = dd
	return nil
}

// Default carries the protocol's standing timeouts: 5s per blocking read,
// 30s per server session, 10s per client session.
func Default() *Config {
	cfg := &Config{
		Server: ServerConfig{
			ReadTimeout:    Duration{handshake.ReadTimeout},
			SessionTimeout: Duration{handshake.ServerSessionTimeout},
			WorkerPoolSize: 0, // 0 = max(4, 2 x NumCPU)
		},
		Client: ClientConfig{
			DialTimeout:    Duration{5 * time.Second},
			ReadTimeout:    Duration{handshake.ReadTimeout},
			SessionTimeout: Duration{handshake.ClientSessionTimeout},
		},
	}

	cfg.Registry.Type = "none"
	cfg.Registry.Etcd.Endpoints = []string{"localhost:2379"}
	cfg.Registry.Etcd.DialTimeout = Duration{5 * time.Second}
	cfg.Registry.Etcd.KeyPrefix = "/handshake/servers"
	cfg.Registry.Etcd.LeaseTTL = 10

	return cfg
}

// Load reads a YAML config file over the defaults.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
