package etcd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	clientv3 "go.etcd.io/etcd/client/v3"

	"tcp-handshake/pkg/registry"
)

type Config struct {
	Endpoints   []string
	DialTimeout time.Duration

	KeyPrefix string
	LeaseTTL  int64
}

func DefaultConfig() *Config {
	return &Config{
		Endpoints:   []string{"localhost:2379"},
		DialTimeout: 5 * time.Second,
		KeyPrefix:   "/handshake/servers",
		LeaseTTL:    10,
	}
}

// Registry keeps each registered endpoint under an etcd lease so a dead
// server disappears once its TTL lapses.
type Registry struct {
	client  *clientv3.Client
	config  *Config
	leaseID clientv3.LeaseID

	keepAliveCh <-chan *clientv3.LeaseKeepAliveResponse
	stopCh      chan struct{}
}

var _ registry.Registry = (*Registry)(nil)

func NewRegistry(config *Config) (*Registry, error) {
	if config == nil {
		config = DefaultConfig()
	}

	client, err := clientv3.New(clientv3.Config{
		Endpoints:   config.Endpoints,
		DialTimeout: config.DialTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("create etcd client: %w", err)
	}

	r := &Registry{
		client: client,
		config: config,
		stopCh: make(chan struct{}),
	}

	if err := r.createLease(context.Background()); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("create lease: %w", err)
	}

	return r, nil
}

func (r *Registry) createLease(ctx context.Context) error {
	grant, err := r.client.Grant(ctx, r.config.LeaseTTL)
	if err != nil {
		return fmt.Errorf("grant lease: %w", err)
	}

	r.leaseID = grant.ID

	keepAliveCh, err := r.client.KeepAlive(context.Background(), r.leaseID)
	if err != nil {
		return fmt.Errorf("keep alive lease: %w", err)
	}

	r.keepAliveCh = keepAliveCh

	go r.listenKeepAlive()

	return nil
}

func (r *Registry) listenKeepAlive() {
	for {
		select {
		case <-r.stopCh:
			return
		case resp, ok := <-r.keepAliveCh:
			if !ok || resp == nil {
				return
			}
		}
	}
}

func (r *Registry) Register(ctx context.Context, instance *registry.Instance) error {
	key := r.instanceKey(instance.ID)

	value, err := json.Marshal(instance)
	if err != nil {
		return fmt.Errorf("marshal instance: %w", err)
	}

	if _, err := r.client.Put(ctx, key, string(value), clientv3.WithLease(r.leaseID)); err != nil {
		return fmt.Errorf("put to etcd: %w", err)
	}

	return nil
}

func (r *Registry) Deregister(ctx context.Context, instanceID string) error {
	if _, err := r.client.Delete(ctx, r.instanceKey(instanceID)); err != nil {
		return fmt.Errorf("delete instance %s from etcd: %w", instanceID, err)
	}
	return nil
}

func (r *Registry) Close() error {
	close(r.stopCh)

	if r.leaseID != 0 {
		_, _ = r.client.Revoke(context.Background(), r.leaseID)
	}

	return r.client.Close()
}

func (r *Registry) instanceKey(instanceID string) string {
	return fmt.Sprintf("%s/%s", r.config.KeyPrefix, instanceID)
}
