// In-memory implementation of the server registry.
// Used for testing and development purposes.

package memory

import (
	"context"
	"sync"

	"tcp-handshake/pkg/registry"
)

type Registry struct {
	instances map[string]*registry.Instance
	mu        sync.RWMutex
}

var _ registry.Registry = (*Registry)(nil)

func NewRegistry() *Registry {
	return &Registry{
		instances: make(map[string]*registry.Instance),
	}
}

func (r *Registry) Register(ctx context.Context, instance *registry.Instance) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.instances[instance.ID] = instance
	return nil
}

func (r *Registry) Deregister(ctx context.Context, instanceID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.instances[instanceID]; !exists {
		return registry.ErrNotFound
	}

	delete(r.instances, instanceID)
	return nil
}

func (r *Registry) Instances() []*registry.Instance {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*registry.Instance, 0, len(r.instances))
	for _, inst := range r.instances {
		out = append(out, inst)
	}
	return out
}

func (r *Registry) Close() error {
	return nil
}
