package registry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrNotFound = errors.New("instance not found")

// Registry announces a running handshake server so operators can discover
// live endpoints. Purely optional; the protocol itself never consults it.
type Registry interface {
	Register(ctx context.Context, instance *Instance) error
	Deregister(ctx context.Context, instanceID string) error
	Close() error
}

// Instance is one registered server endpoint.
type Instance struct {
	ID       string `json:"id"`
	Address  string `json:"address"`
	Strategy string `json:"strategy"`

	RegisterTime time.Time `json:"register_time"`
}

func NewInstance(address, strategy string) *Instance {
	return &Instance{
		ID:           fmt.Sprintf("%s-%s-%d", strategy, address, time.Now().Unix()),
		Address:      address,
		Strategy:     strategy,
		RegisterTime: time.Now(),
	}
}
