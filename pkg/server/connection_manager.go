package server

import (
	"context"
	"sync"

	"send-email-api/internal/config"
)

// ConnectionManager builds the container once per Lambda execution
// environment and hands it to every invocation
type ConnectionManager struct {
	mu        sync.Mutex
	container *Container
	loadFn    func() (*config.Config, error)
}

var (
	globalConnectionManager *ConnectionManager
	connectionManagerOnce   sync.Once
)

// GetConnectionManager returns the global connection manager instance
func GetConnectionManager() *ConnectionManager {
	connectionManagerOnce.Do(func() {
		globalConnectionManager = NewConnectionManager(config.GetOptimizedConfig)
	})
	return globalConnectionManager
}

// NewConnectionManager creates a manager that loads configuration with loadFn
func NewConnectionManager(loadFn func() (*config.Config, error)) *ConnectionManager {
	return &ConnectionManager{loadFn: loadFn}
}

// GetContainer returns the service container, initializing it on first use.
// A failed initialization is retried on the next call.
func (cm *ConnectionManager) GetContainer(ctx context.Context) (*Container, error) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container != nil {
		return cm.container, nil
	}

	cfg, err := cm.loadFn()
	if err != nil {
		return nil, err
	}

	// The container outlives this invocation, so it must not inherit the
	// invocation's deadline
	container, err := NewContainer(context.WithoutCancel(ctx), cfg)
	if err != nil {
		return nil, err
	}

	cm.container = container
	return container, nil
}

// Cleanup releases the container
func (cm *ConnectionManager) Cleanup() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container == nil {
		return nil
	}
	err := cm.container.Close()
	cm.container = nil
	return err
}
