package properties

import "sync"

var (
	defaultMu       sync.Mutex
	defaultRegistry *Registry
)

// Init creates the process-wide registry.
// It must be called once, before Default, with the loaded client library.
func Init(client Client) (*Registry, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultRegistry != nil {
		return nil, ErrAlreadyInitialized
	}
	defaultRegistry = New(client)
	return defaultRegistry, nil
}

// Default returns the process-wide registry created by Init.
func Default() (*Registry, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultRegistry == nil {
		return nil, ErrNotInitialized
	}
	return defaultRegistry, nil
}

// Reset discards the process-wide registry so that Init can be called again.
func Reset() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultRegistry = nil
}
