//go:build wasm

package internal

import "sync"

var mu sync.Mutex
var globalRuntime *Runtime

// GetRuntime returns the single ambient runtime. Wasm is single threaded;
// one instance serves the whole program.
func GetRuntime() *Runtime {
	mu.Lock()
	defer mu.Unlock()

	if globalRuntime == nil {
		globalRuntime = NewRuntime(nil, nil, nil, nil)
	}

	return globalRuntime
}

// SetRuntime replaces the ambient runtime.
func SetRuntime(r *Runtime) {
	mu.Lock()
	defer mu.Unlock()

	globalRuntime = r
}
