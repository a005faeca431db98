//go:build !wasm

package internal

import (
	"sync"

	"github.com/petermattis/goid"
)

var runtimes sync.Map

// GetRuntime returns the ambient runtime bound to the calling goroutine,
// creating a default one on first use. Each goroutine gets its own
// isolated instance; explicitly constructed runtimes are unaffected.
func GetRuntime() *Runtime {
	gid := getGID()

	if r, ok := runtimes.Load(gid); ok {
		return r.(*Runtime)
	}

	r := NewRuntime(nil, nil, nil, nil)
	runtimes.Store(gid, r)
	return r
}

// SetRuntime rebinds the calling goroutine's ambient runtime.
func SetRuntime(r *Runtime) {
	runtimes.Store(getGID(), r)
}

func getGID() int64 {
	return goid.Get()
}
