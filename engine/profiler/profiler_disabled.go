//go:build !profile

package profiler

import "runtime"

// Enabled reports whether scopes are recorded in this build.
const Enabled = false

func Init(capacity int)                  {}
func Start(name string) func()           { return nop }
func Dump(path string) error             { return nil }
func OpenProfilerGraph() (string, error) { return "", nil }

func MemoryUsage() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc
}

func MemoryAllocs() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Mallocs
}

func NumGoroutine() int { return runtime.NumGoroutine() }
func NumCPU() int       { return runtime.NumCPU() }

func nop() {}
