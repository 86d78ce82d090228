//go:build profile

package profiler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
	"syscall"
	"time"
)

// Enabled reports whether scopes are recorded in this build.
const Enabled = true

// Init allocates the event ring. capacity is the number of scope edges kept;
// older edges are overwritten.
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 20
	}
	ring.init(capacity)
}

// Start opens a scope and returns the func that closes it.
func Start(name string) func() {
	if !ring.ready.Load() {
		return func() {}
	}
	id := intern(name)
	open := time.Now().UnixNano()
	ring.push(edge{at: open, frame: id, open: true})
	return func() {
		ring.push(edge{at: max(open, time.Now().UnixNano()), frame: id})
	}
}

// Dump writes the recorded scopes to path in speedscope's evented format.
func Dump(path string) error {
	return writeSpeedscope(ring.snapshot(), path)
}

// OpenProfilerGraph dumps into the temp dir and launches speedscope on it.
func OpenProfilerGraph() (string, error) {
	path := filepath.Join(os.TempDir(), "groveui.profile.speedscope.json")
	if err := Dump(path); err != nil {
		return "", err
	}

	cmd := exec.Command("speedscope", path)
	if runtime.GOOS == "windows" {
		if spa, ok := hideWindowAttr().(*syscall.SysProcAttr); ok {
			cmd.SysProcAttr = spa
		}
	}
	if err := cmd.Start(); err != nil {
		log.Printf("profiler: launch speedscope: %v", err)
	}
	return path, nil
}

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

// ------ Event ring ------

type edge struct {
	at    int64
	frame int
	open  bool
}

type edgeRing struct {
	ready atomic.Bool
	size  uint64
	write atomic.Uint64
	edges []edge
}

var ring edgeRing

func (r *edgeRing) init(capacity int) {
	r.size = uint64(capacity)
	r.edges = make([]edge, r.size)
	r.write.Store(0)
	r.ready.Store(true)
}

func (r *edgeRing) push(e edge) {
	i := r.write.Add(1) - 1
	r.edges[i%r.size] = e
}

// snapshot returns the retained edges in write order.
func (r *edgeRing) snapshot() []edge {
	n := r.write.Load()
	if n == 0 {
		return nil
	}
	start := uint64(0)
	if n > r.size {
		start = n - r.size
	}
	out := make([]edge, 0, n-start)
	for k := start; k < n; k++ {
		out = append(out, r.edges[k%r.size])
	}
	return out
}

// ------ Frame names ------

var (
	framesMu sync.Mutex
	frames   []string
	frameIDs = map[string]int{}
)

func intern(name string) int {
	framesMu.Lock()
	defer framesMu.Unlock()
	if id, ok := frameIDs[name]; ok {
		return id
	}
	id := len(frames)
	frameIDs[name] = id
	frames = append(frames, name)
	return id
}

// ------ Speedscope ------

type ssFile struct {
	Schema   string      `json:"$schema"`
	Shared   ssShared    `json:"shared"`
	Profiles []ssProfile `json:"profiles"`
	Exporter string      `json:"exporter,omitempty"`
	Name     string      `json:"name,omitempty"`
}

type ssShared struct {
	Frames []ssFrame `json:"frames"`
}

type ssFrame struct {
	Name string `json:"name"`
}

type ssProfile struct {
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	Unit       string    `json:"unit"`
	StartValue int64     `json:"startValue"`
	EndValue   int64     `json:"endValue"`
	Events     []ssEvent `json:"events"`
}

type ssEvent struct {
	Type  string `json:"type"` // "O" or "C"
	At    int64  `json:"at"`   // µs since the first edge
	Frame int    `json:"frame"`
}

var errNoEvents = errors.New("profiler: no events to dump")

// events converts raw edges into balanced speedscope events. Closes that do
// not match the innermost open scope are dropped (their open was overwritten
// in the ring); scopes still open at the end are closed at the last time.
func events(edges []edge) ([]ssEvent, int64) {
	if len(edges) == 0 {
		return nil, 0
	}
	base := edges[0].at
	out := make([]ssEvent, 0, len(edges)+16)
	stack := make([]int, 0, 64)
	last := int64(0)
	for _, e := range edges {
		at := max(last, (e.at-base)/1000)
		if e.open {
			out = append(out, ssEvent{Type: "O", At: at, Frame: e.frame})
			stack = append(stack, e.frame)
		} else {
			if len(stack) == 0 || stack[len(stack)-1] != e.frame {
				continue
			}
			stack = stack[:len(stack)-1]
			out = append(out, ssEvent{Type: "C", At: at, Frame: e.frame})
		}
		last = at
	}
	for i := len(stack) - 1; i >= 0; i-- {
		out = append(out, ssEvent{Type: "C", At: last, Frame: stack[i]})
	}
	return out, last
}

func writeSpeedscope(edges []edge, path string) error {
	evs, end := events(edges)
	if len(evs) == 0 {
		return errNoEvents
	}

	framesMu.Lock()
	fs := make([]ssFrame, len(frames))
	for i, name := range frames {
		fs[i] = ssFrame{Name: name}
	}
	framesMu.Unlock()

	doc := ssFile{
		Schema: "https://www.speedscope.app/file-format-schema.json",
		Shared: ssShared{Frames: fs},
		Profiles: []ssProfile{{
			Type:     "evented",
			Name:     "groveui",
			Unit:     "microseconds",
			EndValue: end,
			Events:   evs,
		}},
		Exporter: "groveui-profiler",
		Name:     "groveui capture",
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("profiler: %w", err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&doc); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("profiler: encode: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("profiler: %w", err)
	}
	return os.Rename(tmp, path)
}
