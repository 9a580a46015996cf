// Package export: the format-name → adapter-function registry.
package export

import (
	"errors"
	"sort"
	"sync"

	"github.com/katalvlaran/tempograph/convert"
	"github.com/katalvlaran/tempograph/core"
	"github.com/katalvlaran/tempograph/temporal"
)

// Sentinel errors for the adapter registry.
var (
	// ErrUnknownFormat indicates no adapter is registered under the name.
	ErrUnknownFormat = errors.New("export: unknown target format")

	// ErrBadAdapter indicates a registration with an empty name or nil function.
	ErrBadAdapter = errors.New("export: adapter name and function must be non-empty")
)

// Adapter converts one graph into a third-party representation. Adapters
// must not mutate their input.
type Adapter func(g *core.Graph) (any, error)

var (
	mu       sync.RWMutex
	registry = make(map[string]Adapter)
)

// Register makes an adapter available under the given format name,
// replacing any previous adapter with that name. Adding a target format
// never touches the converters: they look adapters up by name only.
func Register(name string, fn Adapter) error {
	if name == "" || fn == nil {
		return ErrBadAdapter
	}
	mu.Lock()
	registry[name] = fn
	mu.Unlock()

	return nil
}

// Formats returns the registered format names, sorted.
func Formats() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// lookup resolves a format name.
func lookup(name string) (Adapter, error) {
	mu.RLock()
	fn, ok := registry[name]
	mu.RUnlock()
	if !ok {
		return nil, ErrUnknownFormat
	}

	return fn, nil
}

// Convert runs the named adapter on one graph.
func Convert(g *core.Graph, format string) (any, error) {
	fn, err := lookup(format)
	if err != nil {
		return nil, err
	}

	return fn(g)
}

// ConvertTemporal runs the named adapter once per snapshot and returns the
// results in snapshot order.
func ConvertTemporal(tg *temporal.Graph, format string) ([]any, error) {
	fn, err := lookup(format)
	if err != nil {
		return nil, err
	}
	out := make([]any, 0, tg.Len())
	for _, s := range tg.Snapshots() {
		converted, err := fn(s)
		if err != nil {
			return nil, err
		}
		out = append(out, converted)
	}

	return out, nil
}

// ConvertStatic flattens the container first and runs the named adapter
// once on the union graph.
func ConvertStatic(tg *temporal.Graph, format string) (any, error) {
	fn, err := lookup(format)
	if err != nil {
		return nil, err
	}

	return fn(convert.ToStatic(tg))
}
