// Package processor holds the open registry of named transformations.
//
// Data-source packages register their transformation sets at init time;
// the dispatcher performs a pure lookup, so new sources plug in without
// touching the dispatch mechanism.
package processor

import (
	"fmt"
	"sort"
	"sync"

	"go-file-processor/internal/procconfig"
	"go-file-processor/internal/table"
)

// Transform is a pure Table -> Table transformation.
type Transform func(table.Table) table.Table

var (
	registry   = make(map[string]Transform)
	registryMu sync.RWMutex
)

func key(class, method string) string {
	return class + "." + method
}

// Register adds a transformation under (class, method).
// Panics if the pair is already registered.
func Register(class, method string, fn Transform) {
	registryMu.Lock()
	defer registryMu.Unlock()

	k := key(class, method)
	if _, exists := registry[k]; exists {
		panic(fmt.Sprintf("processor already registered: %s", k))
	}

	registry[k] = fn
}

// Dispatch applies the transformation named by desc to t. An unresolved
// name returns an empty Table rather than an error; the caller tells the
// two apart only through the run log.
func Dispatch(t table.Table, desc procconfig.Descriptor) table.Table {
	registryMu.RLock()
	fn, ok := registry[key(desc.Class, desc.Method)]
	registryMu.RUnlock()

	if !ok {
		return table.Table{}
	}

	return fn(t)
}

// Names returns all registered (class, method) keys, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}

	sort.Strings(names)
	return names
}
