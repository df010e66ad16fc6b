package sources

import (
	"sort"
	"sync"

	"github.com/danuarta/newswatch/internal/types"
)

var (
	mu       sync.RWMutex
	registry = make(map[string]*Profile)
)

// Register adds a profile to the registry. Registering the same name twice
// replaces the earlier profile.
func Register(p *Profile) {
	mu.Lock()
	defer mu.Unlock()
	registry[p.Name] = p
}

// Get returns the profile registered under name.
func Get(name string) (*Profile, error) {
	mu.RLock()
	defer mu.RUnlock()
	p, ok := registry[name]
	if !ok {
		return nil, types.ErrUnknownSource
	}
	return p, nil
}

// Names returns the registered profile names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
