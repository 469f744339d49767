package taglog

/*
Alias registry: named shortcuts for style token lists. An alias registered
as "alert" -> "bold,red" makes <alert>...</> equivalent to <bold,red>...</>.

The registry is the only shared mutable state in the package, so every
method takes the lock; lookups return owned string values that stay valid
after later mutations. Names are matched exactly as registered (markup tag
bodies are not trimmed or case-folded before lookup).
*/

import (
	"errors"
	"maps"
	"slices"
	"sync"

	"github.com/BurntSushi/toml"
)

const (
	// Error messages used across registry operations (used for testing).
	_ERROR_MESSAGE_EMPTY_ALIAS = "palette contains an alias with empty name"
)

// AliasRegistry maps alias names to style token lists. Safe for concurrent
// use by multiple goroutines.
type AliasRegistry struct {
	mtx     sync.RWMutex
	entries map[string]string
}

// NewAliasRegistry returns an empty registry.
func NewAliasRegistry() *AliasRegistry {
	return &AliasRegistry{entries: map[string]string{}}
}

// Register inserts or overwrites an alias (last writer wins). The token
// list is kept verbatim; it is classified on every use, so registering
// junk simply produces unstyled spans.
func (r *AliasRegistry) Register(name, tokens string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	if r.entries == nil {
		r.entries = map[string]string{}
	}
	r.entries[name] = tokens
}

// Lookup returns the token list registered under name. Safe on a nil
// receiver (reports a miss), which lets an unconfigured compiler run
// without aliases.
func (r *AliasRegistry) Lookup(name string) (string, bool) {
	if r == nil {
		return "", false
	}
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	tokens, found := r.entries[name]
	return tokens, found
}

// Clear removes all registered aliases.
func (r *AliasRegistry) Clear() {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	clear(r.entries)
}

// Len returns the number of registered aliases.
func (r *AliasRegistry) Len() int {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return len(r.entries)
}

// Names returns the registered alias names in sorted order.
func (r *AliasRegistry) Names() []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return slices.Sorted(maps.Keys(r.entries))
}

// palette is the on-disk shape of an alias palette file:
//
//	[aliases]
//	alert = "bold,red"
//	note  = "italic,cyan"
type palette struct {
	Aliases map[string]string `toml:"aliases"`
}

// LoadPaletteFile reads a TOML palette file and registers every alias from
// its [aliases] table. Returns the number of aliases registered. A file
// with any empty alias name is rejected as a whole, nothing gets registered.
func (r *AliasRegistry) LoadPaletteFile(path string) (int, error) {
	var p palette
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return 0, err
	}
	for name := range p.Aliases {
		if name == "" {
			return 0, errors.New(_ERROR_MESSAGE_EMPTY_ALIAS)
		}
	}
	for name, tokens := range p.Aliases {
		r.Register(name, tokens)
	}
	return len(p.Aliases), nil
}
