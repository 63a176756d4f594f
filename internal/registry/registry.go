// Package registry holds the name→bot mapping the web console reads. The
// hosting process installs the full mapping once at startup; every request
// handler reads it afterwards.
package registry

import (
	"maps"
	"sync"

	"github.com/MTMORGUE/botsymax/internal/domain"
)

// Registry maps bot names to live handles. The zero value is empty and ready
// to use. The lock exists only to keep wholesale replacement memory-safe
// while requests are being served; it makes no ordering or delivery promises
// around concurrent command submissions.
type Registry struct {
	mu   sync.RWMutex
	bots map[string]domain.Bot
}

func New() *Registry {
	return &Registry{}
}

// Set replaces the whole mapping. There are no merge semantics: bots absent
// from the new mapping disappear from all subsequent views and lookups.
func (r *Registry) Set(bots map[string]domain.Bot) {
	copied := maps.Clone(bots)

	r.mu.Lock()
	r.bots = copied
	r.mu.Unlock()
}

// Lookup returns the handle registered under name, or false for unknown
// names. Exact match only.
func (r *Registry) Lookup(name string) (domain.Bot, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bot, ok := r.bots[name]
	return bot, ok
}

// All returns a snapshot copy of the current mapping for iteration. Status
// and mood still come from the handles, so a snapshot taken at request time
// renders live state.
func (r *Registry) All() map[string]domain.Bot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return maps.Clone(r.bots)
}

// Len reports how many bots are registered.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.bots)
}
