package unit

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry indexes declared units and prefixes by name and symbol. It
// backs the declaration surface: system catalogs register their units
// from init(), and the parser and CLI resolve tokens through it.
type Registry struct {
	mu           sync.RWMutex
	byName       map[string]*Unit
	bySymbol     map[string]*Unit
	prefixByName map[string]*Prefix
	prefixBySym  map[string]*Prefix
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName:       map[string]*Unit{},
		bySymbol:     map[string]*Unit{},
		prefixByName: map[string]*Prefix{},
		prefixBySym:  map[string]*Prefix{},
	}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry that system catalogs
// populate at initialization.
func Default() *Registry {
	return defaultRegistry
}

// Register adds a named unit. Duplicate names or symbols are rejected
// so catalog collisions surface at declaration time.
func (r *Registry) Register(u *Unit) error {
	if u.kind != kindNamed {
		return fmt.Errorf("%w: only named units can be registered", ErrBadDeclaration)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[u.name]; ok {
		return fmt.Errorf("%w: unit name %q already registered", ErrBadDeclaration, u.name)
	}
	if prev, ok := r.bySymbol[u.sym.Unicode]; ok {
		return fmt.Errorf("%w: symbol %q already registered for %q", ErrBadDeclaration, u.sym.Unicode, prev.name)
	}
	r.byName[u.name] = u
	r.bySymbol[u.sym.Unicode] = u
	if u.sym.ASCII != u.sym.Unicode {
		if prev, ok := r.bySymbol[u.sym.ASCII]; ok {
			delete(r.bySymbol, u.sym.Unicode)
			delete(r.byName, u.name)
			return fmt.Errorf("%w: symbol %q already registered for %q", ErrBadDeclaration, u.sym.ASCII, prev.name)
		}
		r.bySymbol[u.sym.ASCII] = u
	}
	return nil
}

// RegisterPrefix adds a prefix declaration.
func (r *Registry) RegisterPrefix(p *Prefix) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.prefixByName[p.name]; ok {
		return fmt.Errorf("%w: prefix name %q already registered", ErrBadDeclaration, p.name)
	}
	if prev, ok := r.prefixBySym[p.sym.Unicode]; ok {
		return fmt.Errorf("%w: prefix symbol %q already registered for %q", ErrBadDeclaration, p.sym.Unicode, prev.name)
	}
	r.prefixByName[p.name] = p
	r.prefixBySym[p.sym.Unicode] = p
	if p.sym.ASCII != p.sym.Unicode {
		r.prefixBySym[p.sym.ASCII] = p
	}
	return nil
}

// ByName returns the unit registered under a name.
func (r *Registry) ByName(name string) (*Unit, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byName[name]
	return u, ok
}

// BySymbol returns the unit registered under a unicode or ascii symbol.
func (r *Registry) BySymbol(sym string) (*Unit, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.bySymbol[sym]
	return u, ok
}

// Resolve maps a token to a unit: registered symbol first, then name,
// then a registered prefix followed by a prefixable unit ("km" when
// only "k" and "m" are known). Longer prefix symbols take precedence,
// so "da" wins over "d" for the same token. Prefix resolutions are not
// registered.
func (r *Registry) Resolve(token string) (*Unit, bool) {
	if u, ok := r.BySymbol(token); ok {
		return u, true
	}
	if u, ok := r.ByName(token); ok {
		return u, true
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	syms := make([]string, 0, len(r.prefixBySym))
	for sym := range r.prefixBySym {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool {
		if len(syms[i]) != len(syms[j]) {
			return len(syms[i]) > len(syms[j])
		}
		return syms[i] < syms[j]
	})
	for _, sym := range syms {
		rest, ok := strings.CutPrefix(token, sym)
		if !ok || rest == "" {
			continue
		}
		if u, found := r.bySymbol[rest]; found && u.Prefixable() {
			return r.prefixBySym[sym].apply(u), true
		}
	}
	return nil, false
}

// Units returns all registered units sorted by name.
func (r *Registry) Units() []*Unit {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Unit, 0, len(r.byName))
	for _, u := range r.byName {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// Prefixes returns all registered prefixes sorted by name.
func (r *Registry) Prefixes() []*Prefix {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Prefix, 0, len(r.prefixByName))
	for _, p := range r.prefixByName {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}
