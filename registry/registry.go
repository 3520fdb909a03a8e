package registry

import (
	"fmt"
	"iter"
	"strings"
)

// Container is implemented by registered values that expose a nested
// Registry. Path lookups recurse through containers; Node is the canonical
// implementation.
type Container interface {
	Registry() *Registry
}

type entry struct {
	original string // key as supplied, before case folding
	value    any
}

// Registry is an insertion-ordered mapping from derived keys to registered
// values. Key comparison follows the registry's own case policy. Iteration
// reflects only the registry's direct entries, never descendants'.
type Registry struct {
	cfg     Config
	name    string
	entries map[string]entry
	order   []string
}

// New creates a standalone registry configured by opts on top of the
// default configuration.
func New(opts ...Option) *Registry {
	return newRegistry(resolveConfig(DefaultConfig(), opts), "")
}

func newRegistry(cfg Config, name string) *Registry {
	return &Registry{
		cfg:     cfg,
		name:    name,
		entries: make(map[string]entry),
	}
}

// Config returns the registry's effective configuration.
func (r *Registry) Config() Config { return r.cfg }

// Name returns the resolved key the registry's owner was registered under,
// or "" for standalone and root registries.
func (r *Registry) Name() string { return r.name }

// normalize applies the registry's case policy to a key.
func (r *Registry) normalize(key string) string {
	if r.cfg.CaseSensitive {
		return key
	}
	return strings.ToLower(key)
}

// collides reports whether inserting value under key would conflict with an
// existing entry under this registry's overwrite policy.
func (r *Registry) collides(key string, value any) bool {
	if r.cfg.Overwrite {
		return false
	}
	existing, ok := r.entries[r.normalize(key)]
	return ok && !sameUnit(existing.value, value)
}

// insert writes a single mapping, honoring the overwrite policy.
// Re-registering the identical value under the identical key is a no-op.
func (r *Registry) insert(key string, value any) error {
	norm := r.normalize(key)
	if existing, ok := r.entries[norm]; ok {
		if sameUnit(existing.value, value) {
			return nil
		}
		if !r.cfg.Overwrite {
			return fmt.Errorf("%w: %q already registered", ErrKeyCollision, key)
		}
	} else {
		r.order = append(r.order, norm)
	}
	r.entries[norm] = entry{original: key, value: value}
	return nil
}

// Lookup resolves a single-segment key against this registry's direct
// entries.
func (r *Registry) Lookup(key string) (any, error) {
	e, ok := r.entries[r.normalize(key)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return e.value, nil
}

// LookupPath resolves a multi-segment key, splitting on "." and "/". Each
// intermediate segment must resolve to a value exposing a nested Registry.
func (r *Registry) LookupPath(key string) (any, error) {
	segments := splitKey(key)
	cur := r
	for i, segment := range segments {
		v, err := cur.Lookup(segment)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
		}
		if i == len(segments)-1 {
			return v, nil
		}
		switch nested := v.(type) {
		case *Registry:
			cur = nested
		case Container:
			cur = nested.Registry()
		default:
			return nil, fmt.Errorf("%w: %q has no nested registry under %q", ErrKeyNotFound, segment, key)
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
}

// Get returns the value at key, or def when the key is missing. A string
// default is resolved with one extra path lookup (never chained further);
// if that lookup also misses, Get returns nil. Pass nil as def to get a
// plain absence marker.
func (r *Registry) Get(key string, def any) any {
	if v, err := r.LookupPath(key); err == nil {
		return v
	}
	if s, ok := def.(string); ok {
		if v, err := r.LookupPath(s); err == nil {
			return v
		}
		return nil
	}
	return def
}

// Contains reports whether a path lookup on key would succeed.
func (r *Registry) Contains(key string) bool {
	_, err := r.LookupPath(key)
	return err == nil
}

// Len returns the number of direct entries, aliases included.
func (r *Registry) Len() int { return len(r.entries) }

// Keys iterates the registry's direct keys in insertion order. The sequence
// is restartable: ranging again replays from the start.
func (r *Registry) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, k := range r.order {
			if !yield(k) {
				return
			}
		}
	}
}

// Values iterates the registered values in insertion order.
func (r *Registry) Values() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, k := range r.order {
			if !yield(r.entries[k].value) {
				return
			}
		}
	}
}

// Items iterates key/value pairs in insertion order.
func (r *Registry) Items() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, k := range r.order {
			if !yield(k, r.entries[k].value) {
				return
			}
		}
	}
}

// OriginalKey returns the key as it was supplied at registration, before
// case folding. Useful for display with case-insensitive registries.
func (r *Registry) OriginalKey(key string) (string, bool) {
	e, ok := r.entries[r.normalize(key)]
	if !ok {
		return "", false
	}
	return e.original, true
}

// KeyFor returns the key value was registered under. When a value carries
// aliases, the primary key is returned, not an alias.
func (r *Registry) KeyFor(value any) (string, bool) {
	for _, k := range r.order {
		if sameUnit(r.entries[k].value, value) {
			return k, true
		}
	}
	return "", false
}

// Clear removes every direct entry. The configuration is retained.
func (r *Registry) Clear() {
	r.entries = make(map[string]entry)
	r.order = nil
}

