package registry

import "fmt"

// Node is one unit in a registry hierarchy. Every node owns exactly one
// Registry, holds the payload value it was declared with, and carries the
// effective configuration resolved at declaration time.
type Node struct {
	parent *Node
	cfg    Config
	name   string
	value  any
	reg    *Registry
}

// Declaration carries the per-unit parameters of a registration event.
// The zero value declares a plain child with no overrides.
type Declaration struct {
	// Name registers the unit under this key verbatim, bypassing the
	// naming pipeline. It must not contain path separators.
	Name string

	// Aliases are extra keys for the unit. They bypass the pipeline but
	// must not contain path separators.
	Aliases []string

	// Skip declares the unit without registering it anywhere.
	Skip bool

	// Options override the parent's effective configuration for this unit
	// and its descendants.
	Options []Option
}

// NewRoot creates the root of a registry hierarchy. The root's configuration
// is the default configuration with opts applied.
func NewRoot(opts ...Option) *Node {
	cfg := resolveConfig(DefaultConfig(), opts)
	return &Node{cfg: cfg, reg: newRegistry(cfg, "")}
}

// NewChild declares a new unit under n with optional configuration
// overrides. It is shorthand for Declare with only Options set.
func (n *Node) NewChild(identifier string, value any, opts ...Option) (*Node, error) {
	return n.Declare(identifier, value, Declaration{Options: opts})
}

// Declare is the registration event hook: it resolves the unit's effective
// configuration, derives its key under the parent's configuration,
// validates aliases, and propagates the new entry up the ancestor chain.
// External frameworks that create units through their own machinery call
// Declare at their own creation time.
//
// Propagation is all-or-nothing: every target store is checked for
// collisions before any store is written, so a failed declaration registers
// the unit in zero stores.
func (n *Node) Declare(identifier string, value any, d Declaration) (*Node, error) {
	cfg := resolveConfig(n.cfg, d.Options)

	// A unit's own key is subject to its parent's configuration, not its
	// own.
	var key string
	var err error
	if d.Name != "" {
		if err := validateExplicit(d.Name); err != nil {
			return nil, err
		}
		key = d.Name
	} else if key, err = DeriveKey(identifier, n.cfg); err != nil {
		return nil, err
	}

	child := &Node{
		parent: n,
		cfg:    cfg,
		name:   key,
		value:  value,
		reg:    newRegistry(cfg, key),
	}

	if d.Skip {
		return child, nil
	}

	keys := []string{key}
	seen := map[string]struct{}{key: {}}
	for _, alias := range d.Aliases {
		if err := validateExplicit(alias); err != nil {
			return nil, err
		}
		if _, dup := seen[alias]; dup {
			return nil, fmt.Errorf("%w: duplicate alias %q", ErrKeyCollision, alias)
		}
		seen[alias] = struct{}{}
		keys = append(keys, alias)
	}

	targets := child.propagationTargets()
	for _, target := range targets {
		for _, k := range keys {
			if target.collides(k, child) {
				return nil, fmt.Errorf("%w: %q already registered in %q", ErrKeyCollision, k, target.Name())
			}
		}
	}
	for _, target := range targets {
		for _, k := range keys {
			if err := target.insert(k, child); err != nil {
				return nil, err
			}
		}
	}

	return child, nil
}

// propagationTargets returns the stores a new declaration of n is inserted
// into: n's own store when RegisterSelf is set, the direct parent always,
// and each further ancestor while the previous one permits recursion. The
// first ancestor with Recursive disabled still receives the entry but stops
// the walk.
func (n *Node) propagationTargets() []*Registry {
	var targets []*Registry
	if n.cfg.RegisterSelf {
		targets = append(targets, n.reg)
	}
	for p := n.parent; p != nil; p = p.parent {
		targets = append(targets, p.reg)
		if !p.cfg.Recursive {
			break
		}
	}
	return targets
}

// Name returns the key the node was registered under: the value actually
// used as the mapping key, never an alias.
func (n *Node) Name() string { return n.name }

// Value returns the payload the node was declared with.
func (n *Node) Value() any { return n.value }

// Config returns the node's effective configuration.
func (n *Node) Config() Config { return n.cfg }

// Parent returns the node's direct parent, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Registry exposes the node's own store. The mapping surface lives here,
// deliberately separate from whatever the node's payload exposes.
func (n *Node) Registry() *Registry { return n.reg }
