package registry

// Namespace is an ordered collection of named members for Walk. Members are
// either registrable values or nested *Namespace values.
type Namespace struct {
	names  []string
	values map[string]any
}

// NewNamespace creates an empty namespace.
func NewNamespace() *Namespace {
	return &Namespace{values: make(map[string]any)}
}

// Add sets a member, keeping first-insertion order. It returns the
// namespace for chaining.
func (ns *Namespace) Add(name string, value any) *Namespace {
	if _, ok := ns.values[name]; !ok {
		ns.names = append(ns.names, name)
	}
	ns.values[name] = value
	return ns
}

// Walk builds a registry from a namespace's members. Nested namespaces are
// descended when the configuration is recursive and skipped otherwise; all
// discovered members are flattened into the single returned registry.
// Each namespace is visited at most once, so self-referential and mutually
// referential namespaces terminate.
func Walk(ns *Namespace, opts ...Option) (*Registry, error) {
	cfg := resolveConfig(DefaultConfig(), opts)
	reg := newRegistry(cfg, "")
	visited := make(map[*Namespace]struct{})
	if err := walkInto(reg, ns, visited); err != nil {
		return nil, err
	}
	return reg, nil
}

func walkInto(reg *Registry, ns *Namespace, visited map[*Namespace]struct{}) error {
	if ns == nil {
		return nil
	}
	if _, ok := visited[ns]; ok {
		return nil
	}
	visited[ns] = struct{}{}

	for _, name := range ns.names {
		value := ns.values[name]
		if nested, ok := value.(*Namespace); ok {
			if !reg.cfg.Recursive {
				continue
			}
			if err := walkInto(reg, nested, visited); err != nil {
				return err
			}
			continue
		}
		key, err := DeriveKey(name, reg.cfg)
		if err != nil {
			return err
		}
		if err := reg.insert(key, value); err != nil {
			return err
		}
	}
	return nil
}
