package registry

import "fmt"

// RegisterOption modifies per-value registration parameters.
type RegisterOption func(*registration)

type registration struct {
	name       string
	identifier string
	aliases    []string
}

// WithName registers under name verbatim, bypassing the naming pipeline.
// The name must not contain path separators.
func WithName(name string) RegisterOption {
	return func(reg *registration) { reg.name = name }
}

// WithIdentifier supplies the identifier the naming pipeline runs on,
// instead of reflecting it off the registered value.
func WithIdentifier(identifier string) RegisterOption {
	return func(reg *registration) { reg.identifier = identifier }
}

// WithAliases registers the value under extra keys. Aliases bypass the
// naming pipeline but must not contain path separators.
func WithAliases(aliases ...string) RegisterOption {
	return func(reg *registration) { reg.aliases = append(reg.aliases, aliases...) }
}

// Register adds value under a key derived from its declared name (or from
// WithIdentifier, or used verbatim from WithName) and under any aliases.
// It returns the resolved primary key. Registration is all-or-nothing: a
// derivation failure or collision leaves the registry untouched.
func (r *Registry) Register(value any, opts ...RegisterOption) (string, error) {
	var reg registration
	for _, opt := range opts {
		opt(&reg)
	}

	key, err := r.resolveKey(value, reg)
	if err != nil {
		return "", err
	}

	keys := []string{key}
	seen := map[string]struct{}{r.normalize(key): {}}
	for _, alias := range reg.aliases {
		if err := validateExplicit(alias); err != nil {
			return "", err
		}
		norm := r.normalize(alias)
		if _, dup := seen[norm]; dup {
			return "", fmt.Errorf("%w: duplicate alias %q", ErrKeyCollision, alias)
		}
		seen[norm] = struct{}{}
		keys = append(keys, alias)
	}

	for _, k := range keys {
		if r.collides(k, value) {
			return "", fmt.Errorf("%w: %q already registered", ErrKeyCollision, k)
		}
	}
	for _, k := range keys {
		if err := r.insert(k, value); err != nil {
			return "", err
		}
	}
	return r.normalize(key), nil
}

// resolveKey produces the primary key for value under this registry's
// configuration.
func (r *Registry) resolveKey(value any, reg registration) (string, error) {
	if reg.name != "" {
		if err := validateExplicit(reg.name); err != nil {
			return "", err
		}
		return reg.name, nil
	}
	identifier := reg.identifier
	if identifier == "" {
		var err error
		identifier, err = deriveIdentifier(value)
		if err != nil {
			return "", err
		}
	}
	return DeriveKey(identifier, r.cfg)
}

// MustRegister is Register for init() blocks: it panics on error.
func (r *Registry) MustRegister(value any, opts ...RegisterOption) string {
	key, err := r.Register(value, opts...)
	if err != nil {
		panic(err)
	}
	return key
}

// RegisterAll registers each value in turn with no per-value options.
// It stops at the first error.
func (r *Registry) RegisterAll(values ...any) error {
	for _, v := range values {
		if _, err := r.Register(v); err != nil {
			return err
		}
	}
	return nil
}
