package registry

import "regexp"

// Config holds the effective naming and registration rules for one registry.
// Every field has a concrete value once a registry or node is created; a
// unit's Config is fixed at declaration time and never changes afterward.
type Config struct {
	// CaseSensitive disables case folding of keys. When false, keys are
	// lower-cased on insert and lookup.
	CaseSensitive bool

	// Regex, when set, must match the original identifier of every unit
	// registered through the naming pipeline.
	Regex *regexp.Regexp

	// Prefix, when non-empty, is required at the start of every identifier.
	Prefix string

	// Suffix, when non-empty, is required at the end of every identifier.
	Suffix string

	// StripPrefix removes a required Prefix from the derived key.
	StripPrefix bool

	// StripSuffix removes a required Suffix from the derived key.
	StripSuffix bool

	// RegisterSelf makes a declared node insert itself into its own
	// registry in addition to its ancestors'.
	RegisterSelf bool

	// Recursive controls upward propagation: a node forwards descendant
	// registrations to its own parent only while Recursive is true.
	Recursive bool

	// SnakeCase converts PascalCase identifiers to snake_case keys.
	SnakeCase bool

	// Hyphen replaces underscores with hyphens in derived keys.
	Hyphen bool

	// Transform, when set, is applied last; its output is used verbatim.
	Transform func(string) string

	// Overwrite allows a new value to replace an existing key silently.
	Overwrite bool
}

// DefaultConfig returns the documented default configuration: keys are
// case-folded, required affixes are stripped, and propagation is recursive.
func DefaultConfig() Config {
	return Config{
		StripPrefix: true,
		StripSuffix: true,
		Recursive:   true,
	}
}

// Option overrides a single Config field. Options express partial overrides:
// fields without an option keep the parent's (or default) value.
type Option func(*Config)

// WithCaseSensitive sets whether keys preserve case.
func WithCaseSensitive(v bool) Option { return func(c *Config) { c.CaseSensitive = v } }

// WithRegex requires identifiers to match re. Pass nil to clear.
func WithRegex(re *regexp.Regexp) Option { return func(c *Config) { c.Regex = re } }

// WithPrefix requires identifiers to start with prefix.
func WithPrefix(prefix string) Option { return func(c *Config) { c.Prefix = prefix } }

// WithSuffix requires identifiers to end with suffix.
func WithSuffix(suffix string) Option { return func(c *Config) { c.Suffix = suffix } }

// WithStripPrefix sets whether a required prefix is removed from keys.
func WithStripPrefix(v bool) Option { return func(c *Config) { c.StripPrefix = v } }

// WithStripSuffix sets whether a required suffix is removed from keys.
func WithStripSuffix(v bool) Option { return func(c *Config) { c.StripSuffix = v } }

// WithRegisterSelf sets whether a node registers into its own registry.
func WithRegisterSelf(v bool) Option { return func(c *Config) { c.RegisterSelf = v } }

// WithRecursive sets whether registrations propagate past this unit.
func WithRecursive(v bool) Option { return func(c *Config) { c.Recursive = v } }

// WithSnakeCase sets whether derived keys are converted to snake_case.
func WithSnakeCase(v bool) Option { return func(c *Config) { c.SnakeCase = v } }

// WithHyphen sets whether underscores in derived keys become hyphens.
func WithHyphen(v bool) Option { return func(c *Config) { c.Hyphen = v } }

// WithTransform applies fn to every derived key as the final pipeline step.
func WithTransform(fn func(string) string) Option { return func(c *Config) { c.Transform = fn } }

// WithOverwrite sets whether existing keys may be replaced silently.
func WithOverwrite(v bool) Option { return func(c *Config) { c.Overwrite = v } }

// resolveConfig copies the parent's effective configuration and applies the
// child's overrides. It is pure and total: every field of the result is
// concrete. Siblings resolved from the same parent may diverge.
func resolveConfig(parent Config, opts []Option) Config {
	cfg := parent
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
