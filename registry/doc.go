// Package registry builds and queries name-to-value registries whose keys
// are derived automatically from declared identifiers, replacing hand-written
// string-to-constructor lookup tables.
//
// A Registry can be populated three ways:
//
//   - Directly, via Register, deriving keys from the declared names of Go
//     functions and types (or from an explicit name).
//   - Hierarchically, via NewRoot and Node.NewChild: each declared unit owns
//     its own sub-registry and new declarations propagate upward through the
//     ancestor chain according to each ancestor's Recursive setting.
//   - By walking a Namespace with Walk, flattening all discovered members
//     into a single registry.
//
// Key derivation runs a fixed pipeline configured per registry: prefix and
// suffix requirements, an optional regex requirement, snake-case or
// case-fold normalization, hyphenation, and a final free-form transform.
// Multi-segment keys like "pikachu.surfingpikachu" (or with "/" separators)
// resolve through nested registries.
//
// Registries are not safe for concurrent mutation; serialize Register and
// declaration calls externally. Lookups on a fully built registry touch only
// immutable state and are safe for unsynchronized concurrent reads.
package registry
