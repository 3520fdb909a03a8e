package registry

import "errors"

var (
	// ErrInvalidName indicates an identifier that fails the configured
	// prefix, suffix, or regex requirement, or an explicit name or alias
	// containing a path separator.
	ErrInvalidName = errors.New("invalid name")

	// ErrCannotDeriveName indicates a value whose declared name cannot be
	// determined by reflection.
	ErrCannotDeriveName = errors.New("cannot derive name")

	// ErrKeyCollision indicates an attempt to register a different value
	// under an existing key while Overwrite is disabled.
	ErrKeyCollision = errors.New("key collision")

	// ErrKeyNotFound indicates a lookup miss.
	ErrKeyNotFound = errors.New("key not found")
)
