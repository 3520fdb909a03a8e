package registry

import (
	"fmt"
	"reflect"
	"regexp"
	"runtime"
	"strings"
)

var (
	snakeCaseWordStart = regexp.MustCompile(`(.)([A-Z][a-z]+)`)
	snakeCaseDunder    = regexp.MustCompile(`__([A-Z])`)
	snakeCaseBoundary  = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// toSnakeCase converts a PascalCase identifier to snake_case. A lowercase or
// digit followed by an uppercase letter starts a new word; runs of uppercase
// letters stay joined ("HTTPServer" becomes "http_server").
func toSnakeCase(name string) string {
	name = snakeCaseWordStart.ReplaceAllString(name, "${1}_${2}")
	name = snakeCaseDunder.ReplaceAllString(name, "_${1}")
	name = snakeCaseBoundary.ReplaceAllString(name, "${1}_${2}")
	return strings.ToLower(name)
}

// splitKey splits a multi-segment key on "." and "/".
func splitKey(key string) []string {
	return strings.Split(strings.ReplaceAll(key, "/", "."), ".")
}

// validateExplicit checks an explicit name or alias. Explicit names bypass
// the naming pipeline entirely but must not contain path separators.
func validateExplicit(name string) error {
	if strings.ContainsAny(name, "./") {
		return fmt.Errorf("%w: %q cannot contain %q or %q", ErrInvalidName, name, ".", "/")
	}
	return nil
}

// DeriveKey runs the naming pipeline on identifier under cfg and returns the
// final lookup key. The pipeline order is fixed: prefix requirement and
// strip, suffix requirement and strip, regex requirement (against the
// original identifier), snake-case or case-fold, hyphenation, transform.
func DeriveKey(identifier string, cfg Config) (string, error) {
	key := identifier

	if cfg.Prefix != "" {
		if !strings.HasPrefix(identifier, cfg.Prefix) {
			return "", fmt.Errorf("%w: %q must start with %q", ErrInvalidName, identifier, cfg.Prefix)
		}
		if cfg.StripPrefix {
			key = key[len(cfg.Prefix):]
		}
	}

	if cfg.Suffix != "" {
		if !strings.HasSuffix(identifier, cfg.Suffix) {
			return "", fmt.Errorf("%w: %q must end with %q", ErrInvalidName, identifier, cfg.Suffix)
		}
		if cfg.StripSuffix {
			key = key[:len(key)-len(cfg.Suffix)]
		}
	}

	if cfg.Regex != nil && !cfg.Regex.MatchString(identifier) {
		return "", fmt.Errorf("%w: %q must match %q", ErrInvalidName, identifier, cfg.Regex.String())
	}

	if cfg.SnakeCase {
		key = toSnakeCase(key)
	} else if !cfg.CaseSensitive {
		key = strings.ToLower(key)
	}

	if cfg.Hyphen {
		key = strings.ReplaceAll(key, "_", "-")
	}

	if cfg.Transform != nil {
		key = cfg.Transform(key)
	}

	return key, nil
}

// deriveIdentifier returns the declared name of v: the function name for
// funcs, the type name for named types (through any levels of pointer).
func deriveIdentifier(v any) (string, error) {
	if v == nil {
		return "", fmt.Errorf("%w: nil value", ErrCannotDeriveName)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Func {
		fn := runtime.FuncForPC(rv.Pointer())
		if fn == nil {
			return "", fmt.Errorf("%w: anonymous function", ErrCannotDeriveName)
		}
		name := fn.Name()
		// Closures get compiler-generated names like "pkg.Caller.func1".
		if strings.Contains(name, ".func") {
			return "", fmt.Errorf("%w: anonymous function", ErrCannotDeriveName)
		}
		if i := strings.LastIndexByte(name, '.'); i >= 0 {
			name = name[i+1:]
		}
		// Method values carry a "-fm" suffix.
		name = strings.TrimSuffix(name, "-fm")
		if name == "" {
			return "", fmt.Errorf("%w: anonymous function", ErrCannotDeriveName)
		}
		return name, nil
	}

	t := rv.Type()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return "", fmt.Errorf("%w: unnamed %s value", ErrCannotDeriveName, t.Kind())
	}
	return t.Name(), nil
}

// sameUnit reports whether a and b are the same registered value. Reference
// kinds compare by identity so re-registering the same function is a no-op
// rather than a collision.
func sameUnit(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Kind() != rb.Kind() {
		return false
	}
	switch ra.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.UnsafePointer:
		return ra.Pointer() == rb.Pointer()
	}
	if ra.Type() != rb.Type() || !ra.Type().Comparable() {
		return false
	}
	return a == b
}
