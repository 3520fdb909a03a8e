package registry

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.False(t, cfg.CaseSensitive)
	assert.Nil(t, cfg.Regex)
	assert.Empty(t, cfg.Prefix)
	assert.Empty(t, cfg.Suffix)
	assert.True(t, cfg.StripPrefix)
	assert.True(t, cfg.StripSuffix)
	assert.False(t, cfg.RegisterSelf)
	assert.True(t, cfg.Recursive)
	assert.False(t, cfg.SnakeCase)
	assert.False(t, cfg.Hyphen)
	assert.Nil(t, cfg.Transform)
	assert.False(t, cfg.Overwrite)
}

func TestResolveConfig(t *testing.T) {
	parent := resolveConfig(DefaultConfig(), []Option{
		WithSnakeCase(true),
		WithPrefix("On"),
	})

	t.Run("overrides replace only the named fields", func(t *testing.T) {
		child := resolveConfig(parent, []Option{
			WithPrefix(""),
			WithRegex(regexp.MustCompile(`^[A-Z]`)),
		})

		assert.True(t, child.SnakeCase, "inherited")
		assert.Empty(t, child.Prefix, "overridden")
		assert.NotNil(t, child.Regex, "overridden")
		assert.True(t, child.Recursive, "inherited default")
	})

	t.Run("resolution does not mutate the parent", func(t *testing.T) {
		_ = resolveConfig(parent, []Option{WithSnakeCase(false)})
		assert.True(t, parent.SnakeCase)
		assert.Equal(t, "On", parent.Prefix)
	})
}

func TestNewRegistryConfig(t *testing.T) {
	r := New(WithCaseSensitive(true), WithOverwrite(true))
	cfg := r.Config()

	assert.True(t, cfg.CaseSensitive)
	assert.True(t, cfg.Overwrite)
	assert.True(t, cfg.Recursive, "defaults carried through")
}
