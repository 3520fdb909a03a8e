package regconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/autoreg/registry"
)

func TestParse(t *testing.T) {
	t.Run("full profile", func(t *testing.T) {
		p, err := Parse([]byte(`
snake_case: true
hyphen: true
suffix: Handler
strip_suffix: false
pattern: "^[A-Z]"
recursive: false
`))
		require.NoError(t, err)

		require.NotNil(t, p.SnakeCase)
		assert.True(t, *p.SnakeCase)
		require.NotNil(t, p.Suffix)
		assert.Equal(t, "Handler", *p.Suffix)
		require.NotNil(t, p.StripSuffix)
		assert.False(t, *p.StripSuffix)
		require.NotNil(t, p.Recursive)
		assert.False(t, *p.Recursive)
		assert.Nil(t, p.CaseSensitive, "unset fields stay nil")
	})

	t.Run("empty document", func(t *testing.T) {
		p, err := Parse([]byte(""))
		require.NoError(t, err)
		assert.Nil(t, p.SnakeCase)
	})

	t.Run("invalid pattern rejected", func(t *testing.T) {
		_, err := Parse([]byte(`pattern: "["`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid pattern")
	})

	t.Run("invalid yaml rejected", func(t *testing.T) {
		_, err := Parse([]byte("snake_case: [unclosed"))
		assert.Error(t, err)
	})
}

func TestProfile_Merge(t *testing.T) {
	yes := true
	no := false
	suffix := "Unit"

	base := &Profile{SnakeCase: &yes, Recursive: &yes}
	base.Merge(&Profile{Recursive: &no, Suffix: &suffix})

	assert.True(t, *base.SnakeCase, "untouched field survives")
	assert.False(t, *base.Recursive, "set field replaced")
	assert.Equal(t, "Unit", *base.Suffix, "new field adopted")

	base.Merge(nil)
	assert.Equal(t, "Unit", *base.Suffix)
}

func TestProfile_Options(t *testing.T) {
	p, err := Parse([]byte(`
snake_case: true
prefix: Sensor
`))
	require.NoError(t, err)

	opts, err := p.Options()
	require.NoError(t, err)

	r := registry.New(opts...)
	key, err := r.Register("payload", registry.WithIdentifier("SensorAirQuality"))
	require.NoError(t, err)
	assert.Equal(t, "air_quality", key)
}

func TestProfile_Config(t *testing.T) {
	p, err := Parse([]byte("case_sensitive: true"))
	require.NoError(t, err)

	cfg, err := p.Config()
	require.NoError(t, err)
	assert.True(t, cfg.CaseSensitive)
	assert.True(t, cfg.Recursive, "library default preserved")
	assert.True(t, cfg.StripSuffix, "library default preserved")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "autoreg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hyphen: true"), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, p.Hyphen)
	assert.True(t, *p.Hyphen)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.True(t, os.IsNotExist(err))
}

func TestLoader_ProjectDiscovery(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(root, ProjectProfileFile), []byte("snake_case: true"), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(wd) })
	require.NoError(t, os.Chdir(nested))

	p, err := NewLoader(nil).Load()
	require.NoError(t, err)
	require.NotNil(t, p.SnakeCase)
	assert.True(t, *p.SnakeCase)
}
