package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalk_Flat(t *testing.T) {
	ns := NewNamespace().
		Add("SocketWrench", newPikachu).
		Add("TorqueWrench", "payload")

	r, err := Walk(ns, WithSnakeCase(true))
	require.NoError(t, err)

	assert.Equal(t, 2, r.Len())
	assert.True(t, r.Contains("socket_wrench"))
	assert.Equal(t, "payload", r.Get("torque_wrench", nil))
}

func TestWalk_NestedNamespaces(t *testing.T) {
	inner := NewNamespace().Add("InnerTool", 1)
	outer := NewNamespace().
		Add("OuterTool", 2).
		Add("sub", inner)

	t.Run("recursive flattens into one store", func(t *testing.T) {
		r, err := Walk(outer)
		require.NoError(t, err)

		assert.Equal(t, 2, r.Len())
		assert.True(t, r.Contains("outertool"))
		assert.True(t, r.Contains("innertool"))
		assert.False(t, r.Contains("sub"))
	})

	t.Run("non-recursive skips nested namespaces", func(t *testing.T) {
		r, err := Walk(outer, WithRecursive(false))
		require.NoError(t, err)

		assert.Equal(t, 1, r.Len())
		assert.True(t, r.Contains("outertool"))
		assert.False(t, r.Contains("innertool"))
	})
}

func TestWalk_CycleAvoidance(t *testing.T) {
	a := NewNamespace().Add("AlphaTool", 1)
	b := NewNamespace().Add("BetaTool", 2)
	a.Add("b", b)
	b.Add("a", a)
	a.Add("self", a)

	r, err := Walk(a)
	require.NoError(t, err)

	assert.Equal(t, 2, r.Len())
	assert.True(t, r.Contains("alphatool"))
	assert.True(t, r.Contains("betatool"))
}

func TestWalk_NamingFailuresAbort(t *testing.T) {
	ns := NewNamespace().
		Add("SensorTemperature", 1).
		Add("Humidity", 2)

	_, err := Walk(ns, WithPrefix("Sensor"))
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestWalk_MemberConfigUsesNamespaceConfig(t *testing.T) {
	ns := NewNamespace().Add("UploadHandler", 1)

	r, err := Walk(ns, WithSuffix("Handler"))
	require.NoError(t, err)
	assert.True(t, r.Contains("upload"))
}

func TestWalk_CollisionPolicy(t *testing.T) {
	ns := NewNamespace().
		Add("Tool", 1).
		Add("TOOL", 2)

	t.Run("default collides case-insensitively", func(t *testing.T) {
		_, err := Walk(ns)
		assert.ErrorIs(t, err, ErrKeyCollision)
	})

	t.Run("overwrite keeps the last member", func(t *testing.T) {
		r, err := Walk(ns, WithOverwrite(true))
		require.NoError(t, err)
		assert.Equal(t, 2, r.Get("tool", nil))
	})

	t.Run("case sensitive keeps both", func(t *testing.T) {
		r, err := Walk(ns, WithCaseSensitive(true))
		require.NoError(t, err)
		assert.Equal(t, 2, r.Len())
		assert.Equal(t, 1, r.Get("Tool", nil))
		assert.Equal(t, 2, r.Get("TOOL", nil))
	})
}
