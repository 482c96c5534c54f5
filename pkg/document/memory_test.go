package document

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStoreRoot(t *testing.T) {
	store := NewStore()
	require.NotNil(t, store.Main())
	require.Same(t, store.Main().(*Node), store.Root())
}

func TestNodeAttributes(t *testing.T) {
	store := NewStore()
	n := store.Root().NewChild()

	_, ok := n.Name()
	require.False(t, ok, "fresh label has no name")
	_, ok = n.Shape()
	require.False(t, ok, "fresh label has no shape")
	_, ok = n.Color(ColorSurface)
	require.False(t, ok, "fresh label has no color")
	require.False(t, n.IsFreeShape())
	require.False(t, n.IsSubShape())
	require.False(t, n.IsReference())

	n.SetName("bracket").SetColor(ColorCurve, "#0000ff").MarkFree()

	name, ok := n.Name()
	require.True(t, ok)
	require.Equal(t, "bracket", name)
	c, ok := n.Color(ColorCurve)
	require.True(t, ok)
	require.Equal(t, "#0000ff", c)
	_, ok = n.Color(ColorSurface)
	require.False(t, ok, "slots are independent")
	require.True(t, n.IsFreeShape())
}

func TestNodeChildrenOrder(t *testing.T) {
	store := NewStore()
	for _, name := range []string{"x", "y", "z"} {
		store.Root().NewChild().SetName(name)
	}
	children := store.Main().Children()
	require.Len(t, children, 3)
	for i, want := range []string{"x", "y", "z"} {
		name, _ := children[i].Name()
		require.Equal(t, want, name)
	}
}

func TestNodeReference(t *testing.T) {
	store := NewStore()
	target := store.Root().NewChild().SetName("proto")
	ref := store.Root().NewChild().SetReference(target)

	require.True(t, ref.IsReference())
	got, ok := ref.Referred()
	require.True(t, ok)
	name, _ := got.Name()
	require.Equal(t, "proto", name)

	_, ok = target.Referred()
	require.False(t, ok, "non-reference resolves to nothing")
}
