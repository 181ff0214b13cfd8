package scope

import (
	"testing"

	"github.com/anvil-lang/anvil/objects"
	"github.com/stretchr/testify/assert"
)

func TestLookup_LiveShadowsGlobal(t *testing.T) {
	g := NewGlobal()
	g.set("x", objects.Int32(1))
	f := NewFrame(g)
	f.SetLive("x", objects.Int32(2))

	v, ok := f.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, objects.Int32(2), v)
}

func TestBindInBlock_OverwritesExistingGlobalBindingWhenNotShadowedByLive(t *testing.T) {
	g := NewGlobal()
	g.set("x", objects.Int32(1))
	f := NewFrame(g)
	f.OpenBlock()

	f.BindInBlock("x", objects.Int32(3))
	gv, _ := g.lookup("x")
	assert.Equal(t, objects.Int32(3), gv, "BindInBlock must overwrite an existing global binding rather than shadow it in the block")

	// Lookup sees the updated global value since nothing shadows it in
	// live or any block heap.
	v, ok := f.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, objects.Int32(3), v)
}

func TestBindInBlock_OverwritesExistingLiveBindingWhenNotBoundGlobally(t *testing.T) {
	g := NewGlobal()
	f := NewFrame(g)
	f.SetLive("y", objects.Int32(1))
	f.OpenBlock()
	f.BindInBlock("y", objects.Int32(2))

	v, ok := f.Lookup("y")
	assert.True(t, ok)
	assert.Equal(t, objects.Int32(2), v, "BindInBlock must overwrite the existing live binding rather than shadow it in the block")
}

func TestLookup_UnboundNameFails(t *testing.T) {
	f := NewFrame(NewGlobal())
	_, ok := f.Lookup("nope")
	assert.False(t, ok)
}

func TestBindInBlock_CreatesInInnermostBlockWhenNowhereElseBound(t *testing.T) {
	f := NewFrame(NewGlobal())
	f.OpenBlock()
	f.OpenBlock()
	f.BindInBlock("fresh", objects.Int32(9))

	v, ok := f.Lookup("fresh")
	assert.True(t, ok)
	assert.Equal(t, objects.Int32(9), v)

	f.CloseBlock()
	_, ok = f.Lookup("fresh")
	assert.False(t, ok, "a block-local binding must not survive CloseBlock")
}

func TestBindInFunction_PrefersExistingGlobalBinding(t *testing.T) {
	g := NewGlobal()
	g.set("z", objects.Int32(1))
	f := NewFrame(g)
	f.BindInFunction("z", objects.Int32(2))

	gv, _ := g.lookup("z")
	assert.Equal(t, objects.Int32(2), gv)
	_, liveHas := f.live["z"]
	assert.False(t, liveHas)
}

func TestBind_DispatchesByContext(t *testing.T) {
	g := NewGlobal()
	f := NewFrame(g)

	f.Bind("a", objects.Int32(1), true)
	gv, ok := g.lookup("a")
	assert.True(t, ok)
	assert.Equal(t, objects.Int32(1), gv)

	f.Bind("b", objects.Int32(2), false)
	_, ok = g.lookup("b")
	assert.False(t, ok)
	v, ok := f.Lookup("b")
	assert.True(t, ok)
	assert.Equal(t, objects.Int32(2), v)
}

func TestInBlock(t *testing.T) {
	f := NewFrame(NewGlobal())
	assert.False(t, f.InBlock())
	f.OpenBlock()
	assert.True(t, f.InBlock())
	f.CloseBlock()
	assert.False(t, f.InBlock())
}
