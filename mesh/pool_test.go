package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaAllocReusesFreedSlots(t *testing.T) {
	a := newArena[int](Descriptor[int]{})

	i0, err := a.alloc()
	require.NoError(t, err)
	i1, err := a.alloc()
	require.NoError(t, err)
	assert.NotEqual(t, i0, i1)

	a.release(i0)
	assert.False(t, a.live(i0))

	i2, err := a.alloc()
	require.NoError(t, err)
	assert.Equal(t, i0, i2, "freed slot should be reused before growing")
	assert.True(t, a.live(i2))
}

func TestArenaDestroyRunsOnceOnRelease(t *testing.T) {
	destroyed := 0
	a := newArena[int](Descriptor[int]{
		Destroy: func(int) { destroyed++ },
	})

	i0, err := a.alloc()
	require.NoError(t, err)
	a.release(i0)
	assert.Equal(t, 1, destroyed)

	// releasing an already-dead slot is a no-op
	a.release(i0)
	assert.Equal(t, 1, destroyed)
}

func TestArenaAllocHookInjectsFailureOnGrowthOnly(t *testing.T) {
	fail := false
	a := newArena[int](Descriptor[int]{
		Alloc: func() error {
			if fail {
				return ErrOutOfMemory
			}
			return nil
		},
	})

	i0, err := a.alloc()
	require.NoError(t, err)
	a.release(i0)

	fail = true
	// reusing the freed slot never consults Alloc -- only growing the
	// backing slice can fail.
	i1, err := a.alloc()
	require.NoError(t, err)
	assert.Equal(t, i0, i1)

	_, err = a.alloc()
	assert.ErrorIs(t, err, ErrOutOfMemory)
}

func TestEdgePoolMakeProducesTwinPair(t *testing.T) {
	p := newEdgePool[struct{}](Descriptor[struct{}]{})

	e, err := p.make()
	require.NoError(t, err)
	s := p.Sym(e)

	assert.NotEqual(t, e, s)
	assert.Equal(t, e, p.Sym(s))
	assert.Equal(t, e, p.Onext(e), "fresh edge is a singleton orbit")
	assert.Equal(t, s, p.Onext(s))
}

func TestEdgePoolMakeLoopOrientation(t *testing.T) {
	p := newEdgePool[struct{}](Descriptor[struct{}]{})

	ccw, err := p.makeLoop(true)
	require.NoError(t, err)
	assert.Equal(t, ccw, p.Onext(ccw), "ccw loop: each half-edge its own orbit")

	cw, err := p.makeLoop(false)
	require.NoError(t, err)
	assert.Equal(t, p.Sym(cw), p.Onext(cw), "cw loop: pair shares a 2-cycle orbit")
	assert.Equal(t, cw, p.Onext(p.Sym(cw)))
}

func TestEdgePoolKillFreesBothHalves(t *testing.T) {
	p := newEdgePool[int](Descriptor[int]{})

	e, err := p.make()
	require.NoError(t, err)
	s := p.Sym(e)

	p.kill(e)
	assert.False(t, p.live(e))
	assert.False(t, p.live(s))
}

func TestVertexPoolRepresentativeEdge(t *testing.T) {
	p := newVertexPool[string](Descriptor[string]{})

	v, err := p.make()
	require.NoError(t, err)
	assert.True(t, p.live(v))

	p.setEdge(v, EdgeID(7))
	assert.Equal(t, EdgeID(7), p.edge(v))

	p.SetData(v, "payload")
	assert.Equal(t, "payload", p.Data(v))
}
