package gizmos

import (
	"sync"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drainAll(g *Gizmos) []GizmoCommand {
	var commands []GizmoCommand
	g.drain(func(c GizmoCommand) {
		commands = append(commands, c)
	})
	return commands
}

func TestGizmos_PushDrainInOrder(t *testing.T) {
	g := NewGizmos()
	for i := 0; i < 10; i++ {
		g.Push(LineListCommand{Duration: float32(i)})
	}

	commands := drainAll(g)
	require.Len(t, commands, 10)
	for i, c := range commands {
		assert.Equal(t, float32(i), c.(LineListCommand).Duration)
	}

	assert.Empty(t, drainAll(g), "commands must not be observed twice")

	g.Push(LineListCommand{Duration: 42})
	commands = drainAll(g)
	require.Len(t, commands, 1)
	assert.Equal(t, float32(42), commands[0].(LineListCommand).Duration)
}

func TestGizmos_ConcurrentPush(t *testing.T) {
	const producers = 8
	const perProducer = 500

	g := NewGizmos()
	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				g.Push(LineListCommand{Duration: float32(p*perProducer + i)})
			}
		}(p)
	}
	wg.Wait()

	seen := make(map[float32]bool)
	for _, c := range drainAll(g) {
		d := c.(LineListCommand).Duration
		assert.False(t, seen[d], "command %v drained twice", d)
		seen[d] = true
	}
	assert.Len(t, seen, producers*perProducer)
	assert.Equal(t, uint64(producers*perProducer), g.Pushed())
}

func TestGizmos_DrainWhilePushing(t *testing.T) {
	const total = 2000

	g := NewGizmos()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < total; i++ {
			g.Push(LineListCommand{Duration: float32(i)})
		}
	}()

	drained := 0
	for {
		drained += g.drain(func(GizmoCommand) {})
		select {
		case <-done:
			drained += g.drain(func(GizmoCommand) {})
			assert.Equal(t, total, drained)
			return
		default:
		}
	}
}

func TestGizmos_DrawMask(t *testing.T) {
	g := NewGizmos()
	g.SetMask(0b01)

	ran := false
	g.Draw(0b10, func(ctx *DrawContext) {
		ran = true
		ctx.Line(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0})
	})
	assert.False(t, ran, "closure must not run for a disabled mask")
	assert.Empty(t, drainAll(g))

	g.Draw(0b11, func(ctx *DrawContext) {
		ran = true
		ctx.Line(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0})
	})
	assert.True(t, ran)
	assert.Len(t, drainAll(g), 1)
}

func TestGizmos_Disabled(t *testing.T) {
	g := NewGizmos()
	g.SetEnabled(false)

	g.Push(LineListCommand{})
	ran := false
	g.Draw(MaskAll, func(*DrawContext) { ran = true })

	assert.False(t, ran)
	assert.Empty(t, drainAll(g))
	assert.Equal(t, uint64(0), g.Pushed())

	g.SetEnabled(true)
	g.Push(LineListCommand{})
	assert.Len(t, drainAll(g), 1)
}

func TestLinePoints(t *testing.T) {
	var lp LinePoints
	var want []mgl32.Vec3
	for i := 0; i < 7; i++ {
		p := mgl32.Vec3{float32(i), 0, 0}
		lp.Push(p)
		want = append(want, p)
		assert.Equal(t, i+1, lp.Len())
		assert.Equal(t, want, lp.Slice())
	}

	empty := MakeLinePoints()
	assert.Equal(t, 0, empty.Len())
	assert.Empty(t, empty.Slice())
}

func TestLinePoints_CopiesDoNotShareSpill(t *testing.T) {
	var a LinePoints
	for i := 0; i < 5; i++ {
		a.Push(mgl32.Vec3{float32(i), 0, 0})
	}
	b := a
	b.Push(mgl32.Vec3{5, 0, 0})
	a.Push(mgl32.Vec3{6, 0, 0})

	require.Equal(t, 6, a.Len())
	require.Equal(t, 6, b.Len())
	assert.Equal(t, mgl32.Vec3{6, 0, 0}, a.Slice()[5])
	assert.Equal(t, mgl32.Vec3{5, 0, 0}, b.Slice()[5])

	c := b
	c.transform(mgl32.Translate3D(0, 1, 0))
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, b.Slice()[0])
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, c.Slice()[0])
}
