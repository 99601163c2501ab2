package gizmos

import (
	"sync/atomic"
)

// MaskAll enables every drawing group.
const MaskAll uint32 = 0xFFFF_FFFF

// commandNode is a node of an intrusive multi producer single consumer
// queue. The consumer owns tail; producers only swap head.
type commandNode struct {
	next    atomic.Pointer[commandNode]
	command GizmoCommand
}

type commandQueue struct {
	head atomic.Pointer[commandNode]
	tail *commandNode
	stub commandNode
}

func (q *commandQueue) init() {
	q.head.Store(&q.stub)
	q.tail = &q.stub
}

func (q *commandQueue) push(command GizmoCommand) {
	q.pushNode(&commandNode{command: command})
}

func (q *commandQueue) pushNode(node *commandNode) {
	node.next.Store(nil)
	prev := q.head.Swap(node)
	prev.next.Store(node)
}

// pop returns false when the queue is empty, or when a producer has swapped
// head but not linked its node yet. That node is seen by a later pop.
func (q *commandQueue) pop() (GizmoCommand, bool) {
	tail := q.tail
	next := tail.next.Load()
	if tail == &q.stub {
		if next == nil {
			return nil, false
		}
		q.tail = next
		tail = next
		next = next.next.Load()
	}
	if next != nil {
		q.tail = next
		return tail.command, true
	}
	if tail != q.head.Load() {
		return nil, false
	}
	// tail is the last node: put the stub behind it so it can be unlinked
	q.pushNode(&q.stub)
	next = tail.next.Load()
	if next != nil {
		q.tail = next
		return tail.command, true
	}
	return nil, false
}

// Gizmos is the command channel. Any goroutine may push; the gizmo update
// system drains it once per tick.
type Gizmos struct {
	enabled atomic.Bool
	mask    atomic.Uint32
	queue   commandQueue
	pushed  atomic.Uint64
}

func NewGizmos() *Gizmos {
	g := &Gizmos{}
	g.queue.init()
	g.enabled.Store(true)
	g.mask.Store(MaskAll)
	return g
}

// Push enqueues a command without blocking. Commands pushed to a disabled
// channel are dropped.
func (g *Gizmos) Push(command GizmoCommand) {
	if command == nil || !g.enabled.Load() {
		return
	}
	g.pushed.Add(1)
	g.queue.push(command)
}

func (g *Gizmos) SetEnabled(enabled bool) { g.enabled.Store(enabled) }

func (g *Gizmos) Enabled() bool { return g.enabled.Load() }

func (g *Gizmos) SetMask(mask uint32) { g.mask.Store(mask) }

func (g *Gizmos) Mask() uint32 { return g.mask.Load() }

// Pushed counts the commands accepted since the channel was created.
func (g *Gizmos) Pushed() uint64 { return g.pushed.Load() }

// Draw runs fn with a fresh drawing context, unless mask shares no bit with
// the channel mask or the channel is disabled. In that case fn never runs.
func (g *Gizmos) Draw(mask uint32, fn func(ctx *DrawContext)) {
	if !g.enabled.Load() || mask&g.mask.Load() == 0 {
		return
	}
	fn(newDrawContext(g))
}

// drain pops every command visible right now and hands it to fn. It must
// only be called by the single consumer.
func (g *Gizmos) drain(fn func(GizmoCommand)) int {
	n := 0
	for {
		command, ok := g.queue.pop()
		if !ok {
			return n
		}
		fn(command)
		n++
	}
}
