package gizmos

import (
	"reflect"
)

// Queries visit entities in id order. ChangedSince restricts a query to the
// entities whose first component was written (or marked changed) after the
// given change tick, see Commands.ChangeTick.
type Query1[A any] struct {
	ecs          *Ecs
	changedSince uint64
}
type Query2[A, B any] struct {
	ecs          *Ecs
	changedSince uint64
}
type Query3[A, B, C any] struct {
	ecs          *Ecs
	changedSince uint64
}

func MakeQuery1[A any](cmd *Commands) Query1[A]       { return Query1[A]{ecs: cmd.app.ecs} }
func MakeQuery2[A, B any](cmd *Commands) Query2[A, B] { return Query2[A, B]{ecs: cmd.app.ecs} }
func MakeQuery3[A, B, C any](cmd *Commands) Query3[A, B, C] {
	return Query3[A, B, C]{ecs: cmd.app.ecs}
}

func (q Query1[A]) ChangedSince(tick uint64) Query1[A] {
	q.changedSince = tick
	return q
}

func (q Query2[A, B]) ChangedSince(tick uint64) Query2[A, B] {
	q.changedSince = tick
	return q
}

func (q Query3[A, B, C]) ChangedSince(tick uint64) Query3[A, B, C] {
	q.changedSince = tick
	return q
}

func (q Query1[A]) Map(m func(EntityId, *A) bool) {
	id1 := identifyComponent[A](q.ecs)

	for _, entityId := range q.ecs.sortedEntities(id1) {
		cell := q.ecs.entities[entityId][id1]
		if cell.changed <= q.changedSince {
			continue
		}
		if !m(entityId, cell.ptr.(*A)) {
			return
		}
	}
}

// Map visits entities owning A and B. Components listed in optionals may be
// missing, in which case the callback receives nil for them.
func (q Query2[A, B]) Map(m func(EntityId, *A, *B) bool, optionals ...any) {
	id1 := identifyComponent[A](q.ecs)
	id2 := identifyComponent[B](q.ecs)
	opt := identifyOptionals(q.ecs, optionals...)

	for _, entityId := range q.ecs.sortedEntities(id1) {
		cells := q.ecs.entities[entityId]
		if cells[id1].changed <= q.changedSince {
			continue
		}

		b, ok := lookup[B](cells, id2, opt)
		if !ok {
			continue
		}

		if !m(entityId, cells[id1].ptr.(*A), b) {
			return
		}
	}
}

func (q Query3[A, B, C]) Map(m func(EntityId, *A, *B, *C) bool, optionals ...any) {
	id1 := identifyComponent[A](q.ecs)
	id2 := identifyComponent[B](q.ecs)
	id3 := identifyComponent[C](q.ecs)
	opt := identifyOptionals(q.ecs, optionals...)

	for _, entityId := range q.ecs.sortedEntities(id1) {
		cells := q.ecs.entities[entityId]
		if cells[id1].changed <= q.changedSince {
			continue
		}

		b, ok := lookup[B](cells, id2, opt)
		if !ok {
			continue
		}
		c, ok := lookup[C](cells, id3, opt)
		if !ok {
			continue
		}

		if !m(entityId, cells[id1].ptr.(*A), b, c) {
			return
		}
	}
}

// lookup returns the component of an entity. A missing optional component
// yields (nil, true), a missing required one (nil, false).
func lookup[T any](cells map[componentId]*componentCell, id componentId, opt set[componentId]) (*T, bool) {
	if cell, ok := cells[id]; ok {
		return cell.ptr.(*T), true
	}
	if _, ok := opt[id]; ok {
		return nil, true
	}
	return nil, false
}

func identifyOptionals(ecs *Ecs, components ...any) set[componentId] {
	res := make(set[componentId])
	for _, c := range components {
		res[ecs.getComponentId(componentType(c))] = struct{}{}
	}

	return res
}

func identifyComponent[A any](ecs *Ecs) componentId {
	return ecs.getComponentId(reflect.TypeFor[A]())
}
