package gizmos

import (
	"fmt"
	"reflect"
	"slices"
	"sync"
)

type EntityId uint64
type componentId uint32
type set[T comparable] = map[T]struct{}

// componentCell holds one component value (as a pointer to a heap copy) and
// the change tick of its last write.
type componentCell struct {
	ptr     any
	value   reflect.Value
	changed uint64
}

type Ecs struct {
	entities map[EntityId]map[componentId]*componentCell
	storages map[componentId]map[EntityId]*componentCell

	idGeneratorLock sync.Mutex
	entityIdCounter EntityId

	componentIdCounterLock sync.Mutex
	componentIdCounter     componentId
	componentTypeIdMap     map[reflect.Type]componentId
	componentIdTypeMap     map[componentId]reflect.Type

	// changeTick increases on every component write.
	changeTick uint64
}

func MakeEcs() Ecs {
	return Ecs{
		entities:           make(map[EntityId]map[componentId]*componentCell),
		storages:           make(map[componentId]map[EntityId]*componentCell),
		componentTypeIdMap: make(map[reflect.Type]componentId),
		componentIdTypeMap: make(map[componentId]reflect.Type),
	}
}

func (ecs *Ecs) addEntity(components ...any) EntityId {
	entityId := ecs.nextEntityId()
	return ecs.insertEntity(entityId, components...)
}

func (ecs *Ecs) insertEntity(entityId EntityId, components ...any) EntityId {
	if _, ok := ecs.entities[entityId]; !ok {
		ecs.entities[entityId] = make(map[componentId]*componentCell)
	}
	for _, component := range components {
		ecs.writeComponent(entityId, component)
	}
	return entityId
}

func (ecs *Ecs) hasEntity(entityId EntityId) bool {
	_, ok := ecs.entities[entityId]
	return ok
}

func (ecs *Ecs) removeEntity(entityId EntityId) {
	for compId := range ecs.entities[entityId] {
		delete(ecs.storages[compId], entityId)
	}
	delete(ecs.entities, entityId)
}

// addComponents inserts or replaces components. Dead entities are ignored.
func (ecs *Ecs) addComponents(entityId EntityId, components ...any) {
	if !ecs.hasEntity(entityId) {
		return
	}
	for _, component := range components {
		ecs.writeComponent(entityId, component)
	}
}

func (ecs *Ecs) removeComponents(entityId EntityId, components ...any) {
	cells, ok := ecs.entities[entityId]
	if !ok {
		return
	}
	for _, c := range components {
		compId := ecs.getComponentId(componentType(c))
		delete(cells, compId)
		delete(ecs.storages[compId], entityId)
	}
}

func (ecs *Ecs) writeComponent(entityId EntityId, component any) {
	reflectValue := reflect.ValueOf(component)
	compType := reflectValue.Type()
	if compType.Kind() == reflect.Pointer {
		compType = compType.Elem()
		reflectValue = reflectValue.Elem()
	}
	if compType.Kind() != reflect.Struct {
		panic(fmt.Errorf("expected Component to be a struct or a pointer to a struct, got %s", compType.Kind()))
	}

	compId := ecs.getComponentId(compType)
	ecs.changeTick++

	if cell, ok := ecs.entities[entityId][compId]; ok {
		cell.value.Set(reflectValue)
		cell.changed = ecs.changeTick
		return
	}

	ptr := reflect.New(compType)
	ptr.Elem().Set(reflectValue)
	cell := &componentCell{ptr: ptr.Interface(), value: ptr.Elem(), changed: ecs.changeTick}

	ecs.entities[entityId][compId] = cell
	storage, ok := ecs.storages[compId]
	if !ok {
		storage = make(map[EntityId]*componentCell)
		ecs.storages[compId] = storage
	}
	storage[entityId] = cell
}

// markChanged stamps the component with a new change tick without writing it.
func (ecs *Ecs) markChanged(entityId EntityId, compType reflect.Type) bool {
	cell, ok := ecs.entities[entityId][ecs.getComponentId(compType)]
	if !ok {
		return false
	}
	ecs.changeTick++
	cell.changed = ecs.changeTick
	return true
}

func (ecs *Ecs) getComponent(entityId EntityId, compType reflect.Type) (*componentCell, bool) {
	cell, ok := ecs.entities[entityId][ecs.getComponentId(compType)]
	return cell, ok
}

// sortedEntities lists the entities owning the component, in id order, so
// queries visit entities deterministically.
func (ecs *Ecs) sortedEntities(compId componentId) []EntityId {
	storage := ecs.storages[compId]
	res := make([]EntityId, 0, len(storage))
	for eid := range storage {
		res = append(res, eid)
	}
	slices.Sort(res)
	return res
}

func (ecs *Ecs) nextEntityId() EntityId {
	ecs.idGeneratorLock.Lock()
	defer ecs.idGeneratorLock.Unlock()

	id := ecs.entityIdCounter
	ecs.entityIdCounter += 1

	return id
}

func (ecs *Ecs) getComponentId(compType reflect.Type) componentId {
	ecs.componentIdCounterLock.Lock()
	defer ecs.componentIdCounterLock.Unlock()

	if id, ok := ecs.componentTypeIdMap[compType]; ok {
		return id
	}

	id := ecs.componentIdCounter
	ecs.componentIdCounter += 1

	ecs.componentTypeIdMap[compType] = id
	ecs.componentIdTypeMap[id] = compType

	return id
}

func componentType(component any) reflect.Type {
	t := reflect.TypeOf(component)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
