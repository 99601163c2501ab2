package gizmos

import (
	"reflect"
	"slices"
)

// Commands is the handle systems use to touch the world. Structural changes
// (spawning, despawning, adding or removing components) are deferred until
// the end of the running stage.
type Commands struct {
	app *App
}

func (cmd *Commands) AddResources(resources ...any) *Commands {
	cmd.app.addResources(resources...)
	return cmd
}

// AddEntity reserves an id right away; the entity exists after the next flush.
// An entity spawned with a Parent component is attached to the parent's
// Children on flush.
func (cmd *Commands) AddEntity(components ...any) EntityId {
	eid := cmd.app.ecs.nextEntityId()
	cmd.app.pendingAdditions = append(cmd.app.pendingAdditions, pendingAdd{
		eid:        eid,
		components: components,
	})
	return eid
}

// AddComponents inserts or replaces components on flush. Every written
// component is marked changed.
func (cmd *Commands) AddComponents(entityId EntityId, components ...any) {
	cmd.app.pendingCompAdds = append(cmd.app.pendingCompAdds, pendingCompAdd{
		eid:        entityId,
		components: components,
	})
}

func (cmd *Commands) RemoveComponents(entityId EntityId, components ...any) {
	cmd.app.pendingCompRemovals = append(cmd.app.pendingCompRemovals, pendingCompAdd{
		eid:        entityId,
		components: components,
	})
}

// RemoveEntity despawns the entity only; its children are left in place.
func (cmd *Commands) RemoveEntity(entityId EntityId) {
	cmd.app.pendingRemovals = append(cmd.app.pendingRemovals, pendingRemoval{eid: entityId})
}

// RemoveEntityRecursive despawns the entity and all of its descendants.
func (cmd *Commands) RemoveEntityRecursive(entityId EntityId) {
	cmd.app.pendingRemovals = append(cmd.app.pendingRemovals, pendingRemoval{eid: entityId, recursive: true})
}

// MarkChanged flags a component as changed without replacing it, for systems
// that mutate components in place through a query.
func (cmd *Commands) MarkChanged(entityId EntityId, component any) bool {
	return cmd.app.ecs.markChanged(entityId, componentType(component))
}

// ChangeTick returns the tick of the latest component write.
func (cmd *Commands) ChangeTick() uint64 {
	return cmd.app.ecs.changeTick
}

func (cmd *Commands) HasEntity(entityId EntityId) bool {
	return cmd.app.ecs.hasEntity(entityId)
}

func (cmd *Commands) GetAllComponents(entityId EntityId) []any {
	ecs := cmd.app.ecs
	cells := ecs.entities[entityId]

	ids := make([]componentId, 0, len(cells))
	for id := range cells {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	res := make([]any, 0, len(ids))
	for _, id := range ids {
		res = append(res, cells[id].value.Interface())
	}
	return res
}

// Exit stops App.Run after the current frame.
func (cmd *Commands) Exit() {
	cmd.app.exit = true
}

// GetComponent returns a pointer to the live component of an entity.
func GetComponent[T any](cmd *Commands, entityId EntityId) (*T, bool) {
	cell, ok := cmd.app.ecs.getComponent(entityId, reflect.TypeFor[T]())
	if !ok {
		return nil, false
	}
	return cell.ptr.(*T), true
}
