package gizmos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuery_Map(t *testing.T) {
	type Comp1 struct{ a int }
	type Comp2 struct{ b float32 }
	type Comp3 struct{}

	ecs := MakeEcs()
	ecs.addEntity(Comp1{a: 1})                                 // comp1 only                       -- shouldn't match
	id2 := ecs.addEntity(Comp1{a: 2}, Comp2{b: 1.37})          // comp1 & comp2                    -- should match
	id3 := ecs.addEntity(Comp1{a: 3}, Comp2{b: 4.20}, Comp3{}) // comp1 & comp2 + something extra  -- should match
	ecs.addEntity(Comp1{a: 4}, Comp3{})                        // comp1 + something extra          -- shouldn't match
	ecs.addEntity(Comp2{b: 3.14})                              // comp2 only                       -- shouldn't match

	query := Query2[Comp1, Comp2]{ecs: &ecs}

	expectedEntityIds := []EntityId{id2, id3}
	expectedComponentsA := []Comp1{{a: 2}, {a: 3}}
	expectedComponentsB := []Comp2{{b: 1.37}, {b: 4.20}}
	numResults := 0

	query.Map(func(entityId EntityId, comp1 *Comp1, comp2 *Comp2) bool {
		if entityId != expectedEntityIds[numResults] {
			t.Errorf("Unexpected EntityId for row %v, expected %v got %v", numResults, expectedEntityIds[numResults], entityId)
		}
		if *comp1 != expectedComponentsA[numResults] {
			t.Errorf("Unexpected A for row %v, expected %v got %v", numResults, expectedComponentsA[numResults], *comp1)
		}
		if *comp2 != expectedComponentsB[numResults] {
			t.Errorf("Unexpected B for row %v, expected %v got %v", numResults, expectedComponentsB[numResults], *comp2)
		}

		numResults += 1
		return true
	})

	if 2 != numResults {
		t.Errorf("Unexpected number of results, got %v", numResults)
	}
}

func TestQuery_MapOptional(t *testing.T) {
	type Comp1 struct{ a int }
	type Comp2 struct{ b int }

	ecs := MakeEcs()
	id1 := ecs.addEntity(Comp1{a: 1})
	id2 := ecs.addEntity(Comp1{a: 2}, Comp2{b: 20})

	seen := map[EntityId]*Comp2{}
	Query2[Comp1, Comp2]{ecs: &ecs}.Map(func(eid EntityId, _ *Comp1, comp2 *Comp2) bool {
		seen[eid] = comp2
		return true
	}, Comp2{})

	assert.Len(t, seen, 2)
	assert.Nil(t, seen[id1])
	assert.Equal(t, &Comp2{b: 20}, seen[id2])
}

func TestQuery_MapStops(t *testing.T) {
	type Comp1 struct{ a int }

	ecs := MakeEcs()
	for i := 0; i < 5; i++ {
		ecs.addEntity(Comp1{a: i})
	}

	visited := 0
	Query1[Comp1]{ecs: &ecs}.Map(func(EntityId, *Comp1) bool {
		visited++
		return visited < 2
	})
	assert.Equal(t, 2, visited)
}

func TestQuery_ChangedSince(t *testing.T) {
	type Comp1 struct{ a int }
	type Comp2 struct{}

	ecs := MakeEcs()
	id1 := ecs.addEntity(Comp1{a: 1}, Comp2{})
	id2 := ecs.addEntity(Comp1{a: 2}, Comp2{})
	watermark := ecs.changeTick

	collect := func(tick uint64) []EntityId {
		var ids []EntityId
		Query2[Comp1, Comp2]{ecs: &ecs}.ChangedSince(tick).Map(func(eid EntityId, _ *Comp1, _ *Comp2) bool {
			ids = append(ids, eid)
			return true
		})
		return ids
	}

	assert.Equal(t, []EntityId{id1, id2}, collect(0))
	assert.Empty(t, collect(watermark))

	ecs.addComponents(id2, Comp1{a: 3})
	assert.Equal(t, []EntityId{id2}, collect(watermark))

	// only the first component is tracked
	watermark = ecs.changeTick
	ecs.addComponents(id1, Comp2{})
	assert.Empty(t, collect(watermark))

	ecs.markChanged(id1, componentType(Comp1{}))
	assert.Equal(t, []EntityId{id1}, collect(watermark))
}
