package gizmos

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockResource1 struct {
	name string
}
type MockResource2 struct {
	name string
}

func NewMockResource1(name string) *MockResource1 {
	return &MockResource1{name: name}
}
func NewMockResource2(name string) *MockResource2 {
	return &MockResource2{name: name}
}

func TestApp_addResources(t *testing.T) {
	// Test setup
	app := &App{
		resources: make(map[reflect.Type]any),
	}

	// Add a resource
	resource1 := NewMockResource1("Resource1")
	app.addResources(resource1)

	// Check that the resource was added
	assert.Contains(t, app.resources, reflect.TypeOf(resource1).Elem(), "Resource1 should be in resources map.")

	// Expect panic when trying to add the same type of resource again
	require.PanicsWithValue(t, fmt.Sprintf("%s is already in resources", reflect.TypeOf(resource1)), func() {
		app.addResources(resource1) // Try adding resource1 again, should panic
	})

	// Add a resource
	resource2 := NewMockResource2("Resource2")
	app.addResources(resource2)

	// Check that the resource was added
	assert.Contains(t, app.resources, reflect.TypeOf(resource2).Elem(), "Resource2 should be in resources map.")

	got, ok := Resource[MockResource2](app)
	require.True(t, ok)
	assert.Same(t, resource2, got)
}

func TestApp_callSystemResolvesDependencies(t *testing.T) {
	app := NewApp()
	app.addResources(NewMockResource1("one"))

	called := false
	app.callSystem(func(cmd *Commands, res *MockResource1, logger Logger) {
		called = true
		assert.NotNil(t, cmd)
		assert.Equal(t, "one", res.name)
		assert.NotNil(t, logger)
	})
	assert.True(t, called)

	require.Panics(t, func() {
		app.callSystem(func(res *MockResource2) {})
	})
}

func TestApp_UpdateRunsStagesInOrder(t *testing.T) {
	app := NewApp()
	var order []string

	app.UseSystem(System(func() { order = append(order, "startup") }).InStage(Startup))
	app.UseSystem(System(func() { order = append(order, "finale") }).InStage(Finale))
	app.UseSystem(System(func() { order = append(order, "update") }))
	app.UseSystem(System(func() { order = append(order, "prelude") }).InStage(Prelude))

	app.Update()
	app.Update()

	assert.Equal(t, []string{
		"startup", "prelude", "update", "finale",
		"prelude", "update", "finale",
	}, order)
}

func TestApp_UseStage(t *testing.T) {
	custom := Stage{Name: "Custom"}
	app := NewApp()
	app.UseStage(custom, AfterStage(Update))

	stages := app.Stages()
	idx := -1
	for i, s := range stages {
		if s == custom {
			idx = i
		}
	}
	require.NotEqual(t, -1, idx)
	assert.Equal(t, Update, stages[idx-1])
	assert.Equal(t, PostUpdate, stages[idx+1])

	require.PanicsWithValue(t, "Stage Custom already exists", func() {
		app.UseStage(custom, BeforeStage(Update))
	})
	require.PanicsWithValue(t, "Stage Missing not found", func() {
		app.UseStage(Stage{Name: "Other"}, BeforeStage(Stage{Name: "Missing"}))
	})
	require.PanicsWithValue(t, "Stage Missing doesn't exist", func() {
		app.UseSystem(System(func() {}).InStage(Stage{Name: "Missing"}))
	})
}

func TestApp_CommandsAreDeferredToEndOfStage(t *testing.T) {
	type Comp1 struct{ a int }

	app := NewApp()
	var spawned EntityId
	seenInStage := true
	app.UseSystem(System(func(cmd *Commands) {
		spawned = cmd.AddEntity(Comp1{a: 1})
		seenInStage = cmd.HasEntity(spawned)
	}).InStage(Startup))

	app.Update()

	assert.False(t, seenInStage)
	cmd := app.Commands()
	require.True(t, cmd.HasEntity(spawned))
	comp, ok := GetComponent[Comp1](cmd, spawned)
	require.True(t, ok)
	assert.Equal(t, 1, comp.a)
}

func TestApp_RunStopsOnExit(t *testing.T) {
	app := NewApp()
	frames := 0
	app.UseSystem(System(func(cmd *Commands) {
		frames++
		if frames == 3 {
			cmd.Exit()
		}
	}))

	app.Run()
	assert.Equal(t, 3, frames)
}

func TestCommands_Components(t *testing.T) {
	type Comp1 struct{ a int }
	type Comp2 struct{ b int }

	app := NewApp()
	cmd := app.Commands()

	eid := cmd.AddEntity(Comp1{a: 1})
	app.FlushCommands()

	cmd.AddComponents(eid, Comp2{b: 2})
	app.FlushCommands()
	assert.ElementsMatch(t, []any{Comp1{a: 1}, Comp2{b: 2}}, cmd.GetAllComponents(eid))

	tick := cmd.ChangeTick()
	assert.True(t, cmd.MarkChanged(eid, Comp1{}))
	assert.Greater(t, cmd.ChangeTick(), tick)

	cmd.RemoveComponents(eid, Comp1{})
	app.FlushCommands()
	assert.Equal(t, []any{Comp2{b: 2}}, cmd.GetAllComponents(eid))

	cmd.RemoveEntity(eid)
	app.FlushCommands()
	assert.False(t, cmd.HasEntity(eid))
}
