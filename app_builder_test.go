package gizmos

import "testing"

type MockModule struct {
	installed bool
}

func (m *MockModule) Install(app *App, commands *Commands) {
	m.installed = true
}

type MockModule2 struct {
	installed bool
}

func (m *MockModule2) Install(app *App, commands *Commands) {
	m.installed = true
}

func TestAppBuilder_UseModule(t *testing.T) {
	builder := NewAppBuilder()
	mockModule := &MockModule{}
	builder.UseModule(mockModule)

	if len(builder.modules) != 1 {
		t.Errorf("Expected modules to contain 1 module, got %v", len(builder.modules))
	}
	if mockModule.installed {
		t.Errorf("Expected module to be installed only on Build")
	}
}

func TestAppBuilder_Build(t *testing.T) {
	mockModule := &MockModule{}
	mockModule2 := &MockModule2{}

	app := NewAppBuilder().
		UseModule(mockModule).
		UseModule(mockModule2).
		Build()

	if app == nil {
		t.Fatalf("Expected an app")
	}
	if !mockModule.installed || !mockModule2.installed {
		t.Errorf("Expected every module to be installed, got %v and %v", mockModule.installed, mockModule2.installed)
	}
}
