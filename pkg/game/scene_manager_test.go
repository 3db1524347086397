package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// mockScene 记录调用情况的场景
type mockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
}

func (m *mockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

func (m *mockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// saveableScene 同时实现 Saveable
type saveableScene struct {
	mockScene
	saved  bool
	result bool
}

func (s *saveableScene) SaveOnExit() bool {
	s.saved = true
	return s.result
}

func TestSceneManagerWithoutScene(t *testing.T) {
	sm := NewSceneManager()
	if sm.GetCurrentScene() != nil {
		t.Error("Expected no scene initially")
	}

	// 没有场景时 Update/Draw/SaveOnExit 都不应 panic
	sm.Update(0.016)
	sm.Draw(nil)
	if !sm.SaveOnExit() {
		t.Error("SaveOnExit without scene should report success")
	}
}

func TestSceneManagerDelegates(t *testing.T) {
	sm := NewSceneManager()
	scene := &mockScene{}
	sm.SwitchTo(scene)

	sm.Update(0.016)
	sm.Draw(nil)

	if !scene.updateCalled || scene.deltaTime != 0.016 {
		t.Errorf("Update not delegated: called=%v dt=%v", scene.updateCalled, scene.deltaTime)
	}
	if !scene.drawCalled {
		t.Error("Draw not delegated")
	}
	if sm.GetCurrentScene() != scene {
		t.Error("GetCurrentScene mismatch")
	}
}

func TestSceneManagerSaveOnExit(t *testing.T) {
	sm := NewSceneManager()
	scene := &saveableScene{result: false}
	sm.SwitchTo(scene)

	if sm.SaveOnExit() {
		t.Error("SaveOnExit should propagate scene failure")
	}
	if !scene.saved {
		t.Error("scene SaveOnExit was not called")
	}
}
