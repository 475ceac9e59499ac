package game

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/skyraid/pkg/config"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaMs      float64
	saved        bool
	level        string
}

// Update records that Update was called and stores the frame time.
func (m *MockScene) Update(deltaMs float64) {
	m.updateCalled = true
	m.deltaMs = deltaMs
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// SaveOnExit records that the scene was asked to save.
func (m *MockScene) SaveOnExit() bool {
	m.saved = true
	return true
}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Expected currentScene to be nil initially")
	}

	// 没有场景时 Update/Draw 不应崩溃
	sm.Update(16)
	sm.Draw(nil)
}

// TestSceneManagerUpdate verifies that Update calls the current scene's Update method.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	sm.Update(16)
	if !mockScene.updateCalled || mockScene.deltaMs != 16 {
		t.Errorf("Scene's Update not called correctly: %+v", mockScene)
	}

	sm.Draw(nil)
	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

// TestSceneManagerLoadLevel verifies the factory is used and Reload rebuilds the scene.
func TestSceneManagerLoadLevel(t *testing.T) {
	sm := NewSceneManager()
	cfg := &config.LevelConfig{ID: "1"}

	if err := sm.LoadLevel(cfg); err == nil {
		t.Error("LoadLevel without a factory should fail")
	}
	if err := sm.Reload(); err == nil {
		t.Error("Reload without a level should fail")
	}

	builds := 0
	sm.SetSceneFactory(func(c *config.LevelConfig) (Scene, error) {
		builds++
		return &MockScene{level: c.ID}, nil
	})

	if err := sm.LoadLevel(cfg); err != nil {
		t.Fatalf("LoadLevel failed: %v", err)
	}
	first := sm.GetCurrentScene()
	if err := sm.Reload(); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if builds != 2 || sm.GetCurrentScene() == first {
		t.Errorf("Reload should build a fresh scene, builds=%d", builds)
	}
	if sm.Level() != cfg {
		t.Error("Level() should return the loaded config")
	}
}

// TestSceneManagerFactoryError verifies a failing factory keeps the current scene.
func TestSceneManagerFactoryError(t *testing.T) {
	sm := NewSceneManager()
	current := &MockScene{}
	sm.SwitchTo(current)

	boom := errors.New("boom")
	sm.SetSceneFactory(func(*config.LevelConfig) (Scene, error) { return nil, boom })

	if err := sm.LoadLevel(&config.LevelConfig{ID: "x"}); !errors.Is(err, boom) {
		t.Errorf("expected factory error, got %v", err)
	}
	if sm.GetCurrentScene() != current {
		t.Error("failed load must keep the current scene")
	}
	if current.saved {
		t.Error("failed load must not save the running scene")
	}
}

// TestSceneManagerLoadLevelSavesOutgoing verifies a level switch saves the replaced scene.
func TestSceneManagerLoadLevelSavesOutgoing(t *testing.T) {
	sm := NewSceneManager()
	sm.SetSceneFactory(func(c *config.LevelConfig) (Scene, error) {
		return &MockScene{level: c.ID}, nil
	})

	if err := sm.LoadLevel(&config.LevelConfig{ID: "1"}); err != nil {
		t.Fatalf("LoadLevel failed: %v", err)
	}
	first := sm.GetCurrentScene().(*MockScene)

	if err := sm.LoadLevel(&config.LevelConfig{ID: "2"}); err != nil {
		t.Fatalf("LoadLevel failed: %v", err)
	}
	if !first.saved {
		t.Error("replaced scene should be saved before the switch")
	}
	if next := sm.GetCurrentScene().(*MockScene); next.saved || next.level != "2" {
		t.Errorf("new scene should be level 2 and unsaved, got %+v", next)
	}
}

// TestSceneManagerSaveOnExit verifies Saveable scenes are notified.
func TestSceneManagerSaveOnExit(t *testing.T) {
	sm := NewSceneManager()
	if !sm.SaveOnExit() {
		t.Error("no scene means nothing to save")
	}

	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)
	if !sm.SaveOnExit() || !mockScene.saved {
		t.Error("SaveOnExit should reach the scene")
	}
}
