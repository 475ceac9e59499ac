package app

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/decker502/skyraid/pkg/embedded"
	"github.com/decker502/skyraid/pkg/scenes"
)

const testLevel = `
id: "app-test"
seed: 7
playfield:
  width: 200
  height: 300
waves:
  - at: 0
    group: three_ships
`

func TestLoadLevelFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "level.yaml")
	if err := os.WriteFile(path, []byte(testLevel), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	level, err := loadLevel(Config{LevelPath: path, Seed: 99})
	if err != nil {
		t.Fatalf("loadLevel failed: %v", err)
	}
	if level.ID != "app-test" || level.Seed != 99 {
		t.Errorf("unexpected level %s seed %d", level.ID, level.Seed)
	}
}

func TestLoadLevelEmbedded(t *testing.T) {
	embedded.Init(nil)
	if _, err := loadLevel(Config{}); err == nil {
		t.Error("loading without embedded data should fail")
	}

	embedded.Init(fstest.MapFS{
		"data/levels/level_1.yaml": {Data: []byte(testLevel)},
	})
	defer embedded.Init(nil)

	level, err := loadLevel(Config{})
	if err != nil {
		t.Fatalf("loadLevel failed: %v", err)
	}
	if level.Seed != 7 {
		t.Errorf("seed should come from the level, got %d", level.Seed)
	}
}

func TestNewAppLayout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "level.yaml")
	if err := os.WriteFile(path, []byte(testLevel), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	a, err := NewApp(Config{Verbose: true, LevelPath: path, NoRecords: true, NoSound: true})
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	defer a.Close()

	w, h := a.Layout(800, 600)
	if w != 200 || h != 300 {
		t.Errorf("Layout = %dx%d, want 200x300", w, h)
	}
	if _, ok := a.GetSceneManager().GetCurrentScene().(*scenes.GameplayScene); !ok {
		t.Error("current scene should be the gameplay scene")
	}
}

func TestKeyboardInputDefaults(t *testing.T) {
	var k KeyboardInput
	dx, dy := k.Direction()
	if dx != 0 || dy != 0 || k.Firing() {
		t.Errorf("zero input expected, got (%v, %v) fire=%v", dx, dy, k.Firing())
	}
}

func TestTouchDirection(t *testing.T) {
	tests := []struct {
		name         string
		x, y         int
		w, h         int
		wantX, wantY float64
	}{
		{"中央不移动", 120, 160, 240, 320, 0, 0},
		{"左边缘", 10, 160, 240, 320, -1, 0},
		{"右下角", 230, 310, 240, 320, 1, 1},
		{"上边缘", 120, 20, 240, 320, 0, -1},
		{"屏幕尺寸无效", 10, 10, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dx, dy := touchDirection(tt.x, tt.y, tt.w, tt.h)
			if dx != tt.wantX || dy != tt.wantY {
				t.Errorf("touchDirection() = (%v, %v), want (%v, %v)", dx, dy, tt.wantX, tt.wantY)
			}
		})
	}
}
