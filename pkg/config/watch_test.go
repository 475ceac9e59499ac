package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsLevelChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	// 非关卡文件被忽略
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	levelFile := filepath.Join(dir, "level.yaml")
	if err := os.WriteFile(levelFile, []byte("id: w\n"), 0644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case name := <-w.Events:
			if filepath.Base(name) == "notes.txt" {
				t.Fatalf("non level file should be filtered, got %s", name)
			}
			if filepath.Base(name) == "level.yaml" {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for level change event")
		}
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("first Close failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close should be a no-op, got %v", err)
	}
	if _, ok := w.Poll(); ok {
		t.Error("Poll on closed watcher should report nothing")
	}
}

func TestFileKinds(t *testing.T) {
	tests := []struct {
		path   string
		level  bool
		script bool
	}{
		{"a/level.yaml", true, false},
		{"a/LEVEL.YML", true, false},
		{"a/waves.tengo", false, true},
		{"a/readme.md", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if IsLevelFile(tt.path) != tt.level || IsScriptFile(tt.path) != tt.script {
				t.Errorf("IsLevelFile=%v IsScriptFile=%v", IsLevelFile(tt.path), IsScriptFile(tt.path))
			}
		})
	}
}
