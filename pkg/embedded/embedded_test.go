package embedded

import (
	"testing"
	"testing/fstest"
)

func newTestFS() fstest.MapFS {
	return fstest.MapFS{
		"data/levels/level_1.yaml": {Data: []byte("id: \"1\"\n")},
		"data/levels/level_2.yaml": {Data: []byte("id: \"2\"\n")},
		"data/levels/waves.tengo":  {Data: []byte("schedule := []\n")},
	}
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	Init(nil)
	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(newTestFS())
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
	Init(nil)
}

// TestNotInitialized 测试未初始化时的调用
func TestNotInitialized(t *testing.T) {
	Init(nil)

	_, err := ReadFile("data/levels/level_1.yaml")
	if err == nil || err.Error() != "embedded package not initialized, call Init() first" {
		t.Errorf("Unexpected error: %v", err)
	}
	if Exists("data/levels/level_1.yaml") {
		t.Error("Exists should be false before Init()")
	}
}

func TestReadFile(t *testing.T) {
	Init(newTestFS())
	defer Init(nil)

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"正常路径", "data/levels/level_1.yaml", "id: \"1\"\n", false},
		{"带 ./ 前缀", "./data/levels/level_2.yaml", "id: \"2\"\n", false},
		{"未知前缀", "assets/level_1.yaml", "", true},
		{"文件不存在", "data/levels/level_9.yaml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%s) error = %v", tt.path, err)
			}
			if string(data) != tt.want {
				t.Errorf("ReadFile(%s) = %q, want %q", tt.path, data, tt.want)
			}
		})
	}
}

func TestLevelsAndReadDir(t *testing.T) {
	Init(newTestFS())
	defer Init(nil)

	levels, err := Levels()
	if err != nil {
		t.Fatalf("Levels failed: %v", err)
	}
	if len(levels) != 2 {
		t.Errorf("expected 2 levels, got %v", levels)
	}

	entries, err := ReadDir("data/levels")
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("expected 3 entries, got %d", len(entries))
	}
	if !Exists("data/levels/waves.tengo") {
		t.Error("script file should exist")
	}
}
