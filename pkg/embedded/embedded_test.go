package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

func resetForTest() {
	dataFS = nil
	initialized = false
}

func newTestFS() fstest.MapFS {
	return fstest.MapFS{
		"data/snailbait.yaml": {Data: []byte("canvas:\n  width: 800\n")},
	}
}

// TestInit 测试初始化
func TestInit(t *testing.T) {
	resetForTest()
	defer resetForTest()

	Init(nil)
	if _, err := ReadFile("data/snailbait.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized after Init(nil), got %v", err)
	}

	Init(newTestFS())
	if _, err := ReadFile("data/snailbait.yaml"); err != nil {
		t.Errorf("Expected file after Init, got %v", err)
	}
}

// TestNotInitialized 测试未初始化时的访问
func TestNotInitialized(t *testing.T) {
	resetForTest()

	if _, err := ReadFile("data/snailbait.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ReadFile: expected ErrNotInitialized, got %v", err)
	}
}

// TestReadFile 测试读取文件
func TestReadFile(t *testing.T) {
	resetForTest()
	defer resetForTest()
	Init(newTestFS())

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"标准路径", "data/snailbait.yaml", false},
		{"带./前缀", "./data/snailbait.yaml", false},
		{"未知前缀", "assets/snailbait.yaml", true},
		{"文件不存在", "data/missing.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && len(data) == 0 {
				t.Error("Expected file content")
			}
		})
	}
}
