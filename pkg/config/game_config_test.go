package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestLoadGameConfigFromRealFile 测试加载真实的配置文件
func TestLoadGameConfigFromRealFile(t *testing.T) {
	cfg, err := LoadGameConfig("../../" + DefaultConfigPath)
	if err != nil {
		t.Fatalf("Failed to load data/snailbait.yaml: %v", err)
	}

	if cfg.Canvas.Width != 800 || cfg.Canvas.Height != 400 {
		t.Errorf("Expected canvas 800x400, got %vx%v", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if len(cfg.Level.Platforms) != 14 {
		t.Errorf("Expected 14 platforms, got %d", len(cfg.Level.Platforms))
	}
	if len(cfg.Level.Bees) != 10 {
		t.Errorf("Expected 10 bees, got %d", len(cfg.Level.Bees))
	}
	if cfg.Level.Platforms[3].Opacity != 0.8 {
		t.Errorf("Expected platform 3 opacity 0.8, got %v", cfg.Level.Platforms[3].Opacity)
	}
	if cfg.Level.Platforms[0].Opacity != 1 {
		t.Errorf("Expected default opacity 1, got %v", cfg.Level.Platforms[0].Opacity)
	}

	pulsating := 0
	for _, p := range cfg.Level.Platforms {
		if p.Pulsate {
			pulsating++
		}
	}
	if pulsating != 2 {
		t.Errorf("Expected 2 pulsating platforms, got %d", pulsating)
	}

	if got := cfg.PixelsPerMeter(); got != 80 {
		t.Errorf("Expected 80 pixels per meter, got %v", got)
	}
	if len(cfg.Cells["explosion"]) != 7 {
		t.Errorf("Expected 7 explosion cells, got %d", len(cfg.Cells["explosion"]))
	}
}

// TestPlatformTop 测试轨道高度
func TestPlatformTop(t *testing.T) {
	cfg := &GameConfig{Tracks: TracksConfig{Baselines: []float64{323, 223, 123}, Fallback: 23}}

	tests := []struct {
		name  string
		track int
		want  float64
	}{
		{"轨道1", 1, 323},
		{"轨道2", 2, 223},
		{"轨道3", 3, 123},
		{"轨道0", 0, 23},
		{"轨道4", 4, 23},
		{"负数轨道", -1, 23},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.PlatformTop(tt.track); got != tt.want {
				t.Errorf("PlatformTop(%d) = %v, want %v", tt.track, got, tt.want)
			}
		})
	}
}

// TestVariant 测试变体选择
func TestVariant(t *testing.T) {
	st := SpriteTypeConfig{Variants: []VariantConfig{{Cells: "goldCoin"}, {Cells: "blueCoin"}}}
	one := 1
	bad := 5

	tests := []struct {
		name     string
		index    int
		override *int
		want     string
	}{
		{"偶数下标", 0, nil, "goldCoin"},
		{"奇数下标", 3, nil, "blueCoin"},
		{"指定变体", 0, &one, "blueCoin"},
		{"越界变体回退到取模", 2, &bad, "goldCoin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := st.Variant(tt.index, tt.override).Cells; got != tt.want {
				t.Errorf("Variant() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestParseGameConfigErrors 测试校验错误
func TestParseGameConfigErrors(t *testing.T) {
	base, err := os.ReadFile("../../" + DefaultConfigPath)
	if err != nil {
		t.Fatalf("Failed to read config: %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(string) string
		wantErr string
	}{
		{
			name:    "无效YAML",
			mutate:  func(string) string { return "canvas: [unclosed" },
			wantErr: "failed to parse",
		},
		{
			name: "未知格集合",
			mutate: func(s string) string {
				return strings.Replace(s, "cellsRight: runnerRight", "cellsRight: missing", 1)
			},
			wantErr: "unknown or empty cell table",
		},
		{
			name: "平台下标越界",
			mutate: func(s string) string {
				return strings.Replace(s, "platformIndex: 13", "platformIndex: 99", 1)
			},
			wantErr: "platformIndex 99 out of range",
		},
		{
			name: "无效颜色",
			mutate: func(s string) string {
				return strings.Replace(s, `fill: "#2b950a"`, `fill: "not-a-colour"`, 1)
			},
			wantErr: "level.platforms[13]",
		},
		{
			name: "无效轨道",
			mutate: func(s string) string {
				return strings.Replace(s, "{ left: 10, width: 210, track: 1,", "{ left: 10, width: 210, track: 7,", 1)
			},
			wantErr: "track 7 out of range",
		},
		{
			name: "负边距",
			mutate: func(s string) string {
				return strings.Replace(s, "margin: { left: 15, top: 10, right: 10, bottom: 10 }", "margin: { left: -1, top: 10, right: 10, bottom: 10 }", 1)
			},
			wantErr: "runner.margin: margins must not be negative",
		},
		{
			name: "边距超过一半",
			mutate: func(s string) string {
				return strings.Replace(s, "margin: { left: 6, top: 11, right: 4, bottom: 8 }", "margin: { left: 6, top: 18, right: 4, bottom: 8 }", 1)
			},
			wantErr: "sprites.bat.margin: margins must be at most half",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGameConfig([]byte(tt.mutate(string(base))))
			if err == nil {
				t.Fatal("Expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

// TestLoadGameConfigMissingFile 测试文件不存在
func TestLoadGameConfigMissingFile(t *testing.T) {
	_, err := LoadGameConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Expected an error for a missing file")
	}
	if !strings.Contains(err.Error(), "failed to read game config file") {
		t.Errorf("Unexpected error: %v", err)
	}
}

// TestLoadGameConfigDefaults 测试最小配置的默认值
func TestLoadGameConfigDefaults(t *testing.T) {
	base, err := os.ReadFile("../../" + DefaultConfigPath)
	if err != nil {
		t.Fatalf("Failed to read config: %v", err)
	}

	// 去掉可选部分，只保留必需字段
	content := string(base)
	content = strings.Replace(content, "window:\n  title: \"Snail Bait\"\n  scale: 1\n", "", 1)
	content = strings.Replace(content, "  fallback: 23\n", "", 1)

	path := filepath.Join(t.TempDir(), "snailbait.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp config: %v", err)
	}

	cfg, err := LoadGameConfig(path)
	if err != nil {
		t.Fatalf("LoadGameConfig failed: %v", err)
	}

	if cfg.Window.Title != "Snail Bait" {
		t.Errorf("Expected default title, got %q", cfg.Window.Title)
	}
	if cfg.Window.Scale != 1 {
		t.Errorf("Expected default scale 1, got %v", cfg.Window.Scale)
	}
	if math.Abs(cfg.Tracks.Fallback-23) > 0.0001 {
		t.Errorf("Expected default fallback 23, got %v", cfg.Tracks.Fallback)
	}
}
