package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
)

// TestParseColor 测试颜色解析
func TestParseColor(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected color.RGBA
		wantErr  bool
	}{
		{"颜色名", "aqua", color.RGBA{0, 255, 255, 255}, false},
		{"颜色名大小写", "CornflowerBlue", color.RGBA{100, 149, 237, 255}, false},
		{"十六进制", "#2b950a", color.RGBA{0x2b, 0x95, 0x0a, 255}, false},
		{"短十六进制", "#f00", color.RGBA{255, 0, 0, 255}, false},
		{"rgb函数", "rgb(200, 200, 60)", color.RGBA{200, 200, 60, 255}, false},
		{"rgb越界", "rgb(300,0,0)", color.RGBA{}, true},
		{"未知颜色", "notacolor", color.RGBA{}, true},
		{"空字符串", "", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseColor(%q) 期望返回错误", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) 返回错误: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseColor(%q) = %v, 期望 %v", tt.input, got, tt.expected)
			}
		})
	}
}

// TestStateStack 测试平移和透明度的保存与恢复
func TestStateStack(t *testing.T) {
	var s State

	if s.Alpha() != 1 {
		t.Fatalf("默认透明度应为 1，实际 %v", s.Alpha())
	}

	s.Save()
	s.Translate(-100, 0)
	s.SetAlpha(0.5)
	s.Translate(10, 5)

	if tx, ty := s.Translation(); tx != -90 || ty != 5 {
		t.Errorf("平移 = (%v, %v), 期望 (-90, 5)", tx, ty)
	}
	if s.Alpha() != 0.5 {
		t.Errorf("透明度 = %v, 期望 0.5", s.Alpha())
	}

	s.Restore()
	if tx, ty := s.Translation(); tx != 0 || ty != 0 {
		t.Errorf("恢复后平移 = (%v, %v), 期望 (0, 0)", tx, ty)
	}
	if s.Alpha() != 1 {
		t.Errorf("恢复后透明度 = %v, 期望 1", s.Alpha())
	}

	// 多余的 Restore 为空操作
	s.Restore()
	s.SetAlpha(3)
	if s.Alpha() != 1 {
		t.Errorf("透明度应截断到 1，实际 %v", s.Alpha())
	}
}

// TestIsPointInRect 命中测试受平移影响
func TestIsPointInRect(t *testing.T) {
	h := NewHeadless()
	r := Rect{X: 5, Y: 5, W: 10, H: 10}

	if !h.IsPointInRect(r, 10, 10) {
		t.Error("(10,10) 应在矩形内")
	}
	if !h.IsPointInRect(r, 15, 15) {
		t.Error("边界点应在矩形内")
	}
	if h.IsPointInRect(r, 4, 10) {
		t.Error("(4,10) 不应在矩形内")
	}

	h.Translate(-5, 0)
	if h.IsPointInRect(r, 12, 10) {
		t.Error("平移后 (12,10) 不应在矩形内")
	}
	if !h.IsPointInRect(r, 0, 10) {
		t.Error("平移后 (0,10) 应在矩形内")
	}
}

// TestRecorder 记录的操作已应用平移和透明度
func TestRecorder(t *testing.T) {
	rec := NewRecorder()
	rec.Save()
	rec.Translate(-50, 0)
	rec.SetAlpha(0.25)
	rec.FillRect(Rect{X: 100, Y: 10, W: 20, H: 8}, color.Black)
	rec.StrokeRect(Rect{X: 100, Y: 10, W: 20, H: 8}, 2, color.White)
	rec.Restore()
	rec.DrawImage(nil, Rect{W: 10, H: 10}, Rect{X: 1, Y: 2, W: 10, H: 10})

	if len(rec.Ops) != 3 {
		t.Fatalf("记录了 %d 个操作，期望 3", len(rec.Ops))
	}
	if got := rec.Ops[0].Rect; got.X != 50 || got.Y != 10 {
		t.Errorf("填充矩形 = %+v, 期望 X=50", got)
	}
	if rec.Ops[1].Alpha != 0.25 || rec.Ops[1].LineWidth != 2 {
		t.Errorf("描边操作 = %+v", rec.Ops[1])
	}
	if rec.Ops[2].Alpha != 1 || rec.Ops[2].Rect.X != 1 {
		t.Errorf("图像操作 = %+v", rec.Ops[2])
	}
	if rec.Count(OpImage) != 1 {
		t.Errorf("Count(OpImage) = %d, 期望 1", rec.Count(OpImage))
	}

	rec.Reset()
	if len(rec.Ops) != 0 {
		t.Error("Reset 后应无操作")
	}
}

func newSimulationSurface(t *testing.T) (*TerminalSurface, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("初始化模拟屏幕失败: %v", err)
	}
	screen.SetSize(80, 40)
	t.Cleanup(screen.Fini)
	return NewTerminalSurface(screen, 800, 400), screen
}

// TestTerminalSurfaceFill 画布坐标按比例映射到字符格
func TestTerminalSurfaceFill(t *testing.T) {
	surface, screen := newSimulationSurface(t)

	if cols, rows := surface.Size(); cols != 80 || rows != 40 {
		t.Fatalf("字符格 = %dx%d, 期望 80x40", cols, rows)
	}

	red := color.RGBA{255, 0, 0, 255}
	surface.Begin()
	surface.FillRect(Rect{X: 0, Y: 0, W: 100, H: 100}, red)

	if got := surface.Cell(5, 5); got != red {
		t.Errorf("Cell(5,5) = %v, 期望红色", got)
	}
	if got := surface.Cell(10, 10); got != (color.RGBA{A: 255}) {
		t.Errorf("Cell(10,10) = %v, 期望背景色", got)
	}

	surface.Present()
	screen.Show()
	_, _, style, _ := screen.GetContent(5, 5)
	_, bg, _ := style.Decompose()
	if r, g, b := bg.RGB(); r != 255 || g != 0 || b != 0 {
		t.Errorf("屏幕背景色 = (%d,%d,%d), 期望 (255,0,0)", r, g, b)
	}
}

// TestTerminalSurfaceAlpha 透明度与背景混合
func TestTerminalSurfaceAlpha(t *testing.T) {
	surface, _ := newSimulationSurface(t)

	surface.Begin()
	surface.SetAlpha(0.5)
	surface.FillRect(Rect{X: 0, Y: 0, W: 800, H: 400}, color.RGBA{200, 100, 0, 255})

	got := surface.Cell(40, 20)
	if got.R != 100 || got.G != 50 || got.B != 0 {
		t.Errorf("半透明填充 = %v, 期望 (100,50,0)", got)
	}
}

// TestTerminalSurfaceImage 按源区域采样，透明像素跳过
func TestTerminalSurfaceImage(t *testing.T) {
	surface, _ := newSimulationSurface(t)

	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			img.Set(x, y, color.RGBA{0, 0, 255, 255})
		}
	}

	surface.Begin()
	surface.DrawImage(img, Rect{X: 0, Y: 0, W: 40, H: 20}, Rect{X: 0, Y: 0, W: 40, H: 20})

	if got := surface.Cell(0, 0); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("Cell(0,0) = %v, 期望蓝色", got)
	}
	if got := surface.Cell(3, 0); got != (color.RGBA{A: 255}) {
		t.Errorf("透明区域 Cell(3,0) = %v, 期望背景色", got)
	}
}
