// Package render 定义精灵和行为使用的绘制表面
//
// Surface 是一个与后端无关的画布抽象：填充/描边矩形、按区域绘制图像、
// 平移和透明度状态栈，以及 IsPointInRect 命中测试。
// 具体后端有 ebiten（桌面窗口）、tcell（终端）以及用于测试和无界面工具的 Headless/Recorder。
package render

import (
	"image"
	"image/color"
)

// Rect 浮点矩形（左上角 + 宽高）
type Rect struct {
	X, Y, W, H float64
}

// Right 返回右边界
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom 返回下边界
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Contains 点是否落在矩形内（含边界）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Offset 返回平移后的矩形
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// ImageRect 转为 image.Rectangle（向下取整）
func (r Rect) ImageRect() image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.X+r.W), int(r.Y+r.H))
}

// Surface 绘制表面
//
// 坐标均为画布像素，受当前平移影响；透明度与绘制颜色相乘。
// Save/Restore 保存和恢复平移与透明度。
type Surface interface {
	Save()
	Restore()
	Translate(dx, dy float64)
	SetAlpha(alpha float64)

	FillRect(r Rect, c color.Color)
	StrokeRect(r Rect, lineWidth float64, c color.Color)
	DrawImage(img image.Image, src, dst Rect)

	// IsPointInRect 判断画布坐标 (x, y) 是否在按当前平移放置的 r 内
	IsPointInRect(r Rect, x, y float64) bool
}

type stateFrame struct {
	tx, ty float64
	alpha  float64
}

// State 平移和透明度状态栈，供各后端嵌入
type State struct {
	cur   stateFrame
	stack []stateFrame
	init  bool
}

func (s *State) ensure() {
	if !s.init {
		s.cur.alpha = 1
		s.init = true
	}
}

// Save 压入当前状态
func (s *State) Save() {
	s.ensure()
	s.stack = append(s.stack, s.cur)
}

// Restore 弹出状态；栈为空时为空操作
func (s *State) Restore() {
	s.ensure()
	if len(s.stack) == 0 {
		return
	}
	s.cur = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

// Translate 累加平移
func (s *State) Translate(dx, dy float64) {
	s.ensure()
	s.cur.tx += dx
	s.cur.ty += dy
}

// SetAlpha 设置全局透明度，截断到 [0, 1]
func (s *State) SetAlpha(alpha float64) {
	s.ensure()
	s.cur.alpha = clamp01(alpha)
}

// Alpha 返回当前透明度
func (s *State) Alpha() float64 {
	s.ensure()
	return s.cur.alpha
}

// Translation 返回当前平移量
func (s *State) Translation() (float64, float64) {
	return s.cur.tx, s.cur.ty
}

// Apply 把当前平移应用到矩形
func (s *State) Apply(r Rect) Rect {
	return r.Offset(s.cur.tx, s.cur.ty)
}

// IsPointInRect 见 Surface.IsPointInRect
func (s *State) IsPointInRect(r Rect, x, y float64) bool {
	return s.Apply(r).Contains(x, y)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
