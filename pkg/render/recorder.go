package render

import (
	"image"
	"image/color"
)

// Headless 丢弃所有绘制的表面
// 保留状态栈和命中测试，用于无界面运行和测试
type Headless struct {
	State
}

// NewHeadless 创建无界面表面
func NewHeadless() *Headless {
	return &Headless{}
}

func (h *Headless) FillRect(Rect, color.Color)            {}
func (h *Headless) StrokeRect(Rect, float64, color.Color) {}
func (h *Headless) DrawImage(image.Image, Rect, Rect)     {}

// OpKind 绘制操作类型
type OpKind int

const (
	OpFill OpKind = iota
	OpStroke
	OpImage
)

// Op 一次被记录的绘制操作（已应用平移和透明度）
type Op struct {
	Kind      OpKind
	Rect      Rect // 目标矩形
	Src       Rect // 图像源区域（仅 OpImage）
	Color     color.Color
	LineWidth float64
	Alpha     float64
}

// Recorder 记录所有绘制操作的表面
type Recorder struct {
	State
	Ops []Op
}

// NewRecorder 创建记录表面
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Reset 清空已记录的操作
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

func (r *Recorder) FillRect(rect Rect, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFill, Rect: r.Apply(rect), Color: c, Alpha: r.Alpha()})
}

func (r *Recorder) StrokeRect(rect Rect, lineWidth float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpStroke, Rect: r.Apply(rect), Color: c, LineWidth: lineWidth, Alpha: r.Alpha()})
}

func (r *Recorder) DrawImage(_ image.Image, src, dst Rect) {
	r.Ops = append(r.Ops, Op{Kind: OpImage, Rect: r.Apply(dst), Src: src, Alpha: r.Alpha()})
}

// Count 返回某类操作的数量
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}
