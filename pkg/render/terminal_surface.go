package render

import (
	"image"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// TerminalSurface 把画布按比例缩放到终端字符格的表面
//
// 每个字符格是一个“像素块”，颜色写入背景色。
// 绘制先写入内存缓冲区（支持透明度混合），Present 时一次性刷到 tcell 屏幕。
type TerminalSurface struct {
	State
	screen     tcell.Screen
	canvasW    float64
	canvasH    float64
	cols, rows int
	buf        []color.RGBA
	background color.RGBA
}

// NewTerminalSurface 创建终端表面，canvasW/canvasH 为逻辑画布尺寸
func NewTerminalSurface(screen tcell.Screen, canvasW, canvasH float64) *TerminalSurface {
	s := &TerminalSurface{
		screen:     screen,
		canvasW:    canvasW,
		canvasH:    canvasH,
		background: color.RGBA{A: 255},
	}
	s.Resize()
	return s
}

// Resize 按当前终端尺寸重建缓冲区
func (s *TerminalSurface) Resize() {
	s.cols, s.rows = s.screen.Size()
	if s.cols < 1 {
		s.cols = 1
	}
	if s.rows < 1 {
		s.rows = 1
	}
	s.buf = make([]color.RGBA, s.cols*s.rows)
}

// Begin 清空缓冲区和状态栈
func (s *TerminalSurface) Begin() {
	for i := range s.buf {
		s.buf[i] = s.background
	}
	s.State = State{}
}

// Present 把缓冲区刷到屏幕
func (s *TerminalSurface) Present() {
	for y := 0; y < s.rows; y++ {
		for x := 0; x < s.cols; x++ {
			c := s.buf[y*s.cols+x]
			style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// Cell 返回缓冲区中 (x, y) 格的颜色
func (s *TerminalSurface) Cell(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= s.cols || y >= s.rows {
		return color.RGBA{}
	}
	return s.buf[y*s.cols+x]
}

// Size 返回字符格行列数
func (s *TerminalSurface) Size() (int, int) {
	return s.cols, s.rows
}

func (s *TerminalSurface) FillRect(r Rect, c color.Color) {
	x0, y0, x1, y1 := s.cellRange(s.Apply(r))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.blend(x, y, c, s.Alpha())
		}
	}
}

func (s *TerminalSurface) StrokeRect(r Rect, _ float64, c color.Color) {
	x0, y0, x1, y1 := s.cellRange(s.Apply(r))
	if x0 >= x1 || y0 >= y1 {
		return
	}
	for x := x0; x < x1; x++ {
		s.blend(x, y0, c, s.Alpha())
		s.blend(x, y1-1, c, s.Alpha())
	}
	for y := y0; y < y1; y++ {
		s.blend(x0, y, c, s.Alpha())
		s.blend(x1-1, y, c, s.Alpha())
	}
}

// DrawImage 以每个字符格中心对应的源像素采样
// 半透明以下的源像素视为透明
func (s *TerminalSurface) DrawImage(img image.Image, src, dst Rect) {
	if img == nil || dst.W <= 0 || dst.H <= 0 {
		return
	}
	dst = s.Apply(dst)
	x0, y0, x1, y1 := s.cellRange(dst)
	sx, sy := s.scale()

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			cx := (float64(x) + 0.5) * sx
			cy := (float64(y) + 0.5) * sy
			u := src.X + (cx-dst.X)/dst.W*src.W
			v := src.Y + (cy-dst.Y)/dst.H*src.H
			px := color.RGBAModel.Convert(img.At(int(u), int(v))).(color.RGBA)
			if px.A < 128 {
				continue
			}
			s.blend(x, y, px, s.Alpha())
		}
	}
}

func (s *TerminalSurface) scale() (float64, float64) {
	return s.canvasW / float64(s.cols), s.canvasH / float64(s.rows)
}

// cellRange 返回中心落在 r 内的字符格范围 [x0, x1) × [y0, y1)
func (s *TerminalSurface) cellRange(r Rect) (int, int, int, int) {
	sx, sy := s.scale()
	x0 := int(math.Ceil(r.X/sx - 0.5))
	y0 := int(math.Ceil(r.Y/sy - 0.5))
	x1 := int(math.Floor(r.Right()/sx-0.5)) + 1
	y1 := int(math.Floor(r.Bottom()/sy-0.5)) + 1
	return max(x0, 0), max(y0, 0), min(x1, s.cols), min(y1, s.rows)
}

func (s *TerminalSurface) blend(x, y int, c color.Color, alpha float64) {
	if x < 0 || y < 0 || x >= s.cols || y >= s.rows {
		return
	}
	r, g, b, a := c.RGBA()
	k := alpha * float64(a) / 0xffff
	if k <= 0 {
		return
	}
	// RGBA() 返回预乘值，先还原为非预乘分量
	un := func(v uint32) float64 {
		if a == 0 {
			return 0
		}
		return float64(v) / float64(a) * 255
	}

	dst := &s.buf[y*s.cols+x]
	dst.R = uint8(float64(dst.R)*(1-k) + un(r)*k)
	dst.G = uint8(float64(dst.G)*(1-k) + un(g)*k)
	dst.B = uint8(float64(dst.B)*(1-k) + un(b)*k)
	dst.A = 255
}
