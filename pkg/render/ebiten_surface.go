package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface 把 Surface 调用转成对 ebiten 屏幕图像的绘制
//
// 每帧在 Draw 中调用 Begin(screen) 绑定目标图像。
// 源图像（精灵表）第一次使用时转换为 *ebiten.Image 并缓存。
type EbitenSurface struct {
	State
	target *ebiten.Image
	cache  map[image.Image]*ebiten.Image
}

// NewEbitenSurface 创建 ebiten 表面
func NewEbitenSurface() *EbitenSurface {
	return &EbitenSurface{
		cache: make(map[image.Image]*ebiten.Image),
	}
}

// Begin 绑定本帧的目标图像并清空状态栈
func (s *EbitenSurface) Begin(target *ebiten.Image) {
	s.target = target
	s.State = State{}
}

func (s *EbitenSurface) FillRect(r Rect, c color.Color) {
	if s.target == nil {
		return
	}
	r = s.Apply(r)
	vector.DrawFilledRect(s.target, float32(r.X), float32(r.Y), float32(r.W), float32(r.H),
		scaleAlpha(c, s.Alpha()), false)
}

func (s *EbitenSurface) StrokeRect(r Rect, lineWidth float64, c color.Color) {
	if s.target == nil {
		return
	}
	r = s.Apply(r)
	vector.StrokeRect(s.target, float32(r.X), float32(r.Y), float32(r.W), float32(r.H),
		float32(lineWidth), scaleAlpha(c, s.Alpha()), false)
}

func (s *EbitenSurface) DrawImage(img image.Image, src, dst Rect) {
	if s.target == nil || img == nil || src.W <= 0 || src.H <= 0 {
		return
	}

	eimg, ok := s.cache[img]
	if !ok {
		if e, isEbiten := img.(*ebiten.Image); isEbiten {
			eimg = e
		} else {
			eimg = ebiten.NewImageFromImage(img)
		}
		s.cache[img] = eimg
	}

	sub := eimg.SubImage(src.ImageRect()).(*ebiten.Image)
	dst = s.Apply(dst)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.W/src.W, dst.H/src.H)
	op.GeoM.Translate(dst.X, dst.Y)
	op.ColorScale.ScaleAlpha(float32(s.Alpha()))
	s.target.DrawImage(sub, op)
}

// scaleAlpha 把颜色乘以透明度（预乘 alpha）
func scaleAlpha(c color.Color, alpha float64) color.Color {
	if alpha >= 1 {
		return c
	}
	r, g, b, a := c.RGBA()
	return color.RGBA64{
		R: uint16(float64(r) * alpha),
		G: uint16(float64(g) * alpha),
		B: uint16(float64(b) * alpha),
		A: uint16(float64(a) * alpha),
	}
}
