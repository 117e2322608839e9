package sprites

import (
	"image"
	"image/color"

	"github.com/decker502/snailbait/pkg/render"
)

// Cell 精灵表中的一个图像区域
type Cell struct {
	Left, Top, Width, Height float64
}

// Rect 转为 render.Rect
func (c Cell) Rect() render.Rect {
	return render.Rect{X: c.Left, Y: c.Top, W: c.Width, H: c.Height}
}

// Artist 负责把精灵画到表面上
type Artist interface {
	Draw(s *Sprite, surface render.Surface)
}

// SpriteSheetArtist 按当前格索引从精灵表中取图绘制
type SpriteSheetArtist struct {
	Sheet     image.Image
	cells     []Cell
	cellIndex int
}

// NewSpriteSheetArtist 创建精灵表绘制器
func NewSpriteSheetArtist(sheet image.Image, cells []Cell) *SpriteSheetArtist {
	return &SpriteSheetArtist{Sheet: sheet, cells: cells}
}

// Draw 在精灵位置绘制当前格
func (a *SpriteSheetArtist) Draw(s *Sprite, surface render.Surface) {
	if len(a.cells) == 0 {
		return
	}
	cell := a.cells[a.cellIndex]
	surface.DrawImage(a.Sheet, cell.Rect(), render.Rect{X: s.Left, Y: s.Top, W: cell.Width, H: cell.Height})
}

// Advance 前进到下一格，最后一格之后回到 0
func (a *SpriteSheetArtist) Advance() {
	if len(a.cells) == 0 {
		return
	}
	if a.cellIndex >= len(a.cells)-1 {
		a.cellIndex = 0
	} else {
		a.cellIndex++
	}
}

// CellIndex 返回当前格索引
func (a *SpriteSheetArtist) CellIndex() int {
	return a.cellIndex
}

// SetCellIndex 设置当前格索引，越界时截断
func (a *SpriteSheetArtist) SetCellIndex(i int) {
	switch {
	case len(a.cells) == 0 || i < 0:
		a.cellIndex = 0
	case i >= len(a.cells):
		a.cellIndex = len(a.cells) - 1
	default:
		a.cellIndex = i
	}
}

// Cells 返回当前格集合
func (a *SpriteSheetArtist) Cells() []Cell {
	return a.cells
}

// SetCells 替换格集合，当前索引越界时回到 0
func (a *SpriteSheetArtist) SetCells(cells []Cell) {
	a.cells = cells
	if a.cellIndex >= len(cells) {
		a.cellIndex = 0
	}
}

// PlatformArtist 平台绘制器：先描边再填充
type PlatformArtist struct {
	// PlatformTop 根据轨道计算平台顶部
	PlatformTop func(track int) float64
	StrokeWidth float64
	StrokeColor color.Color
}

// Draw 在轨道高度绘制平台
func (a *PlatformArtist) Draw(s *Sprite, surface render.Surface) {
	top := s.Top
	if a.PlatformTop != nil {
		top = a.PlatformTop(s.Track)
	}
	r := render.Rect{X: s.Left, Y: top, W: s.Width, H: s.Height}

	stroke := a.StrokeColor
	if stroke == nil {
		stroke = color.Black
	}
	surface.StrokeRect(r, a.StrokeWidth, stroke)

	fill := s.FillColor
	if fill == nil {
		fill = color.White
	}
	surface.FillRect(r, fill)
}
