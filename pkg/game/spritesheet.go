package game

import (
	"image"
	"image/color"
	"math"
	"sort"

	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/decker502/snailbait/pkg/config"
	"github.com/decker502/snailbait/pkg/render"
)

// 调色板中的背景键
const (
	paletteSky        = "sky"
	paletteBackground = "background"
)

// cellShape 格内图形
type cellShape int

const (
	shapeBlock cellShape = iota
	shapeEllipse
	shapeDiamond
)

// shapeOf 按格表名选择图形；金币和炸弹为圆，宝石为菱形，其余为方块
func shapeOf(name string) cellShape {
	switch name {
	case "goldCoin", "blueCoin", "snailBomb", "explosion":
		return shapeEllipse
	case "ruby", "sapphire":
		return shapeDiamond
	}
	return shapeBlock
}

// SynthesizeSpritesheet 按格表和调色板合成精灵表
//
// 每个格表用调色板中同名的颜色绘制；调色板中没有的格表保持透明。
// 背景区域（TopInSpritesheet 起）上部为天空色，下部为草地色并带起伏的山丘。
func SynthesizeSpritesheet(cfg *config.GameConfig) *image.RGBA {
	bounds := sheetBounds(cfg)
	img := image.NewRGBA(bounds)

	drawBackgroundBand(img, cfg)

	names := make([]string, 0, len(cfg.Cells))
	for name := range cfg.Cells {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		value, ok := cfg.Palette[name]
		if !ok {
			continue
		}
		fill, err := render.ParseColor(value)
		if err != nil {
			continue
		}
		for _, c := range cfg.Cells[name] {
			r := image.Rect(int(c.Left), int(c.Top), int(c.Left+c.Width), int(c.Top+c.Height))
			paintCell(img, r, fill, shapeOf(name))
		}
	}
	return img
}

// sheetBounds 覆盖所有格和背景区域的最小矩形
func sheetBounds(cfg *config.GameConfig) image.Rectangle {
	bg := cfg.Background
	w := int(math.Ceil(bg.Width))
	h := int(math.Ceil(bg.TopInSpritesheet + bg.Height))
	for _, cells := range cfg.Cells {
		for _, c := range cells {
			w = max(w, int(math.Ceil(c.Left+c.Width)))
			h = max(h, int(math.Ceil(c.Top+c.Height)))
		}
	}
	return image.Rect(0, 0, w, h)
}

func paletteColor(cfg *config.GameConfig, key string, fallback color.RGBA) color.RGBA {
	if v, ok := cfg.Palette[key]; ok {
		if c, err := render.ParseColor(v); err == nil {
			return c
		}
	}
	return fallback
}

func drawBackgroundBand(img *image.RGBA, cfg *config.GameConfig) {
	bg := cfg.Background
	top := int(bg.TopInSpritesheet)
	w := int(bg.Width)
	h := int(bg.Height)
	band := image.Rect(0, top, w, top+h)

	sky := paletteColor(cfg, paletteSky, colornames.Skyblue)
	ground := paletteColor(cfg, paletteBackground, colornames.Forestgreen)

	draw.Draw(img, band, image.NewUniform(sky), image.Point{}, draw.Src)

	// 山丘：一条正弦轮廓线以下填充草地色，首尾高度相同以便无缝拼接
	z := vector.NewRasterizer(w, h)
	horizon := float32(h) * 0.7
	amplitude := float32(h) * 0.08
	z.MoveTo(0, float32(h))
	for x := 0; x <= w; x += 4 {
		phase := 2 * math.Pi * float64(x) / float64(w)
		y := horizon - amplitude*float32(math.Sin(phase*3))
		z.LineTo(float32(x), y)
	}
	z.LineTo(float32(w), float32(h))
	z.ClosePath()
	z.Draw(img, band, image.NewUniform(ground), image.Point{})
}

// paintCell 在格内绘制带深色描边的图形
func paintCell(img *image.RGBA, r image.Rectangle, fill color.RGBA, shape cellShape) {
	if r.Empty() {
		return
	}
	outline := darken(fill)

	if shape == shapeBlock {
		draw.Draw(img, r, image.NewUniform(outline), image.Point{}, draw.Over)
		draw.Draw(img, r.Inset(1), image.NewUniform(fill), image.Point{}, draw.Over)
		return
	}

	w, h := r.Dx(), r.Dy()
	rasterizeShape(img, r, outline, shape, float32(w), float32(h), 0)
	rasterizeShape(img, r, fill, shape, float32(w), float32(h), 1.5)
}

func rasterizeShape(img *image.RGBA, r image.Rectangle, c color.RGBA, shape cellShape, w, h, inset float32) {
	z := vector.NewRasterizer(r.Dx(), r.Dy())
	cx, cy := w/2, h/2
	rx, ry := cx-inset, cy-inset
	if rx <= 0 || ry <= 0 {
		return
	}

	switch shape {
	case shapeDiamond:
		z.MoveTo(cx, cy-ry)
		z.LineTo(cx+rx, cy)
		z.LineTo(cx, cy+ry)
		z.LineTo(cx-rx, cy)
	default:
		const segments = 24
		z.MoveTo(cx+rx, cy)
		for i := 1; i < segments; i++ {
			a := 2 * math.Pi * float64(i) / segments
			z.LineTo(cx+rx*float32(math.Cos(a)), cy+ry*float32(math.Sin(a)))
		}
	}
	z.ClosePath()
	z.Draw(img, r, image.NewUniform(c), r.Min)
}

func darken(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A}
}
