// Package sprites 定义游戏中的精灵实体
//
// 精灵（Sprite）持有位置、尺寸、速度、可见性等共享状态，
// 并按顺序持有一组行为（Behavior）。每帧 Update 依次执行这些行为，
// 行为直接读写精灵字段。
//
// 跳跃、下落、切换图像格等可选能力以显式的装备结构体表示
// （JumpState、FallState、CellSwitchState），未装备时为 nil。
package sprites

import (
	"image/color"

	"github.com/decker502/snailbait/pkg/render"
)

const (
	DefaultWidth   = 10
	DefaultHeight  = 10
	DefaultOpacity = 1.0

	collisionRectangleLineWidth = 2.0
)

var collisionRectangleColor = color.White

// Frame 一帧的上下文
type Frame struct {
	Now           float64 // 游戏时间（毫秒）
	FPS           float64
	LastFrameTime float64 // 上一帧的游戏时间
	Surface       render.Surface
}

// Behavior 每帧对精灵执行一次的逻辑单元
type Behavior interface {
	Execute(s *Sprite, f Frame)
}

// Pauser 持有计时器的行为在游戏暂停/恢复时被调用
type Pauser interface {
	Pause(s *Sprite, now float64)
	Unpause(s *Sprite, now float64)
}

// Margin 碰撞边距（四边内缩量）
type Margin struct {
	Left, Top, Right, Bottom float64
}

// CollisionRect 碰撞矩形（屏幕坐标，已减去水平偏移）
type CollisionRect struct {
	Left, Right, Top, Bottom float64
	CenterX, CenterY         float64
}

// Rect 转为 render.Rect
func (r CollisionRect) Rect() render.Rect {
	return render.Rect{X: r.Left, Y: r.Top, W: r.Right - r.Left, H: r.Bottom - r.Top}
}

// Sprite 精灵
type Sprite struct {
	Kind      Kind
	Artist    Artist
	Behaviors []Behavior

	Left, Top     float64
	Width, Height float64
	HOffset       float64 // 水平滚动偏移

	VelocityX, VelocityY float64

	Opacity float64
	Visible bool
	Value   int

	Track     int
	Platform  *Sprite // 巡逻所在的平台
	Direction Direction

	RunAnimationRate float64 // 每秒帧数，0 表示静止

	Exploding  bool
	Detonating bool

	Bomb  *Sprite // 蜗牛 → 炸弹
	Snail *Sprite // 炸弹 → 蜗牛

	// 平台专用
	FillColor color.Color
	Pulsate   bool

	ShowCollisionRectangle bool
	collisionMargin        Margin

	Jump       *JumpState
	Fall       *FallState
	CellSwitch *CellSwitchState
}

// New 创建精灵
func New(kind Kind, artist Artist, behaviors ...Behavior) *Sprite {
	return &Sprite{
		Kind:      kind,
		Artist:    artist,
		Behaviors: behaviors,
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Opacity:   DefaultOpacity,
		Visible:   true,
		Track:     1,
	}
}

// SheetArtist 返回精灵表绘制器；不是精灵表绘制器时返回 nil
func (s *Sprite) SheetArtist() *SpriteSheetArtist {
	a, _ := s.Artist.(*SpriteSheetArtist)
	return a
}

// Right 返回右边界（世界坐标）
func (s *Sprite) Right() float64 {
	return s.Left + s.Width
}

// CollisionMargin 返回碰撞边距
func (s *Sprite) CollisionMargin() Margin {
	return s.collisionMargin
}

// SetCollisionMargin 设置碰撞边距
// 每个边距截断到 [0, 宽或高的一半]
func (s *Sprite) SetCollisionMargin(m Margin) {
	clamp := func(v, limit float64) float64 {
		if v < 0 {
			return 0
		}
		if v > limit {
			return limit
		}
		return v
	}
	s.collisionMargin = Margin{
		Left:   clamp(m.Left, s.Width/2),
		Right:  clamp(m.Right, s.Width/2),
		Top:    clamp(m.Top, s.Height/2),
		Bottom: clamp(m.Bottom, s.Height/2),
	}
}

// CalculateCollisionRectangle 计算碰撞矩形
func (s *Sprite) CalculateCollisionRectangle() CollisionRect {
	left := s.Left - s.HOffset
	m := s.collisionMargin
	return CollisionRect{
		Left:    left + m.Left,
		Right:   left + s.Width - m.Right,
		Top:     s.Top + m.Top,
		Bottom:  s.Top + s.Height - m.Bottom,
		CenterX: left + s.Width/2,
		CenterY: s.Top + s.Height/2,
	}
}

// Update 按顺序执行所有行为
func (s *Sprite) Update(f Frame) {
	for _, b := range s.Behaviors {
		b.Execute(s, f)
	}
}

// Draw 以精灵透明度绘制；不可见时只绘制碰撞矩形（如果开启）
func (s *Sprite) Draw(surface render.Surface) {
	surface.Save()
	defer surface.Restore()

	surface.SetAlpha(s.Opacity)

	if s.Visible && s.Artist != nil {
		s.Artist.Draw(s, surface)
	}

	if s.ShowCollisionRectangle {
		s.DrawCollisionRectangle(surface)
	}
}

// DrawCollisionRectangle 描绘碰撞矩形
func (s *Sprite) DrawCollisionRectangle(surface render.Surface) {
	r := s.CalculateCollisionRectangle()
	surface.StrokeRect(
		render.Rect{X: r.Left + s.HOffset, Y: r.Top, W: r.Right - r.Left, H: r.Bottom - r.Top},
		collisionRectangleLineWidth,
		collisionRectangleColor,
	)
}

// Pause 暂停所有实现了 Pauser 的行为
func (s *Sprite) Pause(now float64) {
	for _, b := range s.Behaviors {
		if p, ok := b.(Pauser); ok {
			p.Pause(s, now)
		}
	}
}

// Unpause 恢复所有实现了 Pauser 的行为
func (s *Sprite) Unpause(now float64) {
	for _, b := range s.Behaviors {
		if p, ok := b.(Pauser); ok {
			p.Unpause(s, now)
		}
	}
}

// PlatformUnderneath 返回在 track 轨道上与精灵水平重叠的第一个平台
// track <= 0 时使用精灵自身的轨道
func PlatformUnderneath(s *Sprite, track int, platforms []*Sprite) *Sprite {
	if track <= 0 {
		track = s.Track
	}
	sr := s.CalculateCollisionRectangle()
	for _, p := range platforms {
		if p.Track != track {
			continue
		}
		pr := p.CalculateCollisionRectangle()
		if sr.Right > pr.Left && sr.Left < pr.Right {
			return p
		}
	}
	return nil
}
