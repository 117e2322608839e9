package behaviors

import (
	"github.com/decker502/snailbait/pkg/sprites"
)

// DefaultMouthOpenCell 蜗牛张嘴的格索引
const DefaultMouthOpenCell = 2

// SnailShootBehavior 蜗牛在视野内张嘴时发射炸弹
// 炸弹已经可见（在飞行中）时不再发射
type SnailShootBehavior struct {
	InView        func(s *sprites.Sprite) bool
	MouthOpenCell int
}

func (b *SnailShootBehavior) Execute(s *sprites.Sprite, _ sprites.Frame) {
	if b.InView != nil && !b.InView(s) {
		return
	}

	bomb := s.Bomb
	if bomb == nil {
		sprites.Notice(s, "SnailShootBehavior", "snail has no bomb")
		return
	}
	artist := s.SheetArtist()
	if artist == nil {
		sprites.Notice(s, "SnailShootBehavior", "sprite has no spritesheet artist")
		return
	}

	if !bomb.Visible && artist.CellIndex() == b.MouthOpenCell {
		bomb.Left = s.Left
		bomb.Visible = true
	}
}

// SnailBombMoveBehavior 炸弹以固定速度向左飞行，到达屏幕左边缘时隐藏
type SnailBombMoveBehavior struct {
	Velocity float64 // 像素/秒
}

func (b *SnailBombMoveBehavior) Execute(s *sprites.Sprite, f sprites.Frame) {
	right := s.Left + s.Width
	if right > s.HOffset && right < s.HOffset+s.Width {
		s.Visible = false
		return
	}
	s.Left -= b.Velocity * elapsedSinceLastFrame(f) / 1000
}
