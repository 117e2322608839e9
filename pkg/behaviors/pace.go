package behaviors

import (
	"github.com/decker502/snailbait/pkg/sprites"
)

// PaceBehavior 在所在平台上来回巡逻
// 只比较精灵和平台的矩形来决定掉头，不依赖碰撞
type PaceBehavior struct{}

func (PaceBehavior) Execute(s *sprites.Sprite, f sprites.Frame) {
	p := s.Platform
	if p == nil {
		sprites.Notice(s, "PaceBehavior", "sprite has no platform to pace on")
		return
	}

	if s.Direction == sprites.DirectionUnset {
		s.Direction = sprites.DirectionRight
	}

	switch {
	case s.Right() > p.Right() && s.Direction == sprites.DirectionRight:
		s.Direction = sprites.DirectionLeft
	case s.Left < p.Left && s.Direction == sprites.DirectionLeft:
		s.Direction = sprites.DirectionRight
	}

	pixels := s.VelocityX * elapsedSinceLastFrame(f) / 1000
	if s.Direction == sprites.DirectionRight {
		s.Left += pixels
	} else {
		s.Left -= pixels
	}
}
