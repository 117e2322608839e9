package behaviors

import (
	"github.com/decker502/snailbait/pkg/render"
	"github.com/decker502/snailbait/pkg/sprites"
)

// CollideBehavior 跑者的碰撞检测
//
// 每帧先做粗测（对方左边界在自己右边界左侧、双方可见且未爆炸），
// 再做细测（自己的四个角和中心是否落在对方的碰撞矩形内），
// 最后按对方类型分派结果。
type CollideBehavior struct {
	Sprites     func() []*sprites.Sprite
	PlatformTop func(track int) float64

	Explode  func(s *sprites.Sprite)
	Shake    func()
	LoseLife func()
	// Collect 收集金币或宝石时调用（计分）
	Collect func(s *sprites.Sprite)
}

// IsCandidateForCollision 粗测
func IsCandidateForCollision(s, other *sprites.Sprite) bool {
	sr := s.CalculateCollisionRectangle()
	or := other.CalculateCollisionRectangle()
	return or.Left < sr.Right &&
		s != other &&
		s.Visible && other.Visible &&
		!s.Exploding && !other.Exploding
}

// DidCollide 细测：s 的四个角或中心是否在 other 的碰撞矩形内
// surface 为 nil 时直接做几何判断
func DidCollide(s, other *sprites.Sprite, surface render.Surface) bool {
	o := other.CalculateCollisionRectangle().Rect()
	r := s.CalculateCollisionRectangle()

	inside := o.Contains
	if surface != nil {
		inside = func(x, y float64) bool { return surface.IsPointInRect(o, x, y) }
	}

	return inside(r.Left, r.Top) ||
		inside(r.Right, r.Top) ||
		inside(r.CenterX, r.CenterY) ||
		inside(r.Left, r.Bottom) ||
		inside(r.Right, r.Bottom)
}

func (b *CollideBehavior) Execute(s *sprites.Sprite, f sprites.Frame) {
	if b.Sprites == nil {
		sprites.Notice(s, "CollideBehavior", "no sprite source configured")
		return
	}

	for _, other := range b.Sprites() {
		if IsCandidateForCollision(s, other) && DidCollide(s, other, f.Surface) {
			b.processCollision(s, other, f.Now)
		}
	}
}

func (b *CollideBehavior) processCollision(s, other *sprites.Sprite, now float64) {
	switch {
	case other.Kind == sprites.KindPlatform:
		if s.Jumping() && s.Jump.Phase == sprites.JumpDescending {
			b.landOnPlatform(s, other, now)
		}
		return

	case other.Kind.IsCollectible():
		other.Visible = false
		if b.Collect != nil {
			b.Collect(other)
		}
		return

	case other.Kind == sprites.KindButton:
		descending := s.Jumping() && s.Jump.Phase == sprites.JumpDescending
		if s.Falling() || descending {
			other.Detonating = true
		}
		return
	}

	if other.Kind.IsBadGuy() {
		if other.Kind == sprites.KindSnail || other.Kind == sprites.KindSnailBomb {
			other.Visible = false
		}
		b.processBadGuyCollision(s)
	}
}

func (b *CollideBehavior) landOnPlatform(s, platform *sprites.Sprite, now float64) {
	s.Track = platform.Track
	if b.PlatformTop != nil {
		s.Top = b.PlatformTop(s.Track) - s.Height
	}
	s.StopJumping(now)
}

func (b *CollideBehavior) processBadGuyCollision(s *sprites.Sprite) {
	if b.Explode != nil {
		b.Explode(s)
	}
	if b.Shake != nil {
		b.Shake()
	}
	if b.LoseLife != nil {
		b.LoseLife()
	}
}
