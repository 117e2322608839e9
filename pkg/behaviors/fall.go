package behaviors

import (
	"github.com/decker502/snailbait/pkg/sprites"
)

// FallBehavior 下落行为
//
// 未下落时：既不在跳跃、脚下轨道又没有平台，则开始下落（初速度 0）。
// 下落时：速度 = 初速度 + g·t·ppm，按帧间隔积分出下落距离；
// 将要穿过当前轨道时，有平台则落在平台上，否则降到下一条轨道继续下落。
// 掉出画布或正在爆炸时停止下落，掉出画布还会扣一条命。
type FallBehavior struct {
	CanvasHeight   float64
	Gravity        float64
	PixelsPerMeter float64

	Platforms   func() []*sprites.Sprite
	PlatformTop func(track int) float64
	PutOnTrack  func(s *sprites.Sprite, track int)
	LoseLife    func()
}

func (b *FallBehavior) Pause(s *sprites.Sprite, now float64) {
	if s.Fall != nil {
		s.Fall.Timer.Pause(now)
	}
}

func (b *FallBehavior) Unpause(s *sprites.Sprite, now float64) {
	if s.Fall != nil {
		s.Fall.Timer.Unpause(now)
	}
}

// IsOutOfPlay 精灵是否已掉出画布底部
func (b *FallBehavior) IsOutOfPlay(s *sprites.Sprite) bool {
	return s.Top > b.CanvasHeight
}

func (b *FallBehavior) Execute(s *sprites.Sprite, f sprites.Frame) {
	if s.Fall == nil {
		sprites.Notice(s, "FallBehavior", "sprite is not equipped for falling")
		return
	}

	if !s.Fall.Falling {
		if !s.Jumping() && b.platformUnderneath(s) == nil {
			s.StartFall(f.Now, 0)
		}
		return
	}

	if b.IsOutOfPlay(s) || s.Exploding {
		outOfPlay := b.IsOutOfPlay(s)
		s.StopFalling(f.Now)
		if outOfPlay && b.LoseLife != nil {
			b.LoseLife()
		}
		return
	}

	b.moveDown(s, f)
}

func (b *FallBehavior) moveDown(s *sprites.Sprite, f sprites.Frame) {
	fs := s.Fall
	s.VelocityY = fs.InitialVelocity + b.Gravity*(fs.Timer.GetElapsedTime(f.Now)/1000)*b.PixelsPerMeter

	drop := s.VelocityY * elapsedSinceLastFrame(f) / 1000

	if !b.willFallBelowCurrentTrack(s, drop) {
		s.Top += drop
		return
	}

	if b.platformUnderneath(s) != nil {
		s.StopFalling(f.Now)
		if b.PutOnTrack != nil {
			b.PutOnTrack(s, s.Track)
		}
		return
	}

	if s.Track > 0 {
		s.Track--
	}
	s.Top += drop
}

func (b *FallBehavior) willFallBelowCurrentTrack(s *sprites.Sprite, drop float64) bool {
	if b.PlatformTop == nil {
		return false
	}
	return s.Top+s.Height+drop > b.PlatformTop(s.Track)
}

func (b *FallBehavior) platformUnderneath(s *sprites.Sprite) *sprites.Sprite {
	if b.Platforms == nil || s.Track <= 0 {
		return nil
	}
	return sprites.PlatformUnderneath(s, s.Track, b.Platforms())
}
