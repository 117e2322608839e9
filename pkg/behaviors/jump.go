package behaviors

import (
	"github.com/decker502/snailbait/pkg/sprites"
)

// JumpBehavior 跳跃行为
//
// 状态机：idle → ascending → (记录顶点) → descending → idle。
// 上升和下降各占总时长的一半，位移按（缓动后的）已用时间线性换算。
// 下降结束时，轨道上仍有平台则回到起跳高度，否则以当前竖直速度转入下落。
type JumpBehavior struct {
	// Platforms 返回所有平台精灵
	Platforms func() []*sprites.Sprite

	Gravity        float64 // 米/秒²
	PixelsPerMeter float64
}

// NewJumpBehavior 创建跳跃行为
func NewJumpBehavior(platforms func() []*sprites.Sprite, gravity, pixelsPerMeter float64) *JumpBehavior {
	return &JumpBehavior{
		Platforms:      platforms,
		Gravity:        gravity,
		PixelsPerMeter: pixelsPerMeter,
	}
}

// Pause 暂停正在运行的上升或下降计时器
func (b *JumpBehavior) Pause(s *sprites.Sprite, now float64) {
	if s.Jump == nil {
		return
	}
	if s.Jump.Ascend.IsRunning() {
		s.Jump.Ascend.Pause(now)
	} else if s.Jump.Descend.IsRunning() {
		s.Jump.Descend.Pause(now)
	}
}

// Unpause 恢复正在运行的上升或下降计时器
func (b *JumpBehavior) Unpause(s *sprites.Sprite, now float64) {
	if s.Jump == nil {
		return
	}
	if s.Jump.Ascend.IsRunning() {
		s.Jump.Ascend.Unpause(now)
	} else if s.Jump.Descend.IsRunning() {
		s.Jump.Descend.Unpause(now)
	}
}

func (b *JumpBehavior) Execute(s *sprites.Sprite, f sprites.Frame) {
	j := s.Jump
	if j == nil {
		sprites.Notice(s, "JumpBehavior", "sprite is not equipped for jumping")
		return
	}

	half := j.Duration / 2

	switch j.Phase {
	case sprites.JumpAscending:
		elapsed := j.Ascend.GetElapsedTime(f.Now)
		if elapsed > half {
			b.finishAscent(s, f.Now)
			return
		}
		s.Top = j.LaunchTop - (elapsed/half)*j.Height

	case sprites.JumpDescending:
		elapsed := j.Descend.GetElapsedTime(f.Now)
		if elapsed > half {
			b.finishDescent(s, f.Now)
			return
		}
		s.Top = j.Apex + (elapsed/half)*j.Height
	}
}

func (b *JumpBehavior) finishAscent(s *sprites.Sprite, now float64) {
	j := s.Jump
	j.Apex = s.Top
	j.Ascend.Stop(now)
	j.Descend.Start(now)
	j.Phase = sprites.JumpDescending
}

func (b *JumpBehavior) finishDescent(s *sprites.Sprite, now float64) {
	descendSeconds := s.Jump.Descend.GetElapsedTime(now) / 1000
	s.StopJumping(now)

	var platforms []*sprites.Sprite
	if b.Platforms != nil {
		platforms = b.Platforms()
	}

	if sprites.PlatformUnderneath(s, s.Track, platforms) != nil {
		s.Top = s.Jump.LaunchTop
		return
	}

	if s.Fall == nil {
		sprites.Notice(s, "JumpBehavior", "no platform underneath and sprite cannot fall")
		return
	}
	s.StartFall(now, b.Gravity*descendSeconds*b.PixelsPerMeter)
}
