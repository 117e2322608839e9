package behaviors

import (
	"fmt"

	"github.com/decker502/snailbait/pkg/sprites"
	"github.com/decker502/snailbait/pkg/timing"
)

// BlueButtonDetonateBehavior 蓝色按钮被踩下后引爆两个目标
//
// 踩下时按钮压扁（第 1 格）并立即引爆第一个目标；
// SecondExplosionDelay 毫秒后引爆第二个目标并进入慢动作；
// ReboundDelay 毫秒后按钮弹起（第 0 格）并恢复正常时间速率。
// 延迟任务按按钮登记到调度器，重复触发会取代尚未执行的旧任务。
type BlueButtonDetonateBehavior struct {
	Explode     func(s *sprites.Sprite)
	SetTimeRate func(rate float64)
	Targets     []*sprites.Sprite
	Scheduler   *timing.Scheduler

	SecondExplosionDelay float64
	ReboundDelay         float64
	SlowMotionRate       float64
}

func (b *BlueButtonDetonateBehavior) Execute(s *sprites.Sprite, _ sprites.Frame) {
	if !s.Detonating {
		return
	}
	s.Detonating = false

	artist := s.SheetArtist()
	if artist == nil {
		sprites.Notice(s, "BlueButtonDetonateBehavior", "sprite has no spritesheet artist")
		return
	}
	if b.Scheduler == nil || b.Explode == nil || len(b.Targets) < 2 {
		sprites.Notice(s, "BlueButtonDetonateBehavior", "detonation is not fully configured")
		return
	}

	artist.SetCellIndex(1)
	b.Explode(b.Targets[0])

	key := fmt.Sprintf("detonate:%p", s)
	second := b.Targets[1]

	b.Scheduler.AfterKeyed(key+":second", b.SecondExplosionDelay, func() {
		b.Explode(second)
		if b.SetTimeRate != nil {
			b.SetTimeRate(b.SlowMotionRate)
		}
	})

	b.Scheduler.AfterKeyed(key+":rebound", b.ReboundDelay, func() {
		artist.SetCellIndex(0)
		if b.SetTimeRate != nil {
			b.SetTimeRate(1.0)
		}
	})
}
