package behaviors

import (
	"github.com/decker502/snailbait/pkg/sprites"
	"github.com/decker502/snailbait/pkg/timing"
)

type bounceState struct {
	timer    *timing.AnimationTimer
	baseline float64
	bouncing bool
}

// BounceBehavior 上下弹跳
//
// 使用先出后入的缓动计时器：前半程从基线上升，后半程回落到基线，
// 最高点比基线高 Height。计时器到期后自动重启，形成连续循环。
type BounceBehavior struct {
	Duration float64
	Distance float64 // 两倍弹跳高度

	states map[*sprites.Sprite]*bounceState
}

// NewBounceBehavior 创建弹跳行为；duration <= 0 时为 1000，height <= 0 时为 50
func NewBounceBehavior(duration, height float64) *BounceBehavior {
	if duration <= 0 {
		duration = 1000
	}
	distance := 100.0
	if height > 0 {
		distance = height * 2
	}
	return &BounceBehavior{
		Duration: duration,
		Distance: distance,
		states:   make(map[*sprites.Sprite]*bounceState),
	}
}

func (b *BounceBehavior) state(s *sprites.Sprite) *bounceState {
	st, ok := b.states[s]
	if !ok {
		st = &bounceState{
			timer: timing.NewAnimationTimer(b.Duration, timing.MakeEaseOutInEasingFunction()),
		}
		b.states[s] = st
	}
	return st
}

func (b *BounceBehavior) Pause(s *sprites.Sprite, now float64) {
	if st, ok := b.states[s]; ok && !st.timer.IsPaused() {
		st.timer.Pause(now)
	}
}

func (b *BounceBehavior) Unpause(s *sprites.Sprite, now float64) {
	if st, ok := b.states[s]; ok && st.timer.IsPaused() {
		st.timer.Unpause(now)
	}
}

func (b *BounceBehavior) Execute(s *sprites.Sprite, f sprites.Frame) {
	st := b.state(s)

	if !st.bouncing {
		st.baseline = s.Top
		st.bouncing = true
		st.timer.Start(f.Now)
		return
	}

	if st.timer.IsExpired(f.Now) {
		st.timer.Stop(f.Now)
		st.timer.Reset(f.Now)
		st.timer.Start(f.Now)
		s.Top = st.baseline
		return
	}

	elapsed := st.timer.GetElapsedTime(f.Now)
	deltaY := elapsed / b.Duration * b.Distance

	if elapsed < b.Duration/2 {
		s.Top = st.baseline - deltaY
	} else {
		s.Top = st.baseline - b.Distance + deltaY
	}
}
