package behaviors

import (
	"github.com/decker502/snailbait/pkg/sprites"
	"github.com/decker502/snailbait/pkg/timing"
)

type pulseState struct {
	timer     *timing.AnimationTimer
	pulsating bool
}

// PulseBehavior 透明度呼吸效果
// 前半程从不透明淡到 OpacityThreshold，后半程恢复到不透明，到期后重启
type PulseBehavior struct {
	Duration         float64
	OpacityThreshold float64

	states map[*sprites.Sprite]*pulseState
}

// NewPulseBehavior 创建呼吸行为
func NewPulseBehavior(duration, opacityThreshold float64) *PulseBehavior {
	if duration <= 0 {
		duration = 1000
	}
	return &PulseBehavior{
		Duration:         duration,
		OpacityThreshold: min(max(opacityThreshold, 0), 1),
		states:           make(map[*sprites.Sprite]*pulseState),
	}
}

func (b *PulseBehavior) state(s *sprites.Sprite) *pulseState {
	st, ok := b.states[s]
	if !ok {
		st = &pulseState{
			timer: timing.NewAnimationTimer(b.Duration, timing.MakeEaseInOutEasingFunction()),
		}
		b.states[s] = st
	}
	return st
}

func (b *PulseBehavior) Pause(s *sprites.Sprite, now float64) {
	if st, ok := b.states[s]; ok && !st.timer.IsPaused() {
		st.timer.Pause(now)
	}
}

func (b *PulseBehavior) Unpause(s *sprites.Sprite, now float64) {
	if st, ok := b.states[s]; ok && st.timer.IsPaused() {
		st.timer.Unpause(now)
	}
}

func (b *PulseBehavior) Execute(s *sprites.Sprite, f sprites.Frame) {
	st := b.state(s)

	if !st.pulsating {
		st.pulsating = true
		st.timer.Start(f.Now)
		return
	}

	if st.timer.IsExpired(f.Now) {
		st.timer.Stop(f.Now)
		st.timer.Reset(f.Now)
		st.timer.Start(f.Now)
		s.Opacity = 1
		return
	}

	half := b.Duration / 2
	span := 1 - b.OpacityThreshold
	elapsed := st.timer.GetElapsedTime(f.Now)

	var opacity float64
	if elapsed < half {
		opacity = 1 - span*(elapsed/half)
	} else {
		opacity = b.OpacityThreshold + span*((elapsed-half)/half)
	}
	s.Opacity = min(max(opacity, b.OpacityThreshold), 1)
}
