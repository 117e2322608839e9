package behaviors

import (
	"github.com/decker502/snailbait/pkg/sprites"
)

// RunBehavior 按 RunAnimationRate（帧/秒）播放奔跑动画；速率为 0 时定格
type RunBehavior struct {
	lastAdvance map[*sprites.Sprite]float64
}

// NewRunBehavior 创建奔跑行为
func NewRunBehavior() *RunBehavior {
	return &RunBehavior{lastAdvance: make(map[*sprites.Sprite]float64)}
}

func (b *RunBehavior) Execute(s *sprites.Sprite, f sprites.Frame) {
	if s.RunAnimationRate <= 0 {
		return
	}

	artist := s.SheetArtist()
	if artist == nil {
		sprites.Notice(s, "RunBehavior", "sprite has no spritesheet artist")
		return
	}

	last, ok := b.lastAdvance[s]
	if !ok {
		b.lastAdvance[s] = f.Now
		return
	}

	if f.Now-last > 1000/s.RunAnimationRate {
		artist.Advance()
		b.lastAdvance[s] = f.Now
	}
}
