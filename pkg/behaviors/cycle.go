package behaviors

import (
	"github.com/decker502/snailbait/pkg/sprites"
)

// CycleBehavior 按固定节奏循环播放精灵表中的格
//
// 每格停留 Duration 毫秒；Interval > 0 时，回到第 0 格后改为停留 Interval 毫秒
// （一轮播放结束后的间歇）。第一次执行只记录基准时间。
type CycleBehavior struct {
	Duration float64
	Interval float64

	lastAdvance map[*sprites.Sprite]float64
}

// NewCycleBehavior 创建循环行为
func NewCycleBehavior(duration, interval float64) *CycleBehavior {
	if duration <= 0 {
		duration = 1000
	}
	return &CycleBehavior{
		Duration:    duration,
		Interval:    interval,
		lastAdvance: make(map[*sprites.Sprite]float64),
	}
}

func (b *CycleBehavior) Execute(s *sprites.Sprite, f sprites.Frame) {
	artist := s.SheetArtist()
	if artist == nil {
		sprites.Notice(s, "CycleBehavior", "sprite has no spritesheet artist")
		return
	}

	last, ok := b.lastAdvance[s]
	if !ok {
		b.lastAdvance[s] = f.Now
		return
	}

	wait := b.Duration
	if b.Interval > 0 && artist.CellIndex() == 0 {
		wait = b.Interval
	}

	if f.Now-last > wait {
		artist.Advance()
		b.lastAdvance[s] = f.Now
	}
}
