package behaviors

import (
	"github.com/decker502/snailbait/pkg/sprites"
)

// CellSwitchBehavior 在触发条件成立时临时替换精灵的格集合
//
// 触发后换上 Cells 并从第 0 格开始；经过 Duration 毫秒后恢复原格集合和索引，
// 然后调用 Callback。爆炸动画就是用它实现的：触发条件为 Exploding，回调清除标志。
type CellSwitchBehavior struct {
	Cells    []sprites.Cell
	Trigger  func(s *sprites.Sprite, f sprites.Frame) bool
	Callback func(s *sprites.Sprite)
	Duration float64
}

// NewCellSwitchBehavior 创建切换行为
func NewCellSwitchBehavior(cells []sprites.Cell, trigger func(*sprites.Sprite, sprites.Frame) bool,
	callback func(*sprites.Sprite), duration float64) *CellSwitchBehavior {
	if duration <= 0 {
		duration = 1000
	}
	return &CellSwitchBehavior{
		Cells:    cells,
		Trigger:  trigger,
		Callback: callback,
		Duration: duration,
	}
}

// ExplodingTrigger 以 Exploding 标志为触发条件
func ExplodingTrigger(s *sprites.Sprite, _ sprites.Frame) bool {
	return s.Exploding
}

// StopExploding 清除 Exploding 标志
func StopExploding(s *sprites.Sprite) {
	s.Exploding = false
}

func (b *CellSwitchBehavior) Execute(s *sprites.Sprite, f sprites.Frame) {
	if b.Trigger == nil {
		sprites.Notice(s, "CellSwitchBehavior", "no trigger configured")
		return
	}
	if !b.Trigger(s, f) {
		return
	}

	artist := s.SheetArtist()
	if artist == nil {
		sprites.Notice(s, "CellSwitchBehavior", "sprite has no spritesheet artist")
		return
	}

	st := s.CellSwitch
	if st == nil || !st.Active || st.Owner != b {
		b.switchCells(s, artist, f.Now)
		return
	}

	if f.Now-st.StartTime > b.Duration {
		b.revert(s, artist)
	}
}

func (b *CellSwitchBehavior) switchCells(s *sprites.Sprite, artist *sprites.SpriteSheetArtist, now float64) {
	s.CellSwitch = &sprites.CellSwitchState{
		Active:        true,
		Owner:         b,
		OriginalCells: artist.Cells(),
		OriginalIndex: artist.CellIndex(),
		StartTime:     now,
	}
	artist.SetCells(b.Cells)
	artist.SetCellIndex(0)
}

func (b *CellSwitchBehavior) revert(s *sprites.Sprite, artist *sprites.SpriteSheetArtist) {
	st := s.CellSwitch
	artist.SetCells(st.OriginalCells)
	artist.SetCellIndex(st.OriginalIndex)
	st.Active = false

	if b.Callback != nil {
		b.Callback(s)
	}
}

// CancelCellSwitch 立即结束精灵上进行中的格切换，恢复原格集合和索引，不调用回调
func CancelCellSwitch(s *sprites.Sprite) {
	st := s.CellSwitch
	s.CellSwitch = nil
	if st == nil || !st.Active {
		return
	}
	if artist := s.SheetArtist(); artist != nil {
		artist.SetCells(st.OriginalCells)
		artist.SetCellIndex(st.OriginalIndex)
	}
}
