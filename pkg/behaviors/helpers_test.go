package behaviors

import (
	"github.com/decker502/snailbait/pkg/sprites"
)

const epsilon = 0.0001

var testTrackBaselines = map[int]float64{1: 323, 2: 223, 3: 123}

// testPlatformTop 与游戏一致的轨道高度；无效轨道返回 23
func testPlatformTop(track int) float64 {
	if top, ok := testTrackBaselines[track]; ok {
		return top
	}
	return 23
}

// testPutOnTrack 把精灵底边放在轨道上
func testPutOnTrack(s *sprites.Sprite, track int) {
	s.Track = track
	s.Top = testPlatformTop(track) - s.Height
}

func newTestPlatform(left, width float64, track int) *sprites.Sprite {
	p := sprites.New(sprites.KindPlatform, nil)
	p.Left = left
	p.Width = width
	p.Height = 8
	p.Track = track
	p.Top = testPlatformTop(track)
	return p
}

func newTestSprite(kind sprites.Kind, left, top, width, height float64) *sprites.Sprite {
	s := sprites.New(kind, nil)
	s.Left = left
	s.Top = top
	s.Width = width
	s.Height = height
	return s
}

func newTestCells(n int) []sprites.Cell {
	cells := make([]sprites.Cell, n)
	for i := range cells {
		cells[i] = sprites.Cell{Left: float64(i * 10), Top: 0, Width: 10, Height: 10}
	}
	return cells
}

func frameAt(now, last float64) sprites.Frame {
	return sprites.Frame{Now: now, LastFrameTime: last, FPS: 60}
}
