package game

import (
	"github.com/decker502/snailbait/pkg/sprites"
)

// CalculatePlatformTop 返回轨道的平台顶部 Y 坐标
// 轨道超出范围时返回配置中的 Fallback 高度
func (g *Game) CalculatePlatformTop(track int) float64 {
	return g.cfg.PlatformTop(track)
}

// PutSpriteOnTrack 把精灵放到轨道上（底边贴住平台顶部）
func (g *Game) PutSpriteOnTrack(s *sprites.Sprite, track int) {
	s.Track = track
	s.Top = g.CalculatePlatformTop(track) - s.Height
}

// PutSpriteOnPlatform 把精灵放在平台左端，并记录所在平台
func (g *Game) PutSpriteOnPlatform(s, platform *sprites.Sprite) {
	s.Left = platform.Left
	s.Top = platform.Top - s.Height
	s.Platform = platform
}

// IsSpriteInView 精灵是否与当前视口水平重叠
func (g *Game) IsSpriteInView(s *sprites.Sprite) bool {
	return s.Left+s.Width > s.HOffset &&
		s.Left < s.HOffset+g.cfg.Canvas.Width
}
