package game

import (
	"image/color"

	"github.com/charmbracelet/log"

	"github.com/decker502/snailbait/pkg/render"
	"github.com/decker502/snailbait/pkg/sprites"
)

const fpsLogInterval = 1000.0

// Animate 推进一帧
//
// 先用真实时间推进调度器（执行到期的效果），再计算游戏时间；
// 未暂停时更新帧率、平台速度、偏移和视口内的可见精灵。
func (g *Game) Animate() {
	g.scheduler.Update(g.clock.Now())
	now := g.timeSystem.CalculateGameTime()

	if g.paused {
		return
	}

	g.fps = g.calculateFPS(now)
	g.setPlatformVelocity()
	g.setOffsets(now)
	g.updateSprites(now)

	g.lastAnimationFrameTime = now
}

// calculateFPS 按帧间隔计算帧率
// 游戏时间受时间速率缩放，乘回速率得到真实帧率
func (g *Game) calculateFPS(now float64) float64 {
	dt := now - g.lastAnimationFrameTime
	if dt <= 0 {
		return g.fps
	}
	fps := 1000 / dt * g.timeRate

	if now-g.lastFPSUpdateTime > fpsLogInterval {
		g.lastFPSUpdateTime = now
		log.Debug("[Game] frame", "fps", int(fps), "sprites", len(g.all))
	}
	return fps
}

func (g *Game) setPlatformVelocity() {
	g.platformVelocity = g.bgVelocity * g.cfg.Platform.VelocityMultiplier
}

// setOffsets 按速度积分背景和精灵偏移
// 背景偏移超出 [0, 背景宽度] 时回到 0；跑者的偏移始终为 0
func (g *Game) setOffsets(now float64) {
	dt := now - g.lastAnimationFrameTime

	g.backgroundOffset += g.bgVelocity * dt / 1000
	if g.backgroundOffset < 0 || g.backgroundOffset > g.cfg.Background.Width {
		g.backgroundOffset = 0
	}

	g.spriteOffset += g.platformVelocity * dt / 1000
	for _, s := range g.all {
		if s.Kind != sprites.KindRunner {
			s.HOffset = g.spriteOffset
		}
	}
}

func (g *Game) updateSprites(now float64) {
	f := sprites.Frame{
		Now:           now,
		FPS:           g.fps,
		LastFrameTime: g.lastAnimationFrameTime,
		Surface:       g.hitSurface,
	}
	for _, s := range g.all {
		if s.Visible && g.IsSpriteInView(s) {
			s.Update(f)
		}
	}
}

// Render 绘制当前帧：背景、视口内的可见精灵，以及失去生命时的暗化遮罩
func (g *Game) Render(surface render.Surface) {
	g.drawBackground(surface)
	g.drawSprites(surface)

	if g.canvasOpacity < 1 {
		surface.Save()
		surface.SetAlpha(1 - g.canvasOpacity)
		surface.FillRect(render.Rect{W: g.cfg.Canvas.Width, H: g.cfg.Canvas.Height}, color.Black)
		surface.Restore()
	}
}

// drawBackground 背景图在 x=0 和 x=背景宽度 处各画一次，整体左移背景偏移
func (g *Game) drawBackground(surface render.Surface) {
	bg := g.cfg.Background
	src := render.Rect{X: 0, Y: bg.TopInSpritesheet, W: bg.Width, H: bg.Height}

	surface.Save()
	surface.Translate(-g.backgroundOffset, 0)
	surface.DrawImage(g.spritesheet, src, render.Rect{X: 0, Y: 0, W: bg.Width, H: bg.Height})
	surface.DrawImage(g.spritesheet, src, render.Rect{X: bg.Width, Y: 0, W: bg.Width, H: bg.Height})
	surface.Restore()
}

func (g *Game) drawSprites(surface render.Surface) {
	for _, s := range g.all {
		if !s.Visible || !g.IsSpriteInView(s) {
			continue
		}
		surface.Save()
		surface.Translate(-s.HOffset, 0)
		s.Draw(surface)
		surface.Restore()
	}
}
