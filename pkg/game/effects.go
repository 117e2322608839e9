package game

import (
	"github.com/charmbracelet/log"

	"github.com/decker502/snailbait/pkg/behaviors"
	"github.com/decker502/snailbait/pkg/sprites"
	"github.com/decker502/snailbait/pkg/timing"
)

// 调度器任务键
const (
	keyShake          = "shake"
	keyLifeTransition = "life"
	keyCountdown      = "countdown"
	keyInitialToast   = "toast:initial"
)

// Explode 让精灵开始爆炸
// 已经在爆炸时为空操作；奔跑速率为 0 时先设为默认速率，让爆炸动画能播放
func (g *Game) Explode(s *sprites.Sprite) {
	if s.Exploding {
		return
	}
	if s.RunAnimationRate == 0 {
		s.RunAnimationRate = g.cfg.Runner.RunAnimationRate
	}
	s.Exploding = true
	log.Debug("[Game] explode", "kind", s.Kind, "left", s.Left)
}

// Shake 让背景左右抖动
//
// 背景速度先设为 -v，随后每 ShakeInterval 毫秒取反一次，共 ShakeToggles 次，
// 最后恢复为抖动前的速度。抖动进行中再次触发会重新开始，但恢复的仍是最初的速度。
func (g *Game) Shake() {
	fx := g.cfg.Effects
	v := g.cfg.Background.Velocity * fx.ShakeVelocityFactor

	if !g.scheduler.HasPending(keyShake) {
		g.shakeOrigin = g.bgVelocity
	}
	origin := g.shakeOrigin

	g.bgVelocity = -v

	steps := make([]timing.Step, 0, fx.ShakeToggles+1)
	sign := 1.0
	for i := 0; i < fx.ShakeToggles; i++ {
		velocity := sign * v
		steps = append(steps, timing.Step{Delay: fx.ShakeInterval, Fn: func() {
			g.bgVelocity = velocity
		}})
		sign = -sign
	}
	steps = append(steps, timing.Step{Delay: fx.ShakeInterval, Fn: func() {
		g.bgVelocity = origin
	}})
	g.scheduler.Sequence(keyShake, steps)
}

// SetTimeRate 设置游戏时间速率（1 为正常速度）
func (g *Game) SetTimeRate(rate float64) {
	g.timeRate = rate
	g.timeSystem.SetTransducer(timing.RateTransducer(rate), 0)
	log.Debug("[Game] time rate", "rate", rate)
}

// LoseLife 失去一条命
//
// 生命数减一后进入过渡：画布变暗、停止响应操作；SlowMotionDelay 后进入慢动作并隐藏跑者；
// Duration 时重置关卡；再过 TimeResetDelay 恢复正常速度；再过 RunDelay 重新开始。
// 生命耗尽时过渡结束后进入游戏结束状态。过渡期间再次调用为空操作。
func (g *Game) LoseLife() {
	if g.lifeTransition || g.gameOver {
		return
	}
	g.lives--
	g.lifeTransition = true
	log.Info("[Game] life lost", "lives", g.lives, "score", g.score)

	lt := g.cfg.Effects.LifeTransition
	g.canvasOpacity = lt.CanvasOpacity
	g.playing = false

	resetDelay := lt.Duration - lt.SlowMotionDelay
	if resetDelay < 0 {
		resetDelay = 0
	}

	g.scheduler.Sequence(keyLifeTransition, []timing.Step{
		{Delay: lt.SlowMotionDelay, Fn: func() {
			g.SetTimeRate(lt.SlowMotionRate)
			g.runner.Visible = false
		}},
		{Delay: resetDelay, Fn: g.reset},
		{Delay: lt.TimeResetDelay, Fn: func() {
			g.SetTimeRate(1.0)
		}},
		{Delay: lt.RunDelay, Fn: g.endLifeTransition},
	})
}

func (g *Game) endLifeTransition() {
	g.lifeTransition = false
	g.runner.RunAnimationRate = 0

	if g.lives <= 0 {
		g.gameOver = true
		g.notify("Game Over", 0)
		log.Info("[Game] game over", "score", g.score)
		return
	}
	g.playing = true
}

// reset 把偏移、跑者和所有精灵恢复到初始状态
// 分数和剩余生命数保持不变
func (g *Game) reset() {
	g.resetOffsets()
	g.resetRunner()

	for _, s := range g.all {
		s.Visible = s.Kind != sprites.KindSnailBomb
		if s != g.runner {
			behaviors.CancelCellSwitch(s)
			s.Exploding = false
		}
	}
	g.canvasOpacity = 1.0
}

func (g *Game) resetOffsets() {
	g.bgVelocity = 0
	g.backgroundOffset = 0
	g.spriteOffset = 0
	for _, s := range g.all {
		if s != g.runner {
			s.HOffset = 0
		}
	}
}

func (g *Game) resetRunner() {
	r := g.runner
	now := g.timeSystem.CalculateGameTime()

	r.Left = g.cfg.Runner.Left
	r.HOffset = 0
	r.Visible = true
	r.Exploding = false
	r.CellSwitch = nil
	r.StopJumping(now)
	r.StopFalling(now)
	g.PutSpriteOnTrack(r, g.cfg.Runner.ResetTrack)

	if artist := r.SheetArtist(); artist != nil {
		artist.SetCells(g.runnerCellsRight)
		artist.SetCellIndex(0)
	}
}

// collect 收集金币或宝石并计分
func (g *Game) collect(s *sprites.Sprite) {
	g.score += s.Value
	log.Debug("[Game] collected", "kind", s.Kind, "value", s.Value, "score", g.score)
}
