package game

import (
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/decker502/snailbait/pkg/timing"
)

// Action 玩家操作（前端把按键翻译成操作）
type Action int

const (
	ActionTurnLeft Action = iota
	ActionTurnRight
	ActionJump
	ActionTogglePause
	ActionToggleCollisionRectangles
)

func (a Action) String() string {
	switch a {
	case ActionTurnLeft:
		return "turnLeft"
	case ActionTurnRight:
		return "turnRight"
	case ActionJump:
		return "jump"
	case ActionTogglePause:
		return "togglePause"
	case ActionToggleCollisionRectangles:
		return "toggleCollisionRectangles"
	}
	return "unknown"
}

// HandleAction 处理一次玩家操作
// 过渡期间（Playing 为 false）和暂停期间只响应暂停和碰撞矩形开关
func (g *Game) HandleAction(a Action) {
	switch a {
	case ActionTogglePause:
		if !g.gameOver {
			g.TogglePaused()
		}
		return
	case ActionToggleCollisionRectangles:
		g.showCollisionRectangles = !g.showCollisionRectangles
		g.applyCollisionRectangleSetting()
		return
	}

	if !g.playing || g.paused {
		return
	}

	switch a {
	case ActionTurnLeft:
		g.turnLeft()
	case ActionTurnRight:
		g.turnRight()
	case ActionJump:
		g.runner.StartJump(g.timeSystem.CalculateGameTime())
	default:
		log.Warn("[Game] unknown action", "action", int(a))
	}
}

func (g *Game) turnLeft() {
	g.bgVelocity = -g.cfg.Background.Velocity
	g.runner.RunAnimationRate = g.cfg.Runner.RunAnimationRate
	if artist := g.runner.SheetArtist(); artist != nil {
		artist.SetCells(g.runnerCellsLeft)
	}
}

func (g *Game) turnRight() {
	g.bgVelocity = g.cfg.Background.Velocity
	g.runner.RunAnimationRate = g.cfg.Runner.RunAnimationRate
	if artist := g.runner.SheetArtist(); artist != nil {
		artist.SetCells(g.runnerCellsRight)
	}
}

// TogglePaused 切换暂停状态
//
// 所有精灵的计时行为一起暂停/恢复；恢复时把上一帧时间后移暂停的时长，
// 避免恢复后的第一帧出现一次大跳跃。
func (g *Game) TogglePaused() {
	now := g.timeSystem.CalculateGameTime()
	g.paused = !g.paused

	for _, s := range g.all {
		if g.paused {
			s.Pause(now)
		} else {
			s.Unpause(now)
		}
	}

	if g.paused {
		g.pauseStartTime = now
	} else {
		g.lastAnimationFrameTime += now - g.pauseStartTime
	}
	log.Debug("[Game] paused", "paused", g.paused, "now", now)
}

// SetFocus 窗口获得或失去焦点
//
// 失去焦点时自动暂停并取消倒计时；重新获得焦点且处于暂停状态时倒计时 3、2、1 后恢复。
// 倒计时的每一步都会重新检查焦点，期间再次失去焦点则保持暂停。
func (g *Game) SetFocus(focused bool) {
	if focused == g.windowHasFocus {
		return
	}
	g.windowHasFocus = focused

	if !focused {
		g.countdownInProgress = false
		g.scheduler.Cancel(keyCountdown)
		if !g.paused {
			g.TogglePaused()
		}
		return
	}

	if g.paused {
		g.startCountdown()
	}
}

// HasFocus 窗口是否有焦点
func (g *Game) HasFocus() bool { return g.windowHasFocus }

// CountdownInProgress 是否正在恢复倒计时
func (g *Game) CountdownInProgress() bool { return g.countdownInProgress }

func (g *Game) startCountdown() {
	cd := g.cfg.Effects.Countdown
	g.countdownInProgress = true

	counting := func() bool {
		return g.windowHasFocus && g.countdownInProgress
	}

	steps := make([]timing.Step, 0, cd.From+1)
	for i := cd.From; i >= 1; i-- {
		delay := cd.DigitDuration
		if i == cd.From {
			delay = 0
		}
		text := strconv.Itoa(i)
		steps = append(steps, timing.Step{Delay: delay, Fn: func() {
			if counting() {
				g.notify(text, cd.ToastDuration)
			}
		}})
	}
	steps = append(steps, timing.Step{Delay: cd.DigitDuration, Fn: func() {
		if !counting() {
			return
		}
		g.countdownInProgress = false
		if g.paused {
			g.TogglePaused()
		}
	}})
	g.scheduler.Sequence(keyCountdown, steps)
}
