package game

import (
	"github.com/charmbracelet/log"
)

// Notifier 接收屏幕提示消息（提示文字、倒计时数字、游戏结束）
type Notifier interface {
	Notify(text string, duration float64)
}

// LogNotifier 把提示写入日志
type LogNotifier struct{}

func (LogNotifier) Notify(text string, duration float64) {
	log.Info("[Toast] "+text, "duration", duration)
}

// notify 显示提示 duration 毫秒（真实时间）；duration <= 0 时一直显示到下一条提示
func (g *Game) notify(text string, duration float64) {
	g.toastText = text
	if duration > 0 {
		g.toastUntil = g.clock.Now() + duration
	} else {
		g.toastUntil = -1
	}
	g.notifier.Notify(text, duration)
}

// Toast 返回当前应显示的提示；没有时 ok 为 false
func (g *Game) Toast() (text string, ok bool) {
	if g.toastText == "" {
		return "", false
	}
	if g.toastUntil >= 0 && g.clock.Now() >= g.toastUntil {
		return "", false
	}
	return g.toastText, true
}
