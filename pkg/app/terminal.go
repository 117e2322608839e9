package app

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/decker502/snailbait/pkg/game"
	"github.com/decker502/snailbait/pkg/render"
)

var hudStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)

// terminalAction 把终端按键翻译成游戏操作
func terminalAction(ev *tcell.EventKey) (game.Action, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return game.ActionTurnLeft, true
	case tcell.KeyRight:
		return game.ActionTurnRight, true
	case tcell.KeyUp:
		return game.ActionJump, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'd', 'D':
			return game.ActionTurnLeft, true
		case 'k', 'K':
			return game.ActionTurnRight, true
		case 'j', 'J', ' ':
			return game.ActionJump, true
		case 'p', 'P':
			return game.ActionTogglePause, true
		case 'c', 'C':
			return game.ActionToggleCollisionRectangles, true
		}
	}
	return 0, false
}

// isQuitKey Esc、Ctrl+C 或 q 退出
func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// RunTerminal 在终端中运行游戏，直到按下退出键
//
// 日志写到 logOut（为 nil 时丢弃），避免破坏终端画面。
func RunTerminal(cfg Config, logOut io.Writer) error {
	if cfg.Game == nil {
		return fmt.Errorf("app: game config is required")
	}
	setupLogging(cfg.Verbose, logOut)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal screen: %w", err)
	}
	defer screen.Fini()

	return runTerminalLoop(screen, cfg, 0)
}

// runTerminalLoop 事件循环：输入事件由单独的 goroutine 读取，游戏逻辑和绘制都在本 goroutine 中
// maxFrames > 0 时运行这么多帧后返回
func runTerminalLoop(screen tcell.Screen, cfg Config, maxFrames int) error {
	screen.EnableFocus()
	screen.HideCursor()

	tc := cfg.Game.Terminal
	if cols, rows := screen.Size(); cols < tc.Columns || rows < tc.Rows {
		log.Warn("[Terminal] screen is smaller than recommended",
			"size", fmt.Sprintf("%dx%d", cols, rows),
			"recommended", fmt.Sprintf("%dx%d", tc.Columns, tc.Rows))
	}

	g := newGame(cfg)
	surface := render.NewTerminalSurface(screen, cfg.Game.Canvas.Width, cfg.Game.Canvas.Height)

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Duration(float64(time.Second) / tc.FPS))
	defer ticker.Stop()

	g.Start()
	log.Info("[Terminal] started", "fps", tc.FPS)

	frames := 0
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuitKey(ev) {
					log.Info("[Terminal] quit", "score", g.Score())
					return nil
				}
				if action, ok := terminalAction(ev); ok {
					g.HandleAction(action)
				}
			case *tcell.EventResize:
				screen.Sync()
				surface.Resize()
			case *tcell.EventFocus:
				g.SetFocus(ev.Focused)
			}

		case <-ticker.C:
			g.Animate()
			surface.Begin()
			g.Render(surface)
			surface.Present()
			drawTerminalHUD(screen, g)
			screen.Show()

			frames++
			if maxFrames > 0 && frames >= maxFrames {
				return nil
			}
		}
	}
}

// drawTerminalHUD 在第一行显示状态栏，在屏幕中央显示提示
func drawTerminalHUD(screen tcell.Screen, g *game.Game) {
	cols, rows := screen.Size()
	drawText(screen, 0, 0, hudText(g)+"   [d/k] move [j] jump [p] pause [q] quit")

	if text, ok := g.Toast(); ok {
		x := (cols - len(text)) / 2
		drawText(screen, max(x, 0), rows/2, text)
	}
}

func drawText(screen tcell.Screen, x, y int, text string) {
	cols, _ := screen.Size()
	for _, r := range text {
		if x >= cols {
			return
		}
		screen.SetContent(x, y, r, nil, hudStyle)
		x++
	}
}
