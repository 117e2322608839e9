// Package app 提供游戏应用的前端包装器
//
// 该包把 game.Game 接到具体的输入输出上：桌面端由 ebiten 驱动窗口、键盘和焦点，
// 终端端由 tcell 驱动。两者共用同一套游戏逻辑，只负责翻译按键和呈现画面。
package app

import (
	"fmt"
	"image/color"
	"io"
	"math/rand/v2"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/snailbait/pkg/config"
	"github.com/decker502/snailbait/pkg/game"
	"github.com/decker502/snailbait/pkg/render"
)

// Config 定义应用启动配置
type Config struct {
	// Game 已加载的游戏配置
	Game *config.GameConfig
	// Verbose 启用详细日志输出
	Verbose bool
	// Seed 随机种子，0 表示按时间取种
	Seed uint64
	// TimeRate 初始时间速率
	TimeRate float64
	// ShowCollisionRectangles 启动时显示碰撞矩形
	ShowCollisionRectangles bool
}

// keyBinding 键位到操作的映射
type keyBinding struct {
	key    ebiten.Key
	action game.Action
}

var keyBindings = []keyBinding{
	{ebiten.KeyD, game.ActionTurnLeft},
	{ebiten.KeyArrowLeft, game.ActionTurnLeft},
	{ebiten.KeyK, game.ActionTurnRight},
	{ebiten.KeyArrowRight, game.ActionTurnRight},
	{ebiten.KeyJ, game.ActionJump},
	{ebiten.KeyArrowUp, game.ActionJump},
	{ebiten.KeyP, game.ActionTogglePause},
	{ebiten.KeyC, game.ActionToggleCollisionRectangles},
}

// App 是桌面端的应用包装器，实现 ebiten.Game 接口
type App struct {
	game    *game.Game
	surface *render.EbitenSurface
	width   int
	height  int
	focused bool
	verbose bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// setupLogging 非详细模式只输出警告以上；out 为 nil 时丢弃所有日志
func setupLogging(verbose bool, out io.Writer) {
	if out == nil {
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(out)
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
}

// newGame 根据应用配置创建游戏
func newGame(cfg Config) *game.Game {
	opts := game.Options{
		TimeRate:                cfg.TimeRate,
		ShowCollisionRectangles: cfg.ShowCollisionRectangles,
	}
	if cfg.Seed != 0 {
		opts.Rand = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed>>1))
	}
	return game.New(cfg.Game, opts)
}

// NewApp 创建并初始化桌面应用
func NewApp(cfg Config) (*App, error) {
	if cfg.Game == nil {
		return nil, fmt.Errorf("app: game config is required")
	}
	setupLogging(cfg.Verbose, os.Stderr)

	g := newGame(cfg)
	g.Start()

	log.Info("[App] game created",
		"canvas", fmt.Sprintf("%vx%v", cfg.Game.Canvas.Width, cfg.Game.Canvas.Height),
		"sprites", len(g.AllSprites()))

	return &App{
		game:    g,
		surface: render.NewEbitenSurface(),
		width:   int(cfg.Game.Canvas.Width),
		height:  int(cfg.Game.Canvas.Height),
		focused: true,
		verbose: cfg.Verbose,
	}, nil
}

// Run 打开窗口并运行游戏，直到窗口关闭
func Run(cfg Config) error {
	a, err := NewApp(cfg)
	if err != nil {
		return err
	}

	scale := cfg.Game.Window.Scale
	ebiten.SetWindowSize(int(float64(a.width)*scale), int(float64(a.height)*scale))
	ebiten.SetWindowTitle(cfg.Game.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(a)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.width, a.height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Debug("[App] exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	if focused := ebiten.IsFocused(); focused != a.focused {
		a.focused = focused
		a.game.SetFocus(focused)
	}

	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			a.game.HandleAction(b.action)
		}
	}

	a.game.Animate()
	return nil
}

// Draw 绘制游戏画面和状态栏
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	a.surface.Begin(screen)
	a.game.Render(a.surface)

	ebitenutil.DebugPrintAt(screen, hudText(a.game), 8, 4)
	if a.IsVerbose() {
		ebitenutil.DebugPrintAt(screen, debugText(a.game), 8, 20)
	}

	if text, ok := a.game.Toast(); ok {
		x := (a.width - len(text)*debugGlyphWidth) / 2
		ebitenutil.DebugPrintAt(screen, text, max(x, 0), a.height/2)
	}
}

// debugGlyphWidth ebitenutil 调试字体的字宽
const debugGlyphWidth = 6

// hudText 状态栏文字
func hudText(g *game.Game) string {
	text := fmt.Sprintf("Score %d   Lives %d   %.0f fps", g.Score(), g.Lives(), g.FPS())
	switch {
	case g.GameOver():
		text += "   GAME OVER"
	case g.Paused():
		text += "   Paused"
	}
	return text
}

// debugText 详细模式下的调试信息
func debugText(g *game.Game) string {
	return fmt.Sprintf("t=%.0f rate=%.2f bg=%.1f", g.LastAnimationFrameTime(), g.TimeRate(), g.BackgroundOffset())
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸（画布尺寸）
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// Game 返回游戏实例
func (a *App) Game() *game.Game {
	return a.game
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
