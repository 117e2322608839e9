package game

import (
	"image"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/decker502/snailbait/pkg/behaviors"
	"github.com/decker502/snailbait/pkg/config"
	"github.com/decker502/snailbait/pkg/render"
	"github.com/decker502/snailbait/pkg/sprites"
	"github.com/decker502/snailbait/pkg/timing"
)

// Options 创建游戏时的可选依赖
type Options struct {
	// Clock 真实时间源，为空时使用 WallClock
	Clock timing.Clock
	// Rand 弹跳参数的随机源，为空时以当前时间为种子
	Rand *rand.Rand
	// Spritesheet 精灵表图像，为空时按配置合成
	Spritesheet image.Image
	// Notifier 提示消息的额外接收者，为空时写日志
	Notifier Notifier
	// TimeRate 初始时间速率，0 表示正常速度
	TimeRate float64
	// ShowCollisionRectangles 是否绘制碰撞矩形
	ShowCollisionRectangles bool
}

// Game 游戏主体
//
// 持有所有精灵、时间系统和调度器。前端每帧调用 Animate 推进逻辑、
// 调用 Render 绘制画面，并把键盘和焦点事件转成 HandleAction / SetFocus。
// 所有方法都必须在同一个 goroutine 中调用。
type Game struct {
	cfg        *config.GameConfig
	clock      timing.Clock
	scheduler  *timing.Scheduler
	timeSystem *timing.TimeSystem
	notifier   Notifier
	rng        *rand.Rand

	spritesheet image.Image
	hitSurface  render.Surface // 更新阶段做命中测试用

	// 精灵
	runner    *sprites.Sprite
	platforms []*sprites.Sprite
	bats      []*sprites.Sprite
	bees      []*sprites.Sprite
	buttons   []*sprites.Sprite
	coins     []*sprites.Sprite
	rubies    []*sprites.Sprite
	sapphires []*sprites.Sprite
	snails    []*sprites.Sprite
	all       []*sprites.Sprite

	runnerCellsRight []sprites.Cell
	runnerCellsLeft  []sprites.Cell

	// 共享行为
	runnerExplode *behaviors.CellSwitchBehavior
	badGuyExplode *behaviors.CellSwitchBehavior

	// 速度和偏移
	timeRate         float64
	initialTimeRate  float64
	bgVelocity       float64
	platformVelocity float64
	backgroundOffset float64
	spriteOffset     float64
	shakeOrigin      float64

	// 帧时间
	lastAnimationFrameTime float64
	lastFPSUpdateTime      float64
	fps                    float64

	// 状态
	started             bool
	playing             bool
	paused              bool
	pauseStartTime      float64
	windowHasFocus      bool
	countdownInProgress bool
	lifeTransition      bool
	gameOver            bool
	canvasOpacity       float64

	lives int
	score int

	toastText  string
	toastUntil float64

	showCollisionRectangles bool
}

// New 根据配置创建游戏并构建关卡
func New(cfg *config.GameConfig, opts Options) *Game {
	clock := opts.Clock
	if clock == nil {
		clock = timing.NewWallClock()
	}
	rng := opts.Rand
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	notifier := opts.Notifier
	if notifier == nil {
		notifier = LogNotifier{}
	}
	sheet := opts.Spritesheet
	if sheet == nil {
		sheet = SynthesizeSpritesheet(cfg)
	}

	scheduler := timing.NewScheduler(clock.Now())

	g := &Game{
		cfg:                     cfg,
		clock:                   clock,
		scheduler:               scheduler,
		timeSystem:              timing.NewTimeSystem(clock, scheduler),
		notifier:                notifier,
		rng:                     rng,
		spritesheet:             sheet,
		hitSurface:              render.NewHeadless(),
		timeRate:                1.0,
		initialTimeRate:         opts.TimeRate,
		windowHasFocus:          true,
		canvasOpacity:           1.0,
		lives:                   cfg.Effects.Lives,
		showCollisionRectangles: opts.ShowCollisionRectangles,
	}

	g.createSprites()
	g.applyCollisionRectangleSetting()

	log.Debug("[Game] level built",
		"sprites", len(g.all), "platforms", len(g.platforms), "lives", g.lives)
	return g
}

// Start 启动时间系统并开始游戏
// 重复调用为空操作
func (g *Game) Start() {
	if g.started {
		return
	}
	g.started = true
	g.playing = true

	g.timeSystem.Start()
	if g.initialTimeRate > 0 && g.initialTimeRate != 1.0 {
		g.SetTimeRate(g.initialTimeRate)
	}
	g.lastAnimationFrameTime = g.timeSystem.CalculateGameTime()
	g.lastFPSUpdateTime = g.lastAnimationFrameTime

	toast := g.cfg.Effects.InitialToast
	if toast.Text != "" {
		g.scheduler.AfterKeyed(keyInitialToast, toast.Delay, func() {
			g.notify(toast.Text, toast.Duration)
		})
	}
	log.Info("[Game] started", "timeRate", g.timeRate)
}

// Config 返回游戏配置
func (g *Game) Config() *config.GameConfig { return g.cfg }

// Scheduler 返回延迟任务调度器
func (g *Game) Scheduler() *timing.Scheduler { return g.scheduler }

// TimeSystem 返回游戏时钟
func (g *Game) TimeSystem() *timing.TimeSystem { return g.timeSystem }

// Runner 返回跑者精灵
func (g *Game) Runner() *sprites.Sprite { return g.runner }

// AllSprites 返回所有精灵（跑者在最后）
func (g *Game) AllSprites() []*sprites.Sprite { return g.all }

// Platforms 返回所有平台
func (g *Game) Platforms() []*sprites.Sprite { return g.platforms }

// Score 返回当前分数
func (g *Game) Score() int { return g.score }

// Lives 返回剩余生命数
func (g *Game) Lives() int { return g.lives }

// FPS 返回最近一帧计算出的帧率
func (g *Game) FPS() float64 { return g.fps }

// Playing 是否处于可操作状态（失去生命的过渡期间为 false）
func (g *Game) Playing() bool { return g.playing }

// Paused 是否暂停
func (g *Game) Paused() bool { return g.paused }

// GameOver 生命耗尽后为 true
func (g *Game) GameOver() bool { return g.gameOver }

// TimeRate 返回当前时间速率
func (g *Game) TimeRate() float64 { return g.timeRate }

// BackgroundVelocity 返回背景速度（像素/秒，负数向左）
func (g *Game) BackgroundVelocity() float64 { return g.bgVelocity }

// BackgroundOffset 返回背景水平偏移
func (g *Game) BackgroundOffset() float64 { return g.backgroundOffset }

// SpriteOffset 返回精灵水平偏移
func (g *Game) SpriteOffset() float64 { return g.spriteOffset }

// LastAnimationFrameTime 返回上一帧的游戏时间
func (g *Game) LastAnimationFrameTime() float64 { return g.lastAnimationFrameTime }

// CanvasOpacity 返回画布透明度（失去生命时变暗）
func (g *Game) CanvasOpacity() float64 { return g.canvasOpacity }

// Spritesheet 返回精灵表图像
func (g *Game) Spritesheet() image.Image { return g.spritesheet }
