package config

// GameConfig 游戏配置
// 对应 data/snailbait.yaml，包含画布尺寸、轨道、物理参数、精灵类型、精灵表格和关卡布局
type GameConfig struct {
	Canvas     CanvasConfig     `yaml:"canvas"`
	Window     WindowConfig     `yaml:"window"`
	Terminal   TerminalConfig   `yaml:"terminal"`
	Background BackgroundConfig `yaml:"background"`
	Tracks     TracksConfig     `yaml:"tracks"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Platform   PlatformConfig   `yaml:"platform"`
	Runner     RunnerConfig     `yaml:"runner"`
	Effects    EffectsConfig    `yaml:"effects"`
	Detonation DetonationConfig `yaml:"detonation"`

	// Sprites 各类精灵的尺寸、碰撞边距和动画参数，键为精灵类型名
	Sprites map[string]SpriteTypeConfig `yaml:"sprites"`

	// Cells 精灵表格集合，键为表名（如 "bat"、"runnerRight"）
	Cells map[string][]CellConfig `yaml:"cells"`

	// Palette 合成精灵表时每个格集合使用的颜色，键为表名；"background" 和 "sky" 为背景色
	Palette map[string]string `yaml:"palette"`

	Level LevelConfig `yaml:"level"`
}

// CanvasConfig 画布尺寸（像素）
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// WindowConfig 桌面窗口配置
type WindowConfig struct {
	Title string  `yaml:"title"`
	Scale float64 `yaml:"scale"` // 窗口缩放倍数，默认 1
}

// TerminalConfig 终端前端配置
type TerminalConfig struct {
	Columns int     `yaml:"columns"`
	Rows    int     `yaml:"rows"`
	FPS     float64 `yaml:"fps"`
}

// BackgroundConfig 滚动背景
type BackgroundConfig struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	TopInSpritesheet float64 `yaml:"topInSpritesheet"` // 背景在精灵表中的 Y 坐标
	Velocity         float64 `yaml:"velocity"`         // 像素/秒
}

// TracksConfig 平台轨道
type TracksConfig struct {
	// Baselines 轨道 1..n 的平台顶部 Y 坐标
	Baselines []float64 `yaml:"baselines"`
	// Fallback 无效轨道使用的高度
	Fallback float64 `yaml:"fallback"`
}

// PhysicsConfig 物理参数
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"` // 米/秒²
	// PixelsPerMeter 为 0 时取画布宽度的 1/10
	PixelsPerMeter float64 `yaml:"pixelsPerMeter"`
}

// PlatformConfig 平台外观和运动
type PlatformConfig struct {
	Height                float64 `yaml:"height"`
	StrokeWidth           float64 `yaml:"strokeWidth"`
	StrokeColor           string  `yaml:"strokeColor"`
	VelocityMultiplier    float64 `yaml:"velocityMultiplier"` // 平台速度 = 背景速度 × 倍数
	PulseDuration         float64 `yaml:"pulseDuration"`
	PulseOpacityThreshold float64 `yaml:"pulseOpacityThreshold"`
}

// RunnerConfig 跑者
type RunnerConfig struct {
	Left              float64      `yaml:"left"`
	Track             int          `yaml:"track"`
	ResetTrack        int          `yaml:"resetTrack"` // 失去一条命后重新出现的轨道
	Width             float64      `yaml:"width"`
	Height            float64      `yaml:"height"`
	Margin            MarginConfig `yaml:"margin"`
	JumpHeight        float64      `yaml:"jumpHeight"`
	JumpDuration      float64      `yaml:"jumpDuration"`
	RunAnimationRate  float64      `yaml:"runAnimationRate"`
	ExplosionDuration float64      `yaml:"explosionDuration"`
	CellsRight        string       `yaml:"cellsRight"`
	CellsLeft         string       `yaml:"cellsLeft"`
}

// EffectsConfig 屏幕震动、失去生命、倒计时和提示
type EffectsConfig struct {
	Lives int `yaml:"lives"`

	ShakeInterval       float64 `yaml:"shakeInterval"`
	ShakeVelocityFactor float64 `yaml:"shakeVelocityFactor"`
	ShakeToggles        int     `yaml:"shakeToggles"`

	BadGuyExplosionDuration float64 `yaml:"badGuyExplosionDuration"`
	ExplosionCells          string  `yaml:"explosionCells"`

	LifeTransition LifeTransitionConfig `yaml:"lifeTransition"`
	Countdown      CountdownConfig      `yaml:"countdown"`
	InitialToast   ToastConfig          `yaml:"initialToast"`
}

// LifeTransitionConfig 失去一条命后的过渡序列
type LifeTransitionConfig struct {
	Duration        float64 `yaml:"duration"`        // 从撞击到重置
	SlowMotionDelay float64 `yaml:"slowMotionDelay"` // 从撞击到进入慢动作
	SlowMotionRate  float64 `yaml:"slowMotionRate"`
	TimeResetDelay  float64 `yaml:"timeResetDelay"` // 重置后恢复时间速率
	RunDelay        float64 `yaml:"runDelay"`       // 恢复时间速率后重新开始
	CanvasOpacity   float64 `yaml:"canvasOpacity"`
}

// CountdownConfig 重新获得焦点后的倒计时
type CountdownConfig struct {
	From          int     `yaml:"from"`
	DigitDuration float64 `yaml:"digitDuration"`
	ToastDuration float64 `yaml:"toastDuration"`
}

// ToastConfig 提示消息
type ToastConfig struct {
	Text     string  `yaml:"text"`
	Delay    float64 `yaml:"delay"`
	Duration float64 `yaml:"duration"`
}

// DetonationConfig 蓝色按钮引爆序列
type DetonationConfig struct {
	SecondExplosionDelay float64 `yaml:"secondExplosionDelay"`
	ReboundDelay         float64 `yaml:"reboundDelay"`
	SlowMotionRate       float64 `yaml:"slowMotionRate"`
	// Targets 被引爆的蜜蜂在关卡蜜蜂列表中的下标
	Targets []int `yaml:"targets"`
}

// MarginConfig 碰撞边距
type MarginConfig struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
}

// BounceConfig 弹跳参数
// 实际时长 = Duration × (1 + r)，实际高度 = Height × (1 + r)，r ∈ [0, 1) 为每个精灵的随机数
type BounceConfig struct {
	Duration float64 `yaml:"duration"`
	Height   float64 `yaml:"height"`
}

// VariantConfig 同一类精灵的外观变体
type VariantConfig struct {
	Cells         string  `yaml:"cells"`
	CycleDuration float64 `yaml:"cycleDuration"` // 0 表示不循环
	CycleInterval float64 `yaml:"cycleInterval"`
	Pace          bool    `yaml:"pace"`
	Detonate      bool    `yaml:"detonate"`
}

// SpriteTypeConfig 一类精灵
type SpriteTypeConfig struct {
	Width    float64         `yaml:"width"`
	Height   float64         `yaml:"height"`
	Margin   MarginConfig    `yaml:"margin"`
	Value    int             `yaml:"value"`
	Velocity float64         `yaml:"velocity"`
	Explodes bool            `yaml:"explodes"` // 是否装备坏蛋爆炸动画
	Bounce   *BounceConfig   `yaml:"bounce"`
	Variants []VariantConfig `yaml:"variants"` // 按下标取模选择；放置数据可以指定
}

// CellConfig 精灵表中的一格
type CellConfig struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlatformData 一个平台
type PlatformData struct {
	Left    float64 `yaml:"left"`
	Width   float64 `yaml:"width"`
	Track   int     `yaml:"track"`
	Fill    string  `yaml:"fill"`
	Opacity float64 `yaml:"opacity"`
	Pulsate bool    `yaml:"pulsate"`
}

// Placement 自由放置的精灵
type Placement struct {
	Left float64 `yaml:"left"`
	Top  float64 `yaml:"top"`
}

// ChildPlacement 放在平台上的精灵
type ChildPlacement struct {
	PlatformIndex int  `yaml:"platformIndex"`
	Variant       *int `yaml:"variant"` // 为空时按下标取模
}

// LevelConfig 关卡布局
type LevelConfig struct {
	Platforms []PlatformData   `yaml:"platforms"`
	Bats      []Placement      `yaml:"bats"`
	Bees      []Placement      `yaml:"bees"`
	Coins     []Placement      `yaml:"coins"`
	Rubies    []Placement      `yaml:"rubies"`
	Sapphires []Placement      `yaml:"sapphires"`
	Buttons   []ChildPlacement `yaml:"buttons"`
	Snails    []ChildPlacement `yaml:"snails"`
}

// 精灵类型名
const (
	SpriteBat       = "bat"
	SpriteBee       = "bee"
	SpriteButton    = "button"
	SpriteCoin      = "coin"
	SpriteRuby      = "ruby"
	SpriteSapphire  = "sapphire"
	SpriteSnail     = "snail"
	SpriteSnailBomb = "snailBomb"
)

// requiredSpriteTypes 关卡构建需要的所有精灵类型
var requiredSpriteTypes = []string{
	SpriteBat, SpriteBee, SpriteButton, SpriteCoin,
	SpriteRuby, SpriteSapphire, SpriteSnail, SpriteSnailBomb,
}

// PlatformTop 返回轨道的平台顶部 Y 坐标；无效轨道返回 Fallback
func (c *GameConfig) PlatformTop(track int) float64 {
	if track < 1 || track > len(c.Tracks.Baselines) {
		return c.Tracks.Fallback
	}
	return c.Tracks.Baselines[track-1]
}

// PixelsPerMeter 返回每米像素数
func (c *GameConfig) PixelsPerMeter() float64 {
	if c.Physics.PixelsPerMeter > 0 {
		return c.Physics.PixelsPerMeter
	}
	return c.Canvas.Width / 10
}

// SpriteType 返回精灵类型配置
func (c *GameConfig) SpriteType(name string) (SpriteTypeConfig, bool) {
	st, ok := c.Sprites[name]
	return st, ok
}

// Variant 返回第 i 个精灵使用的变体；override 不为空时优先使用
func (st SpriteTypeConfig) Variant(i int, override *int) VariantConfig {
	if len(st.Variants) == 0 {
		return VariantConfig{}
	}
	if override != nil && *override >= 0 && *override < len(st.Variants) {
		return st.Variants[*override]
	}
	return st.Variants[i%len(st.Variants)]
}
