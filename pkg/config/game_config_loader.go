package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decker502/snailbait/pkg/render"
)

// DefaultConfigPath 默认配置文件路径（相对于项目根目录）
const DefaultConfigPath = "data/snailbait.yaml"

// LoadGameConfig 从 YAML 文件加载游戏配置
//
// 参数：
//
//	path - 配置文件路径（相对或绝对路径）
//
// 返回：
//
//	*GameConfig - 已应用默认值并通过校验的配置
//	error - 读取、解析或校验失败
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file %s: %w", path, err)
	}

	cfg, err := ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid game config in %s: %w", path, err)
	}
	return cfg, nil
}

// ParseGameConfig 从 YAML 数据解析游戏配置（用于嵌入的配置文件）
func ParseGameConfig(data []byte) (*GameConfig, error) {
	var cfg GameConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults 为缺失的可选字段设置默认值
func (c *GameConfig) applyDefaults() {
	if c.Canvas.Width == 0 {
		c.Canvas.Width = 800
	}
	if c.Canvas.Height == 0 {
		c.Canvas.Height = 400
	}
	if c.Window.Title == "" {
		c.Window.Title = "Snail Bait"
	}
	if c.Window.Scale == 0 {
		c.Window.Scale = 1
	}
	if c.Terminal.Columns == 0 {
		c.Terminal.Columns = 80
	}
	if c.Terminal.Rows == 0 {
		c.Terminal.Rows = 40
	}
	if c.Terminal.FPS == 0 {
		c.Terminal.FPS = 30
	}
	if c.Tracks.Fallback == 0 {
		c.Tracks.Fallback = 23
	}
	if c.Physics.Gravity == 0 {
		c.Physics.Gravity = 9.81
	}
	if c.Platform.StrokeColor == "" {
		c.Platform.StrokeColor = "black"
	}
	if c.Runner.Track == 0 {
		c.Runner.Track = 1
	}
	if c.Runner.ResetTrack == 0 {
		c.Runner.ResetTrack = c.Runner.Track
	}
	if c.Effects.Lives == 0 {
		c.Effects.Lives = 3
	}
	if c.Effects.Countdown.From == 0 {
		c.Effects.Countdown.From = 3
	}
	for i := range c.Level.Platforms {
		if c.Level.Platforms[i].Opacity == 0 {
			c.Level.Platforms[i].Opacity = 1
		}
	}
}

// Validate 校验配置的完整性和合法性
// 返回的错误合并了所有发现的问题
func (c *GameConfig) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		fail("canvas size must be positive, got %vx%v", c.Canvas.Width, c.Canvas.Height)
	}
	if len(c.Tracks.Baselines) == 0 {
		fail("at least one track baseline is required")
	}
	if c.Background.Width <= 0 || c.Background.Height <= 0 {
		fail("background size must be positive")
	}
	if c.Runner.Width <= 0 || c.Runner.Height <= 0 {
		fail("runner size must be positive")
	}
	if c.Runner.JumpDuration <= 0 {
		fail("runner jump duration must be positive")
	}
	c.checkMargin(fail, "runner.margin", c.Runner.Margin, c.Runner.Width, c.Runner.Height)
	if !c.validTrack(c.Runner.Track) || !c.validTrack(c.Runner.ResetTrack) {
		fail("runner tracks must be within 1..%d", len(c.Tracks.Baselines))
	}

	c.requireCells(fail, "runner.cellsRight", c.Runner.CellsRight)
	c.requireCells(fail, "runner.cellsLeft", c.Runner.CellsLeft)
	c.requireCells(fail, "effects.explosionCells", c.Effects.ExplosionCells)

	for _, name := range requiredSpriteTypes {
		st, ok := c.Sprites[name]
		if !ok {
			fail("sprite type %q is required", name)
			continue
		}
		if st.Width <= 0 || st.Height <= 0 {
			fail("sprite type %q: size must be positive", name)
		}
		c.checkMargin(fail, fmt.Sprintf("sprites.%s.margin", name), st.Margin, st.Width, st.Height)
		if len(st.Variants) == 0 {
			fail("sprite type %q: at least one variant is required", name)
		}
		for i, v := range st.Variants {
			c.requireCells(fail, fmt.Sprintf("sprites.%s.variants[%d]", name, i), v.Cells)
		}
	}

	if _, err := render.ParseColor(c.Platform.StrokeColor); err != nil {
		fail("platform.strokeColor: %w", err)
	}
	for name, value := range c.Palette {
		if _, err := render.ParseColor(value); err != nil {
			fail("palette.%s: %w", name, err)
		}
	}

	for i, p := range c.Level.Platforms {
		if !c.validTrack(p.Track) {
			fail("level.platforms[%d]: track %d out of range", i, p.Track)
		}
		if p.Width <= 0 {
			fail("level.platforms[%d]: width must be positive", i)
		}
		if _, err := render.ParseColor(p.Fill); err != nil {
			fail("level.platforms[%d]: %w", i, err)
		}
	}
	for i, b := range c.Level.Buttons {
		c.requirePlatform(fail, fmt.Sprintf("level.buttons[%d]", i), b.PlatformIndex)
	}
	for i, s := range c.Level.Snails {
		c.requirePlatform(fail, fmt.Sprintf("level.snails[%d]", i), s.PlatformIndex)
	}
	for _, idx := range c.Detonation.Targets {
		if idx < 0 || idx >= len(c.Level.Bees) {
			fail("detonation target %d is not a bee in the level", idx)
		}
	}

	return errors.Join(errs...)
}

func (c *GameConfig) validTrack(track int) bool {
	return track >= 1 && track <= len(c.Tracks.Baselines)
}

func (c *GameConfig) requireCells(fail func(string, ...any), field, name string) {
	if name == "" {
		fail("%s: cell table name is required", field)
		return
	}
	if len(c.Cells[name]) == 0 {
		fail("%s: unknown or empty cell table %q", field, name)
	}
}

// checkMargin 每个边距不能为负，也不能超过对应边长的一半
func (c *GameConfig) checkMargin(fail func(string, ...any), field string, m MarginConfig, width, height float64) {
	if m.Left < 0 || m.Top < 0 || m.Right < 0 || m.Bottom < 0 {
		fail("%s: margins must not be negative", field)
		return
	}
	if m.Left > width/2 || m.Right > width/2 || m.Top > height/2 || m.Bottom > height/2 {
		fail("%s: margins must be at most half the sprite size %vx%v", field, width, height)
	}
}

func (c *GameConfig) requirePlatform(fail func(string, ...any), field string, index int) {
	if index < 0 || index >= len(c.Level.Platforms) {
		fail("%s: platformIndex %d out of range", field, index)
	}
}
