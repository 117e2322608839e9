package game

import (
	"github.com/decker502/snailbait/pkg/behaviors"
	"github.com/decker502/snailbait/pkg/config"
	"github.com/decker502/snailbait/pkg/render"
	"github.com/decker502/snailbait/pkg/sprites"
)

// createSprites 按关卡配置构建所有精灵
//
// 列表顺序：平台、蝙蝠、蜜蜂、按钮、金币、红宝石、蓝宝石、蜗牛、蜗牛炸弹、跑者。
// 平台最先绘制，跑者最后绘制。
func (g *Game) createSprites() {
	g.runnerCellsRight = g.cells(g.cfg.Runner.CellsRight)
	g.runnerCellsLeft = g.cells(g.cfg.Runner.CellsLeft)

	explosion := g.cells(g.cfg.Effects.ExplosionCells)
	g.runnerExplode = behaviors.NewCellSwitchBehavior(explosion,
		behaviors.ExplodingTrigger, behaviors.StopExploding, g.cfg.Runner.ExplosionDuration)
	g.badGuyExplode = behaviors.NewCellSwitchBehavior(explosion,
		behaviors.ExplodingTrigger, behaviors.StopExploding, g.cfg.Effects.BadGuyExplosionDuration)

	g.createPlatforms()
	g.bats = g.createPlaced(sprites.KindBat, config.SpriteBat, g.cfg.Level.Bats)
	g.bees = g.createPlaced(sprites.KindBee, config.SpriteBee, g.cfg.Level.Bees)
	g.createButtons()
	g.coins = g.createPlaced(sprites.KindCoin, config.SpriteCoin, g.cfg.Level.Coins)
	g.rubies = g.createPlaced(sprites.KindRuby, config.SpriteRuby, g.cfg.Level.Rubies)
	g.sapphires = g.createPlaced(sprites.KindSapphire, config.SpriteSapphire, g.cfg.Level.Sapphires)
	g.createSnails()
	g.createRunner()

	g.all = g.all[:0]
	g.all = append(g.all, g.platforms...)
	g.all = append(g.all, g.bats...)
	g.all = append(g.all, g.bees...)
	g.all = append(g.all, g.buttons...)
	g.all = append(g.all, g.coins...)
	g.all = append(g.all, g.rubies...)
	g.all = append(g.all, g.sapphires...)
	g.all = append(g.all, g.snails...)
	for _, snail := range g.snails {
		g.all = append(g.all, snail.Bomb)
	}
	g.all = append(g.all, g.runner)
}

// cells 把配置中的格表转换为精灵格
func (g *Game) cells(name string) []sprites.Cell {
	src := g.cfg.Cells[name]
	out := make([]sprites.Cell, len(src))
	for i, c := range src {
		out[i] = sprites.Cell{Left: c.Left, Top: c.Top, Width: c.Width, Height: c.Height}
	}
	return out
}

func (g *Game) createPlatforms() {
	artist := &sprites.PlatformArtist{
		PlatformTop: g.CalculatePlatformTop,
		StrokeWidth: g.cfg.Platform.StrokeWidth,
		StrokeColor: render.MustParseColor(g.cfg.Platform.StrokeColor),
	}
	pulse := behaviors.NewPulseBehavior(g.cfg.Platform.PulseDuration, g.cfg.Platform.PulseOpacityThreshold)

	g.platforms = make([]*sprites.Sprite, 0, len(g.cfg.Level.Platforms))
	for _, pd := range g.cfg.Level.Platforms {
		p := sprites.New(sprites.KindPlatform, artist)
		p.Left = pd.Left
		p.Width = pd.Width
		p.Height = g.cfg.Platform.Height
		p.Track = pd.Track
		p.Top = g.CalculatePlatformTop(pd.Track)
		p.FillColor = render.MustParseColor(pd.Fill)
		p.Opacity = pd.Opacity
		p.Pulsate = pd.Pulsate
		if pd.Pulsate {
			p.Behaviors = append(p.Behaviors, pulse)
		}
		g.platforms = append(g.platforms, p)
	}
}

// newSprite 按精灵类型和变体创建精灵：尺寸、碰撞边距、分值、速度、
// 格循环和爆炸动画
func (g *Game) newSprite(kind sprites.Kind, st config.SpriteTypeConfig, v config.VariantConfig) *sprites.Sprite {
	artist := sprites.NewSpriteSheetArtist(g.spritesheet, g.cells(v.Cells))
	s := sprites.New(kind, artist)
	s.Width = st.Width
	s.Height = st.Height
	s.Value = st.Value
	s.VelocityX = st.Velocity
	s.SetCollisionMargin(sprites.Margin{
		Left:   st.Margin.Left,
		Top:    st.Margin.Top,
		Right:  st.Margin.Right,
		Bottom: st.Margin.Bottom,
	})

	if v.CycleDuration > 0 {
		s.Behaviors = append(s.Behaviors, behaviors.NewCycleBehavior(v.CycleDuration, v.CycleInterval))
	}
	if st.Bounce != nil {
		s.Behaviors = append(s.Behaviors, g.newBounce(*st.Bounce))
	}
	if st.Explodes {
		s.Behaviors = append(s.Behaviors, g.badGuyExplode)
	}
	return s
}

// newBounce 每个精灵的弹跳时长和高度在基准值上随机放大 0~100%
func (g *Game) newBounce(b config.BounceConfig) *behaviors.BounceBehavior {
	duration := b.Duration * (1 + g.rng.Float64())
	height := b.Height * (1 + g.rng.Float64())
	return behaviors.NewBounceBehavior(duration, height)
}

// createPlaced 创建自由放置的精灵（蝙蝠、蜜蜂、金币、宝石）
func (g *Game) createPlaced(kind sprites.Kind, typeName string, placements []config.Placement) []*sprites.Sprite {
	st, _ := g.cfg.SpriteType(typeName)
	out := make([]*sprites.Sprite, 0, len(placements))
	for i, pl := range placements {
		s := g.newSprite(kind, st, st.Variant(i, nil))
		s.Left = pl.Left
		s.Top = pl.Top
		out = append(out, s)
	}
	return out
}

func (g *Game) createButtons() {
	st, _ := g.cfg.SpriteType(config.SpriteButton)
	det := g.cfg.Detonation

	var targets []*sprites.Sprite
	for _, idx := range det.Targets {
		targets = append(targets, g.bees[idx])
	}

	g.buttons = make([]*sprites.Sprite, 0, len(g.cfg.Level.Buttons))
	for i, pl := range g.cfg.Level.Buttons {
		v := st.Variant(i, pl.Variant)
		b := g.newSprite(sprites.KindButton, st, v)
		if v.Pace {
			b.Behaviors = append(b.Behaviors, behaviors.PaceBehavior{})
		}
		if v.Detonate {
			b.Behaviors = append(b.Behaviors, &behaviors.BlueButtonDetonateBehavior{
				Explode:              g.Explode,
				SetTimeRate:          g.SetTimeRate,
				Targets:              targets,
				Scheduler:            g.scheduler,
				SecondExplosionDelay: det.SecondExplosionDelay,
				ReboundDelay:         det.ReboundDelay,
				SlowMotionRate:       det.SlowMotionRate,
			})
		}
		g.PutSpriteOnPlatform(b, g.platforms[pl.PlatformIndex])
		g.buttons = append(g.buttons, b)
	}
}

func (g *Game) createSnails() {
	st, _ := g.cfg.SpriteType(config.SpriteSnail)
	bombType, _ := g.cfg.SpriteType(config.SpriteSnailBomb)

	g.snails = make([]*sprites.Sprite, 0, len(g.cfg.Level.Snails))
	for i, pl := range g.cfg.Level.Snails {
		v := st.Variant(i, pl.Variant)
		snail := g.newSprite(sprites.KindSnail, st, v)
		if v.Pace {
			snail.Behaviors = append(snail.Behaviors, behaviors.PaceBehavior{})
		}
		snail.Behaviors = append(snail.Behaviors, &behaviors.SnailShootBehavior{
			InView:        g.IsSpriteInView,
			MouthOpenCell: behaviors.DefaultMouthOpenCell,
		})
		g.PutSpriteOnPlatform(snail, g.platforms[pl.PlatformIndex])
		g.armSnail(snail, bombType)
		g.snails = append(g.snails, snail)
	}
}

// armSnail 为蜗牛装上炸弹；炸弹初始隐藏在蜗牛嘴边
func (g *Game) armSnail(snail *sprites.Sprite, bombType config.SpriteTypeConfig) {
	bomb := g.newSprite(sprites.KindSnailBomb, bombType, bombType.Variant(0, nil))
	bomb.Behaviors = append(bomb.Behaviors, &behaviors.SnailBombMoveBehavior{Velocity: bombType.Velocity})
	bomb.Top = snail.Top + bomb.Height/2
	bomb.Left = snail.Left + bomb.Width/2
	bomb.Visible = false

	bomb.Snail = snail
	snail.Bomb = bomb
}

func (g *Game) createRunner() {
	rc := g.cfg.Runner
	ppm := g.cfg.PixelsPerMeter()

	artist := sprites.NewSpriteSheetArtist(g.spritesheet, g.runnerCellsRight)
	r := sprites.New(sprites.KindRunner, artist,
		behaviors.NewRunBehavior(),
		behaviors.NewJumpBehavior(g.Platforms, g.cfg.Physics.Gravity, ppm),
		&behaviors.CollideBehavior{
			Sprites:     g.AllSprites,
			PlatformTop: g.CalculatePlatformTop,
			Explode:     g.Explode,
			Shake:       g.Shake,
			LoseLife:    g.LoseLife,
			Collect:     g.collect,
		},
		g.runnerExplode,
		&behaviors.FallBehavior{
			CanvasHeight:   g.cfg.Canvas.Height,
			Gravity:        g.cfg.Physics.Gravity,
			PixelsPerMeter: ppm,
			Platforms:      g.Platforms,
			PlatformTop:    g.CalculatePlatformTop,
			PutOnTrack:     g.PutSpriteOnTrack,
			LoseLife:       g.LoseLife,
		},
	)
	r.Width = rc.Width
	r.Height = rc.Height
	r.Left = rc.Left
	r.RunAnimationRate = 0
	r.SetCollisionMargin(sprites.Margin{
		Left:   rc.Margin.Left,
		Top:    rc.Margin.Top,
		Right:  rc.Margin.Right,
		Bottom: rc.Margin.Bottom,
	})
	g.PutSpriteOnTrack(r, rc.Track)

	sprites.EquipForJumping(r, rc.JumpHeight, rc.JumpDuration, rc.RunAnimationRate)
	sprites.EquipForFalling(r)

	g.runner = r
}

// applyCollisionRectangleSetting 把碰撞矩形开关同步到所有精灵
func (g *Game) applyCollisionRectangleSetting() {
	for _, s := range g.all {
		s.ShowCollisionRectangle = g.showCollisionRectangles
	}
}
