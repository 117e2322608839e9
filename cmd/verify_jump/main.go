// verify_jump 无界面地运行游戏并逐帧打印跑者的跳跃/下落轨迹
//
// 用法：
//
//	go run ./cmd/verify_jump -frames 120 -jump-at 10 -right
package main

import (
	"flag"
	"fmt"
	"image"
	"math/rand/v2"
	"os"

	"github.com/charmbracelet/log"

	"github.com/decker502/snailbait/pkg/config"
	"github.com/decker502/snailbait/pkg/game"
	"github.com/decker502/snailbait/pkg/timing"
)

var (
	configPath = flag.String("config", config.DefaultConfigPath, "游戏配置文件路径")
	frames     = flag.Int("frames", 90, "模拟的帧数")
	frameTime  = flag.Float64("dt", 1000.0/60.0, "每帧的真实时间（毫秒）")
	jumpAt     = flag.Int("jump-at", 5, "第几帧按下跳跃（<0 表示不跳）")
	runRight   = flag.Bool("right", false, "开始时向右跑")
	timeRate   = flag.Float64("time-rate", 1.0, "时间速率")
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
)

func main() {
	flag.Parse()

	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, err := config.LoadGameConfig(*configPath)
	if err != nil {
		log.Fatal("failed to load config", "err", err)
	}

	clock := timing.NewManualClock(0)
	g := game.New(cfg, game.Options{
		Clock:       clock,
		Rand:        rand.New(rand.NewPCG(1, 1)),
		Spritesheet: image.NewRGBA(image.Rect(0, 0, 1, 1)),
		TimeRate:    *timeRate,
	})
	g.Start()

	if *runRight {
		g.HandleAction(game.ActionTurnRight)
	}

	r := g.Runner()
	fmt.Printf("%6s %10s %10s %6s %10s %8s %6s\n", "frame", "gameTime", "top", "track", "phase", "falling", "lives")
	for i := 0; i < *frames; i++ {
		if i == *jumpAt {
			g.HandleAction(game.ActionJump)
		}
		clock.Advance(*frameTime)
		g.Animate()

		phase := "-"
		if r.Jump != nil {
			phase = r.Jump.Phase.String()
		}
		fmt.Printf("%6d %10.2f %10.2f %6d %10s %8v %6d\n",
			i, g.LastAnimationFrameTime(), r.Top, r.Track, phase, r.Falling(), g.Lives())
	}

	fmt.Printf("\nscore=%d lives=%d spriteOffset=%.2f\n", g.Score(), g.Lives(), g.SpriteOffset())
}
