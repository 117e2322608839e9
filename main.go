// Snail Bait - 横版跑酷游戏
//
// 用法：
//
//	snailbait            - 打开游戏窗口
//	snailbait term       - 在终端中运行
//
// 全局参数：
//
//	--config <path>      - 从磁盘加载配置（默认使用内嵌的 data/snailbait.yaml）
//	--verbose            - 输出调试日志
//	--collision-boxes    - 显示碰撞矩形
//	--time-rate <rate>   - 初始时间速率
//	--seed <value>       - 随机种子（0 表示按时间取种）
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/decker502/snailbait/pkg/app"
	"github.com/decker502/snailbait/pkg/config"
	"github.com/decker502/snailbait/pkg/embedded"
)

var (
	flagConfig         string
	flagVerbose        bool
	flagCollisionBoxes bool
	flagTimeRate       float64
	flagSeed           uint64
	flagLogFile        string
)

func main() {
	embedded.Init(dataFS)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snailbait",
	Short: "Snail Bait - a side-scrolling runner",
	Long: `Snail Bait is a side-scrolling runner: collect coins and jewels,
avoid bats, bees and snail bombs.

Keys:
  d / ←    run left
  k / →    run right
  j / ↑    jump
  p        pause
  c        toggle collision rectangles`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := appConfig()
		if err != nil {
			return err
		}
		return app.Run(cfg)
	},
}

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Run the game in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := appConfig()
		if err != nil {
			return err
		}

		var logOut io.Writer
		if flagLogFile != "" {
			f, err := os.Create(flagLogFile)
			if err != nil {
				return fmt.Errorf("failed to create log file: %w", err)
			}
			defer f.Close()
			logOut = f
		}
		return app.RunTerminal(cfg, logOut)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a game config YAML (default: embedded)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagCollisionBoxes, "collision-boxes", false, "Show collision rectangles")
	rootCmd.PersistentFlags().Float64Var(&flagTimeRate, "time-rate", 1.0, "Initial time rate (1 = normal speed)")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	termCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (terminal mode discards logs otherwise)")

	rootCmd.AddCommand(termCmd)
}

// appConfig 根据命令行参数组装应用配置
func appConfig() (app.Config, error) {
	if flagTimeRate <= 0 {
		return app.Config{}, fmt.Errorf("--time-rate must be positive, got %v", flagTimeRate)
	}

	gameCfg, err := loadGameConfig(flagConfig)
	if err != nil {
		return app.Config{}, err
	}

	return app.Config{
		Game:                    gameCfg,
		Verbose:                 flagVerbose,
		Seed:                    flagSeed,
		TimeRate:                flagTimeRate,
		ShowCollisionRectangles: flagCollisionBoxes,
	}, nil
}

// loadGameConfig path 为空时读取内嵌配置
func loadGameConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		return config.LoadGameConfig(path)
	}
	data, err := embedded.ReadFile(config.DefaultConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded game config: %w", err)
	}
	return config.ParseGameConfig(data)
}
