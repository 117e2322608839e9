// Package timing 提供游戏的时间基础设施
//
// 包含秒表（Stopwatch）、动画计时器（AnimationTimer）、缓动函数、
// 可变速的游戏时钟（TimeSystem）以及由帧循环驱动的延迟任务调度器（Scheduler）。
//
// 所有时间值的单位都是毫秒（float64）。
// 除 Clock 实现外，本包内的计时器从不读取系统时间，
// 调用方必须显式传入 now，以保证行为可重放、可测试。
package timing

import "time"

// Clock 提供真实（墙上）时间，单位毫秒
type Clock interface {
	Now() float64
}

// WallClock 基于单调时钟的真实时间源
// Now() 返回自创建以来经过的毫秒数
type WallClock struct {
	origin time.Time
}

// NewWallClock 创建一个从当前时刻开始计时的 WallClock
func NewWallClock() *WallClock {
	return &WallClock{origin: time.Now()}
}

// Now 返回自创建以来经过的毫秒数
func (c *WallClock) Now() float64 {
	return float64(time.Since(c.origin)) / float64(time.Millisecond)
}

// ManualClock 手动推进的时钟
// 用于测试和无界面工具，时间只在调用 Set/Advance 时变化
type ManualClock struct {
	now float64
}

// NewManualClock 创建一个初始时间为 start 的手动时钟
func NewManualClock(start float64) *ManualClock {
	return &ManualClock{now: start}
}

// Now 返回当前时间
func (c *ManualClock) Now() float64 {
	return c.now
}

// Set 设置当前时间
func (c *ManualClock) Set(now float64) {
	c.now = now
}

// Advance 将时间推进 ms 毫秒
func (c *ManualClock) Advance(ms float64) {
	c.now += ms
}
