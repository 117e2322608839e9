// Package behaviors 实现精灵的各种行为
//
// 每个行为实现 sprites.Behavior，部分行为同时实现 sprites.Pauser 以冻结自己持有的计时器。
// 行为可以被多个精灵共享：行为内部需要的可变状态（上次换帧时间、弹跳基线、计时器）
// 都按精灵分别保存，不会在精灵之间串用。
//
// 行为从不 panic：缺少装备或依赖时输出一次诊断信息并跳过。
package behaviors

import "github.com/decker502/snailbait/pkg/sprites"

// elapsedSinceLastFrame 本帧与上一帧之间的游戏时间（毫秒）
func elapsedSinceLastFrame(f sprites.Frame) float64 {
	return f.Now - f.LastFrameTime
}
