package timing

// DefaultAnimationDuration 未指定时长时的默认值（毫秒）
const DefaultAnimationDuration = 1000.0

// AnimationTimer 带时长和缓动函数的计时器
//
// 包装一个 Stopwatch，把原始已用时间换算为“缓动后的已用时间”：
// 调用方仍然以时间为单位计算位移，但感知进度的速率跟随缓动曲线。
//
// 每个计时器只属于创建它的精灵或游戏结构，不共享。
type AnimationTimer struct {
	duration  float64
	easing    EasingFunction
	stopwatch Stopwatch
}

// NewAnimationTimer 创建动画计时器
//
// 参数:
//   - duration: 时长（毫秒），<= 0 时使用 DefaultAnimationDuration
//   - easing: 缓动函数，可以为 nil（不做缓动）
func NewAnimationTimer(duration float64, easing EasingFunction) *AnimationTimer {
	if duration <= 0 {
		duration = DefaultAnimationDuration
	}
	return &AnimationTimer{
		duration: duration,
		easing:   easing,
	}
}

// Duration 返回计时器时长
func (t *AnimationTimer) Duration() float64 {
	return t.duration
}

func (t *AnimationTimer) Start(now float64)   { t.stopwatch.Start(now) }
func (t *AnimationTimer) Stop(now float64)    { t.stopwatch.Stop(now) }
func (t *AnimationTimer) Pause(now float64)   { t.stopwatch.Pause(now) }
func (t *AnimationTimer) Unpause(now float64) { t.stopwatch.Unpause(now) }
func (t *AnimationTimer) Reset(now float64)   { t.stopwatch.Reset(now) }
func (t *AnimationTimer) IsPaused() bool      { return t.stopwatch.IsPaused() }
func (t *AnimationTimer) IsRunning() bool     { return t.stopwatch.IsRunning() }

// GetElapsedTime 返回缓动后的已用时间
//
// 设 raw 为原始已用时间，p = raw / duration：
//   - 没有缓动函数、p == 0 或 p > 1（缓动在完成后无定义）时返回 raw
//   - 否则返回 raw * f(p) / p
func (t *AnimationTimer) GetElapsedTime(now float64) float64 {
	elapsed := t.stopwatch.GetElapsedTime(now)
	percentComplete := elapsed / t.duration

	if t.easing == nil || percentComplete == 0 || percentComplete > 1 {
		return elapsed
	}

	return elapsed * (t.easing(percentComplete) / percentComplete)
}

// IsExpired 原始已用时间是否超过时长
func (t *AnimationTimer) IsExpired(now float64) bool {
	return t.stopwatch.GetElapsedTime(now) > t.duration
}
