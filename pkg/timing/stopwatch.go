package timing

// Stopwatch 秒表
//
// 和真实的秒表一样，可以启动、停止、暂停和恢复。
// 运行中调用 GetElapsedTime 返回实时的已用时间；
// 停止后返回 Stop 时刻缓存的已用时间（从未停止过则为 0）。
//
// 暂停期间已用时间冻结在暂停时刻，恢复后暂停时长累加进 totalPausedTime。
type Stopwatch struct {
	startTime float64
	running   bool
	elapsed   float64 // Stop 时缓存的已用时间

	paused          bool
	startPause      float64
	totalPausedTime float64
}

// Start 在 now 时刻启动秒表，清空缓存值和暂停累计
func (sw *Stopwatch) Start(now float64) {
	sw.startTime = now
	sw.elapsed = 0
	sw.running = true
	sw.totalPausedTime = 0
	sw.startPause = 0
}

// Stop 在 now 时刻停止秒表
// 如果处于暂停状态，先恢复（把尾部的暂停时长计入累计），再缓存已用时间
func (sw *Stopwatch) Stop(now float64) {
	if sw.paused {
		sw.Unpause(now)
	}

	sw.elapsed = now - sw.startTime - sw.totalPausedTime
	sw.running = false
}

// Pause 在 now 时刻暂停；已暂停时为空操作
func (sw *Stopwatch) Pause(now float64) {
	if sw.paused {
		return
	}

	sw.startPause = now
	sw.paused = true
}

// Unpause 在 now 时刻恢复；未暂停时为空操作
func (sw *Stopwatch) Unpause(now float64) {
	if !sw.paused {
		return
	}

	sw.totalPausedTime += now - sw.startPause
	sw.startPause = 0
	sw.paused = false
}

// IsPaused 返回是否处于暂停状态
func (sw *Stopwatch) IsPaused() bool {
	return sw.paused
}

// IsRunning 返回是否正在运行
func (sw *Stopwatch) IsRunning() bool {
	return sw.running
}

// GetElapsedTime 返回 now 时刻的已用时间
func (sw *Stopwatch) GetElapsedTime(now float64) float64 {
	if !sw.running {
		return sw.elapsed
	}

	// 暂停期间时间不前进
	if sw.paused {
		now = sw.startPause
	}
	return now - sw.startTime - sw.totalPausedTime
}

// Reset 把秒表复位到 now 时刻的停止状态
func (sw *Stopwatch) Reset(now float64) {
	sw.elapsed = 0
	sw.startTime = now
	sw.running = false
	sw.paused = false
	sw.startPause = 0
	sw.totalPausedTime = 0
}
