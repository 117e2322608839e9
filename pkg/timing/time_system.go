package timing

// Transducer 把真实已用时间映射为游戏感知的已用时间
// 恒等函数表示正常速度
type Transducer func(elapsed float64) float64

// IdentityTransducer 正常速度
func IdentityTransducer(elapsed float64) float64 {
	return elapsed
}

// RateTransducer 返回按 rate 倍速缩放的变换函数
func RateTransducer(rate float64) Transducer {
	return func(elapsed float64) float64 {
		return elapsed * rate
	}
}

// TimeSystem 可变速的游戏时钟
//
// 游戏时间 = 上次折算的游戏时间 + transducer(自上次折算以来的真实时间)。
// 每次 CalculateGameTime 都会把已用时间“折叠”进基线并重新计时，
// 因此中途更换 transducer 不会产生时间跳变。
//
// 临时变换（SetTransducer 带时长）通过 Scheduler 在真实时间到期后恢复，
// 不阻塞调用方。新的 SetTransducer 调用会取消尚未执行的恢复任务，
// 临时变换总是恢复到当时生效的永久变换。
type TimeSystem struct {
	clock     Clock
	scheduler *Scheduler

	transducer Transducer
	permanent  Transducer
	restore    *Task

	timer                    *AnimationTimer
	lastTimeTransducerWasSet float64
	gameTime                 float64
}

// NewTimeSystem 创建游戏时钟
// scheduler 为 nil 时创建一个内部调度器，调用方需通过 Scheduler() 驱动它
func NewTimeSystem(clock Clock, scheduler *Scheduler) *TimeSystem {
	if scheduler == nil {
		scheduler = NewScheduler(clock.Now())
	}
	return &TimeSystem{
		clock:      clock,
		scheduler:  scheduler,
		transducer: IdentityTransducer,
		permanent:  IdentityTransducer,
		timer:      NewAnimationTimer(DefaultAnimationDuration, nil),
	}
}

// Scheduler 返回恢复任务所用的调度器
func (ts *TimeSystem) Scheduler() *Scheduler {
	return ts.scheduler
}

// Start 在当前真实时间启动内部计时器
func (ts *TimeSystem) Start() {
	ts.timer.Start(ts.clock.Now())
}

// GameTime 返回最近一次计算出的游戏时间，不做折算
func (ts *TimeSystem) GameTime() float64 {
	return ts.gameTime
}

// Transducer 返回当前生效的变换函数
func (ts *TimeSystem) Transducer() Transducer {
	return ts.transducer
}

// RestorePending 是否有临时变换等待恢复
func (ts *TimeSystem) RestorePending() bool {
	return ts.restore.Pending()
}

// CalculateGameTime 计算并返回当前游戏时间
// 同一真实时刻重复调用结果不变
func (ts *TimeSystem) CalculateGameTime() float64 {
	now := ts.clock.Now()
	ts.gameTime = ts.lastTimeTransducerWasSet + ts.transducer(ts.timer.GetElapsedTime(now))
	ts.reset(now)
	return ts.gameTime
}

// SetTransducer 安装新的变换函数
//
// duration > 0 时为临时变换：duration 毫秒（真实时间）后恢复永久变换；
// 否则 fn 成为新的永久变换。
func (ts *TimeSystem) SetTransducer(fn Transducer, duration float64) {
	if fn == nil {
		fn = IdentityTransducer
	}

	ts.CalculateGameTime()
	ts.restore.Cancel()
	ts.restore = nil

	ts.transducer = fn
	if duration <= 0 {
		ts.permanent = fn
		return
	}

	ts.restore = ts.scheduler.At(ts.clock.Now()+duration, func() {
		ts.restore = nil
		ts.SetTransducer(ts.permanent, 0)
	})
}

func (ts *TimeSystem) reset(now float64) {
	ts.timer.Stop(now)
	ts.timer.Reset(now)
	ts.timer.Start(now)
	ts.lastTimeTransducerWasSet = ts.gameTime
}
