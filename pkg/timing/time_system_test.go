package timing

import (
	"math"
	"testing"
)

func newTestTimeSystem(start float64) (*TimeSystem, *ManualClock, *Scheduler) {
	clock := NewManualClock(start)
	sched := NewScheduler(start)
	ts := NewTimeSystem(clock, sched)
	ts.Start()
	return ts, clock, sched
}

// TestTimeSystemIdentity 恒等变换下游戏时间等于真实已用时间，且重复调用稳定
func TestTimeSystemIdentity(t *testing.T) {
	ts, clock, _ := newTestTimeSystem(1000)

	prev := -1.0
	for _, step := range []float64{0, 16, 16, 0, 0, 33, 100} {
		clock.Advance(step)
		for i := 0; i < 3; i++ {
			got := ts.CalculateGameTime()
			if got < prev {
				t.Fatalf("游戏时间倒退：%v < %v", got, prev)
			}
			if expected := clock.Now() - 1000; math.Abs(got-expected) > 1e-9 {
				t.Fatalf("游戏时间 = %v, 期望 %v", got, expected)
			}
			prev = got
		}
	}
	if ts.GameTime() != prev {
		t.Errorf("GameTime() = %v, 期望 %v", ts.GameTime(), prev)
	}
}

// TestTimeSystemPermanentRate 永久变换折算后继续累计，不产生跳变
func TestTimeSystemPermanentRate(t *testing.T) {
	ts, clock, _ := newTestTimeSystem(0)

	clock.Advance(100)
	ts.SetTransducer(RateTransducer(0.5), 0)
	if got := ts.GameTime(); got != 100 {
		t.Fatalf("安装变换时应先折算，游戏时间 = %v, 期望 100", got)
	}

	clock.Advance(200)
	if got := ts.CalculateGameTime(); math.Abs(got-200) > 1e-9 {
		t.Errorf("半速 200ms 后游戏时间 = %v, 期望 200", got)
	}
}

// TestTimeSystemTemporaryRate 临时变换到期后恢复
func TestTimeSystemTemporaryRate(t *testing.T) {
	ts, clock, sched := newTestTimeSystem(0)

	ts.SetTransducer(RateTransducer(0.1), 1000)
	if !ts.RestorePending() {
		t.Fatal("应存在待恢复任务")
	}

	clock.Advance(1000)
	if got := ts.CalculateGameTime(); math.Abs(got-100) > 1e-9 {
		t.Fatalf("慢动作 1000ms 后游戏时间 = %v, 期望 100", got)
	}

	sched.Update(clock.Now())
	if ts.RestorePending() {
		t.Error("恢复任务应已执行")
	}

	clock.Advance(500)
	if got := ts.CalculateGameTime(); math.Abs(got-600) > 1e-9 {
		t.Errorf("恢复正常速度后游戏时间 = %v, 期望 600", got)
	}
}

// TestTimeSystemSupersede 新的调用取消旧的恢复任务，且恢复到永久变换
func TestTimeSystemSupersede(t *testing.T) {
	t.Run("临时覆盖临时", func(t *testing.T) {
		ts, clock, sched := newTestTimeSystem(0)

		ts.SetTransducer(RateTransducer(0.1), 1000)
		clock.Advance(500)
		ts.SetTransducer(RateTransducer(0.2), 1000)

		// 第一个恢复任务的到期时间已过，但已被取消
		clock.Advance(600)
		sched.Update(clock.Now())
		if !ts.RestorePending() {
			t.Fatal("第二个临时变换不应被提前恢复")
		}

		clock.Advance(400)
		sched.Update(clock.Now())
		if ts.RestorePending() {
			t.Fatal("第二个恢复任务应已执行")
		}

		// 恢复到恒等，而不是第一个临时变换
		before := ts.CalculateGameTime()
		clock.Advance(100)
		if got := ts.CalculateGameTime() - before; math.Abs(got-100) > 1e-9 {
			t.Errorf("恢复后 100ms 推进了 %v, 期望 100", got)
		}
	})

	t.Run("永久覆盖临时", func(t *testing.T) {
		ts, clock, sched := newTestTimeSystem(0)

		ts.SetTransducer(RateTransducer(0.1), 1000)
		ts.SetTransducer(RateTransducer(2), 0)
		if ts.RestorePending() {
			t.Fatal("永久变换应取消恢复任务")
		}

		clock.Advance(2000)
		sched.Update(clock.Now())
		before := ts.CalculateGameTime()
		clock.Advance(100)
		if got := ts.CalculateGameTime() - before; math.Abs(got-200) > 1e-9 {
			t.Errorf("双倍速 100ms 推进了 %v, 期望 200", got)
		}
	})
}
