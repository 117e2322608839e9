package behaviors

import (
	"math"
	"testing"

	"github.com/decker502/snailbait/pkg/sprites"
	"github.com/decker502/snailbait/pkg/timing"
)

// newLinearJumper 创建使用线性计时器的跑者，便于验证对称性
func newLinearJumper(top float64) *sprites.Sprite {
	runner := newTestSprite(sprites.KindRunner, 50, top, 10, 10)
	runner.Track = 1
	sprites.EquipForJumping(runner, 120, 1000, 30)
	runner.Jump.Ascend = timing.NewAnimationTimer(500, nil)
	runner.Jump.Descend = timing.NewAnimationTimer(500, nil)
	sprites.EquipForFalling(runner)
	return runner
}

// TestJumpSymmetry 测试上升和下降的对称性
func TestJumpSymmetry(t *testing.T) {
	platforms := []*sprites.Sprite{newTestPlatform(0, 200, 1)}
	b := NewJumpBehavior(func() []*sprites.Sprite { return platforms }, 9.81, 80)

	runner := newLinearJumper(313)
	if !runner.StartJump(0) {
		t.Fatal("StartJump should succeed on an idle runner")
	}
	if runner.RunAnimationRate != 0 {
		t.Errorf("Run animation should freeze while jumping, got rate %v", runner.RunAnimationRate)
	}

	b.Execute(runner, frameAt(250, 0))
	if math.Abs(313-runner.Top-60) > epsilon {
		t.Errorf("Expected displacement 60 at 250ms, got %v", 313-runner.Top)
	}

	b.Execute(runner, frameAt(500, 250))
	if runner.Jump.Phase != sprites.JumpAscending {
		t.Errorf("Expected still ascending at exactly half duration, got %v", runner.Jump.Phase)
	}
	if math.Abs(runner.Top-193) > epsilon {
		t.Errorf("Expected apex top 193, got %v", runner.Top)
	}

	b.Execute(runner, frameAt(501, 500))
	if runner.Jump.Phase != sprites.JumpDescending {
		t.Fatalf("Expected descending after half duration, got %v", runner.Jump.Phase)
	}
	if math.Abs(runner.Jump.Apex-193) > epsilon {
		t.Errorf("Expected apex 193, got %v", runner.Jump.Apex)
	}

	// 下降 250ms 时与上升 250ms 时的高度相同
	b.Execute(runner, frameAt(751, 501))
	if math.Abs(313-runner.Top-60) > epsilon {
		t.Errorf("Expected displacement 60 at 250ms into descent, got %v", 313-runner.Top)
	}

	b.Execute(runner, frameAt(1002, 751))
	if runner.Jumping() {
		t.Error("Jump should be finished after full duration")
	}
	if runner.Falling() {
		t.Error("Runner should not fall when a platform is underneath")
	}
	if math.Abs(runner.Top-313) > epsilon {
		t.Errorf("Expected runner back at launch top 313, got %v", runner.Top)
	}
	if runner.RunAnimationRate != 30 {
		t.Errorf("Expected landing run rate 30, got %v", runner.RunAnimationRate)
	}
}

// TestJumpHandsOffToFall 测试下降结束时脚下没有平台则转入下落
func TestJumpHandsOffToFall(t *testing.T) {
	b := NewJumpBehavior(func() []*sprites.Sprite { return nil }, 9.81, 80)

	runner := newLinearJumper(313)
	runner.StartJump(0)
	b.Execute(runner, frameAt(501, 0))
	b.Execute(runner, frameAt(1002, 501))

	if runner.Jumping() {
		t.Error("Jump should be finished")
	}
	if !runner.Falling() {
		t.Fatal("Runner should start falling without a platform underneath")
	}

	// v0 = g · 下降秒数 · 像素每米
	want := 9.81 * 0.501 * 80
	if math.Abs(runner.Fall.InitialVelocity-want) > epsilon {
		t.Errorf("Expected initial fall velocity %v, got %v", want, runner.Fall.InitialVelocity)
	}
}

// TestJumpPauseFreezesTimer 测试暂停期间跳跃高度不变
func TestJumpPauseFreezesTimer(t *testing.T) {
	b := NewJumpBehavior(nil, 9.81, 80)
	runner := newLinearJumper(313)
	runner.StartJump(0)

	b.Execute(runner, frameAt(100, 0))
	b.Pause(runner, 100)
	top := runner.Top

	b.Execute(runner, frameAt(400, 100))
	if math.Abs(runner.Top-top) > epsilon {
		t.Errorf("Top changed while paused: %v -> %v", top, runner.Top)
	}

	b.Unpause(runner, 400)
	b.Execute(runner, frameAt(650, 400))
	// 实际运行 350ms
	if math.Abs(313-runner.Top-84) > epsilon {
		t.Errorf("Expected displacement 84 after unpause, got %v", 313-runner.Top)
	}
}

// TestJumpWithoutEquipment 测试未装备跳跃时不崩溃
func TestJumpWithoutEquipment(t *testing.T) {
	sprites.ResetNotices()
	b := NewJumpBehavior(nil, 9.81, 80)
	s := newTestSprite(sprites.KindRunner, 0, 100, 10, 10)

	b.Execute(s, frameAt(16, 0))
	b.Execute(s, frameAt(32, 16))

	if s.Top != 100 {
		t.Errorf("Unequipped sprite should not move, top=%v", s.Top)
	}
}
