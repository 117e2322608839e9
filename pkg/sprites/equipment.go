package sprites

import "github.com/decker502/snailbait/pkg/timing"

// JumpPhase 跳跃阶段
type JumpPhase int

const (
	JumpIdle JumpPhase = iota
	JumpAscending
	JumpDescending
)

func (p JumpPhase) String() string {
	switch p {
	case JumpAscending:
		return "ascending"
	case JumpDescending:
		return "descending"
	}
	return "idle"
}

// JumpState 跳跃装备
//
// 上升和下降各占总时长的一半，跳跃期间恰好有一个计时器在运行，且与 Phase 一致。
type JumpState struct {
	Phase    JumpPhase
	Height   float64 // 跳跃高度（像素）
	Duration float64 // 总时长（毫秒）

	Ascend  *timing.AnimationTimer
	Descend *timing.AnimationTimer

	LaunchTop float64 // 起跳时的 Top
	Apex      float64 // 顶点时的 Top

	// LandingRunRate 落地后恢复的奔跑动画速率
	LandingRunRate float64
}

// FallState 下落装备
type FallState struct {
	Falling         bool
	Timer           *timing.AnimationTimer
	InitialVelocity float64 // 像素/秒
}

// CellSwitchState 临时切换图像格时保存的原始状态
type CellSwitchState struct {
	Active        bool
	Owner         any // 发起切换的行为
	OriginalCells []Cell
	OriginalIndex int
	StartTime     float64
}

// EquipForJumping 为精灵装备跳跃能力
// 上升使用缓出曲线，下降使用缓入曲线
func EquipForJumping(s *Sprite, height, duration, landingRunRate float64) {
	half := duration / 2
	s.Jump = &JumpState{
		Height:         height,
		Duration:       duration,
		Ascend:         timing.NewAnimationTimer(half, timing.MakeEaseOutEasingFunction(1.1)),
		Descend:        timing.NewAnimationTimer(half, timing.MakeEaseInEasingFunction(1.1)),
		LandingRunRate: landingRunRate,
	}
}

// EquipForFalling 为精灵装备下落能力
func EquipForFalling(s *Sprite) {
	s.Fall = &FallState{
		Timer: timing.NewAnimationTimer(timing.DefaultAnimationDuration, nil),
	}
}

// Jumping 是否正在跳跃
func (s *Sprite) Jumping() bool {
	return s.Jump != nil && s.Jump.Phase != JumpIdle
}

// Falling 是否正在下落
func (s *Sprite) Falling() bool {
	return s.Fall != nil && s.Fall.Falling
}

// StartJump 在 now 时刻起跳
// 未装备、正在跳跃或正在下落时拒绝，返回 false
func (s *Sprite) StartJump(now float64) bool {
	if s.Jump == nil {
		Notice(s, "Sprite", "jump requested but sprite is not equipped for jumping")
		return false
	}
	if s.Jumping() || s.Falling() {
		return false
	}

	j := s.Jump
	j.Phase = JumpAscending
	j.LaunchTop = s.Top
	s.RunAnimationRate = 0 // 跳跃期间定格
	j.Ascend.Start(now)
	return true
}

// StopJumping 结束跳跃并恢复奔跑动画
func (s *Sprite) StopJumping(now float64) {
	if s.Jump == nil {
		return
	}
	j := s.Jump
	j.Phase = JumpIdle
	j.Ascend.Stop(now)
	j.Descend.Stop(now)
	s.RunAnimationRate = j.LandingRunRate
}

// StartFall 以初速度 v0（像素/秒）开始下落
// 会先结束正在进行的跳跃；未装备或已在下落时返回 false
func (s *Sprite) StartFall(now, v0 float64) bool {
	if s.Fall == nil {
		Notice(s, "Sprite", "fall requested but sprite is not equipped for falling")
		return false
	}
	if s.Fall.Falling {
		return false
	}
	if s.Jumping() {
		s.StopJumping(now)
	}

	f := s.Fall
	f.Falling = true
	f.InitialVelocity = v0
	s.VelocityY = v0
	f.Timer.Start(now)
	return true
}

// StopFalling 结束下落
func (s *Sprite) StopFalling(now float64) {
	if s.Fall == nil {
		return
	}
	s.Fall.Falling = false
	s.VelocityY = 0
	s.Fall.Timer.Stop(now)
}
