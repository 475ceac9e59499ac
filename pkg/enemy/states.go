package enemy

import (
	"github.com/decker502/skyraid/pkg/behavior"
	"github.com/decker502/skyraid/pkg/components"
	"github.com/decker502/skyraid/pkg/state"
	"github.com/decker502/skyraid/pkg/utils"
	"github.com/decker502/skyraid/pkg/weapon"
)

// Starting 从入场点补间到到达点
// 补间完成并停留 Dwell 毫秒后切换到 NextState
type Starting struct {
	state.Base
	owner *Enemy
	move  *behavior.MoveTo

	Delay     float64
	TargetPos *components.Vec2
	Duration  float64
	Easing    utils.EasingFunc
	NextState state.Tag
	Dwell     float64

	arrived   bool
	arrivedAt float64
}

func newStarting(owner *Enemy) *Starting {
	s := &Starting{
		Base:  state.NewBase(state.Starting),
		owner: owner,
		move:  behavior.NewMoveTo(&owner.Actor, owner.deps.Tweens),
	}
	s.Add(s.move)
	return s
}

// Reset 实现 state.State 接口
func (s *Starting) Reset() {
	t := s.owner.deps.Tuning
	s.Delay = 0
	s.TargetPos = nil
	s.Duration = t.StartDuration
	s.Easing = t.StartEasing
	s.NextState = state.Attacking
	s.Dwell = t.Dwell
	s.arrived = false
	s.arrivedAt = 0
	s.move.Reset()
}

// Start 实现 state.State 接口
func (s *Starting) Start() error {
	s.move.Target = s.TargetPos
	s.move.Duration = s.Duration
	s.move.Delay = s.Delay
	s.move.Easing = s.Easing
	s.arrived = false
	return s.StartBehaviors()
}

// Update 实现 state.State 接口
func (s *Starting) Update() error {
	s.UpdateBehaviors()
	if !s.move.IsFinished() {
		return nil
	}
	now := s.owner.deps.Clock.Now()
	if !s.arrived {
		s.arrived = true
		s.arrivedAt = now
	}
	if now-s.arrivedAt < s.Dwell {
		return nil
	}
	return s.owner.SetState(s.NextState)
}

// Stop 实现 state.State 接口
func (s *Starting) Stop() {
	s.StopBehaviors()
	s.Reset()
}

// Attacking 转向目标并间隔开火
// 射击次数超过 MaxShots（或停留超过 Timeout）后切换到 NextState
type Attacking struct {
	state.Base
	owner *Enemy
	face  *behavior.FaceTarget
	fire  *behavior.FireAtTarget

	Weapon    weapon.Weapon
	MaxShots  int
	FireRate  float64
	Jitter    float64
	NextState state.Tag
	Timeout   float64

	startedAt float64
}

func newAttacking(owner *Enemy) *Attacking {
	s := &Attacking{
		Base:  state.NewBase(state.Attacking),
		owner: owner,
		face:  behavior.NewFaceTarget(&owner.Actor),
		fire:  behavior.NewFireAtTarget(&owner.Actor, owner.deps.Clock),
	}
	s.Add(s.face, s.fire)
	return s
}

// Reset 实现 state.State 接口
func (s *Attacking) Reset() {
	t := s.owner.deps.Tuning
	s.Weapon = nil
	s.MaxShots = t.MaxShots
	s.FireRate = t.FireRate
	s.Jitter = t.FireJitter
	s.NextState = state.Leaving
	s.Timeout = t.AttackTimeout
	s.startedAt = 0
	s.face.Reset()
	s.fire.Reset()
}

// Start 实现 state.State 接口
func (s *Attacking) Start() error {
	target := s.owner.target
	s.face.Target = target
	s.fire.Target = target
	s.fire.Weapon = s.Weapon
	s.fire.FireRate = s.FireRate
	s.fire.Jitter = s.Jitter
	s.fire.Rand = s.owner.deps.Rand
	if s.Weapon != nil {
		s.Weapon.Reset()
	}
	s.startedAt = s.owner.deps.Clock.Now()
	return s.StartBehaviors()
}

// Update 实现 state.State 接口
func (s *Attacking) Update() error {
	s.UpdateBehaviors()
	if s.fire.NumShots() > s.MaxShots {
		return s.owner.SetState(s.NextState)
	}
	if s.Timeout > 0 && s.owner.deps.Clock.Now()-s.startedAt >= s.Timeout {
		return s.owner.SetState(s.NextState)
	}
	return nil
}

// Stop 实现 state.State 接口
func (s *Attacking) Stop() {
	s.StopBehaviors()
	s.Reset()
}

// NumShots 本次攻击的开火次数
func (s *Attacking) NumShots() int {
	return s.fire.NumShots()
}

// Leaving 补间到屏幕外的离场点，之后由越界检查回收
type Leaving struct {
	state.Base
	owner *Enemy
	move  *behavior.MoveTo

	Delay     float64
	TargetPos *components.Vec2
	Duration  float64
	Easing    utils.EasingFunc

	exit components.Vec2
}

func newLeaving(owner *Enemy) *Leaving {
	s := &Leaving{
		Base:  state.NewBase(state.Leaving),
		owner: owner,
		move:  behavior.NewMoveTo(&owner.Actor, owner.deps.Tweens),
	}
	s.Add(s.move)
	return s
}

// Reset 实现 state.State 接口
func (s *Leaving) Reset() {
	t := s.owner.deps.Tuning
	s.Delay = 0
	s.TargetPos = nil
	s.Duration = t.LeaveDuration
	s.Easing = t.LeaveEasing
	s.move.Reset()
}

// Start 实现 state.State 接口
// 没有设置离场点时垂直向下飞出场地
func (s *Leaving) Start() error {
	target := s.TargetPos
	if target == nil {
		s.exit = components.Vec2{
			X: s.owner.X,
			Y: s.owner.deps.Bounds.Bottom() + s.owner.Height*2,
		}
		target = &s.exit
	}
	s.move.Target = target
	s.move.Duration = s.Duration
	s.move.Delay = s.Delay
	s.move.Easing = s.Easing
	return s.StartBehaviors()
}

// Update 实现 state.State 接口
func (s *Leaving) Update() error {
	s.UpdateBehaviors()
	return nil
}

// Stop 实现 state.State 接口
func (s *Leaving) Stop() {
	s.StopBehaviors()
	s.Reset()
}

// Exploding 被击毁后播放一次爆炸，停留 Dwell 毫秒后回收
// 进入时 Alive 置为 false，爆炸期间不再参与碰撞
type Exploding struct {
	state.Base
	owner *Enemy
	burst *behavior.Burst

	Dwell float64

	startedAt float64
}

func newExploding(owner *Enemy) *Exploding {
	s := &Exploding{
		Base:  state.NewBase(state.Exploding),
		owner: owner,
		burst: behavior.NewBurst(&owner.Actor, owner.deps.Effects),
	}
	s.Add(s.burst)
	return s
}

// Reset 实现 state.State 接口
func (s *Exploding) Reset() {
	s.Dwell = s.owner.deps.Tuning.ExplodeDwell
	s.startedAt = 0
}

// Start 实现 state.State 接口
func (s *Exploding) Start() error {
	s.owner.Alive = false
	s.startedAt = s.owner.deps.Clock.Now()
	return s.StartBehaviors()
}

// Update 实现 state.State 接口
func (s *Exploding) Update() error {
	s.UpdateBehaviors()
	if s.owner.deps.Clock.Now()-s.startedAt >= s.Dwell {
		s.owner.Kill()
	}
	return nil
}

// Stop 实现 state.State 接口
func (s *Exploding) Stop() {
	s.StopBehaviors()
	s.Reset()
}
