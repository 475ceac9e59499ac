package behavior

import (
	"math/rand"

	"github.com/decker502/skyraid/pkg/clock"
	"github.com/decker502/skyraid/pkg/components"
	"github.com/decker502/skyraid/pkg/weapon"
)

// FireAtTarget 按固定间隔朝当前朝向开火
//
// 启动时清零射击计数，第一次开火在 now + FireRate。
// Jitter > 0 时每次间隔额外加上 FireRate * Jitter * r，r ∈ [0, 1)，用于错开齐射。
type FireAtTarget struct {
	actor *components.Actor
	clock clock.Source

	Target   Target
	Weapon   weapon.Weapon
	FireRate float64 // 毫秒
	Jitter   float64 // [0, 1]
	Rand     *rand.Rand

	running    bool
	numShots   int
	nextFireAt float64
}

// NewFireAtTarget 创建射击行为
func NewFireAtTarget(actor *components.Actor, c clock.Source) *FireAtTarget {
	f := &FireAtTarget{actor: actor, clock: c}
	f.Reset()
	return f
}

// Reset 恢复默认参数
func (f *FireAtTarget) Reset() {
	f.Target = nil
	f.Weapon = nil
	f.FireRate = 0
	f.Jitter = 0
}

// Start 实现 Behavior 接口
func (f *FireAtTarget) Start() error {
	if f.Weapon == nil {
		return ErrMissingWeapon
	}
	if f.FireRate <= 0 {
		return ErrInvalidFireRate
	}
	f.numShots = 0
	f.nextFireAt = f.clock.Now() + f.interval()
	f.running = true
	return nil
}

// Update 目标存活且冷却结束时开火
func (f *FireAtTarget) Update() {
	if !f.running || f.Target == nil || !f.Target.IsAlive() || !f.actor.IsAlive() {
		return
	}
	now := f.clock.Now()
	if now < f.nextFireAt {
		return
	}
	f.Weapon.Fire(f.actor.X, f.actor.Y, f.actor.AngleDegrees())
	f.numShots++
	f.nextFireAt = now + f.interval()
}

// Stop 实现 Behavior 接口
func (f *FireAtTarget) Stop() {
	f.running = false
}

// Phase 实现 Behavior 接口
func (f *FireAtTarget) Phase() Phase {
	if f.running {
		return PhaseRunning
	}
	return PhaseIdle
}

// NumShots 本次激活以来的开火次数
func (f *FireAtTarget) NumShots() int {
	return f.numShots
}

func (f *FireAtTarget) interval() float64 {
	if f.Jitter <= 0 {
		return f.FireRate
	}
	r := rand.Float64()
	if f.Rand != nil {
		r = f.Rand.Float64()
	}
	return f.FireRate + f.FireRate*f.Jitter*r
}
