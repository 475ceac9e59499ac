package behavior

import "github.com/decker502/skyraid/pkg/components"

// Burst 启动时在 Actor 位置触发一次爆炸效果，之后不再有逐帧逻辑
type Burst struct {
	actor *components.Actor
	fired bool

	Effects Effects
}

// NewBurst 创建一次性爆炸行为
func NewBurst(actor *components.Actor, effects Effects) *Burst {
	return &Burst{actor: actor, Effects: effects}
}

// Start 实现 Behavior 接口
func (b *Burst) Start() error {
	if b.Effects == nil {
		return ErrMissingEffects
	}
	b.Effects.Explode(b.actor.X, b.actor.Y, b.actor.Width, b.actor.Height)
	b.fired = true
	return nil
}

// Update 实现 Behavior 接口
func (b *Burst) Update() {}

// Stop 实现 Behavior 接口
func (b *Burst) Stop() {
	b.fired = false
}

// Phase 实现 Behavior 接口
func (b *Burst) Phase() Phase {
	if b.fired {
		return PhaseFinished
	}
	return PhaseIdle
}
