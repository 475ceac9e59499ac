// Package enemy 实现池化敌机的有限状态机
package enemy

import (
	"fmt"
	"log"

	"github.com/decker502/skyraid/pkg/behavior"
	"github.com/decker502/skyraid/pkg/components"
	"github.com/decker502/skyraid/pkg/ecs"
	"github.com/decker502/skyraid/pkg/state"
)

// ErrUnknownState 切换到未注册的状态
var ErrUnknownState = fmt.Errorf("%w: unknown state", behavior.ErrConfiguration)

// Enemy 一个池化的敌机
//
// 状态表在构造时建立，每个标签一个状态对象，整个生命周期内复用。
// 任意时刻最多只有一个状态处于激活。
type Enemy struct {
	components.Actor

	handle  ecs.Handle
	release func(ecs.Handle)
	deps    Deps

	states  [state.TagCount]state.State
	current state.Tag
	target  behavior.Target
}

// New 创建一个不在池中的敌机（测试和工具使用）
func New(deps Deps) *Enemy {
	e := &Enemy{}
	e.init(deps)
	return e
}

func (e *Enemy) init(deps Deps) {
	e.deps = deps
	e.handle = ecs.InvalidHandle
	e.current = state.None
	e.Width = deps.Tuning.Width
	e.Height = deps.Tuning.Height

	e.states[state.Starting] = newStarting(e)
	e.states[state.Attacking] = newAttacking(e)
	e.states[state.Leaving] = newLeaving(e)
	e.states[state.Exploding] = newExploding(e)
	for _, s := range e.states {
		s.Reset()
	}
}

// Handle 返回当前激活的池句柄
func (e *Enemy) Handle() ecs.Handle {
	return e.handle
}

// State 返回标签对应的状态对象，用于在 Start 之前写入参数
func (e *Enemy) State(tag state.Tag) state.State {
	if !tag.Valid() {
		return nil
	}
	return e.states[tag]
}

// Starting 入场状态
func (e *Enemy) Starting() *Starting { return e.states[state.Starting].(*Starting) }

// Attacking 攻击状态
func (e *Enemy) Attacking() *Attacking { return e.states[state.Attacking].(*Attacking) }

// Leaving 离场状态
func (e *Enemy) Leaving() *Leaving { return e.states[state.Leaving].(*Leaving) }

// Exploding 爆炸状态
func (e *Enemy) Exploding() *Exploding { return e.states[state.Exploding].(*Exploding) }

// Current 返回当前状态标签，没有时为 state.None
func (e *Enemy) Current() state.Tag {
	return e.current
}

// SetTarget 设置瞄准目标
func (e *Enemy) SetTarget(target behavior.Target) {
	e.target = target
}

// Target 返回瞄准目标
func (e *Enemy) Target() behavior.Target {
	return e.target
}

// SetState 停止当前状态并启动 tag 对应的状态
//
// tag 未注册时返回 ErrUnknownState，当前状态保持不变。
// 新状态启动失败说明接线有误，敌机被回收，错误向上返回。
func (e *Enemy) SetState(tag state.Tag) error {
	if !tag.Valid() || e.states[tag] == nil {
		return fmt.Errorf("%w: %s", ErrUnknownState, tag)
	}
	if e.current != state.None {
		e.states[e.current].Stop()
	}
	prev := e.current
	e.current = state.None

	next := e.states[tag]
	if err := next.Start(); err != nil {
		next.Stop()
		e.Kill()
		return fmt.Errorf("enemy %d: enter %s: %w", e.handle.Index, tag, err)
	}
	e.current = tag
	if e.deps.Verbose {
		log.Printf("[Enemy] #%d %s -> %s at (%.1f, %.1f)", e.handle.Index, prev, tag, e.X, e.Y)
	}
	return nil
}

// Start 在 pos 处重新激活敌机并进入 Starting
func (e *Enemy) Start(pos components.Vec2) error {
	e.Width = e.deps.Tuning.Width
	e.Height = e.deps.Tuning.Height
	e.Health.MaxHealth = e.deps.Tuning.Health
	e.Reset(pos.X, pos.Y)
	return e.SetState(state.Starting)
}

// Update 推进当前状态，然后检查是否飞出场地
func (e *Enemy) Update() error {
	if !e.Exists {
		return nil
	}
	var err error
	if e.current != state.None {
		err = e.states[e.current].Update()
	}
	if e.Exists && e.outOfBounds() {
		if e.deps.Verbose {
			log.Printf("[Enemy] #%d out of bounds at (%.1f, %.1f)", e.handle.Index, e.X, e.Y)
		}
		e.Kill()
	}
	return err
}

// outOfBounds 超出场地一个与自身尺寸成比例的边距
// 上方不检查：入场点本来就在屏幕上方。下方的离场点正好落在边距线上，所以用 >=
func (e *Enemy) outOfBounds() bool {
	b := e.deps.Bounds
	return e.Y >= b.Bottom()+e.Height*2 ||
		e.X < b.X-e.Width*2 ||
		e.X > b.Right()+e.Width*2
}

// Kill 停止当前状态并把敌机还给池
// 对已经死亡的敌机重复调用不会再次触发停止
func (e *Enemy) Kill() {
	if e.Exists || e.current != state.None {
		if e.current != state.None {
			cur := e.states[e.current]
			e.current = state.None
			cur.Stop()
		}
		for _, s := range e.states {
			if s != nil {
				s.Reset()
			}
		}
		e.Actor.Kill()
		e.target = nil
	}
	if e.release != nil {
		e.release(e.handle)
	}
}

// Hit 受到伤害，被击毁时进入 Exploding，返回是否被击毁
func (e *Enemy) Hit(damage int) (bool, error) {
	if !e.IsAlive() {
		return false, nil
	}
	if !e.Health.Damage(damage) {
		return false, nil
	}
	return true, e.SetState(state.Exploding)
}
