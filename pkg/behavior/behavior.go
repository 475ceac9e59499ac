// Package behavior 提供敌机状态使用的原子行为
//
// 每个行为绑定到一个 Actor，由所属状态在 Start/Update/Stop 中按注册顺序驱动。
// 行为对象随状态一起复用：每次激活前由状态写入参数，而不是重新创建。
package behavior

import (
	"errors"
	"fmt"
)

// Phase 行为的阶段
type Phase int

const (
	// PhaseIdle 未启动或已停止
	PhaseIdle Phase = iota
	// PhaseRunning 运行中
	PhaseRunning
	// PhaseFinished 已完成（仅对有终点的行为有意义）
	PhaseFinished
)

// String 返回阶段名称
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseFinished:
		return "finished"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Behavior 是可启动、逐帧推进、可取消的原子动作
type Behavior interface {
	// Start 按当前参数开始（或重新开始）动作，参数缺失时返回配置错误
	Start() error
	// Update 推进一帧
	Update()
	// Stop 立即取消进行中的效果，不快进到终点
	Stop()
	// Phase 返回当前阶段
	Phase() Phase
}

// Target 是行为瞄准的对象（通常是玩家）
type Target interface {
	Pos() (float64, float64)
	IsAlive() bool
}

// Effects 一次性视觉效果的接收方
type Effects interface {
	Explode(x, y, w, h float64)
}

// ErrConfiguration 是所有接线错误的根
// 这类错误说明敌机或编队的配置有缺陷，必须立即暴露
var ErrConfiguration = errors.New("configuration error")

var (
	// ErrMissingTarget 移动行为没有目标位置
	ErrMissingTarget = fmt.Errorf("%w: move target is not set", ErrConfiguration)
	// ErrMissingWeapon 射击行为没有武器
	ErrMissingWeapon = fmt.Errorf("%w: weapon is not set", ErrConfiguration)
	// ErrInvalidFireRate 射击行为的射速无效
	ErrInvalidFireRate = fmt.Errorf("%w: fire rate must be positive", ErrConfiguration)
	// ErrMissingEffects 一次性效果没有接收方
	ErrMissingEffects = fmt.Errorf("%w: effects emitter is not set", ErrConfiguration)
)
