package behavior

import (
	"github.com/decker502/skyraid/pkg/components"
	"github.com/decker502/skyraid/pkg/utils"
)

// DefaultFacingOffset 精灵朝向偏移（弧度）
// 敌机精灵默认朝 +X 绘制，所以不需要偏移
const DefaultFacingOffset = 0

// FaceTarget 每帧把 Actor 转向目标
type FaceTarget struct {
	actor   *components.Actor
	running bool

	Target Target
	Offset float64 // 弧度
}

// NewFaceTarget 创建转向行为
func NewFaceTarget(actor *components.Actor) *FaceTarget {
	f := &FaceTarget{actor: actor}
	f.Reset()
	return f
}

// Reset 恢复默认参数
func (f *FaceTarget) Reset() {
	f.Target = nil
	f.Offset = DefaultFacingOffset
}

// Start 实现 Behavior 接口，无必填参数
func (f *FaceTarget) Start() error {
	f.running = true
	return nil
}

// Update 双方都存活时转向，否则什么都不做
func (f *FaceTarget) Update() {
	if !f.running || !f.actor.IsAlive() || f.Target == nil || !f.Target.IsAlive() {
		return
	}
	tx, ty := f.Target.Pos()
	f.actor.Rotation = utils.AngleTo(f.actor.X, f.actor.Y, tx, ty) + f.Offset
}

// Stop 实现 Behavior 接口
func (f *FaceTarget) Stop() {
	f.running = false
}

// Phase 实现 Behavior 接口
func (f *FaceTarget) Phase() Phase {
	if f.running {
		return PhaseRunning
	}
	return PhaseIdle
}
