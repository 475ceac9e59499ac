package behavior

import (
	"github.com/decker502/skyraid/pkg/components"
	"github.com/decker502/skyraid/pkg/tween"
	"github.com/decker502/skyraid/pkg/utils"
)

// DefaultMoveDuration 移动行为的默认时长（毫秒）
const DefaultMoveDuration = 2000

// MoveTo 把 Actor 从启动时的位置补间到 Target
type MoveTo struct {
	actor  *components.Actor
	tweens *tween.Manager
	tw     tween.Tween

	Target   *components.Vec2
	Duration float64 // 毫秒
	Delay    float64 // 毫秒，开始移动前的等待
	Easing   utils.EasingFunc
}

// NewMoveTo 创建移动行为
func NewMoveTo(actor *components.Actor, tweens *tween.Manager) *MoveTo {
	m := &MoveTo{actor: actor, tweens: tweens}
	m.Reset()
	return m
}

// Reset 恢复默认参数
func (m *MoveTo) Reset() {
	m.Target = nil
	m.Duration = DefaultMoveDuration
	m.Delay = 0
	m.Easing = utils.EaseLinear
}

// Start 实现 Behavior 接口
func (m *MoveTo) Start() error {
	if m.Target == nil {
		return ErrMissingTarget
	}
	m.tw.Target = m.actor
	m.tw.ToX = m.Target.X
	m.tw.ToY = m.Target.Y
	m.tw.Duration = m.Duration
	m.tw.Delay = m.Delay
	m.tw.Easing = m.Easing
	m.tweens.Start(&m.tw)
	return nil
}

// Update 实现 Behavior 接口，补间由 tween.Manager 推进
func (m *MoveTo) Update() {}

// Stop 停在当前位置
func (m *MoveTo) Stop() {
	m.tw.Stop()
}

// IsFinished 补间完整播放到终点且不再运行
func (m *MoveTo) IsFinished() bool {
	return m.tw.IsFinished()
}

// Phase 实现 Behavior 接口
func (m *MoveTo) Phase() Phase {
	switch m.tw.Status() {
	case tween.StatusRunning:
		return PhaseRunning
	case tween.StatusCompleted:
		return PhaseFinished
	default:
		return PhaseIdle
	}
}
