package tween

import (
	"github.com/decker502/skyraid/pkg/clock"
	"github.com/decker502/skyraid/pkg/utils"
)

// Target 是可被补间移动的对象
type Target interface {
	Pos() (float64, float64)
	SetPos(x, y float64)
}

// Status 补间的生命周期阶段
type Status int

const (
	// StatusIdle 尚未启动
	StatusIdle Status = iota
	// StatusRunning 已启动（包括延迟等待阶段）
	StatusRunning
	// StatusCompleted 已到达终点
	StatusCompleted
	// StatusStopped 被中途停止，停在当前位置
	StatusStopped
)

// Tween 把 Target 从启动时的位置插值到 (ToX, ToY)
//
// 配置字段在 Manager.Start 之前设置；起点在启动瞬间捕获。
// Tween 值可以反复启动，不需要重新分配。
type Tween struct {
	Target   Target
	ToX      float64
	ToY      float64
	Duration float64 // 毫秒
	Delay    float64 // 毫秒
	Easing   utils.EasingFunc

	fromX      float64
	fromY      float64
	startedAt  float64
	status     Status
	registered bool
}

// Status 返回当前阶段
func (tw *Tween) Status() Status {
	return tw.status
}

// IsRunning 是否正在运行（含延迟阶段）
func (tw *Tween) IsRunning() bool {
	return tw.status == StatusRunning
}

// IsFinished 是否已经完整播放到终点
// 被 Stop 中断的补间不算完成
func (tw *Tween) IsFinished() bool {
	return tw.status == StatusCompleted
}

// Stop 停在当前位置，不跳到终点
func (tw *Tween) Stop() {
	if tw.status == StatusRunning {
		tw.status = StatusStopped
	}
}

// From 返回启动时捕获的起点
func (tw *Tween) From() (float64, float64) {
	return tw.fromX, tw.fromY
}

// progress 计算 now 时刻的线性进度，延迟阶段返回负值
func (tw *Tween) progress(now float64) float64 {
	elapsed := now - tw.startedAt - tw.Delay
	if elapsed < 0 {
		return -1
	}
	if tw.Duration <= 0 {
		return 1
	}
	p := elapsed / tw.Duration
	if p > 1 {
		p = 1
	}
	return p
}

// step 推进一帧
func (tw *Tween) step(now float64) {
	if tw.status != StatusRunning {
		return
	}
	if tw.Target == nil {
		tw.status = StatusStopped
		return
	}
	p := tw.progress(now)
	if p < 0 {
		return
	}
	if p >= 1 {
		tw.Target.SetPos(tw.ToX, tw.ToY)
		tw.status = StatusCompleted
		return
	}
	ease := tw.Easing
	if ease == nil {
		ease = utils.EaseLinear
	}
	e := ease(p)
	tw.Target.SetPos(utils.Lerp(tw.fromX, tw.ToX, e), utils.Lerp(tw.fromY, tw.ToY, e))
}

// Manager 每帧推进所有运行中的补间
// 场景必须在更新敌机之前调用 Update，这样同一帧内状态就能看到补间完成
type Manager struct {
	clock  clock.Source
	active []*Tween
}

// NewManager 创建补间管理器
func NewManager(c clock.Source) *Manager {
	return &Manager{
		clock:  c,
		active: make([]*Tween, 0, 16),
	}
}

// Start 捕获起点并启动补间
// 对运行中的补间调用会从当前位置重新开始；没有 Target 的补间不会启动
func (m *Manager) Start(tw *Tween) bool {
	if tw.Target == nil {
		return false
	}
	tw.fromX, tw.fromY = tw.Target.Pos()
	tw.startedAt = m.clock.Now()
	tw.status = StatusRunning
	if !tw.registered {
		tw.registered = true
		m.active = append(m.active, tw)
	}
	return true
}

// Update 推进所有补间并移除已结束的
func (m *Manager) Update() {
	now := m.clock.Now()
	kept := m.active[:0]
	for _, tw := range m.active {
		tw.step(now)
		if tw.status == StatusRunning {
			kept = append(kept, tw)
			continue
		}
		tw.registered = false
	}
	for i := len(kept); i < len(m.active); i++ {
		m.active[i] = nil
	}
	m.active = kept
}

// Count 返回运行中的补间数量
func (m *Manager) Count() int {
	return len(m.active)
}

// StopAll 停止所有补间（关卡重开时使用）
func (m *Manager) StopAll() {
	for _, tw := range m.active {
		tw.Stop()
		tw.registered = false
	}
	for i := range m.active {
		m.active[i] = nil
	}
	m.active = m.active[:0]
}
