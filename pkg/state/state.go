// Package state 定义敌机状态的标签、接口和公共的行为集合
package state

import (
	"fmt"

	"github.com/decker502/skyraid/pkg/behavior"
)

// Tag 状态标签，同时作为状态表的下标
type Tag int

const (
	// None 没有激活的状态
	None Tag = iota - 1
	// Starting 入场：补间到到达点
	Starting
	// Attacking 攻击：转向目标并间隔开火
	Attacking
	// Leaving 离场：补间到屏幕外
	Leaving
	// Exploding 被击毁：播放爆炸后离场
	Exploding
	// TagCount 状态表长度
	TagCount
)

var tagNames = [TagCount]string{
	Starting:  "starting",
	Attacking: "attacking",
	Leaving:   "leaving",
	Exploding: "exploding",
}

// String 返回标签名称
func (t Tag) String() string {
	if t == None {
		return "none"
	}
	if t.Valid() {
		return tagNames[t]
	}
	return fmt.Sprintf("Tag(%d)", int(t))
}

// Valid 判断标签是否可以作为状态表下标
func (t Tag) Valid() bool {
	return t >= 0 && t < TagCount
}

// ParseTag 解析配置文件中的状态名称
func ParseTag(name string) (Tag, error) {
	for i, n := range tagNames {
		if n == name {
			return Tag(i), nil
		}
	}
	return None, fmt.Errorf("unknown state %q", name)
}

// State 是一组同时运行的行为，代表对象的一种工作模式
//
// 状态对象在对象的整个生命周期内复用：外部在 Start 之前写入参数，
// Stop 之后 Reset 把参数恢复为默认值，供下一次激活使用。
type State interface {
	Tag() Tag
	// Start 按注册顺序启动所有行为
	Start() error
	// Update 按注册顺序推进所有行为，然后执行状态自己的转换逻辑
	Update() error
	// Stop 停止所有行为并调用 Reset
	Stop()
	// Reset 恢复默认参数，可重复调用
	Reset()
	// Active 是否处于激活状态
	Active() bool
}

// Base 是有序行为集合，供具体状态嵌入
type Base struct {
	tag       Tag
	behaviors []behavior.Behavior
	active    bool
}

// NewBase 创建带标签的行为集合
func NewBase(tag Tag) Base {
	return Base{tag: tag}
}

// Tag 实现 State 接口
func (b *Base) Tag() Tag {
	return b.tag
}

// Active 实现 State 接口
func (b *Base) Active() bool {
	return b.active
}

// Add 注册行为，注册顺序即更新顺序
func (b *Base) Add(behaviors ...behavior.Behavior) {
	b.behaviors = append(b.behaviors, behaviors...)
}

// Behaviors 返回已注册的行为
func (b *Base) Behaviors() []behavior.Behavior {
	return b.behaviors
}

// StartBehaviors 依次启动行为
// 任何一个失败时，已经启动的行为会被停止，状态保持未激活
func (b *Base) StartBehaviors() error {
	for i, bh := range b.behaviors {
		if err := bh.Start(); err != nil {
			for _, started := range b.behaviors[:i] {
				started.Stop()
			}
			return fmt.Errorf("state %s: behavior %d: %w", b.tag, i, err)
		}
	}
	b.active = true
	return nil
}

// UpdateBehaviors 依次推进行为
func (b *Base) UpdateBehaviors() {
	if !b.active {
		return
	}
	for _, bh := range b.behaviors {
		bh.Update()
	}
}

// StopBehaviors 依次停止行为
func (b *Base) StopBehaviors() {
	for _, bh := range b.behaviors {
		bh.Stop()
	}
	b.active = false
}
