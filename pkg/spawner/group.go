// Package spawner 按时间表激活敌机编队
package spawner

import (
	"fmt"
	"math/rand"

	"github.com/decker502/skyraid/pkg/behavior"
	"github.com/decker502/skyraid/pkg/components"
	"github.com/decker502/skyraid/pkg/enemy"
	"github.com/decker502/skyraid/pkg/weapon"
)

var (
	// ErrInvalidMode 编队方向无效
	ErrInvalidMode = fmt.Errorf("%w: invalid formation mode", behavior.ErrConfiguration)
	// ErrUnknownGroup 未知的编队类型
	ErrUnknownGroup = fmt.Errorf("%w: unknown spawn group", behavior.ErrConfiguration)
	// ErrInvalidSchedule 时间表无效
	ErrInvalidSchedule = fmt.Errorf("%w: invalid spawn schedule", behavior.ErrConfiguration)
)

// SpawnGroup 编队模板：配置并激活一批敌机
type SpawnGroup interface {
	// Spawn 从池中取出敌机、写入状态参数并启动
	// 池耗尽时少生成几架，不算错误
	Spawn() error
	// IsFinished 本编队生成的敌机是否都已不再存活
	IsFinished() bool
	// Name 编队类型名称
	Name() string
}

// Context 编队共享的运行时依赖
type Context struct {
	Enemies *enemy.Pool
	Target  behavior.Target
	Bounds  components.Rect
	// Weapons 按敌机槽位返回武器，每个槽位一把，随槽位复用
	Weapons func(slot int) weapon.Weapon
	Rand    *rand.Rand
	Verbose bool
}

func (c *Context) weaponFor(e *enemy.Enemy) weapon.Weapon {
	if c.Weapons == nil {
		return nil
	}
	return c.Weapons(e.Handle().Index)
}

func (c *Context) float64() float64 {
	if c.Rand != nil {
		return c.Rand.Float64()
	}
	return rand.Float64()
}

// Mode 编队入场方向
type Mode int

const (
	// ModeStartLeft 从中线偏左开始，向右依次排开
	ModeStartLeft Mode = 1
	// ModeStartRight 从中线偏右开始，向左依次排开
	ModeStartRight Mode = 2
)

// String 返回方向名称
func (m Mode) String() string {
	switch m {
	case ModeStartLeft:
		return "left"
	case ModeStartRight:
		return "right"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// sign 返回排列方向，+1 向右，-1 向左
func (m Mode) sign() (float64, error) {
	switch m {
	case ModeStartLeft:
		return 1, nil
	case ModeStartRight:
		return -1, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidMode, int(m))
	}
}

// ParseMode 解析配置中的方向
func ParseMode(name string) (Mode, error) {
	switch name {
	case "", "left":
		return ModeStartLeft, nil
	case "right":
		return ModeStartRight, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, name)
	}
}

// 编队类型名称
const (
	GroupThreeShips = "three_ships"
	GroupSolo       = "solo"
)

// NewGroup 按名称创建编队
func NewGroup(ctx *Context, name string, mode Mode) (SpawnGroup, error) {
	switch name {
	case GroupThreeShips:
		return NewThreeShips(ctx, mode), nil
	case GroupSolo:
		return NewSolo(ctx), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, name)
	}
}
