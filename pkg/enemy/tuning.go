package enemy

import (
	"math/rand"

	"github.com/decker502/skyraid/pkg/behavior"
	"github.com/decker502/skyraid/pkg/clock"
	"github.com/decker502/skyraid/pkg/components"
	"github.com/decker502/skyraid/pkg/tween"
	"github.com/decker502/skyraid/pkg/utils"
)

// 敌机默认参数（毫秒 / 像素）
const (
	DefaultWidth         = 52
	DefaultHeight        = 40
	DefaultStartDuration = 2000
	DefaultLeaveDuration = 4000
	DefaultFireRate      = 2000
	DefaultMaxShots      = 3
	DefaultExplodeDwell  = 300
)

// Tuning 是状态 Reset 时恢复的默认参数
// 关卡配置可以整体替换，但单次激活的参数仍由编队在 Start 之前写入
type Tuning struct {
	Width         float64
	Height        float64
	Health        int
	StartDuration float64
	StartEasing   utils.EasingFunc
	LeaveDuration float64
	LeaveEasing   utils.EasingFunc
	FireRate      float64
	FireJitter    float64
	MaxShots      int
	Dwell         float64 // 到达后停留多久再进入下一状态
	AttackTimeout float64 // 0 表示只按射击次数离场
	ExplodeDwell  float64
}

// DefaultTuning 返回默认参数
func DefaultTuning() Tuning {
	return Tuning{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		Health:        1,
		StartDuration: DefaultStartDuration,
		StartEasing:   utils.EaseBackInOut,
		LeaveDuration: DefaultLeaveDuration,
		LeaveEasing:   utils.EaseBackInOut,
		FireRate:      DefaultFireRate,
		MaxShots:      DefaultMaxShots,
		ExplodeDwell:  DefaultExplodeDwell,
	}
}

// Deps 是敌机运行时依赖
type Deps struct {
	Clock   clock.Source
	Tweens  *tween.Manager
	Effects behavior.Effects
	Bounds  components.Rect // 场地
	Tuning  Tuning
	Rand    *rand.Rand
	Verbose bool
}
