package weapon

import (
	"math/rand"

	"github.com/decker502/skyraid/pkg/clock"
)

// Weapon 封装射速限制和弹幕样式
//
// Fire 返回实际射出的子弹数：射速冷却中或子弹池耗尽时为 0。
type Weapon interface {
	Fire(x, y, angleDeg float64) int
	// Reset 清除冷却，池化敌机重新分配武器时调用
	Reset()
}

// 默认参数
const (
	DefaultSingleFireRate  = 200 // 毫秒
	DefaultTwinFireRate    = 100
	DefaultScatterFireRate = 100
	DefaultBulletSpeed     = 600 // 像素/秒
	DefaultTwinSpacing     = 5   // 像素
	DefaultScatterSpread   = 5   // 像素，横向随机偏移半径
	DefaultScatterYOffset  = -10 // 像素
)

// limiter 射速限制器
type limiter struct {
	clock    clock.Source
	fireRate float64
	nextFire float64
}

// ready 冷却结束时记录下一次可开火时间并返回 true
func (l *limiter) ready() bool {
	now := l.clock.Now()
	if now < l.nextFire {
		return false
	}
	l.nextFire = now + l.fireRate
	return true
}

func (l *limiter) Reset() {
	l.nextFire = 0
}

// SingleBullet 每次射出一颗子弹
type SingleBullet struct {
	limiter
	bullets *BulletPool
	Speed   float64
}

// NewSingleBullet 创建单发武器
func NewSingleBullet(c clock.Source, bullets *BulletPool, fireRate, speed float64) *SingleBullet {
	if fireRate <= 0 {
		fireRate = DefaultSingleFireRate
	}
	if speed <= 0 {
		speed = DefaultBulletSpeed
	}
	return &SingleBullet{
		limiter: limiter{clock: c, fireRate: fireRate},
		bullets: bullets,
		Speed:   speed,
	}
}

// Fire 实现 Weapon 接口
func (w *SingleBullet) Fire(x, y, angleDeg float64) int {
	if !w.ready() {
		return 0
	}
	if w.bullets.Fire(x, y, angleDeg, w.Speed) {
		return 1
	}
	return 0
}

// TwinShot 左右并排两颗子弹
type TwinShot struct {
	limiter
	bullets *BulletPool
	Speed   float64
	Spacing float64
}

// NewTwinShot 创建双发武器
func NewTwinShot(c clock.Source, bullets *BulletPool, fireRate, speed float64) *TwinShot {
	if fireRate <= 0 {
		fireRate = DefaultTwinFireRate
	}
	if speed <= 0 {
		speed = DefaultBulletSpeed
	}
	return &TwinShot{
		limiter: limiter{clock: c, fireRate: fireRate},
		bullets: bullets,
		Speed:   speed,
		Spacing: DefaultTwinSpacing,
	}
}

// Fire 实现 Weapon 接口
func (w *TwinShot) Fire(x, y, angleDeg float64) int {
	if !w.ready() {
		return 0
	}
	n := 0
	if w.bullets.Fire(x-w.Spacing, y, angleDeg, w.Speed) {
		n++
	}
	if w.bullets.Fire(x+w.Spacing, y, angleDeg, w.Speed) {
		n++
	}
	return n
}

// ScatterShot 在发射点附近随机偏移射出一颗子弹
type ScatterShot struct {
	limiter
	bullets *BulletPool
	rng     *rand.Rand
	Speed   float64
	Spread  float64
}

// NewScatterShot 创建散射武器，rng 为 nil 时使用全局随机源
func NewScatterShot(c clock.Source, bullets *BulletPool, fireRate, speed float64, rng *rand.Rand) *ScatterShot {
	if fireRate <= 0 {
		fireRate = DefaultScatterFireRate
	}
	if speed <= 0 {
		speed = DefaultBulletSpeed
	}
	return &ScatterShot{
		limiter: limiter{clock: c, fireRate: fireRate},
		bullets: bullets,
		rng:     rng,
		Speed:   speed,
		Spread:  DefaultScatterSpread,
	}
}

// Fire 实现 Weapon 接口
func (w *ScatterShot) Fire(x, y, angleDeg float64) int {
	if !w.ready() {
		return 0
	}
	r := rand.Float64()
	if w.rng != nil {
		r = w.rng.Float64()
	}
	bx := x - w.Spread + r*2*w.Spread
	if w.bullets.Fire(bx, y+DefaultScatterYOffset, angleDeg, w.Speed) {
		return 1
	}
	return 0
}
