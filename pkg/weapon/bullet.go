package weapon

import (
	"github.com/decker502/skyraid/pkg/components"
	"github.com/decker502/skyraid/pkg/ecs"
	"github.com/decker502/skyraid/pkg/utils"
)

// DefaultBulletPoolSize 每一方的子弹池容量
const DefaultBulletPoolSize = 128

// Bullet 池化的子弹
type Bullet struct {
	components.Actor
	VelocityX    float64 // 像素/秒
	VelocityY    float64 // 像素/秒
	AngularSpeed float64 // 弧度/秒，用于旋转的子弹精灵
	Damage       int
}

// BulletPool 固定容量的子弹池
// 池耗尽时 Fire 返回 false，武器少发子弹即可，不报错
type BulletPool struct {
	pool   *ecs.Pool[Bullet]
	width  float64
	height float64
}

// NewBulletPool 创建子弹池，size <= 0 时使用默认容量
func NewBulletPool(size int, bulletW, bulletH float64) *BulletPool {
	if size <= 0 {
		size = DefaultBulletPoolSize
	}
	return &BulletPool{
		pool:   ecs.NewPool(size, func(_ int, b *Bullet) { b.Width, b.Height = bulletW, bulletH }),
		width:  bulletW,
		height: bulletH,
	}
}

// Fire 从池中取出一颗子弹，从 (x, y) 以 angleDeg 方向、speed 像素/秒射出
func (p *BulletPool) Fire(x, y, angleDeg, speed float64) bool {
	_, b, ok := p.pool.Acquire()
	if !ok {
		return false
	}
	b.Width, b.Height = p.width, p.height
	b.Reset(x, y)
	b.Rotation = utils.DegToRad(angleDeg)
	b.VelocityX, b.VelocityY = utils.VelocityFromAngle(angleDeg, speed)
	b.AngularSpeed = 0
	b.Damage = 1
	return true
}

// Update 按速度移动子弹，离开 bounds 的子弹回收
func (p *BulletPool) Update(deltaMs float64, bounds components.Rect) {
	dt := deltaMs / 1000
	p.pool.Each(func(h ecs.Handle, b *Bullet) {
		b.X += b.VelocityX * dt
		b.Y += b.VelocityY * dt
		b.Rotation += b.AngularSpeed * dt
		if !bounds.Intersects(b.Bounds()) {
			p.kill(h, b)
		}
	})
}

// Each 遍历活跃子弹
func (p *BulletPool) Each(fn func(h ecs.Handle, b *Bullet)) {
	p.pool.Each(fn)
}

// Kill 回收子弹（命中后调用），重复调用无副作用
func (p *BulletPool) Kill(h ecs.Handle) {
	if b, ok := p.pool.Get(h); ok {
		p.kill(h, b)
	}
}

func (p *BulletPool) kill(h ecs.Handle, b *Bullet) {
	b.Kill()
	p.pool.Release(h)
}

// KillAll 回收所有子弹
func (p *BulletPool) KillAll() {
	p.pool.Each(p.kill)
}

// Active 活跃子弹数量
func (p *BulletPool) Active() int {
	return p.pool.Active()
}

// Cap 子弹池容量
func (p *BulletPool) Cap() int {
	return p.pool.Cap()
}
