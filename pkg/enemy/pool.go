package enemy

import (
	"errors"

	"github.com/decker502/skyraid/pkg/ecs"
)

// DefaultPoolSize 默认敌机池容量
const DefaultPoolSize = 5

// Pool 预先分配的敌机池
//
// 只有编队会从池中取出敌机，敌机自己通过 Kill 或越界检查归还槽位。
type Pool struct {
	pool *ecs.Pool[Enemy]
}

// NewPool 创建容量为 size 的敌机池，size <= 0 时使用默认容量
func NewPool(size int, deps Deps) *Pool {
	if size <= 0 {
		size = DefaultPoolSize
	}
	p := &Pool{}
	p.pool = ecs.NewPool(size, func(_ int, e *Enemy) {
		e.init(deps)
		e.release = p.release
	})
	return p
}

func (p *Pool) release(h ecs.Handle) {
	p.pool.Release(h)
}

// Acquire 取出一个空闲敌机，池耗尽时返回 false
// 取出后必须调用 Start，否则要调用 Kill 归还
func (p *Pool) Acquire() (*Enemy, bool) {
	h, e, ok := p.pool.Acquire()
	if !ok {
		return nil, false
	}
	e.handle = h
	return e, true
}

// Get 通过句柄获取敌机，句柄过期时返回 false
func (p *Pool) Get(h ecs.Handle) (*Enemy, bool) {
	return p.pool.Get(h)
}

// IsAlive 句柄指向的这一次激活是否仍然存活
func (p *Pool) IsAlive(h ecs.Handle) bool {
	e, ok := p.pool.Get(h)
	return ok && e.IsAlive()
}

// Each 遍历在场的敌机
func (p *Pool) Each(fn func(e *Enemy)) {
	p.pool.Each(func(_ ecs.Handle, e *Enemy) { fn(e) })
}

// UpdateAll 推进所有在场的敌机，收集所有配置错误
func (p *Pool) UpdateAll() error {
	var errs []error
	p.pool.Each(func(_ ecs.Handle, e *Enemy) {
		if err := e.Update(); err != nil {
			errs = append(errs, err)
		}
	})
	return errors.Join(errs...)
}

// KillAll 回收所有敌机
func (p *Pool) KillAll() {
	p.pool.Each(func(_ ecs.Handle, e *Enemy) { e.Kill() })
}

// Active 在场的敌机数量
func (p *Pool) Active() int {
	return p.pool.Active()
}

// Free 空闲槽位数量
func (p *Pool) Free() int {
	return p.pool.Free()
}

// Cap 池容量
func (p *Pool) Cap() int {
	return p.pool.Cap()
}
