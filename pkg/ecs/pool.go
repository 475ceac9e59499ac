package ecs

// Handle 是池内槽位的代际句柄
// Gen 在每次 Acquire 时递增,槽位被回收再分配后旧句柄自动失效
type Handle struct {
	Index int
	Gen   uint32
}

// InvalidHandle 表示"没有槽位"
var InvalidHandle = Handle{Index: -1}

// Valid 判断句柄是否曾经由池分配(不代表当前仍然存活)
func (h Handle) Valid() bool {
	return h.Index >= 0 && h.Gen > 0
}

// Pool 是固定容量的对象竞技场
//
// 所有对象在创建时一次性分配,运行期间只在空闲链表与活跃状态之间切换,
// 不再产生新的分配。空闲链表为 LIFO,初始顺序保证第一次 Acquire 拿到槽位 0。
type Pool[T any] struct {
	items  []T
	gens   []uint32
	live   []bool
	free   []int
	active int
}

// NewPool 创建容量为 capacity 的池
// build 对每个槽位调用一次,用于预先构造对象(可为 nil)
func NewPool[T any](capacity int, build func(index int, item *T)) *Pool[T] {
	if capacity < 0 {
		capacity = 0
	}
	p := &Pool[T]{
		items: make([]T, capacity),
		gens:  make([]uint32, capacity),
		live:  make([]bool, capacity),
		free:  make([]int, 0, capacity),
	}
	for i := capacity - 1; i >= 0; i-- {
		p.free = append(p.free, i)
	}
	if build != nil {
		for i := range p.items {
			build(i, &p.items[i])
		}
	}
	return p
}

// Acquire 从空闲链表取出一个槽位
// 池耗尽时返回 false,这不是错误
func (p *Pool[T]) Acquire() (Handle, *T, bool) {
	n := len(p.free)
	if n == 0 {
		return InvalidHandle, nil, false
	}
	idx := p.free[n-1]
	p.free = p.free[:n-1]
	p.gens[idx]++
	p.live[idx] = true
	p.active++
	return Handle{Index: idx, Gen: p.gens[idx]}, &p.items[idx], true
}

// Release 归还槽位,重复释放或过期句柄直接忽略
func (p *Pool[T]) Release(h Handle) bool {
	if !p.IsLive(h) {
		return false
	}
	p.live[h.Index] = false
	p.free = append(p.free, h.Index)
	p.active--
	return true
}

// IsLive 判断句柄是否指向当前代的活跃槽位
func (p *Pool[T]) IsLive(h Handle) bool {
	if h.Index < 0 || h.Index >= len(p.items) {
		return false
	}
	return p.live[h.Index] && p.gens[h.Index] == h.Gen
}

// Get 通过句柄获取对象,句柄过期时返回 false
func (p *Pool[T]) Get(h Handle) (*T, bool) {
	if !p.IsLive(h) {
		return nil, false
	}
	return &p.items[h.Index], true
}

// Slot 按下标直接访问槽位(不论是否活跃)
func (p *Pool[T]) Slot(index int) *T {
	if index < 0 || index >= len(p.items) {
		return nil
	}
	return &p.items[index]
}

// HandleAt 返回槽位当前代的句柄,槽位空闲时返回 InvalidHandle
func (p *Pool[T]) HandleAt(index int) Handle {
	if index < 0 || index >= len(p.items) || !p.live[index] {
		return InvalidHandle
	}
	return Handle{Index: index, Gen: p.gens[index]}
}

// Each 按下标顺序遍历活跃槽位
// 回调中 Release 当前槽位是安全的
func (p *Pool[T]) Each(fn func(h Handle, item *T)) {
	for i := range p.items {
		if !p.live[i] {
			continue
		}
		fn(Handle{Index: i, Gen: p.gens[i]}, &p.items[i])
	}
}

// All 遍历所有槽位(包括空闲的)
func (p *Pool[T]) All(fn func(index int, item *T)) {
	for i := range p.items {
		fn(i, &p.items[i])
	}
}

// Cap 返回池容量
func (p *Pool[T]) Cap() int { return len(p.items) }

// Active 返回活跃槽位数量
func (p *Pool[T]) Active() int { return p.active }

// Free 返回空闲槽位数量
func (p *Pool[T]) Free() int { return len(p.free) }
