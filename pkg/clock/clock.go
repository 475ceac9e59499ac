package clock

// Source 提供单调递增的模拟时间(毫秒)
//
// 同一帧内的所有读取必须返回同一个值,所以只有场景在每帧开头推进时钟,
// 行为、状态和生成器只读不写。
type Source interface {
	Now() float64
}

// Clock 是手动推进的模拟时钟
type Clock struct {
	now float64
}

// New 创建起始时间为 start 的时钟
func New(start float64) *Clock {
	if start < 0 {
		start = 0
	}
	return &Clock{now: start}
}

// Now 返回当前时间(毫秒)
func (c *Clock) Now() float64 {
	return c.now
}

// Advance 推进时钟,负值被忽略
func (c *Clock) Advance(deltaMs float64) {
	if deltaMs > 0 {
		c.now += deltaMs
	}
}

// Set 设置绝对时间,时钟永远不会倒退
func (c *Clock) Set(ms float64) {
	if ms > c.now {
		c.now = ms
	}
}

// Func 把普通函数适配为 Source,便于测试注入
type Func func() float64

// Now 实现 Source 接口
func (f Func) Now() float64 { return f() }
