package components

// LifetimeComponent 管理短生命周期对象（粒子）的存在时间
type LifetimeComponent struct {
	MaxLifetime     float64 // 最大生命周期（毫秒）
	CurrentLifetime float64 // 当前已存在时间（毫秒）
	IsExpired       bool    // 是否已过期
}

// Tick 推进生命周期，返回是否刚好过期
func (l *LifetimeComponent) Tick(deltaMs float64) bool {
	if l.IsExpired {
		return false
	}
	l.CurrentLifetime += deltaMs
	if l.CurrentLifetime >= l.MaxLifetime {
		l.IsExpired = true
		return true
	}
	return false
}

// Remaining 返回剩余比例 [0, 1]，用于透明度渐隐
func (l *LifetimeComponent) Remaining() float64 {
	if l.MaxLifetime <= 0 {
		return 0
	}
	r := 1 - l.CurrentLifetime/l.MaxLifetime
	if r < 0 {
		return 0
	}
	return r
}
