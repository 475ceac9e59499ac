package systems

import (
	"github.com/decker502/skyraid/pkg/components"
	"github.com/decker502/skyraid/pkg/weapon"
)

// BulletSystem 推进双方子弹并回收飞出场地的子弹
type BulletSystem struct {
	pools  []*weapon.BulletPool
	bounds components.Rect
}

// NewBulletSystem 创建子弹系统
//
// 参数:
//   - bounds: 场地范围，子弹包围盒完全离开后回收
//   - pools: 需要推进的子弹池（通常是玩家和敌机各一个）
func NewBulletSystem(bounds components.Rect, pools ...*weapon.BulletPool) *BulletSystem {
	return &BulletSystem{pools: pools, bounds: bounds}
}

// Update 推进一帧，deltaMs 为帧时间（毫秒）
func (s *BulletSystem) Update(deltaMs float64) {
	for _, p := range s.pools {
		p.Update(deltaMs, s.bounds)
	}
}

// KillAll 回收所有子弹（重开关卡时使用）
func (s *BulletSystem) KillAll() {
	for _, p := range s.pools {
		p.KillAll()
	}
}

// Active 所有池中的活跃子弹总数
func (s *BulletSystem) Active() int {
	n := 0
	for _, p := range s.pools {
		n += p.Active()
	}
	return n
}
