package components

// HealthComponent 存储可被击中对象的生命值
// 默认一击即毁，可在配置中调高 MaxHealth
type HealthComponent struct {
	CurrentHealth int // 当前生命值
	MaxHealth     int // 最大生命值
}

// Reset 恢复满血，MaxHealth 未设置时按 1 处理
func (h *HealthComponent) Reset() {
	if h.MaxHealth <= 0 {
		h.MaxHealth = 1
	}
	h.CurrentHealth = h.MaxHealth
}

// Damage 扣血并返回是否被击毁
func (h *HealthComponent) Damage(amount int) bool {
	if amount <= 0 {
		return h.CurrentHealth <= 0
	}
	h.CurrentHealth -= amount
	if h.CurrentHealth < 0 {
		h.CurrentHealth = 0
	}
	return h.CurrentHealth == 0
}
