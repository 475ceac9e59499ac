package components

// ParticleComponent 单个爆炸粒子
// 由 ParticleSystem 在池中分配，每帧按速度移动并随寿命渐隐
type ParticleComponent struct {
	X         float64
	Y         float64
	VelocityX float64 // 像素/秒
	VelocityY float64 // 像素/秒
	Size      float64 // 边长（像素）
	Alpha     float64 // 0 = 透明, 1 = 不透明
	Lifetime  LifetimeComponent
}
