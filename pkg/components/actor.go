package components

import "math"

// Vec2 二维坐标（像素）
type Vec2 struct {
	X float64
	Y float64
}

// Actor 是敌机、玩家共用的变换与存活记录
//
// 锚点位于中心：(X, Y) 是精灵中心，Bounds() 以此向四周展开。
// Exists 表示对象在场景中占用槽位，Alive 表示还能参与碰撞和射击。
type Actor struct {
	X        float64 // 中心 X（像素）
	Y        float64 // 中心 Y（像素），向下为正
	Rotation float64 // 朝向（弧度），0 指向 +X
	Width    float64 // 宽度（像素）
	Height   float64 // 高度（像素）
	Alive    bool
	Exists   bool
	Health   HealthComponent
}

// Reset 把对象放到 (x, y) 并恢复为存活状态
func (a *Actor) Reset(x, y float64) {
	a.X = x
	a.Y = y
	a.Rotation = 0
	a.Alive = true
	a.Exists = true
	a.Health.Reset()
}

// Kill 使对象离场
func (a *Actor) Kill() {
	a.Alive = false
	a.Exists = false
}

// Pos 返回中心坐标
func (a *Actor) Pos() (float64, float64) {
	return a.X, a.Y
}

// SetPos 设置中心坐标
func (a *Actor) SetPos(x, y float64) {
	a.X = x
	a.Y = y
}

// IsAlive 判断对象是否在场且存活，nil 视为不存活
func (a *Actor) IsAlive() bool {
	return a != nil && a.Exists && a.Alive
}

// AngleDegrees 返回朝向（度）
func (a *Actor) AngleDegrees() float64 {
	return a.Rotation * 180 / math.Pi
}

// Bounds 返回以中心为锚点的包围盒
func (a *Actor) Bounds() Rect {
	return Rect{
		X: a.X - a.Width/2,
		Y: a.Y - a.Height/2,
		W: a.Width,
		H: a.Height,
	}
}
