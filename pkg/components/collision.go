package components

// Rect 轴对齐矩形，(X, Y) 为左上角
// 用于碰撞检测和场地边界
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Right 右边界
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom 下边界
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Intersects 检查两个矩形是否重叠（边缘相接不算重叠）
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X &&
		r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Contains 检查点是否在矩形内
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}
