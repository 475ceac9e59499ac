package utils

import "math"

// DegToRad 角度转弧度
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg 弧度转角度
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// AngleTo 返回从 (x1, y1) 指向 (x2, y2) 的角度（弧度）
// 屏幕坐标系：+X 向右，+Y 向下，角度顺时针增加
func AngleTo(x1, y1, x2, y2 float64) float64 {
	return math.Atan2(y2-y1, x2-x1)
}

// VelocityFromAngle 根据角度（度）和速率计算速度分量
func VelocityFromAngle(angleDeg, speed float64) (vx, vy float64) {
	rad := DegToRad(angleDeg)
	return math.Cos(rad) * speed, math.Sin(rad) * speed
}
