package utils

import (
	"math"
	"testing"
)

// TestAngleTo 测试朝向角计算
func TestAngleTo(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
		expected       float64
	}{
		{"正右方", 0, 0, 10, 0, 0},
		{"正下方", 0, 0, 0, 10, math.Pi / 2},
		{"正左方", 0, 0, -10, 0, math.Pi},
		{"正上方", 0, 0, 0, -10, -math.Pi / 2},
		{"重合点", 5, 5, 5, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AngleTo(tt.x1, tt.y1, tt.x2, tt.y2)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("AngleTo = %v, 期望 %v", result, tt.expected)
			}
		})
	}
}

// TestVelocityFromAngle 测试角度转速度
func TestVelocityFromAngle(t *testing.T) {
	tests := []struct {
		name   string
		angle  float64
		speed  float64
		wantVX float64
		wantVY float64
	}{
		{"向右", 0, 600, 600, 0},
		{"向下", 90, 100, 0, 100},
		{"向上", -90, 600, 0, -600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vx, vy := VelocityFromAngle(tt.angle, tt.speed)
			if math.Abs(vx-tt.wantVX) > 0.001 || math.Abs(vy-tt.wantVY) > 0.001 {
				t.Errorf("VelocityFromAngle(%v, %v) = (%v, %v), 期望 (%v, %v)",
					tt.angle, tt.speed, vx, vy, tt.wantVX, tt.wantVY)
			}
		})
	}

	if math.Abs(RadToDeg(DegToRad(45))-45) > 0.001 {
		t.Error("角度与弧度往返转换应保持不变")
	}
}
