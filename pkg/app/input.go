package app

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/skyraid/pkg/utils"
)

// 触摸时屏幕两侧各占多少比例用于移动
const touchEdge = 0.35

// KeyboardInput 把方向键和空格映射为玩家输入
// 每帧开始时调用 Poll 采样一次，同一帧内的读取结果一致
//
// 移动端没有键盘：按住屏幕即自动射击，按在屏幕边缘时向该方向移动。
type KeyboardInput struct {
	dx, dy float64
	fire   bool

	touches []ebiten.TouchID
}

// Poll 采样当前键盘和触摸状态，width/height 为逻辑屏幕尺寸
func (k *KeyboardInput) Poll(width, height int) {
	k.dx, k.dy = 0, 0
	// 左右同时按下时左优先，上下同理
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft):
		k.dx = -1
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight):
		k.dx = 1
	}
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp):
		k.dy = -1
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown):
		k.dy = 1
	}
	k.fire = ebiten.IsKeyPressed(ebiten.KeySpace)

	k.touches = ebiten.AppendTouchIDs(k.touches[:0])
	if len(k.touches) == 0 {
		return
	}
	if utils.IsMobile() {
		k.fire = true
	}
	// 只看第一个触点
	x, y := ebiten.TouchPosition(k.touches[0])
	if dx, dy := touchDirection(x, y, width, height); dx != 0 || dy != 0 {
		k.dx, k.dy = dx, dy
	}
}

// touchDirection 根据触点落在屏幕哪个边缘返回移动方向
func touchDirection(x, y, width, height int) (float64, float64) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	var dx, dy float64
	fx := float64(x) / float64(width)
	fy := float64(y) / float64(height)
	switch {
	case fx < touchEdge:
		dx = -1
	case fx > 1-touchEdge:
		dx = 1
	}
	switch {
	case fy < touchEdge:
		dy = -1
	case fy > 1-touchEdge:
		dy = 1
	}
	return dx, dy
}

// Direction 实现 entities.PlayerInput 接口
func (k *KeyboardInput) Direction() (float64, float64) {
	return k.dx, k.dy
}

// Firing 实现 entities.PlayerInput 接口
func (k *KeyboardInput) Firing() bool {
	return k.fire
}
