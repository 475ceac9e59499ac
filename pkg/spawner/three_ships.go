package spawner

import (
	"errors"
	"log"

	"github.com/decker502/skyraid/pkg/components"
	"github.com/decker502/skyraid/pkg/ecs"
	"github.com/decker502/skyraid/pkg/state"
)

// 三机编队参数（毫秒）
const (
	threeShipsCount     = 3
	threeShipsBaseDelay = 500
	threeShipsDelayStep = 500
	// threeShipsMaxDelay 用于倒序离场：先到的后走
	threeShipsMaxDelay = threeShipsBaseDelay + threeShipsDelayStep*threeShipsCount
)

// ThreeShips 一排三架敌机，从中线一侧依次入场
//
// 场地宽 W、高 H 时：横向间距 W/6，第一架在 W/2 ± W/12；
// 到达高度依次为 2H/12、3H/12、4H/12；入场延迟 500、1000、1500；
// 离场延迟 2*(2000 - 入场延迟)，所以编队按入场的相反顺序离开。
type ThreeShips struct {
	ctx     *Context
	Mode    Mode
	tracked []ecs.Handle
}

// NewThreeShips 创建三机编队
func NewThreeShips(ctx *Context, mode Mode) *ThreeShips {
	return &ThreeShips{ctx: ctx, Mode: mode}
}

// Name 实现 SpawnGroup 接口
func (g *ThreeShips) Name() string {
	return GroupThreeShips
}

// Spawn 实现 SpawnGroup 接口
func (g *ThreeShips) Spawn() error {
	sign, err := g.Mode.sign()
	if err != nil {
		return err
	}

	b := g.ctx.Bounds
	widthStep := b.W / 6
	heightStep := b.H / 12
	startX := b.X + b.W/2 + sign*widthStep/2

	count := min(threeShipsCount, g.ctx.Enemies.Free())
	spawned := 0
	var errs []error
	for i := 0; i < count; i++ {
		e, ok := g.ctx.Enemies.Acquire()
		if !ok {
			break
		}

		x := startX + sign*float64(i)*widthStep
		y := b.Y - e.Height*2
		finalY := b.Y + 2*heightStep + float64(i)*heightStep
		delay := float64(threeShipsBaseDelay + threeShipsDelayStep*i)

		starting := e.Starting()
		starting.Delay = delay
		starting.TargetPos = &components.Vec2{X: x, Y: finalY}
		starting.NextState = state.Attacking

		attacking := e.Attacking()
		attacking.Weapon = g.ctx.weaponFor(e)
		attacking.NextState = state.Leaving

		leaving := e.Leaving()
		leaving.Delay = 2 * (threeShipsMaxDelay - delay)
		leaving.TargetPos = &components.Vec2{X: x, Y: b.Bottom() + e.Height*2}

		e.SetTarget(g.ctx.Target)
		if err := e.Start(components.Vec2{X: x, Y: y}); err != nil {
			errs = append(errs, err)
			continue
		}
		g.tracked = append(g.tracked, e.Handle())
		spawned++
	}

	if g.ctx.Verbose {
		log.Printf("[ThreeShips] spawned %d/%d ships, mode=%s, free slots=%d",
			spawned, threeShipsCount, g.Mode, g.ctx.Enemies.Free())
	}
	return errors.Join(errs...)
}

// IsFinished 实现 SpawnGroup 接口
// 槽位被回收再分配后旧句柄失效，同样视为已结束
func (g *ThreeShips) IsFinished() bool {
	for _, h := range g.tracked {
		if g.ctx.Enemies.IsAlive(h) {
			return false
		}
	}
	return true
}

// TrackedEnemies 返回本编队生成的敌机句柄
func (g *ThreeShips) TrackedEnemies() []ecs.Handle {
	return g.tracked
}
