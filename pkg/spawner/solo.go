package spawner

import (
	"log"

	"github.com/decker502/skyraid/pkg/components"
	"github.com/decker502/skyraid/pkg/ecs"
	"github.com/decker502/skyraid/pkg/enemy"
	"github.com/decker502/skyraid/pkg/state"
)

// 单机参数
const (
	soloMargin     = 16   // 场地左右留白（像素）
	soloPartitions = 3    // 横向分区数
	soloPartShare  = 0.25 // 每个分区占可用宽度的比例，最右侧的四分之一不参与生成
	soloMinDelay   = 250  // 毫秒
	soloMaxDelay   = 500  // 毫秒
)

// Solo 在没有敌机占用的横向分区里随机放一架敌机
// 连续生成时分区轮换，避免敌机扎堆；三个分区都被占用时本次不生成
type Solo struct {
	ctx       *Context
	partIndex int
	tracked   []ecs.Handle
}

// NewSolo 创建单机编队
func NewSolo(ctx *Context) *Solo {
	return &Solo{ctx: ctx, partIndex: -1}
}

// Name 实现 SpawnGroup 接口
func (g *Solo) Name() string {
	return GroupSolo
}

// Spawn 实现 SpawnGroup 接口
func (g *Solo) Spawn() error {
	xStart, xEnd, ok := g.findPartition()
	if !ok {
		if g.ctx.Verbose {
			log.Printf("[Solo] no free partition, skipping")
		}
		return nil
	}

	e, ok := g.ctx.Enemies.Acquire()
	if !ok {
		return nil
	}

	b := g.ctx.Bounds
	x := xStart + g.ctx.float64()*(xEnd-xStart)
	yStart := b.Y + soloMargin
	yEnd := b.Y + 0.3*b.H
	finalY := yStart + g.ctx.float64()*(yEnd-yStart)
	delay := soloMinDelay + g.ctx.float64()*(soloMaxDelay-soloMinDelay)

	starting := e.Starting()
	starting.Delay = delay
	starting.TargetPos = &components.Vec2{X: x, Y: finalY}
	starting.NextState = state.Attacking

	attacking := e.Attacking()
	attacking.Weapon = g.ctx.weaponFor(e)
	attacking.NextState = state.Leaving

	e.SetTarget(g.ctx.Target)
	if err := e.Start(components.Vec2{X: x, Y: b.Y - e.Height*2}); err != nil {
		return err
	}
	g.tracked = append(g.tracked, e.Handle())

	if g.ctx.Verbose {
		log.Printf("[Solo] spawned at x=%.1f, partition=%d", x, g.partIndex)
	}
	return nil
}

// findPartition 最多尝试三个分区，返回第一个没有敌机的分区范围
func (g *Solo) findPartition() (float64, float64, bool) {
	b := g.ctx.Bounds
	spawnWidth := b.W - 2*soloMargin
	partWidth := spawnWidth * soloPartShare

	for step := 0; step < soloPartitions; step++ {
		g.partIndex = (g.partIndex + 1) % soloPartitions
		xStart := b.X + soloMargin + float64(g.partIndex)*partWidth
		xEnd := xStart + partWidth

		occupied := false
		g.ctx.Enemies.Each(func(e *enemy.Enemy) {
			if e.Exists && xStart <= e.X && e.X <= xEnd {
				occupied = true
			}
		})
		if !occupied {
			return xStart, xEnd, true
		}
	}
	return 0, 0, false
}

// IsFinished 实现 SpawnGroup 接口
func (g *Solo) IsFinished() bool {
	for _, h := range g.tracked {
		if g.ctx.Enemies.IsAlive(h) {
			return false
		}
	}
	return true
}
