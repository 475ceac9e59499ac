package entities

import (
	"fmt"
	"log"

	"github.com/decker502/skyraid/pkg/behavior"
	"github.com/decker502/skyraid/pkg/clock"
	"github.com/decker502/skyraid/pkg/components"
	"github.com/decker502/skyraid/pkg/weapon"
)

// PlayerState 玩家状态
type PlayerState int

const (
	// PlayerStarting 从屏幕下方飞入，此时不接受输入也不参与碰撞
	PlayerStarting PlayerState = iota + 1
	// PlayerPlaying 可以移动和射击
	PlayerPlaying
	// PlayerRestarting 被击毁后等待重生
	PlayerRestarting
	// PlayerDead 没有剩余生命
	PlayerDead
)

// String 返回状态名称
func (s PlayerState) String() string {
	switch s {
	case PlayerStarting:
		return "Starting"
	case PlayerPlaying:
		return "Playing"
	case PlayerRestarting:
		return "Restarting"
	case PlayerDead:
		return "Dead"
	default:
		return fmt.Sprintf("PlayerState(%d)", int(s))
	}
}

// 玩家参数
const (
	PlayerSpriteSize   = 32  // 精灵边长（像素）
	PlayerHitboxWidth  = 16  // 碰撞盒宽度（像素）
	PlayerHitboxHeight = 14  // 碰撞盒高度（像素）
	PlayerEntryOffset  = 50  // 入场点在屏幕下方的额外距离（像素）
	PlayerMuzzleOffset = -10 // 枪口相对中心的 Y 偏移（像素）
	PlayerFireAngle    = -90 // 向上射击（度）
)

// PlayerInput 玩家输入来源
// 由 app 包用键盘实现，测试中用固定输入替代
type PlayerInput interface {
	// Direction 返回移动方向，每个分量取 -1、0 或 1
	Direction() (dx, dy float64)
	// Firing 开火键是否按下
	Firing() bool
}

// PlayerConfig 玩家参数
type PlayerConfig struct {
	Lives        int     // 额外生命数
	Speed        float64 // 像素/秒
	RestartDelay float64 // 被击毁到重生的时间（毫秒）
}

// Player 玩家飞机
//
// Actor 的宽高是碰撞盒，比精灵小，这样擦边的子弹不算命中。
type Player struct {
	components.Actor

	clock   clock.Source
	weapon  weapon.Weapon
	effects behavior.Effects
	bounds  components.Rect
	cfg     PlayerConfig

	state     PlayerState
	lives     int
	restartAt float64
	verbose   bool
}

// NewPlayer 创建玩家，调用 Start 后才会出现在场地中
func NewPlayer(c clock.Source, w weapon.Weapon, effects behavior.Effects, bounds components.Rect, cfg PlayerConfig) *Player {
	p := &Player{
		clock:   c,
		weapon:  w,
		effects: effects,
		bounds:  bounds,
		cfg:     cfg,
		lives:   cfg.Lives,
	}
	p.Width = PlayerHitboxWidth
	p.Height = PlayerHitboxHeight
	return p
}

// SetVerbose 打开状态切换日志
func (p *Player) SetVerbose(verbose bool) {
	p.verbose = verbose
}

// Start 把玩家放到屏幕下方并进入 Starting
func (p *Player) Start() {
	x := p.bounds.X + p.bounds.W/2
	y := p.bounds.Bottom() + PlayerSpriteSize + PlayerEntryOffset
	p.Reset(x, y)
	if p.weapon != nil {
		p.weapon.Reset()
	}
	p.setState(PlayerStarting)
}

func (p *Player) setState(s PlayerState) {
	if p.verbose {
		log.Printf("[Player] %s -> %s, lives=%d", p.state, s, p.lives)
	}
	p.state = s
}

// Update 推进一帧，deltaMs 为帧时间（毫秒）
func (p *Player) Update(deltaMs float64, input PlayerInput) {
	step := p.cfg.Speed * deltaMs / 1000

	switch p.state {
	case PlayerStarting:
		p.Y -= step
		if p.Y < p.bounds.Bottom()-1.5*PlayerSpriteSize {
			p.setState(PlayerPlaying)
		}
	case PlayerPlaying:
		p.updatePlaying(step, input)
	case PlayerRestarting:
		if p.clock.Now() > p.restartAt {
			p.Start()
		}
	case PlayerDead:
	}
}

func (p *Player) updatePlaying(step float64, input PlayerInput) {
	if input == nil {
		return
	}
	dx, dy := input.Direction()
	p.X += dx * step
	p.Y += dy * step

	b := p.bounds
	p.X = min(max(p.X, b.X), b.Right())
	p.Y = min(max(p.Y, b.Y+p.Height), b.Bottom()-p.Height)

	if input.Firing() && p.weapon != nil {
		p.weapon.Fire(p.X, p.Y+PlayerMuzzleOffset, PlayerFireAngle)
	}
}

// Hit 被敌机或敌方子弹击中
// 只有 Playing 状态可以被击中，返回是否生效
func (p *Player) Hit() bool {
	if p.state != PlayerPlaying || !p.IsAlive() {
		return false
	}
	if p.lives > 0 {
		p.lives--
		p.restartAt = p.clock.Now() + p.cfg.RestartDelay
		p.setState(PlayerRestarting)
	} else {
		p.setState(PlayerDead)
	}
	if p.effects != nil {
		p.effects.Explode(p.X, p.Y, p.Width, p.Height)
	}
	p.Kill()
	return true
}

// State 当前状态
func (p *Player) State() PlayerState {
	return p.state
}

// Lives 剩余的额外生命
func (p *Player) Lives() int {
	return p.lives
}

// Vulnerable 是否参与碰撞
func (p *Player) Vulnerable() bool {
	return p.state == PlayerPlaying && p.IsAlive()
}

// IsDead 是否已没有生命
func (p *Player) IsDead() bool {
	return p.state == PlayerDead
}
