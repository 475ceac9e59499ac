package scenes

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/decker502/skyraid/pkg/clock"
	"github.com/decker502/skyraid/pkg/components"
	"github.com/decker502/skyraid/pkg/config"
	"github.com/decker502/skyraid/pkg/enemy"
	"github.com/decker502/skyraid/pkg/entities"
	"github.com/decker502/skyraid/pkg/game"
	"github.com/decker502/skyraid/pkg/systems"
	"github.com/decker502/skyraid/pkg/utils"
	"github.com/decker502/skyraid/pkg/weapon"
)

// 子弹尺寸（像素）
const (
	playerBulletWidth  = 2
	playerBulletHeight = 8
	enemyBulletWidth   = 4
	enemyBulletHeight  = 4
)

// newRand 按关卡种子创建随机源，种子为 0 时按时间取种
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// tuningFromConfig 把关卡中的敌机参数合并到默认参数上，零值保留默认
func tuningFromConfig(ec config.EnemyConfig) (enemy.Tuning, error) {
	t := enemy.DefaultTuning()

	if ec.Width > 0 {
		t.Width = ec.Width
	}
	if ec.Height > 0 {
		t.Height = ec.Height
	}
	if ec.Health > 0 {
		t.Health = ec.Health
	}
	if ec.StartDuration > 0 {
		t.StartDuration = ec.StartDuration
	}
	if ec.LeaveDuration > 0 {
		t.LeaveDuration = ec.LeaveDuration
	}
	if ec.FireRate > 0 {
		t.FireRate = ec.FireRate
	}
	if ec.MaxShots > 0 {
		t.MaxShots = ec.MaxShots
	}
	if ec.ExplodeDwell > 0 {
		t.ExplodeDwell = ec.ExplodeDwell
	}
	t.FireJitter = ec.FireJitter
	t.Dwell = ec.Dwell
	t.AttackTimeout = ec.AttackTimeout

	if ec.StartEasing != "" {
		fn, ok := utils.EasingByName(ec.StartEasing)
		if !ok {
			return t, fmt.Errorf("unknown startEasing %q", ec.StartEasing)
		}
		t.StartEasing = fn
	}
	if ec.LeaveEasing != "" {
		fn, ok := utils.EasingByName(ec.LeaveEasing)
		if !ok {
			return t, fmt.Errorf("unknown leaveEasing %q", ec.LeaveEasing)
		}
		t.LeaveEasing = fn
	}
	return t, nil
}

// newWeapon 按配置创建武器
func newWeapon(wc config.WeaponConfig, c clock.Source, bullets *weapon.BulletPool, rng *rand.Rand) (weapon.Weapon, error) {
	switch wc.Type {
	case config.WeaponSingle:
		return weapon.NewSingleBullet(c, bullets, wc.FireRate, wc.BulletSpeed), nil
	case config.WeaponTwin:
		return weapon.NewTwinShot(c, bullets, wc.FireRate, wc.BulletSpeed), nil
	case config.WeaponScatter:
		return weapon.NewScatterShot(c, bullets, wc.FireRate, wc.BulletSpeed, rng), nil
	default:
		return nil, fmt.Errorf("unknown weapon type %q", wc.Type)
	}
}

// newEnemyWeapons 每个敌机槽位一把武器，共用敌方子弹池
func newEnemyWeapons(n int, wc config.WeaponConfig, c clock.Source, bullets *weapon.BulletPool, rng *rand.Rand) ([]weapon.Weapon, error) {
	weapons := make([]weapon.Weapon, n)
	for i := range weapons {
		w, err := newWeapon(wc, c, bullets, rng)
		if err != nil {
			return nil, fmt.Errorf("enemy weapon: %w", err)
		}
		weapons[i] = w
	}
	return weapons, nil
}

func playfield(cfg *config.LevelConfig) components.Rect {
	return components.Rect{W: cfg.Playfield.Width, H: cfg.Playfield.Height}
}

func playerConfig(pc config.PlayerConfig) entities.PlayerConfig {
	return entities.PlayerConfig{
		Lives:        pc.Lives,
		Speed:        pc.Speed,
		RestartDelay: pc.RestartDelay,
	}
}

// sceneEffects 爆炸同时产生粒子和音效
type sceneEffects struct {
	particles *systems.ParticleSystem
	sounds    *game.AudioManager
}

// Explode 实现 behavior.Effects 接口
func (e *sceneEffects) Explode(x, y, w, h float64) {
	e.particles.Explode(x, y, w, h)
	e.sounds.Play(game.SoundExplosion)
}

// soundWeapon 玩家武器每次真正射出子弹时播放音效
type soundWeapon struct {
	weapon.Weapon
	sounds *game.AudioManager
}

// Fire 实现 weapon.Weapon 接口
func (w *soundWeapon) Fire(x, y, angleDeg float64) int {
	n := w.Weapon.Fire(x, y, angleDeg)
	if n > 0 {
		w.sounds.Play(game.SoundShot)
	}
	return n
}
