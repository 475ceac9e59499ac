package systems

import (
	"errors"
	"log"

	"github.com/decker502/skyraid/pkg/ecs"
	"github.com/decker502/skyraid/pkg/enemy"
	"github.com/decker502/skyraid/pkg/entities"
	"github.com/decker502/skyraid/pkg/weapon"
)

// ScorePerEnemy 击毁一架敌机的得分
const ScorePerEnemy = 10

// CollisionResult 一帧的碰撞结果，由场景写入 GameState
type CollisionResult struct {
	EnemiesDestroyed int
	PlayerHit        bool
	Score            int
}

// CollisionSystem 轴对齐包围盒碰撞检测
//
// 三组检测，顺序固定：
//  1. 玩家与敌机：双方都被击毁
//  2. 玩家与敌方子弹：玩家被击毁，子弹回收
//  3. 敌机与玩家子弹：子弹回收；敌机已经进入场地（Y > 0）时才受伤害
//
// 玩家只有在 Playing 状态下参与碰撞。
type CollisionSystem struct {
	player        *entities.Player
	enemies       *enemy.Pool
	playerBullets *weapon.BulletPool
	enemyBullets  *weapon.BulletPool
	verbose       bool
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(player *entities.Player, enemies *enemy.Pool, playerBullets, enemyBullets *weapon.BulletPool) *CollisionSystem {
	return &CollisionSystem{
		player:        player,
		enemies:       enemies,
		playerBullets: playerBullets,
		enemyBullets:  enemyBullets,
	}
}

// SetVerbose 打开命中日志
func (s *CollisionSystem) SetVerbose(verbose bool) {
	s.verbose = verbose
}

// Update 执行一帧碰撞检测
// 敌机切换到 Exploding 失败时返回错误，其余检测照常进行
func (s *CollisionSystem) Update() (CollisionResult, error) {
	var result CollisionResult
	var errs []error

	s.playerVsEnemies(&result, &errs)
	s.playerVsBullets(&result)
	s.enemiesVsBullets(&result, &errs)

	return result, errors.Join(errs...)
}

func (s *CollisionSystem) playerVsEnemies(result *CollisionResult, errs *[]error) {
	if s.player == nil || s.enemies == nil {
		return
	}
	s.enemies.Each(func(e *enemy.Enemy) {
		if !s.player.Vulnerable() || !e.IsAlive() {
			return
		}
		if !s.player.Bounds().Intersects(e.Bounds()) {
			return
		}
		s.player.Hit()
		result.PlayerHit = true
		destroyed, err := e.Hit(e.Health.CurrentHealth)
		if err != nil {
			*errs = append(*errs, err)
		}
		if destroyed {
			result.EnemiesDestroyed++
		}
		if s.verbose {
			log.Printf("[CollisionSystem] player rammed enemy #%d at (%.1f, %.1f)", e.Handle().Index, e.X, e.Y)
		}
	})
}

func (s *CollisionSystem) playerVsBullets(result *CollisionResult) {
	if s.player == nil || s.enemyBullets == nil {
		return
	}
	s.enemyBullets.Each(func(h ecs.Handle, b *weapon.Bullet) {
		if !s.player.Vulnerable() {
			return
		}
		if !s.player.Bounds().Intersects(b.Bounds()) {
			return
		}
		s.player.Hit()
		s.enemyBullets.Kill(h)
		result.PlayerHit = true
		if s.verbose {
			log.Printf("[CollisionSystem] player hit by bullet at (%.1f, %.1f)", b.X, b.Y)
		}
	})
}

func (s *CollisionSystem) enemiesVsBullets(result *CollisionResult, errs *[]error) {
	if s.enemies == nil || s.playerBullets == nil {
		return
	}
	s.enemies.Each(func(e *enemy.Enemy) {
		if !e.IsAlive() {
			return
		}
		box := e.Bounds()
		s.playerBullets.Each(func(h ecs.Handle, b *weapon.Bullet) {
			if !e.IsAlive() || !box.Intersects(b.Bounds()) {
				return
			}
			s.playerBullets.Kill(h)
			// 还在屏幕上方的敌机不会被击毁
			if e.Y <= 0 {
				return
			}
			destroyed, err := e.Hit(b.Damage)
			if err != nil {
				*errs = append(*errs, err)
			}
			if destroyed {
				result.EnemiesDestroyed++
				result.Score += ScorePerEnemy
				if s.verbose {
					log.Printf("[CollisionSystem] enemy #%d destroyed at (%.1f, %.1f)", e.Handle().Index, e.X, e.Y)
				}
			}
		})
	})
}
