package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/skyraid/pkg/clock"
	"github.com/decker502/skyraid/pkg/config"
	"github.com/decker502/skyraid/pkg/enemy"
	"github.com/decker502/skyraid/pkg/entities"
	"github.com/decker502/skyraid/pkg/game"
	"github.com/decker502/skyraid/pkg/spawner"
	"github.com/decker502/skyraid/pkg/systems"
	"github.com/decker502/skyraid/pkg/tween"
	"github.com/decker502/skyraid/pkg/weapon"
)

// Options 场景的外部依赖
type Options struct {
	// Input 玩家输入，nil 时玩家不移动也不射击（无头模拟）
	Input entities.PlayerInput
	// Records 成绩管理器，nil 时不保存成绩
	Records *game.RecordManager
	// Sounds 音效，nil 时静音
	Sounds  *game.AudioManager
	Verbose bool
}

// GameplayScene 一个关卡的完整游戏过程
//
// 每帧的顺序固定：推进时钟，补间，生成器，敌机，玩家，子弹，粒子，碰撞。
// 补间先于敌机更新，所以敌机在同一帧内就能看到补间完成。
// 配置错误只记录日志，不会终止游戏循环。
type GameplayScene struct {
	cfg  *config.LevelConfig
	opts Options

	clock     *clock.Clock
	tweens    *tween.Manager
	particles *systems.ParticleSystem
	bullets   *systems.BulletSystem
	collision *systems.CollisionSystem

	playerBullets *weapon.BulletPool
	enemyBullets  *weapon.BulletPool
	enemies       *enemy.Pool
	player        *entities.Player
	spawner       *spawner.Spawner

	state     *game.GameState
	submitted bool
	showDebug bool
	errCount  int
}

// NewGameplayScene 按关卡配置创建场景并启动生成器
func NewGameplayScene(cfg *config.LevelConfig, opts Options) (*GameplayScene, error) {
	if cfg == nil {
		return nil, fmt.Errorf("level config cannot be nil")
	}
	rng := newRand(cfg.Seed)
	bounds := playfield(cfg)

	s := &GameplayScene{
		cfg:           cfg,
		opts:          opts,
		clock:         clock.New(0),
		particles:     systems.NewParticleSystem(15*(cfg.EnemyPoolSize+1), rng),
		playerBullets: weapon.NewBulletPool(cfg.BulletPoolSize, playerBulletWidth, playerBulletHeight),
		enemyBullets:  weapon.NewBulletPool(cfg.BulletPoolSize, enemyBulletWidth, enemyBulletHeight),
	}
	s.tweens = tween.NewManager(s.clock)
	s.bullets = systems.NewBulletSystem(bounds, s.playerBullets, s.enemyBullets)
	s.particles.SetVerbose(opts.Verbose)

	tuning, err := tuningFromConfig(cfg.Enemy)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", cfg.ID, err)
	}
	effects := &sceneEffects{particles: s.particles, sounds: opts.Sounds}
	s.enemies = enemy.NewPool(cfg.EnemyPoolSize, enemy.Deps{
		Clock:   s.clock,
		Tweens:  s.tweens,
		Effects: effects,
		Bounds:  bounds,
		Tuning:  tuning,
		Rand:    rng,
		Verbose: opts.Verbose,
	})

	enemyWeapons, err := newEnemyWeapons(s.enemies.Cap(), cfg.EnemyWeapon, s.clock, s.enemyBullets, rng)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", cfg.ID, err)
	}
	playerWeapon, err := newWeapon(cfg.Player.Weapon, s.clock, s.playerBullets, rng)
	if err != nil {
		return nil, fmt.Errorf("level %s: player weapon: %w", cfg.ID, err)
	}

	playerWeapon = &soundWeapon{Weapon: playerWeapon, sounds: opts.Sounds}
	s.player = entities.NewPlayer(s.clock, playerWeapon, effects, bounds, playerConfig(cfg.Player))
	s.player.SetVerbose(opts.Verbose)
	s.collision = systems.NewCollisionSystem(s.player, s.enemies, s.playerBullets, s.enemyBullets)
	s.collision.SetVerbose(opts.Verbose)

	ctx := &spawner.Context{
		Enemies: s.enemies,
		Target:  s.player,
		Bounds:  bounds,
		Weapons: func(slot int) weapon.Weapon { return enemyWeapons[slot] },
		Rand:    rng,
		Verbose: opts.Verbose,
	}
	schedule, err := spawner.NewSchedule(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", cfg.ID, err)
	}
	s.spawner = spawner.New(s.clock, schedule)
	s.spawner.SetVerbose(opts.Verbose)

	highScore := 0
	if opts.Records != nil {
		highScore = opts.Records.Records().HighScore
	}
	s.state = game.NewGameState(highScore, cfg.Player.Lives)

	s.player.Start()
	if err := s.spawner.Start(); err != nil {
		return nil, fmt.Errorf("level %s: %w", cfg.ID, err)
	}

	log.Printf("[GameplayScene] level %s (%s) ready: %.0fx%.0f, %d enemies, spawner=%s",
		cfg.ID, cfg.Name, bounds.W, bounds.H, s.enemies.Cap(), cfg.Spawner.Type)
	return s, nil
}

// Update 实现 game.Scene 接口
func (s *GameplayScene) Update(deltaMs float64) {
	s.clock.Advance(deltaMs)
	s.tweens.Update()

	if err := s.spawner.Update(); err != nil {
		s.logError("spawner", err)
	}
	if err := s.enemies.UpdateAll(); err != nil {
		s.logError("enemies", err)
	}

	s.player.Update(deltaMs, s.opts.Input)
	s.bullets.Update(deltaMs)
	s.particles.Update(deltaMs)

	result, err := s.collision.Update()
	if err != nil {
		s.logError("collision", err)
	}
	s.applyCollisions(result)
}

func (s *GameplayScene) applyCollisions(result systems.CollisionResult) {
	s.state.AddScore(result.Score)
	s.state.AddKills(result.EnemiesDestroyed)
	s.state.SetWaves(s.spawner.Spawned())
	s.state.SetLives(s.player.Lives(), s.player.IsDead())

	if s.state.GameOver && !s.submitted {
		s.submitted = true
		log.Printf("[GameplayScene] game over: score %d, waves %d, kills %d",
			s.state.Score, s.state.Waves, s.state.EnemiesDestroyed)
		s.submitRecords()
	}
}

func (s *GameplayScene) submitRecords() bool {
	if s.opts.Records == nil {
		return true
	}
	improved, err := s.opts.Records.SubmitGame(s.state)
	if err != nil {
		log.Printf("[GameplayScene] Warning: failed to save records: %v", err)
		return false
	}
	if improved {
		log.Printf("[GameplayScene] new high score: %d", s.state.Score)
	}
	return true
}

// logError 记录配置错误，游戏继续运行
func (s *GameplayScene) logError(source string, err error) {
	s.errCount++
	log.Printf("[GameplayScene] %s error at t=%.0f: %v", source, s.clock.Now(), err)
}

// SaveOnExit 实现 game.Saveable 接口
// 游戏中途关闭窗口时，本局成绩按已结束处理
func (s *GameplayScene) SaveOnExit() bool {
	if s.submitted || s.state.Score == 0 {
		return true
	}
	s.submitted = true
	return s.submitRecords()
}

// ToggleDebug 切换碰撞盒显示
func (s *GameplayScene) ToggleDebug() {
	s.showDebug = !s.showDebug
}

// SetDebug 设置碰撞盒显示
func (s *GameplayScene) SetDebug(show bool) {
	s.showDebug = show
}

// Debug 是否显示碰撞盒
func (s *GameplayScene) Debug() bool { return s.showDebug }

// CanRestart 玩家没有剩余生命时可以重开
func (s *GameplayScene) CanRestart() bool {
	return s.player.IsDead()
}

// State 计分状态
func (s *GameplayScene) State() *game.GameState { return s.state }

// Player 玩家
func (s *GameplayScene) Player() *entities.Player { return s.player }

// Enemies 敌机池
func (s *GameplayScene) Enemies() *enemy.Pool { return s.enemies }

// Spawner 生成器
func (s *GameplayScene) Spawner() *spawner.Spawner { return s.spawner }

// Particles 粒子系统
func (s *GameplayScene) Particles() *systems.ParticleSystem { return s.particles }

// Clock 模拟时钟
func (s *GameplayScene) Clock() clock.Source { return s.clock }

// Errors 累计的配置错误次数
func (s *GameplayScene) Errors() int { return s.errCount }

// Level 关卡配置
func (s *GameplayScene) Level() *config.LevelConfig { return s.cfg }
