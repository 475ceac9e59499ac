package config

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// 生成器类型
const (
	SpawnerFixed  = "fixed"  // 按波次表生成
	SpawnerRandom = "random" // 波次表之后按间隔随机生成
	SpawnerScript = "script" // 由 tengo 脚本生成波次表
)

// 武器类型
const (
	WeaponSingle  = "single"
	WeaponTwin    = "twin"
	WeaponScatter = "scatter"
)

// LevelConfig 关卡配置数据结构
// 定义了场地尺寸、对象池容量、敌机参数和波次表
type LevelConfig struct {
	ID             string        `yaml:"id"`             // 关卡ID，如 "1-1"
	Name           string        `yaml:"name"`           // 关卡名称
	Description    string        `yaml:"description"`    // 关卡描述（可选）
	Playfield      Playfield     `yaml:"playfield"`      // 场地尺寸，默认 240x320
	EnemyPoolSize  int           `yaml:"enemyPoolSize"`  // 敌机池容量，默认 5
	BulletPoolSize int           `yaml:"bulletPoolSize"` // 每一方子弹池容量，默认 128
	Seed           int64         `yaml:"seed"`           // 随机种子，0 表示按时间取种
	Spawner        SpawnerConfig `yaml:"spawner"`        // 生成器配置
	Waves          []WaveConfig  `yaml:"waves"`          // 波次表
	Enemy          EnemyConfig   `yaml:"enemy"`          // 敌机参数
	EnemyWeapon    WeaponConfig  `yaml:"enemyWeapon"`    // 敌机武器
	Player         PlayerConfig  `yaml:"player"`         // 玩家参数
}

// Playfield 场地尺寸（像素）
type Playfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SpawnerConfig 生成器配置
type SpawnerConfig struct {
	Type       string  `yaml:"type"`       // "fixed" / "random" / "script"，默认 "fixed"
	Interval   float64 `yaml:"interval"`   // random：波次表耗尽后每隔多久追加一组（毫秒），默认 6000
	Script     string  `yaml:"script"`     // script：内联 tengo 源码
	ScriptFile string  `yaml:"scriptFile"` // script：相对关卡文件的脚本路径，加载时读入 Script
}

// WaveConfig 单个波次
type WaveConfig struct {
	At    float64 `yaml:"at"`    // 相对关卡开始的时间（毫秒）
	Group string  `yaml:"group"` // 编队类型："three_ships", "solo"
	Mode  string  `yaml:"mode"`  // 编队方向："left" / "right"，默认 "left"
}

// EnemyConfig 敌机参数，零值表示使用默认值
type EnemyConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Health        int     `yaml:"health"`
	StartDuration float64 `yaml:"startDuration"` // 入场补间时长（毫秒）
	StartEasing   string  `yaml:"startEasing"`   // 入场缓动名称，默认 backInOut
	LeaveDuration float64 `yaml:"leaveDuration"` // 离场补间时长（毫秒）
	LeaveEasing   string  `yaml:"leaveEasing"`   // 离场缓动名称，默认 backInOut
	FireRate      float64 `yaml:"fireRate"`      // 攻击间隔（毫秒）
	FireJitter    float64 `yaml:"fireJitter"`    // 攻击间隔随机放大系数 [0, 1]
	MaxShots      int     `yaml:"maxShots"`      // 超过该次数后离场
	Dwell         float64 `yaml:"dwell"`         // 到达后停留时间（毫秒）
	AttackTimeout float64 `yaml:"attackTimeout"` // 攻击状态最长时间（毫秒），0 表示不限
	ExplodeDwell  float64 `yaml:"explodeDwell"`  // 爆炸停留时间（毫秒）
}

// WeaponConfig 武器参数
type WeaponConfig struct {
	Type        string  `yaml:"type"`        // "single" / "twin" / "scatter"
	FireRate    float64 `yaml:"fireRate"`    // 冷却（毫秒）
	BulletSpeed float64 `yaml:"bulletSpeed"` // 像素/秒
}

// PlayerConfig 玩家参数
type PlayerConfig struct {
	Lives        int          `yaml:"lives"`        // 额外生命数，默认 2
	Speed        float64      `yaml:"speed"`        // 移动速度（像素/秒），默认 180
	RestartDelay float64      `yaml:"restartDelay"` // 被击毁到重生的时间（毫秒），默认 1500
	Weapon       WeaponConfig `yaml:"weapon"`       // 玩家武器，默认 twin / 200ms
}

// LoadLevelConfig 从YAML文件加载关卡配置
// scriptFile 相对关卡文件所在目录解析
func LoadLevelConfig(filePath string) (*LevelConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read level config file %s: %w", filePath, err)
	}

	levelConfig, err := ParseLevelConfig(data, filePath)
	if err != nil {
		return nil, err
	}

	if levelConfig.Spawner.ScriptFile != "" && levelConfig.Spawner.Script == "" {
		scriptPath := filepath.Join(filepath.Dir(filePath), levelConfig.Spawner.ScriptFile)
		src, err := os.ReadFile(scriptPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read spawner script %s: %w", scriptPath, err)
		}
		levelConfig.Spawner.Script = string(src)
	}

	return levelConfig, nil
}

// LoadLevelConfigFS 从文件系统（通常是嵌入资源）加载关卡配置
func LoadLevelConfigFS(fsys fs.FS, name string) (*LevelConfig, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read level config file %s: %w", name, err)
	}

	levelConfig, err := ParseLevelConfig(data, name)
	if err != nil {
		return nil, err
	}

	if levelConfig.Spawner.ScriptFile != "" && levelConfig.Spawner.Script == "" {
		scriptPath := path.Join(path.Dir(name), levelConfig.Spawner.ScriptFile)
		src, err := fs.ReadFile(fsys, scriptPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read spawner script %s: %w", scriptPath, err)
		}
		levelConfig.Spawner.Script = string(src)
	}

	return levelConfig, nil
}

// ParseLevelConfig 解析关卡配置，source 仅用于错误信息
func ParseLevelConfig(data []byte, source string) (*LevelConfig, error) {
	var levelConfig LevelConfig
	if err := yaml.Unmarshal(data, &levelConfig); err != nil {
		return nil, fmt.Errorf("failed to parse level config YAML from %s: %w", source, err)
	}

	// 应用默认值
	applyDefaults(&levelConfig)

	// 验证必填字段
	if err := validateLevelConfig(&levelConfig); err != nil {
		return nil, fmt.Errorf("invalid level config in %s: %w", source, err)
	}

	return &levelConfig, nil
}

// applyDefaults 为未配置的字段设置默认值
func applyDefaults(config *LevelConfig) {
	if config.Playfield.Width == 0 {
		config.Playfield.Width = DefaultPlayfieldWidth
	}
	if config.Playfield.Height == 0 {
		config.Playfield.Height = DefaultPlayfieldHeight
	}
	if config.EnemyPoolSize == 0 {
		config.EnemyPoolSize = DefaultEnemyPoolSize
	}
	if config.BulletPoolSize == 0 {
		config.BulletPoolSize = DefaultBulletPoolSize
	}

	if config.Spawner.Type == "" {
		config.Spawner.Type = SpawnerFixed
	}
	if config.Spawner.Interval == 0 {
		config.Spawner.Interval = DefaultSpawnInterval
	}

	for i := range config.Waves {
		if config.Waves[i].Mode == "" {
			config.Waves[i].Mode = "left"
		}
	}

	if config.EnemyWeapon.Type == "" {
		config.EnemyWeapon.Type = WeaponSingle
	}
	if config.EnemyWeapon.BulletSpeed == 0 {
		config.EnemyWeapon.BulletSpeed = DefaultEnemyBulletSpeed
	}

	if config.Player.Lives == 0 {
		config.Player.Lives = DefaultPlayerLives
	}
	if config.Player.Speed == 0 {
		config.Player.Speed = DefaultPlayerSpeed
	}
	if config.Player.RestartDelay == 0 {
		config.Player.RestartDelay = DefaultRestartDelay
	}
	if config.Player.Weapon.Type == "" {
		config.Player.Weapon.Type = WeaponTwin
	}
	if config.Player.Weapon.FireRate == 0 {
		config.Player.Weapon.FireRate = DefaultPlayerFireRate
	}

	// Enemy 的零值字段交给 enemy.DefaultTuning，这里不处理
}

// validateLevelConfig 验证配置的有效性
func validateLevelConfig(config *LevelConfig) error {
	if config.ID == "" {
		return fmt.Errorf("level ID is required")
	}

	if config.Playfield.Width < 0 || config.Playfield.Height < 0 {
		return fmt.Errorf("playfield size cannot be negative, got %vx%v", config.Playfield.Width, config.Playfield.Height)
	}

	if config.EnemyPoolSize < 0 {
		return fmt.Errorf("enemyPoolSize cannot be negative, got %d", config.EnemyPoolSize)
	}
	if config.BulletPoolSize < 0 {
		return fmt.Errorf("bulletPoolSize cannot be negative, got %d", config.BulletPoolSize)
	}

	switch config.Spawner.Type {
	case SpawnerFixed:
		if len(config.Waves) == 0 {
			return fmt.Errorf("at least one wave is required for a fixed spawner")
		}
	case SpawnerRandom:
		if config.Spawner.Interval < 0 {
			return fmt.Errorf("spawner interval cannot be negative, got %v", config.Spawner.Interval)
		}
	case SpawnerScript:
		if config.Spawner.Script == "" && config.Spawner.ScriptFile == "" {
			return fmt.Errorf("script spawner requires script or scriptFile")
		}
	default:
		return fmt.Errorf("spawner type must be one of: fixed, random, script, got %q", config.Spawner.Type)
	}

	for i, wave := range config.Waves {
		if wave.At < 0 {
			return fmt.Errorf("wave %d: at cannot be negative", i)
		}
		if !validGroups[wave.Group] {
			return fmt.Errorf("wave %d: group must be one of: three_ships, solo, got %q", i, wave.Group)
		}
		if wave.Mode != "left" && wave.Mode != "right" {
			return fmt.Errorf("wave %d: mode must be left or right, got %q", i, wave.Mode)
		}
	}

	if config.Enemy.FireJitter < 0 || config.Enemy.FireJitter > 1 {
		return fmt.Errorf("enemy fireJitter must be between 0 and 1, got %v", config.Enemy.FireJitter)
	}
	if config.Enemy.MaxShots < 0 {
		return fmt.Errorf("enemy maxShots cannot be negative, got %d", config.Enemy.MaxShots)
	}

	if err := validateWeapon("enemyWeapon", config.EnemyWeapon); err != nil {
		return err
	}
	if err := validateWeapon("player.weapon", config.Player.Weapon); err != nil {
		return err
	}

	if config.Player.Lives < 0 {
		return fmt.Errorf("player lives cannot be negative, got %d", config.Player.Lives)
	}

	return nil
}

var validGroups = map[string]bool{
	"three_ships": true,
	"solo":        true,
}

func validateWeapon(field string, w WeaponConfig) error {
	switch w.Type {
	case WeaponSingle, WeaponTwin, WeaponScatter:
	default:
		return fmt.Errorf("%s: type must be one of: single, twin, scatter, got %q", field, w.Type)
	}
	if w.FireRate < 0 {
		return fmt.Errorf("%s: fireRate cannot be negative, got %v", field, w.FireRate)
	}
	if w.BulletSpeed < 0 {
		return fmt.Errorf("%s: bulletSpeed cannot be negative, got %v", field, w.BulletSpeed)
	}
	return nil
}
