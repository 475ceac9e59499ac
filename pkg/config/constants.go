package config

// 默认值（毫秒 / 像素）
const (
	DefaultPlayfieldWidth   = 240
	DefaultPlayfieldHeight  = 320
	DefaultEnemyPoolSize    = 5
	DefaultBulletPoolSize   = 128
	DefaultSpawnInterval    = 6000
	DefaultEnemyBulletSpeed = 120
	DefaultPlayerLives      = 2
	DefaultPlayerSpeed      = 180
	DefaultRestartDelay     = 1500
	DefaultPlayerFireRate   = 200

	// DefaultLevelPath 嵌入资源中的默认关卡
	DefaultLevelPath = "data/levels/level_1.yaml"
)
