package game

// GameState 一局游戏的计分状态
// 由 GameplayScene 持有，重开关卡时调用 Reset
type GameState struct {
	Score            int  // 当前得分
	HighScore        int  // 最高分（含本局）
	Lives            int  // 玩家剩余的额外生命
	Waves            int  // 已触发的编队数
	EnemiesDestroyed int  // 本局击毁的敌机数
	GameOver         bool // 玩家已没有生命

	newHighScore bool
}

// NewGameState 创建计分状态，highScore 来自持久化记录
func NewGameState(highScore, lives int) *GameState {
	return &GameState{HighScore: highScore, Lives: lives}
}

// Reset 开始新的一局，保留最高分
func (gs *GameState) Reset(lives int) {
	*gs = GameState{HighScore: gs.HighScore, Lives: lives}
}

// AddScore 加分并更新最高分
func (gs *GameState) AddScore(points int) {
	if points <= 0 {
		return
	}
	gs.Score += points
	if gs.Score > gs.HighScore {
		gs.HighScore = gs.Score
		gs.newHighScore = true
	}
}

// AddKills 记录击毁数
func (gs *GameState) AddKills(n int) {
	if n > 0 {
		gs.EnemiesDestroyed += n
	}
}

// SetWaves 记录已触发的编队数
func (gs *GameState) SetWaves(n int) {
	gs.Waves = n
}

// SetLives 同步玩家剩余生命，dead 为 true 时本局结束
func (gs *GameState) SetLives(lives int, dead bool) {
	gs.Lives = lives
	gs.GameOver = dead
}

// IsNewHighScore 本局是否刷新了最高分
func (gs *GameState) IsNewHighScore() bool {
	return gs.newHighScore
}
