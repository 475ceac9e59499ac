package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/decker502/skyraid/pkg/utils"
)

// Records 跨局保存的成绩
type Records struct {
	HighScore   int `yaml:"highScore"`   // 最高分
	GamesPlayed int `yaml:"gamesPlayed"` // 已结束的局数
	BestWave    int `yaml:"bestWave"`    // 单局最多触发的编队数
	MostKills   int `yaml:"mostKills"`   // 单局最多击毁数
}

// RecordManager 成绩管理器
// 负责成绩的加载、保存和内存管理
type RecordManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	records      Records
}

// 存储路径常量
const (
	recordsObject   = "records"
	recordsProperty = "global"
)

// OpenStorage 打开 appName 对应的 gdata 存储
//
// 打开失败时返回 nil，调用方以降级模式运行（成绩只保存在内存中）
func OpenStorage(appName string) *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[RecordManager] Warning: Failed to prepare storage dir: %v", err)
	}
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[RecordManager] Warning: Failed to open storage: %v (records will not persist)", err)
		return nil
	}
	return manager
}

// NewRecordManager 创建成绩管理器
//
// 参数：
//   - gdataManager: gdata 存储管理器，可为 nil（降级模式，仅内存成绩）
func NewRecordManager(gdataManager *gdata.Manager) *RecordManager {
	rm := &RecordManager{gdataManager: gdataManager}
	if err := rm.Load(); err != nil {
		// 加载失败不是致命错误，从零开始
		log.Printf("[RecordManager] Warning: Failed to load records: %v (starting fresh)", err)
	}
	return rm
}

// Load 从 gdata 加载成绩
// gdataManager 为 nil 或没有存档时成绩清零
func (rm *RecordManager) Load() error {
	rm.records = Records{}
	if rm.gdataManager == nil {
		return nil
	}
	if !rm.gdataManager.ObjectPropExists(recordsObject, recordsProperty) {
		return nil
	}

	data, err := rm.gdataManager.LoadObjectProp(recordsObject, recordsProperty)
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}

	var loaded Records
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal records: %w", err)
	}
	rm.records = loaded
	return nil
}

// Save 保存成绩到 gdata
// gdataManager 为 nil 时直接返回 nil（降级模式，不报错）
func (rm *RecordManager) Save() error {
	if rm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(&rm.records)
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}
	if err := rm.gdataManager.SaveObjectProp(recordsObject, recordsProperty, data); err != nil {
		return fmt.Errorf("failed to save records: %w", err)
	}

	log.Printf("[RecordManager] Records saved: high score %d", rm.records.HighScore)
	return nil
}

// Records 返回当前成绩
func (rm *RecordManager) Records() Records {
	return rm.records
}

// SubmitGame 合并一局的结果并保存，返回是否刷新了最高分
func (rm *RecordManager) SubmitGame(gs *GameState) (bool, error) {
	rm.records.GamesPlayed++
	improved := gs.Score > rm.records.HighScore
	if improved {
		rm.records.HighScore = gs.Score
	}
	rm.records.BestWave = max(rm.records.BestWave, gs.Waves)
	rm.records.MostKills = max(rm.records.MostKills, gs.EnemiesDestroyed)
	return improved, rm.Save()
}
