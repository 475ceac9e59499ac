package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/skyraid/pkg/config"
)

// SceneFactory 场景工厂函数类型
// 用于按关卡配置创建场景，避免 game 包依赖 scenes 包
type SceneFactory func(cfg *config.LevelConfig) (Scene, error)

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
	level        *config.LevelConfig
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use LoadLevel or SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Level 返回当前关卡配置
func (sm *SceneManager) Level() *config.LevelConfig {
	return sm.level
}

// LoadLevel 用工厂函数创建关卡场景并切换过去
// 创建成功后才通知旧场景 SaveOnExit；创建失败时保留当前场景，不做保存
func (sm *SceneManager) LoadLevel(cfg *config.LevelConfig) error {
	if sm.sceneFactory == nil {
		return fmt.Errorf("scene factory not set")
	}
	if cfg == nil {
		return fmt.Errorf("level config cannot be nil")
	}

	log.Printf("[SceneManager] 加载关卡: %s", cfg.ID)
	scene, err := sm.sceneFactory(cfg)
	if err != nil {
		return fmt.Errorf("failed to create scene for level %s: %w", cfg.ID, err)
	}
	// 被替换的场景先保存（热重载时提交进行中的成绩）
	if sm.currentScene != nil && !sm.SaveOnExit() {
		log.Printf("[SceneManager] Warning: outgoing scene failed to save")
	}
	sm.level = cfg
	sm.SwitchTo(scene)
	log.Printf("[SceneManager] 成功切换到关卡: %s", cfg.ID)
	return nil
}

// Reload 以当前关卡配置重新开始
func (sm *SceneManager) Reload() error {
	if sm.level == nil {
		return fmt.Errorf("no level loaded")
	}
	return sm.LoadLevel(sm.level)
}

// SaveOnExit 通知当前场景保存状态
func (sm *SceneManager) SaveOnExit() bool {
	if s, ok := sm.currentScene.(Saveable); ok {
		return s.SaveOnExit()
	}
	return true
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaMs float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaMs)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
