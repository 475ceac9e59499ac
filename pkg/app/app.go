// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/skyraid/pkg/config"
	"github.com/decker502/skyraid/pkg/embedded"
	"github.com/decker502/skyraid/pkg/game"
	"github.com/decker502/skyraid/pkg/scenes"
)

// 固定步长（毫秒），与 Ebitengine 默认 TPS 一致
const tickMs = 1000.0 / 60.0

// AppName gdata 存储使用的应用名
const AppName = "skyraid"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// LevelPath 磁盘上的关卡文件，为空则使用嵌入的默认关卡
	LevelPath string
	// Watch 监听 LevelPath 所在目录，关卡或脚本变化时重新开始
	Watch bool
	// Seed 覆盖关卡中的随机种子，0 表示不覆盖
	Seed int64
	// NoRecords 不读写成绩和设置存档
	NoRecords bool
	// NoSound 不创建音频上下文
	NoSound bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	records      *game.RecordManager
	settings     *game.SettingsManager
	sounds       *game.AudioManager
	watcher      *config.Watcher
	input        *KeyboardInput
	cfg          Config
	width        int
	height       int
}

// NewApp 创建并初始化游戏应用
//
// 使用嵌入的关卡时，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	level, err := loadLevel(cfg)
	if err != nil {
		return nil, err
	}

	// 成绩和设置共用同一个存储，打开失败时都降级为仅内存
	var storage *gdata.Manager
	if !cfg.NoRecords {
		storage = game.OpenStorage(AppName)
	}
	settings := game.NewSettingsManager(storage)

	var audioContext *audio.Context
	if !cfg.NoSound {
		audioContext = audio.NewContext(game.SampleRate)
	}

	a := &App{
		sceneManager: game.NewSceneManager(),
		records:      game.NewRecordManager(storage),
		settings:     settings,
		sounds:       game.NewAudioManager(audioContext, settings),
		input:        &KeyboardInput{},
		cfg:          cfg,
	}
	a.sceneManager.SetSceneFactory(func(lc *config.LevelConfig) (game.Scene, error) {
		scene, err := scenes.NewGameplayScene(lc, scenes.Options{
			Input:   a.input,
			Records: a.records,
			Sounds:  a.sounds,
			Verbose: cfg.Verbose,
		})
		if err != nil {
			return nil, err
		}
		scene.SetDebug(a.settings.GetSettings().ShowHitboxes)
		return scene, nil
	})
	if settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}
	if err := a.switchLevel(level); err != nil {
		return nil, err
	}

	if cfg.Watch && cfg.LevelPath != "" {
		dir := filepath.Dir(cfg.LevelPath)
		w, err := config.NewWatcher(dir)
		if err != nil {
			// 热重载不可用不影响游戏
			log.Printf("[App] Warning: Failed to watch %s: %v", dir, err)
		} else {
			a.watcher = w
			log.Printf("[App] Watching %s for level changes", dir)
		}
	}

	return a, nil
}

// loadLevel 按配置从磁盘或嵌入资源加载关卡
func loadLevel(cfg Config) (*config.LevelConfig, error) {
	var (
		level *config.LevelConfig
		err   error
	)
	if cfg.LevelPath != "" {
		level, err = config.LoadLevelConfig(cfg.LevelPath)
	} else {
		if !embedded.IsInitialized() {
			return nil, fmt.Errorf("no level path given and embedded data not initialized")
		}
		level, err = config.LoadLevelConfigFS(embedded.FS(), config.DefaultLevelPath)
	}
	if err != nil {
		return nil, err
	}
	if cfg.Seed != 0 {
		level.Seed = cfg.Seed
	}
	return level, nil
}

// switchLevel 切换到新关卡并按场地大小调整窗口
func (a *App) switchLevel(level *config.LevelConfig) error {
	if err := a.sceneManager.LoadLevel(level); err != nil {
		return err
	}
	a.width = int(level.Playfield.Width)
	a.height = int(level.Playfield.Height)
	return nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	a.pollWatcher()

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		a.settings.SetFullscreen(fullscreen)
	}
	// M 切换音效
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		log.Printf("[App] Sound enabled: %v", a.settings.ToggleSound())
	}

	scene, _ := a.sceneManager.GetCurrentScene().(*scenes.GameplayScene)
	if scene != nil {
		// D 切换碰撞盒显示
		if inpututil.IsKeyJustPressed(ebiten.KeyD) {
			scene.ToggleDebug()
			a.settings.SetShowHitboxes(scene.Debug())
		}
		// T 在游戏结束后重开
		if inpututil.IsKeyJustPressed(ebiten.KeyT) && scene.CanRestart() {
			log.Printf("[App] Restarting level")
			if err := a.sceneManager.Reload(); err != nil {
				log.Printf("[App] Failed to restart: %v", err)
			}
		}
	}

	a.input.Poll(a.width, a.height)
	a.sceneManager.Update(tickMs)
	return nil
}

// pollWatcher 处理文件变化，在帧之间重新加载关卡
func (a *App) pollWatcher() {
	if a.watcher == nil {
		return
	}
	select {
	case err := <-a.watcher.Errors:
		if err != nil {
			log.Printf("[App] Watcher error: %v", err)
		}
	default:
	}

	name, ok := a.watcher.Poll()
	if !ok {
		return
	}
	log.Printf("[App] %s changed, reloading level", name)
	level, err := loadLevel(a.cfg)
	if err != nil {
		// 保留当前关卡，等下一次修改
		log.Printf("[App] Reload failed: %v", err)
		return
	}
	if err := a.switchLevel(level); err != nil {
		log.Printf("[App] Reload failed: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 放大时使用最近邻采样，保持像素风格
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// Size 当前关卡的逻辑屏幕尺寸
func (a *App) Size() (int, int) {
	return a.width, a.height
}

// Close 停止文件监听并保存成绩和设置
func (a *App) Close() error {
	a.sceneManager.SaveOnExit()
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Failed to save settings: %v", err)
	}
	if a.watcher != nil {
		return a.watcher.Close()
	}
	return nil
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.cfg.Verbose
}
