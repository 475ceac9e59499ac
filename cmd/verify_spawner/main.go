// verify_spawner 无界面运行一个关卡，打印生成器和敌机状态
//
// 用法：
//
//	go run ./cmd/verify_spawner -level data/levels/level_2.yaml -duration 60
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/skyraid/pkg/config"
	"github.com/decker502/skyraid/pkg/enemy"
	"github.com/decker502/skyraid/pkg/scenes"
	"github.com/decker502/skyraid/pkg/state"
)

// 模拟步长（毫秒）
const stepMs = 16.0

var (
	verbose   = flag.Bool("verbose", false, "显示详细调试信息")
	levelPath = flag.String("level", "data/levels/level_1.yaml", "关卡文件路径")
	duration  = flag.Float64("duration", 30, "模拟时长（秒）")
	seed      = flag.Int64("seed", 1, "随机种子（0 表示使用关卡配置）")
	interval  = flag.Float64("report", 1, "打印间隔（秒）")
)

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	level, err := config.LoadLevelConfig(*levelPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载关卡失败: %v\n", err)
		os.Exit(1)
	}
	if *seed != 0 {
		level.Seed = *seed
	}

	// 没有输入：玩家停在入场位置，不射击
	scene, err := scenes.NewGameplayScene(level, scenes.Options{Verbose: *verbose})
	if err != nil {
		fmt.Fprintf(os.Stderr, "创建场景失败: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("=== 关卡 %s (%s) ===\n", level.ID, level.Name)
	fmt.Printf("生成器: %s, 敌机池: %d, 待执行动作: %d\n\n",
		level.Spawner.Type, level.EnemyPoolSize, scene.Spawner().Pending())
	fmt.Printf("%8s %6s %6s %6s %6s %6s %6s %6s %6s\n",
		"time", "spawn", "pend", "start", "attack", "leave", "boom", "parts", "lives")

	totalMs := *duration * 1000
	reportMs := *interval * 1000
	nextReport := 0.0
	for elapsed := 0.0; elapsed <= totalMs; elapsed += stepMs {
		scene.Update(stepMs)
		if elapsed < nextReport {
			continue
		}
		nextReport += reportMs
		printRow(scene)
	}

	st := scene.State()
	fmt.Printf("\n--- 结果 ---\n")
	fmt.Printf("生成动作: %d, 击毁: %d, 得分: %d, 剩余生命: %d, 游戏结束: %v\n",
		scene.Spawner().Spawned(), st.EnemiesDestroyed, st.Score, st.Lives, st.GameOver)
	fmt.Printf("爆炸: %d, 丢弃粒子: %d, 配置错误: %d\n",
		scene.Particles().Bursts(), scene.Particles().Dropped(), scene.Errors())

	if scene.Errors() > 0 {
		os.Exit(1)
	}
}

func printRow(scene *scenes.GameplayScene) {
	var counts [state.TagCount]int
	scene.Enemies().Each(func(e *enemy.Enemy) {
		if tag := e.Current(); tag.Valid() {
			counts[tag]++
		}
	})
	fmt.Printf("%7.1fs %6d %6d %6d %6d %6d %6d %6d %6d\n",
		scene.Clock().Now()/1000,
		scene.Spawner().Spawned(),
		scene.Spawner().Pending(),
		counts[state.Starting],
		counts[state.Attacking],
		counts[state.Leaving],
		counts[state.Exploding],
		scene.Particles().Active(),
		scene.Player().Lives(),
	)
}
