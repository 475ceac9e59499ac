package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/skyraid/pkg/app"
	"github.com/decker502/skyraid/pkg/embedded"
)

// 窗口相对逻辑分辨率的放大倍数
const windowScale = 2

var (
	verbose   = flag.Bool("verbose", false, "显示详细调试信息")
	levelPath = flag.String("level", "", "从磁盘加载关卡文件（默认使用内置关卡）")
	watch     = flag.Bool("watch", false, "监听关卡目录，修改后自动重新开始")
	seed      = flag.Int64("seed", 0, "覆盖关卡随机种子（0 表示不覆盖）")
	noRecords = flag.Bool("no-records", false, "不读写成绩和设置存档")
	noSound   = flag.Bool("no-sound", false, "禁用音效")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:   *verbose,
		LevelPath: *levelPath,
		Watch:     *watch,
		Seed:      *seed,
		NoRecords: *noRecords,
		NoSound:   *noSound,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	w, h := gameApp.Size()
	ebiten.SetWindowSize(w*windowScale, h*windowScale)
	ebiten.SetWindowTitle("Sky Raid")

	runErr := ebiten.RunGame(gameApp)
	if err := gameApp.Close(); err != nil {
		log.Printf("关闭失败: %v", err)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}
