package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/vnovel/pkg/app"
	"github.com/decker502/vnovel/pkg/embedded"
)

var (
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
	logFileFlag = flag.String("log-file", "", "Write logs to a rotating file")
	sceneFlag   = flag.String("scene", "", "Start directly at the given scene (skip the title menu)")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（assetsFS 和 dataFS 在 embed.go 中声明）
	embedded.Init(assetsFS, dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		LogFile:    *logFileFlag,
		StartScene: *sceneFlag,
		AllowQuit:  true,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}
	defer gameApp.Close()

	gameApp.ApplyWindowSettings()

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Printf("RunGame error: %v", err)
	}
}
