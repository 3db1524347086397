package main

import (
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/decker502/adventurer/pkg/app"
	"github.com/decker502/adventurer/pkg/config"
	"github.com/decker502/adventurer/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
)

func main() {
	// .env 只提供默认值，不存在时忽略
	_ = godotenv.Load()

	configPath := flag.String("config", envOr("ADVENTURER_CONFIG", config.DefaultCharacterConfigPath), "角色配置文件路径")
	verbose := flag.Bool("verbose", envBool("ADVENTURER_VERBOSE"), "详细日志")
	flag.Parse()

	embedded.Init(assetsFS, dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameWindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(gameApp.GetSettingsManager().GetSettings().Fullscreen)

	runErr := ebiten.RunGame(gameApp)

	if !gameApp.GetSceneManager().SaveOnExit() {
		log.Printf("[Main] 退出时保存设置失败")
	}

	if runErr != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(runErr)
	}
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
