// cmd/adventurer-tui/main.go
// 冒险者角色动画的终端版本
//
// 用法：
//
//	go run ./cmd/adventurer-tui --config=data/adventurer.yaml
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"strconv"

	"github.com/decker502/adventurer/pkg/config"
	"github.com/decker502/adventurer/pkg/tui"
	"github.com/joho/godotenv"
)

func main() {
	// .env 只提供默认值，不存在时忽略
	_ = godotenv.Load()

	configPath := flag.String("config", envOr("ADVENTURER_CONFIG", config.DefaultCharacterConfigPath), "角色配置文件路径")
	logPath := flag.String("log", "", "日志文件路径(终端被界面占用，日志只能写入文件)")
	verbose := flag.Bool("verbose", envBool("ADVENTURER_VERBOSE"), "详细日志")
	flag.Parse()

	logFile, err := setupLogging(*verbose, *logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "日志初始化失败: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.LoadCharacterConfig(*configPath)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("[Main] 配置文件 %s 不存在，使用默认角色配置", *configPath)
		cfg, err = config.DefaultCharacterConfig(), nil
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "角色配置无效: %v\n", err)
		os.Exit(1)
	}

	game, err := tui.NewGame(cfg, tui.NewKeyState(tui.DefaultHoldWindow))
	if err != nil {
		fmt.Fprintf(os.Stderr, "游戏初始化失败: %v\n", err)
		os.Exit(1)
	}

	screen, err := tui.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "终端初始化失败: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	runErr := game.Run(ctx, screen)
	stop()
	screen.Close()

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		fmt.Fprintf(os.Stderr, "运行错误: %v\n", runErr)
		os.Exit(1)
	}
}

// setupLogging 非 verbose 时丢弃日志；verbose 时写入日志文件
func setupLogging(verbose bool, path string) (*os.File, error) {
	if !verbose {
		log.SetOutput(io.Discard)
		return nil, nil
	}
	if path == "" {
		path = "adventurer-tui.log"
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return f, nil
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
