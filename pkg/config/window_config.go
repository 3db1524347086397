package config

// 窗口配置常量
const (
	// GameWindowWidth 游戏逻辑屏幕宽度
	GameWindowWidth = 800
	// GameWindowHeight 游戏逻辑屏幕高度
	GameWindowHeight = 600
	// GameWindowTitle 窗口标题
	GameWindowTitle = "Adventurer"

	// DefaultCharacterConfigPath 默认角色配置文件(嵌入资源)
	DefaultCharacterConfigPath = "data/adventurer.yaml"
)
