package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 游戏场景：拥有自己的更新和绘制逻辑
type Scene interface {
	// Update 按时间增量（秒）更新场景逻辑
	Update(deltaTime float64)

	// Draw 把场景绘制到 screen 上
	Draw(screen *ebiten.Image)
}

// Saveable 可选接口：场景在程序退出时持久化状态
type Saveable interface {
	// SaveOnExit 返回 false 表示保存失败(程序仍会正常退出)
	SaveOnExit() bool
}
