package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/adventurer/pkg/components"
	"github.com/decker502/adventurer/pkg/config"
	"github.com/decker502/adventurer/pkg/ecs"
	"github.com/decker502/adventurer/pkg/entities"
	"github.com/decker502/adventurer/pkg/game"
	"github.com/decker502/adventurer/pkg/systems"
	"github.com/decker502/adventurer/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 背景色
var backgroundColor = color.RGBA{R: 48, G: 44, B: 56, A: 255}

// GameScene 唯一的游戏场景：一个可控制的冒险者角色
//
// 每次 Update 的执行顺序固定为：输入采样 -> 动画推进。
// 本次采样切换的动作在同一次 Update 的帧推进中就会被看到(若计时器恰好到时)。
type GameScene struct {
	entityManager   *ecs.EntityManager
	settingsManager *game.SettingsManager

	keyboard        *utils.KeyboardState
	inputSystem     *systems.InputSystem
	animationSystem *systems.AnimationSystem
	renderSystem    *systems.RenderSystem

	playerID ecs.EntityID
}

// NewGameScene 创建游戏场景并生成角色
//
// 参数:
//   - loader: 图集加载器，可为 nil(不渲染图片)
//   - settingsManager: 用户设置，可为 nil
//   - cfg: 角色配置
//
// 配置错误会直接返回，调用方不应启动游戏循环。
func NewGameScene(loader entities.ImageLoader, settingsManager *game.SettingsManager, cfg *config.CharacterConfig) (*GameScene, error) {
	em := ecs.NewEntityManager()

	playerID, err := entities.NewPlayerEntity(em, loader, cfg,
		float64(config.GameWindowWidth)/2, float64(config.GameWindowHeight)/2)
	if err != nil {
		return nil, err
	}

	bindings, err := cfg.ResolveKeyBindings()
	if err != nil {
		return nil, err
	}
	if settingsManager != nil {
		if custom := settingsManager.GetSettings().KeyBindings; len(custom) > 0 {
			merged, err := utils.ParseKeyBindings(bindings, custom)
			if err != nil {
				log.Printf("[GameScene] Warning: 忽略无效的自定义键位: %v", err)
			} else {
				bindings = merged
			}
		}
	}

	keyboard := utils.NewKeyboardState(bindings)

	s := &GameScene{
		entityManager:   em,
		settingsManager: settingsManager,
		keyboard:        keyboard,
		inputSystem:     systems.NewInputSystem(em, keyboard),
		animationSystem: systems.NewAnimationSystem(em),
		renderSystem:    systems.NewRenderSystem(em),
		playerID:        playerID,
	}

	log.Printf("[GameScene] 场景初始化完成 (角色实体ID: %d)", playerID)
	return s, nil
}

// Update 处理快捷键后推进一步
func (s *GameScene) Update(deltaTime float64) {
	s.handleHotkeys()
	s.Step(deltaTime)
}

// Step 推进一次游戏逻辑：先输入，后动画
func (s *GameScene) Step(deltaTime float64) {
	s.inputSystem.Update()
	s.animationSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// SetKeyState 替换输入源(测试或其它输入前端使用)
func (s *GameScene) SetKeyState(keys utils.KeyState) {
	s.inputSystem.SetKeyState(keys)
}

// PlayerID 返回角色实体ID
func (s *GameScene) PlayerID() ecs.EntityID {
	return s.playerID
}

// EntityManager 返回场景的实体管理器
func (s *GameScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// handleHotkeys F3 切换调试信息
func (s *GameScene) handleHotkeys() {
	if s.settingsManager == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		enabled := s.settingsManager.ToggleDebugOverlay()
		log.Printf("[GameScene] 调试信息: %v", enabled)
		if err := s.settingsManager.Save(); err != nil {
			log.Printf("[GameScene] Warning: 保存设置失败: %v", err)
		}
	}
}

// Draw 绘制背景、角色和调试信息
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s.renderSystem.Draw(screen)

	if s.settingsManager != nil && s.settingsManager.GetSettings().ShowDebugOverlay {
		ebitenutil.DebugPrintAt(screen, s.DebugText(), 10, 10)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()), config.GameWindowWidth-100, 10)
	}
}

// DebugText 返回角色动画状态的调试文本
func (s *GameScene) DebugText() string {
	state, ok := ecs.GetComponent[*components.AnimationStateComponent](s.entityManager, s.playerID)
	if !ok {
		return "no player"
	}
	facing, _ := ecs.GetComponent[*components.FacingComponent](s.entityManager, s.playerID)
	r := systems.ActiveRange(state)

	return fmt.Sprintf("action: %s [%d-%d]\nframe: %d\nlocked: %v\nfacing: %s",
		state.CurrentAction, r.Start, r.End, state.CurrentIndex, state.Locked, facing.Direction)
}

// SaveOnExit 退出时保存设置
func (s *GameScene) SaveOnExit() bool {
	if s.settingsManager == nil {
		return true
	}
	if err := s.settingsManager.Save(); err != nil {
		log.Printf("[GameScene] 退出时保存设置失败: %v", err)
		return false
	}
	return true
}
