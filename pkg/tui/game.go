package tui

import (
	"context"
	"log"
	"time"

	"github.com/decker502/adventurer/pkg/config"
	"github.com/decker502/adventurer/pkg/ecs"
	"github.com/decker502/adventurer/pkg/entities"
	"github.com/decker502/adventurer/pkg/systems"
	"github.com/gdamore/tcell/v2"
)

// TickInterval 主循环节拍
const TickInterval = 16 * time.Millisecond

// maxStep 单次推进的最大时长，挂起恢复后不会一次性追帧
const maxStep = 0.25

// Game 终端版本的游戏循环
type Game struct {
	entityManager   *ecs.EntityManager
	inputSystem     *systems.InputSystem
	animationSystem *systems.AnimationSystem
	keys            *KeyState
	playerID        ecs.EntityID
}

// NewGame 按角色配置创建终端游戏，终端前端不加载图集
func NewGame(cfg *config.CharacterConfig, keys *KeyState) (*Game, error) {
	em := ecs.NewEntityManager()
	playerID, err := entities.NewPlayerEntity(em, nil, cfg, 0, 0)
	if err != nil {
		return nil, err
	}
	if keys == nil {
		keys = NewKeyState(DefaultHoldWindow)
	}

	return &Game{
		entityManager:   em,
		inputSystem:     systems.NewInputSystem(em, keys),
		animationSystem: systems.NewAnimationSystem(em),
		keys:            keys,
		playerID:        playerID,
	}, nil
}

// Step 推进一次：先输入，后动画
func (g *Game) Step(deltaTime float64) {
	g.inputSystem.Update()
	g.animationSystem.Update(deltaTime)
}

// View 返回角色当前状态
func (g *Game) View() (View, bool) {
	return Snapshot(g.entityManager, g.playerID)
}

// Draw 把当前状态绘制到 canvas
func (g *Game) Draw(c Canvas) {
	if v, ok := g.View(); ok {
		Render(c, 2, 1, v)
	}
}

// Run 运行主循环，直到收到退出按键或 ctx 被取消
func (g *Game) Run(ctx context.Context, screen *Screen) error {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(TickInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if g.keys.HandleKey(ev) {
					log.Printf("[TUI] 收到退出按键")
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if dt > maxStep {
				dt = maxStep
			}
			g.Step(dt)

			screen.Clear()
			g.Draw(screen)
			screen.Show()
		}
	}
}
