package entities

import (
	"fmt"
	"log"

	"github.com/decker502/adventurer/pkg/components"
	"github.com/decker502/adventurer/pkg/config"
	"github.com/decker502/adventurer/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// ImageLoader 图片加载接口(由 game.ResourceManager 实现)
type ImageLoader interface {
	LoadImage(path string) (*ebiten.Image, error)
}

// NewAnimationState 创建角色出生时的动画状态：待机、未锁定、帧索引 0
func NewAnimationState(ranges [components.ActionCount]components.FrameRange) *components.AnimationStateComponent {
	return &components.AnimationStateComponent{
		CurrentAction: components.ActionIdle,
		Ranges:        ranges,
		Locked:        false,
		CurrentIndex:  0,
	}
}

// NewPlayerEntity 创建受键盘控制的角色实体
//
// 参数:
//   - em: EntityManager 实例
//   - loader: 用于加载精灵图集，可为 nil(不加载图片，仅用于无渲染的前端和测试)
//   - cfg: 角色配置，创建前会再次校验
//   - x, y: 角色中心的屏幕坐标
//
// 返回:
//   - 创建的实体ID
//   - 配置错误或图集加载失败时返回错误，此时不会创建实体
func NewPlayerEntity(em *ecs.EntityManager, loader ImageLoader, cfg *config.CharacterConfig, x, y float64) (ecs.EntityID, error) {
	if err := cfg.Validate(); err != nil {
		return ecs.InvalidEntity, fmt.Errorf("invalid character config: %w", err)
	}

	ranges, _ := cfg.FrameRanges()
	direction, _ := cfg.Direction()
	sheetCfg := cfg.SpriteSheet

	var sheetImage *ebiten.Image
	if loader != nil {
		img, err := loader.LoadImage(sheetCfg.Image)
		if err != nil {
			return ecs.InvalidEntity, fmt.Errorf("failed to load sprite sheet: %w", err)
		}
		// 图集尺寸必须容纳 Columns x Rows 个单元格
		bounds := img.Bounds()
		if bounds.Dx() < sheetCfg.Columns*sheetCfg.CellWidth || bounds.Dy() < sheetCfg.Rows*sheetCfg.CellHeight {
			return ecs.InvalidEntity, fmt.Errorf("%w: image %s is %dx%d, need %dx%d",
				config.ErrInvalidSheetGeometry, sheetCfg.Image, bounds.Dx(), bounds.Dy(),
				sheetCfg.Columns*sheetCfg.CellWidth, sheetCfg.Rows*sheetCfg.CellHeight)
		}
		sheetImage = img
	}

	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PlayerControlledComponent{})
	ecs.AddComponent(em, id, NewAnimationState(ranges))
	ecs.AddComponent(em, id, &components.FacingComponent{Direction: direction})

	// 渲染目标：初始帧 0，首次计时器到时后跳到待机范围起点
	ecs.AddComponent(em, id, &components.SpriteSheetComponent{
		Image:          sheetImage,
		CellWidth:      sheetCfg.CellWidth,
		CellHeight:     sheetCfg.CellHeight,
		Columns:        sheetCfg.Columns,
		Rows:           sheetCfg.Rows,
		FrameIndex:     0,
		FlipHorizontal: direction == components.DirectionLeft,
	})

	// 动画计时器：每 FrameDuration 秒推进一帧，自动重复
	ecs.AddComponent(em, id, &components.TimerComponent{
		Name:       "animation",
		TargetTime: cfg.FrameDuration,
		Repeating:  true,
	})

	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.ScaleComponent{ScaleX: cfg.Scale, ScaleY: cfg.Scale})

	log.Printf("[PlayerFactory] 创建角色 %s (实体ID: %d, 图集 %dx%d, 帧时长 %.2fs)",
		cfg.Name, id, sheetCfg.Columns, sheetCfg.Rows, cfg.FrameDuration)

	return id, nil
}
