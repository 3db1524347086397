package systems

import (
	"github.com/decker502/adventurer/pkg/components"
	"github.com/decker502/adventurer/pkg/ecs"
	"github.com/decker502/adventurer/pkg/utils"
)

// fakeKeys 测试用输入源：集合中的逻辑按键视为按住
type fakeKeys map[utils.ControlKey]bool

func (k fakeKeys) IsPressed(key utils.ControlKey) bool {
	return k[key]
}

// spawnTestPlayer 创建带完整组件的受控角色(不加载图片)
func spawnTestPlayer(em *ecs.EntityManager) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PlayerControlledComponent{})
	ecs.AddComponent(em, id, newTestState(components.ActionIdle, 0))
	ecs.AddComponent(em, id, &components.FacingComponent{Direction: components.DirectionRight})
	ecs.AddComponent(em, id, &components.SpriteSheetComponent{
		CellWidth:  50,
		CellHeight: 37,
		Columns:    4,
		Rows:       4,
	})
	ecs.AddComponent(em, id, &components.TimerComponent{Name: "animation", TargetTime: 0.1, Repeating: true})
	ecs.AddComponent(em, id, &components.PositionComponent{X: 400, Y: 300})
	return id
}

func mustState(em *ecs.EntityManager, id ecs.EntityID) *components.AnimationStateComponent {
	state, ok := ecs.GetComponent[*components.AnimationStateComponent](em, id)
	if !ok {
		panic("missing AnimationStateComponent")
	}
	return state
}

func mustSheet(em *ecs.EntityManager, id ecs.EntityID) *components.SpriteSheetComponent {
	sheet, ok := ecs.GetComponent[*components.SpriteSheetComponent](em, id)
	if !ok {
		panic("missing SpriteSheetComponent")
	}
	return sheet
}

func mustFacing(em *ecs.EntityManager, id ecs.EntityID) *components.FacingComponent {
	facing, ok := ecs.GetComponent[*components.FacingComponent](em, id)
	if !ok {
		panic("missing FacingComponent")
	}
	return facing
}
