package systems

import (
	"log"

	"github.com/decker502/adventurer/pkg/components"
	"github.com/decker502/adventurer/pkg/ecs"
)

// AnimationSystem 按计时器节奏推进角色的精灵帧
//
// 每次 Update 先推进计时器，只有计时器到时才调用 AdvanceFrame，
// 从而让动画播放速率与引擎帧率无关。
type AnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewAnimationSystem 创建一个新的动画系统
func NewAnimationSystem(em *ecs.EntityManager) *AnimationSystem {
	return &AnimationSystem{
		entityManager: em,
	}
}

// Update 推进所有动画实体的计时器，并在到时的实体上推进一帧
func (s *AnimationSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[
		*components.TimerComponent,
		*components.AnimationStateComponent,
	](s.entityManager)

	for _, id := range entities {
		timer, _ := ecs.GetComponent[*components.TimerComponent](s.entityManager, id)

		TickTimer(timer, deltaTime)
		if timer.JustFinished {
			s.AdvanceFrame(id)
		}
	}
}

// AdvanceFrame 在不依赖时间的情况下为实体推进一帧
//
// 读取渲染目标当前帧，计算下一帧后同时写回渲染目标和动画状态，
// 并根据朝向设置水平翻转。实体缺少所需组件时返回 false。
func (s *AnimationSystem) AdvanceFrame(id ecs.EntityID) bool {
	state, ok := ecs.GetComponent[*components.AnimationStateComponent](s.entityManager, id)
	if !ok {
		return false
	}
	sheet, ok := ecs.GetComponent[*components.SpriteSheetComponent](s.entityManager, id)
	if !ok {
		return false
	}

	next := ComputeNextFrame(state, sheet.FrameIndex)
	if next != sheet.FrameIndex+1 && next != sheet.FrameIndex {
		log.Printf("[AnimationSystem] 实体 %d 帧重置: %d -> %d (动作: %s)", id, sheet.FrameIndex, next, state.CurrentAction)
	}

	sheet.FrameIndex = next
	state.CurrentIndex = next

	if facing, ok := ecs.GetComponent[*components.FacingComponent](s.entityManager, id); ok {
		sheet.FlipHorizontal = facing.Direction == components.DirectionLeft
	}
	return true
}
