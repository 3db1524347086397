package systems

import (
	"log"

	"github.com/decker502/adventurer/pkg/components"
	"github.com/decker502/adventurer/pkg/ecs"
	"github.com/decker502/adventurer/pkg/utils"
)

// InputSystem 每个输入采样周期读取一次按键状态，决定受控角色的动作和朝向
//
// 攻击动画锁定期间不切换动作，保证攻击动画完整播放。
type InputSystem struct {
	entityManager *ecs.EntityManager
	keys          utils.KeyState

	missingLogged bool // 已记录"没有受控角色"，避免每帧刷屏
}

// NewInputSystem 创建输入系统
func NewInputSystem(em *ecs.EntityManager, keys utils.KeyState) *InputSystem {
	return &InputSystem{
		entityManager: em,
		keys:          keys,
	}
}

// SetKeyState 替换输入源
func (s *InputSystem) SetKeyState(keys utils.KeyState) {
	s.keys = keys
}

// Update 采样一次输入
// 场景中没有受控角色时直接跳过
func (s *InputSystem) Update() {
	id, ok := ecs.FirstEntityWith3[
		*components.PlayerControlledComponent,
		*components.AnimationStateComponent,
		*components.FacingComponent,
	](s.entityManager)
	if !ok {
		if !s.missingLogged {
			log.Printf("[InputSystem] 没有可控制的角色，跳过输入处理")
			s.missingLogged = true
		}
		return
	}
	s.missingLogged = false

	state, _ := ecs.GetComponent[*components.AnimationStateComponent](s.entityManager, id)
	facing, _ := ecs.GetComponent[*components.FacingComponent](s.entityManager, id)

	wasLocked := IsAnimationLocked(state)
	ApplyInput(state, facing, s.keys)

	switch {
	case !wasLocked && IsAnimationLocked(state):
		log.Printf("[InputSystem] 实体 %d 开始攻击，动画锁定", id)
	case wasLocked && !IsAnimationLocked(state):
		log.Printf("[InputSystem] 实体 %d 攻击动画播放完成，解除锁定", id)
	}
}

// ApplyInput 按固定优先级把一次输入采样应用到角色状态上
//
//  1. 已锁定：只在动画播放到最后一帧时解锁，不改变动作和朝向
//  2. 未锁定：攻击 > 右移 > 左移 > 待机，每次只触发一个分支
func ApplyInput(state *components.AnimationStateComponent, facing *components.FacingComponent, keys utils.KeyState) {
	if IsAnimationLocked(state) {
		if IsAnimationFinished(state) {
			UnlockAnimation(state)
		}
		return
	}

	switch {
	case keys.IsPressed(utils.ControlAttack):
		SetAction(state, components.ActionAttack)
		LockAnimation(state)
	case keys.IsPressed(utils.ControlMoveRight):
		facing.Direction = components.DirectionRight
		SetAction(state, components.ActionRun)
	case keys.IsPressed(utils.ControlMoveLeft):
		facing.Direction = components.DirectionLeft
		SetAction(state, components.ActionRun)
	default:
		SetAction(state, components.ActionIdle)
	}
}
