package components

// FacingComponent 角色朝向
// 只由 InputSystem 修改，AnimationSystem 读取后写入渲染目标的翻转标志
type FacingComponent struct {
	Direction Direction
}

// PlayerControlledComponent 标记组件：该实体接受键盘控制
type PlayerControlledComponent struct{}
