package systems

import "github.com/decker502/adventurer/pkg/components"

// 角色动画状态机的纯函数部分
// 不涉及计时和 I/O：给定当前状态，结果是确定的

// ActiveRange 返回当前动作对应的帧范围
func ActiveRange(state *components.AnimationStateComponent) components.FrameRange {
	return state.Ranges[state.CurrentAction]
}

// ComputeNextFrame 根据最近一次渲染的帧索引计算下一帧
//
// currentIndex 不在 [Start, End) 内时返回 Start(循环或切换动作后的重置)，
// 否则返回 currentIndex+1。因此一个周期依次展示 Start..End，
// End 帧只出现一次，下一次调用时回到 Start。
func ComputeNextFrame(state *components.AnimationStateComponent, currentIndex uint32) uint32 {
	r := ActiveRange(state)
	if currentIndex >= r.End || currentIndex < r.Start {
		return r.Start
	}
	return currentIndex + 1
}

// IsAnimationFinished 当前帧是否为当前动作的最后一帧
// 用于释放攻击动画锁
func IsAnimationFinished(state *components.AnimationStateComponent) bool {
	return state.CurrentIndex == ActiveRange(state).End
}

// SetAction 切换当前动作
//
// 不会重置 CurrentIndex：下一次 ComputeNextFrame 发现索引不在新范围内时
// 才跳到新范围的 Start，所以切换当帧仍显示旧动作的画面。
func SetAction(state *components.AnimationStateComponent, action components.Action) {
	state.CurrentAction = action
}

// LockAnimation 锁定动画，锁定期间输入系统不会切换动作
func LockAnimation(state *components.AnimationStateComponent) {
	state.Locked = true
}

// UnlockAnimation 解除动画锁
func UnlockAnimation(state *components.AnimationStateComponent) {
	state.Locked = false
}

// IsAnimationLocked 动画是否处于锁定状态
func IsAnimationLocked(state *components.AnimationStateComponent) bool {
	return state.Locked
}
