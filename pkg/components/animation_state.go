package components

// FrameRange 精灵图集中一段连续帧的闭区间 [Start, End]
// 创建后不可修改；Start <= End 由配置校验保证
type FrameRange struct {
	Start uint32
	End   uint32
}

// Len 返回一个循环周期内展示的帧数
func (r FrameRange) Len() uint32 {
	return r.End - r.Start + 1
}

// Contains 检查帧索引是否落在闭区间内
func (r FrameRange) Contains(index uint32) bool {
	return index >= r.Start && index <= r.End
}

// AnimationStateComponent 角色动画状态机的纯数据记录
//
// 状态转换逻辑位于 systems 包(ComputeNextFrame、SetAction 等)，
// 这里只保存数据，便于脱离游戏循环单独测试。
//
// 不变式：CurrentIndex 位于当前动作的帧范围内，
// 或者在刚切换动作之后仍停留在旧动作的帧上(下一次帧推进时重置到 Start)。
type AnimationStateComponent struct {
	CurrentAction Action
	// Ranges 按 Action 索引的帧范围表
	Ranges [ActionCount]FrameRange
	// Locked 为 true 时输入系统不会切换动作(攻击动画播放中)
	Locked bool
	// CurrentIndex 最近一次输出给渲染目标的帧索引
	CurrentIndex uint32
}
