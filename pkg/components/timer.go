package components

// TimerComponent 通用计时器组件
// 用于把动画播放速率与引擎帧率解耦(如每 0.1 秒推进一帧)
type TimerComponent struct {
	Name        string  // 计时器名称，如 "animation"
	TargetTime  float64 // 目标时间（秒）
	CurrentTime float64 // 当前已过时间（秒）
	Repeating   bool    // 到时后是否自动重新计时

	// JustFinished 仅在到时的那一次 Tick 中为 true
	JustFinished bool
	// TimesFinished 最近一次 Tick 中跨越的周期数(一次 Tick 时间过长时可能大于 1)
	TimesFinished int
	// IsReady 非循环计时器到时后保持为 true
	IsReady bool
}
