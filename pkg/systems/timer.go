package systems

import "github.com/decker502/adventurer/pkg/components"

// TickTimer 推进计时器 elapsed 秒
//
// 跨越 TargetTime 时 JustFinished 在本次调用中为 true；
// 循环计时器保留余数继续计时，一次跨越多个周期只记为一次 JustFinished，
// 周期数记录在 TimesFinished 中。非循环计时器到时后停在 TargetTime。
func TickTimer(timer *components.TimerComponent, elapsed float64) {
	timer.JustFinished = false
	timer.TimesFinished = 0

	if timer.TargetTime <= 0 {
		return
	}
	if !timer.Repeating && timer.IsReady {
		return
	}

	timer.CurrentTime += elapsed
	if timer.CurrentTime < timer.TargetTime {
		return
	}

	timer.JustFinished = true
	if !timer.Repeating {
		timer.TimesFinished = 1
		timer.CurrentTime = timer.TargetTime
		timer.IsReady = true
		return
	}

	for timer.CurrentTime >= timer.TargetTime {
		timer.CurrentTime -= timer.TargetTime
		timer.TimesFinished++
	}
}

// ResetTimer 将计时器清零
func ResetTimer(timer *components.TimerComponent) {
	timer.CurrentTime = 0
	timer.JustFinished = false
	timer.TimesFinished = 0
	timer.IsReady = false
}
