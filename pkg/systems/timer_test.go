package systems

import (
	"math"
	"testing"

	"github.com/decker502/adventurer/pkg/components"
)

func TestTickTimer_Repeating(t *testing.T) {
	timer := &components.TimerComponent{TargetTime: 0.1, Repeating: true}

	// 60 FPS 下每 6 帧触发一次(0.1 秒)
	fired := 0
	for i := 0; i < 60; i++ {
		TickTimer(timer, 1.0/60.0)
		if timer.JustFinished {
			fired++
		}
	}
	// 浮点累加误差可能让最后一次触发落在第 61 帧
	if fired < 9 || fired > 10 {
		t.Errorf("fired %d times in one second, want ~10", fired)
	}
}

func TestTickTimer_JustFinishedOnlyOnce(t *testing.T) {
	timer := &components.TimerComponent{TargetTime: 0.1, Repeating: true}

	TickTimer(timer, 0.15)
	if !timer.JustFinished || timer.TimesFinished != 1 {
		t.Fatalf("after 0.15s: JustFinished=%v TimesFinished=%d", timer.JustFinished, timer.TimesFinished)
	}
	if math.Abs(timer.CurrentTime-0.05) > 1e-9 {
		t.Errorf("remainder = %v, want 0.05", timer.CurrentTime)
	}

	TickTimer(timer, 0.01)
	if timer.JustFinished {
		t.Error("JustFinished must reset on the next tick")
	}
}

func TestTickTimer_LongFrame(t *testing.T) {
	timer := &components.TimerComponent{TargetTime: 0.1, Repeating: true}

	TickTimer(timer, 0.35)
	if !timer.JustFinished {
		t.Fatal("expected JustFinished")
	}
	if timer.TimesFinished != 3 {
		t.Errorf("TimesFinished = %d, want 3", timer.TimesFinished)
	}
	if timer.CurrentTime >= timer.TargetTime {
		t.Errorf("CurrentTime = %v should be below target", timer.CurrentTime)
	}
}

func TestTickTimer_OneShot(t *testing.T) {
	timer := &components.TimerComponent{TargetTime: 0.5}

	TickTimer(timer, 0.6)
	if !timer.JustFinished || !timer.IsReady {
		t.Fatalf("one-shot timer should finish: %+v", timer)
	}

	TickTimer(timer, 0.6)
	if timer.JustFinished {
		t.Error("one-shot timer must not fire twice")
	}

	ResetTimer(timer)
	if timer.IsReady || timer.CurrentTime != 0 {
		t.Errorf("ResetTimer left %+v", timer)
	}
}

func TestTickTimer_ZeroTarget(t *testing.T) {
	timer := &components.TimerComponent{TargetTime: 0, Repeating: true}
	TickTimer(timer, 1)
	if timer.JustFinished {
		t.Error("timer without target must never fire")
	}
}
