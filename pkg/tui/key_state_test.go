package tui

import (
	"testing"
	"time"

	"github.com/decker502/adventurer/pkg/utils"
	"github.com/gdamore/tcell/v2"
)

// fakeClock 可手动推进的时钟
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestKeyState(hold time.Duration) (*KeyState, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	ks := NewKeyState(hold)
	ks.now = clock.Now
	return ks, clock
}

func TestKeyStateHoldWindow(t *testing.T) {
	ks, clock := newTestKeyState(100 * time.Millisecond)

	if ks.IsPressed(utils.ControlAttack) {
		t.Fatal("key should not be pressed before any event")
	}

	ks.Press(utils.ControlAttack)
	if !ks.IsPressed(utils.ControlAttack) {
		t.Fatal("key should be pressed right after event")
	}

	clock.Advance(100 * time.Millisecond)
	if !ks.IsPressed(utils.ControlAttack) {
		t.Error("key should still be held at the end of the window")
	}

	clock.Advance(time.Millisecond)
	if ks.IsPressed(utils.ControlAttack) {
		t.Error("key should be released after the window")
	}

	if ks.IsPressed(utils.ControlMoveLeft) {
		t.Error("other keys must not be affected")
	}
}

func TestKeyStateRepeatExtendsHold(t *testing.T) {
	ks, clock := newTestKeyState(100 * time.Millisecond)

	ks.Press(utils.ControlMoveRight)
	clock.Advance(80 * time.Millisecond)
	ks.Press(utils.ControlMoveRight)
	clock.Advance(80 * time.Millisecond)

	if !ks.IsPressed(utils.ControlMoveRight) {
		t.Error("auto-repeat should keep the key held")
	}
}

func TestNewKeyStateDefaultHold(t *testing.T) {
	ks := NewKeyState(0)
	if ks.hold != DefaultHoldWindow {
		t.Errorf("hold = %v, want %v", ks.hold, DefaultHoldWindow)
	}
}

func TestKeyStateHandleKey(t *testing.T) {
	tests := []struct {
		name     string
		ev       *tcell.EventKey
		wantQuit bool
		wantKey  utils.ControlKey
		wantHeld bool
	}{
		{"空格攻击", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), false, utils.ControlAttack, true},
		{"右方向键", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), false, utils.ControlMoveRight, true},
		{"左方向键", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), false, utils.ControlMoveLeft, true},
		{"d 右移", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), false, utils.ControlMoveRight, true},
		{"a 左移", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), false, utils.ControlMoveLeft, true},
		{"q 退出", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), true, utils.ControlAttack, false},
		{"Esc 退出", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), true, utils.ControlAttack, false},
		{"Ctrl-C 退出", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), true, utils.ControlAttack, false},
		{"无关按键", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), false, utils.ControlAttack, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ks, _ := newTestKeyState(DefaultHoldWindow)

			if got := ks.HandleKey(tt.ev); got != tt.wantQuit {
				t.Errorf("HandleKey() quit = %v, want %v", got, tt.wantQuit)
			}
			if got := ks.IsPressed(tt.wantKey); got != tt.wantHeld {
				t.Errorf("IsPressed(%s) = %v, want %v", tt.wantKey, got, tt.wantHeld)
			}
		})
	}
}
