package tui

import (
	"sync"
	"time"

	"github.com/decker502/adventurer/pkg/utils"
	"github.com/gdamore/tcell/v2"
)

// DefaultHoldWindow 按键最后一次按下后仍视为按住的时长
// 需要覆盖终端的自动重复间隔
const DefaultHoldWindow = 150 * time.Millisecond

// KeyState 由终端按键事件驱动的 utils.KeyState 实现
//
// 事件 goroutine 调用 HandleKey，主循环调用 IsPressed，两者可并发。
type KeyState struct {
	mu       sync.Mutex
	hold     time.Duration
	now      func() time.Time
	lastSeen map[utils.ControlKey]time.Time
}

// NewKeyState 创建终端输入源，hold <= 0 时使用 DefaultHoldWindow
func NewKeyState(hold time.Duration) *KeyState {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	return &KeyState{
		hold:     hold,
		now:      time.Now,
		lastSeen: make(map[utils.ControlKey]time.Time),
	}
}

// Press 记录一次逻辑按键按下
func (k *KeyState) Press(key utils.ControlKey) {
	k.mu.Lock()
	k.lastSeen[key] = k.now()
	k.mu.Unlock()
}

// IsPressed 实现 utils.KeyState
func (k *KeyState) IsPressed(key utils.ControlKey) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	seen, ok := k.lastSeen[key]
	if !ok {
		return false
	}
	return k.now().Sub(seen) <= k.hold
}

// HandleKey 处理一个终端按键事件
// 返回 true 表示请求退出(Esc、Ctrl-C、q)
func (k *KeyState) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRight:
		k.Press(utils.ControlMoveRight)
	case tcell.KeyLeft:
		k.Press(utils.ControlMoveLeft)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case ' ', 'j', 'J':
			k.Press(utils.ControlAttack)
		case 'd', 'D':
			k.Press(utils.ControlMoveRight)
		case 'a', 'A':
			k.Press(utils.ControlMoveLeft)
		}
	}
	return false
}
