// Package utils 提供通用工具函数
package utils

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// ControlKey 角色控制使用的逻辑按键
type ControlKey int

const (
	ControlAttack ControlKey = iota
	ControlMoveRight
	ControlMoveLeft

	// ControlKeyCount 逻辑按键数量
	ControlKeyCount
)

var controlKeyNames = [ControlKeyCount]string{
	ControlAttack:    "attack",
	ControlMoveRight: "move_right",
	ControlMoveLeft:  "move_left",
}

// String 返回按键在配置文件中的名称
func (k ControlKey) String() string {
	if k < 0 || k >= ControlKeyCount {
		return fmt.Sprintf("ControlKey(%d)", int(k))
	}
	return controlKeyNames[k]
}

// ParseControlKey 解析配置中的逻辑按键名称
func ParseControlKey(name string) (ControlKey, error) {
	for i, n := range controlKeyNames {
		if strings.EqualFold(n, name) {
			return ControlKey(i), nil
		}
	}
	return 0, fmt.Errorf("unknown control %q", name)
}

// KeyState 输入源：查询逻辑按键当前是否处于按住状态
// 核心逻辑只读取，不修改输入设备状态
type KeyState interface {
	IsPressed(key ControlKey) bool
}

// KeyBindings 逻辑按键到物理按键的映射，任一物理按键按住即视为按下
type KeyBindings map[ControlKey][]ebiten.Key

// DefaultKeyBindings 默认键位：空格攻击，方向键移动
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		ControlAttack:    {ebiten.KeySpace},
		ControlMoveRight: {ebiten.KeyArrowRight},
		ControlMoveLeft:  {ebiten.KeyArrowLeft},
	}
}

// ParseKeyName 将键名(如 "Space"、"ArrowRight"、"D")解析为 ebiten.Key
func ParseKeyName(name string) (ebiten.Key, error) {
	var key ebiten.Key
	if err := key.UnmarshalText([]byte(name)); err != nil {
		return 0, err
	}
	return key, nil
}

// ParseKeyBindings 解析 "逻辑按键 -> 键名列表" 形式的配置
// 未出现在配置中的逻辑按键沿用 base 中的绑定
func ParseKeyBindings(base KeyBindings, raw map[string][]string) (KeyBindings, error) {
	result := make(KeyBindings, ControlKeyCount)
	for k, v := range base {
		result[k] = append([]ebiten.Key(nil), v...)
	}

	for controlName, keyNames := range raw {
		control, err := ParseControlKey(controlName)
		if err != nil {
			return nil, err
		}
		keys := make([]ebiten.Key, 0, len(keyNames))
		for _, name := range keyNames {
			key, err := ParseKeyName(name)
			if err != nil {
				return nil, fmt.Errorf("control %s: %w", control, err)
			}
			keys = append(keys, key)
		}
		result[control] = keys
	}
	return result, nil
}

// KeyboardState 基于 ebiten 键盘状态的 KeyState 实现
// 必须在 ebiten 的 Update 回调中调用 IsPressed
type KeyboardState struct {
	bindings KeyBindings
}

// NewKeyboardState 创建键盘输入源
func NewKeyboardState(bindings KeyBindings) *KeyboardState {
	if bindings == nil {
		bindings = DefaultKeyBindings()
	}
	return &KeyboardState{bindings: bindings}
}

// SetBindings 替换键位映射(设置界面或用户配置覆盖)
func (ks *KeyboardState) SetBindings(bindings KeyBindings) {
	ks.bindings = bindings
}

// Bindings 返回当前键位映射
func (ks *KeyboardState) Bindings() KeyBindings {
	return ks.bindings
}

// IsPressed 检查逻辑按键绑定的任一物理按键是否按住
func (ks *KeyboardState) IsPressed(key ControlKey) bool {
	for _, k := range ks.bindings[key] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
