package components

import (
	"fmt"
	"strings"
)

// Action 角色当前执行的高层动作，决定使用哪一段帧范围
type Action int

const (
	ActionIdle Action = iota
	ActionRun
	ActionAttack

	// ActionCount 动作数量，用作帧范围表的长度
	ActionCount
)

var actionNames = [ActionCount]string{
	ActionIdle:   "idle",
	ActionRun:    "run",
	ActionAttack: "attack",
}

// String 返回动作名称(与配置文件中的键一致)
func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// ParseAction 将配置中的动作名称解析为 Action，大小写不敏感
func ParseAction(name string) (Action, error) {
	for i, n := range actionNames {
		if strings.EqualFold(n, name) {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

// Direction 角色朝向，只影响渲染时的水平翻转
type Direction int

const (
	DirectionRight Direction = iota
	DirectionLeft
)

// String 返回朝向名称
func (d Direction) String() string {
	switch d {
	case DirectionRight:
		return "right"
	case DirectionLeft:
		return "left"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection 解析朝向名称，大小写不敏感
func ParseDirection(name string) (Direction, error) {
	switch strings.ToLower(name) {
	case "right":
		return DirectionRight, nil
	case "left":
		return DirectionLeft, nil
	}
	return 0, fmt.Errorf("unknown direction %q", name)
}
