package tui

import (
	"fmt"

	"github.com/decker502/adventurer/pkg/components"
	"github.com/decker502/adventurer/pkg/ecs"
	"github.com/decker502/adventurer/pkg/systems"
	"github.com/gdamore/tcell/v2"
)

// View 一次绘制所需的角色状态快照
type View struct {
	Action     components.Action
	Range      components.FrameRange
	Locked     bool
	Facing     components.Direction
	Frame      uint32
	FrameCount int
}

// Snapshot 从实体读取绘制所需的状态，缺少组件时返回 false
func Snapshot(em *ecs.EntityManager, id ecs.EntityID) (View, bool) {
	state, ok := ecs.GetComponent[*components.AnimationStateComponent](em, id)
	if !ok {
		return View{}, false
	}
	sheet, ok := ecs.GetComponent[*components.SpriteSheetComponent](em, id)
	if !ok {
		return View{}, false
	}
	v := View{
		Action:     state.CurrentAction,
		Range:      systems.ActiveRange(state),
		Locked:     state.Locked,
		Frame:      sheet.FrameIndex,
		FrameCount: sheet.FrameCount(),
	}
	if facing, ok := ecs.GetComponent[*components.FacingComponent](em, id); ok {
		v.Facing = facing.Direction
	}
	return v, true
}

var (
	styleText    = tcell.StyleDefault
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleRange   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleCurrent = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	styleLocked  = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// frameCellWidth 帧条中每个帧号占用的列数，如 "[07]"
const frameCellWidth = 4

// Render 把角色状态绘制到 canvas 的 (x, y) 处
//
//	第 0 行: 动作、帧范围与锁定状态
//	第 1 行: 帧条，当前动作范围内的帧号高亮，当前帧反色
//	第 2 行: 朝向
//	第 4 行: 操作提示
func Render(c Canvas, x, y int, v View) {
	status := fmt.Sprintf("action: %-6s range: [%d-%d]  frame: %2d", v.Action, v.Range.Start, v.Range.End, v.Frame)
	col := drawText(c, x, y, status, styleText)
	if v.Locked {
		drawText(c, col+2, y, "LOCKED", styleLocked)
	}

	for i := 0; i < v.FrameCount; i++ {
		style := styleDim
		switch {
		case uint32(i) == v.Frame:
			style = styleCurrent
		case v.Range.Contains(uint32(i)):
			style = styleRange
		}
		drawText(c, x+i*frameCellWidth, y+1, fmt.Sprintf("[%02d]", i), style)
	}

	drawText(c, x, y+2, "facing: "+facingArrow(v.Facing), styleText)
	drawText(c, x, y+4, "space/j: attack  <-/a: left  ->/d: right  q/esc: quit", styleDim)
}

func facingArrow(d components.Direction) string {
	if d == components.DirectionLeft {
		return "<- left"
	}
	return "-> right"
}

// drawText 逐个字符写入，返回下一个空闲列
func drawText(c Canvas, x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		c.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
