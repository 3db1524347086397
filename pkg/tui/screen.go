// Package tui 提供基于 tcell 的终端前端
//
// 终端没有按键抬起事件，按键在最近一次按下后的保持窗口内视为按住。
package tui

import "github.com/gdamore/tcell/v2"

// Canvas 可写入字符单元格的绘制目标，tcell.Screen 满足该接口
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Screen 对 tcell.Screen 的简单包装
type Screen struct {
	screen tcell.Screen
}

// NewScreen 创建并初始化终端屏幕
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.HideCursor()
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close 恢复终端状态
func (s *Screen) Close() {
	s.screen.Fini()
}

// PollEvent 阻塞等待下一个终端事件，屏幕关闭后返回 nil
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Clear 清空屏幕缓冲
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show 把缓冲刷新到终端
func (s *Screen) Show() {
	s.screen.Show()
}

// Sync 强制完整重绘
func (s *Screen) Sync() {
	s.screen.Sync()
}

// SetContent 实现 Canvas
func (s *Screen) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	s.screen.SetContent(x, y, primary, combining, style)
}

// Size 返回终端尺寸
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}
