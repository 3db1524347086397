package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteSheetComponent 精灵图集渲染目标
// 帧按行优先排列：第 i 帧位于 (i % Columns, i / Columns)
type SpriteSheetComponent struct {
	Image *ebiten.Image // 整张图集，测试中可为 nil

	CellWidth  int // 单帧宽度(像素)
	CellHeight int // 单帧高度(像素)
	Columns    int
	Rows       int

	FrameIndex     uint32 // 当前要绘制的帧
	FlipHorizontal bool   // 是否水平镜像(朝左)
}

// FrameCount 返回图集中的总帧数
func (s *SpriteSheetComponent) FrameCount() int {
	return s.Columns * s.Rows
}
