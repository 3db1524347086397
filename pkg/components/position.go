package components

// PositionComponent 实体在屏幕上的绘制位置(像素，精灵单元格中心)
type PositionComponent struct {
	X float64
	Y float64
}
