package components

// ScaleComponent 存储实体级别的缩放因子
// 像素风图集通常放大数倍绘制(默认 6 倍)
type ScaleComponent struct {
	// ScaleX X轴缩放因子（1.0 = 原始大小）
	ScaleX float64

	// ScaleY Y轴缩放因子（1.0 = 原始大小）
	ScaleY float64
}
