package systems

import (
	"image"
	"log"

	"github.com/decker502/adventurer/pkg/components"
	"github.com/decker502/adventurer/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// RenderSystem 绘制精灵图集实体
//
// 只读取 SpriteSheetComponent 中已计算好的帧索引和翻转标志，
// 不参与动画状态的计算。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	warned        map[ecs.EntityID]bool // 记录已警告过的越界实体
}

// NewRenderSystem 创建一个新的渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		warned:        make(map[ecs.EntityID]bool),
	}
}

// Draw 绘制所有拥有图集和位置组件的实体
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[
		*components.SpriteSheetComponent,
		*components.PositionComponent,
	](s.entityManager)

	for _, id := range entities {
		s.drawEntity(screen, id)
	}
}

func (s *RenderSystem) drawEntity(screen *ebiten.Image, id ecs.EntityID) {
	sheet, _ := ecs.GetComponent[*components.SpriteSheetComponent](s.entityManager, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if sheet.Image == nil {
		return
	}

	rect := FrameRect(sheet, sheet.FrameIndex)
	if rect.Empty() {
		if !s.warned[id] {
			log.Printf("[RenderSystem] 警告: 实体 %d 帧索引 %d 超出图集范围 (共 %d 帧)", id, sheet.FrameIndex, sheet.FrameCount())
			s.warned[id] = true
		}
		return
	}

	scaleX, scaleY := 1.0, 1.0
	if scale, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id); ok {
		scaleX, scaleY = scale.ScaleX, scale.ScaleY
	}

	frame := sheet.Image.SubImage(rect).(*ebiten.Image)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = FrameGeoM(sheet, scaleX, scaleY, pos.X, pos.Y)
	// 像素风图集放大时使用最近邻采样
	op.Filter = ebiten.FilterNearest

	screen.DrawImage(frame, op)
}

// FrameRect 返回第 index 帧在图集中的像素矩形(行优先)
// 索引超出 Columns*Rows 时返回空矩形
func FrameRect(sheet *components.SpriteSheetComponent, index uint32) image.Rectangle {
	if sheet.Columns <= 0 || sheet.Rows <= 0 || int(index) >= sheet.FrameCount() {
		return image.Rectangle{}
	}

	col := int(index) % sheet.Columns
	row := int(index) / sheet.Columns
	x0 := col * sheet.CellWidth
	y0 := row * sheet.CellHeight
	return image.Rect(x0, y0, x0+sheet.CellWidth, y0+sheet.CellHeight)
}

// FrameGeoM 计算单帧的绘制变换：以单元格中心为锚点，先翻转、再缩放、最后平移到 (x, y)
func FrameGeoM(sheet *components.SpriteSheetComponent, scaleX, scaleY, x, y float64) ebiten.GeoM {
	var geoM ebiten.GeoM
	geoM.Translate(-float64(sheet.CellWidth)/2, -float64(sheet.CellHeight)/2)
	if sheet.FlipHorizontal {
		geoM.Scale(-1, 1)
	}
	geoM.Scale(scaleX, scaleY)
	geoM.Translate(x, y)
	return geoM
}
