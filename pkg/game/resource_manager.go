package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"os"

	"github.com/decker502/adventurer/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

// ResourceManager 集中加载并缓存图片资源，保证同一路径只解码一次
//
// 非线程安全：只在主循环 goroutine 中使用。
//
// 用法:
//
//	rm := NewResourceManager()
//	img, err := rm.LoadImage("assets/textures/adventurer.png")
type ResourceManager struct {
	imageCache map[string]*ebiten.Image // path -> Image
}

// NewResourceManager 创建资源管理器
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache: make(map[string]*ebiten.Image),
	}
}

// LoadImage 加载图片并缓存
//
// 优先从嵌入资源读取；嵌入资源中不存在时回退到本地文件系统。
//
// 返回:
//   - 已缓存或新解码的 ebiten.Image
//   - 文件不存在、无法读取或解码失败时返回错误，不会 panic
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	data, err := readResource(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg

	return ebitenImg, nil
}

// GetImage 从缓存获取图片，未加载时返回 nil
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

func readResource(path string) ([]byte, error) {
	if embedded.IsInitialized() && embedded.Exists(path) {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}
