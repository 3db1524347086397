package config

import "errors"

// 配置错误：在启动阶段立即返回，游戏循环不会开始
var (
	ErrInvalidSheetGeometry = errors.New("invalid sprite sheet geometry")
	ErrInvalidFrameRange    = errors.New("invalid frame range")
	ErrFrameOutOfSheet      = errors.New("frame range exceeds sprite sheet")
	ErrMissingAnimation     = errors.New("missing animation")
	ErrUnknownAction        = errors.New("unknown action")
	ErrUnknownDirection     = errors.New("unknown direction")
	ErrInvalidFrameDuration = errors.New("invalid frame duration")
	ErrInvalidScale         = errors.New("invalid scale")
	ErrUnknownKey           = errors.New("unknown key binding")
)
