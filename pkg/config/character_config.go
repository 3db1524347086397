package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/decker502/adventurer/pkg/components"
	"github.com/decker502/adventurer/pkg/embedded"
	"github.com/decker502/adventurer/pkg/utils"
	"gopkg.in/yaml.v3"
)

// CharacterConfig 角色生成配置
//
// 提供图集几何信息和各动作的帧范围，角色创建后视为不可变输入。
//
// 配置文件位置: data/adventurer.yaml
type CharacterConfig struct {
	Name        string            `yaml:"name"`
	SpriteSheet SpriteSheetConfig `yaml:"sprite_sheet"`

	// Animations 动作名称(idle/run/attack) -> 帧范围
	Animations map[string]FrameRangeConfig `yaml:"animations"`

	// FrameDuration 每帧持续时间（秒），动画计时器的周期
	FrameDuration float64 `yaml:"frame_duration"`

	// Scale 绘制时的放大倍数
	Scale float64 `yaml:"scale"`

	// InitialDirection 初始朝向: right / left
	InitialDirection string `yaml:"initial_direction"`

	// KeyBindings 逻辑按键 -> ebiten 键名列表，未配置的按键使用默认键位
	KeyBindings map[string][]string `yaml:"key_bindings"`
}

// SpriteSheetConfig 精灵图集几何信息
type SpriteSheetConfig struct {
	Image      string `yaml:"image"`
	CellWidth  int    `yaml:"cell_width"`
	CellHeight int    `yaml:"cell_height"`
	Columns    int    `yaml:"columns"`
	Rows       int    `yaml:"rows"`
}

// FrameRangeConfig 帧范围闭区间 [Start, End]
type FrameRangeConfig struct {
	Start uint32 `yaml:"start"`
	End   uint32 `yaml:"end"`
}

// FrameCount 返回图集总帧数
func (s SpriteSheetConfig) FrameCount() int {
	return s.Columns * s.Rows
}

// DefaultCharacterConfig 返回冒险者角色的默认配置
// 图集 4x4，单帧 50x37；攻击 0-3，待机 4-6，奔跑 7-12
func DefaultCharacterConfig() *CharacterConfig {
	return &CharacterConfig{
		Name: "adventurer",
		SpriteSheet: SpriteSheetConfig{
			Image:      "assets/textures/adventurer.png",
			CellWidth:  50,
			CellHeight: 37,
			Columns:    4,
			Rows:       4,
		},
		Animations: map[string]FrameRangeConfig{
			"idle":   {Start: 4, End: 6},
			"run":    {Start: 7, End: 12},
			"attack": {Start: 0, End: 3},
		},
		FrameDuration:    0.1,
		Scale:            6,
		InitialDirection: "right",
	}
}

// LoadCharacterConfig 加载角色配置
//
// 优先从嵌入资源读取，找不到时回退到本地文件系统(便于调试自定义配置)。
//
// 参数:
//   - path: 配置文件路径（如 "data/adventurer.yaml"）
//
// 返回:
//   - *CharacterConfig: 已填充默认值并通过校验的配置
//   - error: 读取、解析或校验失败
func LoadCharacterConfig(path string) (*CharacterConfig, error) {
	var (
		data []byte
		err  error
	)
	if embedded.IsInitialized() && embedded.Exists(path) {
		data, err = embedded.ReadFile(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read character config %s: %w", path, err)
	}

	cfg, err := ParseCharacterConfig(data)
	if err != nil {
		return nil, fmt.Errorf("character config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseCharacterConfig 解析 YAML 配置、填充默认值并校验
func ParseCharacterConfig(data []byte) (*CharacterConfig, error) {
	var cfg CharacterConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse character config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *CharacterConfig) applyDefaults() {
	if c.Name == "" {
		c.Name = "adventurer"
	}
	if c.FrameDuration == 0 {
		c.FrameDuration = 0.1
	}
	if c.Scale == 0 {
		c.Scale = 1.0
	}
	if c.InitialDirection == "" {
		c.InitialDirection = components.DirectionRight.String()
	}
}

// Validate 校验配置
//
// 检查项：
//   - 图集单元格尺寸、行列数必须为正
//   - 每个动作都必须配置帧范围，且不能出现未知动作
//   - 帧范围 start <= end，且 end 不超过图集总帧数
//   - 帧持续时间、缩放为正，朝向和键位可以解析
func (c *CharacterConfig) Validate() error {
	sheet := c.SpriteSheet
	if sheet.CellWidth <= 0 || sheet.CellHeight <= 0 || sheet.Columns <= 0 || sheet.Rows <= 0 {
		return fmt.Errorf("%w: cell %dx%d, grid %dx%d",
			ErrInvalidSheetGeometry, sheet.CellWidth, sheet.CellHeight, sheet.Columns, sheet.Rows)
	}

	for name := range c.Animations {
		if _, err := components.ParseAction(name); err != nil {
			return fmt.Errorf("%w: %q", ErrUnknownAction, name)
		}
	}

	ranges, err := c.FrameRanges()
	if err != nil {
		return err
	}
	if err := ValidateFrameRanges(ranges, sheet.FrameCount()); err != nil {
		return err
	}

	if c.FrameDuration <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidFrameDuration, c.FrameDuration)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidScale, c.Scale)
	}

	if _, err := c.Direction(); err != nil {
		return err
	}
	if _, err := c.ResolveKeyBindings(); err != nil {
		return err
	}
	return nil
}

// ValidateFrameRanges 检查帧范围表：start <= end 且 end < frameCount
func ValidateFrameRanges(ranges [components.ActionCount]components.FrameRange, frameCount int) error {
	for i, r := range ranges {
		action := components.Action(i)
		if r.Start > r.End {
			return fmt.Errorf("%w: %s start %d > end %d", ErrInvalidFrameRange, action, r.Start, r.End)
		}
		if int(r.End) >= frameCount {
			return fmt.Errorf("%w: %s end %d, sheet has %d frames", ErrFrameOutOfSheet, action, r.End, frameCount)
		}
	}
	return nil
}

// FrameRanges 把按名称配置的帧范围转换为按 Action 索引的表
func (c *CharacterConfig) FrameRanges() ([components.ActionCount]components.FrameRange, error) {
	var ranges [components.ActionCount]components.FrameRange
	for i := components.Action(0); i < components.ActionCount; i++ {
		rc, ok := c.Animations[i.String()]
		if !ok {
			return ranges, fmt.Errorf("%w: %s", ErrMissingAnimation, i)
		}
		ranges[i] = components.FrameRange{Start: rc.Start, End: rc.End}
	}
	return ranges, nil
}

// Direction 解析初始朝向
func (c *CharacterConfig) Direction() (components.Direction, error) {
	d, err := components.ParseDirection(c.InitialDirection)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, c.InitialDirection)
	}
	return d, nil
}

// ResolveKeyBindings 在默认键位上叠加配置中的键位
func (c *CharacterConfig) ResolveKeyBindings() (utils.KeyBindings, error) {
	bindings, err := utils.ParseKeyBindings(utils.DefaultKeyBindings(), c.KeyBindings)
	if err != nil {
		return nil, errors.Join(ErrUnknownKey, err)
	}
	return bindings, nil
}
