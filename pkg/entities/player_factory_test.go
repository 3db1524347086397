package entities

import (
	"errors"
	"testing"

	"github.com/decker502/adventurer/pkg/components"
	"github.com/decker502/adventurer/pkg/config"
	"github.com/decker502/adventurer/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// fakeLoader 返回固定尺寸的图片或错误
type fakeLoader struct {
	width, height int
	err           error
	requested     string
}

func (l *fakeLoader) LoadImage(path string) (*ebiten.Image, error) {
	l.requested = path
	if l.err != nil {
		return nil, l.err
	}
	return ebiten.NewImage(l.width, l.height), nil
}

func TestNewAnimationState(t *testing.T) {
	ranges := [components.ActionCount]components.FrameRange{{Start: 4, End: 6}, {Start: 7, End: 12}, {Start: 0, End: 3}}
	state := NewAnimationState(ranges)

	if state.CurrentAction != components.ActionIdle {
		t.Errorf("CurrentAction = %v, want idle", state.CurrentAction)
	}
	if state.Locked {
		t.Error("new state should be unlocked")
	}
	if state.CurrentIndex != 0 {
		t.Errorf("CurrentIndex = %d, want 0", state.CurrentIndex)
	}
	if state.Ranges != ranges {
		t.Errorf("Ranges = %v, want %v", state.Ranges, ranges)
	}
}

func TestNewPlayerEntity_Components(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultCharacterConfig()
	cfg.InitialDirection = "left"

	id, err := NewPlayerEntity(em, nil, cfg, 400, 300)
	if err != nil {
		t.Fatalf("NewPlayerEntity error: %v", err)
	}

	if !ecs.HasComponent[*components.PlayerControlledComponent](em, id) {
		t.Error("missing PlayerControlledComponent")
	}

	state, ok := ecs.GetComponent[*components.AnimationStateComponent](em, id)
	if !ok {
		t.Fatal("missing AnimationStateComponent")
	}
	if state.Ranges[components.ActionRun] != (components.FrameRange{Start: 7, End: 12}) {
		t.Errorf("run range = %v", state.Ranges[components.ActionRun])
	}

	facing, _ := ecs.GetComponent[*components.FacingComponent](em, id)
	if facing.Direction != components.DirectionLeft {
		t.Errorf("Direction = %v, want left", facing.Direction)
	}

	sheet, _ := ecs.GetComponent[*components.SpriteSheetComponent](em, id)
	if !sheet.FlipHorizontal || sheet.FrameCount() != 16 || sheet.FrameIndex != 0 {
		t.Errorf("unexpected sprite sheet %+v", sheet)
	}

	timer, _ := ecs.GetComponent[*components.TimerComponent](em, id)
	if timer.TargetTime != 0.1 || !timer.Repeating {
		t.Errorf("unexpected timer %+v", timer)
	}

	scale, _ := ecs.GetComponent[*components.ScaleComponent](em, id)
	if scale.ScaleX != 6 || scale.ScaleY != 6 {
		t.Errorf("scale = %+v, want 6x6", scale)
	}
}

func TestNewPlayerEntity_RejectsBadConfig(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultCharacterConfig()
	cfg.Animations["idle"] = config.FrameRangeConfig{Start: 6, End: 4}

	_, err := NewPlayerEntity(em, nil, cfg, 0, 0)
	if !errors.Is(err, config.ErrInvalidFrameRange) {
		t.Fatalf("err = %v, want ErrInvalidFrameRange", err)
	}
	if len(em.GetEntitiesWith()) != 0 {
		t.Error("no entity should be created for an invalid config")
	}
}

func TestNewPlayerEntity_SheetImage(t *testing.T) {
	cfg := config.DefaultCharacterConfig()

	t.Run("图集尺寸足够", func(t *testing.T) {
		em := ecs.NewEntityManager()
		loader := &fakeLoader{width: 200, height: 148}
		id, err := NewPlayerEntity(em, loader, cfg, 0, 0)
		if err != nil {
			t.Fatalf("NewPlayerEntity error: %v", err)
		}
		if loader.requested != cfg.SpriteSheet.Image {
			t.Errorf("loaded %q, want %q", loader.requested, cfg.SpriteSheet.Image)
		}
		sheet, _ := ecs.GetComponent[*components.SpriteSheetComponent](em, id)
		if sheet.Image == nil {
			t.Error("sheet image should be set")
		}
	})

	t.Run("图集尺寸不足", func(t *testing.T) {
		em := ecs.NewEntityManager()
		_, err := NewPlayerEntity(em, &fakeLoader{width: 100, height: 74}, cfg, 0, 0)
		if !errors.Is(err, config.ErrInvalidSheetGeometry) {
			t.Errorf("err = %v, want ErrInvalidSheetGeometry", err)
		}
	})

	t.Run("加载失败", func(t *testing.T) {
		em := ecs.NewEntityManager()
		loadErr := errors.New("boom")
		_, err := NewPlayerEntity(em, &fakeLoader{err: loadErr}, cfg, 0, 0)
		if !errors.Is(err, loadErr) {
			t.Errorf("err = %v, want wrapped load error", err)
		}
	})
}
