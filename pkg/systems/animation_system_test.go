package systems

import (
	"testing"

	"github.com/decker502/adventurer/pkg/components"
	"github.com/decker502/adventurer/pkg/ecs"
)

func TestAdvanceFrame_WritesRenderTargetAndState(t *testing.T) {
	em := ecs.NewEntityManager()
	id := spawnTestPlayer(em)
	s := NewAnimationSystem(em)

	// 出生时帧 0 不在待机范围内，第一次推进跳到 4
	want := []uint32{4, 5, 6, 4, 5}
	for i, w := range want {
		if !s.AdvanceFrame(id) {
			t.Fatal("AdvanceFrame returned false")
		}
		sheet := mustSheet(em, id)
		state := mustState(em, id)
		if sheet.FrameIndex != w || state.CurrentIndex != w {
			t.Fatalf("step %d: sheet=%d state=%d, want %d", i, sheet.FrameIndex, state.CurrentIndex, w)
		}
	}
}

func TestAdvanceFrame_FlipFollowsFacing(t *testing.T) {
	em := ecs.NewEntityManager()
	id := spawnTestPlayer(em)
	s := NewAnimationSystem(em)

	mustFacing(em, id).Direction = components.DirectionLeft
	s.AdvanceFrame(id)
	if !mustSheet(em, id).FlipHorizontal {
		t.Error("facing left should flip the sprite")
	}

	mustFacing(em, id).Direction = components.DirectionRight
	s.AdvanceFrame(id)
	if mustSheet(em, id).FlipHorizontal {
		t.Error("facing right should not flip the sprite")
	}
}

func TestAdvanceFrame_MissingComponents(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	ecs.AddComponent(em, id, newTestState(components.ActionIdle, 0))

	if NewAnimationSystem(em).AdvanceFrame(id) {
		t.Error("AdvanceFrame should fail without a sprite sheet")
	}
}

func TestAnimationSystemUpdate_GatedByTimer(t *testing.T) {
	em := ecs.NewEntityManager()
	id := spawnTestPlayer(em)
	s := NewAnimationSystem(em)

	// 未到 0.1 秒不推进
	s.Update(0.05)
	if got := mustSheet(em, id).FrameIndex; got != 0 {
		t.Fatalf("FrameIndex = %d before timer fired, want 0", got)
	}

	s.Update(0.05)
	if got := mustSheet(em, id).FrameIndex; got != 4 {
		t.Fatalf("FrameIndex = %d after timer fired, want 4", got)
	}

	// 一次很长的帧只推进一帧
	s.Update(0.5)
	if got := mustSheet(em, id).FrameIndex; got != 5 {
		t.Errorf("FrameIndex = %d after long frame, want 5", got)
	}
}

func TestAnimationSystemUpdate_ActionSwitchLatency(t *testing.T) {
	em := ecs.NewEntityManager()
	id := spawnTestPlayer(em)
	s := NewAnimationSystem(em)

	s.AdvanceFrame(id) // 4
	s.AdvanceFrame(id) // 5

	SetAction(mustState(em, id), components.ActionRun)
	// 切换后、下一次推进前仍显示旧帧
	if got := mustSheet(em, id).FrameIndex; got != 5 {
		t.Fatalf("FrameIndex = %d right after switch, want 5", got)
	}

	s.AdvanceFrame(id)
	if got := mustSheet(em, id).FrameIndex; got != 7 {
		t.Errorf("FrameIndex = %d after switch tick, want 7", got)
	}
}
