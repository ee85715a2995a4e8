package systems

import (
	"testing"

	"github.com/decker502/pvzemu/pkg/types"
)

func TestGridItemSystem_CraterDisappears(t *testing.T) {
	s, f, sys := newTestSystems(t, types.SceneDay)
	g := f.GridItems.Create(types.GridItemCrater, 2, 3)
	g.Countdown = 2

	sys.GridItems.Update()
	if g.IsDisappeared {
		t.Fatal("Expected crater to remain after one tick")
	}
	sys.GridItems.Update()
	if !g.IsDisappeared {
		t.Error("Expected crater to disappear at countdown 0")
	}

	s.CollectGarbage()
	if s.HasGridItem(types.GridItemCrater, 2, 3) {
		t.Error("Expected crater to be collected")
	}
}

func TestGridItemSystem_GraveRises(t *testing.T) {
	_, f, sys := newTestSystems(t, types.SceneNight)
	g := f.GridItems.Create(types.GridItemGrave, 1, 6)
	start := g.Countdown

	for i := 0; i < GraveRiseFrames-start+10; i++ {
		sys.GridItems.Update()
	}

	if g.Countdown != GraveRiseFrames {
		t.Errorf("Expected grave countdown to stop at %d, got %d", GraveRiseFrames, g.Countdown)
	}
	if g.IsDisappeared {
		t.Error("Expected grave to stay")
	}
}

func TestIcePathSystem_Melts(t *testing.T) {
	s, _, sys := newTestSystems(t, types.SceneDay)
	s.IcePath.X[2] = 300
	s.IcePath.Countdown[2] = 3

	for i := 0; i < 2; i++ {
		sys.IcePath.Update()
	}
	if s.IcePath.X[2] != 300 {
		t.Fatalf("Expected ice path to remain, got x=%d", s.IcePath.X[2])
	}

	sys.IcePath.Update()
	if s.IcePath.X[2] != 800 {
		t.Errorf("Expected ice path reset to 800, got %d", s.IcePath.X[2])
	}
	if s.IcePath.Countdown[2] != 0 {
		t.Errorf("Expected countdown 0, got %d", s.IcePath.Countdown[2])
	}
}
