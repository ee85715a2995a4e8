package components

import (
	"testing"

	"github.com/decker502/pvzemu/pkg/types"
)

func TestShieldStageForHP(t *testing.T) {
	tests := []struct {
		name string
		hp   int
		want types.ShieldStage
	}{
		{"满血", 4000, types.ShieldHealthy},
		{"略低于三分之二", 2666, types.ShieldCracked1},
		{"三分之二以上", 2667, types.ShieldHealthy},
		{"三分之一", 1333, types.ShieldCracked2},
		{"归零", 0, types.ShieldCracked2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShieldStageForHP(tt.hp, 4000); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestPlantSetReanimMissing(t *testing.T) {
	p := newTestPlant(t, types.PlantPeaShooter)
	before := p.Reanim
	if p.SetReanim(types.PlantAnimJumpUp, types.ReanimOnce, 24) {
		t.Error("Expected missing animation to be rejected")
	}
	if p.Reanim != before {
		t.Errorf("Expected reanim unchanged, got %+v", p.Reanim)
	}

	if !p.SetReanim(types.PlantAnimIdle, types.ReanimRepeat, 12) {
		t.Fatal("Expected anim_idle to exist for pea shooter")
	}
	if p.Reanim.FPS != 12 || p.Reanim.Progress != 0 {
		t.Errorf("Expected fresh playback at fps 12, got %+v", p.Reanim)
	}
}

func TestPlantSetSleep(t *testing.T) {
	p := newTestPlant(t, types.PlantPuffshroom)
	p.SetSleep(true)
	if !p.IsSleeping {
		t.Error("Expected plant asleep")
	}
	p.IsSmashed = true
	p.SetSleep(false)
	if !p.IsSleeping {
		t.Error("Expected smashed plant to ignore wake up")
	}
}

func TestPlantHitBox(t *testing.T) {
	p := newTestPlant(t, types.PlantPeaShooter)
	want := Rect{X: 290, Y: 280, Width: 60, Height: 80}
	if got := p.HitBox(); got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}
