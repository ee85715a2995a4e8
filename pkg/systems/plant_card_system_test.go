package systems

import (
	"testing"

	"github.com/decker502/pvzemu/pkg/types"
)

func TestPlantCardSystem_Cooldown(t *testing.T) {
	s, _, sys := newTestSystems(t, types.SceneDay)
	s.Cards[0].Type = types.PlantPeaShooter

	if !sys.Cards.Ready(0) {
		t.Fatal("Expected fresh card to be ready")
	}
	sys.Cards.StartCooldown(0)
	if s.Cards[0].ColdDown != 750 {
		t.Fatalf("Expected cooldown 750, got %d", s.Cards[0].ColdDown)
	}
	if sys.Cards.Ready(0) {
		t.Error("Expected card to be cooling down")
	}

	for i := 0; i < 750; i++ {
		sys.Cards.Update()
	}
	if !sys.Cards.Ready(0) {
		t.Errorf("Expected card ready after 750 ticks, cooldown=%d", s.Cards[0].ColdDown)
	}

	sys.Cards.Update()
	if s.Cards[0].ColdDown != 0 {
		t.Errorf("Expected cooldown to stay at 0, got %d", s.Cards[0].ColdDown)
	}
}

func TestPlantCardSystem_ImitaterUsesTargetCooldown(t *testing.T) {
	s, _, sys := newTestSystems(t, types.SceneDay)
	s.Cards[3].Type = types.PlantImitater
	s.Cards[3].ImitaterType = types.PlantWallnut

	sys.Cards.StartCooldown(3)

	if s.Cards[3].ColdDown != 3000 {
		t.Errorf("Expected wallnut cooldown 3000, got %d", s.Cards[3].ColdDown)
	}
}

func TestPlantCardSystem_Ready(t *testing.T) {
	s, _, sys := newTestSystems(t, types.SceneDay)
	s.Cards[1].Type = types.PlantSunflower

	tests := []struct {
		name     string
		index    int
		expected bool
	}{
		{"empty slot", 0, false},
		{"set slot", 1, true},
		{"negative index", -1, false},
		{"out of range", 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sys.Cards.Ready(tt.index); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
