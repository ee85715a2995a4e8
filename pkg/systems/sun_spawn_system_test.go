package systems

import (
	"testing"

	"github.com/decker502/pvzemu/pkg/scene"
	"github.com/decker502/pvzemu/pkg/types"
)

// TestSunPlants_SunflowerRoundTrip 测试向日葵首次产出与倒计时重置
func TestSunPlants_SunflowerRoundTrip(t *testing.T) {
	s, f, sys := newTestSystems(t, types.SceneNight)
	p := mustPlant(t, f, types.PlantSunflower, 2, 0)
	s.Sun.Sun = 0
	n := p.Countdown.Generate
	if n <= 0 {
		t.Fatalf("Expected positive initial generate countdown, got %d", n)
	}

	for i := 0; i < n-1; i++ {
		sys.Update()
	}
	if s.Sun.Sun != 0 {
		t.Fatalf("Expected no sun before countdown ends, got %d", s.Sun.Sun)
	}

	sys.Update()
	if s.Sun.Sun != 25 {
		t.Errorf("Expected sun 25 after %d ticks, got %d", n, s.Sun.Sun)
	}
	if p.Countdown.Generate < 2350 || p.Countdown.Generate > 2500 {
		t.Errorf("Expected reset countdown in [2350, 2500], got %d", p.Countdown.Generate)
	}
}

// TestSunPlants_Amounts 测试各产阳光植物的单次产量
func TestSunPlants_Amounts(t *testing.T) {
	tests := []struct {
		name     string
		plant    types.PlantType
		status   types.PlantStatus
		expected int
	}{
		{"sunflower", types.PlantSunflower, types.PlantStatusIdle, 25},
		{"small sunshroom", types.PlantSunshroom, types.PlantStatusSunshroomSmall, 15},
		{"big sunshroom", types.PlantSunshroom, types.PlantStatusSunshroomBig, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, f, sys := newTestSystems(t, types.SceneNight)
			p := mustPlant(t, f, tt.plant, 2, 0)
			s.Sun.Sun = 0
			p.Status = tt.status
			p.Countdown.Status = 1000
			p.Countdown.Generate = 1

			sys.Plants.Update()

			if s.Sun.Sun != tt.expected {
				t.Errorf("Expected sun %d, got %d", tt.expected, s.Sun.Sun)
			}
		})
	}
}

// TestSunPlants_TwinSunflower 测试双子向日葵替换向日葵并产出 50
func TestSunPlants_TwinSunflower(t *testing.T) {
	s, f, sys := newTestSystems(t, types.SceneNight)
	base := mustPlant(t, f, types.PlantSunflower, 2, 0)
	twin := mustPlant(t, f, types.PlantTwinSunflower, 2, 0)
	s.Sun.Sun = 0
	if !base.IsDead {
		t.Error("Expected sunflower to be replaced by twin sunflower")
	}

	twin.Countdown.Generate = 1
	sys.Plants.Update()

	if s.Sun.Sun != 50 {
		t.Errorf("Expected sun 50, got %d", s.Sun.Sun)
	}
}

// TestSunSpawn_IntervalSaturation 测试自然阳光基础间隔在第 53 次后封顶
func TestSunSpawn_IntervalSaturation(t *testing.T) {
	tests := []struct {
		generated int
		expected  int
	}{
		{0, 425},
		{1, 435},
		{52, 945},
		{53, 950},
		{54, 950},
		{500, 950},
	}

	for _, tt := range tests {
		if got := NaturalSunInterval(tt.generated); got != tt.expected {
			t.Errorf("NaturalSunInterval(%d): expected %d, got %d", tt.generated, tt.expected, got)
		}
	}
}

// TestSunSpawn_NightHasNoDrops 测试夜晚不掉落阳光
func TestSunSpawn_NightHasNoDrops(t *testing.T) {
	s, _, sys := newTestSystems(t, types.SceneNight)
	s.Sun.Sun = 0

	for i := 0; i < 2000; i++ {
		sys.Sun.Update()
	}
	if s.Sun.Sun != 0 {
		t.Errorf("Expected no natural sun at night, got %d", s.Sun.Sun)
	}
}

// TestSunSpawn_CappedTotal 测试自然阳光不超过上限
func TestSunSpawn_CappedTotal(t *testing.T) {
	s, _, sys := newTestSystems(t, types.SceneDay)
	s.Sun.Sun = scene.MaxSun - 10

	for i := 0; i < 5000; i++ {
		sys.Sun.Update()
		if s.Sun.Sun > scene.MaxSun {
			t.Fatalf("Expected sun <= %d, got %d at tick %d", scene.MaxSun, s.Sun.Sun, i)
		}
	}
	if s.Sun.Sun != scene.MaxSun {
		t.Errorf("Expected sun to saturate at %d, got %d", scene.MaxSun, s.Sun.Sun)
	}
	if s.Sun.NaturalSunGenerated == 0 {
		t.Error("Expected at least one natural drop in 5000 ticks")
	}
}

// TestSunSpawn_CountdownRange 测试每次掉落后倒计时落在 [基础间隔, 基础间隔+275)
func TestSunSpawn_CountdownRange(t *testing.T) {
	s, _, sys := newTestSystems(t, types.SceneDay)

	for drops := 0; drops < 5; {
		before := s.Sun.NaturalSunGenerated
		sys.Sun.Update()
		if s.Sun.NaturalSunGenerated == before {
			continue
		}
		drops++
		base := NaturalSunInterval(s.Sun.NaturalSunGenerated)
		cd := s.Sun.NaturalSunCountdown
		if cd < base || cd >= base+naturalSunJitter {
			t.Errorf("Expected countdown in [%d, %d), got %d", base, base+naturalSunJitter, cd)
		}
	}
}
