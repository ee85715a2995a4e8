package systems

import (
	"testing"

	"github.com/decker502/pvzemu/pkg/types"
)

// TestSquash_JumpsAndCrushes 倭瓜依次观察、起跳、悬停、下落并压扁目标，之后自身消失
func TestSquash_JumpsAndCrushes(t *testing.T) {
	s, f, sys := newTestSystems(t, types.SceneDay)
	p := mustPlant(t, f, types.PlantSquash, 2, 3)
	z := mustSpawn(t, f, types.ZombieBasic, 2, 700)
	z.DX = 0
	r := z.HitBoxRect()
	placeHitBox(z, p.AttackBox(false).X+30, r.Y+r.Height/2)

	var seen []types.PlantStatus
	for i := 0; i < 400 && !p.IsDead; i++ {
		sys.Plants.Update()
		if len(seen) == 0 || seen[len(seen)-1] != p.Status {
			seen = append(seen, p.Status)
		}
		if p.Status == types.PlantStatusSquashStopInTheAir && s.Cell(2, 3).Content == p.ID {
			t.Fatal("Expected airborne squash to free its cell")
		}
	}

	expected := []types.PlantStatus{
		types.PlantStatusSquashLook,
		types.PlantStatusSquashJumpUp,
		types.PlantStatusSquashStopInTheAir,
		types.PlantStatusSquashJumpDown,
		types.PlantStatusSquashCrushed,
	}
	if len(seen) != len(expected) {
		t.Fatalf("Expected statuses %v, got %v", expected, seen)
	}
	for i := range expected {
		if seen[i] != expected[i] {
			t.Errorf("Expected status %d to be %v, got %v", i, expected[i], seen[i])
		}
	}
	if !p.IsDead {
		t.Error("Expected squash to disappear after crushing")
	}
	if !z.IsDead {
		t.Errorf("Expected crushed zombie to die, hp=%d", z.HP)
	}
}

// TestSquash_CrushReach 下落第 5 帧结算压扁，橄榄球僵尸的判定放宽 20 像素
func TestSquash_CrushReach(t *testing.T) {
	tests := []struct {
		name    string
		zombie  types.ZombieType
		overlap int
		crushed bool
	}{
		{"basic overlapping", types.ZombieBasic, 10, true},
		{"basic just outside", types.ZombieBasic, -10, false},
		{"football just outside", types.ZombieFootball, -10, true},
		{"football too far", types.ZombieFootball, -30, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, f, sys := newTestSystems(t, types.SceneDay)
			p := mustPlant(t, f, types.PlantSquash, 2, 3)
			p.Status = types.PlantStatusSquashJumpDown
			p.Countdown.Status = 6

			z := mustSpawn(t, f, tt.zombie, 2, 700)
			box := p.AttackBox(false)
			r := z.HitBoxRect()
			placeHitBox(z, box.X+box.Width-tt.overlap, r.Y+r.Height/2)

			sys.Plants.Update()

			if p.Countdown.Status != 5 {
				t.Fatalf("Expected landing countdown 5, got %d", p.Countdown.Status)
			}
			if z.IsDead != tt.crushed {
				t.Errorf("Expected crushed=%v, got dead=%v hp=%d", tt.crushed, z.IsDead, z.HP)
			}
		})
	}
}

// TestTangleKelp_DragsZombieUnder 缠绕水草抓住水中僵尸，50 帧后拖住，100 帧后与僵尸一起消失
func TestTangleKelp_DragsZombieUnder(t *testing.T) {
	_, f, sys := newTestSystems(t, types.ScenePool)
	p := mustPlant(t, f, types.PlantTangleKelp, 2, 3)
	z := mustSpawn(t, f, types.ZombieBasic, 2, 700)
	z.DX = 0
	z.IsInWater = true
	r := z.HitBoxRect()
	placeHitBox(z, p.X+20, r.Y+r.Height/2)

	sys.Plants.Update()
	if p.Status != types.PlantStatusTangleKelpGrab {
		t.Fatalf("Expected kelp to grab, got %v", p.Status)
	}
	if p.TargetID != z.ID {
		t.Errorf("Expected target %d, got %d", z.ID, p.TargetID)
	}
	if p.Countdown.Status != KelpGrabCountdown {
		t.Errorf("Expected grab countdown %d, got %d", KelpGrabCountdown, p.Countdown.Status)
	}

	for i := 0; i < KelpGrabCountdown && p.Countdown.Status > 50; i++ {
		sys.Plants.Update()
	}
	if z.Action != types.ZombieActionCaughtByKelp {
		t.Errorf("Expected zombie caught by kelp at countdown 50, got action %v", z.Action)
	}
	if z.HP != z.MaxHP {
		t.Errorf("Expected zombie untouched before the drag, got hp %d", z.HP)
	}

	for i := 0; i < KelpGrabCountdown && !p.IsDead; i++ {
		sys.Plants.Update()
	}
	if !p.IsDead {
		t.Fatal("Expected kelp to be consumed")
	}
	if z.HP != 0 {
		t.Errorf("Expected dragged zombie hp 0, got %d", z.HP)
	}
	if !z.IsDead && !z.HasDeathStatus() {
		t.Error("Expected dragged zombie to be dying or removed")
	}
}

// TestTangleKelp_IgnoresLandZombies 不在水中的僵尸不会被抓
func TestTangleKelp_IgnoresLandZombies(t *testing.T) {
	_, f, sys := newTestSystems(t, types.ScenePool)
	p := mustPlant(t, f, types.PlantTangleKelp, 2, 3)
	z := mustSpawn(t, f, types.ZombieBasic, 2, 700)
	r := z.HitBoxRect()
	placeHitBox(z, p.X+20, r.Y+r.Height/2)

	sys.Plants.Update()

	if p.Status == types.PlantStatusTangleKelpGrab {
		t.Error("Expected kelp to ignore a zombie that is not in water")
	}
}

// TestSpike_RangeAttack 地刺每轮扎一次、地刺王扎两次；车辆被扎时受到 1800 点伤害
func TestSpike_RangeAttack(t *testing.T) {
	tests := []struct {
		name      string
		plant     types.PlantType
		zombie    types.ZombieType
		ticks     int
		zombieHP  int
		plantDead bool
		plantWear int
	}{
		{"spikeweed basic", types.PlantSpikeweed, types.ZombieBasic, 30, 250, false, 0},
		{"spikerock basic", types.PlantSpikerock, types.ZombieBasic, 70, 230, false, 0},
		{"spikeweed zomboni", types.PlantSpikeweed, types.ZombieZomboni, 30, 0, true, 0},
		{"spikerock zomboni", types.PlantSpikerock, types.ZombieZomboni, 70, 0, false, SpikerockWear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, f, sys := newTestSystems(t, types.SceneDay)
			if tt.plant == types.PlantSpikerock {
				mustPlant(t, f, types.PlantSpikeweed, 2, 3)
			}
			p := mustPlant(t, f, tt.plant, 2, 3)
			z := mustSpawn(t, f, tt.zombie, 2, 700)
			z.DX = 0
			r := z.HitBoxRect()
			placeHitBox(z, p.AttackBox(false).X+5, r.Y+r.Height/2)

			sys.Plants.Update()
			if p.Status != types.PlantStatusSpikeAttack {
				t.Fatalf("Expected spike attack, got %v", p.Status)
			}

			for i := 1; i < tt.ticks; i++ {
				sys.Plants.Update()
			}

			if z.HP != tt.zombieHP {
				t.Errorf("Expected zombie hp %d, got %d", tt.zombieHP, z.HP)
			}
			if p.IsDead != tt.plantDead {
				t.Errorf("Expected plant dead=%v, got %v", tt.plantDead, p.IsDead)
			}
			if !tt.plantDead && p.HP != p.MaxHP-tt.plantWear {
				t.Errorf("Expected plant hp %d, got %d", p.MaxHP-tt.plantWear, p.HP)
			}
		})
	}
}

// TestStarfruit_FiresFiveStars 杨桃身后同行有僵尸时向五个方向各发射一颗星星
func TestStarfruit_FiresFiveStars(t *testing.T) {
	tests := []struct {
		name   string
		offset int
		stars  int
	}{
		{"zombie behind", -150, 5},
		{"zombie in front", 250, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, f, sys := newTestSystems(t, types.SceneDay)
			p := mustPlant(t, f, types.PlantStarfruit, 2, 5)
			z := mustSpawn(t, f, types.ZombieBasic, 2, 700)
			z.DX = 0
			r := z.HitBoxRect()
			placeHitBox(z, p.X+tt.offset, r.Y+r.Height/2)

			for i := 0; i < 60 && len(aliveProjectiles(s)) == 0; i++ {
				sys.Plants.Update()
			}

			projs := aliveProjectiles(s)
			if len(projs) != tt.stars {
				t.Fatalf("Expected %d stars, got %d", tt.stars, len(projs))
			}
			backward := 0
			for _, proj := range projs {
				if proj.Type != types.ProjectileStar || proj.Motion != types.MotionStarfruit {
					t.Errorf("Expected starfruit star, got type %v motion %v", proj.Type, proj.Motion)
				}
				if proj.DX < 0 {
					backward++
				}
			}
			if tt.stars > 0 && backward != 1 {
				t.Errorf("Expected exactly 1 backward star, got %d", backward)
			}
		})
	}
}

// TestMagnetshroom_AttractsMetal 磁力菇吸走铁桶、橄榄球头盔后进入冷却，普通僵尸不受影响
func TestMagnetshroom_AttractsMetal(t *testing.T) {
	tests := []struct {
		name    string
		zombie  types.ZombieType
		attract bool
	}{
		{"bucket", types.ZombieBucketHead, true},
		{"football cap", types.ZombieFootball, true},
		{"no metal", types.ZombieBasic, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, f, sys := newTestSystems(t, types.SceneNight)
			p := mustPlant(t, f, types.PlantMagnetshroom, 2, 3)
			z := mustSpawn(t, f, tt.zombie, 2, 700)
			placeHitBox(z, p.X+100, p.Y+40)

			sys.Plants.Update()

			if !tt.attract {
				if p.Status == types.PlantStatusMagnetshroomWorking {
					t.Error("Expected magnetshroom to stay idle without metal in range")
				}
				return
			}
			if z.Accessory1 != types.Accessory1None || z.Accessory1HP != 0 {
				t.Errorf("Expected helmet removed, got %v with hp %d", z.Accessory1, z.Accessory1HP)
			}
			if p.Status != types.PlantStatusMagnetshroomWorking {
				t.Errorf("Expected magnetshroom working, got %v", p.Status)
			}
			if p.Countdown.Status != MagnetshroomCooldown {
				t.Errorf("Expected cooldown %d, got %d", MagnetshroomCooldown, p.Countdown.Status)
			}
		})
	}
}

// TestScaredyshroom_HidesFromNearbyZombie 僵尸靠近时胆小菇缩头
func TestScaredyshroom_HidesFromNearbyZombie(t *testing.T) {
	tests := []struct {
		name     string
		offset   int
		expected types.PlantStatus
	}{
		{"zombie nearby", 60, types.PlantStatusScaredyshroomScared},
		{"zombie far away", 300, types.PlantStatusWait},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, f, sys := newTestSystems(t, types.SceneNight)
			p := mustPlant(t, f, types.PlantScaredyshroom, 2, 3)
			z := mustSpawn(t, f, types.ZombieBasic, 2, 700)
			placeHitBox(z, p.X+tt.offset, p.Y+40)

			sys.Plants.Update()

			if p.Status != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, p.Status)
			}
		})
	}
}

// TestCactus_GrowsTallForBalloon 同行出现气球僵尸时仙人掌长高
func TestCactus_GrowsTallForBalloon(t *testing.T) {
	_, f, sys := newTestSystems(t, types.SceneDay)
	p := mustPlant(t, f, types.PlantCactus, 2, 3)
	p.Countdown.Generate = 10000
	z := mustSpawn(t, f, types.ZombieBalloon, 2, 700)
	z.DX = 0

	sys.Plants.Update()
	if p.Status != types.PlantStatusCactusGrowTall {
		t.Fatalf("Expected cactus to grow tall, got %v", p.Status)
	}

	for i := 0; i < 300 && p.Status == types.PlantStatusCactusGrowTall; i++ {
		sys.Plants.Update()
	}
	if p.Status != types.PlantStatusCactusTallIdle {
		t.Errorf("Expected tall idle after the rise animation, got %v", p.Status)
	}
}

// TestImitater_MorphsIntoTarget 模仿者倒计时结束后变成目标植物
func TestImitater_MorphsIntoTarget(t *testing.T) {
	s, f, sys := newTestSystems(t, types.SceneDay)
	p := f.Plants.Create(types.PlantImitater, 2, 3, types.PlantPeaShooter)
	if p == nil {
		t.Fatal("Failed to create imitater")
	}

	for i := 0; i < 100 && !p.IsDead; i++ {
		sys.Plants.Update()
		if i == 0 && p.Status == types.PlantStatusImitaterMorphing {
			t.Fatal("Expected imitater to wait before morphing")
		}
	}
	if !p.IsDead {
		t.Fatal("Expected imitater to be replaced")
	}

	c := s.Plant(s.Cell(2, 3).Content)
	if c == nil || c.Type != types.PlantPeaShooter {
		t.Fatalf("Expected a peashooter in the cell, got %v", c)
	}
	if c.IsDead {
		t.Error("Expected the morphed peashooter to be alive")
	}
}
