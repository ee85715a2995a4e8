package systems

import (
	"testing"

	"github.com/decker502/pvzemu/pkg/components"
	"github.com/decker502/pvzemu/pkg/scene"
	"github.com/decker502/pvzemu/pkg/types"
)

func aliveProjectiles(s *scene.Scene) []*components.Projectile {
	var out []*components.Projectile
	for _, proj := range s.Projectiles.Items() {
		if !proj.IsDisappeared {
			out = append(out, proj)
		}
	}
	return out
}

// TestPeaShooter_FiresAtZombieInRow 豌豆射手发现同行僵尸后在发射延迟结束时射出一颗豌豆
func TestPeaShooter_FiresAtZombieInRow(t *testing.T) {
	s, f, sys := newTestSystems(t, types.SceneDay)
	p := mustPlant(t, f, types.PlantPeaShooter, 2, 0)
	p.Countdown.Generate = 0
	z := mustSpawn(t, f, types.ZombieBasic, 2, 700)
	z.DX = 0

	fired := false
	for i := 0; i < 40; i++ {
		sys.Update()
		if len(aliveProjectiles(s)) > 0 {
			fired = true
			break
		}
	}
	if !fired {
		t.Fatal("Expected a pea within 40 ticks")
	}

	projs := aliveProjectiles(s)
	if len(projs) != 1 {
		t.Fatalf("Expected exactly 1 projectile, got %d", len(projs))
	}
	if projs[0].Type != types.ProjectilePea {
		t.Errorf("Expected pea, got %v", projs[0].Type)
	}
	if projs[0].Row != 2 {
		t.Errorf("Expected projectile row 2, got %d", projs[0].Row)
	}
	if int(projs[0].X) <= p.X {
		t.Errorf("Expected projectile x > %d, got %v", p.X, projs[0].X)
	}
}

// TestPeaShooter_IgnoresOtherRows 其他行的僵尸不会触发射击
func TestPeaShooter_IgnoresOtherRows(t *testing.T) {
	s, f, sys := newTestSystems(t, types.SceneDay)
	p := mustPlant(t, f, types.PlantPeaShooter, 2, 0)
	p.Countdown.Generate = 0
	mustSpawn(t, f, types.ZombieBasic, 4, 700)

	for i := 0; i < 40; i++ {
		sys.Plants.Update()
	}

	if n := len(aliveProjectiles(s)); n != 0 {
		t.Errorf("Expected no projectiles, got %d", n)
	}
}

// TestChomper_SwallowsZombie 大嘴花张嘴 70 帧后吞下面前的僵尸
func TestChomper_SwallowsZombie(t *testing.T) {
	_, f, sys := newTestSystems(t, types.SceneDay)
	p := mustPlant(t, f, types.PlantChomper, 2, 3)
	z := mustSpawn(t, f, types.ZombieBasic, 2, 700)
	r := z.HitBoxRect()
	placeHitBox(z, p.AttackBox(false).X+10, r.Y+r.Height/2)

	sys.Plants.Update()
	if p.Status != types.PlantStatusChomperBiteBegin {
		t.Fatalf("Expected bite begin, got %v", p.Status)
	}
	if p.Countdown.Status != 70 {
		t.Errorf("Expected bite countdown 70, got %d", p.Countdown.Status)
	}

	for i := 0; i < 70 && p.Status == types.PlantStatusChomperBiteBegin; i++ {
		sys.Plants.Update()
	}

	if p.Status != types.PlantStatusChomperBiteSuccess {
		t.Errorf("Expected bite success, got %v", p.Status)
	}
	if !z.IsDead {
		t.Error("Expected swallowed zombie to be dead")
	}
}

// TestChomper_GargantuarOnlyDamaged 大嘴花咬巨人只造成 40 伤害
func TestChomper_GargantuarOnlyDamaged(t *testing.T) {
	_, f, sys := newTestSystems(t, types.SceneDay)
	p := mustPlant(t, f, types.PlantChomper, 2, 3)
	z := mustSpawn(t, f, types.ZombieGargantuar, 2, 700)
	r := z.HitBoxRect()
	placeHitBox(z, p.AttackBox(false).X+10, r.Y+r.Height/2)

	for i := 0; i < 72; i++ {
		sys.Plants.Update()
	}

	if z.IsDead {
		t.Fatal("Expected gargantuar to survive the bite")
	}
	if z.HP != z.MaxHP-40 {
		t.Errorf("Expected hp %d, got %d", z.MaxHP-40, z.HP)
	}
}

// TestPotatoMine_ArmsAndExplodes 土豆地雷出土后被踩中引爆
func TestPotatoMine_ArmsAndExplodes(t *testing.T) {
	_, f, sys := newTestSystems(t, types.SceneDay)
	p := mustPlant(t, f, types.PlantPotatoMine, 2, 3)
	p.Countdown.Status = 1

	sys.Plants.Update()
	if p.Status != types.PlantStatusPotatoSproutOut {
		t.Fatalf("Expected sprout out, got %v", p.Status)
	}
	for i := 0; i < 50; i++ {
		sys.Plants.Update()
	}
	if p.Status != types.PlantStatusPotatoArmed {
		t.Fatalf("Expected armed, got %v", p.Status)
	}

	z := mustSpawn(t, f, types.ZombieBasic, 2, 700)
	placeHitBox(z, p.X+50, p.Y+p.BoxSize.Height/2)

	sys.Plants.Update()

	if !p.IsDead {
		t.Error("Expected potato mine to be consumed")
	}
	if !z.IsDead {
		t.Errorf("Expected zombie on the mine to die, hp=%d", z.HP)
	}
}

// TestPotatoMine_UnarmedIgnoresZombies 未出土时不会引爆
func TestPotatoMine_UnarmedIgnoresZombies(t *testing.T) {
	_, f, sys := newTestSystems(t, types.SceneDay)
	p := mustPlant(t, f, types.PlantPotatoMine, 2, 3)
	z := mustSpawn(t, f, types.ZombieBasic, 2, 700)
	placeHitBox(z, p.X+50, p.Y+p.BoxSize.Height/2)

	for i := 0; i < 10; i++ {
		sys.Plants.Update()
	}

	if p.IsDead || z.IsDead {
		t.Errorf("Expected unarmed mine to stay idle, plant dead=%v zombie dead=%v", p.IsDead, z.IsDead)
	}
}

// TestCobCannon_LaunchRequiresArmed 玉米炮装填完成后才能发射，发射后重新装填
func TestCobCannon_LaunchRequiresArmed(t *testing.T) {
	s, f, sys := newTestSystems(t, types.SceneDay)
	mustPlant(t, f, types.PlantKernelpult, 2, 3)
	mustPlant(t, f, types.PlantKernelpult, 2, 4)
	p := mustPlant(t, f, types.PlantCobCannon, 2, 3)

	if sys.Plants.LaunchCob(p, 600, 300) {
		t.Fatal("Expected unarmed cob cannon to refuse launch")
	}

	p.Countdown.Status = 1
	for i := 0; i < 1000 && p.Status != types.PlantStatusCobCannonArmedIdle; i++ {
		sys.Plants.Update()
	}
	if p.Status != types.PlantStatusCobCannonArmedIdle {
		t.Fatalf("Expected armed cob cannon, got %v", p.Status)
	}

	if !sys.Plants.LaunchCob(p, 600, 300) {
		t.Fatal("Expected armed cob cannon to launch")
	}
	if p.CannonX != 553 {
		t.Errorf("Expected cannon x 553, got %d", p.CannonX)
	}
	if sys.Plants.LaunchCob(p, 600, 300) {
		t.Error("Expected second launch to be refused while firing")
	}

	for i := 0; i < CobCannonLaunchDelay && len(aliveProjectiles(s)) == 0; i++ {
		sys.Plants.Update()
	}

	projs := aliveProjectiles(s)
	if len(projs) != 1 || projs[0].Type != types.ProjectileCobCannon {
		t.Fatalf("Expected one cob projectile, got %d", len(projs))
	}
	if p.Status != types.PlantStatusCobCannonUnarmedIdle {
		t.Errorf("Expected unarmed after launch, got %v", p.Status)
	}
}

// TestLaunchCob_RejectsOtherPlants 只有玉米炮可以发射
func TestLaunchCob_RejectsOtherPlants(t *testing.T) {
	_, f, sys := newTestSystems(t, types.SceneDay)
	p := mustPlant(t, f, types.PlantPeaShooter, 2, 3)

	if sys.Plants.LaunchCob(p, 600, 300) {
		t.Error("Expected peashooter to refuse cob launch")
	}
	if sys.Plants.LaunchCob(nil, 600, 300) {
		t.Error("Expected nil plant to refuse cob launch")
	}
}
