package systems

import (
	"testing"

	"github.com/decker502/pvzemu/pkg/components"
	"github.com/decker502/pvzemu/pkg/types"
)

// TestProjectile_TorchwoodConversion 豌豆与寒冰豌豆穿过火炬树桩变为火焰豌豆，其他子弹不变
func TestProjectile_TorchwoodConversion(t *testing.T) {
	tests := []struct {
		name     string
		pt       types.ProjectileType
		expected types.ProjectileType
	}{
		{"pea", types.ProjectilePea, types.ProjectileFirePea},
		{"snow pea", types.ProjectileSnowPea, types.ProjectileFirePea},
		{"puff", types.ProjectilePuff, types.ProjectilePuff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, f, sys := newTestSystems(t, types.SceneDay)
			torch := mustPlant(t, f, types.PlantTorchwood, 2, 3)
			box := torch.AttackBox(false)
			proj := f.Projectiles.Create(tt.pt, 2, float64(box.X), float64(torch.Y))

			sys.Projectiles.Update()

			if proj.Type != tt.expected {
				t.Fatalf("Expected %v, got %v", tt.expected, proj.Type)
			}
			if tt.expected == types.ProjectileFirePea && proj.LastTorchwoodCol != 3 {
				t.Errorf("Expected last torchwood col 3, got %d", proj.LastTorchwoodCol)
			}
			if proj.IsDisappeared {
				t.Error("Expected projectile to keep flying")
			}
		})
	}
}

// spawnSplashTargets 在子弹攻击框内放置一个主目标和 n 个溅射目标
func spawnSplashTargets(t *testing.T, proj *components.Projectile, spawn func(row int) *components.Zombie, row, n int) (*components.Zombie, []*components.Zombie) {
	t.Helper()
	box := proj.AttackBox()
	main := spawn(proj.Row)
	r := main.HitBoxRect()
	placeHitBox(main, box.X+10, r.Y+r.Height/2)

	others := make([]*components.Zombie, 0, n)
	for i := 0; i < n; i++ {
		z := spawn(row)
		r := z.HitBoxRect()
		placeHitBox(z, box.X+10, r.Y+r.Height/2)
		others = append(others, z)
	}
	return main, others
}

// TestProjectile_SplashCap 主目标受全额伤害，溅射为 1/3 伤害，总量不超过上限（西瓜 7 倍、火焰豌豆 1 倍）
func TestProjectile_SplashCap(t *testing.T) {
	tests := []struct {
		name       string
		pt         types.ProjectileType
		others     int
		wantMain   int
		wantSplash int
	}{
		{"melon under cap", types.ProjectileMelon, 3, 80, 26},
		{"melon over cap", types.ProjectileMelon, 24, 80, 560 / 24},
		{"fire pea under cap", types.ProjectileFirePea, 3, 40, 13},
		{"fire pea over cap", types.ProjectileFirePea, 4, 40, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, f, sys := newTestSystems(t, types.SceneDay)
			proj := f.Projectiles.Create(tt.pt, 2, 400, 260)
			spawn := func(row int) *components.Zombie {
				return mustSpawn(t, f, types.ZombieBasic, row, 700)
			}
			main, others := spawnSplashTargets(t, proj, spawn, 2, tt.others)

			sys.Projectiles.attackZombie(proj, main)

			if got := main.MaxHP - main.HP; got != tt.wantMain {
				t.Errorf("Expected main target damage %d, got %d", tt.wantMain, got)
			}
			for i, z := range others {
				if got := z.MaxHP - z.HP; got != tt.wantSplash {
					t.Errorf("Expected splash damage %d on target %d, got %d", tt.wantSplash, i, got)
				}
			}
			if !proj.IsDisappeared {
				t.Error("Expected projectile consumed")
			}
		})
	}
}

// TestProjectile_SplashRows 西瓜溅射相邻行，火焰豌豆只溅射本行
func TestProjectile_SplashRows(t *testing.T) {
	tests := []struct {
		name string
		pt   types.ProjectileType
		hit  bool
	}{
		{"melon", types.ProjectileMelon, true},
		{"fire pea", types.ProjectileFirePea, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, f, sys := newTestSystems(t, types.SceneDay)
			proj := f.Projectiles.Create(tt.pt, 2, 400, 260)
			spawn := func(row int) *components.Zombie {
				return mustSpawn(t, f, types.ZombieBasic, row, 700)
			}
			main, others := spawnSplashTargets(t, proj, spawn, 1, 1)

			sys.Projectiles.attackZombie(proj, main)

			hit := others[0].HP != others[0].MaxHP
			if hit != tt.hit {
				t.Errorf("Expected adjacent row hit=%v, got %v", tt.hit, hit)
			}
		})
	}
}

// TestProjectile_FirePeaThaws 火焰豌豆命中时解除冰冻与减速
func TestProjectile_FirePeaThaws(t *testing.T) {
	_, f, sys := newTestSystems(t, types.SceneDay)
	proj := f.Projectiles.Create(types.ProjectileFirePea, 2, 400, 260)
	z := mustSpawn(t, f, types.ZombieBasic, 2, 700)
	r := z.HitBoxRect()
	placeHitBox(z, proj.AttackBox().X+10, r.Y+r.Height/2)
	sys.Debuff.SetSlowed(z, 1000)

	sys.Projectiles.attackZombie(proj, z)

	if z.Countdown.Slow != 0 {
		t.Errorf("Expected slow removed, got %d", z.Countdown.Slow)
	}
}

// TestProjectile_PopsBalloon 尖刺命中飞行中的气球僵尸时打破气球
func TestProjectile_PopsBalloon(t *testing.T) {
	s, f, sys := newTestSystems(t, types.SceneDay)
	z := mustSpawn(t, f, types.ZombieBalloon, 2, 700)
	z.DX = 0
	proj := f.Projectiles.Create(types.ProjectileCactus, 2, 400, 260)
	proj.Flags = types.AttackGround | types.AttackFlyingBalloon
	r := z.HitBoxRect()
	placeHitBox(z, proj.AttackBox().X+20, r.Y+r.Height/2)

	sys.Projectiles.Update()

	if !proj.IsDisappeared {
		t.Fatal("Expected spike to hit the balloon")
	}
	if z.Status != types.ZombieStatusBalloonFalling {
		t.Errorf("Expected balloon falling, got %v", z.Status)
	}
	if z.Action != types.ZombieActionFalling {
		t.Errorf("Expected falling action, got %v", z.Action)
	}
	if z.HP != z.MaxHP {
		t.Errorf("Expected the pop to absorb the hit, got hp %d", z.HP)
	}
	if len(aliveProjectiles(s)) != 0 {
		t.Errorf("Expected no projectiles left, got %d", len(aliveProjectiles(s)))
	}
}

// TestProjectile_PeaIgnoresBalloon 普通豌豆打不到飞行中的气球僵尸
func TestProjectile_PeaIgnoresBalloon(t *testing.T) {
	_, f, sys := newTestSystems(t, types.SceneDay)
	z := mustSpawn(t, f, types.ZombieBalloon, 2, 700)
	z.DX = 0
	proj := f.Projectiles.Create(types.ProjectilePea, 2, 400, 260)
	r := z.HitBoxRect()
	placeHitBox(z, proj.AttackBox().X+20, r.Y+r.Height/2)

	sys.Projectiles.Update()

	if proj.IsDisappeared {
		t.Error("Expected pea to fly past the balloon")
	}
	if z.Status != types.ZombieStatusBalloonFlying {
		t.Errorf("Expected balloon still flying, got %v", z.Status)
	}
}
