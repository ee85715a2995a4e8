package entities

import (
	"testing"

	"github.com/decker502/pvzemu/pkg/components"
	"github.com/decker502/pvzemu/pkg/types"
)

// TestZombieFactoryCreateAt 测试指定行创建僵尸
func TestZombieFactoryCreateAt(t *testing.T) {
	s, f := newTestScene(t, types.SceneDay)

	z := f.Zombies.CreateAt(types.ZombieBasic, 2, 820)
	if z == nil {
		t.Fatal("Expected zombie to be created")
	}
	if z.Row != 2 || z.X != 820 {
		t.Errorf("Expected row 2 x 820, got row %d x %v", z.Row, z.X)
	}
	if want := float64(280 - ZombieVerticalOffset); z.Y != want {
		t.Errorf("Expected y %v, got %v", want, z.Y)
	}
	if !s.ZombiesByRow.Contains(2, z.ID) {
		t.Error("Expected zombie in row index")
	}
	if s.Zombie(z.ID) != z {
		t.Error("Expected zombie lookup by id")
	}

	if f.Zombies.CreateAt(types.ZombieBasic, 5, 800) != nil {
		t.Error("Expected row 5 to be rejected in day scene")
	}
}

// TestZombieFactoryInitializer 测试创建回调
func TestZombieFactoryInitializer(t *testing.T) {
	_, f := newTestScene(t, types.SceneDay)

	var got []int
	f.Zombies.SetInitializer(func(z *components.Zombie) {
		got = append(got, z.ID)
	})
	z := f.Zombies.CreateAt(types.ZombieConeHead, 0, 800)

	if len(got) != 1 || got[0] != z.ID {
		t.Errorf("Expected initializer called once for %d, got %v", z.ID, got)
	}
}

// TestZombieFactoryInitialStatus 测试各类僵尸的初始状态
func TestZombieFactoryInitialStatus(t *testing.T) {
	tests := []struct {
		name string
		zt   types.ZombieType
		want types.ZombieStatus
	}{
		{"普通僵尸", types.ZombieBasic, types.ZombieStatusWalking},
		{"撑杆僵尸", types.ZombiePoleVaulting, types.ZombieStatusPoleVaultingRunning},
		{"读报僵尸", types.ZombieNewspaper, types.ZombieStatusNewspaperWalking},
		{"气球僵尸", types.ZombieBalloon, types.ZombieStatusBalloonFlying},
		{"矿工僵尸", types.ZombieDigger, types.ZombieStatusDiggerDig},
		{"舞王僵尸", types.ZombieDancing, types.ZombieStatusDancingMoonwalk},
		{"跳跳僵尸", types.ZombiePogo, types.ZombieStatusPogoWithStick},
		{"扶梯僵尸", types.ZombieLadder, types.ZombieStatusLadderWalking},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, f := newTestScene(t, types.SceneDay)
			z := f.Zombies.CreateAt(tt.zt, 1, 800)
			if z == nil {
				t.Fatalf("Failed to create %v", tt.zt)
			}
			if z.Status != tt.want {
				t.Errorf("Expected status %v, got %v", tt.want, z.Status)
			}
		})
	}
}

// TestZombieFactoryCanSpawnAtRow 测试出生行限制
func TestZombieFactoryCanSpawnAtRow(t *testing.T) {
	tests := []struct {
		name string
		st   types.SceneType
		zt   types.ZombieType
		row  int
		want bool
	}{
		{"白天普通僵尸", types.SceneDay, types.ZombieBasic, 4, true},
		{"白天越界行", types.SceneDay, types.ZombieBasic, 5, false},
		{"泳池前五波水路", types.ScenePool, types.ZombieBasic, 2, false},
		{"泳池陆路", types.ScenePool, types.ZombieBasic, 5, true},
		{"潜水僵尸水路", types.ScenePool, types.ZombieSnorkel, 3, true},
		{"潜水僵尸陆路", types.ScenePool, types.ZombieSnorkel, 0, false},
		{"白天潜水僵尸", types.SceneDay, types.ZombieSnorkel, 2, false},
		{"白天舞王首行", types.SceneDay, types.ZombieDancing, 0, false},
		{"白天舞王中间行", types.SceneDay, types.ZombieDancing, 2, true},
		{"屋顶舞王", types.SceneRoof, types.ZombieDancing, 2, false},
		{"泳池冰车水路", types.ScenePool, types.ZombieZomboni, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, f := newTestScene(t, tt.st)
			if got := f.Zombies.CanSpawnAtRow(tt.zt, tt.row); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

// TestZombieFactorySpawnRowWeighting 测试出生行只落在合法行，且不会长期集中在同一行
func TestZombieFactorySpawnRowWeighting(t *testing.T) {
	_, f := newTestScene(t, types.ScenePool)

	counts := make(map[int]int)
	for i := 0; i < 200; i++ {
		z := f.Zombies.Create(types.ZombieBasic)
		if z == nil {
			t.Fatal("Expected zombie to be created")
		}
		if z.Row == 2 || z.Row == 3 {
			t.Fatalf("Expected land row before wave 5, got %d", z.Row)
		}
		if z.X < ZombieSpawnX || z.X >= ZombieSpawnX+ZombieSpawnJitter {
			t.Errorf("Expected x in [800, 840), got %v", z.X)
		}
		counts[z.Row]++
	}

	for _, row := range []int{0, 1, 4, 5} {
		if counts[row] < 20 {
			t.Errorf("Expected row %d to receive a fair share, got %d", row, counts[row])
		}
	}
}

// TestZombieFactoryLurking 测试潜伏僵尸
func TestZombieFactoryLurking(t *testing.T) {
	t.Run("夜晚出土", func(t *testing.T) {
		_, f := newTestScene(t, types.SceneNight)
		z := f.Zombies.CreateLurking(types.ZombieBasic, 2, 4)
		if z == nil {
			t.Fatal("Expected lurking zombie")
		}
		if z.Status != types.ZombieStatusRisingFromGround {
			t.Errorf("Expected rising status, got %v", z.Status)
		}
		if z.DY != -200 || z.Countdown.Action != 150 {
			t.Errorf("Expected dy -200 action 150, got dy %v action %d", z.DY, z.Countdown.Action)
		}
		if z.X != 335 {
			t.Errorf("Expected x 335, got %v", z.X)
		}
	})

	t.Run("泳池出水", func(t *testing.T) {
		_, f := newTestScene(t, types.ScenePool)
		z := f.Zombies.CreateLurking(types.ZombieSnorkel, 3, 5)
		if z == nil {
			t.Fatal("Expected lurking zombie")
		}
		if !z.IsInWater || z.DY != -150 {
			t.Errorf("Expected in water with dy -150, got %v %v", z.IsInWater, z.DY)
		}
	})

	t.Run("屋顶空投", func(t *testing.T) {
		s, f := newTestScene(t, types.SceneRoof)
		z := f.Zombies.CreateLurking(types.ZombieBasic, 1, 3)
		if z == nil {
			t.Fatal("Expected dropped zombie")
		}
		bungee := s.Zombie(z.MasterID)
		if bungee == nil || bungee.Type != types.ZombieBungee {
			t.Fatal("Expected bungee master")
		}
		if bungee.MasterID != z.ID || bungee.BungeeCol != 3 {
			t.Errorf("Expected bungee linked to target at col 3, got master %d col %d", bungee.MasterID, bungee.BungeeCol)
		}
		if z.Action != types.ZombieActionFallFromSky || z.DY != BungeeDropHeight {
			t.Errorf("Expected falling from sky at %d, got action %v dy %v", BungeeDropHeight, z.Action, z.DY)
		}
	})

	t.Run("白天不支持", func(t *testing.T) {
		_, f := newTestScene(t, types.SceneDay)
		if f.Zombies.CreateLurking(types.ZombieBasic, 2, 4) != nil {
			t.Error("Expected no lurking zombie in day scene")
		}
	})
}
