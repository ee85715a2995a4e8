package entities

import (
	"testing"

	"github.com/decker502/pvzemu/pkg/types"
)

// TestPlantFactoryCreate 测试植物创建后的坐标、血量与槽位
func TestPlantFactoryCreate(t *testing.T) {
	s, f := newTestScene(t, types.SceneDay)

	tests := []struct {
		name     string
		pt       types.PlantType
		row, col int
		wantX    int
		wantY    int
		wantHP   int
	}{
		{"豌豆射手 (0,0)", types.PlantPeaShooter, 0, 0, 40, 80, 300},
		{"坚果墙 (2,4)", types.PlantWallnut, 2, 4, 360, 280, 4000},
		{"高坚果 (4,8)", types.PlantTallnut, 4, 8, 680, 480, 8000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustPlant(t, f, tt.pt, tt.row, tt.col)
			if p.X != tt.wantX || p.Y != tt.wantY {
				t.Errorf("Expected position (%d, %d), got (%d, %d)", tt.wantX, tt.wantY, p.X, p.Y)
			}
			if p.HP != tt.wantHP || p.MaxHP != tt.wantHP {
				t.Errorf("Expected hp %d, got %d/%d", tt.wantHP, p.HP, p.MaxHP)
			}
			if got := s.PlantMap[tt.row][tt.col].Content; got != p.ID {
				t.Errorf("Expected content slot %d, got %d", p.ID, got)
			}
		})
	}
}

// TestPlantFactoryInitialStatus 测试特殊植物的初始状态
func TestPlantFactoryInitialStatus(t *testing.T) {
	_, f := newTestScene(t, types.SceneDay)

	sunflower := mustPlant(t, f, types.PlantSunflower, 0, 0)
	if g := sunflower.Countdown.Generate; g < 300 || g > 1250 {
		t.Errorf("Expected sunflower generate countdown in [300, 1250], got %d", g)
	}

	chomper := mustPlant(t, f, types.PlantChomper, 0, 1)
	if chomper.Status != types.PlantStatusWait {
		t.Errorf("Expected chomper status WAIT, got %v", chomper.Status)
	}

	puff := mustPlant(t, f, types.PlantPuffshroom, 0, 2)
	if !puff.IsSleeping {
		t.Error("Expected puffshroom to sleep during the day")
	}

	mine := mustPlant(t, f, types.PlantPotatoMine, 0, 3)
	if mine.Countdown.Status != PotatoMineArmCountdown {
		t.Errorf("Expected potato mine countdown %d, got %d", PotatoMineArmCountdown, mine.Countdown.Status)
	}

	cherry := mustPlant(t, f, types.PlantCherryBomb, 0, 4)
	if cherry.Countdown.Effect != ExplosiveFuseCountdown {
		t.Errorf("Expected cherry bomb fuse %d, got %d", ExplosiveFuseCountdown, cherry.Countdown.Effect)
	}
}

// TestPlantFactoryCanPlant 测试种植合法性
func TestPlantFactoryCanPlant(t *testing.T) {
	t.Run("越界格子", func(t *testing.T) {
		_, f := newTestScene(t, types.SceneDay)
		if f.Plants.CanPlant(types.PlantPeaShooter, 5, 0, types.PlantNone) {
			t.Error("Expected row 5 to be invalid in day scene")
		}
		if f.Plants.CanPlant(types.PlantPeaShooter, 0, 9, types.PlantNone) {
			t.Error("Expected col 9 to be invalid")
		}
	})

	t.Run("格子已被占用", func(t *testing.T) {
		_, f := newTestScene(t, types.SceneDay)
		mustPlant(t, f, types.PlantPeaShooter, 1, 1)
		if f.Plants.CanPlant(types.PlantSnowPea, 1, 1, types.PlantNone) {
			t.Error("Expected occupied cell to reject a second plant")
		}
	})

	t.Run("弹坑不能种植", func(t *testing.T) {
		_, f := newTestScene(t, types.SceneDay)
		f.GridItems.Create(types.GridItemCrater, 2, 2)
		if f.Plants.CanPlant(types.PlantPeaShooter, 2, 2, types.PlantNone) {
			t.Error("Expected crater to reject planting")
		}
	})

	t.Run("墓碑只能种墓碑吞噬者", func(t *testing.T) {
		_, f := newTestScene(t, types.SceneNight)
		f.GridItems.Create(types.GridItemGrave, 2, 6)
		if f.Plants.CanPlant(types.PlantPeaShooter, 2, 6, types.PlantNone) {
			t.Error("Expected grave to reject pea shooter")
		}
		if !f.Plants.CanPlant(types.PlantGraveBuster, 2, 6, types.PlantNone) {
			t.Error("Expected grave buster to be plantable on a grave")
		}
		if f.Plants.CanPlant(types.PlantGraveBuster, 2, 5, types.PlantNone) {
			t.Error("Expected grave buster to require a grave")
		}
	})

	t.Run("阳光不足", func(t *testing.T) {
		s, f := newTestScene(t, types.SceneDay)
		s.Sun.Sun = 50
		if f.Plants.CanPlant(types.PlantPeaShooter, 0, 0, types.PlantNone) {
			t.Error("Expected insufficient sun to reject planting")
		}
		if !f.Plants.CanPlant(types.PlantSunflower, 0, 0, types.PlantNone) {
			t.Error("Expected sunflower to be affordable with 50 sun")
		}
	})

	t.Run("升级植物需要基础植物", func(t *testing.T) {
		_, f := newTestScene(t, types.SceneDay)
		if f.Plants.CanPlant(types.PlantTwinSunflower, 0, 0, types.PlantNone) {
			t.Error("Expected twin sunflower to require a sunflower")
		}
		mustPlant(t, f, types.PlantSunflower, 0, 0)
		if !f.Plants.CanPlant(types.PlantTwinSunflower, 0, 0, types.PlantNone) {
			t.Error("Expected twin sunflower over sunflower to be valid")
		}
	})

	t.Run("坚果修补阈值", func(t *testing.T) {
		_, f := newTestScene(t, types.SceneDay)
		nut := mustPlant(t, f, types.PlantWallnut, 3, 3)
		if f.Plants.CanPlant(types.PlantWallnut, 3, 3, types.PlantNone) {
			t.Error("Expected healthy wallnut to reject repair")
		}
		nut.HP = 2665
		if !f.Plants.CanPlant(types.PlantWallnut, 3, 3, types.PlantNone) {
			t.Error("Expected damaged wallnut to accept repair")
		}
	})

	t.Run("水生植物只能种在水路", func(t *testing.T) {
		_, f := newTestScene(t, types.ScenePool)
		if f.Plants.CanPlant(types.PlantLilyPad, 0, 0, types.PlantNone) {
			t.Error("Expected lily pad to reject a land row")
		}
		if !f.Plants.CanPlant(types.PlantLilyPad, 2, 0, types.PlantNone) {
			t.Error("Expected lily pad on water row")
		}
		if f.Plants.CanPlant(types.PlantPeaShooter, 3, 0, types.PlantNone) {
			t.Error("Expected pea shooter on bare water to be rejected")
		}
		mustPlant(t, f, types.PlantLilyPad, 3, 0)
		if !f.Plants.CanPlant(types.PlantPeaShooter, 3, 0, types.PlantNone) {
			t.Error("Expected pea shooter on lily pad to be valid")
		}
	})

	t.Run("屋顶需要花盆", func(t *testing.T) {
		_, f := newTestScene(t, types.SceneRoof)
		if f.Plants.CanPlant(types.PlantCabbagepult, 1, 1, types.PlantNone) {
			t.Error("Expected roof without pot to reject planting")
		}
		mustPlant(t, f, types.PlantFlowerPot, 1, 1)
		if !f.Plants.CanPlant(types.PlantCabbagepult, 1, 1, types.PlantNone) {
			t.Error("Expected plant on flower pot to be valid")
		}
	})

	t.Run("冰道覆盖", func(t *testing.T) {
		s, f := newTestScene(t, types.SceneDay)
		s.IcePath.Countdown[1] = 100
		s.IcePath.X[1] = 300
		if f.Plants.CanPlant(types.PlantPeaShooter, 1, 5, types.PlantNone) {
			t.Error("Expected cell right of the ice tip to be covered")
		}
		if !f.Plants.CanPlant(types.PlantPeaShooter, 1, 1, types.PlantNone) {
			t.Error("Expected cell left of the ice tip to be free")
		}
	})
}

// TestPlantFactoryCost 测试升级植物的递增花费
func TestPlantFactoryCost(t *testing.T) {
	_, f := newTestScene(t, types.SceneDay)
	base := f.Plants.Cost(types.PlantGatlingPea)

	mustPlant(t, f, types.PlantRepeater, 0, 0)
	mustPlant(t, f, types.PlantGatlingPea, 0, 0)

	if got := f.Plants.Cost(types.PlantGatlingPea); got != base+UpgradeCostStep {
		t.Errorf("Expected cost %d, got %d", base+UpgradeCostStep, got)
	}
	if got := f.Plants.Cost(types.PlantPeaShooter); got != 100 {
		t.Errorf("Expected pea shooter cost 100, got %d", got)
	}
}

// TestPlantFactorySlots 测试各类植物占用的槽位
func TestPlantFactorySlots(t *testing.T) {
	s, f := newTestScene(t, types.ScenePool)

	lily := mustPlant(t, f, types.PlantLilyPad, 2, 3)
	pea := mustPlant(t, f, types.PlantPeaShooter, 2, 3)
	pumpkin := mustPlant(t, f, types.PlantPumpkin, 2, 3)

	cell := s.PlantMap[2][3]
	if cell.Base != lily.ID || cell.Content != pea.ID || cell.Pumpkin != pumpkin.ID {
		t.Errorf("Expected slots base=%d content=%d pumpkin=%d, got %+v", lily.ID, pea.ID, pumpkin.ID, cell)
	}

	got := f.Plants.PlantsAt(2, 3)
	if len(got) != 3 || got[0] != pumpkin {
		t.Errorf("Expected pumpkin first of 3 plants, got %d plants", len(got))
	}
}

// TestPlantFactoryCobCannon 测试玉米炮占用两格
func TestPlantFactoryCobCannon(t *testing.T) {
	s, f := newTestScene(t, types.SceneDay)
	left := mustPlant(t, f, types.PlantKernelpult, 1, 4)
	right := mustPlant(t, f, types.PlantKernelpult, 1, 5)

	cob := mustPlant(t, f, types.PlantCobCannon, 1, 4)
	if !left.IsDead || !right.IsDead {
		t.Error("Expected both kernelpults to be replaced")
	}
	if s.PlantMap[1][4].Content != cob.ID || s.PlantMap[1][5].Content != cob.ID {
		t.Error("Expected cob cannon to occupy two cells")
	}
	if cob.Status != types.PlantStatusCobCannonUnarmedIdle {
		t.Errorf("Expected unarmed cob, got %v", cob.Status)
	}

	f.Plants.Destroy(cob)
	if !s.PlantMap[1][4].IsEmpty() || !s.PlantMap[1][5].IsEmpty() {
		t.Error("Expected both cells cleared after destroy")
	}
}

// TestPlantFactoryDestroy 测试销毁植物清理槽位与梯子
func TestPlantFactoryDestroy(t *testing.T) {
	s, f := newTestScene(t, types.SceneDay)
	nut := mustPlant(t, f, types.PlantWallnut, 0, 6)
	ladder := f.GridItems.Create(types.GridItemLadder, 0, 6)

	f.Plants.Destroy(nut)

	if !nut.IsDead {
		t.Error("Expected plant marked dead")
	}
	if s.Plant(nut.ID) != nil {
		t.Error("Expected dead plant lookup to return nil")
	}
	if !s.PlantMap[0][6].IsEmpty() {
		t.Error("Expected cell cleared")
	}
	if !ladder.IsDisappeared {
		t.Error("Expected ladder to disappear with the plant")
	}

	s.CollectGarbage()
	if s.Plants.Len() != 0 {
		t.Errorf("Expected empty pool after sweep, got %d", s.Plants.Len())
	}
}
