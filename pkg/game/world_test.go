package game

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/decker502/pvzemu/pkg/scene"
	"github.com/decker502/pvzemu/pkg/types"
)

// TestWorld_PeaScenario 白天种下豌豆射手，40 帧内同行出现一颗豌豆
func TestWorld_PeaScenario(t *testing.T) {
	w := newTestWorld(t, types.SceneDay)
	p := w.Plant(types.PlantPeaShooter, 2, 0)
	if p == nil {
		t.Fatal("Expected peashooter to be planted")
	}
	p.Countdown.Generate = 0
	z := w.Spawn(types.ZombieBasic, 2, 700)
	z.DX = 0

	for i := 0; i < 40 && w.Scene().Projectiles.Len() == 0; i++ {
		w.Update()
	}

	snap := w.Snapshot()
	if len(snap.Projectiles) != 1 {
		t.Fatalf("Expected exactly 1 projectile, got %d", len(snap.Projectiles))
	}
	proj := snap.Projectiles[0]
	if proj.Row != 2 {
		t.Errorf("Expected projectile row 2, got %d", proj.Row)
	}
	if int(proj.X) <= p.X {
		t.Errorf("Expected projectile x > %d, got %v", p.X, proj.X)
	}
}

// TestWorld_Determinism 相同种子与动作序列产生逐位相同的快照
func TestWorld_Determinism(t *testing.T) {
	run := func() string {
		w := New(types.SceneDay, 20240601)
		for row := 0; row < 5; row++ {
			w.Plant(types.PlantPeaShooter, row, 0)
			w.Plant(types.PlantSunflower, row, 1)
		}
		w.Plant(types.PlantWallnut, 2, 6)
		w.Spawn(types.ZombieConeHead, 1, 750)
		w.Step(3000)
		return mustToJSON(t, w)
	}

	first := run()
	second := run()
	if first != second {
		t.Error("Expected identical snapshots for identical runs")
	}
}

// TestWorld_PlantSpendsSun 种植扣除阳光，阳光不足时拒绝
func TestWorld_PlantSpendsSun(t *testing.T) {
	w := newTestWorld(t, types.SceneDay)
	s := w.Scene()

	if w.Plant(types.PlantPeaShooter, 0, 0) == nil {
		t.Fatal("Expected peashooter to be planted")
	}
	if s.Sun.Sun != scene.MaxSun-100 {
		t.Errorf("Expected sun %d, got %d", scene.MaxSun-100, s.Sun.Sun)
	}

	s.Sun.Sun = 99
	if w.Plant(types.PlantPeaShooter, 1, 0) != nil {
		t.Error("Expected planting to fail with insufficient sun")
	}
	if s.Sun.Sun != 99 {
		t.Errorf("Expected failed plant to keep sun at 99, got %d", s.Sun.Sun)
	}
}

// TestWorld_PlantRejectsInvalidCells 越界与占用的格子返回 nil
func TestWorld_PlantRejectsInvalidCells(t *testing.T) {
	w := newTestWorld(t, types.SceneDay)
	w.Plant(types.PlantPeaShooter, 2, 2)

	tests := []struct {
		name     string
		plant    types.PlantType
		row, col int
	}{
		{"negative row", types.PlantPeaShooter, -1, 0},
		{"row past lawn", types.PlantPeaShooter, 5, 0},
		{"column past lawn", types.PlantPeaShooter, 0, 9},
		{"occupied", types.PlantSunflower, 2, 2},
		{"lily pad on land", types.PlantLilyPad, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if p := w.Plant(tt.plant, tt.row, tt.col); p != nil {
				t.Errorf("Expected nil plant, got %s at (%d, %d)", p.Type, p.Row, p.Col)
			}
		})
	}
}

// TestWorld_PlantCard 卡槽冷却与模仿者卡片
func TestWorld_PlantCard(t *testing.T) {
	w := newTestWorld(t, types.SceneDay)
	if err := w.SetCard(0, types.PlantPeaShooter, types.PlantNone); err != nil {
		t.Fatalf("SetCard failed: %v", err)
	}
	if err := w.SetCard(1, types.PlantImitater, types.PlantWallnut); err != nil {
		t.Fatalf("SetCard failed: %v", err)
	}
	if err := w.SetCard(10, types.PlantPeaShooter, types.PlantNone); err == nil {
		t.Error("Expected error for card index 10")
	}

	if p := w.PlantCard(0, 0, 0); p == nil || p.Type != types.PlantPeaShooter {
		t.Fatal("Expected peashooter from card 0")
	}
	if w.Scene().Cards[0].ColdDown != 750 {
		t.Errorf("Expected cooldown 750, got %d", w.Scene().Cards[0].ColdDown)
	}
	if w.PlantCard(0, 1, 0) != nil {
		t.Error("Expected card 0 to be cooling down")
	}

	p := w.PlantCard(1, 3, 3)
	if p == nil {
		t.Fatal("Expected imitater from card 1")
	}
	if p.Type != types.PlantImitater || p.ImitaterTarget != types.PlantWallnut {
		t.Errorf("Expected imitater of wallnut, got %s -> %s", p.Type, p.ImitaterTarget)
	}
	if w.Scene().Cards[1].ColdDown != 3000 {
		t.Errorf("Expected wallnut cooldown 3000, got %d", w.Scene().Cards[1].ColdDown)
	}

	w.Step(750)
	if w.PlantCard(0, 1, 0) == nil {
		t.Error("Expected card 0 ready after 750 ticks")
	}
}

// TestWorld_RemovePlantPriority 铲子先铲南瓜头，再铲主体
func TestWorld_RemovePlantPriority(t *testing.T) {
	w := newTestWorld(t, types.SceneDay)
	pea := w.Plant(types.PlantPeaShooter, 2, 4)
	pumpkin := w.Plant(types.PlantPumpkin, 2, 4)
	if pea == nil || pumpkin == nil {
		t.Fatal("Expected peashooter and pumpkin in the same cell")
	}

	if !w.RemovePlant(2, 4) {
		t.Fatal("Expected first removal to succeed")
	}
	if !pumpkin.IsDead || pea.IsDead {
		t.Errorf("Expected pumpkin removed first, pumpkin dead=%v pea dead=%v", pumpkin.IsDead, pea.IsDead)
	}

	if !w.RemovePlant(2, 4) || !pea.IsDead {
		t.Error("Expected second removal to take the peashooter")
	}
	if w.RemovePlant(2, 4) {
		t.Error("Expected empty cell removal to fail")
	}
}

// TestWorld_StepStopsAtGameOver 僵尸进家后 Step 提前返回
func TestWorld_StepStopsAtGameOver(t *testing.T) {
	w := newTestWorld(t, types.SceneDay)
	w.Spawn(types.ZombieBasic, 2, -200)

	if !w.Step(1000) {
		t.Fatal("Expected game over")
	}
	if w.Scene().Clock != 1 {
		t.Errorf("Expected step to stop at tick 1, got %d", w.Scene().Clock)
	}

	clock := w.Scene().Clock
	if !w.Update() {
		t.Error("Expected Update to keep reporting game over")
	}
	if w.Scene().Clock != clock {
		t.Error("Expected clock to stop after game over")
	}
}

// TestWorld_SnapshotIsReadOnly 序列化不改变模拟状态
func TestWorld_SnapshotIsReadOnly(t *testing.T) {
	w := newTestWorld(t, types.SceneDay)
	w.Plant(types.PlantPeaShooter, 2, 0)
	w.Spawn(types.ZombieBucketHead, 2, 700)
	w.Step(100)

	first := mustToJSON(t, w)
	second := mustToJSON(t, w)
	if first != second {
		t.Error("Expected repeated serialization to be stable")
	}
	if w.Scene().Clock != 100 {
		t.Errorf("Expected clock 100, got %d", w.Scene().Clock)
	}
}

// TestWorld_SnapshotFields 快照包含全部契约字段
func TestWorld_SnapshotFields(t *testing.T) {
	w := newTestWorld(t, types.ScenePool)
	w.Plant(types.PlantLilyPad, 2, 3)
	w.Plant(types.PlantSunflower, 0, 0)
	w.Spawn(types.ZombieBasic, 0, 700)
	w.AddGridItem(types.GridItemCrater, 4, 4)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(mustToJSON(t, w)), &fields); err != nil {
		t.Fatalf("Failed to parse snapshot: %v", err)
	}

	for _, key := range []string{
		"type", "rows", "clock", "flags", "sun", "spawn", "cards",
		"plants", "zombies", "griditems", "projectiles", "ice_path", "plant_map",
	} {
		if _, ok := fields[key]; !ok {
			t.Errorf("Expected snapshot field %q", key)
		}
	}

	snap := w.Snapshot()
	if snap.Rows != 6 || len(snap.PlantMap) != 6 {
		t.Errorf("Expected 6 rows in pool, got rows=%d plant_map=%d", snap.Rows, len(snap.PlantMap))
	}
	if len(snap.Plants) != 2 {
		t.Fatalf("Expected 2 plants, got %d", len(snap.Plants))
	}
	if snap.Plants[0].ID >= snap.Plants[1].ID {
		t.Error("Expected plants sorted by ascending id")
	}
	if snap.PlantMap[2][3].Base != snap.Plants[0].ID {
		t.Errorf("Expected lily pad in base slot, got %d", snap.PlantMap[2][3].Base)
	}
}

// TestWorld_DebugDetectsCorruption 调试模式下行索引失步会使世界进入损坏状态
func TestWorld_DebugDetectsCorruption(t *testing.T) {
	w := newTestWorld(t, types.SceneDay)
	w.Debug = true
	z := w.Spawn(types.ZombieBasic, 2, 700)

	if w.Update() {
		t.Fatal("Expected healthy tick")
	}

	w.Scene().ZombiesByRow.Remove(z.Row, z.ID)
	if !w.Update() {
		t.Error("Expected corrupted tick to stop the world")
	}
	if !errors.Is(w.Err(), scene.ErrInvariant) {
		t.Errorf("Expected ErrInvariant, got %v", w.Err())
	}

	clock := w.Scene().Clock
	w.Step(10)
	if w.Scene().Clock != clock {
		t.Error("Expected corrupted world to stop advancing")
	}
}

// TestWorld_Reset 重置后回到初始状态
func TestWorld_Reset(t *testing.T) {
	w := newTestWorld(t, types.SceneDay)
	w.Plant(types.PlantPeaShooter, 2, 0)
	w.Step(50)

	w.Reset(types.SceneRoof)

	s := w.Scene()
	if s.Type != types.SceneRoof || s.Rows != 5 {
		t.Errorf("Expected roof with 5 rows, got %s with %d", s.Type, s.Rows)
	}
	if s.Clock != 0 {
		t.Errorf("Expected clock 0, got %d", s.Clock)
	}
	if s.Plants.Len() != 0 {
		t.Errorf("Expected no plants, got %d", s.Plants.Len())
	}
	if s.Sun.Sun != scene.MaxSun {
		t.Errorf("Expected sun %d, got %d", scene.MaxSun, s.Sun.Sun)
	}
}

// TestWorld_LaunchCob 只有格子上装填完毕的玉米炮能发射
func TestWorld_LaunchCob(t *testing.T) {
	w := newTestWorld(t, types.SceneDay)
	w.Plant(types.PlantKernelpult, 1, 2)
	w.Plant(types.PlantKernelpult, 1, 3)
	cob := w.Plant(types.PlantCobCannon, 1, 2)
	if cob == nil {
		t.Fatal("Expected cob cannon over two kernel-pults")
	}

	if w.LaunchCob(1, 2, 600, 300) {
		t.Error("Expected unarmed cob cannon to refuse")
	}
	if w.LaunchCob(0, 0, 600, 300) {
		t.Error("Expected empty cell to refuse")
	}

	cob.Status = types.PlantStatusCobCannonArmedIdle
	if !w.LaunchCob(1, 3, 600, 300) {
		t.Error("Expected armed cob cannon to launch from its right cell")
	}
}

// TestWorld_GameOverTickKeepsDeadEntities 进家那一帧不回收死亡实体
func TestWorld_GameOverTickKeepsDeadEntities(t *testing.T) {
	w := newTestWorld(t, types.SceneDay)
	w.Spawn(types.ZombieBasic, 0, -200)
	dead := w.Spawn(types.ZombieBasic, 3, 700)
	dead.IsDead = true

	if !w.Update() {
		t.Fatal("Expected game over on the first tick")
	}

	snap := w.Snapshot()
	if len(snap.Zombies) != 2 {
		t.Fatalf("Expected 2 zombies in the final snapshot, got %d", len(snap.Zombies))
	}
	found := false
	for _, z := range snap.Zombies {
		if z.ID == dead.ID {
			found = z.IsDead
		}
	}
	if !found {
		t.Error("Expected the dead zombie to stay in the snapshot")
	}
}
