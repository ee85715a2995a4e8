package systems

import (
	"testing"

	"github.com/decker502/pvzemu/pkg/components"
	"github.com/decker502/pvzemu/pkg/entities"
	"github.com/decker502/pvzemu/pkg/scene"
	"github.com/decker502/pvzemu/pkg/types"
)

// newTestSystems 创建测试场景、工厂与系统（固定种子，关闭出怪）
func newTestSystems(t *testing.T, st types.SceneType) (*scene.Scene, *entities.Factories, *Systems) {
	t.Helper()
	s := scene.New(st, 1, nil)
	s.StopSpawn = true
	f := entities.NewFactories(s)
	return s, f, NewSystems(s, f)
}

// mustPlant 校验并种植，失败时终止测试
func mustPlant(t *testing.T, f *entities.Factories, pt types.PlantType, row, col int) *components.Plant {
	t.Helper()
	if !f.Plants.CanPlant(pt, row, col, types.PlantNone) {
		t.Fatalf("Expected %s to be plantable at (%d, %d)", pt, row, col)
	}
	p := f.Plants.Create(pt, row, col, types.PlantNone)
	if p == nil {
		t.Fatalf("Failed to create %s at (%d, %d)", pt, row, col)
	}
	return p
}

// mustSpawn 在指定行与 x 坐标创建僵尸
func mustSpawn(t *testing.T, f *entities.Factories, zt types.ZombieType, row int, x float64) *components.Zombie {
	t.Helper()
	z := f.Zombies.CreateAt(zt, row, x)
	if z == nil {
		t.Fatalf("Failed to create %s at row %d", zt, row)
	}
	return z
}

// moveZombie 平移僵尸（浮点与整数坐标同步）
func moveZombie(z *components.Zombie, dx, dy int) {
	z.X += float64(dx)
	z.IntX += dx
	z.Y += float64(dy)
	z.IntY += dy
}

// placeHitBox 移动僵尸使判定框左边缘位于 left、垂直中心位于 centerY
func placeHitBox(z *components.Zombie, left, centerY int) {
	r := z.HitBoxRect()
	moveZombie(z, left-r.X, centerY-(r.Y+r.Height/2))
}

// alignAttackBox 移动僵尸使啃食判定框与植物判定框左对齐
func alignAttackBox(z *components.Zombie, p *components.Plant) {
	moveZombie(z, p.HitBox().X-z.AttackBoxRect().X, 0)
}

// stepZombies 只推进僵尸系统 n 帧
func stepZombies(sys *Systems, n int) {
	for i := 0; i < n; i++ {
		sys.Zombies.Update()
	}
}
