// Package scene 定义一场战斗的聚合根
//
// Scene 持有所有实体对象池、僵尸行索引、植物格子槽位、阳光/出怪/冰道/卡槽状态
// 以及唯一的随机数生成器。所有系统通过构造时传入的 *Scene 访问这些状态，
// 不存在包级可变全局变量。
package scene

import (
	"github.com/decker502/pvzemu/pkg/components"
	"github.com/decker502/pvzemu/pkg/config"
	"github.com/decker502/pvzemu/pkg/ecs"
	"github.com/decker502/pvzemu/pkg/types"
	"github.com/decker502/pvzemu/pkg/utils"
)

// Scene 战斗场景
type Scene struct {
	Type types.SceneType
	Rows int

	Tables *config.Tables
	RNG    *utils.RNG

	Plants      *ecs.Pool[*components.Plant]
	Zombies     *ecs.Pool[*components.Zombie]
	Projectiles *ecs.Pool[*components.Projectile]
	GridItems   *ecs.Pool[*components.GridItem]

	// ZombiesByRow 僵尸行索引，必须与每个僵尸的 Row 字段同步
	ZombiesByRow *ecs.RowIndex

	// PlantMap 每个格子的植物槽位
	PlantMap [ecs.MaxRows][utils.GridColumns]components.PlantCell

	Sun     SunData
	Spawn   SpawnData
	IcePath IcePath
	Cards   [CardCount]CardData

	IsZombieDance     bool
	IsFutureEnabled   bool
	StopSpawn         bool
	EnableSplitPeaBug bool
	IsGameOver        bool

	// Clock 已执行的帧数
	Clock int

	// ZombieDancingClock 舞王舞步的全局节拍
	ZombieDancingClock int
}

// New 创建场景
//
// 参数:
//   - st: 场景类型
//   - seed: 随机种子
//   - tables: 静态数据表（nil 使用内置数据）
func New(st types.SceneType, seed int64, tables *config.Tables) *Scene {
	if tables == nil {
		tables = config.DefaultTables()
	}

	s := &Scene{
		Type:              st,
		Rows:              st.Rows(),
		Tables:            tables,
		RNG:               utils.NewRNG(seed),
		Plants:            ecs.NewPool[*components.Plant](true),
		Zombies:           ecs.NewPool[*components.Zombie](true),
		Projectiles:       ecs.NewPool[*components.Projectile](true),
		GridItems:         ecs.NewPool[*components.GridItem](true),
		ZombiesByRow:      ecs.NewRowIndex(),
		Sun:               SunData{Sun: MaxSun},
		Spawn:             newSpawnData(),
		IcePath:           newIcePath(),
		Cards:             newCards(),
		EnableSplitPeaBug: true,
	}
	for r := range s.PlantMap {
		for c := range s.PlantMap[r] {
			s.PlantMap[r][c] = components.EmptyCell()
		}
	}
	s.ZombieDancingClock = s.RNG.Int(10000)
	return s
}

// Plant 按 ID 查找存活植物，已死亡或不存在时返回 nil
func (s *Scene) Plant(id int) *components.Plant {
	p, ok := s.Plants.Get(id)
	if !ok || p.IsDead {
		return nil
	}
	return p
}

// Zombie 按 ID 查找存活僵尸，已销毁或不存在时返回 nil
func (s *Scene) Zombie(id int) *components.Zombie {
	z, ok := s.Zombies.Get(id)
	if !ok || z.IsDead {
		return nil
	}
	return z
}

// Projectile 按 ID 查找未消失的子弹
func (s *Scene) Projectile(id int) *components.Projectile {
	p, ok := s.Projectiles.Get(id)
	if !ok || p.IsDisappeared {
		return nil
	}
	return p
}

// GridItem 按 ID 查找未消失的场地物品
func (s *Scene) GridItem(id int) *components.GridItem {
	g, ok := s.GridItems.Get(id)
	if !ok || g.IsDisappeared {
		return nil
	}
	return g
}

// ValidCell 行列是否在本场景的格子范围内
func (s *Scene) ValidCell(row, col int) bool {
	return row >= 0 && row < s.Rows && col >= 0 && col < utils.GridColumns
}

// Cell 返回格子槽位的指针（越界返回 nil）
func (s *Scene) Cell(row, col int) *components.PlantCell {
	if row < 0 || row >= ecs.MaxRows || col < 0 || col >= utils.GridColumns {
		return nil
	}
	return &s.PlantMap[row][col]
}

// IsWaterGrid 是否为水池格子
func (s *Scene) IsWaterGrid(row, col int) bool {
	return col >= 0 && col < utils.GridColumns && utils.IsWaterGrid(s.Type, row)
}

// SetZombieRow 修改僵尸所在行并同步行索引
func (s *Scene) SetZombieRow(z *components.Zombie, row int) {
	if z.Row == row {
		return
	}
	s.ZombiesByRow.Move(z.Row, row, z.ID)
	z.Row = row
}

// ZombiesInRows 返回 [row-k, row+k] 行内存活僵尸的快照（按行、ID 升序）
func (s *Scene) ZombiesInRows(row, k int) []*components.Zombie {
	ids := s.ZombiesByRow.Window(row, k)
	out := make([]*components.Zombie, 0, len(ids))
	for _, id := range ids {
		if z := s.Zombie(id); z != nil {
			out = append(out, z)
		}
	}
	return out
}

// AliveZombies 返回所有存活僵尸的快照（ID 升序）
func (s *Scene) AliveZombies() []*components.Zombie {
	items := s.Zombies.Items()
	out := items[:0]
	for _, z := range items {
		if !z.IsDead {
			out = append(out, z)
		}
	}
	return out
}

// AlivePlants 返回所有存活植物的快照（ID 升序）
func (s *Scene) AlivePlants() []*components.Plant {
	items := s.Plants.Items()
	out := items[:0]
	for _, p := range items {
		if !p.IsDead {
			out = append(out, p)
		}
	}
	return out
}

// GridItemsAt 返回格子上未消失的场地物品
func (s *Scene) GridItemsAt(row, col int) []*components.GridItem {
	var out []*components.GridItem
	for _, g := range s.GridItems.Items() {
		if !g.IsDisappeared && g.Row == row && g.Col == col {
			out = append(out, g)
		}
	}
	return out
}

// HasGridItem 格子上是否有指定类型的场地物品
func (s *Scene) HasGridItem(gt types.GridItemType, row, col int) bool {
	for _, g := range s.GridItemsAt(row, col) {
		if g.Type == gt {
			return true
		}
	}
	return false
}

// CollectGarbage 帧末清理所有被标记销毁的实体
//
// 顺序：僵尸（同时移出行索引）、植物、子弹、场地物品。
func (s *Scene) CollectGarbage() {
	s.Zombies.Sweep(func(z *components.Zombie) bool { return z.IsDead }, func(z *components.Zombie) {
		s.ZombiesByRow.Remove(z.Row, z.ID)
	})
	s.Plants.Sweep(func(p *components.Plant) bool { return p.IsDead }, nil)
	s.Projectiles.Sweep(func(p *components.Projectile) bool { return p.IsDisappeared }, nil)
	s.GridItems.Sweep(func(g *components.GridItem) bool { return g.IsDisappeared }, nil)
}
