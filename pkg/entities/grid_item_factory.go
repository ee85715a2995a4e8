package entities

import (
	"github.com/decker502/pvzemu/pkg/components"
	"github.com/decker502/pvzemu/pkg/scene"
	"github.com/decker502/pvzemu/pkg/types"
)

const (
	// CraterCountdown 弹坑存在的帧数
	CraterCountdown = 18000

	// GraveRiseJitter 墓碑冒出动画的随机起始偏移
	GraveRiseJitter = 50
)

// GridItemFactory 场地物品工厂
type GridItemFactory struct {
	scene  *scene.Scene
	plants *PlantFactory
}

// NewGridItemFactory 创建场地物品工厂
// 墓碑出现时需要通过植物工厂销毁格子上的植物
func NewGridItemFactory(s *scene.Scene, plants *PlantFactory) *GridItemFactory {
	return &GridItemFactory{scene: s, plants: plants}
}

// Create 创建场地物品
//
// 参数:
//   - gt: 物品类型
//   - row, col: 所在格子
//
// 返回:
//   - *components.GridItem: 创建的物品；格子越界或类型无效时返回 nil
func (f *GridItemFactory) Create(gt types.GridItemType, row, col int) *components.GridItem {
	if !f.scene.ValidCell(row, col) || gt == types.GridItemNone {
		return nil
	}

	g := components.NewGridItem(gt, row, col)
	switch gt {
	case types.GridItemGrave:
		for _, p := range f.plants.PlantsAt(row, col) {
			f.plants.Destroy(p)
		}
		g.Countdown = -f.scene.RNG.Int(GraveRiseJitter)
	case types.GridItemCrater:
		g.Countdown = CraterCountdown
	case types.GridItemLadder:
		g.Countdown = 0
	}

	f.scene.GridItems.Add(g)
	return g
}

// Destroy 标记物品消失
func (f *GridItemFactory) Destroy(g *components.GridItem) {
	if g == nil {
		return
	}
	g.IsDisappeared = true
}
