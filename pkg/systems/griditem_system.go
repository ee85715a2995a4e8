package systems

import (
	"github.com/decker502/pvzemu/pkg/entities"
	"github.com/decker502/pvzemu/pkg/scene"
	"github.com/decker502/pvzemu/pkg/types"
)

// GraveRiseFrames 墓碑冒出动画的帧数
const GraveRiseFrames = 100

// GridItemSystem 场地物品的生命周期
type GridItemSystem struct {
	scene     *scene.Scene
	gridItems *entities.GridItemFactory
}

// NewGridItemSystem 创建场地物品系统
func NewGridItemSystem(s *scene.Scene, gridItems *entities.GridItemFactory) *GridItemSystem {
	return &GridItemSystem{scene: s, gridItems: gridItems}
}

// Update 墓碑计数增长到冒出完成；弹坑倒计时归零后消失
func (s *GridItemSystem) Update() {
	for _, g := range s.scene.GridItems.Items() {
		if g.IsDisappeared {
			continue
		}
		switch g.Type {
		case types.GridItemGrave:
			if g.Countdown < GraveRiseFrames {
				g.Countdown++
			}
		case types.GridItemCrater:
			if g.Countdown > 0 {
				g.Countdown--
				if g.Countdown == 0 {
					s.gridItems.Destroy(g)
				}
			}
		}
	}
}
