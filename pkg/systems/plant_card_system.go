package systems

import (
	"github.com/decker502/pvzemu/pkg/scene"
	"github.com/decker502/pvzemu/pkg/types"
)

// PlantCardSystem 卡槽冷却
type PlantCardSystem struct {
	scene *scene.Scene
}

// NewPlantCardSystem 创建卡槽系统
func NewPlantCardSystem(s *scene.Scene) *PlantCardSystem {
	return &PlantCardSystem{scene: s}
}

// Update 每帧冷却减一，不低于 0
func (s *PlantCardSystem) Update() {
	for i := range s.scene.Cards {
		if s.scene.Cards[i].ColdDown > 0 {
			s.scene.Cards[i].ColdDown--
		}
	}
}

// Ready 卡槽是否可用（已设置卡片且冷却完毕）
func (s *PlantCardSystem) Ready(i int) bool {
	if i < 0 || i >= scene.CardCount {
		return false
	}
	c := s.scene.Cards[i]
	return c.Type != types.PlantNone && c.ColdDown == 0
}

// StartCooldown 使用卡片后按植物数据开始冷却
func (s *PlantCardSystem) StartCooldown(i int) {
	c := &s.scene.Cards[i]
	pt := c.Type
	if pt == types.PlantImitater && c.ImitaterType != types.PlantNone {
		pt = c.ImitaterType
	}
	if data := s.scene.Tables.Plant(pt); data != nil {
		c.ColdDown = data.Cooldown
	}
}
