package components

import "github.com/decker502/pvzemu/pkg/types"

// GridItem 场地物品（墓碑、弹坑、梯子）
type GridItem struct {
	ID            int                `json:"id"`
	Type          types.GridItemType `json:"type"`
	Row           int                `json:"row"`
	Col           int                `json:"col"`
	Countdown     int                `json:"countdown"`
	IsDisappeared bool               `json:"is_disappeared"`
}

// NewGridItem 创建场地物品
func NewGridItem(gt types.GridItemType, row, col int) *GridItem {
	return &GridItem{ID: -1, Type: gt, Row: row, Col: col}
}

// SetID 实现 ecs.Identifiable
func (g *GridItem) SetID(id int) {
	g.ID = id
}
