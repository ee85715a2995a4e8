package components

// PlantCell 一个格子的四个独立槽位，保存植物 ID（-1 表示空）
//
// 同一植物最多出现在一个槽位中（玉米炮占两格，每格各一份）。
type PlantCell struct {
	Base       int `json:"base"`        // 睡莲/花盆
	Content    int `json:"content"`     // 主体植物
	Pumpkin    int `json:"pumpkin"`     // 南瓜头
	CoffeeBean int `json:"coffee_bean"` // 咖啡豆
}

// EmptyCell 返回四个槽位均为空的格子
func EmptyCell() PlantCell {
	return PlantCell{Base: -1, Content: -1, Pumpkin: -1, CoffeeBean: -1}
}

// IsEmpty 是否所有槽位都为空
func (c PlantCell) IsEmpty() bool {
	return c.Base < 0 && c.Content < 0 && c.Pumpkin < 0 && c.CoffeeBean < 0
}

// Slots 按铲除优先级（南瓜 > 主体 > 底座 > 咖啡豆）返回非空槽位中的 ID
func (c PlantCell) Slots() []int {
	var ids []int
	for _, id := range [4]int{c.Pumpkin, c.Content, c.Base, c.CoffeeBean} {
		if id >= 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

// ClearID 清除所有引用该 ID 的槽位，返回是否有槽位被清除
func (c *PlantCell) ClearID(id int) bool {
	cleared := false
	for _, slot := range []*int{&c.Base, &c.Content, &c.Pumpkin, &c.CoffeeBean} {
		if *slot == id {
			*slot = -1
			cleared = true
		}
	}
	return cleared
}

// Contains 是否有槽位引用该 ID
func (c PlantCell) Contains(id int) bool {
	return c.Base == id || c.Content == id || c.Pumpkin == id || c.CoffeeBean == id
}
