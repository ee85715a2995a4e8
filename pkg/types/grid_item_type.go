package types

import "fmt"

// GridItemType 场地物品类型
type GridItemType int

const (
	GridItemNone   GridItemType = 0x0
	GridItemGrave  GridItemType = 0x1 // 墓碑
	GridItemCrater GridItemType = 0x2 // 弹坑
	GridItemLadder GridItemType = 0x3 // 梯子
)

var gridItemKeys = map[GridItemType]string{
	GridItemNone:   "none",
	GridItemGrave:  "grave",
	GridItemCrater: "crater",
	GridItemLadder: "ladder",
}

// String 返回场地物品键名
func (g GridItemType) String() string {
	if k, ok := gridItemKeys[g]; ok {
		return k
	}
	return "unknown"
}

// ParseGridItemType 解析场地物品键名
func ParseGridItemType(key string) (GridItemType, error) {
	for t, k := range gridItemKeys {
		if k == key && t != GridItemNone {
			return t, nil
		}
	}
	return GridItemNone, fmt.Errorf("unknown grid item type %q", key)
}
