package utils

import "github.com/decker502/pvzemu/pkg/types"

// 战场布局常量
const (
	BoardWidth  = 800 // 战场宽度（像素）
	BoardHeight = 600 // 战场高度（像素）
	GridColumns = 9   // 网格列数
	CellWidth   = 80  // 每格宽度
)

// ColByX 将像素 x 坐标转换为列号
//
// x < 40 时返回 -1（房屋一侧），其余结果截断到 [0, 8]。
func ColByX(x int) int {
	if x < 40 {
		return -1
	}
	return clampInt((x-40)/CellWidth, 0, GridColumns-1)
}

// XByCol 返回列的左边界像素 x 坐标
func XByCol(col int) int {
	return col*CellWidth + 40
}

// YByCol 返回格子的像素 y 坐标（浮点版本）
//
// 屋顶场景左侧 5 列每列抬高 20 像素，形成斜坡；
// 泳池/浓雾行距 85，其余场景行距 100。
func YByCol(scene types.SceneType, row, col int) float64 {
	switch {
	case scene.IsRoof():
		offset := 0
		if col < 5 {
			offset = 20 * (5 - col)
		}
		return float64(85*row+offset+80) - 10
	case scene.HasPool():
		return float64(85*row + 80)
	default:
		return float64(100*row + 80)
	}
}

// YByRowAndX 连续版本的 y 坐标，用于子弹与僵尸
//
// 屋顶场景 x < 440 的部分按 1/4 斜率抬高。
func YByRowAndX(scene types.SceneType, row int, x float64) float64 {
	if scene.IsRoof() {
		offset := 0.0
		if x < 440 {
			offset = (440.0 - x) * 0.25
		}
		return YByCol(scene, row, 8) + offset
	}
	return YByCol(scene, row, 0)
}

// YByRowAndCol 返回格子的整数 y 坐标（植物放置使用）
func YByRowAndCol(scene types.SceneType, row, col int) int {
	switch {
	case scene.IsRoof():
		offset := 0
		if col < 5 {
			offset = 20 * (5 - col)
		}
		return 85*row + offset + 70
	case scene.HasPool():
		return 85*row + 80
	default:
		return 100*row + 80
	}
}

// RowByXY 将像素坐标转换为行号，不在战场内返回 -1
//
// 负数被除数只会出现在截断到 0 的分支里，因此整数除法的取整方向不影响结果。
func RowByXY(scene types.SceneType, x, y int) int {
	col := ColByX(x)
	if col == -1 || y < 80 {
		return -1
	}

	switch {
	case scene == types.SceneDay || scene == types.SceneNight:
		return max(0, (y-80)/100)
	case scene.HasPool():
		return clampInt((y-80)/85, 0, 5)
	case scene.IsRoof():
		var row int
		if col < 5 {
			row = floorDiv(y-20*(4-col)-80, 85)
		} else {
			row = (y - 80) / 85
		}
		return clampInt(row, 0, 4)
	default:
		return -1
	}
}

// IsWaterGrid 是否为水路格子（泳池/浓雾的第 2、3 行）
func IsWaterGrid(scene types.SceneType, row int) bool {
	return scene.HasPool() && (row == 2 || row == 3)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// floorDiv 向负无穷取整的整数除法
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
