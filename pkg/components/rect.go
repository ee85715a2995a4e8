package components

// Rect 整数像素矩形（判定框）
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// OverlapLen 两个矩形在水平方向的重叠长度
//
// 不相交时返回负值，其绝对值是两者之间的水平间距。
// 目标选择依赖这个带符号的距离（例如倭瓜的 70/110 像素索敌范围）。
func (r Rect) OverlapLen(o Rect) int {
	return min(r.X+r.Width, o.X+o.Width) - max(r.X, o.X)
}

// OverlapsCircle 矩形是否与圆相交（含边界）
func (r Rect) OverlapsCircle(x, y, radius int) bool {
	dx := 0
	if x < r.X {
		dx = r.X - x
	} else if x > r.X+r.Width {
		dx = x - (r.X + r.Width)
	}

	dy := 0
	if y < r.Y {
		dy = r.Y - y
	} else if y > r.Y+r.Height {
		dy = y - (r.Y + r.Height)
	}

	return dx*dx+dy*dy <= radius*radius
}

// CenterX 水平中心点
func (r Rect) CenterX() int {
	return r.X + r.Width/2
}
