package systems

import "github.com/decker502/pvzemu/pkg/scene"

// IcePathSystem 冰道倒计时，归零时冰道融化
type IcePathSystem struct {
	scene *scene.Scene
}

// NewIcePathSystem 创建冰道系统
func NewIcePathSystem(s *scene.Scene) *IcePathSystem {
	return &IcePathSystem{scene: s}
}

// Update 递减每行的冰道倒计时
func (s *IcePathSystem) Update() {
	ip := &s.scene.IcePath
	for row := 0; row < s.scene.Rows; row++ {
		if ip.Countdown[row] <= 0 {
			continue
		}
		ip.Countdown[row]--
		if ip.Countdown[row] == 0 {
			ip.ResetRow(row)
		}
	}
}
