package systems

import (
	"github.com/decker502/pvzemu/pkg/scene"
	"github.com/decker502/pvzemu/pkg/types"
)

const (
	// NaturalSunValue 每次自然掉落的阳光数
	NaturalSunValue = 25

	// naturalSunBase / naturalSunStep / naturalSunCap 自然掉落基础间隔随已掉落次数增长，最高到上限
	naturalSunBase = 425
	naturalSunStep = 10
	naturalSunCap  = 950

	// naturalSunJitter 间隔的随机抖动范围
	naturalSunJitter = 275
)

// SunSpawnSystem 管理天空自然掉落的阳光
//
// 只在白天、泳池、屋顶场景生效，掉落的阳光直接计入总数（无收集过程）。
type SunSpawnSystem struct {
	scene *scene.Scene
}

// NewSunSpawnSystem 创建自然阳光系统，并生成第一次掉落的倒计时
func NewSunSpawnSystem(s *scene.Scene) *SunSpawnSystem {
	sys := &SunSpawnSystem{scene: s}
	s.Sun.NaturalSunCountdown = sys.nextCountdown()
	return sys
}

// NaturalDropEnabled 场景是否有天空阳光
func NaturalDropEnabled(st types.SceneType) bool {
	return st == types.SceneDay || st == types.ScenePool || st == types.SceneRoof
}

// NaturalSunInterval 第 generated 次掉落后的基础间隔（不含随机抖动）
func NaturalSunInterval(generated int) int {
	return min(generated*naturalSunStep+naturalSunBase, naturalSunCap)
}

func (s *SunSpawnSystem) nextCountdown() int {
	return NaturalSunInterval(s.scene.Sun.NaturalSunGenerated) + s.scene.RNG.Int(naturalSunJitter)
}

// Update 推进掉落倒计时
func (s *SunSpawnSystem) Update() {
	if !NaturalDropEnabled(s.scene.Type) {
		return
	}

	sun := &s.scene.Sun
	sun.NaturalSunCountdown--
	if sun.NaturalSunCountdown > 0 {
		return
	}
	sun.AddSun(NaturalSunValue)
	sun.NaturalSunGenerated++
	sun.NaturalSunCountdown = s.nextCountdown()
}
