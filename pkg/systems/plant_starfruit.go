package systems

import (
	"math"

	"github.com/decker502/pvzemu/pkg/components"
	"github.com/decker502/pvzemu/pkg/entities"
	"github.com/decker502/pvzemu/pkg/types"
)

// 杨桃五个方向的子弹速度：后、下、上、斜下、斜上
var starVelocities = func() [5][2]float64 {
	v := entities.PeaSpeed
	c := v * math.Cos(math.Pi/6)
	sn := v * math.Sin(math.Pi/6)
	return [5][2]float64{{-v, 0}, {0, v}, {0, -v}, {c, sn}, {c, -sn}}
}()

// starfruitHasTarget 杨桃的五个方向中是否有能命中的僵尸
//
// 同行只要僵尸在杨桃身后就算命中；其他行预测僵尸在星星飞到时的位置，
// 再检查连线角度是否落在斜向子弹的命中区间内。
func (s *PlantSystem) starfruitHasTarget(p *components.Plant) bool {
	if p.Countdown.Eaten > 0 {
		return true
	}

	flags := activationFlags(p.Type)
	px := float64(p.X + 40)
	py := float64(p.Y + 40)

	for _, z := range s.scene.AliveZombies() {
		if !s.damage.CanBeAttacked(z, flags) {
			continue
		}

		zr := z.HitBoxRect()
		if z.Row == p.Row {
			if float64(zr.X+zr.Width) < px {
				return true
			}
			continue
		}

		if z.Type == types.ZombieDigger {
			zr.Width += 10
		}

		halfW := float64(zr.Width) / 2
		cx := float64(zr.X) + halfW
		cy := float64(zr.Y) + float64(zr.Height)/2
		t := math.Hypot(cx-px, cy-py) / entities.PeaSpeed

		predict := s.animator.PredictAfter(z, t)
		if predict-halfW < px && px < predict+halfW {
			return true
		}

		xp := predict + halfW - px
		yp := cy - py
		if math.Abs(xp) < 0.001 {
			continue
		}

		deg := math.Atan2(yp, xp) * 180 / math.Pi
		if abs(z.Row-p.Row) >= 2 {
			if (deg > 25 && deg < 35) || (deg > -38 && deg < -28) {
				return true
			}
		} else if (deg > 20 && deg < 40) || (deg > -45 && deg < -25) {
			return true
		}
	}
	return false
}

// starfruitAttack 向五个方向各发射一颗星星
func (s *PlantSystem) starfruitAttack(p *components.Plant) {
	flags := activationFlags(p.Type)
	for _, v := range starVelocities {
		proj := s.factories.Projectiles.Create(types.ProjectileStar, p.Row, float64(p.X+25), float64(p.Y+25))
		proj.Flags = flags
		proj.Motion = types.MotionStarfruit
		proj.DX = v[0]
		proj.DY2 = v[1]
	}
}
