package systems

import (
	"math"

	"github.com/decker502/pvzemu/pkg/components"
	"github.com/decker502/pvzemu/pkg/types"
)

const (
	// MagnetshroomCooldown 磁力菇吸走金属后的冷却
	MagnetshroomCooldown = 1500

	// magnetRange / magnetEatingRange 磁力菇的吸取半径（被吸对象正在啃食时更大）
	magnetRange       = 270
	magnetEatingRange = 320

	// scaredRadius 胆小菇的惊吓半径
	scaredRadius = 120
)

func (s *PlantSystem) updateDoomshroom(p *components.Plant) {
	if p.IsSleeping || p.Status == types.PlantStatusWork {
		return
	}
	p.Status = types.PlantStatusWork
	p.Countdown.Effect = 100
	p.SetReanim(types.PlantAnimExplode, types.ReanimOnce, 23)
}

func (s *PlantSystem) updateIceshroom(p *components.Plant) {
	if p.IsSleeping || p.Status == types.PlantStatusWork {
		return
	}
	p.Status = types.PlantStatusWork
	p.Countdown.Effect = 100
}

// updateSunshroom 阳光菇从小长大
func (s *PlantSystem) updateSunshroom(p *components.Plant) {
	if p.IsSleeping {
		return
	}

	switch {
	case p.Status == types.PlantStatusSunshroomSmall && p.Countdown.Status <= 0:
		p.Status = types.PlantStatusSunshroomGrow
		p.SetReanim(types.PlantAnimGrow, types.ReanimOnce, 12)
	case p.Status == types.PlantStatusSunshroomGrow && p.Reanim.Finished():
		p.Status = types.PlantStatusSunshroomBig
		p.SetReanim(types.PlantAnimBigIdle, types.ReanimRepeat, s.scene.RNG.Float(12, 15))
	}
}

// updateMagnetshroom 磁力菇：冷却结束后吸走范围内最近的金属物品
func (s *PlantSystem) updateMagnetshroom(p *components.Plant) {
	if p.IsSleeping {
		return
	}

	switch p.Status {
	case types.PlantStatusMagnetshroomInactiveIdle:
		if p.Countdown.Status == 0 {
			p.Status = types.PlantStatusWait
			p.SetReanim(types.PlantAnimIdle, types.ReanimRepeat, s.scene.RNG.Float(10, 15))
		}
		return
	case types.PlantStatusMagnetshroomWorking:
		if p.Reanim.Finished() {
			p.Status = types.PlantStatusMagnetshroomInactiveIdle
			p.SetReanim(types.PlantAnimNonactiveIdle2, types.ReanimRepeat, 2)
		}
		return
	}

	if z := s.magnetTarget(p); z != nil {
		s.attractMetal(z)
		s.startMagnetCooldown(p)
		return
	}

	if ladder := s.magnetLadder(p); ladder != nil {
		s.factories.GridItems.Destroy(ladder)
		s.startMagnetCooldown(p)
	}
}

func (s *PlantSystem) startMagnetCooldown(p *components.Plant) {
	p.Status = types.PlantStatusMagnetshroomWorking
	p.Countdown.Status = MagnetshroomCooldown
	p.SetReanim(types.PlantAnimShooting, types.ReanimOnce, 12)
}

// hasMetal 僵尸是否携带可被磁力菇吸走的金属物品
func hasMetal(z *components.Zombie) bool {
	switch {
	case z.Type == types.ZombieDigger && (z.Status == types.ZombieStatusDiggerDig ||
		z.Status == types.ZombieStatusDiggerDizzy || z.Status == types.ZombieStatusDiggerWalkRight):
		return z.HasItemOrWalkLeft
	case z.Type == types.ZombiePogo:
		return z.HasItemOrWalkLeft
	case z.Type == types.ZombieJackInTheBox:
		return z.Status == types.ZombieStatusJackboxWalking
	}
	return z.Accessory1 == types.Accessory1Bucket || z.Accessory1 == types.Accessory1FootballCap ||
		z.Accessory2 == types.Accessory2ScreenDoor || z.Accessory2 == types.Accessory2Ladder
}

func (s *PlantSystem) magnetTarget(p *components.Plant) *components.Zombie {
	var best *components.Zombie
	bestScore := math.Inf(1)

	for _, z := range s.scene.ZombiesInRows(p.Row, 2) {
		if z.IsHypno || !z.IsNotDying || z.HasDeathStatus() || z.Action != types.ZombieActionNone ||
			z.Status == types.ZombieStatusRisingFromGround || z.X > 800 {
			continue
		}
		if !hasMetal(z) {
			continue
		}

		radius := magnetRange
		if z.IsEating {
			radius = magnetEatingRange
		}
		hb := z.HitBoxRect()
		if !hb.OverlapsCircle(p.X, p.Y, radius) {
			continue
		}

		dx := float64(hb.CenterX() - p.X)
		dy := float64(hb.Y + hb.Height/2 - p.Y)
		score := math.Hypot(dx, dy) + float64(abs(z.Row-p.Row)*80)
		if score < bestScore {
			best = z
			bestScore = score
		}
	}
	return best
}

// attractMetal 吸走僵尸身上的金属物品
func (s *PlantSystem) attractMetal(z *components.Zombie) {
	switch {
	case z.Type == types.ZombiePogo:
		z.HasItemOrWalkLeft = false
		z.Status = types.ZombieStatusWalking
		s.animator.UpdateStatus(z)

	case z.Type == types.ZombieJackInTheBox:
		z.Status = types.ZombieStatusWalking
		s.animator.UpdateDX(z, true)

	case z.Type == types.ZombieDigger:
		if z.Status == types.ZombieStatusDiggerDig {
			z.Status = types.ZombieStatusDiggerLostDig
			z.Countdown.Action = 200
			s.animator.SetReanim(z, types.ZombieAnimLanding, types.ReanimOnce, 12)
		}
		z.HasItemOrWalkLeft = false

	case z.Accessory1 == types.Accessory1Bucket || z.Accessory1 == types.Accessory1FootballCap:
		z.Accessory1 = types.Accessory1None
		z.Accessory1HP = 0

	default:
		s.damage.DestroyAccessory2(z)
	}
}

// magnetLadder 范围内最近的梯子（切比雪夫距离不超过 2 格）
func (s *PlantSystem) magnetLadder(p *components.Plant) *components.GridItem {
	var best *components.GridItem
	bestScore := math.Inf(1)

	for _, g := range s.scene.GridItems.Items() {
		if g.IsDisappeared || g.Type != types.GridItemLadder {
			continue
		}
		dr := abs(g.Row - p.Row)
		dc := abs(g.Col - p.Col)
		d := max(dr, dc)
		if d > 2 {
			continue
		}
		score := float64(dr+dc)*0.05 + float64(d)
		if score < bestScore {
			best = g
			bestScore = score
		}
	}
	return best
}

// updateScaredyshroom 胆小菇：附近有僵尸时缩头，不再射击
func (s *PlantSystem) updateScaredyshroom(p *components.Plant) {
	if p.Countdown.Launch > 0 || p.IsSleeping {
		return
	}

	scared := s.isScared(p)
	switch p.Status {
	case types.PlantStatusWait, types.PlantStatusIdle:
		if scared {
			p.Status = types.PlantStatusScaredyshroomScared
			p.SetReanim(types.PlantAnimScared, types.ReanimOnce, 12)
		}
	case types.PlantStatusScaredyshroomScared:
		if p.Reanim.Finished() {
			p.Status = types.PlantStatusScaredyshroomScaredIdle
			p.SetReanim(types.PlantAnimScaredIdle, types.ReanimRepeat, 12)
		}
	case types.PlantStatusScaredyshroomScaredIdle:
		if !scared {
			p.Status = types.PlantStatusScaredyshroomGrow
			p.SetReanim(types.PlantAnimGrow, types.ReanimOnce, 12)
		}
	case types.PlantStatusScaredyshroomGrow:
		if p.Reanim.Finished() {
			p.Status = types.PlantStatusWait
			p.SetReanim(types.PlantAnimIdle, types.ReanimRepeat, 12)
		}
	}

	if p.Status != types.PlantStatusWait && p.Status != types.PlantStatusIdle {
		p.Countdown.Generate = p.MaxBootDelay
	}
}

func (s *PlantSystem) isScared(p *components.Plant) bool {
	for _, z := range s.scene.ZombiesInRows(p.Row, 1) {
		if z.IsHypno || z.HasDeathStatus() {
			continue
		}
		if z.HitBoxRect().OverlapsCircle(p.X, p.Y+20, scaredRadius) {
			return true
		}
	}
	return false
}
