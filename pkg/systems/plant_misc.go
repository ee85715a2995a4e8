package systems

import (
	"github.com/decker502/pvzemu/pkg/components"
	"github.com/decker502/pvzemu/pkg/types"
)

const (
	// CobCannonRechargeCountdown 玉米炮发射后重新装填的等待
	CobCannonRechargeCountdown = 3000

	// CobCannonLaunchDelay 点击发射到炮弹出膛的延迟
	CobCannonLaunchDelay = 206

	// GraveBusterEatCountdown 墓碑吞噬者啃食墓碑的时长
	GraveBusterEatCountdown = 400
)

// updateShield 坚果类：根据血量更新破损阶段
func (s *PlantSystem) updateShield(p *components.Plant) {
	if !p.IsShieldPlant() {
		return
	}
	stage := components.ShieldStageForHP(p.HP, p.MaxHP)
	if stage == p.Shield {
		return
	}
	p.Shield = stage
}

func (s *PlantSystem) updateBlover(p *components.Plant) {
	if p.Reanim.Finished() && p.Reanim.Type != types.ReanimRepeat {
		p.SetReanim(types.PlantAnimLoop, types.ReanimRepeat, 19)
	}
	if p.Status != types.PlantStatusWork && p.Countdown.Effect == 0 {
		s.damage.ActivatePlant(p)
	}
}

// updateGraveBuster 墓碑吞噬者：落地后啃食墓碑，完成时与墓碑一起消失
func (s *PlantSystem) updateGraveBuster(p *components.Plant) {
	switch p.Status {
	case types.PlantStatusGraveBusterLand:
		if p.Reanim.Finished() {
			p.SetReanim(types.PlantAnimIdle, types.ReanimRepeat, 12)
			p.Countdown.Status = GraveBusterEatCountdown
			p.Status = types.PlantStatusGraveBusterIdle
		}
	case types.PlantStatusGraveBusterIdle:
		if p.Countdown.Status != 0 {
			return
		}
		for _, g := range s.scene.GridItemsAt(p.Row, p.Col) {
			if g.Type == types.GridItemGrave {
				s.factories.GridItems.Destroy(g)
			}
		}
		s.factories.Plants.Destroy(p)
	}
}

// updateImitater 模仿者：倒计时结束后变身
//
// 变身通过一次性效果倒计时完成，效果触发时销毁自身并在原格子创建目标植物。
func (s *PlantSystem) updateImitater(p *components.Plant) {
	if p.Status == types.PlantStatusImitaterMorphing {
		if p.Countdown.Effect == 1 {
			row, col, target := p.Row, p.Col, p.ImitaterTarget
			s.factories.Plants.Destroy(p)
			s.factories.Plants.Create(target, row, col, types.PlantNone)
		}
		return
	}
	if p.Countdown.Status == 0 {
		p.Status = types.PlantStatusImitaterMorphing
		p.Countdown.Effect = 20
		p.SetReanim(types.PlantAnimExplode, types.ReanimOnce, 26)
	}
}

func (s *PlantSystem) updateUmbrellaLeaf(p *components.Plant) {
	switch p.Status {
	case types.PlantStatusUmbrellaLeafBlock:
		if p.Countdown.Status == 0 {
			p.Status = types.PlantStatusUmbrellaLeafShrink
			p.Countdown.Status = 50
		}
	case types.PlantStatusUmbrellaLeafShrink:
		if p.Countdown.Status == 0 {
			p.Status = types.PlantStatusIdle
			p.SetReanim(types.PlantAnimIdle, types.ReanimRepeat, 12)
		}
	}
}

// updateCactus 仙人掌：同行有气球时长高
func (s *PlantSystem) updateCactus(p *components.Plant) {
	if p.Countdown.Launch > 0 {
		return
	}

	balloon := false
	for _, z := range s.scene.ZombiesInRows(p.Row, 0) {
		if !z.IsHypno && z.Type == types.ZombieBalloon && z.X >= float64(p.X) && z.IsFlyingOrFalling() {
			balloon = true
			break
		}
	}

	switch {
	case p.Status == types.PlantStatusCactusGrowTall:
		if p.Reanim.Finished() {
			p.Status = types.PlantStatusCactusTallIdle
			p.SetReanim(types.PlantAnimIdleHigh, types.ReanimRepeat, 12)
			p.Countdown.Generate = 1
		}
	case p.Status == types.PlantStatusCactusTallIdle:
		if !balloon {
			p.Status = types.PlantStatusCactusGetShort
			p.SetReanim(types.PlantAnimLower, types.ReanimOnce, 12)
		}
	case p.Status == types.PlantStatusCactusGetShort:
		if p.Reanim.Finished() {
			p.Status = types.PlantStatusCactusShortIdle
			p.SetReanim(types.PlantAnimIdle, types.ReanimRepeat, 12)
		}
	case balloon:
		p.Status = types.PlantStatusCactusGrowTall
		p.SetReanim(types.PlantAnimRise, types.ReanimOnce, 12)
	}
}

// updateSpike 地刺/地刺王：僵尸进入攻击框时刺击
func (s *PlantSystem) updateSpike(p *components.Plant) {
	if p.Status == types.PlantStatusSpikeAttack {
		cd := p.Countdown.Status
		if cd == 0 {
			p.Status = types.PlantStatusIdle
			p.SetReanim(types.PlantAnimIdle, types.ReanimRepeat, 12)
			return
		}
		hit := cd == 75
		if p.Type == types.PlantSpikerock {
			hit = cd == 70 || cd == 32
		}
		if hit {
			s.damage.RangeAttack(p, types.DamageSpike|types.DamageBypassesShield)
		}
		return
	}

	box := p.AttackBox(false)
	flags := activationFlags(p.Type)
	for _, z := range s.scene.ZombiesInRows(p.Row, 0) {
		if !s.damage.CanBeAttacked(z, flags) {
			continue
		}
		if box.OverlapLen(z.HitBoxRect()) > 0 {
			p.SetReanim(types.PlantAnimAttack, types.ReanimOnce, 18)
			p.Status = types.PlantStatusSpikeAttack
			p.Countdown.Status = 100
			return
		}
	}
}

// updateCobCannon 玉米炮装填
func (s *PlantSystem) updateCobCannon(p *components.Plant) {
	switch p.Status {
	case types.PlantStatusCobCannonUnarmedIdle:
		if p.Countdown.Status == 0 {
			p.Status = types.PlantStatusCobCannonCharge
			p.SetReanim(types.PlantAnimCharge, types.ReanimOnce, 12)
		}
	case types.PlantStatusCobCannonCharge:
		if p.Reanim.Finished() {
			p.Status = types.PlantStatusCobCannonArmedIdle
			p.SetReanim(types.PlantAnimIdle, types.ReanimRepeat, 12)
		}
	}
}

// LaunchCob 向指定坐标发射玉米炮
//
// 参数:
//   - p: 玉米炮
//   - x, y: 落点像素坐标
//
// 返回:
//   - bool: 只有装填完毕的玉米炮可以发射
func (s *PlantSystem) LaunchCob(p *components.Plant, x, y int) bool {
	if p == nil || p.IsDead || p.Type != types.PlantCobCannon || p.Status != types.PlantStatusCobCannonArmedIdle {
		return false
	}
	p.Status = types.PlantStatusCobCannonLaunch
	p.Countdown.Launch = CobCannonLaunchDelay
	p.SetReanim(types.PlantAnimShooting, types.ReanimOnce, 12)
	p.CannonX = x - 47
	p.CannonY = y
	return true
}
