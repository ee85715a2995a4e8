package systems

import (
	"math"

	"github.com/decker502/pvzemu/pkg/components"
	"github.com/decker502/pvzemu/pkg/types"
	"github.com/decker502/pvzemu/pkg/utils"
)

const (
	// ChomperChewCountdown 大嘴花咀嚼时长
	ChomperChewCountdown = 4000

	// squashJumpHeight 倭瓜起跳的最高点（相对地面）
	squashJumpHeight = 120

	// KelpGrabCountdown 缠绕水草拖入水中的时长
	KelpGrabCountdown = 100
)

// updatePotatoMine 土豆地雷：出土后等待僵尸踩上
func (s *PlantSystem) updatePotatoMine(p *components.Plant) {
	switch p.Status {
	case types.PlantStatusIdle:
		if p.Countdown.Status == 0 {
			p.Status = types.PlantStatusPotatoSproutOut
			p.Countdown.Status = 50
			p.SetReanim(types.PlantAnimRise, types.ReanimOnce, 18)
		}
	case types.PlantStatusPotatoSproutOut:
		if p.Countdown.Status == 0 {
			p.Status = types.PlantStatusPotatoArmed
			p.SetReanim(types.PlantAnimArmed, types.ReanimRepeat, 12)
		}
	case types.PlantStatusPotatoArmed:
		if s.potatoTriggered(p) {
			s.damage.ActivatePlant(p)
		}
	}
}

func (s *PlantSystem) potatoTriggered(p *components.Plant) bool {
	start, end := p.X+40, p.X+80
	for _, z := range s.scene.ZombiesInRows(p.Row, 0) {
		if z.Type == types.ZombiePogo && z.HasItemOrWalkLeft {
			continue
		}
		if z.Status == types.ZombieStatusPoleVaultingJumping || z.Status == types.ZombieStatusPoleVaultingRunning {
			continue
		}
		if z.Type == types.ZombieBungee && z.BungeeCol != p.Col {
			continue
		}
		if !s.damage.CanBeAttacked(z, types.AttackGround) {
			continue
		}
		hb := z.HitBoxRect()
		if min(end, hb.X+hb.Width) > max(start, hb.X) {
			return true
		}
	}
	return false
}

// squashTarget 倭瓜攻击范围内最近的僵尸
func (s *PlantSystem) squashTarget(p *components.Plant) *components.Zombie {
	box := p.AttackBox(false)
	flags := p.AttackFlags(false)

	var best *components.Zombie
	bestDist := math.MaxInt
	for _, z := range s.scene.ZombiesInRows(p.Row, 0) {
		switch z.Status {
		case types.ZombieStatusPoleVaultingJumping, types.ZombieStatusDolphinInJump,
			types.ZombieStatusDolphinJumpInPool, types.ZombieStatusDolphinRide:
			continue
		}
		if !s.damage.CanBeAttacked(z, flags) {
			continue
		}

		reach := 70
		if z.IsEating {
			reach = 110
		}
		dist := -box.OverlapLen(z.HitBoxRect())
		if dist > reach {
			continue
		}
		if dist < bestDist {
			best = z
			bestDist = dist
		}
	}
	return best
}

// updateSquash 倭瓜：观察、起跳、悬停、下落、压扁
func (s *PlantSystem) updateSquash(p *components.Plant) {
	groundY := utils.YByRowAndCol(s.scene.Type, p.Row, p.Col)

	switch p.Status {
	case types.PlantStatusIdle:
		z := s.squashTarget(p)
		if z == nil {
			return
		}
		p.CannonX = z.HitBoxRect().CenterX() - p.BoxSize.Width/2
		p.Status = types.PlantStatusSquashLook
		p.Countdown.Status = 80
		if p.CannonX >= p.X {
			p.SetReanim(types.PlantAnimLookRight, types.ReanimOnce, 24)
		} else {
			p.SetReanim(types.PlantAnimLookLeft, types.ReanimOnce, 24)
		}

	case types.PlantStatusSquashLook:
		if p.Countdown.Status == 0 {
			p.Status = types.PlantStatusSquashJumpUp
			p.Countdown.Status = 45
			p.SetReanim(types.PlantAnimJumpUp, types.ReanimOnce, 24)
		}

	case types.PlantStatusSquashJumpUp:
		if p.Countdown.Status != 0 {
			return
		}
		if z := s.squashTarget(p); z != nil {
			p.CannonX = int(s.animator.PredictAfter(z, 30) - 40)
		}
		p.Status = types.PlantStatusSquashStopInTheAir
		p.Countdown.Status = 50
		if cell := s.scene.Cell(p.Row, p.Col); cell != nil && cell.Content == p.ID {
			cell.Content = -1
		}

	case types.PlantStatusSquashStopInTheAir:
		p.X = utils.JumpCurve(p.Countdown.Status, utils.XByCol(p.Col), p.CannonX)
		p.Y = utils.JumpCurve(p.Countdown.Status, groundY, groundY-squashJumpHeight)
		if p.Countdown.Status == 0 {
			p.Status = types.PlantStatusSquashJumpDown
			p.Countdown.Status = 10
			p.SetReanim(types.PlantAnimJumpDown, types.ReanimOnce, 60)
		}

	case types.PlantStatusSquashJumpDown:
		st := p.Countdown.Status
		p.Y = squashJumpHeight*(10-st)/10 + groundY - squashJumpHeight
		if st == 5 {
			s.squashCrush(p)
		}
		if st == 0 {
			p.Status = types.PlantStatusSquashCrushed
			p.Countdown.Status = 100
		}

	case types.PlantStatusSquashCrushed:
		if p.Countdown.Status == 0 {
			s.factories.Plants.Destroy(p)
		}
	}
}

func (s *PlantSystem) squashCrush(p *components.Plant) {
	box := p.AttackBox(false)
	for _, z := range s.scene.ZombiesInRows(p.Row, 0) {
		if !s.damage.CanBeAttacked(z, types.AttackGround) {
			continue
		}
		threshold := 0
		if z.Type == types.ZombieFootball {
			threshold = -20
		}
		if box.OverlapLen(z.HitBoxRect()) > threshold {
			s.damage.Take(z, InstantKillDamage, types.DamageNoLeaveBody|types.DamageHitsShieldAndBody)
		}
	}
}

// chomperTarget 大嘴花前方可以吞下的最左侧僵尸
func (s *PlantSystem) chomperTarget(p *components.Plant) *components.Zombie {
	var best *components.Zombie
	for _, z := range s.scene.ZombiesInRows(p.Row, 0) {
		if !s.damage.CanBeAttacked(z, types.AttackGround) {
			continue
		}
		if z.Type == types.ZombiePogo && z.HasPogoStatus() {
			continue
		}
		if z.Type == types.ZombieBungee && z.BungeeCol == p.Col {
			continue
		}

		box := p.AttackBox(false)
		if z.Status == types.ZombieStatusDiggerWalkRight {
			box.X += 20
			box.Width -= 20
		}
		reach := 0
		if p.Status == types.PlantStatusChomperBiteBegin || z.IsEating {
			reach = 60
		}
		if box.OverlapLen(z.HitBoxRect()) < -reach {
			continue
		}
		if best == nil || z.IntX < best.IntX {
			best = z
		}
	}
	return best
}

// updateChomper 大嘴花：张嘴、吞下、咀嚼、吞咽
func (s *PlantSystem) updateChomper(p *components.Plant) {
	switch p.Status {
	case types.PlantStatusWait:
		if s.chomperTarget(p) != nil {
			p.SetReanim(types.PlantAnimBite, types.ReanimOnce, 24)
			p.Status = types.PlantStatusChomperBiteBegin
			p.Countdown.Status = 70
		}

	case types.PlantStatusChomperBiteBegin:
		if p.Countdown.Status == 0 {
			s.chomperBite(p)
		}

	case types.PlantStatusChomperBiteSuccess:
		if p.Reanim.Finished() {
			p.SetReanim(types.PlantAnimChew, types.ReanimRepeat, 15)
			p.Status = types.PlantStatusChomperChew
			p.Countdown.Status = ChomperChewCountdown
		}

	case types.PlantStatusChomperChew:
		if p.Countdown.Status == 0 {
			p.SetReanim(types.PlantAnimSwallow, types.ReanimOnce, 12)
			p.Status = types.PlantStatusChomperSwallow
		}

	case types.PlantStatusChomperSwallow, types.PlantStatusChomperBiteFail:
		if p.Reanim.Finished() {
			p.SetReanim(types.PlantAnimIdle, types.ReanimRepeat, 12)
			p.Status = types.PlantStatusWait
		}
	}
}

func (s *PlantSystem) chomperBite(p *components.Plant) {
	z := s.chomperTarget(p)
	if z == nil {
		p.Status = types.PlantStatusChomperBiteFail
		return
	}

	if z.Type.IsGargantuar() || z.Type == types.ZombieBoss {
		s.damage.Take(z, 40, 0)
		p.Status = types.PlantStatusChomperBiteFail
		return
	}

	if z.Countdown.Freeze == 0 && z.Countdown.Butter == 0 {
		bouncing := z.Status >= types.ZombieStatusPogoWithStick && z.Status <= types.ZombieStatusPogoJumpAcross
		vaulting := z.Status == types.ZombieStatusPoleVaultingJumping || z.Status == types.ZombieStatusPoleVaultingRunning
		if bouncing || vaulting {
			p.Status = types.PlantStatusChomperBiteFail
			return
		}
	}

	s.factories.Zombies.Destroy(z)
	p.Status = types.PlantStatusChomperBiteSuccess
}

// updateTangleKelp 缠绕水草：抓住水中的僵尸并拖入水底
func (s *PlantSystem) updateTangleKelp(p *components.Plant) {
	if p.Status == types.PlantStatusTangleKelpGrab {
		target := s.scene.Zombie(p.TargetID)
		if p.Countdown.Status == 50 && target != nil {
			target.Action = types.ZombieActionCaughtByKelp
			s.damage.UnsetIsEating(target)
		}
		if p.Countdown.Status == 0 {
			if target != nil {
				s.damage.Take(target, target.MaxHP+1000, types.DamageHitsShieldAndBody)
			}
			s.factories.Plants.Destroy(p)
		}
		return
	}

	box := p.HitBox()
	for _, z := range s.scene.ZombiesInRows(p.Row, 0) {
		if !z.IsInWater || !s.damage.CanBeAttacked(z, types.AttackLurkingSnorkel|types.AttackGround) {
			continue
		}
		if box.OverlapLen(z.HitBoxRect()) < 0 {
			continue
		}
		p.Status = types.PlantStatusTangleKelpGrab
		p.Countdown.Status = KelpGrabCountdown
		p.TargetID = z.ID
		return
	}
}
