package systems

import (
	"github.com/decker502/pvzemu/pkg/components"
	"github.com/decker502/pvzemu/pkg/types"
	"github.com/decker502/pvzemu/pkg/utils"
)

const (
	// PoleVaultDistance 撑杆跳越过植物的水平距离
	PoleVaultDistance = 150

	// DolphinJumpDistance 海豚跳越过植物的水平距离
	DolphinJumpDistance = 94

	// PogoHopDistance 跳跳僵尸每次越过植物的距离
	PogoHopDistance = 80

	// JackboxExplodeRadius 小丑爆炸半径
	JackboxExplodeRadius = 90

	// CatapultStopX 投篮车开始投篮的 x 坐标
	CatapultStopX = 650

	// CatapultReload 投篮后的装填时间
	CatapultReload = 300

	// DancerStepCycle / DancerRaisePhase 舞步周期与其中举手停步的帧数
	DancerStepCycle  = 460
	DancerRaisePhase = 115

	// DancerSummonCountdown 召唤伴舞的动作时长
	DancerSummonCountdown = 100

	// dancerRiseStart / dancerRiseSpeed 伴舞出土的起始 dy 与每帧上升量
	dancerRiseStart = -200
	dancerRiseSpeed = 4

	// dancerPointX 舞王走到该坐标左侧时停止太空步
	dancerPointX = 700

	// dancerSpacing 同行伴舞与舞王的间距
	dancerSpacing = 100

	// diggerDrillX 矿工钻出地面的 x 坐标
	diggerDrillX = 10

	// ImpThrowDistance / ImpFlightFrames 巨人扔小鬼的距离与飞行时间
	ImpThrowDistance = 300
	ImpFlightFrames  = 50

	// impThrowMinX 巨人只在该坐标右侧扔小鬼
	impThrowMinX = 400

	// impFlightHeight 小鬼飞行的最大高度
	impFlightHeight = 150

	// BungeeDropSpeed 空投下落速度
	BungeeDropSpeed = 8
)

// obstacleAhead 攻击框前方的植物（跳跃类僵尸用）
func (s *ZombieSystem) obstacleAhead(z *components.Zombie) *components.Plant {
	zr := z.AttackBoxRect()
	for _, p := range s.scene.AlivePlants() {
		if p.Row != z.Row || p.IsSmashed || p.Edible == types.EdibleInvisibleAndNotEdible {
			continue
		}
		switch p.Type {
		case types.PlantSpikeweed, types.PlantSpikerock, types.PlantLilyPad, types.PlantFlowerPot:
			continue
		}
		if zr.OverlapLen(p.HitBox()) >= minEatOverlap {
			return p
		}
	}
	return nil
}

// tallnutAhead 高坚果挡住跳跃
func (s *ZombieSystem) tallnutAhead(z *components.Zombie) bool {
	zr := z.AttackBoxRect()
	for _, p := range s.scene.AlivePlants() {
		if p.Row == z.Row && p.Type == types.PlantTallnut && !p.IsSmashed && zr.OverlapLen(p.HitBox()) >= 0 {
			return true
		}
	}
	return false
}

func (s *ZombieSystem) updatePoleVaulting(z *components.Zombie) {
	switch z.Status {
	case types.ZombieStatusPoleVaultingRunning:
		if s.obstacleAhead(z) != nil {
			z.Status = types.ZombieStatusPoleVaultingJumping
			s.animator.SetReanim(z, types.ZombieAnimJump, types.ReanimOnce, 24)
		}
	case types.ZombieStatusPoleVaultingJumping:
		if !z.Reanim.Finished() {
			return
		}
		if !s.tallnutAhead(z) {
			z.X -= PoleVaultDistance
		}
		z.Status = types.ZombieStatusPoleVaultingWalking
		s.animator.UpdateStatus(z)
	}
}

// updateNewspaper 报纸被打掉：喘气动画结束后开始奔跑
func (s *ZombieSystem) updateNewspaper(z *components.Zombie) {
	if z.Status != types.ZombieStatusNewspaperDestroyed || !z.Reanim.Finished() {
		return
	}
	z.Status = types.ZombieStatusNewspaperRunning
	s.animator.UpdateStatus(z)
}

// updateJackInTheBox 小丑：倒计时结束开盒，动画播完后炸毁周围植物
func (s *ZombieSystem) updateJackInTheBox(z *components.Zombie) {
	switch z.Status {
	case types.ZombieStatusJackboxWalking:
		if z.Countdown.Action == 0 && !z.IsHypno {
			z.Status = types.ZombieStatusJackboxPop
			s.animator.SetReanim(z, types.ZombieAnimPop, types.ReanimOnce, 28)
		}
	case types.ZombieStatusJackboxPop:
		if !z.Reanim.Finished() {
			return
		}
		r := z.HitBoxRect()
		cx, cy := r.CenterX(), r.Y+r.Height/2
		for _, p := range s.scene.AlivePlants() {
			if abs(p.Row-z.Row) > 1 || !p.HitBox().OverlapsCircle(cx, cy, JackboxExplodeRadius) {
				continue
			}
			s.factories.Plants.Destroy(p)
		}
		s.factories.Zombies.Destroy(z)
	}
}

// danceStep 舞团共用的节拍：每个周期开头举手停步
func (s *ZombieSystem) danceStep(z *components.Zombie) {
	raise := s.scene.ZombieDancingClock%DancerStepCycle < DancerRaisePhase
	switch {
	case raise && z.Status == types.ZombieStatusDancingWalking:
		z.Status = types.ZombieStatusDancingArmrise1
		s.animator.SetReanim(z, types.ZombieAnimArmraise, types.ReanimRepeat, 0)
	case !raise && z.Status == types.ZombieStatusDancingArmrise1:
		z.Status = types.ZombieStatusDancingWalking
		s.animator.UpdateStatus(z)
	}
}

// dancerSlot 伴舞位置：上、下、后、前
func (s *ZombieSystem) dancerSlot(z *components.Zombie, i int) (int, float64, bool) {
	row, x := z.Row, z.X
	switch i {
	case 0:
		row--
	case 1:
		row++
	case 2:
		x -= dancerSpacing
	case 3:
		x += dancerSpacing
	}
	if !s.factories.Zombies.CanSpawnAtRow(types.ZombieBackupDancer, row) {
		return 0, 0, false
	}
	return row, x, true
}

// missingDancer 舞团是否有可补位的空缺
func (s *ZombieSystem) missingDancer(z *components.Zombie) bool {
	for i, id := range z.Partners {
		if _, _, ok := s.dancerSlot(z, i); ok && s.scene.Zombie(id) == nil {
			return true
		}
	}
	return false
}

func (s *ZombieSystem) summonDancers(z *components.Zombie) {
	for i, id := range z.Partners {
		if s.scene.Zombie(id) != nil {
			continue
		}
		row, x, ok := s.dancerSlot(z, i)
		if !ok {
			continue
		}
		b := s.factories.Zombies.CreateAt(types.ZombieBackupDancer, row, x)
		if b == nil {
			continue
		}
		b.Status = types.ZombieStatusDancingDancerSpawning
		b.DY = dancerRiseStart
		b.MasterID = z.ID
		z.Partners[i] = b.ID
	}
}

// updateDancing 舞王：太空步入场，举手召唤伴舞，之后按节拍前进
func (s *ZombieSystem) updateDancing(z *components.Zombie) {
	switch z.Status {
	case types.ZombieStatusDancingMoonwalk:
		if z.Countdown.Action == 0 || z.X < dancerPointX {
			z.Status = types.ZombieStatusDancingPoint
			s.animator.SetReanim(z, types.ZombieAnimPoint, types.ReanimOnce, 24)
		}
	case types.ZombieStatusDancingPoint:
		if z.Reanim.Finished() {
			z.Status = types.ZombieStatusDancingSummoning
			z.Countdown.Action = DancerSummonCountdown
			s.animator.SetReanim(z, types.ZombieAnimArmraise, types.ReanimRepeat, 0)
			s.summonDancers(z)
		}
	case types.ZombieStatusDancingSummoning:
		if z.Countdown.Action == 0 {
			z.Status = types.ZombieStatusDancingWalking
			s.animator.UpdateStatus(z)
		}
	case types.ZombieStatusDancingWalking, types.ZombieStatusDancingArmrise1:
		if !z.IsHypno && z.Status == types.ZombieStatusDancingWalking &&
			s.scene.ZombieDancingClock%DancerStepCycle == DancerRaisePhase && s.missingDancer(z) {
			z.Status = types.ZombieStatusDancingPoint
			s.animator.SetReanim(z, types.ZombieAnimPoint, types.ReanimOnce, 24)
			return
		}
		s.danceStep(z)
	}
}

// updateBackupDancer 伴舞：从地下升起，之后与舞王同步节拍
func (s *ZombieSystem) updateBackupDancer(z *components.Zombie) {
	switch z.Status {
	case types.ZombieStatusDancingDancerSpawning:
		z.DY = min(0, z.DY+dancerRiseSpeed)
		if z.DY == 0 {
			z.Status = types.ZombieStatusDancingWalking
			s.animator.UpdateStatus(z)
		}
	case types.ZombieStatusWalking:
		z.Status = types.ZombieStatusDancingWalking
	case types.ZombieStatusDancingWalking, types.ZombieStatusDancingArmrise1:
		s.danceStep(z)
	}
}

// updateBalloon 气球被打破后落地步行
func (s *ZombieSystem) updateBalloon(z *components.Zombie) {
	if z.Status != types.ZombieStatusBalloonFalling || z.Action == types.ZombieActionFalling || !z.Reanim.Finished() {
		return
	}
	z.Status = types.ZombieStatusBalloonWalking
	z.HasBalloon = false
	s.animator.UpdateStatus(z)
}

// updateDigger 矿工：地下挖到左端后钻出，晕眩后向右走
func (s *ZombieSystem) updateDigger(z *components.Zombie) {
	switch z.Status {
	case types.ZombieStatusDiggerDig:
		if z.X < diggerDrillX {
			z.Status = types.ZombieStatusDiggerDrill
			s.animator.SetReanim(z, types.ZombieAnimDrill, types.ReanimOnce, 12)
		}
	case types.ZombieStatusDiggerDrill:
		if z.Reanim.Finished() {
			z.Status = types.ZombieStatusDiggerLanding
			s.animator.SetReanim(z, types.ZombieAnimLanding, types.ReanimOnce, 12)
		}
	case types.ZombieStatusDiggerLanding:
		if z.Reanim.Finished() {
			z.Status = types.ZombieStatusDiggerDizzy
			s.animator.SetReanim(z, types.ZombieAnimDizzy, types.ReanimOnce, 12)
		}
	case types.ZombieStatusDiggerDizzy:
		if z.Reanim.Finished() {
			z.Status = types.ZombieStatusDiggerWalkRight
			s.animator.UpdateDX(z, false)
			s.animator.SetReanim(z, types.ZombieAnimWalk, types.ReanimRepeat, 0)
		}
	case types.ZombieStatusDiggerLostDig:
		if z.Reanim.Finished() {
			z.Status = types.ZombieStatusDiggerWalkLeft
			s.animator.UpdateDX(z, false)
			s.animator.SetReanim(z, types.ZombieAnimWalk, types.ReanimRepeat, 0)
		}
	}
}

// updateSnorkel 潜水僵尸：到达水边跳入水中潜行
func (s *ZombieSystem) updateSnorkel(z *components.Zombie) {
	switch z.Status {
	case types.ZombieStatusSnorkelWalking:
		if s.inPool(z) {
			z.Status = types.ZombieStatusSnorkelJumpInThePool
			s.animator.SetReanim(z, types.ZombieAnimJumpInPool, types.ReanimOnce, 16)
		}
	case types.ZombieStatusSnorkelJumpInThePool:
		if z.Reanim.Finished() {
			z.Status = types.ZombieStatusSnorkelSwim
			z.IsInWater = true
			z.DY = -40
			s.animator.UpdateDX(z, false)
			s.animator.SetReanim(z, types.ZombieAnimSwim, types.ReanimRepeat, 0)
		}
	}
}

// updateDolphinRider 海豚骑士：入水后骑海豚，跳过遇到的第一株植物
func (s *ZombieSystem) updateDolphinRider(z *components.Zombie) {
	switch z.Status {
	case types.ZombieStatusDolphinWalkWithDolphin:
		if s.inPool(z) {
			z.Status = types.ZombieStatusDolphinJumpInPool
			s.animator.SetReanim(z, types.ZombieAnimJumpInPool, types.ReanimOnce, 16)
		}
	case types.ZombieStatusDolphinJumpInPool:
		if z.Reanim.Finished() {
			z.Status = types.ZombieStatusDolphinRide
			z.IsInWater = true
			z.DY = -40
			s.animator.SetReanim(z, types.ZombieAnimRide, types.ReanimRepeat, 0)
		}
	case types.ZombieStatusDolphinRide:
		if s.obstacleAhead(z) != nil {
			z.Status = types.ZombieStatusDolphinInJump
			s.animator.SetReanim(z, types.ZombieAnimDolphinJump, types.ReanimOnce, 10)
		}
	case types.ZombieStatusDolphinInJump:
		if !z.Reanim.Finished() {
			return
		}
		if !s.tallnutAhead(z) {
			z.X -= DolphinJumpDistance
		}
		z.Status = types.ZombieStatusDolphinWalkInPool
		s.animator.UpdateStatus(z)
	}
}

// updatePogo 跳跳僵尸越过植物，撞到高坚果时失去跳杆
func (s *ZombieSystem) updatePogo(z *components.Zombie) {
	if !z.HasPogoStatus() {
		return
	}
	if s.tallnutAhead(z) {
		z.Status = types.ZombieStatusWalking
		z.HasItemOrWalkLeft = false
		s.animator.UpdateStatus(z)
		return
	}
	if s.obstacleAhead(z) != nil {
		z.X -= PogoHopDistance
	}
}

// catapultTarget 投篮车瞄准同行最左侧的植物
func (s *ZombieSystem) catapultTarget(z *components.Zombie) *components.Plant {
	var target *components.Plant
	for _, p := range s.scene.AlivePlants() {
		if p.Row != z.Row || p.IsSmashed || p.Edible == types.EdibleInvisibleAndNotEdible || p.X > z.IntX {
			continue
		}
		switch p.Type {
		case types.PlantLilyPad, types.PlantFlowerPot, types.PlantSpikeweed, types.PlantSpikerock:
			continue
		}
		if target == nil || p.X < target.X {
			target = p
		}
	}
	return target
}

// updateCatapult 投篮车：停在固定位置向最后一株植物投篮，篮球用完后继续前进碾压
func (s *ZombieSystem) updateCatapult(z *components.Zombie) {
	switch z.Status {
	case types.ZombieStatusWalking:
		if z.SpecialCounter > 0 && z.X <= CatapultStopX && s.catapultTarget(z) != nil {
			z.Status = types.ZombieStatusCatapultShoot
			s.animator.SetReanim(z, types.ZombieAnimShoot, types.ReanimOnce, 24)
		}
	case types.ZombieStatusCatapultShoot:
		if z.Reanim.IsInProgress(0.545) {
			if p := s.catapultTarget(z); p != nil {
				s.throwBasketball(z, p)
			}
		}
		if z.Reanim.Finished() {
			z.Status = types.ZombieStatusCatapultIdle
			z.Countdown.Action = CatapultReload
		}
	case types.ZombieStatusCatapultIdle:
		if z.Countdown.Action == 0 {
			z.Status = types.ZombieStatusWalking
			if z.SpecialCounter == 0 || s.catapultTarget(z) == nil {
				s.animator.UpdateStatus(z)
			}
		}
	}
}

// throwBasketball 向植物抛出篮球（抛物线落点为植物位置）
func (s *ZombieSystem) throwBasketball(z *components.Zombie, p *components.Plant) {
	proj := s.factories.Projectiles.Create(types.ProjectileBasketball, z.Row, z.X+25, z.Y-60)
	distX := proj.X - float64(p.X+40)
	distY := float64(p.Y) - proj.Y

	proj.Motion = types.MotionParabola
	proj.TargetID = p.ID
	proj.DX = -max(40, distX) / 120
	proj.DDY = distY/120 - 7
	proj.DDDY = 0.115
	z.SpecialCounter--
}

// updateGargantuar 巨人：砸扁面前的植物，半血时把小鬼扔向后排
func (s *ZombieSystem) updateGargantuar(z *components.Zombie) {
	switch z.Status {
	case types.ZombieStatusWalking:
		if z.HasItemOrWalkLeft && !z.IsHypno && z.HP < z.MaxHP/2 && z.X > impThrowMinX {
			z.Status = types.ZombieStatusGargantuarThrow
			s.animator.SetReanim(z, types.ZombieAnimThrow, types.ReanimOnce, 24)
			return
		}
		if s.obstacleAhead(z) != nil {
			z.Status = types.ZombieStatusGargantuarSmash
			s.animator.SetReanim(z, types.ZombieAnimSmash, types.ReanimOnce, 16)
		}
	case types.ZombieStatusGargantuarSmash:
		if z.Reanim.IsInProgress(0.64) {
			zr := z.AttackBoxRect()
			for _, p := range s.scene.AlivePlants() {
				if p.Row == z.Row && zr.OverlapLen(p.HitBox()) >= minEatOverlap {
					s.damage.SetSmashed(p)
				}
			}
		}
		if z.Reanim.Finished() {
			z.Status = types.ZombieStatusWalking
			s.animator.UpdateStatus(z)
		}
	case types.ZombieStatusGargantuarThrow:
		if z.Reanim.IsInProgress(0.74) {
			z.HasItemOrWalkLeft = false
			s.throwImp(z)
		}
		if z.Reanim.Finished() {
			z.Status = types.ZombieStatusWalking
			s.animator.UpdateStatus(z)
		}
	}
}

func (s *ZombieSystem) throwImp(z *components.Zombie) {
	imp := s.factories.Zombies.CreateAt(types.ZombieImp, z.Row, z.X)
	if imp == nil {
		return
	}
	imp.Status = types.ZombieStatusImpFlying
	imp.Countdown.Action = ImpFlightFrames
	imp.DX = float64(min(ImpThrowDistance, z.IntX-utils.XByCol(0))) / ImpFlightFrames
	s.animator.SetReanim(imp, types.ZombieAnimThrown, types.ReanimRepeat, 12)
}

// updateImp 被扔出的小鬼：抛物线飞行后落地
func (s *ZombieSystem) updateImp(z *components.Zombie) {
	switch z.Status {
	case types.ZombieStatusImpFlying:
		t := float64(ImpFlightFrames-z.Countdown.Action) / ImpFlightFrames
		z.X -= z.DX
		z.DY = impFlightHeight * 4 * t * (1 - t)
		if z.Countdown.Action == 0 {
			z.DY = 0
			z.Status = types.ZombieStatusImpLanding
			s.animator.SetReanim(z, types.ZombieAnimLand, types.ReanimOnce, 24)
		}
	case types.ZombieStatusImpLanding:
		if z.Reanim.Finished() {
			z.Status = types.ZombieStatusWalking
			s.animator.UpdateStatus(z)
		}
	}
}

// updateBungee 蹦极僵尸：空投的僵尸落地后离开
func (s *ZombieSystem) updateBungee(z *components.Zombie) {
	target := s.scene.Zombie(z.MasterID)
	if target == nil || target.Action != types.ZombieActionFallFromSky {
		s.factories.Zombies.Destroy(z)
	}
}
