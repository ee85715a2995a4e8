package systems

import (
	"math"

	"github.com/decker502/pvzemu/pkg/components"
	"github.com/decker502/pvzemu/pkg/entities"
	"github.com/decker502/pvzemu/pkg/scene"
	"github.com/decker502/pvzemu/pkg/types"
	"github.com/decker502/pvzemu/pkg/utils"
)

const (
	// EatDamage 每次啃咬对植物的伤害
	EatDamage = 4

	// EatInterval / SlowedEatInterval 啃咬间隔（帧），减速时加倍
	EatInterval       = 4
	SlowedEatInterval = 8

	// PlantEatenFlash 植物被啃咬后的闪烁帧数
	PlantEatenFlash = 50

	// GarlicDuration 吃到大蒜后停顿并换行的帧数
	GarlicDuration = 170

	// HypnoDX / HypnoFPS 被魅惑后的速度与帧率
	HypnoDX  = 0.17
	HypnoFPS = 8.0

	// IcePathCountdown 冰道保持的帧数
	IcePathCountdown = 3000

	// zomboniIceOffset 冰道尖端相对冰车 x 的偏移
	zomboniIceOffset = 118

	// poolEdgeX 泳池行中 x 小于该值的位置在水里
	poolEdgeX = 680

	// hypnoExitX 魅惑僵尸走出场地右侧后消失
	hypnoExitX = 850

	// blownExitX 被三叶草吹走的僵尸越过该坐标后消失
	blownExitX = 850

	// BlowSpeed 被吹走时每帧的水平位移
	BlowSpeed = 10

	// lurkingRiseFrames 出土动作的插值帧数
	lurkingRiseFrames = 50.0

	// minEatOverlap 啃食判定需要的最小重叠
	minEatOverlap = 20
)

// zombieBehavior 僵尸类型专属的状态机，每帧在位置更新前调用
type zombieBehavior func(z *components.Zombie)

// ZombieSystem 僵尸系统
//
// 负责僵尸的倒计时、出土、移动、啃食、入水、进家判定与濒死流血。
// 各类型的专属行为（撑杆跳、读报、舞王等）按类型注册。
type ZombieSystem struct {
	scene     *scene.Scene
	factories *entities.Factories
	damage    *DamageSystem
	debuff    *DebuffSystem
	animator  *ZombieAnimator
	behaviors map[types.ZombieType]zombieBehavior
}

// NewZombieSystem 创建僵尸系统
func NewZombieSystem(s *scene.Scene, f *entities.Factories, damage *DamageSystem, debuff *DebuffSystem, animator *ZombieAnimator) *ZombieSystem {
	zs := &ZombieSystem{
		scene:     s,
		factories: f,
		damage:    damage,
		debuff:    debuff,
		animator:  animator,
	}
	zs.behaviors = map[types.ZombieType]zombieBehavior{
		types.ZombiePoleVaulting:   zs.updatePoleVaulting,
		types.ZombieNewspaper:      zs.updateNewspaper,
		types.ZombieJackInTheBox:   zs.updateJackInTheBox,
		types.ZombieDancing:        zs.updateDancing,
		types.ZombieBackupDancer:   zs.updateBackupDancer,
		types.ZombieBalloon:        zs.updateBalloon,
		types.ZombieDigger:         zs.updateDigger,
		types.ZombieSnorkel:        zs.updateSnorkel,
		types.ZombieDolphinRider:   zs.updateDolphinRider,
		types.ZombieCatapult:       zs.updateCatapult,
		types.ZombieGargantuar:     zs.updateGargantuar,
		types.ZombieGigaGargantuar: zs.updateGargantuar,
		types.ZombieBungee:         zs.updateBungee,
		types.ZombieImp:            zs.updateImp,
		types.ZombiePogo:           zs.updatePogo,
	}
	return zs
}

// Update 推进所有僵尸一帧
//
// 返回:
//   - bool: 有僵尸进家（游戏结束）时返回 true，剩余僵尸本帧不再更新
func (s *ZombieSystem) Update() bool {
	for _, z := range s.scene.Zombies.Items() {
		if z.IsDead {
			continue
		}
		if s.updateZombie(z) {
			return true
		}
	}
	return false
}

func (s *ZombieSystem) updateZombie(z *components.Zombie) bool {
	z.TimeSinceSpawn++

	switch z.Status {
	case types.ZombieStatusDyingFromInstantKill:
		z.Countdown.Action--
		if z.Countdown.Action <= 1 {
			s.factories.Zombies.Destroy(z)
		}
		return false
	case types.ZombieStatusDyingFromLawnmower:
		z.Countdown.Butter = 0
		z.IsNotDying = false
		if z.Type == types.ZombieFlag {
			z.HasItemOrWalkLeft = false
		}
		s.factories.Zombies.Destroy(z)
		return false
	case types.ZombieStatusDying:
		s.updateDying(z)
		if z.IsDead {
			return false
		}
		s.updateX(z)
	}

	s.updateCountdowns(z)

	if z.Status == types.ZombieStatusRisingFromGround {
		s.updateLurkingDY(z)
		z.IntX, z.IntY = int(z.X), int(z.Y)
		return false
	}

	if z.Countdown.Freeze <= 0 && z.Countdown.Butter <= 0 {
		s.updateStatus(z)
		if !z.IsDead {
			s.updatePos(z)
		}
		if !z.IsDead {
			s.updateEating(z)
			s.updateWaterStatus(z)
		}
		if !z.IsDead && s.updateEnteringHome(z) {
			s.scene.IsGameOver = true
			return true
		}
	}

	if z.IsDead {
		return false
	}

	s.updateNearDeath(z)
	s.updateGarlic(z)

	if z.Countdown.Dead > 0 {
		z.Countdown.Dead--
		if z.Countdown.Dead == 0 {
			s.factories.Zombies.Destroy(z)
		}
	}

	z.IntX = int(z.X)
	z.IntY = int(z.Y)
	z.Reanim.Advance()
	return false
}

// updateCountdowns 递减冰冻/减速/黄油/动作倒计时
//
// 冰冻、减速、黄油结束时重算帧率（速度与动画帧率耦合）。
func (s *ZombieSystem) updateCountdowns(z *components.Zombie) {
	c := &z.Countdown
	if c.Action > 0 && c.Freeze == 0 && c.Butter == 0 {
		c.Action--
	}

	if c.Freeze > 0 {
		c.Freeze--
		if c.Freeze == 0 {
			s.animator.UpdateFPS(z)
		}
	}
	if c.Slow > 0 {
		c.Slow--
		if c.Slow == 0 {
			s.animator.UpdateFPS(z)
		}
	}
	if c.Butter > 0 {
		c.Butter--
		if c.Butter == 0 {
			s.animator.UpdateFPS(z)
		}
	}
}

// updateDying 死亡动画期间：车辆报废计时，其余设置尸体销毁倒计时
func (s *ZombieSystem) updateDying(z *components.Zombie) {
	if z.Action == types.ZombieActionFalling {
		s.updateFalling(z)
	}

	vehicle := z.Type == types.ZombieZomboni || z.Type == types.ZombieCatapult
	if vehicle && z.Countdown.Action > 0 {
		if z.Countdown.Action == 1 {
			s.factories.Zombies.Destroy(z)
		}
		return
	}

	if z.Countdown.Dead <= 0 && z.Reanim.Finished() {
		if z.IsInWater {
			z.Countdown.Dead = 10
		} else {
			z.Countdown.Dead = ZombieDeadCountdown
		}
	}
}

// updateX 水平移动
//
// 有位移曲线的类型按动画进度取位移，否则使用线性速度（减速时乘以减速系数）。
func (s *ZombieSystem) updateX(z *components.Zombie) {
	if s.animator.IsNotMovable(z) || z.Action == types.ZombieActionCaughtByKelp {
		return
	}

	linear := z.DX
	if s.animator.IsSlowed(z) {
		linear *= SlowFactor
	}

	var dx float64
	switch {
	case z.HasPogoStatus() || z.Status == types.ZombieStatusDolphinRide ||
		z.Status == types.ZombieStatusBalloonFlying || z.Status == types.ZombieStatusSnorkelSwim ||
		z.Type == types.ZombieCatapult:
		dx = linear
	case z.Type == types.ZombieZomboni || z.Status == types.ZombieStatusDiggerDig ||
		z.Status == types.ZombieStatusDolphinInJump || z.Status == types.ZombieStatusPoleVaultingJumping ||
		z.Status == types.ZombieStatusSnorkelJumpInThePool:
		dx = z.DX
	default:
		if g, ok := z.DXFromGround(); ok {
			dx = g
		} else {
			dx = linear
		}
	}

	if z.IsWalkRight() || z.Status == types.ZombieStatusDancingMoonwalk {
		z.X += dx
	} else {
		z.X -= dx
	}
}

// updateLurkingDY 出土/出水：按经过的比例插值 dy
func (s *ZombieSystem) updateLurkingDY(z *components.Zombie) {
	ratio := (lurkingRiseFrames - float64(z.Countdown.Action)) / lurkingRiseFrames

	var dy float64
	switch {
	case ratio <= 0:
		dy = -200
		if z.IsInWater {
			dy = -150
		}
	case ratio > 1:
		dy = 0
		if z.IsInWater {
			dy = -40
		}
	case z.IsInWater:
		dy = 110*ratio - 150
	default:
		dy = 200*ratio - 200
	}
	z.DY = math.Round(dy)

	if z.Countdown.Action == 0 {
		z.Status = types.ZombieStatusWalking
		s.animator.UpdateStatus(z)
	}
}

// updateStatus 次级动作与类型专属行为
func (s *ZombieSystem) updateStatus(z *components.Zombie) {
	if z.Action == types.ZombieActionClimbingLadder {
		s.updateClimbLadder(z)
	}

	if z.Action == types.ZombieActionLeavingPool || z.Action == types.ZombieActionEnteringPool ||
		z.Action == types.ZombieActionCaughtByKelp || z.IsInWater {
		s.updateActionInPool(z)
	}

	switch z.Action {
	case types.ZombieActionFalling:
		s.updateFalling(z)
	case types.ZombieActionFallFromSky:
		s.updateFallFromSky(z)
	}

	if z.HasDeathStatus() {
		return
	}
	if behavior, ok := s.behaviors[z.Type]; ok {
		behavior(z)
	}
}

// updatePos 移动、碾压植物、被吹走与 y 坐标回归
func (s *ZombieSystem) updatePos(z *components.Zombie) {
	if z.Type == types.ZombieBungee || z.Status == types.ZombieStatusRisingFromGround {
		return
	}

	if !z.HasDeathStatus() {
		s.updateX(z)
	}

	if z.Type == types.ZombieZomboni || z.Type == types.ZombieCatapult {
		s.crushPlants(z)
	}

	prevX := z.X
	if z.IsBlown {
		z.X += BlowSpeed
		if prevX > blownExitX {
			s.factories.Zombies.Destroy(z)
			return
		}
	}

	if z.Action != types.ZombieActionNone {
		return
	}

	rest := entities.RestY(s.scene.Type, z, z.Row)
	switch {
	case z.Y > rest:
		z.Y = max(rest, z.Y-1)
	case z.Y < rest:
		z.Y = min(rest, z.Y+1)
	}
}

// canEat 当前状态能否啃食
func canEat(z *components.Zombie) bool {
	switch z.Type {
	case types.ZombieBungee, types.ZombieGargantuar, types.ZombieGigaGargantuar,
		types.ZombieZomboni, types.ZombieCatapult:
		return false
	}
	switch z.Status {
	case types.ZombieStatusPoleVaultingJumping, types.ZombieStatusBalloonFlying,
		types.ZombieStatusBalloonFalling, types.ZombieStatusDiggerDig, types.ZombieStatusDiggerDrill,
		types.ZombieStatusDiggerLanding, types.ZombieStatusDolphinInJump, types.ZombieStatusDolphinRide,
		types.ZombieStatusSnorkelJumpInThePool, types.ZombieStatusDancingDancerSpawning:
		return false
	}
	switch z.Action {
	case types.ZombieActionFallFromSky, types.ZombieActionClimbingLadder, types.ZombieActionEnteringPool,
		types.ZombieActionLeavingPool, types.ZombieActionFalling, types.ZombieActionCaughtByKelp:
		return false
	}
	return z.IsNotDying && !z.HasDeathStatus() && !z.HasPogoStatus()
}

// updateEating 啃食：优先与敌对阵营的僵尸互咬，其次啃食植物
func (s *ZombieSystem) updateEating(z *components.Zombie) {
	if !canEat(z) {
		return
	}

	if enemy := s.findHypnoEnemy(z); enemy != nil {
		s.damage.SetIsEating(z)
		s.damage.SetIsEating(enemy)
		if z.TimeSinceSpawn%s.eatInterval(z) == 0 {
			s.damage.Take(enemy, EatDamage, types.DamageNoFlash|types.DamageBypassesShield)
		}
		return
	}

	target := s.findPlantTarget(z)
	if z.IsHypno || target == nil {
		s.damage.UnsetIsEating(z)
		return
	}
	s.eatPlant(z, target)
}

func (s *ZombieSystem) eatInterval(z *components.Zombie) int {
	if z.Countdown.Slow > 0 {
		return SlowedEatInterval
	}
	return EatInterval
}

// findHypnoEnemy 同行中与自己阵营相反、攻击框重叠的僵尸
func (s *ZombieSystem) findHypnoEnemy(z *components.Zombie) *components.Zombie {
	zr := z.AttackBoxRect()
	for _, e := range s.scene.ZombiesInRows(z.Row, 0) {
		if e == z || e.IsHypno == z.IsHypno || e.IsDead || !e.IsNotDying || e.HasDeathStatus() {
			continue
		}
		if e.IsFlyingOrFalling() || e.Status == types.ZombieStatusDiggerDig {
			continue
		}
		d := zr.OverlapLen(e.HitBoxRect())
		if d >= 10 || (d >= 0 && e.IsEating) {
			return e
		}
	}
	return nil
}

// findPlantTarget 攻击框内可以啃食的植物，南瓜头优先
func (s *ZombieSystem) findPlantTarget(z *components.Zombie) *components.Plant {
	zr := z.AttackBoxRect()

	var target *components.Plant
	for _, p := range s.scene.AlivePlants() {
		if p.Row != z.Row || p.IsSmashed || p.Edible == types.EdibleInvisibleAndNotEdible {
			continue
		}
		if p.Type == types.PlantSpikeweed || p.Type == types.PlantSpikerock {
			continue
		}
		if zr.OverlapLen(p.HitBox()) < minEatOverlap {
			continue
		}
		if p.Type == types.PlantPumpkin {
			return p
		}
		if target == nil {
			target = p
		}
	}
	return target
}

// eatPlant 啃食植物；梯子僵尸遇到梯子改为攀爬，魅惑菇会反转阵营
func (s *ZombieSystem) eatPlant(z *components.Zombie, p *components.Plant) {
	if z.Status == types.ZombieStatusDancingMoonwalk {
		z.Countdown.Action = 1
		return
	}
	if z.HasEatenGarlic {
		return
	}

	if z.Type != types.ZombieDigger && s.scene.HasGridItem(types.GridItemLadder, p.Row, p.Col) {
		s.damage.UnsetIsEating(z)
		if z.Action == types.ZombieActionNone && z.LadderCol != p.Col {
			z.Action = types.ZombieActionClimbingLadder
			z.LadderCol = p.Col
		}
		return
	}

	if z.Type == types.ZombieLadder && z.Status == types.ZombieStatusLadderWalking &&
		z.Accessory2 == types.Accessory2Ladder && s.placeLadder(z, p) {
		return
	}

	s.damage.SetIsEating(z)
	if z.TimeSinceSpawn%s.eatInterval(z) != 0 {
		return
	}

	if p.Type == types.PlantHypnoshroom && !p.IsSleeping && !isHypnoImmune(z.Type) {
		s.factories.Plants.Destroy(p)
		s.hypnotize(z)
		return
	}

	switch p.Status {
	case types.PlantStatusSquashJumpUp, types.PlantStatusSquashStopInTheAir, types.PlantStatusSquashJumpDown,
		types.PlantStatusSquashCrushed, types.PlantStatusFlowerPotPlaced, types.PlantStatusLilyPadPlaced:
		return
	}
	if p.Type == types.PlantPotatoMine && p.Status != types.PlantStatusIdle {
		return
	}

	if !p.IsSleeping {
		switch p.Type {
		case types.PlantCherryBomb, types.PlantJalapeno, types.PlantDoomshroom, types.PlantIceshroom:
			s.damage.ActivatePlant(p)
			if p.Status == types.PlantStatusWork {
				return
			}
		}
	}

	p.HP -= EatDamage
	p.Countdown.Eaten = PlantEatenFlash
	if p.HP <= 0 {
		s.factories.Plants.Destroy(p)
		return
	}

	if p.Type == types.PlantGarlic {
		z.HasEatenGarlic = true
		z.TimeSinceAteGarlic = 0
		s.animator.UpdateFPS(z)
	}
}

func isHypnoImmune(zt types.ZombieType) bool {
	switch zt {
	case types.ZombieGargantuar, types.ZombieGigaGargantuar, types.ZombieZomboni,
		types.ZombieCatapult, types.ZombieBungee, types.ZombieBoss:
		return true
	}
	return false
}

// hypnotize 僵尸被魅惑：转向、减速，并解除与舞团的关联
func (s *ZombieSystem) hypnotize(z *components.Zombie) {
	s.damage.UnsetIsEating(z)
	z.IsHypno = true
	z.DX = HypnoDX
	z.Reanim.FPS = HypnoFPS
	z.Reanim.PrevFPS = HypnoFPS

	switch z.Type {
	case types.ZombieDancing:
		for i, id := range z.Partners {
			if partner := s.scene.Zombie(id); partner != nil {
				partner.MasterID = -1
			}
			z.Partners[i] = -1
		}
	case types.ZombieBackupDancer:
		if master := s.scene.Zombie(z.MasterID); master != nil {
			for i, id := range master.Partners {
				if id == z.ID {
					master.Partners[i] = -1
					break
				}
			}
		}
		z.MasterID = -1
	}
}

// placeLadder 梯子僵尸把梯子架在坚果类植物上
func (s *ZombieSystem) placeLadder(z *components.Zombie, p *components.Plant) bool {
	switch p.Type {
	case types.PlantWallnut, types.PlantTallnut, types.PlantPumpkin:
	default:
		return false
	}
	if p.IsSquashAttacking() {
		return false
	}

	s.factories.GridItems.Create(types.GridItemLadder, p.Row, p.Col)
	z.Accessory2 = types.Accessory2None
	z.Accessory2HP = 0
	z.Status = types.ZombieStatusWalking
	s.damage.UnsetIsEating(z)
	s.animator.UpdateStatus(z)
	return true
}

// updateWaterStatus 普通僵尸在泳池行的入水/出水
func (s *ZombieSystem) updateWaterStatus(z *components.Zombie) {
	switch z.Type {
	case types.ZombieBasic, types.ZombieConeHead, types.ZombieBucketHead, types.ZombieFlag,
		types.ZombieBalloon, types.ZombieDuckyTube:
	default:
		return
	}
	if z.IsFlyingOrFalling() || z.Action == types.ZombieActionEnteringPool || z.Action == types.ZombieActionLeavingPool {
		return
	}

	inWater := s.inPool(z)
	if z.IsInWater {
		if !inWater {
			z.Action = types.ZombieActionLeavingPool
		}
		return
	}
	if !inWater {
		return
	}

	if s.scene.Spawn.Countdown.Pool <= 0 {
		z.Action = types.ZombieActionEnteringPool
		z.IsInWater = true
		return
	}

	// 寒冰菇生效期间落水的僵尸被冻住
	z.Countdown.Freeze = s.scene.Spawn.Countdown.Pool
	s.debuff.SetSlowed(z, FreezeSlowCountdown)
}

func (s *ZombieSystem) inPool(z *components.Zombie) bool {
	return s.scene.Type.HasPool() && utils.IsWaterGrid(s.scene.Type, z.Row) && z.IntX < poolEdgeX
}

// homeThreshold 僵尸进家判定的 x 坐标
func homeThreshold(zt types.ZombieType) int {
	switch zt {
	case types.ZombieGargantuar, types.ZombieGigaGargantuar, types.ZombiePoleVaulting:
		return -150
	case types.ZombieCatapult, types.ZombieFootball, types.ZombieZomboni:
		return -175
	case types.ZombieBackupDancer, types.ZombieDancing, types.ZombieSnorkel:
		return -130
	}
	return -100
}

// updateEnteringHome 进家判定
//
// 仍然存活的僵尸越过阈值即游戏结束；已经掉头的濒死僵尸在阈值附近直接死亡。
func (s *ZombieSystem) updateEnteringHome(z *components.Zombie) bool {
	if z.IsWalkRight() {
		if z.X > hypnoExitX {
			s.factories.Zombies.Destroy(z)
		}
		return false
	}

	threshold := homeThreshold(z.Type)
	if z.IntX < threshold && z.IsNotDying && !z.HasDeathStatus() {
		return true
	}
	if z.IntX < threshold+70 && !z.IsNotDying {
		s.damage.Take(z, InstantKillDamage, types.DamageBypassesShield|types.DamageNoFlash)
	}
	return false
}

// updateNearDeath 掉头后的僵尸与残血车辆随机流血
func (s *ZombieSystem) updateNearDeath(z *components.Zombie) {
	if z.HasDeathStatus() {
		return
	}

	vehicle := z.Type == types.ZombieZomboni || z.Type == types.ZombieCatapult
	if z.IsNotDying && !vehicle && z.HP < z.MaxHP/3 {
		z.IsNotDying = false
	}
	if !(vehicle && z.HP < 200) && z.IsNotDying {
		return
	}

	d := 1
	if z.Type == types.ZombieYeti {
		d = 10
	}
	if z.MaxHP >= 500 {
		d = 3
	}
	if s.scene.RNG.Int(5) == 0 {
		s.damage.Take(z, d, types.DamageBypassesShield|types.DamageNoFlash)
	}
}

// updateGarlic 吃到大蒜后停顿一段时间，然后换到相邻行
func (s *ZombieSystem) updateGarlic(z *components.Zombie) {
	if !z.HasEatenGarlic {
		return
	}
	z.TimeSinceAteGarlic++
	if z.TimeSinceAteGarlic < GarlicDuration {
		return
	}

	z.HasEatenGarlic = false
	z.TimeSinceAteGarlic = 0
	if row, ok := s.garlicRow(z); ok {
		s.scene.SetZombieRow(z, row)
	}
	s.damage.UnsetIsEating(z)
	s.animator.UpdateFPS(z)
}

// garlicRow 大蒜换行的目标行：边缘行只能向内，其余随机上下
func (s *ZombieSystem) garlicRow(z *components.Zombie) (int, bool) {
	var candidates []int
	for _, r := range []int{z.Row - 1, z.Row + 1} {
		if r < 0 || r >= s.scene.Rows {
			continue
		}
		if utils.IsWaterGrid(s.scene.Type, r) != utils.IsWaterGrid(s.scene.Type, z.Row) {
			continue
		}
		candidates = append(candidates, r)
	}
	switch len(candidates) {
	case 0:
		return 0, false
	case 1:
		return candidates[0], true
	}
	return candidates[s.scene.RNG.Int(2)], true
}

// updateClimbLadder 沿梯子攀爬，离开梯子或爬到顶后开始下落
func (s *ZombieSystem) updateClimbLadder(z *components.Zombie) {
	col := max(0, utils.ColByX(int(z.DY*0.5)+z.IntX+5))
	if !s.scene.HasGridItem(types.GridItemLadder, z.Row, col) {
		z.Action = types.ZombieActionFalling
		return
	}

	z.DY += 0.8
	if z.DX < 0.5 {
		z.X -= 0.5
	}
	if z.DY >= 90 {
		z.Action = types.ZombieActionFalling
	}
}

// updateActionInPool 入水下沉、出水上浮、被水草拖入水底
func (s *ZombieSystem) updateActionInPool(z *components.Zombie) {
	switch z.Action {
	case types.ZombieActionEnteringPool:
		z.DY--
		if z.DY <= -40 {
			z.DY = -40
			z.Action = types.ZombieActionNone
			s.animator.UpdateStatus(z)
		}
	case types.ZombieActionLeavingPool:
		z.DY++
		if z.Type == types.ZombieSnorkel {
			z.DY++
		}
		if z.DY >= 0 {
			z.DY = 0
			z.Action = types.ZombieActionNone
			z.IsInWater = false
			s.animator.UpdateStatus(z)
		}
	case types.ZombieActionCaughtByKelp:
		z.DY--
	}
}

func (s *ZombieSystem) updateFalling(z *components.Zombie) {
	z.DY--
	if z.Status == types.ZombieStatusPoleVaultingRunning {
		z.DY--
	}
	if z.DY <= 0 {
		z.DY = 0
		z.Action = types.ZombieActionNone
	}
}

// updateFallFromSky 被蹦极空投的僵尸下落
func (s *ZombieSystem) updateFallFromSky(z *components.Zombie) {
	z.DY -= 8
	if z.DY <= 0 {
		z.DY = 0
		z.Action = types.ZombieActionNone
		s.animator.UpdateStatus(z)
	}
}

// crushPlants 车辆碾压攻击框内的植物
func (s *ZombieSystem) crushPlants(z *components.Zombie) {
	if z.HasDeathStatus() {
		return
	}
	zr := z.AttackBoxRect()
	for _, p := range s.scene.AlivePlants() {
		if p.Row != z.Row || p.Type == types.PlantSpikeweed || p.Type == types.PlantSpikerock {
			continue
		}
		if zr.OverlapLen(p.HitBox()) >= minEatOverlap {
			s.damage.SetSmashed(p)
		}
	}

	if z.Type == types.ZombieZomboni {
		ip := &s.scene.IcePath
		if tip := z.IntX + zomboniIceOffset; tip < ip.X[z.Row] {
			ip.X[z.Row] = max(tip, utils.XByCol(0))
		}
		ip.Countdown[z.Row] = IcePathCountdown
	}
}
