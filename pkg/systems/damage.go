package systems

import (
	"github.com/decker502/pvzemu/pkg/components"
	"github.com/decker502/pvzemu/pkg/entities"
	"github.com/decker502/pvzemu/pkg/scene"
	"github.com/decker502/pvzemu/pkg/types"
	"github.com/decker502/pvzemu/pkg/utils"
)

const (
	// InstantKillDamage 爆炸、灰烬等一击必杀的伤害值
	InstantKillDamage = 1800

	// RangeAttackDamage 地刺、大喷菇等范围攻击的单次伤害
	RangeAttackDamage = 20

	// BalloonPopDamage 打破气球消耗的伤害
	BalloonPopDamage = 20

	// ZombieDeadCountdown 死亡动画播放后到销毁的帧数
	ZombieDeadCountdown = 100

	// AshCorpseCountdown 灰烬尸体停留的帧数
	AshCorpseCountdown = 300

	// SmashedDeadCountdown 植物被压扁后到销毁的帧数
	SmashedDeadCountdown = 500

	// BloverBlowCountdown 三叶草吹风后到消失的帧数
	BloverBlowCountdown = 200

	// SpikerockWear 地刺王每扎一次车辆损失的血量
	SpikerockWear = 50

	// IceshroomSlowCountdown 寒冰菇附带的减速时长
	IceshroomSlowCountdown = 2000

	// IceshroomDamage 寒冰菇对每个僵尸的伤害
	IceshroomDamage = 20

	// IceshroomPoolSuppress 寒冰菇生效后泳池出怪抑制时长
	IceshroomPoolSuppress = 300
)

// DamageSystem 伤害结算与状态效果
//
// 所有对僵尸造成伤害、判定能否被攻击、触发一次性植物效果的逻辑都集中在这里。
type DamageSystem struct {
	scene     *scene.Scene
	factories *entities.Factories
	animator  *ZombieAnimator
	debuff    *DebuffSystem
}

// NewDamageSystem 创建伤害系统
func NewDamageSystem(s *scene.Scene, f *entities.Factories, animator *ZombieAnimator, debuff *DebuffSystem) *DamageSystem {
	return &DamageSystem{scene: s, factories: f, animator: animator, debuff: debuff}
}

// isAnimatingStatus 跳跃、钻地、出土等过场动画状态
func isAnimatingStatus(s types.ZombieStatus) bool {
	switch s {
	case types.ZombieStatusPoleVaultingJumping, types.ZombieStatusImpFlying,
		types.ZombieStatusDiggerDrill, types.ZombieStatusDiggerLostDig, types.ZombieStatusDiggerLanding,
		types.ZombieStatusDolphinJumpInPool, types.ZombieStatusDolphinInJump,
		types.ZombieStatusSnorkelJumpInThePool, types.ZombieStatusBalloonFalling,
		types.ZombieStatusRisingFromGround, types.ZombieStatusDancingDancerSpawning:
		return true
	}
	return false
}

// isLurkingSnorkel 潜水中的潜水僵尸
func isLurkingSnorkel(z *components.Zombie) bool {
	return z.Type == types.ZombieSnorkel && !z.IsEating && z.IsInWater
}

// CanBeAttacked 判断带 flags 的攻击能否命中僵尸
//
// 参数:
//   - z: 目标僵尸
//   - flags: 攻击可命中的目标类别
//
// 返回:
//   - bool: 是否可以被攻击
func (d *DamageSystem) CanBeAttacked(z *components.Zombie, flags types.AttackFlags) bool {
	if !flags.Has(types.AttackDyingZombies) && (z.IsDead || z.HasDeathStatus()) {
		return false
	}

	if flags.Has(types.AttackHypnoZombies) != z.IsHypno {
		return false
	}

	if z.Type == types.ZombieBungee && z.Status != types.ZombieStatusBungeeIdleAfterDrop &&
		z.Status != types.ZombieStatusBungeeGrab {
		return false
	}

	if z.Action == types.ZombieActionFallFromSky {
		return false
	}

	if isAnimatingStatus(z.Status) {
		return flags.Has(types.AttackAnimatingZombies)
	}

	if z.HitBoxRect().X > utils.BoardWidth {
		return false
	}

	lurking := isLurkingSnorkel(z)
	if flags.Has(types.AttackLurkingSnorkel) && lurking {
		return true
	}

	digging := z.Status == types.ZombieStatusDiggerDig
	if flags.Has(types.AttackDiggingDigger) && digging {
		return true
	}

	flying := z.IsFlyingOrFalling()
	if flags.Has(types.AttackFlyingBalloon) && flying {
		return true
	}

	return flags.Has(types.AttackGround) && !flying && !lurking && !digging
}

// Take 对僵尸造成伤害：二类防具 → 一类防具 → 本体
//
// 参数:
//   - z: 目标僵尸
//   - damage: 伤害值
//   - flags: 伤害标志（绕过防具、同时伤害防具与本体、冰冻等）
func (d *DamageSystem) Take(z *components.Zombie, damage int, flags types.DamageFlags) {
	if z.HasDeathStatus() || z.Status == types.ZombieStatusJackboxPop || z.IsDead {
		return
	}

	if flags.Has(types.DamageBypassesShield) {
		d.TakeBody(z, damage, flags)
		return
	}

	dmg := damage

	if z.Status == types.ZombieStatusBalloonFlying ||
		(z.Status == types.ZombieStatusBalloonFalling && z.Type == types.ZombieBalloon) {
		if dmg >= BalloonPopDamage {
			dmg -= BalloonPopDamage
			d.popBalloon(z, flags)
		}
	}

	if dmg > 0 && z.Accessory2 != types.Accessory2None {
		taken := min(z.Accessory2HP, dmg)
		if !flags.Has(types.DamageHitsShieldAndBody) {
			dmg -= taken
		}
		z.Accessory2HP -= taken
		if z.Accessory2HP == 0 {
			d.DestroyAccessory2(z)
		}
	}

	if dmg > 0 && z.Accessory1 != types.Accessory1None {
		taken := min(z.Accessory1HP, dmg)
		dmg -= taken
		z.Accessory1HP -= taken
		if z.Accessory1HP <= 0 {
			d.DestroyAccessory1(z)
		}
	}

	if dmg > 0 {
		d.TakeBody(z, dmg, flags)
	}
}

// popBalloon 气球被打破：开始坠落，水上直接销毁
func (d *DamageSystem) popBalloon(z *components.Zombie, flags types.DamageFlags) {
	if !flags.Has(types.DamageNoLeaveBody) && z.Status == types.ZombieStatusBalloonFlying {
		z.Status = types.ZombieStatusBalloonFalling
		z.SetReanimFrame(types.ZombieAnimPop)
		z.Reanim.Type = types.ReanimOnce
		z.Reanim.FPS = 24
		z.Reanim.NRepeated = 0
	}

	if d.scene.Type.HasPool() && utils.IsWaterGrid(d.scene.Type, z.Row) {
		d.factories.Zombies.Destroy(z)
		return
	}
	z.Action = types.ZombieActionFalling
}

// DestroyAccessory1 移除头部防具
func (d *DamageSystem) DestroyAccessory1(z *components.Zombie) {
	z.Accessory1 = types.Accessory1None
	z.Accessory1HP = 0
}

// DestroyAccessory2 移除手持防具
//
// 报纸被打掉时僵尸进入愤怒前的喘气动画并清除大蒜效果；
// 梯子被打掉时恢复普通行走。
func (d *DamageSystem) DestroyAccessory2(z *components.Zombie) {
	if z.Accessory2 == types.Accessory2None {
		return
	}
	z.Accessory2HP = 0

	switch z.Accessory2 {
	case types.Accessory2Newspaper:
		d.UnsetIsEating(z)
		if z.HasEatenGarlic {
			z.HasEatenGarlic = false
			z.TimeSinceAteGarlic = 0
		}
		z.Status = types.ZombieStatusNewspaperDestroyed
		z.SetReanimFrame(types.ZombieAnimGasp)
		z.Reanim.Type = types.ReanimOnce
		z.Reanim.FPS = 8
		z.Reanim.NRepeated = 0
	case types.Accessory2Ladder:
		z.Status = types.ZombieStatusWalking
		if z.IsEating {
			z.SetReanimFrame(types.ZombieAnimEat)
		} else {
			z.SetReanimFrame(types.ZombieAnimWalk)
		}
		z.Reanim.Type = types.ReanimRepeat
		z.Reanim.NRepeated = 0
	}

	z.Accessory2 = types.Accessory2None
}

// TakeBody 伤害直接作用于本体
func (d *DamageSystem) TakeBody(z *components.Zombie, damage int, flags types.DamageFlags) {
	if flags.Has(types.DamageFreeze) {
		d.debuff.SetSlowed(z, FreezeSlowCountdown)
	}

	z.HP -= damage

	switch z.Type {
	case types.ZombieZomboni:
		if flags.Has(types.DamageSpike) {
			// 地刺扎爆轮胎，两种翻车动画之一
			if d.scene.RNG.Int(4) == 0 || z.X >= 600 {
				d.spinOut(z, types.ZombieAnimWheelie1, 12)
			} else {
				d.spinOut(z, types.ZombieAnimWheelie2, 10)
			}
		} else if z.HP < 0 {
			d.factories.Zombies.Destroy(z)
		}
	case types.ZombieCatapult:
		if flags.Has(types.DamageSpike) {
			d.spinOut(z, types.ZombieAnimDeath, 12)
		} else if z.HP < 0 {
			d.factories.Zombies.Destroy(z)
		}
	}

	if z.HP <= 0 {
		z.HP = 0
		d.SetDeathState(z, flags)
	}
}

// spinOut 车辆类僵尸被地刺扎坏后的报废过程
func (d *DamageSystem) spinOut(z *components.Zombie, name types.ZombieReanimName, fps float64) {
	z.Status = types.ZombieStatusDying
	z.DX = 0
	z.Countdown.Action = 280
	z.SetReanimFrame(name)
	z.Reanim.Type = types.ReanimOnce
	z.Reanim.FPS = fps
	z.Reanim.NRepeated = 0
}

// deathFPS 死亡动画帧率
func (d *DamageSystem) deathFPS(z *components.Zombie) float64 {
	switch z.Type {
	case types.ZombieFootball:
		return 24
	case types.ZombieGargantuar, types.ZombieGigaGargantuar, types.ZombieSnorkel, types.ZombieYeti:
		return 14
	case types.ZombieDigger:
		return 18
	}
	return d.scene.RNG.Float(24, 30)
}

// SetDeathState 进入死亡状态（重复调用无效）
//
// 没有死亡动画的类型、或者带 NoLeaveBody 标志的非巨人直接销毁。
func (d *DamageSystem) SetDeathState(z *components.Zombie, flags types.DamageFlags) {
	if z.HasDeathStatus() {
		return
	}

	if !z.HasReanim(types.ZombieAnimDeath) {
		d.factories.Zombies.Destroy(z)
		return
	}

	z.Countdown.Freeze = 0
	z.Countdown.Butter = 0
	z.HasEatenGarlic = false
	z.TimeSinceAteGarlic = 0

	if flags.Has(types.DamageNoLeaveBody) && z.Type != types.ZombieGargantuar && z.Type != types.ZombieGigaGargantuar {
		d.factories.Zombies.Destroy(z)
		return
	}

	if z.Type == types.ZombiePogo {
		z.DY = 0
	}

	d.UnsetIsEating(z)
	if z.Accessory2 != types.Accessory2None {
		d.DestroyAccessory2(z)
	}

	z.DX = 0
	z.Status = types.ZombieStatusDying
	if z.Action == types.ZombieActionClimbingLadder {
		z.Action = types.ZombieActionFalling
	}

	fps := d.deathFPS(z)

	name := types.ZombieAnimDeath
	rng := d.scene.RNG
	switch {
	case z.IsInWater && z.HasReanim(types.ZombieAnimWaterDeath):
		name = types.ZombieAnimWaterDeath
	case rng.Int(10) == 0 && z.HasReanim(types.ZombieAnimDeath2):
		name = types.ZombieAnimDeath2
	case rng.Int(10) == 0 && z.HasReanim(types.ZombieAnimSuperLongDeath):
		name = types.ZombieAnimSuperLongDeath
	}

	z.SetReanimFrame(name)
	z.Reanim.Type = types.ReanimOnce
	z.Reanim.NRepeated = 0
	z.Reanim.FPS = fps

	z.Countdown.Dead = ZombieDeadCountdown
}

// SetIsEating 开始啃食并切换到对应的啃食动画
func (d *DamageSystem) SetIsEating(z *components.Zombie) {
	if z.IsEating {
		return
	}
	z.IsEating = true

	name := types.ZombieAnimEat
	switch z.Status {
	case types.ZombieStatusDiggerDig, types.ZombieStatusPoleVaultingRunning:
		return
	case types.ZombieStatusLadderWalking:
		name = types.ZombieAnimLadderEat
	case types.ZombieStatusNewspaperRunning:
		name = types.ZombieAnimEatNoPaper
	}

	z.SetReanimFrame(name)
	z.Reanim.Type = types.ReanimRepeat
	z.Reanim.NRepeated = 0
}

// UnsetIsEating 停止啃食并恢复行走类动画
func (d *DamageSystem) UnsetIsEating(z *components.Zombie) {
	if !z.IsEating {
		return
	}
	z.IsEating = false

	if z.Status == types.ZombieStatusDiggerDig {
		return
	}

	if z.Type != types.ZombieSnorkel {
		name := types.ZombieAnimWalk
		switch {
		case z.Status == types.ZombieStatusLadderWalking:
			name = types.ZombieAnimLadderWalk
		case z.Status == types.ZombieStatusNewspaperRunning:
			name = types.ZombieAnimWalkNoPaper
		case z.IsInWater && z.HasReanim(types.ZombieAnimSwim):
			name = types.ZombieAnimSwim
		case z.Type == types.ZombiePoleVaulting && z.Status == types.ZombieStatusPoleVaultingRunning:
			name = types.ZombieAnimRun
		}
		z.SetReanimFrame(name)
		z.Reanim.Type = types.ReanimRepeat
		z.Reanim.NRepeated = 0
	}

	d.animator.UpdateFPS(z)
}

// TakeInstantKill 范围一击必杀
//
// 参数:
//   - row: 爆炸中心所在行
//   - x, y: 爆炸中心
//   - radius: 判定圆半径
//   - rowWindow: 影响的行范围 [row-rowWindow, row+rowWindow]
//   - ash: 是否为灰烬类（走 TakeAshAttack）
//   - flags: 可命中的目标类别
func (d *DamageSystem) TakeInstantKill(row, x, y, radius, rowWindow int, ash bool, flags types.AttackFlags) {
	for _, z := range d.scene.ZombiesInRows(row, rowWindow) {
		if !d.CanBeAttacked(z, flags) {
			continue
		}
		if abs(z.Row-row) > rowWindow || !z.HitBoxRect().OverlapsCircle(x, y, radius) {
			continue
		}
		if ash {
			d.TakeAshAttack(z)
		} else {
			d.Take(z, InstantKillDamage, types.DamageNoLeaveBody|types.DamageHitsShieldAndBody)
		}
	}

	col := max(0, utils.ColByX(x))
	srcRow := max(0, utils.RowByXY(d.scene.Type, max(40, x), y))
	for _, g := range d.scene.GridItems.Items() {
		if g.IsDisappeared || g.Type != types.GridItemLadder {
			continue
		}
		if abs(g.Col-col) <= rowWindow && abs(g.Row-srcRow) <= rowWindow {
			d.factories.GridItems.Destroy(g)
		}
	}
}

// isStandardGround 不在跳跃、钻地、入水等特殊阶段
func isStandardGround(z *components.Zombie) bool {
	if z.IsInWater {
		return false
	}
	switch z.Status {
	case types.ZombieStatusDying, types.ZombieStatusDyingFromLawnmower, types.ZombieStatusPoleVaultingJumping,
		types.ZombieStatusImpFlying, types.ZombieStatusRisingFromGround, types.ZombieStatusDancingDancerSpawning,
		types.ZombieStatusDolphinJumpInPool, types.ZombieStatusDolphinInJump, types.ZombieStatusDolphinRide,
		types.ZombieStatusSnorkelJumpInThePool, types.ZombieStatusDiggerDig, types.ZombieStatusDiggerLostDig,
		types.ZombieStatusDiggerDrill, types.ZombieStatusDiggerLanding:
		return false
	}
	return true
}

// TakeAshAttack 灰烬伤害（樱桃、火爆辣椒、毁灭菇、玉米炮）
//
// 血量 ≥1800 的僵尸只受 1800 点伤害；其余直接清零血量，
// 部分类型留下定格的灰烬尸体，其他直接销毁。
func (d *DamageSystem) TakeAshAttack(z *components.Zombie) {
	if z.Status == types.ZombieStatusDyingFromInstantKill {
		return
	}

	if z.HP >= InstantKillDamage {
		d.Take(z, InstantKillDamage, types.DamageNoLeaveBody|types.DamageHitsShieldAndBody)
		return
	}

	z.HP = 0
	d.debuff.RemoveFreeze(z)
	d.debuff.RemoveButter(z)

	if isStandardGround(z) &&
		(z.Type == types.ZombieBungee || z.Type == types.ZombieYeti || z.IsFlyingOrFalling() || !z.IsNotDying) {
		z.Reanim.PrevFPS = 0
		z.Reanim.FPS = 0
		z.Status = types.ZombieStatusDyingFromInstantKill
		z.Countdown.Action = AshCorpseCountdown
		return
	}

	d.factories.Zombies.Destroy(z)
}

// activationFlags 一次性效果与范围攻击使用的目标类别
func activationFlags(pt types.PlantType) types.AttackFlags {
	switch pt {
	case types.PlantCherryBomb, types.PlantJalapeno, types.PlantDoomshroom, types.PlantCobCannon:
		return types.AttackDyingZombies | types.AttackGround | types.AttackDiggingDigger |
			types.AttackLurkingSnorkel | types.AttackAnimatingZombies | types.AttackFlyingBalloon
	case types.PlantPotatoMine, types.PlantSquash, types.PlantTangleKelp:
		return types.AttackDyingZombies | types.AttackGround | types.AttackDiggingDigger |
			types.AttackLurkingSnorkel | types.AttackAnimatingZombies
	case types.PlantCabbagepult, types.PlantKernelpult, types.PlantMelonpult, types.PlantWinterMelon:
		return types.AttackGround | types.AttackLurkingSnorkel | types.AttackAnimatingZombies
	case types.PlantCattail:
		return types.AttackGround | types.AttackLurkingSnorkel | types.AttackAnimatingZombies | types.AttackFlyingBalloon
	case types.PlantSpikeweed, types.PlantSpikerock:
		return types.AttackGround | types.AttackDiggingDigger | types.AttackAnimatingZombies
	case types.PlantCactus, types.PlantBlover:
		return types.AttackFlyingBalloon | types.AttackGround | types.AttackAnimatingZombies
	case types.PlantIceshroom:
		return types.AttackGround | types.AttackLurkingSnorkel | types.AttackAnimatingZombies |
			types.AttackFlyingBalloon | types.AttackDiggingDigger
	}
	return types.AttackGround | types.AttackAnimatingZombies
}

// ActivatePlant 触发一次性植物效果（爆炸、冰冻、吹风、唤醒等）
func (d *DamageSystem) ActivatePlant(p *components.Plant) {
	flags := activationFlags(p.Type)
	x := p.X + p.BoxSize.Width/2
	y := p.Y + p.BoxSize.Height/2

	switch p.Type {
	case types.PlantBlover:
		if p.Status != types.PlantStatusWork {
			p.Status = types.PlantStatusWork
			p.Countdown.Dead = BloverBlowCountdown
			d.ActivateBlover()
		}

	case types.PlantCherryBomb:
		d.TakeInstantKill(p.Row, x, y, 115, 1, true, flags)
		d.factories.Plants.Destroy(p)

	case types.PlantDoomshroom:
		d.TakeInstantKill(p.Row, x, y, 250, 3, true, flags)
		for _, other := range d.scene.AlivePlants() {
			if other.Row == p.Row && other.Col == p.Col {
				d.factories.Plants.Destroy(other)
			}
		}
		d.factories.GridItems.Create(types.GridItemCrater, p.Row, p.Col)

	case types.PlantJalapeno:
		for _, z := range d.scene.ZombiesInRows(p.Row, 0) {
			if !d.CanBeAttacked(z, flags) {
				continue
			}
			d.debuff.RemoveFreeze(z)
			d.debuff.RemoveSlow(z)
			d.TakeAshAttack(z)
		}
		for _, g := range d.scene.GridItems.Items() {
			if !g.IsDisappeared && g.Row == p.Row && g.Type == types.GridItemLadder {
				d.factories.GridItems.Destroy(g)
			}
		}
		d.scene.IcePath.ResetRow(p.Row)
		d.factories.Plants.Destroy(p)

	case types.PlantUmbrellaLeaf:
		if p.Status != types.PlantStatusUmbrellaLeafBlock && p.Status != types.PlantStatusUmbrellaLeafShrink {
			p.Status = types.PlantStatusUmbrellaLeafBlock
			p.Countdown.Status = 5
			p.SetReanim(types.PlantAnimBlock, types.ReanimOnce, 22)
		}

	case types.PlantIceshroom:
		d.activateIceshroom()
		d.factories.Plants.Destroy(p)

	case types.PlantPotatoMine:
		d.TakeInstantKill(p.Row, x, y, 60, 0, false, flags)
		d.factories.Plants.Destroy(p)

	case types.PlantCoffeeBean:
		for _, other := range d.scene.AlivePlants() {
			if other.ID != p.ID && other.Row == p.Row && other.Col == p.Col && other.IsSleeping {
				other.Countdown.Awake = 100
				break
			}
		}
		p.Status = types.PlantStatusWork
		p.SetReanim(types.PlantAnimCrumble, types.ReanimOnce, 22)
		p.Countdown.Dead = 50
	}
}

// activateIceshroom 全场减速，可冰冻的僵尸额外冻结并受到伤害
func (d *DamageSystem) activateIceshroom() {
	rng := d.scene.RNG
	for _, z := range d.scene.AliveZombies() {
		chilled := z.Countdown.Slow > 0 || z.Countdown.Freeze > 0

		d.debuff.SetSlowed(z, IceshroomSlowCountdown)

		if !z.CanBeFreezed() {
			continue
		}
		switch {
		case z.IsInWater:
			z.Countdown.Freeze = 300
		case chilled:
			z.Countdown.Freeze = rng.Int(101) + 300
		default:
			z.Countdown.Freeze = rng.Int(201) + 400
		}
		d.Take(z, IceshroomDamage, types.DamageBypassesShield)
		d.animator.UpdateFPS(z)
	}
	d.scene.Spawn.Countdown.Pool = IceshroomPoolSuppress
}

// ActivateBlover 吹走所有飞行中的气球僵尸
func (d *DamageSystem) ActivateBlover() {
	for _, z := range d.scene.AliveZombies() {
		if z.Status == types.ZombieStatusBalloonFlying {
			z.IsBlown = true
		}
	}
}

// SetSmashed 植物被巨人砸扁
//
// 一次性爆炸植物与已出土的土豆地雷被砸时直接触发效果。
func (d *DamageSystem) SetSmashed(p *components.Plant) {
	if p.IsSquashAttacking() || p.IsDead || p.IsSmashed {
		return
	}

	explosive := p.Type == types.PlantCherryBomb || p.Type == types.PlantJalapeno ||
		p.Type == types.PlantDoomshroom || p.Type == types.PlantIceshroom
	armedMine := p.Type == types.PlantPotatoMine && p.Status != types.PlantStatusIdle

	if !p.IsSleeping && (explosive || armedMine) {
		d.ActivatePlant(p)
		return
	}

	if p.Type == types.PlantSquash && p.Status != types.PlantStatusIdle {
		return
	}

	p.IsSmashed = true
	p.Countdown.Dead = SmashedDeadCountdown
	for _, g := range d.scene.GridItemsAt(p.Row, p.Col) {
		if g.Type == types.GridItemLadder {
			d.factories.GridItems.Destroy(g)
			break
		}
	}
}

// RangeAttack 范围攻击（大喷菇、忧郁菇、地刺类）
//
// 对攻击框内的每个僵尸造成 20 点伤害；车辆类僵尸被地刺扎到时受到 1800 点伤害，
// 地刺被压坏（地刺王改为损失 50 点血量）。
func (d *DamageSystem) RangeAttack(p *components.Plant, flags types.DamageFlags) {
	box := p.AttackBox(false)
	targetFlags := activationFlags(p.Type)

	for _, z := range d.scene.ZombiesInRows(p.Row, 1) {
		if p.Type != types.PlantGloomshroom && z.Row != p.Row {
			continue
		}
		if !d.CanBeAttacked(z, targetFlags) {
			continue
		}
		if box.OverlapLen(z.HitBoxRect()) < 0 {
			continue
		}

		dmg := RangeAttackDamage
		if (z.Type == types.ZombieZomboni || z.Type == types.ZombieCatapult) && flags.Has(types.DamageSpike) {
			dmg = InstantKillDamage
			if p.Type == types.PlantSpikerock {
				if p.Status != types.PlantStatusSpikeAttack {
					p.Status = types.PlantStatusSpikeAttack
					p.Countdown.Status = 100
				}
				p.HP -= SpikerockWear
				if p.HP <= 0 {
					d.factories.Plants.Destroy(p)
				}
			} else {
				d.factories.Plants.Destroy(p)
			}
		}
		d.Take(z, dmg, flags)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
