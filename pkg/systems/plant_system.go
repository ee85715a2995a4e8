package systems

import (
	"math"

	"github.com/decker502/pvzemu/pkg/components"
	"github.com/decker502/pvzemu/pkg/entities"
	"github.com/decker502/pvzemu/pkg/scene"
	"github.com/decker502/pvzemu/pkg/types"
	"github.com/decker502/pvzemu/pkg/utils"
)

// 产阳光植物的生产间隔 = SunGenerateJitter 内的随机数 + SunGenerateBase
const (
	SunGenerateBase   = 2350
	SunGenerateJitter = 151
)

// plantBehavior 单一植物类型的每帧状态机
type plantBehavior func(p *components.Plant)

// PlantSystem 植物系统
//
// 每帧对每株存活植物依次执行：倒计时与发射、类型状态机、索敌/产阳光、
// 一次性效果倒计时、啃食闪烁、血量检查、动画推进。
type PlantSystem struct {
	scene     *scene.Scene
	factories *entities.Factories
	damage    *DamageSystem
	animator  *ZombieAnimator

	behaviors map[types.PlantType]plantBehavior
}

// NewPlantSystem 创建植物系统并注册各类型的状态机
func NewPlantSystem(s *scene.Scene, f *entities.Factories, damage *DamageSystem, animator *ZombieAnimator) *PlantSystem {
	ps := &PlantSystem{
		scene:     s,
		factories: f,
		damage:    damage,
		animator:  animator,
	}

	ps.behaviors = map[types.PlantType]plantBehavior{
		types.PlantCobCannon:     ps.updateCobCannon,
		types.PlantBlover:        ps.updateBlover,
		types.PlantGraveBuster:   ps.updateGraveBuster,
		types.PlantSpikeweed:     ps.updateSpike,
		types.PlantSpikerock:     ps.updateSpike,
		types.PlantSquash:        ps.updateSquash,
		types.PlantChomper:       ps.updateChomper,
		types.PlantPotatoMine:    ps.updatePotatoMine,
		types.PlantTangleKelp:    ps.updateTangleKelp,
		types.PlantDoomshroom:    ps.updateDoomshroom,
		types.PlantIceshroom:     ps.updateIceshroom,
		types.PlantSunshroom:     ps.updateSunshroom,
		types.PlantMagnetshroom:  ps.updateMagnetshroom,
		types.PlantScaredyshroom: ps.updateScaredyshroom,
		types.PlantWallnut:       ps.updateShield,
		types.PlantTallnut:       ps.updateShield,
		types.PlantPumpkin:       ps.updateShield,
		types.PlantGarlic:        ps.updateShield,
		types.PlantUmbrellaLeaf:  ps.updateUmbrellaLeaf,
		types.PlantCactus:        ps.updateCactus,
		types.PlantImitater:      ps.updateImitater,
	}
	return ps
}

// Update 推进所有存活植物一帧
func (s *PlantSystem) Update() {
	for _, p := range s.scene.AlivePlants() {
		if p.IsDead {
			continue
		}
		s.updatePlant(p)
	}
}

func (s *PlantSystem) updatePlant(p *components.Plant) {
	s.updateCountdownAndStatus(p)
	if p.IsDead {
		return
	}

	if behave, ok := s.behaviors[p.Type]; ok {
		behave(p)
		if p.IsDead {
			return
		}
	}

	if p.CanAttack || p.Type.IsSunProducer() {
		s.updateAttack(p)
	}

	if p.Countdown.Effect > 0 {
		p.Countdown.Effect--
		if p.Countdown.Effect == 0 {
			s.damage.ActivatePlant(p)
		}
	}

	if p.Countdown.Eaten > 0 {
		p.Countdown.Eaten--
	}

	if p.HP < 0 {
		s.factories.Plants.Destroy(p)
	}

	p.Reanim.Advance()
}

// updateCountdownAndStatus 死亡倒计时、咖啡豆唤醒、发射与状态倒计时
//
// 死亡倒计时只在设置过（大于 0）时生效；毁灭菇、寒冰菇进入工作状态后由效果倒计时结束自身。
func (s *PlantSystem) updateCountdownAndStatus(p *components.Plant) {
	if (p.Status == types.PlantStatusWork || p.IsSmashed) && p.Countdown.Dead > 0 {
		p.Countdown.Dead--
		if p.Countdown.Dead < 1 {
			s.factories.Plants.Destroy(p)
			return
		}
	}

	if p.Countdown.Awake > 0 {
		p.Countdown.Awake--
		if p.Countdown.Awake == 0 {
			p.SetSleep(false)
		}
	}

	if p.IsSleeping || p.IsSmashed || p.Edible != types.EdibleVisibleAndEdible {
		return
	}

	s.updateLaunchCountdown(p)

	if p.Countdown.Status > 0 {
		p.Countdown.Status--
	}
}

// updateLaunchCountdown 发射延迟到点时开火；连发植物在中途的固定帧各开一次
func (s *PlantSystem) updateLaunchCountdown(p *components.Plant) {
	if p.Countdown.Launch == 0 {
		return
	}
	p.Countdown.Launch--
	cd := p.Countdown.Launch

	switch p.Type {
	case types.PlantThreepeater:
		if cd == 1 {
			s.launch(p, nil, p.Row, false)
			if p.Row > 0 {
				s.launch(p, nil, p.Row-1, false)
			}
			if p.Row < s.scene.Rows-1 {
				s.launch(p, nil, p.Row+1, false)
			}
		}

	case types.PlantSplitPea:
		if cd == 1 {
			if p.SplitPeaFront {
				s.launch(p, nil, p.Row, false)
				p.SplitPeaFront = false
			}
			if p.SplitPeaBack {
				s.launch(p, nil, p.Row, true)
				p.SplitPeaBack = false
			}
		}

	case types.PlantRepeater:
		if cd == 25 || cd == 1 {
			s.launch(p, s.findTarget(p, p.Row, false), p.Row, false)
		}

	case types.PlantGatlingPea:
		if cd == 75 || cd == 50 || cd == 25 || cd == 1 {
			s.launch(p, s.findTarget(p, p.Row, false), p.Row, false)
		}

	case types.PlantCobCannon:
		if cd == 1 {
			s.launch(p, nil, p.Row, false)
		}

	default:
		if cd == 1 {
			s.launch(p, s.findTarget(p, p.Row, false), p.Row, false)
		}
	}
}

// updateAttack 产阳光或索敌；索敌成功后进入发射延迟
func (s *PlantSystem) updateAttack(p *components.Plant) {
	if p.IsSleeping {
		return
	}

	if p.Countdown.Generate > 0 {
		p.Countdown.Generate--
	}
	if p.Countdown.Generate > 0 {
		return
	}

	rng := s.scene.RNG
	switch p.Type {
	case types.PlantSunflower, types.PlantTwinSunflower:
		if s.scene.Spawn.Countdown.Endgame <= 0 {
			amount := 25
			if p.Type == types.PlantTwinSunflower {
				amount = 50
			}
			s.scene.Sun.AddSun(amount)
		}
		p.Countdown.Generate = rng.Int(SunGenerateJitter) + SunGenerateBase
		return

	case types.PlantSunshroom:
		if p.Status == types.PlantStatusSunshroomSmall {
			s.scene.Sun.AddSun(15)
		} else {
			s.scene.Sun.AddSun(25)
		}
		p.Countdown.Generate = rng.Int(SunGenerateJitter) + SunGenerateBase
		return
	}

	p.Countdown.Generate = max(1, p.MaxBootDelay-rng.Int(15))

	switch p.Type {
	case types.PlantStarfruit:
		if s.starfruitHasTarget(p) {
			p.SetReanim(types.PlantAnimShoot, types.ReanimOnce, 28)
			p.Countdown.Launch = 40
		}
		return

	case types.PlantThreepeater:
		for row := p.Row - 1; row <= p.Row+1; row++ {
			if row < 0 || row >= s.scene.Rows {
				continue
			}
			if s.findTarget(p, row, false) != nil {
				p.SetReanim(types.PlantAnimShooting, types.ReanimOnce, 35)
				p.Countdown.Launch = 35
				return
			}
		}
		p.ThreepeaterTimeSinceFirstShot = 0
		return

	case types.PlantSplitPea:
		if s.findTarget(p, p.Row, true) != nil {
			p.SplitPeaBack = true
			p.SetReanim(types.PlantAnimShooting, types.ReanimOnce, 35)
			p.Countdown.Launch = 26
		}
	}

	if s.findTarget(p, p.Row, false) == nil {
		return
	}
	s.setLaunchCountdown(p)
}

// setLaunchCountdown 按类型设置发射延迟与射击动画
func (s *PlantSystem) setLaunchCountdown(p *components.Plant) {
	switch p.Type {
	case types.PlantPeaShooter, types.PlantSnowPea:
		p.SetReanim(types.PlantAnimShooting, types.ReanimOnce, 35)
		p.Countdown.Launch = 35
	case types.PlantRepeater:
		p.SetReanim(types.PlantAnimShooting, types.ReanimOnce, 35)
		p.Countdown.Launch = 26
	case types.PlantSplitPea:
		p.SplitPeaFront = true
		p.SetReanim(types.PlantAnimShooting, types.ReanimOnce, 35)
		p.Countdown.Launch = 26
	case types.PlantGatlingPea:
		p.SetReanim(types.PlantAnimShooting, types.ReanimOnce, 38)
		p.Countdown.Launch = 100
	case types.PlantCactus:
		if p.Status == types.PlantStatusCactusTallIdle {
			p.SetReanim(types.PlantAnimShootingHigh, types.ReanimOnce, 35)
			p.Countdown.Launch = 23
		} else {
			p.SetReanim(types.PlantAnimShooting, types.ReanimOnce, 35)
			p.Countdown.Launch = 35
		}
	case types.PlantGloomshroom:
		p.SetReanim(types.PlantAnimShooting, types.ReanimOnce, 14)
		p.Countdown.Launch = 200
	case types.PlantCattail:
		p.SetReanim(types.PlantAnimShooting, types.ReanimOnce, 30)
		p.Countdown.Launch = 50
	case types.PlantFumeshroom:
		p.SetReanim(types.PlantAnimShooting, types.ReanimOnce, 15)
		p.Countdown.Launch = 50
	case types.PlantPuffshroom, types.PlantSeashroom:
		p.SetReanim(types.PlantAnimShooting, types.ReanimOnce, 15)
		p.Countdown.Launch = 29
	case types.PlantScaredyshroom:
		p.SetReanim(types.PlantAnimShooting, types.ReanimOnce, 15)
		p.Countdown.Launch = 25
	case types.PlantCabbagepult:
		p.SetReanim(types.PlantAnimShooting, types.ReanimOnce, 28)
		p.Countdown.Launch = 32
	case types.PlantMelonpult, types.PlantWinterMelon:
		p.SetReanim(types.PlantAnimShooting, types.ReanimOnce, 28)
		p.Countdown.Launch = 36
	case types.PlantKernelpult:
		if s.scene.RNG.Int(4) == 0 {
			p.Status = types.PlantStatusKernelpultLaunchButter
		} else {
			p.Status = types.PlantStatusIdle
		}
		p.SetReanim(types.PlantAnimShooting, types.ReanimOnce, 28)
		p.Countdown.Launch = 30
	default:
		p.Countdown.Launch = 29
	}
}

// targetFlags 射手索敌时可选择的目标类别
func targetFlags(pt types.PlantType) types.AttackFlags {
	if pt == types.PlantCattail || pt == types.PlantCactus {
		return types.AttackGround | types.AttackFlyingBalloon
	}
	return types.AttackGround
}

// findTarget 在攻击框内寻找目标
//
// 普通射手选择最靠左（最接近房子）的僵尸；香蒲全场索敌，按距离加权并优先气球。
//
// 参数:
//   - p: 植物
//   - row: 索敌的行（三线射手分别检查三行）
//   - alt: 使用备用攻击框（裂荚射手背面）
//
// 返回:
//   - *components.Zombie: 目标，没有时返回 nil
func (s *PlantSystem) findTarget(p *components.Plant, row int, alt bool) *components.Zombie {
	flags := targetFlags(p.Type)
	box := p.AttackBox(alt)

	window := 0
	switch p.Type {
	case types.PlantGloomshroom:
		window = 1
	case types.PlantCattail:
		window = s.scene.Rows
	}

	var best *components.Zombie
	bestWeight := math.Inf(-1)
	for _, z := range s.scene.ZombiesInRows(row, window) {
		if p.Type != types.PlantCattail && p.Type != types.PlantGloomshroom && z.Row != row {
			continue
		}
		if !s.damage.CanBeAttacked(z, flags) {
			continue
		}
		if box.OverlapLen(z.HitBoxRect()) < 0 {
			continue
		}

		weight := -z.X
		if p.Type == types.PlantCattail {
			dx := z.X - float64(p.X)
			dy := float64((z.Row - p.Row) * 100)
			weight = -math.Hypot(dx, dy)
			if z.IsFlyingOrFalling() {
				weight += 10000
			}
		}

		if best == nil || weight > bestWeight {
			best = z
			bestWeight = weight
		}
	}
	return best
}

// peaOffset 按当前动画帧插值出豌豆的发射偏移
func (s *PlantSystem) peaOffset(p *components.Plant) (int, int) {
	fs := p.Reanim.FrameStatus()
	c, ok := s.scene.Tables.PeaOffset(p.Type, fs.Frame)
	if !ok {
		return 0, 0
	}
	n, ok := s.scene.Tables.PeaOffset(p.Type, fs.NextFrame)
	if !ok {
		return 0, 0
	}
	x := int((n[0]-c[0])*fs.Fraction + c[0])
	y := int((n[1]-c[1])*fs.Fraction + c[1])
	return x, y
}

// projectileFor 植物对应的子弹类型
func projectileFor(p *components.Plant, alt bool) types.ProjectileType {
	switch p.Type {
	case types.PlantPeaShooter, types.PlantRepeater, types.PlantThreepeater,
		types.PlantSplitPea, types.PlantGatlingPea:
		return types.ProjectilePea
	case types.PlantSnowPea:
		return types.ProjectileSnowPea
	case types.PlantCabbagepult:
		return types.ProjectileCabbage
	case types.PlantKernelpult:
		if alt || p.Status == types.PlantStatusKernelpultLaunchButter {
			return types.ProjectileButter
		}
		return types.ProjectileKernel
	case types.PlantMelonpult:
		return types.ProjectileMelon
	case types.PlantWinterMelon:
		return types.ProjectileWinterMelon
	case types.PlantPuffshroom, types.PlantScaredyshroom, types.PlantSeashroom:
		return types.ProjectilePuff
	case types.PlantCactus, types.PlantCattail:
		return types.ProjectileCactus
	case types.PlantCobCannon:
		return types.ProjectileCobCannon
	}
	return types.ProjectileNone
}

// launchOrigin 子弹发射点
func (s *PlantSystem) launchOrigin(p *components.Plant, pt types.ProjectileType, alt bool) (int, int) {
	switch p.Type {
	case types.PlantPuffshroom:
		return p.X + 40, p.Y + 40
	case types.PlantSeashroom:
		return p.X + 45, p.Y + 63
	case types.PlantCabbagepult:
		return p.X + 5, p.Y - 12
	case types.PlantMelonpult, types.PlantWinterMelon:
		return p.X + 25, p.Y - 46
	case types.PlantCattail:
		return p.X + 20, p.Y - 3
	case types.PlantKernelpult:
		if pt == types.ProjectileButter {
			return p.X + 12, p.Y - 56
		}
		return p.X + 19, p.Y - 37
	case types.PlantPeaShooter, types.PlantSnowPea, types.PlantRepeater:
		ox, oy := s.peaOffset(p)
		return p.X + 24 + ox, p.Y - 33 + oy
	case types.PlantGatlingPea:
		ox, oy := s.peaOffset(p)
		return p.X + 34 + ox, p.Y - 33 + oy
	case types.PlantSplitPea:
		ox, oy := s.peaOffset(p)
		if alt {
			return p.X - 64 + ox, p.Y - 33 + oy
		}
		return p.X + 24 + ox, p.Y - 33 + oy
	case types.PlantThreepeater:
		return p.X + 45, p.Y + 10
	case types.PlantScaredyshroom:
		return p.X + 29, p.Y + 21
	case types.PlantCactus:
		if p.Status == types.PlantStatusCactusTallIdle {
			return p.X + 93, p.Y - 50
		}
		return p.X + 70, p.Y + 23
	case types.PlantCobCannon:
		return p.X - 44, p.Y - 184
	}
	return p.X + 10, p.Y + 5
}

// onFlowerPot 植物是否种在有效的花盆上（发射点上移 5 像素）
func (s *PlantSystem) onFlowerPot(p *components.Plant) bool {
	cell := s.scene.Cell(p.Row, p.Col)
	if cell == nil {
		return false
	}
	pot := s.scene.Plant(cell.Base)
	return pot != nil && pot.Type == types.PlantFlowerPot && !pot.IsSmashed &&
		pot.Edible != types.EdibleInvisibleAndNotEdible
}

// launch 发射子弹或执行范围攻击
//
// 参数:
//   - p: 植物
//   - target: 投手的瞄准目标，可为 nil
//   - row: 子弹所在行
//   - alt: 备用攻击（裂荚射手背面、玉米投手黄油）
func (s *PlantSystem) launch(p *components.Plant, target *components.Zombie, row int, alt bool) {
	switch p.Type {
	case types.PlantFumeshroom, types.PlantGloomshroom:
		s.damage.RangeAttack(p, types.DamageHitsShieldAndBody)
		return
	case types.PlantStarfruit:
		s.starfruitAttack(p)
		return
	}

	pt := projectileFor(p, alt)
	if pt == types.ProjectileNone {
		return
	}

	x, y := s.launchOrigin(p, pt, alt)
	if s.onFlowerPot(p) {
		y -= 5
	}

	proj := s.factories.Projectiles.Create(pt, row, float64(x), float64(y))
	proj.Flags = p.AttackFlags(alt)
	if p.Type == types.PlantCactus {
		proj.Flags = p.AttackFlags(p.Status != types.PlantStatusCactusTallIdle)
	}

	switch p.Type {
	case types.PlantCabbagepult, types.PlantKernelpult, types.PlantMelonpult, types.PlantWinterMelon:
		s.aimLob(proj, target)

	case types.PlantThreepeater:
		switch {
		case row > p.Row:
			proj.Motion = types.MotionSwitchWay
			proj.DY2 = 3
			proj.ShadowY -= 80
		case row < p.Row:
			proj.Motion = types.MotionSwitchWay
			proj.DY2 = -3
			proj.ShadowY += 80
		}

	case types.PlantPuffshroom, types.PlantSeashroom, types.PlantScaredyshroom:
		proj.Motion = types.MotionPuff

	case types.PlantCattail:
		proj.DX = 2
		proj.Motion = types.MotionCattail
		if target != nil {
			proj.TargetID = target.ID
		}

	case types.PlantCobCannon:
		proj.DX = 0.001
		proj.Motion = types.MotionParabola
		proj.DDY = -8
		proj.DDDY = 0
		proj.CannonX = float64(p.CannonX)
		proj.CannonRow = utils.RowByXY(s.scene.Type, p.CannonX, p.CannonY)
		p.Status = types.PlantStatusCobCannonUnarmedIdle
		p.Countdown.Status = CobCannonRechargeCountdown
		p.SetReanim(types.PlantAnimUnarmedIdle, types.ReanimRepeat, 12)

	case types.PlantSplitPea:
		if alt {
			proj.Motion = types.MotionLeftStraight
		}
	}
}

// aimLob 计算投手子弹的抛物线参数
//
// 有目标时瞄准 50 帧后的预测位置；无目标时落在 x=700 处。
func (s *PlantSystem) aimLob(proj *components.Projectile, target *components.Zombie) {
	var distX, distY float64
	if target == nil {
		distX = 700 - proj.X
	} else {
		zr := target.HitBoxRect()
		distX = s.animator.PredictAfter(target, 50) - proj.X - 30
		distY = float64(zr.Y) - proj.Y

		switch {
		case target.Status == types.ZombieStatusDolphinRide:
			distX -= 60
		case target.Type == types.ZombiePogo && target.HasItemOrWalkLeft:
			distX -= 60
		case target.Status == types.ZombieStatusSnorkelSwim:
			distX -= 40
		}
		proj.TargetID = target.ID
	}

	proj.Motion = types.MotionParabola
	proj.DX = max(40, distX) / 120
	proj.DY2 = 0
	proj.DDY = distY/120 - 7
	proj.DDDY = 0.115
}
