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
	// puffLifetime 孢子的射程（帧）
	puffLifetime = 75

	// splashCap / fireSplashCap 溅射总伤害上限（基础伤害的倍数）
	splashCap     = 7
	fireSplashCap = 1
)

// ProjectileSystem 子弹系统
//
// 负责子弹的运动、命中检测、火炬树桩转换与溅射伤害。
type ProjectileSystem struct {
	scene     *scene.Scene
	factories *entities.Factories
	damage    *DamageSystem
	debuff    *DebuffSystem
}

// NewProjectileSystem 创建子弹系统
func NewProjectileSystem(s *scene.Scene, f *entities.Factories, damage *DamageSystem, debuff *DebuffSystem) *ProjectileSystem {
	return &ProjectileSystem{scene: s, factories: f, damage: damage, debuff: debuff}
}

// Update 推进所有子弹一帧
func (s *ProjectileSystem) Update() {
	for _, proj := range s.scene.Projectiles.Items() {
		if proj.IsDisappeared {
			continue
		}

		proj.TimeSinceCreated++
		if proj.Countdown > 0 {
			proj.Countdown--
		}

		row := proj.Row
		yBefore := utils.YByRowAndX(s.scene.Type, proj.Row, proj.X)

		if proj.Motion == types.MotionParabola {
			s.parabolaMotion(proj)
		} else {
			s.otherMotion(proj)
		}

		// 屋顶斜坡上子弹随地面高度变化
		diff := utils.YByRowAndX(s.scene.Type, row, proj.X) - yBefore
		if proj.Motion == types.MotionParabola {
			proj.Y += diff
			proj.DY1 -= diff
		}
		proj.ShadowY += diff
		proj.IntX = int(proj.X)
		proj.IntY = int(proj.DY1 + proj.Y)
	}
}

// inTorchwood 豌豆穿过火炬树桩时变为火焰豌豆（同一树桩只转换一次）
func (s *ProjectileSystem) inTorchwood(proj *components.Projectile) bool {
	if proj.Type != types.ProjectilePea && proj.Type != types.ProjectileSnowPea {
		return false
	}

	box := proj.AttackBox()
	for _, p := range s.scene.AlivePlants() {
		if p.Row != proj.Row || p.Type != types.PlantTorchwood || p.IsSmashed || proj.LastTorchwoodCol == p.Col {
			continue
		}
		if box.OverlapLen(p.AttackBox(false)) > 10 {
			proj.Type = types.ProjectileFirePea
			proj.LastTorchwoodCol = p.Col
			return true
		}
	}
	return false
}

// findZombieTarget 同行中与子弹重叠的最左侧僵尸
func (s *ProjectileSystem) findZombieTarget(proj *components.Projectile) *components.Zombie {
	if s.inTorchwood(proj) {
		return nil
	}

	box := proj.AttackBox()
	var target *components.Zombie
	for _, z := range s.scene.ZombiesInRows(proj.Row, 0) {
		if !s.damage.CanBeAttacked(z, proj.Flags) {
			continue
		}
		if z.Status == types.ZombieStatusSnorkelSwim && proj.DY1 <= 45 {
			continue
		}
		// 刚出膛的向前星星打不到矿工
		if proj.Type == types.ProjectileStar && proj.TimeSinceCreated < 25 && proj.DX >= 0 && z.Type == types.ZombieDigger {
			continue
		}
		if box.OverlapLen(z.HitBoxRect()) < 0 {
			continue
		}
		if target == nil || z.IntX < target.IntX {
			target = z
		}
	}
	return target
}

// findPlantTarget 篮球命中的植物
func (s *ProjectileSystem) findPlantTarget(proj *components.Projectile) *components.Plant {
	box := proj.AttackBox()
	for _, p := range s.scene.AlivePlants() {
		if p.Row != proj.Row {
			continue
		}
		switch p.Type {
		case types.PlantPuffshroom, types.PlantSunshroom, types.PlantPotatoMine,
			types.PlantSpikeweed, types.PlantLilyPad:
			continue
		}
		if box.OverlapLen(p.HitBox()) > 8 {
			return p
		}
	}
	return nil
}

// hasVehicleShield 火焰豌豆无法溅射穿透的目标
func hasVehicleShield(z *components.Zombie) bool {
	return z.Type == types.ZombieCatapult || z.Type == types.ZombieZomboni ||
		z.Accessory2 == types.Accessory2ScreenDoor || z.Accessory2 == types.Accessory2Ladder
}

func (s *ProjectileSystem) coveredBySplash(proj *components.Projectile, z *components.Zombie) bool {
	if proj.Type == types.ProjectileFirePea {
		if hasVehicleShield(z) || z.Row != proj.Row {
			return false
		}
	}
	if abs(z.Row-proj.Row) > 1 || !s.damage.CanBeAttacked(z, proj.Flags) {
		return false
	}
	return z.HitBoxRect().OverlapLen(proj.AttackBox()) >= 0
}

// splashAttack 溅射伤害：主目标受全额伤害，其余目标平分上限内的溅射伤害
func (s *ProjectileSystem) splashAttack(proj *components.Projectile, main *components.Zombie) {
	var targets []*components.Zombie
	n := 0
	for _, z := range s.scene.ZombiesInRows(proj.Row, 1) {
		if !s.coveredBySplash(proj, z) {
			continue
		}
		targets = append(targets, z)
		if z != main {
			n++
		}
	}

	dmg := proj.Damage()
	capTotal := splashCap * dmg
	if proj.Type == types.ProjectileFirePea {
		capTotal = fireSplashCap * dmg
	}
	splash := dmg / 3
	if n*splash > capTotal {
		splash = max(1, capTotal/n)
	}

	for _, z := range targets {
		flags := proj.FlagsWithZombie(z)
		if z == main {
			s.damage.Take(z, dmg, flags)
		} else {
			s.damage.Take(z, splash, flags)
		}
	}
}

// attackZombie 结算命中并销毁子弹
func (s *ProjectileSystem) attackZombie(proj *components.Projectile, z *components.Zombie) {
	fireOnShield := proj.Type == types.ProjectileFirePea && z != nil && hasVehicleShield(z)
	splashes := proj.Type.IsMelon() || proj.Type == types.ProjectileFirePea

	if fireOnShield || !splashes {
		if z != nil {
			s.damage.Take(z, proj.Damage(), proj.FlagsWithZombie(z))
		}
	} else {
		if proj.Type == types.ProjectileFirePea && z != nil {
			s.debuff.RemoveFreeze(z)
			s.debuff.RemoveSlow(z)
		}
		s.splashAttack(proj, z)
	}

	if proj.Type == types.ProjectileButter && z != nil {
		s.debuff.SetButter(z)
		s.damage.UnsetIsEating(z)
	}
	s.factories.Projectiles.Destroy(proj)
}

func (s *ProjectileSystem) parabolaAttack(proj *components.Projectile, z *components.Zombie) {
	if proj.Type == types.ProjectileCobCannon {
		s.damage.TakeInstantKill(proj.Row, int(proj.X+80), int(proj.Y+40), 115, 1, true, proj.Flags)
		s.attackZombie(proj, nil)
		return
	}
	s.attackZombie(proj, z)
}

// apexThreshold 抛物线子弹开始检测命中的高度
func (s *ProjectileSystem) apexThreshold(proj *components.Projectile) float64 {
	var top float64
	switch proj.Type {
	case types.ProjectileButter:
		top = -32
	case types.ProjectileBasketball:
		top = 60
	case types.ProjectileMelon, types.ProjectileWinterMelon:
		top = -35
	case types.ProjectileCabbage, types.ProjectileKernel:
		top = -30
	case types.ProjectileCobCannon:
		top = -60
	}
	if utils.IsWaterGrid(s.scene.Type, proj.Row) {
		top += 40
	}
	return top
}

// parabolaMotion 抛物线运动
//
// 玉米炮弹升到高空后切换到目标行与目标 x，再开始下落。
func (s *ProjectileSystem) parabolaMotion(proj *components.Projectile) {
	if proj.Type == types.ProjectileCobCannon && proj.DY1 < -700 {
		proj.DDY = 8
		proj.Row = proj.CannonRow
		proj.X = proj.CannonX
		col := max(0, utils.ColByX(int(proj.CannonX)))
		proj.Y = float64(utils.YByRowAndCol(s.scene.Type, proj.CannonRow, col))
		proj.ShadowY = proj.Y + entities.ProjectileShadowOffset
	}

	proj.DDY += proj.DDDY
	proj.X += proj.DX
	proj.Y += proj.DY2
	proj.DY1 += proj.DDY

	rising := proj.DDY < 0
	if rising && (proj.Type == types.ProjectileBasketball || proj.Type == types.ProjectileCobCannon) {
		return
	}
	if proj.TimeSinceCreated > 20 {
		if rising || proj.DY1 < s.apexThreshold(proj) {
			return
		}
	}

	if proj.Type == types.ProjectileBasketball {
		if p := s.findPlantTarget(proj); p != nil {
			s.hitPlant(proj, p)
			return
		}
	} else if z := s.findZombieTarget(proj); z != nil {
		s.parabolaAttack(proj, z)
		return
	}

	threshold := 80.0
	if proj.Type == types.ProjectileCobCannon {
		threshold = -40
	}
	if proj.DY1 > threshold {
		s.parabolaAttack(proj, nil)
	}
}

// hitPlant 篮球砸中植物；附近的叶子保护伞会挡下
func (s *ProjectileSystem) hitPlant(proj *components.Projectile, target *components.Plant) {
	for _, p := range s.scene.AlivePlants() {
		if p.Type != types.PlantUmbrellaLeaf || p.IsSmashed || p.Edible == types.EdibleInvisibleAndNotEdible {
			continue
		}
		if abs(p.Col-target.Col) > 1 || abs(p.Row-target.Row) > 1 {
			continue
		}
		switch p.Status {
		case types.PlantStatusUmbrellaLeafShrink:
			s.factories.Projectiles.Destroy(proj)
		case types.PlantStatusUmbrellaLeafBlock:
		default:
			s.damage.ActivatePlant(p)
		}
		return
	}

	target.HP -= proj.Damage()
	if target.HP <= 0 {
		s.factories.Plants.Destroy(target)
	}
	s.factories.Projectiles.Destroy(proj)
}

// starRow 星星按坐标重新计算所在行
func (s *ProjectileSystem) starRow(x, y int) int {
	return max(0, utils.RowByXY(s.scene.Type, max(40, x), y))
}

// otherMotion 直线类运动：直线、孢子、换行、向左、杨桃、香蒲
func (s *ProjectileSystem) otherMotion(proj *components.Projectile) {
	switch proj.Motion {
	case types.MotionLeftStraight:
		proj.X -= entities.PeaSpeed

	case types.MotionCattail:
		s.cattailMotion(proj)

	case types.MotionStarfruit:
		proj.Y += proj.DY2
		proj.X += proj.DX
		proj.ShadowY += proj.DY2
		if proj.DY2 != 0 {
			proj.Row = s.starRow(int(proj.X), int(proj.Y))
		}

	default:
		proj.X += entities.PeaSpeed
		if proj.Motion == types.MotionSwitchWay {
			proj.Y += proj.DY2
			proj.DY2 *= 0.97
			proj.ShadowY += proj.DY2
		}
	}

	s.otherAttack(proj)
	if !proj.IsDisappeared && s.scene.Type.IsRoof() {
		s.roofDisappear(proj)
	}
}

// cattailMotion 香蒲尖刺追踪目标；目标消失后沿原方向直线飞行
func (s *ProjectileSystem) cattailMotion(proj *components.Projectile) {
	target := s.scene.Zombie(proj.TargetID)
	if target == nil || !s.damage.CanBeAttacked(target, proj.Flags) {
		proj.TargetID = -1
		proj.X += entities.PeaSpeed
		return
	}

	r := target.HitBoxRect()
	dx := float64(r.X+r.Width/2) - proj.X
	dy := float64(r.Y+r.Height/2) - proj.Y
	d := math.Hypot(dx, dy)
	if d == 0 {
		return
	}
	vx := dx / d * proj.DX
	vy := dy / d * proj.DX
	proj.X += vx
	proj.Y += vy
	proj.ShadowY += vy
	proj.Row = target.Row
}

func (s *ProjectileSystem) otherAttack(proj *components.Projectile) {
	if (proj.Motion == types.MotionPuff && proj.TimeSinceCreated >= puffLifetime) ||
		proj.X > utils.BoardWidth || float64(proj.BoxWidth)+proj.X < 0 {
		s.factories.Projectiles.Destroy(proj)
		return
	}

	if proj.Type == types.ProjectileStar && (proj.Y > utils.BoardHeight || proj.Y < 40) {
		s.factories.Projectiles.Destroy(proj)
		return
	}

	if (proj.Type != types.ProjectilePea && proj.Type != types.ProjectileStar) || proj.ShadowY-proj.Y <= 90 {
		if z := s.findZombieTarget(proj); z != nil {
			s.attackZombie(proj, z)
		}
	}
}

// roofDisappear 屋顶上子弹撞到斜坡后消失
func (s *ProjectileSystem) roofDisappear(proj *components.Projectile) {
	diff := proj.ShadowY - proj.Y
	switch proj.Type {
	case types.ProjectilePea, types.ProjectileSnowPea, types.ProjectileFirePea,
		types.ProjectileCactus, types.ProjectileCobCannon:
		if diff < 28 {
			s.factories.Projectiles.Destroy(proj)
		}
	case types.ProjectilePuff:
		if diff < 0 {
			s.factories.Projectiles.Destroy(proj)
		}
	case types.ProjectileStar:
		if diff < 23 {
			s.factories.Projectiles.Destroy(proj)
		}
	}
}
