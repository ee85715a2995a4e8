package entities

import (
	"github.com/decker502/pvzemu/pkg/components"
	"github.com/decker502/pvzemu/pkg/scene"
	"github.com/decker502/pvzemu/pkg/types"
	"github.com/decker502/pvzemu/pkg/utils"
)

const (
	// SunPlantFirstGenerateMin 产阳光植物首次产出的最小等待帧数
	SunPlantFirstGenerateMin = 300

	// SunPlantFirstGenerateJitter 首次产出等待的随机抖动范围
	SunPlantFirstGenerateJitter = 951

	// SunshroomGrowCountdown 阳光菇从小蘑菇长大所需帧数
	SunshroomGrowCountdown = 12000

	// CobCannonChargeCountdown 玉米炮种下后的装填时间
	CobCannonChargeCountdown = 500

	// BloverEffectCountdown 三叶草种下到吹风的延迟
	BloverEffectCountdown = 50

	// ExplosiveFuseCountdown 樱桃炸弹、火爆辣椒种下到爆炸的引信
	ExplosiveFuseCountdown = 100

	// CoffeeBeanEffectCountdown 咖啡豆种下到唤醒的延迟
	CoffeeBeanEffectCountdown = 100

	// ImitaterMorphCountdown 模仿者变身前的等待
	ImitaterMorphCountdown = 30

	// PotatoMineArmCountdown 土豆地雷出土所需帧数
	PotatoMineArmCountdown = 1500

	// UpgradeCostStep 每多一株同类升级植物增加的花费
	UpgradeCostStep = 50

	// nutRepairThreshold 坚果类可以被原地重新种植（修补）的血量阈值（2/3 最大血量）
	wallnutRepairHP = 2666
	tallnutRepairHP = 5333
	pumpkinRepairHP = 2666
)

// icePathColumnX 每列被冰道覆盖的 x 阈值（冰道尖端在阈值左侧即视为覆盖）
var icePathColumnX = [utils.GridColumns]int{108, 188, 268, 348, 428, 508, 588, 668, 751}

// PlantFactory 植物工厂：放置校验、创建与销毁
type PlantFactory struct {
	scene *scene.Scene
}

// NewPlantFactory 创建植物工厂
func NewPlantFactory(s *scene.Scene) *PlantFactory {
	return &PlantFactory{scene: s}
}

// IsPosValid 行列是否在当前场景的格子范围内
func (f *PlantFactory) IsPosValid(row, col int) bool {
	return f.scene.ValidCell(row, col)
}

// IsCoveredByIcePath 格子是否被冰道覆盖
func (f *PlantFactory) IsCoveredByIcePath(row, col int) bool {
	if row < 0 || row >= len(f.scene.IcePath.Countdown) || col < 0 || col >= utils.GridColumns {
		return false
	}
	if f.scene.IcePath.Countdown[row] <= 0 {
		return false
	}
	return f.scene.IcePath.X[row] < icePathColumnX[col]
}

// Cost 种植指定类型需要的阳光
// 升级植物每存在一株同类，花费增加 50
func (f *PlantFactory) Cost(pt types.PlantType) int {
	data := f.scene.Tables.Plant(pt)
	if data == nil {
		return 0
	}
	cost := data.Cost
	if pt >= types.PlantGatlingPea {
		for _, p := range f.scene.AlivePlants() {
			if p.Type == pt {
				cost += UpgradeCostStep
			}
		}
	}
	return cost
}

// cellView 格子槽位解析后的植物
type cellView struct {
	base, content, pumpkin, coffee *components.Plant
}

func (f *PlantFactory) view(row, col int) cellView {
	c := f.scene.Cell(row, col)
	if c == nil {
		return cellView{}
	}
	return cellView{
		base:    f.scene.Plant(c.Base),
		content: f.scene.Plant(c.Content),
		pumpkin: f.scene.Plant(c.Pumpkin),
		coffee:  f.scene.Plant(c.CoffeeBean),
	}
}

// CanPlant 判断能否在指定格子种植
//
// 参数:
//   - pt: 植物类型（模仿者传 PlantImitater）
//   - row, col: 目标格子
//   - imitater: 模仿者的目标类型，非模仿者传 PlantNone
//
// 返回:
//   - bool: 校验通过返回 true；不扣除阳光，也不修改任何状态
func (f *PlantFactory) CanPlant(pt types.PlantType, row, col int, imitater types.PlantType) bool {
	if !f.IsPosValid(row, col) || f.IsCoveredByIcePath(row, col) {
		return false
	}

	hasGrave := f.scene.HasGridItem(types.GridItemGrave, row, col)
	if f.scene.HasGridItem(types.GridItemCrater, row, col) {
		return false
	}

	target := pt
	if pt == types.PlantImitater {
		target = imitater
	}
	if !target.IsValid() || target == types.PlantImitater {
		return false
	}
	if f.Cost(target) > f.scene.Sun.Sun {
		return false
	}

	cell := f.view(row, col)
	if target == types.PlantGraveBuster {
		return cell.content == nil && hasGrave
	}
	if hasGrave {
		return false
	}

	isRoof := f.scene.Type.IsRoof()
	isWater := f.scene.IsWaterGrid(row, col)
	hasPot := cell.base != nil && cell.base.Type == types.PlantFlowerPot && cell.base.Edible != types.EdibleInvisibleAndEdible
	hasLily := cell.base != nil && cell.base.Type == types.PlantLilyPad && cell.base.Edible != types.EdibleInvisibleAndEdible

	// 第一轮：特殊放置规则
	switch target {
	case types.PlantLilyPad, types.PlantTangleKelp, types.PlantSeashroom:
		return isWater && cell.base == nil && cell.content == nil
	case types.PlantSpikeweed:
		return !isWater && !isRoof && cell.base == nil && cell.content == nil
	case types.PlantSpikerock:
		return !isWater && !isRoof && cell.base == nil && f.canUpgrade(cell, row, col, target)
	case types.PlantFlowerPot:
		return !isWater && cell.pumpkin == nil && cell.content == nil && cell.base == nil
	case types.PlantCoffeeBean:
		c := cell.content
		return cell.coffee == nil && c != nil && c.IsSleeping && c.Countdown.Awake == 0 &&
			c.Edible != types.EdibleInvisibleAndEdible
	case types.PlantPumpkin:
		envOK := (!isRoof || hasPot) &&
			(!isWater || hasLily || (cell.content != nil && cell.content.Type == types.PlantCattail))
		contentOK := cell.content == nil || cell.content.Type != types.PlantCobCannon
		repairOK := cell.pumpkin == nil || (cell.pumpkin.HP < pumpkinRepairHP &&
			cell.pumpkin.Edible != types.EdibleInvisibleAndEdible)
		return envOK && contentOK && repairOK
	default:
		if (isRoof && !hasPot) || (isWater && !hasLily) {
			return false
		}
	}

	// 第二轮：占用与坚果修补
	switch {
	case target == types.PlantWallnut:
		return cell.content == nil || isRepairable(cell.content, types.PlantWallnut, wallnutRepairHP)
	case target == types.PlantTallnut:
		return cell.content == nil || isRepairable(cell.content, types.PlantTallnut, tallnutRepairHP)
	case target.IsUpgrade():
		return f.canUpgrade(cell, row, col, target)
	case cell.content != nil:
		return false
	}

	return target != types.PlantPotatoMine || !isWater
}

func isRepairable(p *components.Plant, pt types.PlantType, threshold int) bool {
	return p.Type == pt && p.HP < threshold && p.Edible != types.EdibleInvisibleAndEdible
}

// upgradeBase 升级植物需要的基础植物
var upgradeBase = map[types.PlantType]types.PlantType{
	types.PlantGatlingPea:    types.PlantRepeater,
	types.PlantTwinSunflower: types.PlantSunflower,
	types.PlantGloomshroom:   types.PlantFumeshroom,
	types.PlantWinterMelon:   types.PlantMelonpult,
	types.PlantGoldMagnet:    types.PlantMagnetshroom,
	types.PlantSpikerock:     types.PlantSpikeweed,
}

func (f *PlantFactory) canUpgrade(cell cellView, row, col int, pt types.PlantType) bool {
	if pt == types.PlantCattail {
		return cell.base != nil && cell.base.Type == types.PlantLilyPad && cell.content == nil
	}

	c := cell.content
	if c == nil || c.Edible == types.EdibleInvisibleAndEdible {
		return false
	}

	if pt == types.PlantCobCannon {
		if c.Type != types.PlantKernelpult || c.Col >= utils.GridColumns-1 {
			return false
		}
		right := f.view(row, col+1).content
		return right != nil && right.Type == types.PlantKernelpult
	}

	base, ok := upgradeBase[pt]
	return ok && c.Type == base
}

// Create 创建植物并写入格子槽位
//
// 调用方负责先用 CanPlant 校验并扣除阳光。升级植物会先销毁被替换的基础植物
// （玉米炮销毁本格与右侧一格的玉米投手）。
//
// 参数:
//   - pt: 植物类型
//   - row, col: 目标格子
//   - imitater: 模仿者的目标类型（仅 pt 为模仿者时有效）
//
// 返回:
//   - *components.Plant: 创建的植物；类型无效时返回 nil
func (f *PlantFactory) Create(pt types.PlantType, row, col int, imitater types.PlantType) *components.Plant {
	data := f.scene.Tables.Plant(pt)
	if data == nil || !f.IsPosValid(row, col) {
		return nil
	}

	actual := pt
	if pt == types.PlantImitater {
		actual = imitater
	}

	if actual.IsUpgrade() {
		f.replaceUpgradeBase(actual, row, col)
	}

	x := col*utils.CellWidth + 40
	y := utils.YByRowAndCol(f.scene.Type, row, col)
	p := components.NewPlant(data, pt, row, col, x, y)
	p.SetReanimFrame(types.PlantAnimIdle)

	f.initStatus(p, imitater)
	f.scene.Plants.Add(p)
	f.occupy(p, actual)
	return p
}

// replaceUpgradeBase 销毁升级植物所替换的基础植物
func (f *PlantFactory) replaceUpgradeBase(pt types.PlantType, row, col int) {
	if c := f.view(row, col).content; c != nil {
		f.Destroy(c)
	}
	if pt == types.PlantCobCannon && col+1 < utils.GridColumns {
		if c := f.view(row, col+1).content; c != nil {
			f.Destroy(c)
		}
	}
}

// initStatus 按类型设置初始状态与倒计时
func (f *PlantFactory) initStatus(p *components.Plant, imitater types.PlantType) {
	rng := f.scene.RNG

	if p.Type.IsSunProducer() {
		p.Countdown.Generate = rng.Int(SunPlantFirstGenerateJitter) + SunPlantFirstGenerateMin
		if p.Type == types.PlantSunshroom {
			p.Status = types.PlantStatusSunshroomSmall
			p.Countdown.Status = SunshroomGrowCountdown
		}
	}

	if p.Type.IsNocturnal() && !f.scene.Type.IsNight() {
		p.SetSleep(true)
	}

	switch p.Type {
	case types.PlantBlover:
		p.Countdown.Effect = BloverEffectCountdown
		p.SetReanim(types.PlantAnimIdle, types.ReanimOnce, 10)
	case types.PlantCobCannon:
		p.Status = types.PlantStatusCobCannonUnarmedIdle
		p.Countdown.Status = CobCannonChargeCountdown
		p.SetReanimFrame(types.PlantAnimUnarmedIdle)
	case types.PlantGraveBuster:
		p.Status = types.PlantStatusGraveBusterLand
		p.SetReanim(types.PlantAnimLand, types.ReanimOnce, 12)
	case types.PlantChomper, types.PlantScaredyshroom:
		p.Status = types.PlantStatusWait
	case types.PlantCactus:
		p.Status = types.PlantStatusCactusShortIdle
	case types.PlantCherryBomb, types.PlantJalapeno:
		p.Countdown.Effect = ExplosiveFuseCountdown
	case types.PlantCoffeeBean:
		p.Countdown.Effect = CoffeeBeanEffectCountdown
	case types.PlantPotatoMine:
		p.Countdown.Status = PotatoMineArmCountdown
	case types.PlantImitater:
		p.ImitaterTarget = imitater
		p.Countdown.Status = ImitaterMorphCountdown
	}

	if p.IsShieldPlant() {
		p.Shield = components.ShieldStageForHP(p.HP, p.MaxHP)
	}
}

// occupy 按类型（模仿者按目标类型）写入格子槽位
func (f *PlantFactory) occupy(p *components.Plant, slotType types.PlantType) {
	cell := f.scene.Cell(p.Row, p.Col)
	if cell == nil {
		return
	}

	switch slotType {
	case types.PlantPumpkin:
		cell.Pumpkin = p.ID
	case types.PlantCoffeeBean:
		cell.CoffeeBean = p.ID
	case types.PlantFlowerPot, types.PlantLilyPad:
		cell.Base = p.ID
	case types.PlantCobCannon:
		cell.Content = p.ID
		if right := f.scene.Cell(p.Row, p.Col+1); right != nil && p.Col+1 < utils.GridColumns {
			right.Content = p.ID
		}
	default:
		cell.Content = p.ID
	}
}

// Destroy 标记植物死亡并清理所有引用它的格子槽位
//
// 对象在帧末统一回收。咖啡豆以外的植物被销毁时，同格的梯子一并消失。
func (f *PlantFactory) Destroy(p *components.Plant) {
	if p == nil || p.IsDead {
		return
	}
	p.IsDead = true

	if p.Type != types.PlantCoffeeBean {
		for _, g := range f.scene.GridItemsAt(p.Row, p.Col) {
			if g.Type == types.GridItemLadder {
				g.IsDisappeared = true
			}
		}
	}

	if cell := f.scene.Cell(p.Row, p.Col); cell != nil {
		cell.ClearID(p.ID)
	}
	if p.Type == types.PlantCobCannon || p.ImitaterTarget == types.PlantCobCannon {
		if cell := f.scene.Cell(p.Row, p.Col+1); cell != nil && p.Col+1 < utils.GridColumns {
			cell.ClearID(p.ID)
		}
	}
}

// PlantsAt 返回格子上所有存活植物（按铲除优先级）
func (f *PlantFactory) PlantsAt(row, col int) []*components.Plant {
	cell := f.scene.Cell(row, col)
	if cell == nil {
		return nil
	}
	var out []*components.Plant
	for _, id := range cell.Slots() {
		if p := f.scene.Plant(id); p != nil {
			out = append(out, p)
		}
	}
	return out
}
