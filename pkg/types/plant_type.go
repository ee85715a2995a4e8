// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import "fmt"

// PlantType 定义植物的类型
//
// 数值与原版内存布局一致，快照与回放中直接使用整数值。
type PlantType int

const (
	// PlantNone 空槽位
	PlantNone PlantType = -1

	PlantPeaShooter    PlantType = 0x00 // 豌豆射手
	PlantSunflower     PlantType = 0x01 // 向日葵
	PlantCherryBomb    PlantType = 0x02 // 樱桃炸弹
	PlantWallnut       PlantType = 0x03 // 坚果墙
	PlantPotatoMine    PlantType = 0x04 // 土豆地雷
	PlantSnowPea       PlantType = 0x05 // 寒冰射手
	PlantChomper       PlantType = 0x06 // 大嘴花
	PlantRepeater      PlantType = 0x07 // 双发射手
	PlantPuffshroom    PlantType = 0x08 // 小喷菇
	PlantSunshroom     PlantType = 0x09 // 阳光菇
	PlantFumeshroom    PlantType = 0x0A // 大喷菇
	PlantGraveBuster   PlantType = 0x0B // 墓碑吞噬者
	PlantHypnoshroom   PlantType = 0x0C // 魅惑菇
	PlantScaredyshroom PlantType = 0x0D // 胆小菇
	PlantIceshroom     PlantType = 0x0E // 寒冰菇
	PlantDoomshroom    PlantType = 0x0F // 毁灭菇
	PlantLilyPad       PlantType = 0x10 // 睡莲
	PlantSquash        PlantType = 0x11 // 倭瓜
	PlantThreepeater   PlantType = 0x12 // 三线射手
	PlantTangleKelp    PlantType = 0x13 // 缠绕海草
	PlantJalapeno      PlantType = 0x14 // 火爆辣椒
	PlantSpikeweed     PlantType = 0x15 // 地刺
	PlantTorchwood     PlantType = 0x16 // 火炬树桩
	PlantTallnut       PlantType = 0x17 // 高坚果
	PlantSeashroom     PlantType = 0x18 // 海蘑菇
	PlantPlantern      PlantType = 0x19 // 路灯花
	PlantCactus        PlantType = 0x1A // 仙人掌
	PlantBlover        PlantType = 0x1B // 三叶草
	PlantSplitPea      PlantType = 0x1C // 裂荚射手
	PlantStarfruit     PlantType = 0x1D // 杨桃
	PlantPumpkin       PlantType = 0x1E // 南瓜头
	PlantMagnetshroom  PlantType = 0x1F // 磁力菇
	PlantCabbagepult   PlantType = 0x20 // 卷心菜投手
	PlantFlowerPot     PlantType = 0x21 // 花盆
	PlantKernelpult    PlantType = 0x22 // 玉米投手
	PlantCoffeeBean    PlantType = 0x23 // 咖啡豆
	PlantGarlic        PlantType = 0x24 // 大蒜
	PlantUmbrellaLeaf  PlantType = 0x25 // 叶子保护伞
	PlantMarigold      PlantType = 0x26 // 金盏花
	PlantMelonpult     PlantType = 0x27 // 西瓜投手
	PlantGatlingPea    PlantType = 0x28 // 机枪射手
	PlantTwinSunflower PlantType = 0x29 // 双子向日葵
	PlantGloomshroom   PlantType = 0x2A // 忧郁菇
	PlantCattail       PlantType = 0x2B // 香蒲
	PlantWinterMelon   PlantType = 0x2C // 冰西瓜投手
	PlantGoldMagnet    PlantType = 0x2D // 吸金磁
	PlantSpikerock     PlantType = 0x2E // 地刺王
	PlantCobCannon     PlantType = 0x2F // 玉米加农炮
	PlantImitater      PlantType = 0x30 // 模仿者

	// PlantTypeCount 有效植物类型数量
	PlantTypeCount = 0x31
)

var plantTypeKeys = [PlantTypeCount]string{
	"pea_shooter", "sunflower", "cherry_bomb", "wallnut", "potato_mine",
	"snow_pea", "chomper", "repeater", "puffshroom", "sunshroom",
	"fumeshroom", "grave_buster", "hypnoshroom", "scaredyshroom", "iceshroom",
	"doomshroom", "lily_pad", "squash", "threepeater", "tangle_kelp",
	"jalapeno", "spikeweed", "torchwood", "tallnut", "seashroom",
	"plantern", "cactus", "blover", "split_pea", "starfruit",
	"pumpkin", "magnetshroom", "cabbagepult", "flower_pot", "kernelpult",
	"coffee_bean", "garlic", "umbrella_leaf", "marigold", "melonpult",
	"gatling_pea", "twin_sunflower", "gloomshroom", "cattail", "winter_melon",
	"gold_magnet", "spikerock", "cob_cannon", "imitater",
}

// IsValid 判断是否为可种植的植物类型
func (p PlantType) IsValid() bool {
	return p >= 0 && p < PlantTypeCount
}

// Key 返回数据表中使用的键名（如 "pea_shooter"）
func (p PlantType) Key() string {
	if !p.IsValid() {
		return "none"
	}
	return plantTypeKeys[p]
}

// String 返回植物类型的字符串表示
func (p PlantType) String() string {
	return p.Key()
}

// ParsePlantType 将数据表键名解析为植物类型
func ParsePlantType(key string) (PlantType, error) {
	for i, k := range plantTypeKeys {
		if k == key {
			return PlantType(i), nil
		}
	}
	return PlantNone, fmt.Errorf("unknown plant type %q", key)
}

// IsUpgrade 升级植物（需要种在对应基础植物上）
func (p PlantType) IsUpgrade() bool {
	switch p {
	case PlantGatlingPea, PlantWinterMelon, PlantTwinSunflower, PlantSpikerock,
		PlantCobCannon, PlantGoldMagnet, PlantGloomshroom, PlantCattail:
		return true
	}
	return false
}

// IsNocturnal 蘑菇类植物，白天场景会睡觉
func (p PlantType) IsNocturnal() bool {
	switch p {
	case PlantPuffshroom, PlantSeashroom, PlantSunshroom, PlantFumeshroom,
		PlantHypnoshroom, PlantDoomshroom, PlantIceshroom, PlantMagnetshroom,
		PlantScaredyshroom, PlantGloomshroom:
		return true
	}
	return false
}

// IsAquatic 只能种在水面上的植物
func (p PlantType) IsAquatic() bool {
	switch p {
	case PlantLilyPad, PlantTangleKelp, PlantSeashroom, PlantCattail:
		return true
	}
	return false
}

// IsSunProducer 产阳光植物
func (p PlantType) IsSunProducer() bool {
	return p == PlantSunflower || p == PlantTwinSunflower || p == PlantSunshroom
}

// PlantStatus 植物状态机的状态
type PlantStatus int

const (
	PlantStatusIdle                     PlantStatus = 0x00
	PlantStatusWait                     PlantStatus = 0x01
	PlantStatusWork                     PlantStatus = 0x02
	PlantStatusSquashLook               PlantStatus = 0x03
	PlantStatusSquashJumpUp             PlantStatus = 0x04
	PlantStatusSquashStopInTheAir       PlantStatus = 0x05
	PlantStatusSquashJumpDown           PlantStatus = 0x06
	PlantStatusSquashCrushed            PlantStatus = 0x07
	PlantStatusGraveBusterLand          PlantStatus = 0x08
	PlantStatusGraveBusterIdle          PlantStatus = 0x09
	PlantStatusChomperBiteBegin         PlantStatus = 0x0A
	PlantStatusChomperBiteSuccess       PlantStatus = 0x0B
	PlantStatusChomperBiteFail          PlantStatus = 0x0C
	PlantStatusChomperChew              PlantStatus = 0x0D
	PlantStatusChomperSwallow           PlantStatus = 0x0E
	PlantStatusPotatoSproutOut          PlantStatus = 0x0F
	PlantStatusPotatoArmed              PlantStatus = 0x10
	PlantStatusPotatoMashed             PlantStatus = 0x11
	PlantStatusSpikeAttack              PlantStatus = 0x12
	PlantStatusSpikeweedAttack2         PlantStatus = 0x13
	PlantStatusScaredyshroomScared      PlantStatus = 0x14
	PlantStatusScaredyshroomScaredIdle  PlantStatus = 0x15
	PlantStatusScaredyshroomGrow        PlantStatus = 0x16
	PlantStatusSunshroomSmall           PlantStatus = 0x17
	PlantStatusSunshroomGrow            PlantStatus = 0x18
	PlantStatusSunshroomBig             PlantStatus = 0x19
	PlantStatusMagnetshroomWorking      PlantStatus = 0x1A
	PlantStatusMagnetshroomInactiveIdle PlantStatus = 0x1B
	PlantStatusBowlingUp                PlantStatus = 0x1C
	PlantStatusBowlingDown              PlantStatus = 0x1D
	PlantStatusCactusShortIdle          PlantStatus = 0x1E
	PlantStatusCactusGrowTall           PlantStatus = 0x1F
	PlantStatusCactusTallIdle           PlantStatus = 0x20
	PlantStatusCactusGetShort           PlantStatus = 0x21
	PlantStatusTangleKelpGrab           PlantStatus = 0x22
	PlantStatusCobCannonUnarmedIdle     PlantStatus = 0x23
	PlantStatusCobCannonCharge          PlantStatus = 0x24
	PlantStatusCobCannonLaunch          PlantStatus = 0x25
	PlantStatusCobCannonArmedIdle       PlantStatus = 0x26
	PlantStatusKernelpultLaunchButter   PlantStatus = 0x27
	PlantStatusUmbrellaLeafBlock        PlantStatus = 0x28
	PlantStatusUmbrellaLeafShrink       PlantStatus = 0x29
	PlantStatusImitaterMorphing         PlantStatus = 0x2A
	PlantStatusFlowerPotPlaced          PlantStatus = 0x2F
	PlantStatusLilyPadPlaced            PlantStatus = 0x30
)

// PlantDirection 植物朝向（裂荚射手的背面射击使用）
type PlantDirection int

const (
	PlantDirectionLeft  PlantDirection = 1
	PlantDirectionRight PlantDirection = -1
)

// PlantEdibleStatus 植物可见/可食用状态
type PlantEdibleStatus int

const (
	EdibleVisibleAndEdible      PlantEdibleStatus = 0 // 可见且可被啃食
	EdibleInvisibleAndEdible    PlantEdibleStatus = 1 // 不可见但可被啃食
	EdibleInvisibleAndNotEdible PlantEdibleStatus = 2 // 不可见且不可被啃食
)

// ShieldStage 坚果类植物的破损阶段
type ShieldStage int

const (
	ShieldHealthy  ShieldStage = iota // 完好
	ShieldCracked1                    // 轻度破损（hp <= 2/3）
	ShieldCracked2                    // 重度破损（hp <= 1/3）
)
