package types

import "fmt"

// ZombieType 定义僵尸的类型
type ZombieType int

const (
	// ZombieNone 无
	ZombieNone ZombieType = -1

	ZombieBasic            ZombieType = 0x00 // 普通僵尸
	ZombieFlag             ZombieType = 0x01 // 旗帜僵尸
	ZombieConeHead         ZombieType = 0x02 // 路障僵尸
	ZombiePoleVaulting     ZombieType = 0x03 // 撑杆跳僵尸
	ZombieBucketHead       ZombieType = 0x04 // 铁桶僵尸
	ZombieNewspaper        ZombieType = 0x05 // 读报僵尸
	ZombieScreenDoor       ZombieType = 0x06 // 铁栅门僵尸
	ZombieFootball         ZombieType = 0x07 // 橄榄球僵尸
	ZombieDancing          ZombieType = 0x08 // 舞王僵尸
	ZombieBackupDancer     ZombieType = 0x09 // 伴舞僵尸
	ZombieDuckyTube        ZombieType = 0x0A // 鸭子救生圈僵尸
	ZombieSnorkel          ZombieType = 0x0B // 潜水僵尸
	ZombieZomboni          ZombieType = 0x0C // 冰车僵尸
	ZombieBobsled          ZombieType = 0x0D // 雪橇队僵尸
	ZombieDolphinRider     ZombieType = 0x0E // 海豚骑士僵尸
	ZombieJackInTheBox     ZombieType = 0x0F // 小丑僵尸
	ZombieBalloon          ZombieType = 0x10 // 气球僵尸
	ZombieDigger           ZombieType = 0x11 // 矿工僵尸
	ZombiePogo             ZombieType = 0x12 // 跳跳僵尸
	ZombieYeti             ZombieType = 0x13 // 雪人僵尸
	ZombieBungee           ZombieType = 0x14 // 蹦极僵尸
	ZombieLadder           ZombieType = 0x15 // 扶梯僵尸
	ZombieCatapult         ZombieType = 0x16 // 投篮车僵尸
	ZombieGargantuar       ZombieType = 0x17 // 白眼巨人
	ZombieImp              ZombieType = 0x18 // 小鬼僵尸
	ZombieBoss             ZombieType = 0x19 // 僵王博士
	ZombieGigaGargantuar   ZombieType = 0x20 // 红眼巨人
	ZombiePeaHead          ZombieType = 0x21 // 豌豆僵尸
	ZombieWallnutHead      ZombieType = 0x22 // 坚果僵尸
	ZombieJalapenoHead     ZombieType = 0x23 // 辣椒僵尸
	ZombieGatlingHead      ZombieType = 0x24 // 机枪僵尸
	ZombieSquashHead       ZombieType = 0x25 // 倭瓜僵尸
	ZombieTallnutHead      ZombieType = 0x26 // 高坚果僵尸
	zombieTypeUpperBound              = 0x27
)

var zombieTypeKeys = map[ZombieType]string{
	ZombieBasic:          "zombie",
	ZombieFlag:           "flag",
	ZombieConeHead:       "cone_head",
	ZombiePoleVaulting:   "pole_vaulting",
	ZombieBucketHead:     "bucket_head",
	ZombieNewspaper:      "newspaper",
	ZombieScreenDoor:     "screen_door",
	ZombieFootball:       "football",
	ZombieDancing:        "dancing",
	ZombieBackupDancer:   "backup_dancer",
	ZombieDuckyTube:      "ducky_tube",
	ZombieSnorkel:        "snorkel",
	ZombieZomboni:        "zomboni",
	ZombieBobsled:        "zombie_bobsled",
	ZombieDolphinRider:   "dolphin_rider",
	ZombieJackInTheBox:   "jack_in_the_box",
	ZombieBalloon:        "balloon",
	ZombieDigger:         "digger",
	ZombiePogo:           "pogo",
	ZombieYeti:           "yeti",
	ZombieBungee:         "bungee",
	ZombieLadder:         "ladder",
	ZombieCatapult:       "catapult",
	ZombieGargantuar:     "gargantuar",
	ZombieImp:            "imp",
	ZombieBoss:           "zombie_boss",
	ZombieGigaGargantuar: "giga_gargantuar",
	ZombiePeaHead:        "zombie_pea_head",
	ZombieWallnutHead:    "zombie_wallnut_head",
	ZombieJalapenoHead:   "zombie_jalapeno_head",
	ZombieGatlingHead:    "zombie_gatling_head",
	ZombieSquashHead:     "zombie_squash_head",
	ZombieTallnutHead:    "zombie_tallnut_head",
}

// IsValid 判断是否为已定义的僵尸类型
func (z ZombieType) IsValid() bool {
	_, ok := zombieTypeKeys[z]
	return ok
}

// Key 返回数据表中使用的键名
func (z ZombieType) Key() string {
	if k, ok := zombieTypeKeys[z]; ok {
		return k
	}
	return "none"
}

// String 返回僵尸类型的字符串表示
func (z ZombieType) String() string {
	return z.Key()
}

// ParseZombieType 将数据表键名解析为僵尸类型
func ParseZombieType(key string) (ZombieType, error) {
	for t := ZombieType(0); t < zombieTypeUpperBound; t++ {
		if k, ok := zombieTypeKeys[t]; ok && k == key {
			return t, nil
		}
	}
	return ZombieNone, fmt.Errorf("unknown zombie type %q", key)
}

// IsGargantuar 巨人类（普通巨人与红眼巨人）
func (z ZombieType) IsGargantuar() bool {
	return z == ZombieGargantuar || z == ZombieGigaGargantuar
}

// IsAquatic 只能在水路出生的僵尸
func (z ZombieType) IsAquatic() bool {
	return z == ZombieDuckyTube || z == ZombieSnorkel || z == ZombieDolphinRider
}

// ZombieStatus 僵尸状态机的状态
type ZombieStatus int

const (
	ZombieStatusWalking                   ZombieStatus = 0x00
	ZombieStatusDying                     ZombieStatus = 0x01
	ZombieStatusDyingFromInstantKill      ZombieStatus = 0x02
	ZombieStatusDyingFromLawnmower        ZombieStatus = 0x03
	ZombieStatusBungeeTargetDrop          ZombieStatus = 0x04
	ZombieStatusBungeeBodyDrop            ZombieStatus = 0x05
	ZombieStatusBungeeIdleAfterDrop       ZombieStatus = 0x06
	ZombieStatusBungeeGrab                ZombieStatus = 0x07
	ZombieStatusBungeeRaise               ZombieStatus = 0x08
	ZombieStatusBungeeHitOuchy            ZombieStatus = 0x09
	ZombieStatusBungeeIdle                ZombieStatus = 0x0A
	ZombieStatusPoleVaultingRunning       ZombieStatus = 0x0B
	ZombieStatusPoleVaultingJumping       ZombieStatus = 0x0C
	ZombieStatusPoleVaultingWalking       ZombieStatus = 0x0D
	ZombieStatusRisingFromGround          ZombieStatus = 0x0E
	ZombieStatusJackboxWalking            ZombieStatus = 0x0F
	ZombieStatusJackboxPop                ZombieStatus = 0x10
	ZombieStatusBobsledSliding            ZombieStatus = 0x11
	ZombieStatusBobsledBoarding           ZombieStatus = 0x12
	ZombieStatusBobsledCrashing           ZombieStatus = 0x13
	ZombieStatusPogoWithStick             ZombieStatus = 0x14
	ZombieStatusPogoIdleBeforeTarget      ZombieStatus = 0x15
	ZombieStatusPogoHighBounce2           ZombieStatus = 0x16
	ZombieStatusPogoHighBounce3           ZombieStatus = 0x17
	ZombieStatusPogoHighBounce4           ZombieStatus = 0x18
	ZombieStatusPogoHighBounce5           ZombieStatus = 0x19
	ZombieStatusPogoHighBounce6           ZombieStatus = 0x1A
	ZombieStatusPogoJumpAcross            ZombieStatus = 0x1B
	ZombieStatusPogoForwardAcross2        ZombieStatus = 0x1C
	ZombieStatusNewspaperWalking          ZombieStatus = 0x1D
	ZombieStatusNewspaperDestroyed        ZombieStatus = 0x1E
	ZombieStatusNewspaperRunning          ZombieStatus = 0x1F
	ZombieStatusDiggerDig                 ZombieStatus = 0x20
	ZombieStatusDiggerDrill               ZombieStatus = 0x21
	ZombieStatusDiggerLostDig             ZombieStatus = 0x22
	ZombieStatusDiggerLanding             ZombieStatus = 0x23
	ZombieStatusDiggerDizzy               ZombieStatus = 0x24
	ZombieStatusDiggerWalkRight           ZombieStatus = 0x25
	ZombieStatusDiggerWalkLeft            ZombieStatus = 0x26
	ZombieStatusDiggerIdle                ZombieStatus = 0x27
	ZombieStatusDancingMoonwalk           ZombieStatus = 0x28
	ZombieStatusDancingPoint              ZombieStatus = 0x29
	ZombieStatusDancingWaitSummoning      ZombieStatus = 0x2A
	ZombieStatusDancingSummoning          ZombieStatus = 0x2B
	ZombieStatusDancingWalking            ZombieStatus = 0x2C
	ZombieStatusDancingArmrise1           ZombieStatus = 0x2D
	ZombieStatusDancingArmrise2           ZombieStatus = 0x2E
	ZombieStatusDancingArmrise3           ZombieStatus = 0x2F
	ZombieStatusDancingArmrise4           ZombieStatus = 0x30
	ZombieStatusDancingArmrise5           ZombieStatus = 0x31
	ZombieStatusDancingDancerSpawning     ZombieStatus = 0x32
	ZombieStatusDolphinWalkWithDolphin    ZombieStatus = 0x33
	ZombieStatusDolphinJumpInPool         ZombieStatus = 0x34
	ZombieStatusDolphinRide               ZombieStatus = 0x35
	ZombieStatusDolphinInJump             ZombieStatus = 0x36
	ZombieStatusDolphinWalkInPool         ZombieStatus = 0x37
	ZombieStatusDolphinWalkWithoutDolphin ZombieStatus = 0x38
	ZombieStatusSnorkelWalking            ZombieStatus = 0x39
	ZombieStatusSnorkelJumpInThePool      ZombieStatus = 0x3A
	ZombieStatusSnorkelSwim               ZombieStatus = 0x3B
	ZombieStatusSnorkelUpToEat            ZombieStatus = 0x3C
	ZombieStatusSnorkelEatingInPool       ZombieStatus = 0x3D
	ZombieStatusSnorkelFinishedEat        ZombieStatus = 0x3E
	ZombieStatusCatapultShoot             ZombieStatus = 0x43
	ZombieStatusCatapultIdle              ZombieStatus = 0x44
	ZombieStatusGargantuarThrow           ZombieStatus = 0x45
	ZombieStatusGargantuarSmash           ZombieStatus = 0x46
	ZombieStatusImpFlying                 ZombieStatus = 0x47
	ZombieStatusImpLanding                ZombieStatus = 0x48
	ZombieStatusBalloonFlying             ZombieStatus = 0x49
	ZombieStatusBalloonFalling            ZombieStatus = 0x4A
	ZombieStatusBalloonWalking            ZombieStatus = 0x4B
	ZombieStatusLadderWalking             ZombieStatus = 0x4C
	ZombieStatusLadderPlacing             ZombieStatus = 0x4D
	ZombieStatusYetiEscape                ZombieStatus = 0x5B
)

// IsDying 处于任一死亡状态
func (s ZombieStatus) IsDying() bool {
	return s == ZombieStatusDying || s == ZombieStatusDyingFromInstantKill ||
		s == ZombieStatusDyingFromLawnmower
}

// ZombieAction 与状态正交的次级动作
type ZombieAction int

const (
	ZombieActionNone           ZombieAction = 0x0
	ZombieActionEnteringPool   ZombieAction = 0x1
	ZombieActionLeavingPool    ZombieAction = 0x2
	ZombieActionCaughtByKelp   ZombieAction = 0x3
	ZombieActionClimbingLadder ZombieAction = 0x6
	ZombieActionFalling        ZombieAction = 0x7
	ZombieActionFallFromSky    ZombieAction = 0x9
)

// ZombieAccessories1 头部防具（一类饰品）
type ZombieAccessories1 int

const (
	Accessory1None        ZombieAccessories1 = 0x0
	Accessory1Roadcone    ZombieAccessories1 = 0x1
	Accessory1Bucket      ZombieAccessories1 = 0x2
	Accessory1FootballCap ZombieAccessories1 = 0x3
	Accessory1MinerHat    ZombieAccessories1 = 0x4
)

// ZombieAccessories2 身体护盾（二类饰品）
type ZombieAccessories2 int

const (
	Accessory2None       ZombieAccessories2 = 0x0
	Accessory2ScreenDoor ZombieAccessories2 = 0x1
	Accessory2Newspaper  ZombieAccessories2 = 0x2
	Accessory2Ladder     ZombieAccessories2 = 0x3
)

var accessory1Keys = map[string]ZombieAccessories1{
	"none":         Accessory1None,
	"roadcone":     Accessory1Roadcone,
	"bucket":       Accessory1Bucket,
	"football_cap": Accessory1FootballCap,
	"miner_hat":    Accessory1MinerHat,
}

var accessory2Keys = map[string]ZombieAccessories2{
	"none":        Accessory2None,
	"screen_door": Accessory2ScreenDoor,
	"newspaper":   Accessory2Newspaper,
	"ladder":      Accessory2Ladder,
}

// ParseAccessory1 解析头部防具键名，空字符串视为无防具
func ParseAccessory1(key string) (ZombieAccessories1, error) {
	if key == "" {
		return Accessory1None, nil
	}
	if a, ok := accessory1Keys[key]; ok {
		return a, nil
	}
	return Accessory1None, fmt.Errorf("unknown accessory1 type %q", key)
}

// ParseAccessory2 解析身体护盾键名，空字符串视为无护盾
func ParseAccessory2(key string) (ZombieAccessories2, error) {
	if key == "" {
		return Accessory2None, nil
	}
	if a, ok := accessory2Keys[key]; ok {
		return a, nil
	}
	return Accessory2None, fmt.Errorf("unknown accessory2 type %q", key)
}

// ZombieTypeCount 僵尸类型数值上界（用于按类型索引的数据表）
const ZombieTypeCount = zombieTypeUpperBound
