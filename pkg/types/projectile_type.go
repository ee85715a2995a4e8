package types

// ProjectileType 子弹类型
type ProjectileType int

const (
	ProjectileNone        ProjectileType = -1
	ProjectilePea         ProjectileType = 0x0 // 豌豆
	ProjectileSnowPea     ProjectileType = 0x1 // 寒冰豌豆
	ProjectileCabbage     ProjectileType = 0x2 // 卷心菜
	ProjectileMelon       ProjectileType = 0x3 // 西瓜
	ProjectilePuff        ProjectileType = 0x4 // 孢子
	ProjectileWinterMelon ProjectileType = 0x5 // 冰西瓜
	ProjectileFirePea     ProjectileType = 0x6 // 火焰豌豆
	ProjectileStar        ProjectileType = 0x7 // 星星
	ProjectileCactus      ProjectileType = 0x8 // 尖刺
	ProjectileBasketball  ProjectileType = 0x9 // 篮球
	ProjectileKernel      ProjectileType = 0xA // 玉米粒
	ProjectileCobCannon   ProjectileType = 0xB // 玉米炮弹
	ProjectileButter      ProjectileType = 0xC // 黄油
	ProjectileZombiePea   ProjectileType = 0xD // 僵尸豌豆
)

// IsMelon 西瓜类（溅射伤害）
func (p ProjectileType) IsMelon() bool {
	return p == ProjectileMelon || p == ProjectileWinterMelon
}

// ProjectileMotion 子弹运动方式
type ProjectileMotion int

const (
	MotionStraight     ProjectileMotion = 0 // 直线
	MotionParabola     ProjectileMotion = 1 // 抛物线
	MotionSwitchWay    ProjectileMotion = 2 // 换行（三线射手上下两路）
	MotionPuff         ProjectileMotion = 5 // 短程孢子
	MotionLeftStraight ProjectileMotion = 6 // 向左直线
	MotionStarfruit    ProjectileMotion = 7 // 杨桃星星（带纵向速度）
	MotionCattail      ProjectileMotion = 9 // 香蒲追踪
)

var projectileKeys = [...]string{
	"pea", "snow_pea", "cabbage", "melon", "puff", "winter_melon", "fire_pea",
	"star", "cactus", "basketball", "kernel", "cob_cannon", "butter", "zombie_pea",
}

// Key 返回子弹类型键名
func (p ProjectileType) Key() string {
	if p < 0 || int(p) >= len(projectileKeys) {
		return "none"
	}
	return projectileKeys[p]
}

// String 返回子弹类型键名
func (p ProjectileType) String() string {
	return p.Key()
}

var motionKeys = map[ProjectileMotion]string{
	MotionStraight:     "straight",
	MotionParabola:     "parabola",
	MotionSwitchWay:    "switch_way",
	MotionPuff:         "puff",
	MotionLeftStraight: "left_straight",
	MotionStarfruit:    "starfruit",
	MotionCattail:      "cattail",
}

// String 返回运动方式键名
func (m ProjectileMotion) String() string {
	if k, ok := motionKeys[m]; ok {
		return k
	}
	return "unknown"
}
