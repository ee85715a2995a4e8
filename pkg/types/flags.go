package types

// AttackFlags 攻击可命中的目标类别
type AttackFlags int

const (
	AttackGround           AttackFlags = 0x01 // 地面僵尸
	AttackFlyingBalloon    AttackFlags = 0x02 // 飞行中的气球僵尸
	AttackLurkingSnorkel   AttackFlags = 0x04 // 潜水中的潜水僵尸
	AttackAnimatingZombies AttackFlags = 0x10 // 播放特殊动作中的僵尸（跳跃、入场等）
	AttackDyingZombies     AttackFlags = 0x20 // 死亡中的僵尸
	AttackDiggingDigger    AttackFlags = 0x40 // 地下挖掘中的矿工
	AttackHypnoZombies     AttackFlags = 0x80 // 被魅惑的僵尸
)

// Has 是否包含指定标志
func (f AttackFlags) Has(flag AttackFlags) bool {
	return f&flag != 0
}

// DamageFlags 伤害结算方式
type DamageFlags int

const (
	DamageBypassesShield     DamageFlags = 0x01 // 无视所有防具直接伤害本体
	DamageHitsShieldAndBody  DamageFlags = 0x02 // 二类防具与后续层级都承受完整伤害
	DamageFreeze             DamageFlags = 0x04 // 附带减速
	DamageNoFlash            DamageFlags = 0x08 // 不产生受击闪光
	DamageNoLeaveBody        DamageFlags = 0x10 // 死亡不留尸体
	DamageSpike              DamageFlags = 0x20 // 地刺伤害
)

// Has 是否包含指定标志
func (f DamageFlags) Has(flag DamageFlags) bool {
	return f&flag != 0
}
