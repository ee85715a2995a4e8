package components

import "github.com/decker502/pvzemu/pkg/types"

// projectileDamage 各类子弹的基础伤害（按 ProjectileType 索引）
var projectileDamage = [...]int{20, 20, 40, 80, 20, 80, 40, 20, 20, 75, 20, 300, 40, 0}

// ProjectileDamage 返回子弹类型的基础伤害
func ProjectileDamage(pt types.ProjectileType) int {
	if pt < 0 || int(pt) >= len(projectileDamage) {
		return 0
	}
	return projectileDamage[pt]
}

// Projectile 子弹实体
type Projectile struct {
	ID     int                    `json:"id"`
	Type   types.ProjectileType   `json:"type"`
	Motion types.ProjectileMotion `json:"motion_type"`
	Row    int                    `json:"row"`

	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	IntX    int     `json:"int_x"`
	IntY    int     `json:"int_y"`
	ShadowY float64 `json:"shadow_y"`

	DX   float64 `json:"dx"`
	DY1  float64 `json:"dy1"`
	DY2  float64 `json:"dy2"`
	DDY  float64 `json:"ddy"`
	DDDY float64 `json:"dddy"`

	BoxWidth  int `json:"attack_box_width"`
	BoxHeight int `json:"attack_box_height"`

	// Flags 可命中的目标类别
	Flags types.AttackFlags `json:"flags"`

	TimeSinceCreated int `json:"time_since_created"`
	Countdown        int `json:"countdown"`
	LastTorchwoodCol int `json:"last_torchwood_col"`

	// TargetID 追踪目标（香蒲、投手），-1 表示无
	TargetID int `json:"target"`

	// CannonX/CannonRow 玉米炮弹的落点
	CannonX   float64 `json:"cannon_x"`
	CannonRow int     `json:"cannon_row"`

	IsDisappeared bool `json:"is_disappeared"`
	IsVisible     bool `json:"is_visible"`
}

// NewProjectile 创建子弹（尚未放入对象池）
func NewProjectile(pt types.ProjectileType, row int, x, y float64) *Projectile {
	return &Projectile{
		ID:               -1,
		Type:             pt,
		Motion:           types.MotionStraight,
		Row:              row,
		X:                x,
		Y:                y,
		IntX:             int(x),
		IntY:             int(y),
		BoxWidth:         40,
		BoxHeight:        40,
		LastTorchwoodCol: -1,
		TargetID:         -1,
		IsVisible:        true,
	}
}

// SetID 实现 ecs.Identifiable
func (p *Projectile) SetID(id int) {
	p.ID = id
}

// Damage 该子弹的基础伤害
func (p *Projectile) Damage() int {
	return ProjectileDamage(p.Type)
}

// AttackBox 攻击判定框（绝对坐标）
func (p *Projectile) AttackBox() Rect {
	r := Rect{X: p.IntX, Y: p.IntY, Width: p.BoxWidth, Height: p.BoxHeight}
	switch p.Type {
	case types.ProjectilePea, types.ProjectileSnowPea:
		r.X -= 15
		r.Width += 15
	case types.ProjectileMelon, types.ProjectileWinterMelon:
		r.X += 20
		r.Width = 60
	case types.ProjectileFirePea:
		r.Width -= 10
	case types.ProjectileCactus:
		r.X -= 25
		r.Width += 25
	case types.ProjectileCobCannon:
		r.X = p.BoxWidth/2 + p.IntX - 115
		r.Y = p.BoxHeight/2 + p.IntY - 115
		r.Width = 230
		r.Height = 230
	}
	return r
}

// FlagsWithZombie 命中指定僵尸时使用的伤害标志
//
// 从背后或上方命中带铁门/梯子的僵尸（以及冰车、投篮车）时，火焰豌豆绕过二类防具。
func (p *Projectile) FlagsWithZombie(z *Zombie) types.DamageFlags {
	var flags types.DamageFlags
	shielded := z.Type == types.ZombieCatapult || z.Type == types.ZombieZomboni ||
		z.Accessory2 == types.Accessory2ScreenDoor || z.Accessory2 == types.Accessory2Ladder
	indirect := p.Motion == types.MotionParabola || p.Motion == types.MotionLeftStraight ||
		p.Motion == types.MotionStarfruit

	if p.Type == types.ProjectileFirePea && shielded && indirect {
		flags = types.DamageBypassesShield
	} else {
		flags = types.DamageHitsShieldAndBody
	}

	if p.Type == types.ProjectileSnowPea || p.Type == types.ProjectileWinterMelon {
		flags |= types.DamageFreeze
	}
	return flags
}

// SyncInt 由连续坐标同步整数坐标
func (p *Projectile) SyncInt() {
	p.IntX = int(p.X)
	p.IntY = int(p.Y)
}
