package components

import (
	"github.com/decker502/pvzemu/internal/reanim"
	"github.com/decker502/pvzemu/pkg/config"
	"github.com/decker502/pvzemu/pkg/types"
	"github.com/decker502/pvzemu/pkg/utils"
)

// PlantCountdown 植物的倒计时组，每帧各自独立递减
type PlantCountdown struct {
	Status   int `json:"status"`   // 状态机倒计时
	Generate int `json:"generate"` // 距下次索敌/生产
	Launch   int `json:"launch"`   // 索敌成功到发射的延迟
	Eaten    int `json:"eaten"`    // 被啃食闪烁
	Awake    int `json:"awake"`    // 咖啡豆唤醒
	Effect   int `json:"effect"`   // 一次性效果（爆炸、三叶草等）
	Dead     int `json:"dead"`     // 死亡/被压扁后的销毁倒计时
}

// Plant 植物实体
//
// 坐标为格子左上角的整数像素；倭瓜跳跃时会改写 X/Y。
// 所有对其他实体的引用（TargetID）都是 ID，查找失败视为无目标。
type Plant struct {
	ID     int               `json:"id"`
	Type   types.PlantType   `json:"type"`
	Status types.PlantStatus `json:"status"`

	Row int `json:"row"`
	Col int `json:"col"`
	X   int `json:"x"`
	Y   int `json:"y"`

	HP    int `json:"hp"`
	MaxHP int `json:"max_hp"`

	Reanim    reanim.Reanimate `json:"reanimate"`
	Countdown PlantCountdown   `json:"countdown"`

	// CannonX/CannonY 玉米炮目标点，倭瓜也借用 CannonX 记录落点
	CannonX int `json:"cannon_x"`
	CannonY int `json:"cannon_y"`

	// BoxSize 判定框尺寸（位置由类型规则计算）
	BoxSize Rect `json:"box_size"`

	TargetID       int             `json:"target"`
	ImitaterTarget types.PlantType `json:"imitater_target"`

	// 裂荚射手本轮前/后方是否已开火
	SplitPeaFront bool `json:"split_pea_front"`
	SplitPeaBack  bool `json:"split_pea_back"`

	ThreepeaterTimeSinceFirstShot int `json:"threepeater_time_since_first_shot"`

	IsDead     bool                    `json:"is_dead"`
	IsSmashed  bool                    `json:"is_smashed"`
	IsSleeping bool                    `json:"is_sleeping"`
	CanAttack  bool                    `json:"can_attack"`
	Edible     types.PlantEdibleStatus `json:"edible"`

	MaxBootDelay int                  `json:"max_boot_delay"`
	Direction    types.PlantDirection `json:"direction"`

	// Shield 坚果类植物的破损阶段
	Shield types.ShieldStage `json:"shield"`

	data *config.PlantData
}

// NewPlant 按类型数据创建植物（尚未放入对象池）
func NewPlant(data *config.PlantData, pt types.PlantType, row, col, x, y int) *Plant {
	p := &Plant{
		ID:             -1,
		Type:           pt,
		Row:            row,
		Col:            col,
		X:              x,
		Y:              y,
		HP:             data.HP,
		MaxHP:          data.HP,
		CannonX:        -1,
		CannonY:        -1,
		BoxSize:        Rect{Width: 80, Height: 80},
		TargetID:       -1,
		ImitaterTarget: types.PlantNone,
		CanAttack:      data.CanAttack,
		MaxBootDelay:   data.BootDelay,
		Direction:      types.PlantDirectionRight,
		data:           data,
	}
	p.initReanim()
	return p
}

// SetID 实现 ecs.Identifiable
func (p *Plant) SetID(id int) {
	p.ID = id
}

// Data 返回类型数据表
func (p *Plant) Data() *config.PlantData {
	return p.data
}

func (p *Plant) initReanim() {
	p.Reanim.PrevProgress = -1
	if p.data.Frames > 0 {
		p.Reanim.NFrames = p.data.Frames
		p.Reanim.FPS = p.data.FPS
	}
}

// HasReanim 是否有指定动画数据
func (p *Plant) HasReanim(name types.PlantReanimName) bool {
	_, ok := p.data.Anim(name)
	return ok
}

// SetReanimFrame 只切换帧区间，不重置播放进度
func (p *Plant) SetReanimFrame(name types.PlantReanimName) bool {
	r, ok := p.data.Anim(name)
	if !ok {
		return false
	}
	return p.Reanim.SetRange(r.Begin, r.Count)
}

// SetReanim 切换动画并从头播放
// 动画数据缺失时不做任何修改并返回 false
func (p *Plant) SetReanim(name types.PlantReanimName, mode types.ReanimType, fps float64) bool {
	r, ok := p.data.Anim(name)
	if !ok {
		return false
	}
	return p.Reanim.Play(r.Begin, r.Count, mode, fps)
}

// IsSquashAttacking 倭瓜是否处于空中/下落/压扁阶段
func (p *Plant) IsSquashAttacking() bool {
	if p.Type != types.PlantSquash {
		return false
	}
	switch p.Status {
	case types.PlantStatusSquashStopInTheAir, types.PlantStatusSquashJumpDown, types.PlantStatusSquashCrushed:
		return true
	}
	return false
}

// SetSleep 切换睡眠状态
//
// 状态不变、倭瓜攻击中、被压扁、不可见不可食或已死亡时忽略。
// 入睡使用 anim_sleep（缺失时把帧率降为 1），醒来恢复 anim_idle。
func (p *Plant) SetSleep(sleep bool) {
	if p.IsSleeping == sleep || p.IsSquashAttacking() || p.IsSmashed ||
		p.Edible == types.EdibleInvisibleAndNotEdible || p.IsDead {
		return
	}

	p.IsSleeping = sleep
	if sleep {
		if !p.SetReanimFrame(types.PlantAnimSleep) {
			p.Reanim.FPS = 1
		}
		return
	}
	p.SetReanimFrame(types.PlantAnimIdle)
}

// HitBox 植物被啃食/被子弹命中的判定框（绝对坐标）
func (p *Plant) HitBox() Rect {
	switch p.Type {
	case types.PlantTallnut:
		return Rect{X: p.X + 10, Y: p.Y, Width: p.BoxSize.Width, Height: p.BoxSize.Height}
	case types.PlantPumpkin:
		return Rect{X: p.X, Y: p.Y, Width: p.BoxSize.Width - 20, Height: p.BoxSize.Height}
	case types.PlantCobCannon:
		return Rect{X: p.X, Y: p.Y, Width: 140, Height: 80}
	default:
		return Rect{X: p.X + 10, Y: p.Y, Width: p.BoxSize.Width - 20, Height: p.BoxSize.Height}
	}
}

// AttackBox 植物的攻击范围（绝对坐标）
// alt 为裂荚射手背面 / 仙人掌对地的备用攻击
func (p *Plant) AttackBox(alt bool) Rect {
	h := p.BoxSize.Height
	switch p.Type {
	case types.PlantSplitPea:
		if alt {
			return Rect{X: 0, Y: p.Y, Width: p.X + 16, Height: h}
		}
	case types.PlantSquash:
		return Rect{X: p.X + 20, Y: p.Y, Width: p.BoxSize.Width - 35, Height: h}
	case types.PlantChomper:
		return Rect{X: p.X + 80, Y: p.Y, Width: 40, Height: h}
	case types.PlantSpikeweed, types.PlantSpikerock:
		return Rect{X: p.X + 20, Y: p.Y, Width: p.BoxSize.Width - 50, Height: h}
	case types.PlantPotatoMine:
		return Rect{X: p.X, Y: p.Y, Width: p.BoxSize.Width - 25, Height: h}
	case types.PlantTorchwood:
		return Rect{X: p.X + 50, Y: p.Y, Width: 30, Height: h}
	case types.PlantPuffshroom, types.PlantSeashroom:
		return Rect{X: p.X + 60, Y: p.Y, Width: 230, Height: h}
	case types.PlantFumeshroom:
		return Rect{X: p.X + 60, Y: p.Y, Width: 340, Height: h}
	case types.PlantGloomshroom:
		return Rect{X: p.X - 80, Y: p.Y - 80, Width: 240, Height: 240}
	case types.PlantTangleKelp:
		return Rect{X: p.X, Y: p.Y, Width: p.BoxSize.Width, Height: h}
	case types.PlantCattail:
		return Rect{X: -utils.BoardWidth, Y: -utils.BoardHeight, Width: utils.BoardWidth * 2, Height: utils.BoardHeight * 2}
	}
	return Rect{X: p.X + 60, Y: p.Y, Width: utils.BoardWidth, Height: h}
}

// 爆炸类植物可以命中几乎所有状态的僵尸
const explosiveAttackFlags = types.AttackDiggingDigger | types.AttackDyingZombies |
	types.AttackAnimatingZombies | types.AttackLurkingSnorkel | types.AttackFlyingBalloon |
	types.AttackGround | 0x8

// AttackFlags 植物攻击可命中的目标类别
func (p *Plant) AttackFlags(alt bool) types.AttackFlags {
	switch p.Type {
	case types.PlantCactus:
		if alt {
			return types.AttackGround
		}
		return types.AttackFlyingBalloon
	case types.PlantCobCannon, types.PlantCherryBomb, types.PlantJalapeno, types.PlantDoomshroom:
		return explosiveAttackFlags
	case types.PlantSquash, types.PlantCabbagepult, types.PlantMelonpult, types.PlantKernelpult, types.PlantWinterMelon:
		return types.AttackLurkingSnorkel | types.AttackGround | 0x8
	case types.PlantPotatoMine:
		return types.AttackDiggingDigger | types.AttackLurkingSnorkel | types.AttackGround | 0x8
	case types.PlantPuffshroom, types.PlantScaredyshroom, types.PlantFumeshroom, types.PlantChomper, types.PlantSeashroom:
		return types.AttackGround
	case types.PlantCattail:
		return types.AttackFlyingBalloon | types.AttackGround
	case types.PlantTangleKelp:
		return types.AttackLurkingSnorkel | types.AttackGround
	}
	return types.AttackAnimatingZombies | types.AttackGround
}

// IsShieldPlant 坚果类（有破损阶段）
func (p *Plant) IsShieldPlant() bool {
	return p.Type == types.PlantWallnut || p.Type == types.PlantTallnut || p.Type == types.PlantPumpkin
}

// ShieldStageForHP 根据血量计算破损阶段（阈值为最大血量的 2/3 与 1/3）
func ShieldStageForHP(hp, maxHP int) types.ShieldStage {
	switch {
	case hp*3 <= maxHP:
		return types.ShieldCracked2
	case hp*3 <= maxHP*2:
		return types.ShieldCracked1
	default:
		return types.ShieldHealthy
	}
}
