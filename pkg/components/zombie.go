package components

import (
	"github.com/decker502/pvzemu/internal/reanim"
	"github.com/decker502/pvzemu/pkg/config"
	"github.com/decker502/pvzemu/pkg/types"
)

// ZombieCountdown 僵尸的倒计时组
type ZombieCountdown struct {
	Butter int `json:"butter"` // 黄油定身
	Freeze int `json:"freeze"` // 冰冻
	Slow   int `json:"slow"`   // 减速
	Action int `json:"action"` // 当前状态/动作的计时
	Dead   int `json:"dead"`   // 死亡动画结束后的销毁倒计时
}

// ZombieGarlicTick 大蒜换行计时
type ZombieGarlicTick struct {
	A int `json:"a"`
	B int `json:"b"`
	C int `json:"c"`
}

// HitBoxSpec 相对僵尸坐标的判定框
type HitBoxSpec struct {
	X       int `json:"x"`
	Y       int `json:"y"`
	Width   int `json:"width"`
	Height  int `json:"height"`
	OffsetX int `json:"offset_x"`
	OffsetY int `json:"offset_y"`
}

// Zombie 僵尸实体
//
// X/Y 为连续坐标，IntX/IntY 是每帧同步的整数坐标，判定框基于整数坐标。
// MasterID/Partners 是弱引用（舞王与伴舞、蹦极与携带目标），
// 被引用方销毁后查找返回空，调用方必须按"无关联"处理。
type Zombie struct {
	ID     int                `json:"id"`
	Type   types.ZombieType   `json:"type"`
	Status types.ZombieStatus `json:"status"`
	Action types.ZombieAction `json:"action"`
	Row    int                `json:"row"`

	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	IntX int     `json:"int_x"`
	IntY int     `json:"int_y"`
	DX   float64 `json:"dx"`
	DY   float64 `json:"dy"`
	D2Y  float64 `json:"d2y"`

	HP    int `json:"hp"`
	MaxHP int `json:"max_hp"`

	Reanim    reanim.Reanimate `json:"reanimate"`
	Countdown ZombieCountdown  `json:"countdown"`

	HitBox    HitBoxSpec `json:"hit_box"`
	AttackBox HitBoxSpec `json:"attack_box"`

	IsEating   bool   `json:"is_eating"`
	IsDead     bool   `json:"is_dead"`
	IsHypno    bool   `json:"is_hypno"`
	IsInWater  bool   `json:"is_in_water"`
	IsBlown    bool   `json:"is_blown"`
	IsNotDying bool   `json:"is_not_dying"`
	HasBalloon bool   `json:"has_balloon"`
	MasterID   int    `json:"master_id"`
	Partners   [4]int `json:"partners"`

	TimeSinceSpawn     int              `json:"time_since_spawn"`
	TimeSinceAteGarlic int              `json:"time_since_ate_garlic"`
	HasEatenGarlic     bool             `json:"has_eaten_garlic"`
	GarlicTick         ZombieGarlicTick `json:"garlic_tick"`

	LadderCol    int `json:"ladder_col"`
	BungeeCol    int `json:"bungee_col"`
	BungeeTarget int `json:"bungee_target"`
	SpawnWave    int `json:"spawn_wave"`

	Accessory1      types.ZombieAccessories1 `json:"accessory_1"`
	Accessory1HP    int                      `json:"accessory_1_hp"`
	Accessory1MaxHP int                      `json:"accessory_1_max_hp"`
	Accessory2      types.ZombieAccessories2 `json:"accessory_2"`
	Accessory2HP    int                      `json:"accessory_2_hp"`
	Accessory2MaxHP int                      `json:"accessory_2_max_hp"`

	// HasItemOrWalkLeft 旗帜僵尸持旗 / 巨人背着小鬼 / 矿工与雪人的行走方向
	HasItemOrWalkLeft bool `json:"has_item_or_walk_left"`

	// SpecialCounter 投篮车剩余篮球数，舞王的召唤倒计时
	SpecialCounter int `json:"special_counter"`

	data   *config.ZombieData
	ground []float64
}

// NewZombie 按类型数据创建僵尸（尚未放入对象池与行索引）
func NewZombie(data *config.ZombieData, ground []float64, zt types.ZombieType, row int, x, y float64) *Zombie {
	z := &Zombie{
		ID:           -1,
		Type:         zt,
		Status:       types.ZombieStatusWalking,
		Row:          row,
		X:            x,
		Y:            y,
		IntX:         int(x),
		IntY:         int(y),
		DX:           data.DX,
		HP:           data.HP,
		MaxHP:        data.HP,
		IsNotDying:   true,
		MasterID:     -1,
		Partners:     [4]int{-1, -1, -1, -1},
		LadderCol:    -1,
		BungeeCol:    -1,
		BungeeTarget: -1,
		HitBox: HitBoxSpec{
			X: data.HitBox[0], Y: data.HitBox[1], Width: data.HitBox[2], Height: data.HitBox[3],
		},
		AttackBox: HitBoxSpec{
			X: data.AttackBox[0], Y: data.AttackBox[1], Width: data.AttackBox[2], Height: data.AttackBox[3],
		},
		Accessory1:      data.Accessory1,
		Accessory1HP:    data.Accessory1HP,
		Accessory1MaxHP: data.Accessory1HP,
		Accessory2:      data.Accessory2,
		Accessory2HP:    data.Accessory2HP,
		Accessory2MaxHP: data.Accessory2HP,
		data:            data,
	}
	if data.Ground {
		z.ground = ground
	}

	z.Reanim.PrevProgress = -1
	if data.Frames > 0 {
		z.Reanim.NFrames = data.Frames
		z.Reanim.FPS = data.FPS
	}
	return z
}

// SetID 实现 ecs.Identifiable
func (z *Zombie) SetID(id int) {
	z.ID = id
}

// Data 返回类型数据表
func (z *Zombie) Data() *config.ZombieData {
	return z.data
}

// HasReanim 是否有指定动画数据
func (z *Zombie) HasReanim(name types.ZombieReanimName) bool {
	_, ok := z.data.Anim(name)
	return ok
}

// SetReanimFrame 只切换帧区间
func (z *Zombie) SetReanimFrame(name types.ZombieReanimName) bool {
	r, ok := z.data.Anim(name)
	if !ok {
		return false
	}
	return z.Reanim.SetRange(r.Begin, r.Count)
}

// HasGround 是否按位移曲线计算行走距离
func (z *Zombie) HasGround() bool {
	return len(z.ground) > 0
}

// IsFlyingOrFalling 气球飞行或坠落中
func (z *Zombie) IsFlyingOrFalling() bool {
	return z.Status == types.ZombieStatusBalloonFlying || z.Status == types.ZombieStatusBalloonFalling
}

// HasDeathStatus 处于任一死亡状态
func (z *Zombie) HasDeathStatus() bool {
	return z.Status.IsDying()
}

// HasPogoStatus 跳跳僵尸持杆的各个状态
func (z *Zombie) HasPogoStatus() bool {
	return z.Status >= types.ZombieStatusPogoWithStick && z.Status <= types.ZombieStatusPogoForwardAcross2
}

// IsWalkRight 是否向右（房屋反方向）移动，判定框需要镜像
func (z *Zombie) IsWalkRight() bool {
	if z.IsHypno {
		return true
	}

	if z.Type == types.ZombieDigger {
		switch z.Status {
		case types.ZombieStatusDiggerDrill, types.ZombieStatusDiggerDizzy, types.ZombieStatusDiggerWalkRight:
			return true
		}
		if z.HasDeathStatus() {
			return z.HasItemOrWalkLeft
		}
		return false
	}

	return z.Type == types.ZombieYeti && !z.HasItemOrWalkLeft
}

// CanBeSlowed 是否可以被减速
func (z *Zombie) CanBeSlowed() bool {
	if z.Type == types.ZombieZomboni || z.IsDead || z.HasDeathStatus() || z.IsHypno {
		return false
	}
	switch z.Status {
	case types.ZombieStatusDiggerDig, types.ZombieStatusDiggerDrill, types.ZombieStatusDiggerLostDig,
		types.ZombieStatusDiggerLanding, types.ZombieStatusRisingFromGround, types.ZombieStatusDancingDancerSpawning:
		return false
	}
	return true
}

// CanBeFreezed 是否可以被冰冻（在可减速的基础上排除空中与跳跃状态）
func (z *Zombie) CanBeFreezed() bool {
	if !z.CanBeSlowed() {
		return false
	}
	switch z.Status {
	case types.ZombieStatusPoleVaultingJumping, types.ZombieStatusDolphinJumpInPool, types.ZombieStatusDolphinInJump,
		types.ZombieStatusSnorkelJumpInThePool, types.ZombieStatusImpFlying, types.ZombieStatusImpLanding,
		types.ZombieStatusBobsledCrashing:
		return false
	}
	if z.IsFlyingOrFalling() {
		return false
	}
	if z.Status >= types.ZombieStatusPogoWithStick && z.Status <= types.ZombieStatusPogoJumpAcross {
		return false
	}
	return z.Type != types.ZombieBungee || z.Status == types.ZombieStatusBungeeIdleAfterDrop
}

// noHeightBias HeightBias 的"无修正"返回值（<= -100 均视为无修正）
const noHeightBias = -200.0

// HeightBias 入水、出土等状态下判定框顶部的下沉量
func (z *Zombie) HeightBias() float64 {
	if z.Status == types.ZombieStatusRisingFromGround {
		if z.IsInWater {
			return -z.DY
		}
		return -z.DY + float64(min(z.Countdown.Action, 40))
	}

	if z.Type == types.ZombieDolphinRider {
		return z.dolphinHeightBias()
	}

	if z.Type == types.ZombieSnorkel {
		if z.Status == types.ZombieStatusSnorkelJumpInThePool && z.Reanim.Progress >= 0.800000011920929 {
			return -10
		}
		if z.IsInWater {
			return -z.DY - 5
		}
		return noHeightBias
	}

	if z.IsInWater {
		if z.IsEating {
			return -z.DY
		}
		return -z.DY - 7
	}

	if z.Status == types.ZombieStatusDancingDancerSpawning {
		return -z.DY
	}

	if (z.Status == types.ZombieStatusDiggerDrill || z.Status == types.ZombieStatusDiggerLanding) &&
		z.Countdown.Action > 20 {
		return -z.DY
	}

	return noHeightBias
}

func (z *Zombie) dolphinHeightBias() float64 {
	p := z.Reanim.Progress
	switch z.Status {
	case types.ZombieStatusDolphinJumpInPool:
		if p >= 0.56 && p <= 0.64999998 {
			return 0
		}
		if p >= 0.75 {
			return -z.DY - 10
		}
		return noHeightBias
	case types.ZombieStatusDolphinRide:
		if z.Action == types.ZombieActionCaughtByKelp {
			return -z.DY - 15
		}
		return -z.DY - 10
	case types.ZombieStatusDolphinInJump:
		if p <= 0.05999999865889549 {
			return -z.DY - 10
		}
		if p >= 0.5 && p <= 0.75999999 {
			return -13
		}
		return noHeightBias
	case types.ZombieStatusDying:
		return 44 - z.DY
	case types.ZombieStatusDolphinWalkInPool:
		if z.Action == types.ZombieActionCaughtByKelp {
			return 36 - z.DY
		}
		return noHeightBias
	case types.ZombieStatusDolphinWalkWithDolphin, types.ZombieStatusDolphinWalkWithoutDolphin:
		if z.Action == types.ZombieActionLeavingPool {
			return -z.DY
		}
		return noHeightBias
	}
	return noHeightBias
}

// absoluteRect 把相对判定框转换为绝对坐标，处理镜像与高度修正
func (z *Zombie) absoluteRect(x, y, w, h int) Rect {
	if z.IsWalkRight() {
		x = z.HitBox.OffsetX - w - x
	}
	x += z.IntX
	y += int(float64(z.IntY) - z.DY)

	if bias := z.HeightBias(); bias > -100 {
		h -= int(bias)
	}
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// HitBoxRect 受击判定框（绝对坐标）
func (z *Zombie) HitBoxRect() Rect {
	return z.absoluteRect(z.HitBox.X, z.HitBox.Y, z.HitBox.Width, z.HitBox.Height)
}

// AttackBoxRect 啃食判定框（绝对坐标）
// 撑杆跳与海豚跳跃中使用固定的大判定框
func (z *Zombie) AttackBoxRect() Rect {
	if z.Status == types.ZombieStatusPoleVaultingJumping || z.Status == types.ZombieStatusDolphinInJump {
		return z.absoluteRect(-40, 0, 100, 115)
	}
	return z.absoluteRect(z.AttackBox.X, z.AttackBox.Y, z.AttackBox.Width, z.AttackBox.Height)
}

// DXFromGround 由位移曲线计算本帧的水平位移
//
// 取当前帧与下一帧的累计位移差，乘以帧率得到每帧像素；
// 没有曲线或帧号越界时 ok 为 false，由调用方退回线性速度。
func (z *Zombie) DXFromGround() (dx float64, ok bool) {
	if len(z.ground) == 0 {
		return 0, false
	}
	fs := z.Reanim.FrameStatus()
	if fs.Frame < 0 || fs.NextFrame < 0 || fs.Frame >= len(z.ground) || fs.NextFrame >= len(z.ground) {
		return 0, false
	}
	return (z.ground[fs.NextFrame] - z.ground[fs.Frame]) * 0.01 * z.Reanim.FPS, true
}

// Ground 位移曲线（只读）
func (z *Zombie) Ground() []float64 {
	return z.ground
}
