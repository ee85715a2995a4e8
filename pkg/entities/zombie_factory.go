package entities

import (
	"github.com/decker502/pvzemu/pkg/components"
	"github.com/decker502/pvzemu/pkg/ecs"
	"github.com/decker502/pvzemu/pkg/scene"
	"github.com/decker502/pvzemu/pkg/types"
	"github.com/decker502/pvzemu/pkg/utils"
)

const (
	// ZombieSpawnX 僵尸出生的基准 x 坐标（场地右边界）
	ZombieSpawnX = 800

	// ZombieSpawnJitter 出生 x 坐标的随机抖动范围
	ZombieSpawnJitter = 40

	// ZombieVerticalOffset 僵尸相对格子 y 坐标的上移量
	ZombieVerticalOffset = 30

	// balloonLift / pogoLift 气球与跳跳僵尸的额外抬升
	balloonLift = 30
	pogoLift    = 16

	// JackboxPopMin / JackboxPopJitter 小丑僵尸开盒时间
	JackboxPopMin    = 450
	JackboxPopJitter = 300

	// DancerMoonwalkCountdown 舞王入场太空步的持续帧数
	DancerMoonwalkCountdown = 300

	// CatapultBasketballs 投篮车携带的篮球数量
	CatapultBasketballs = 20

	// BungeeDropHeight 蹦极携带的僵尸开始下落的高度
	BungeeDropHeight = 600

	// lurkingNightDY / lurkingPoolDY 出土/出水前埋在地下的深度
	lurkingNightDY = -200
	lurkingPoolDY  = -150

	// lurkingNightAction / lurkingPoolAction 出土/出水动作时长
	lurkingNightAction = 150
	lurkingPoolAction  = 50
)

// ZombieFactory 僵尸工厂：出生行选择、创建与销毁
type ZombieFactory struct {
	scene  *scene.Scene
	onInit func(z *components.Zombie)
}

// NewZombieFactory 创建僵尸工厂
func NewZombieFactory(s *scene.Scene) *ZombieFactory {
	return &ZombieFactory{scene: s}
}

// SetInitializer 注册僵尸创建完成后的初始化回调（用于设置初始动画与速度）
func (f *ZombieFactory) SetInitializer(fn func(z *components.Zombie)) {
	f.onInit = fn
}

// Create 按出生规则加权选择一行并创建僵尸
//
// 参数:
//   - zt: 僵尸类型
//
// 返回:
//   - *components.Zombie: 创建的僵尸；该类型没有数据或没有可出生的行时返回 nil
func (f *ZombieFactory) Create(zt types.ZombieType) *components.Zombie {
	if f.scene.Tables.Zombie(zt) == nil {
		return nil
	}
	row, ok := f.spawnRow(zt)
	if !ok {
		return nil
	}
	x := float64(ZombieSpawnX + f.scene.RNG.Int(ZombieSpawnJitter))
	return f.CreateAt(zt, row, x)
}

// CreateAt 在指定行与 x 坐标创建僵尸，不消耗出生行权重
//
// 参数:
//   - zt: 僵尸类型
//   - row: 所在行
//   - x: 初始 x 坐标
//
// 返回:
//   - *components.Zombie: 创建的僵尸；类型无效或行越界时返回 nil
func (f *ZombieFactory) CreateAt(zt types.ZombieType, row int, x float64) *components.Zombie {
	data := f.scene.Tables.Zombie(zt)
	if data == nil || row < 0 || row >= f.scene.Rows {
		return nil
	}

	y := float64(utils.YByRowAndCol(f.scene.Type, row, utils.GridColumns) - ZombieVerticalOffset)

	var ground []float64
	if f.scene.Tables.HasZombieGround(zt) {
		ground = f.scene.Tables.CommonGround()
	}

	z := components.NewZombie(data, ground, zt, row, x, y)
	z.SpawnWave = f.scene.Spawn.Wave
	f.initStatus(z)

	f.scene.Zombies.Add(z)
	f.scene.ZombiesByRow.Add(row, z.ID)

	if f.onInit != nil {
		f.onInit(z)
	}
	return z
}

// initStatus 按类型设置初始状态
func (f *ZombieFactory) initStatus(z *components.Zombie) {
	switch z.Type {
	case types.ZombiePoleVaulting:
		z.Status = types.ZombieStatusPoleVaultingRunning
	case types.ZombieNewspaper:
		z.Status = types.ZombieStatusNewspaperWalking
	case types.ZombieFlag:
		z.HasItemOrWalkLeft = true
	case types.ZombieBalloon:
		z.Status = types.ZombieStatusBalloonFlying
		z.HasBalloon = true
	case types.ZombieDigger:
		z.Status = types.ZombieStatusDiggerDig
		z.HasItemOrWalkLeft = true
	case types.ZombieYeti:
		z.HasItemOrWalkLeft = true
	case types.ZombieJackInTheBox:
		z.Status = types.ZombieStatusJackboxWalking
		z.Countdown.Action = JackboxPopMin + f.scene.RNG.Int(JackboxPopJitter)
	case types.ZombieDancing:
		z.Status = types.ZombieStatusDancingMoonwalk
		z.Countdown.Action = DancerMoonwalkCountdown
	case types.ZombiePogo:
		z.Status = types.ZombieStatusPogoWithStick
	case types.ZombieSnorkel:
		z.Status = types.ZombieStatusSnorkelWalking
	case types.ZombieDolphinRider:
		z.Status = types.ZombieStatusDolphinWalkWithDolphin
	case types.ZombieLadder:
		z.Status = types.ZombieStatusLadderWalking
	case types.ZombieCatapult:
		z.SpecialCounter = CatapultBasketballs
	case types.ZombieBungee:
		z.Status = types.ZombieStatusBungeeTargetDrop
	case types.ZombieGargantuar, types.ZombieGigaGargantuar:
		z.HasItemOrWalkLeft = true
	}
}

// RestY 僵尸在指定行、当前 x 处的静止 y 坐标
//
// 换行或斜坡上行走时，僵尸每帧向该坐标靠拢 1 像素。
func RestY(st types.SceneType, z *components.Zombie, row int) float64 {
	y := utils.YByRowAndX(st, row, z.X+40) - ZombieVerticalOffset
	switch z.Type {
	case types.ZombieBalloon:
		y -= balloonLift
	case types.ZombiePogo:
		y -= pogoLift
	}
	return y
}

// CreateLurking 在场地中央生成潜伏僵尸
//
// 夜晚/泳池/浓雾：从地下（水下）升起；屋顶：由蹦极僵尸空投。
//
// 参数:
//   - zt: 僵尸类型
//   - row, col: 出现的格子
//
// 返回:
//   - *components.Zombie: 生成的僵尸（屋顶场景返回被空投的僵尸）；场景不支持时返回 nil
func (f *ZombieFactory) CreateLurking(zt types.ZombieType, row, col int) *components.Zombie {
	if !f.scene.ValidCell(row, col) {
		return nil
	}

	switch {
	case f.scene.Type.HasPool() || f.scene.Type == types.SceneNight:
		return f.createRising(zt, row, col)
	case f.scene.Type.IsRoof():
		return f.createBungeeDrop(zt, row, col)
	}
	return nil
}

func (f *ZombieFactory) createRising(zt types.ZombieType, row, col int) *components.Zombie {
	x := float64(utils.CellWidth*col + 15)
	z := f.CreateAt(zt, row, x)
	if z == nil {
		return nil
	}

	z.Y = float64(utils.YByRowAndCol(f.scene.Type, row, col))
	if f.scene.Type == types.SceneNight {
		z.DY = lurkingNightDY
		z.Countdown.Action = lurkingNightAction
	} else {
		z.DY = lurkingPoolDY
		z.Countdown.Action = lurkingPoolAction
		z.IsInWater = f.scene.IsWaterGrid(row, col)
	}
	z.Action = types.ZombieActionNone
	z.Status = types.ZombieStatusRisingFromGround
	z.IntX, z.IntY = int(z.X), int(z.Y)
	return z
}

func (f *ZombieFactory) createBungeeDrop(zt types.ZombieType, row, col int) *components.Zombie {
	bx := float64(utils.CellWidth*col + 40)
	bungee := f.CreateAt(types.ZombieBungee, row, bx)
	target := f.CreateAt(zt, row, bx-15)
	if bungee == nil || target == nil {
		if bungee != nil {
			f.Destroy(bungee)
		}
		if target != nil {
			f.Destroy(target)
		}
		return nil
	}

	bungee.Y = -100
	bungee.IntY = -100
	bungee.BungeeCol = col
	bungee.MasterID = target.ID
	target.MasterID = bungee.ID

	target.Action = types.ZombieActionFallFromSky
	target.DY = BungeeDropHeight
	return target
}

// Destroy 标记僵尸死亡，行索引在帧末回收时同步移除
func (f *ZombieFactory) Destroy(z *components.Zombie) {
	if z == nil || z.IsDead {
		return
	}
	z.IsDead = true
}

// CanSpawnAtRow 僵尸类型能否在指定行出生
func (f *ZombieFactory) CanSpawnAtRow(zt types.ZombieType, row int) bool {
	if row < 0 || row >= f.scene.Rows {
		return false
	}

	pool := f.scene.Type.HasPool()
	landRow := row == 0 || row == 1 || row == 4 || row == 5

	switch zt {
	case types.ZombieBasic, types.ZombieFlag, types.ZombieConeHead, types.ZombieBucketHead,
		types.ZombieBalloon, types.ZombieBungee:
		return !pool || landRow || f.scene.Spawn.Wave >= 5
	case types.ZombiePoleVaulting, types.ZombieNewspaper, types.ZombieScreenDoor, types.ZombieFootball,
		types.ZombieJackInTheBox, types.ZombieBackupDancer, types.ZombieDigger, types.ZombieZomboni,
		types.ZombiePogo, types.ZombieYeti, types.ZombieLadder, types.ZombieCatapult,
		types.ZombieGargantuar, types.ZombieImp, types.ZombieGigaGargantuar:
		return !pool || landRow
	case types.ZombieDancing:
		switch {
		case f.scene.Type == types.SceneDay || f.scene.Type == types.SceneNight:
			return row >= 1 && row <= 3
		case pool:
			return landRow
		}
		return false
	case types.ZombieDuckyTube, types.ZombieSnorkel, types.ZombieDolphinRider:
		return pool && (row == 2 || row == 3)
	}
	return false
}

// spawnRow 按平滑权重选择出生行
//
// 每行的基础权重为 1/可出生行数，再按距上次在该行出生的间隔（C、D 两个计数）
// 调整，使连续出生在同一行的概率降低。
func (f *ZombieFactory) spawnRow(zt types.ZombieType) (int, bool) {
	rr := &f.scene.Spawn.RowRandom

	sigma := 0.0
	for i := 0; i < ecs.MaxRows; i++ {
		if f.CanSpawnAtRow(zt, i) {
			rr[i].B = 1
			sigma++
		} else {
			rr[i].B = 0
		}
	}
	if sigma == 0 {
		return 0, false
	}

	weights := make([]float64, ecs.MaxRows)
	for i := range weights {
		if rr[i].B == 0 {
			continue
		}
		w := rr[i].B / sigma
		val := (6*rr[i].C*w+6*w-3)/4 + (rr[i].D*w+w-1)/4
		weights[i] = w * min(max(val, 0.01), 100)
	}

	row := f.scene.RNG.Weighted(weights)

	for i := range rr {
		if rr[i].B > 0 {
			rr[i].C++
			rr[i].D++
		}
	}
	rr[row].D = rr[row].C
	rr[row].C = 0
	return row, true
}
