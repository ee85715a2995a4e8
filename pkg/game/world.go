package game

import (
	"fmt"
	"log"

	"github.com/decker502/pvzemu/pkg/components"
	"github.com/decker502/pvzemu/pkg/config"
	"github.com/decker502/pvzemu/pkg/entities"
	"github.com/decker502/pvzemu/pkg/scene"
	"github.com/decker502/pvzemu/pkg/systems"
	"github.com/decker502/pvzemu/pkg/types"
)

// World 一场战斗的对外入口
//
// 持有场景、工厂与全部系统，按固定顺序推进帧。World 不是并发安全的，
// 所有调用必须来自同一个 goroutine。
type World struct {
	scene     *scene.Scene
	factories *entities.Factories
	systems   *systems.Systems

	tables *config.Tables
	seed   int64

	// Debug 开启后每帧校验场景一致性，并记录生命周期日志
	Debug bool

	err error
}

// New 创建战斗世界
//
// 参数:
//   - st: 场景类型
//   - seed: 随机种子；相同种子与相同操作序列产生相同结果
func New(st types.SceneType, seed int64) *World {
	return NewWithTables(st, seed, nil)
}

// NewWithTables 使用指定的数据表创建战斗世界（nil 使用内置数据）
func NewWithTables(st types.SceneType, seed int64, tables *config.Tables) *World {
	w := &World{tables: tables, seed: seed}
	w.init(st)
	return w
}

func (w *World) init(st types.SceneType) {
	w.scene = scene.New(st, w.seed, w.tables)
	w.factories = entities.NewFactories(w.scene)
	w.systems = systems.NewSystems(w.scene, w.factories)
	w.systems.Waves.Debug = w.Debug
	w.err = nil
}

// Reset 以原种子重新初始化世界
func (w *World) Reset(st types.SceneType) {
	w.init(st)
	w.logf("[World] Reset to %s (seed=%d)", st, w.seed)
}

// SetDebug 切换调试模式（同时影响出怪日志）
func (w *World) SetDebug(debug bool) {
	w.Debug = debug
	w.systems.Waves.Debug = debug
}

func (w *World) logf(format string, args ...any) {
	if w.Debug {
		log.Printf(format, args...)
	}
}

// Scene 返回底层场景（测试与工具读取状态用）
func (w *World) Scene() *scene.Scene {
	return w.scene
}

// Systems 返回全部系统
func (w *World) Systems() *systems.Systems {
	return w.systems
}

// Seed 返回创建世界时的随机种子
func (w *World) Seed() int64 {
	return w.seed
}

// Err 返回一致性校验失败的错误；非 nil 时世界已损坏，不再推进
func (w *World) Err() error {
	return w.err
}

// Update 推进一帧
//
// 返回:
//   - bool: 游戏是否已经结束（本帧或之前有僵尸进家）
func (w *World) Update() bool {
	if w.scene.IsGameOver || w.err != nil {
		return true
	}

	w.scene.Clock++
	w.scene.ZombieDancingClock++

	// 进家的那一帧不回收死亡实体，最终快照保留本帧死亡的实体
	if w.systems.Update() {
		w.scene.IsGameOver = true
		w.logf("[World] Game over at tick %d", w.scene.Clock)
		return true
	}

	w.scene.CollectGarbage()

	if w.Debug {
		if err := w.scene.CheckInvariants(); err != nil {
			w.err = fmt.Errorf("tick %d: %w", w.scene.Clock, err)
			log.Printf("[World] %v", w.err)
			return true
		}
	}
	return false
}

// Step 推进最多 n 帧，游戏结束时提前返回
//
// 返回:
//   - bool: 游戏是否已经结束
func (w *World) Step(n int) bool {
	for i := 0; i < n; i++ {
		if w.Update() {
			return true
		}
	}
	return w.scene.IsGameOver || w.err != nil
}

// Plant 校验并种植，扣除阳光
//
// 参数:
//   - pt: 植物类型
//   - row, col: 目标格子
//
// 返回:
//   - *components.Plant: 种下的植物；位置无效、被占用或阳光不足时返回 nil
func (w *World) Plant(pt types.PlantType, row, col int) *components.Plant {
	return w.plant(pt, row, col, types.PlantNone)
}

// PlantImitater 种植以 target 为目标的模仿者
func (w *World) PlantImitater(target types.PlantType, row, col int) *components.Plant {
	return w.plant(types.PlantImitater, row, col, target)
}

func (w *World) plant(pt types.PlantType, row, col int, imitater types.PlantType) *components.Plant {
	plants := w.factories.Plants
	if !plants.CanPlant(pt, row, col, imitater) {
		return nil
	}
	if !w.scene.Sun.SpendSun(plants.Cost(pt)) {
		return nil
	}
	return plants.Create(pt, row, col, imitater)
}

// SetCard 设置卡槽
//
// 参数:
//   - i: 卡槽下标 [0, CardCount)
//   - pt: 植物类型
//   - imitater: 模仿者卡片的目标类型，非模仿者卡片传 PlantNone
//
// 返回:
//   - error: 下标越界时返回错误
func (w *World) SetCard(i int, pt, imitater types.PlantType) error {
	if i < 0 || i >= scene.CardCount {
		return fmt.Errorf("card index %d out of range [0, %d)", i, scene.CardCount)
	}
	w.scene.Cards[i] = scene.CardData{Type: pt, ImitaterType: imitater}
	return nil
}

// PlantCard 使用卡槽种植，成功后开始冷却
//
// 返回:
//   - *components.Plant: 种下的植物；卡槽冷却中或种植失败时返回 nil
func (w *World) PlantCard(i, row, col int) *components.Plant {
	if !w.systems.Cards.Ready(i) {
		return nil
	}
	card := w.scene.Cards[i]

	var p *components.Plant
	if card.Type == types.PlantImitater {
		p = w.plant(types.PlantImitater, row, col, card.ImitaterType)
	} else {
		p = w.plant(card.Type, row, col, types.PlantNone)
	}
	if p != nil {
		w.systems.Cards.StartCooldown(i)
	}
	return p
}

// Spawn 在指定行与 x 坐标直接生成僵尸，绕过出怪逻辑
func (w *World) Spawn(zt types.ZombieType, row int, x float64) *components.Zombie {
	return w.factories.Zombies.CreateAt(zt, row, x)
}

// SpawnLurking 在格子上生成从地下冒出（屋顶为蹦极空投）的僵尸
func (w *World) SpawnLurking(zt types.ZombieType, row, col int) *components.Zombie {
	return w.factories.Zombies.CreateLurking(zt, row, col)
}

// RemovePlant 铲除格子上的一株植物
//
// 优先级：南瓜头、主体植物、底座、咖啡豆。
//
// 返回:
//   - bool: 格子上有植物被铲除时返回 true
func (w *World) RemovePlant(row, col int) bool {
	plants := w.factories.Plants.PlantsAt(row, col)
	if len(plants) == 0 {
		return false
	}
	w.factories.Plants.Destroy(plants[0])
	return true
}

// LaunchCob 让格子上的玉米炮向 (x, y) 发射
//
// 返回:
//   - bool: 格子上有已装填的玉米炮时返回 true
func (w *World) LaunchCob(row, col, x, y int) bool {
	for _, p := range w.factories.Plants.PlantsAt(row, col) {
		if p.Type == types.PlantCobCannon {
			return w.systems.Plants.LaunchCob(p, x, y)
		}
	}
	return false
}

// AddGridItem 在格子上放置墓碑、弹坑或梯子
func (w *World) AddGridItem(gt types.GridItemType, row, col int) *components.GridItem {
	return w.factories.GridItems.Create(gt, row, col)
}
