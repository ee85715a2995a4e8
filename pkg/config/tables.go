package config

import (
	"fmt"
	"sync"

	"github.com/decker502/pvzemu/pkg/types"
)

// ReanimRange 动画帧区间
type ReanimRange struct {
	Begin int
	Count int
}

// PlantData 单种植物的运行时数据（属性 + 动画）
type PlantData struct {
	PlantStats

	Frames     int
	FPS        float64
	PeaOffsets [][2]float64

	anims map[types.PlantReanimName]ReanimRange
}

// ZombieData 单种僵尸的运行时数据（属性 + 动画）
type ZombieData struct {
	HP           int
	DX           float64
	Accessory1   types.ZombieAccessories1
	Accessory1HP int
	Accessory2   types.ZombieAccessories2
	Accessory2HP int
	HitBox       [4]int
	AttackBox    [4]int

	Frames int
	FPS    float64
	Ground bool

	anims map[types.ZombieReanimName]ReanimRange
}

// Tables 模拟使用的全部静态数据，按类型整数索引
//
// 加载后只读，可在多个世界之间共享。
type Tables struct {
	plants       [types.PlantTypeCount]PlantData
	zombies      [types.ZombieTypeCount]ZombieData
	knownZombie  [types.ZombieTypeCount]bool
	commonGround []float64
}

var (
	defaultOnce   sync.Once
	defaultTables *Tables
	defaultErr    error
)

// DefaultTables 返回内置数据表（首次调用时加载）
//
// 内置数据随二进制一起编译，加载失败属于构建错误，直接 panic。
func DefaultTables() *Tables {
	defaultOnce.Do(func() {
		defaultTables, defaultErr = LoadTables()
	})
	if defaultErr != nil {
		panic(fmt.Sprintf("builtin data tables are invalid: %v", defaultErr))
	}
	return defaultTables
}

// LoadTables 从 embedded 数据源加载并组装全部数据表
func LoadTables() (*Tables, error) {
	plantReanim, err := LoadPlantReanimConfig(PlantReanimPath)
	if err != nil {
		return nil, err
	}
	zombieReanim, err := LoadZombieReanimConfig(ZombieReanimPath)
	if err != nil {
		return nil, err
	}
	plantStats, err := LoadPlantStats(PlantStatsPath)
	if err != nil {
		return nil, err
	}
	zombieStats, err := LoadZombieStats(ZombieStatsPath)
	if err != nil {
		return nil, err
	}
	return BuildTables(plantReanim, zombieReanim, plantStats, zombieStats)
}

// BuildTables 将按键名组织的配置转换为按类型索引的数据表
//
// 每一种植物类型都必须同时具备属性与动画数据；
// 僵尸属性缺失的类型视为不可生成。
func BuildTables(pr *PlantReanimConfig, zr *ZombieReanimConfig, ps *PlantStatsConfig, zs *ZombieStatsConfig) (*Tables, error) {
	t := &Tables{commonGround: zr.CommonGround}

	for key, stats := range ps.Plants {
		pt, err := types.ParsePlantType(key)
		if err != nil {
			return nil, fmt.Errorf("plant stats: %w", err)
		}
		t.plants[pt].PlantStats = stats
	}

	for key, data := range pr.Plants {
		pt, err := types.ParsePlantType(key)
		if err != nil {
			return nil, fmt.Errorf("plant reanim: %w", err)
		}
		d := &t.plants[pt]
		d.Frames = data.Frames
		d.FPS = data.FPS
		d.anims = make(map[types.PlantReanimName]ReanimRange, len(data.Anims))
		for name, r := range data.Anims {
			d.anims[types.PlantReanimName(name)] = ReanimRange{Begin: r[0], Count: r[1]}
		}
		for _, off := range data.PeaOffsets {
			d.PeaOffsets = append(d.PeaOffsets, [2]float64{off[0], off[1]})
		}
	}

	for pt := types.PlantType(0); pt < types.PlantTypeCount; pt++ {
		if t.plants[pt].HP == 0 {
			return nil, fmt.Errorf("plant %s: missing stats", pt)
		}
	}

	for key, stats := range zs.Zombies {
		zt, err := types.ParseZombieType(key)
		if err != nil {
			return nil, fmt.Errorf("zombie stats: %w", err)
		}
		d := &t.zombies[zt]
		d.HP = stats.HP
		d.DX = stats.DX
		if stats.Accessory1 != nil {
			if d.Accessory1, err = types.ParseAccessory1(stats.Accessory1.Type); err != nil {
				return nil, fmt.Errorf("zombie %s: %w", key, err)
			}
			d.Accessory1HP = stats.Accessory1.HP
		}
		if stats.Accessory2 != nil {
			if d.Accessory2, err = types.ParseAccessory2(stats.Accessory2.Type); err != nil {
				return nil, fmt.Errorf("zombie %s: %w", key, err)
			}
			d.Accessory2HP = stats.Accessory2.HP
		}
		copy(d.HitBox[:], stats.HitBox)
		copy(d.AttackBox[:], stats.AttackBox)
		t.knownZombie[zt] = true
	}

	for key, data := range zr.Zombies {
		zt, err := types.ParseZombieType(key)
		if err != nil {
			return nil, fmt.Errorf("zombie reanim: %w", err)
		}
		d := &t.zombies[zt]
		d.Frames = data.Frames
		d.FPS = data.FPS
		d.Ground = data.Ground
		d.anims = make(map[types.ZombieReanimName]ReanimRange, len(data.Anims))
		for name, r := range data.Anims {
			d.anims[types.ZombieReanimName(name)] = ReanimRange{Begin: r[0], Count: r[1]}
		}
	}

	return t, nil
}

// Plant 返回植物数据；无效类型返回 nil
func (t *Tables) Plant(pt types.PlantType) *PlantData {
	if !pt.IsValid() {
		return nil
	}
	return &t.plants[pt]
}

// Zombie 返回僵尸数据；未配置属性的类型返回 nil
func (t *Tables) Zombie(zt types.ZombieType) *ZombieData {
	if zt < 0 || int(zt) >= len(t.zombies) || !t.knownZombie[zt] {
		return nil
	}
	return &t.zombies[zt]
}

// PlantAnim 查询植物动画帧区间
// 数据缺失或帧数为 0 时返回 false
func (t *Tables) PlantAnim(pt types.PlantType, name types.PlantReanimName) (ReanimRange, bool) {
	if !pt.IsValid() {
		return ReanimRange{}, false
	}
	return t.plants[pt].Anim(name)
}

// ZombieAnim 查询僵尸动画帧区间
func (t *Tables) ZombieAnim(zt types.ZombieType, name types.ZombieReanimName) (ReanimRange, bool) {
	if zt < 0 || int(zt) >= len(t.zombies) {
		return ReanimRange{}, false
	}
	return t.zombies[zt].Anim(name)
}

// HasZombieGround 该僵尸是否使用 commonGround 位移曲线
func (t *Tables) HasZombieGround(zt types.ZombieType) bool {
	if zt < 0 || int(zt) >= len(t.zombies) {
		return false
	}
	return t.zombies[zt].Ground && len(t.commonGround) > 0
}

// CommonGround 行走位移曲线（只读）
func (t *Tables) CommonGround() []float64 {
	return t.commonGround
}

// PeaOffset 射手植物在指定帧的子弹发射偏移
func (t *Tables) PeaOffset(pt types.PlantType, frame int) ([2]float64, bool) {
	if !pt.IsValid() {
		return [2]float64{}, false
	}
	offsets := t.plants[pt].PeaOffsets
	if frame < 0 || frame >= len(offsets) {
		return [2]float64{}, false
	}
	return offsets[frame], true
}

// Anim 查询动画帧区间；数据缺失或帧数为 0 时返回 false
func (d *PlantData) Anim(name types.PlantReanimName) (ReanimRange, bool) {
	if d == nil {
		return ReanimRange{}, false
	}
	r, ok := d.anims[name]
	return r, ok && r.Count > 0
}

// Anim 查询动画帧区间；数据缺失或帧数为 0 时返回 false
func (d *ZombieData) Anim(name types.ZombieReanimName) (ReanimRange, bool) {
	if d == nil {
		return ReanimRange{}, false
	}
	r, ok := d.anims[name]
	return r, ok && r.Count > 0
}
