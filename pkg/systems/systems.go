package systems

import (
	"github.com/decker502/pvzemu/pkg/entities"
	"github.com/decker502/pvzemu/pkg/scene"
)

// Systems 一个场景的全部系统，按帧顺序调用
type Systems struct {
	Animator *ZombieAnimator
	Debuff   *DebuffSystem
	Damage   *DamageSystem

	GridItems   *GridItemSystem
	Plants      *PlantSystem
	Zombies     *ZombieSystem
	Projectiles *ProjectileSystem
	Cards       *PlantCardSystem
	Sun         *SunSpawnSystem
	Waves       *WaveSpawnSystem
	IcePath     *IcePathSystem

	stages []stage
}

// stage 帧流水线中的一个阶段，返回 true 时中止本帧
type stage struct {
	name   string
	update func() bool
}

func always(f func()) func() bool {
	return func() bool {
		f()
		return false
	}
}

// NewSystems 为场景创建全部系统
//
// 僵尸工厂的初始化回调在这里绑定到动画器，之后创建的僵尸都带有正确的动画与速度。
func NewSystems(s *scene.Scene, f *entities.Factories) *Systems {
	animator := NewZombieAnimator(s)
	f.Zombies.SetInitializer(animator.Init)

	debuff := NewDebuffSystem(animator)
	damage := NewDamageSystem(s, f, animator, debuff)

	sys := &Systems{
		Animator:    animator,
		Debuff:      debuff,
		Damage:      damage,
		GridItems:   NewGridItemSystem(s, f.GridItems),
		Plants:      NewPlantSystem(s, f, damage, animator),
		Zombies:     NewZombieSystem(s, f, damage, debuff, animator),
		Projectiles: NewProjectileSystem(s, f, damage, debuff),
		Cards:       NewPlantCardSystem(s),
		Sun:         NewSunSpawnSystem(s),
		Waves:       NewWaveSpawnSystem(s, f.Zombies),
		IcePath:     NewIcePathSystem(s),
	}
	sys.stages = []stage{
		{"grid_items", always(sys.GridItems.Update)},
		{"plants", always(sys.Plants.Update)},
		{"zombies", sys.Zombies.Update},
		{"projectiles", always(sys.Projectiles.Update)},
		{"cards", always(sys.Cards.Update)},
		{"sun", always(sys.Sun.Update)},
		{"waves", always(sys.Waves.Update)},
		{"ice_path", always(sys.IcePath.Update)},
		{"pool_countdown", always(sys.Waves.UpdatePoolCountdown)},
	}
	return sys
}

// StageNames 返回帧流水线各阶段的名称（按执行顺序）
func (sys *Systems) StageNames() []string {
	names := make([]string, len(sys.stages))
	for i, st := range sys.stages {
		names[i] = st.name
	}
	return names
}

// Update 执行一帧
//
// 顺序：场地物品、植物、僵尸（进家即结束）、子弹、卡槽、阳光、出怪、冰道、泳池潜伏抑制倒计时。
// 僵尸进家时本帧剩余阶段全部跳过。
//
// 返回:
//   - bool: 本帧有僵尸进家时返回 true
func (sys *Systems) Update() bool {
	for _, st := range sys.stages {
		if st.update() {
			return true
		}
	}
	return false
}
