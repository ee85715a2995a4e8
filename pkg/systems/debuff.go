package systems

import (
	"github.com/decker502/pvzemu/pkg/components"
)

const (
	// ButterCountdown 黄油定身时长
	ButterCountdown = 400

	// FreezeSlowCountdown 冰冻类伤害附带的减速时长
	FreezeSlowCountdown = 1000
)

// DebuffSystem 减速、冰冻、黄油等负面状态
//
// 每次状态变化后都要重算动画帧率，否则僵尸会以旧帧率继续行走。
type DebuffSystem struct {
	animator *ZombieAnimator
}

// NewDebuffSystem 创建负面状态系统
func NewDebuffSystem(animator *ZombieAnimator) *DebuffSystem {
	return &DebuffSystem{animator: animator}
}

// SetSlowed 施加减速；已减速时只延长到较大的剩余时间
func (d *DebuffSystem) SetSlowed(z *components.Zombie, countdown int) {
	if z.Countdown.Slow > 0 {
		z.Countdown.Slow = max(z.Countdown.Slow, countdown)
		return
	}
	z.Countdown.Slow = countdown
	d.animator.UpdateFPS(z)
}

// SetButter 施加黄油定身（重复命中只刷新时长）
func (d *DebuffSystem) SetButter(z *components.Zombie) {
	already := z.Countdown.Butter > 0
	z.Countdown.Butter = ButterCountdown
	if !already {
		d.animator.UpdateFPS(z)
	}
}

// RemoveFreeze 解除冰冻
func (d *DebuffSystem) RemoveFreeze(z *components.Zombie) {
	if z.Countdown.Freeze > 0 {
		z.Countdown.Freeze = 0
		d.animator.UpdateFPS(z)
	}
}

// RemoveSlow 解除减速
func (d *DebuffSystem) RemoveSlow(z *components.Zombie) {
	if z.Countdown.Slow > 0 {
		z.Countdown.Slow = 0
		d.animator.UpdateFPS(z)
	}
}

// RemoveButter 解除黄油
func (d *DebuffSystem) RemoveButter(z *components.Zombie) {
	if z.Countdown.Butter > 0 {
		z.Countdown.Butter = 0
		d.animator.UpdateFPS(z)
	}
}
