package systems

import (
	"github.com/decker502/pvzemu/pkg/components"
	"github.com/decker502/pvzemu/pkg/scene"
	"github.com/decker502/pvzemu/pkg/types"
)

const (
	// SlowFactor 减速状态下的位移倍率
	SlowFactor = 0.4000000059604645

	// defaultZombieFPS 无位移曲线时的默认行走帧率
	defaultZombieFPS = 12.0

	// groundFPSScale 由位移曲线反推行走帧率的比例系数
	groundFPSScale = 47.0
)

// ZombieAnimator 僵尸动画与速度规则
//
// 僵尸的行走速度与动画帧率互相耦合：行走类动画的帧率由 dx 和位移曲线反推，
// 冰冻/黄油时帧率归零，减速时帧率减半。所有修改僵尸动画的地方都通过这里。
type ZombieAnimator struct {
	scene *scene.Scene
}

// NewZombieAnimator 创建僵尸动画规则
func NewZombieAnimator(s *scene.Scene) *ZombieAnimator {
	return &ZombieAnimator{scene: s}
}

// Init 僵尸创建后的初始化：按初始状态选择动画与速度
func (a *ZombieAnimator) Init(z *components.Zombie) {
	a.UpdateDX(z, false)

	switch {
	case z.Status == types.ZombieStatusPoleVaultingRunning:
		a.SetReanim(z, types.ZombieAnimRun, types.ReanimRepeat, 0)
	case z.Status == types.ZombieStatusDiggerDig:
		a.SetReanim(z, types.ZombieAnimDig, types.ReanimRepeat, 0)
	case z.Status == types.ZombieStatusDancingMoonwalk:
		a.SetReanim(z, types.ZombieAnimMoonwalk, types.ReanimRepeat, 0)
	case z.Status == types.ZombieStatusPogoWithStick:
		a.SetReanim(z, types.ZombieAnimPogo, types.ReanimRepeat, 0)
	case z.Status == types.ZombieStatusDolphinWalkWithDolphin:
		a.SetReanim(z, types.ZombieAnimWalkDolphin, types.ReanimRepeat, 0)
	case z.Status == types.ZombieStatusBungeeTargetDrop:
		a.SetReanim(z, types.ZombieAnimDrop, types.ReanimRepeat, 0)
	case z.Status == types.ZombieStatusBalloonFlying:
		a.SetReanim(z, types.ZombieAnimIdle, types.ReanimRepeat, 0)
	case z.Type == types.ZombieZomboni:
		a.SetReanim(z, types.ZombieAnimDrive, types.ReanimRepeat, 0)
	default:
		a.UpdateStatus(z)
	}
}

// IsSlowed 是否处于减速（舞王与伴舞共享减速状态）
func (a *ZombieAnimator) IsSlowed(z *components.Zombie) bool {
	if z.Countdown.Slow > 0 {
		return true
	}

	var leader *components.Zombie
	switch z.Type {
	case types.ZombieBackupDancer:
		leader = a.scene.Zombie(z.MasterID)
		if leader == nil {
			return false
		}
		if leader.Countdown.Slow > 0 {
			return true
		}
	case types.ZombieDancing:
		leader = z
	default:
		return false
	}

	for _, id := range leader.Partners {
		if t := a.scene.Zombie(id); t != nil && t.Countdown.Slow > 0 {
			return true
		}
	}
	return false
}

// isHeld 被定身（啃食、冰冻、黄油）
func isHeld(z *components.Zombie) bool {
	return z.IsEating || z.Countdown.Butter > 0 || z.Countdown.Freeze > 0
}

// IsNotMovable 当前帧是否不能水平移动
//
// 舞王与伴舞是一个整体：任一成员被定身，整个舞团都停下。
func (a *ZombieAnimator) IsNotMovable(z *components.Zombie) bool {
	if isHeld(z) || z.Type == types.ZombieBungee || z.Action == types.ZombieActionFallFromSky {
		return true
	}

	switch z.Status {
	case types.ZombieStatusJackboxPop, types.ZombieStatusNewspaperDestroyed,
		types.ZombieStatusGargantuarThrow, types.ZombieStatusGargantuarSmash,
		types.ZombieStatusCatapultShoot, types.ZombieStatusCatapultIdle,
		types.ZombieStatusDiggerDrill, types.ZombieStatusDiggerLostDig,
		types.ZombieStatusDiggerLanding, types.ZombieStatusDiggerDizzy,
		types.ZombieStatusDancingPoint, types.ZombieStatusDancingWaitSummoning,
		types.ZombieStatusDancingSummoning, types.ZombieStatusDancingDancerSpawning,
		types.ZombieStatusDancingArmrise1, types.ZombieStatusDancingArmrise2,
		types.ZombieStatusDancingArmrise3, types.ZombieStatusDancingArmrise4,
		types.ZombieStatusDancingArmrise5,
		types.ZombieStatusImpFlying, types.ZombieStatusImpLanding, types.ZombieStatusLadderPlacing:
		return true
	}

	var leader *components.Zombie
	switch z.Type {
	case types.ZombieDancing:
		leader = z
	case types.ZombieBackupDancer:
		leader = a.scene.Zombie(z.MasterID)
	}
	if leader == nil {
		return false
	}
	if isHeld(leader) {
		return true
	}
	for _, id := range leader.Partners {
		if t := a.scene.Zombie(id); t != nil && isHeld(t) {
			return true
		}
	}
	return false
}

// PredictAfter 预测 cs 帧后僵尸受击框中心的 x 坐标（投手与杨桃瞄准用）
func (a *ZombieAnimator) PredictAfter(z *components.Zombie, cs float64) float64 {
	dx := z.DX
	if z.Countdown.Slow > 0 {
		dx *= SlowFactor
	}
	if z.IsWalkRight() {
		dx = -dx
	}
	if a.IsNotMovable(z) {
		dx = 0
	}

	r := z.HitBoxRect()
	return float64(r.X) + float64(r.Width)/2 - dx*cs
}

// UpdateDX 按类型和状态重新抽取基础速度
//
// 参数:
//   - z: 僵尸
//   - updateFPS: 是否同时重算动画帧率
func (a *ZombieAnimator) UpdateDX(z *components.Zombie, updateFPS bool) {
	rng := a.scene.RNG

	switch {
	case z.Status == types.ZombieStatusSnorkelSwim:
		z.DX = 0.30000001
	case z.Status == types.ZombieStatusDiggerWalkRight:
		z.DX = 0.12
	case z.Status == types.ZombieStatusYetiEscape || z.Type == types.ZombieYeti:
		z.DX = 0.40000001
	case z.Type == types.ZombieDancing || z.Type == types.ZombieBackupDancer ||
		z.Type == types.ZombiePogo || z.Type == types.ZombieFlag:
		z.DX = 0.44999999
	case z.Status == types.ZombieStatusDiggerDig || z.Status == types.ZombieStatusPoleVaultingRunning ||
		z.Type == types.ZombieFootball || z.Type == types.ZombieSnorkel || z.Type == types.ZombieJackInTheBox:
		z.DX = rng.Float(0.66000003, 0.68000001)
	case z.Status == types.ZombieStatusLadderWalking:
		z.DX = rng.Float(0.79000002, 0.81)
	case z.Status == types.ZombieStatusNewspaperRunning || z.Status == types.ZombieStatusDolphinWalkWithDolphin ||
		z.Status == types.ZombieStatusDolphinWalkWithoutDolphin:
		z.DX = rng.Float(0.88999999, 0.91000003)
	case z.Type == types.ZombieZomboni || z.Type == types.ZombieCatapult:
		z.DX = z.Data().DX
	default:
		z.DX = rng.Float(0.23, 0.37)
		if z.DX >= 0.3 {
			z.GarlicTick.A = 15
		} else {
			z.GarlicTick.A = 12
		}
	}

	if updateFPS {
		a.UpdateFPS(z)
	}
}

func (a *ZombieAnimator) setFPS(z *components.Zombie, fps float64) {
	if a.IsSlowed(z) {
		fps *= 0.5
	}
	z.Reanim.FPS = fps
}

// UpdateFPS 根据定身、啃食、减速与位移曲线重算动画帧率
func (a *ZombieAnimator) UpdateFPS(z *components.Zombie) {
	r := &z.Reanim
	if r.PrevFPS == 0 {
		if r.FPS != 0 {
			r.PrevFPS = r.FPS
		} else {
			r.PrevFPS = defaultZombieFPS
		}
	}

	if z.Countdown.Freeze > 0 || z.Countdown.Butter > 0 || (z.HasEatenGarlic && z.TimeSinceAteGarlic < 170) {
		a.setFPS(z, 0)
		return
	}

	if z.Status == types.ZombieStatusSnorkelUpToEat || z.Status == types.ZombieStatusSnorkelFinishedEat ||
		z.HasDeathStatus() || z.IsDead {
		a.setFPS(z, r.PrevFPS)
		return
	}

	if z.IsEating {
		switch z.Type {
		case types.ZombiePoleVaulting, types.ZombieBalloon, types.ZombieImp, types.ZombieDigger,
			types.ZombieJackInTheBox, types.ZombieSnorkel, types.ZombieYeti:
			a.setFPS(z, 20)
		default:
			a.setFPS(z, 36)
		}
		return
	}

	if a.IsNotMovable(z) || z.Type == types.ZombieCatapult ||
		z.Status == types.ZombieStatusDolphinRide || z.Status == types.ZombieStatusSnorkelSwim {
		a.setFPS(z, r.PrevFPS)
		return
	}

	if ground := z.Ground(); len(ground) > 0 && r.BeginFrame+r.NFrames < len(ground) {
		d := ground[r.BeginFrame+r.NFrames-1] - ground[r.BeginFrame]
		if d >= 0.000001 {
			a.setFPS(z, float64(r.NFrames)/d*z.DX*groundFPSScale)
			return
		}
	}
	a.setFPS(z, defaultZombieFPS)
}

// SetReanim 切换僵尸动画并从头播放
//
// fps 为 0 时由 UpdateFPS 推算帧率；非 0 时使用给定帧率（减速时减半）。
// 该类型没有此动画时不做任何修改。
func (a *ZombieAnimator) SetReanim(z *components.Zombie, name types.ZombieReanimName, mode types.ReanimType, fps float64) {
	if !z.HasReanim(name) {
		return
	}

	r := &z.Reanim
	if fps != 0 {
		r.FPS = fps
	}
	z.SetReanimFrame(name)
	r.Type = mode
	r.NRepeated = 0
	if r.FPS >= 0 {
		r.Progress = 0
	} else {
		r.Progress = 0.99999988
	}
	r.PrevProgress = -1

	if fps != 0 {
		r.PrevFPS = fps
		a.setFPS(z, fps)
		return
	}
	a.UpdateFPS(z)
}

// UpdateStatus 重新抽取速度并按所处环境选择行走类动画
func (a *ZombieAnimator) UpdateStatus(z *components.Zombie) {
	a.UpdateDX(z, false)

	switch {
	case z.Status == types.ZombieStatusLadderWalking:
		a.SetReanim(z, types.ZombieAnimLadderWalk, types.ReanimRepeat, 0)
	case z.Status == types.ZombieStatusNewspaperRunning:
		a.SetReanim(z, types.ZombieAnimWalkNoPaper, types.ReanimRepeat, 0)
	case z.IsInWater && z.Action != types.ZombieActionEnteringPool && z.Action != types.ZombieActionLeavingPool &&
		z.HasReanim(types.ZombieAnimSwim):
		a.SetReanim(z, types.ZombieAnimSwim, types.ReanimRepeat, 0)
	case a.scene.IsZombieDance && isDanceableType(z.Type):
		a.SetReanim(z, types.ZombieAnimDance, types.ReanimRepeat, 0)
	default:
		if (z.Type != types.ZombieFlag && a.scene.RNG.Int(2) != 0) || !z.HasReanim(types.ZombieAnimWalk2) {
			a.SetReanim(z, types.ZombieAnimWalk, types.ReanimRepeat, 0)
		} else {
			a.SetReanim(z, types.ZombieAnimWalk2, types.ReanimRepeat, 0)
		}
	}
}

func isDanceableType(zt types.ZombieType) bool {
	return zt == types.ZombieBasic || zt == types.ZombieConeHead || zt == types.ZombieBucketHead
}
