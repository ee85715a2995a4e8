package entities

import (
	"github.com/decker502/pvzemu/pkg/components"
	"github.com/decker502/pvzemu/pkg/scene"
	"github.com/decker502/pvzemu/pkg/types"
)

const (
	// PeaSpeed 豌豆类子弹的水平速度（像素/帧）
	PeaSpeed = 3.33

	// LobSpeed 投手类子弹的默认水平速度
	LobSpeed = 2.0

	// ProjectileShadowOffset 子弹影子相对子弹的初始下移量
	ProjectileShadowOffset = 67.0
)

// ProjectileFactory 子弹工厂
type ProjectileFactory struct {
	scene *scene.Scene
}

// NewProjectileFactory 创建子弹工厂
func NewProjectileFactory(s *scene.Scene) *ProjectileFactory {
	return &ProjectileFactory{scene: s}
}

// Create 创建子弹并放入对象池
//
// 参数:
//   - pt: 子弹类型
//   - row: 所在行
//   - x, y: 发射点
//
// 返回:
//   - *components.Projectile: 创建的子弹，运动参数由发射方继续设置
func (f *ProjectileFactory) Create(pt types.ProjectileType, row int, x, y float64) *components.Projectile {
	p := components.NewProjectile(pt, row, x, y)
	p.ShadowY = y + ProjectileShadowOffset

	switch pt {
	case types.ProjectilePea, types.ProjectileSnowPea, types.ProjectileFirePea:
		p.DX = PeaSpeed
	case types.ProjectileCabbage, types.ProjectileMelon, types.ProjectileWinterMelon,
		types.ProjectileKernel, types.ProjectileButter:
		p.Motion = types.MotionParabola
		p.DX = LobSpeed
	}
	p.Flags = types.AttackGround | types.AttackDyingZombies

	f.scene.Projectiles.Add(p)
	return p
}

// Destroy 标记子弹消失
func (f *ProjectileFactory) Destroy(p *components.Projectile) {
	if p == nil {
		return
	}
	p.IsDisappeared = true
}
