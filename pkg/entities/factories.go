package entities

import "github.com/decker502/pvzemu/pkg/scene"

// Factories 一个场景的全部实体工厂
type Factories struct {
	Plants      *PlantFactory
	Zombies     *ZombieFactory
	Projectiles *ProjectileFactory
	GridItems   *GridItemFactory
}

// NewFactories 为场景创建全部工厂
func NewFactories(s *scene.Scene) *Factories {
	plants := NewPlantFactory(s)
	return &Factories{
		Plants:      plants,
		Zombies:     NewZombieFactory(s),
		Projectiles: NewProjectileFactory(s),
		GridItems:   NewGridItemFactory(s, plants),
	}
}
