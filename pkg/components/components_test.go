package components

import (
	"testing"

	"github.com/decker502/pvzemu/pkg/config"
	"github.com/decker502/pvzemu/pkg/types"
)

func newTestZombie(t *testing.T, zt types.ZombieType, x float64) *Zombie {
	t.Helper()
	tables := config.DefaultTables()
	data := tables.Zombie(zt)
	if data == nil {
		t.Fatalf("no table data for zombie %v", zt)
	}
	z := NewZombie(data, tables.CommonGround(), zt, 2, x, 250)
	z.SetID(0)
	return z
}

func newTestPlant(t *testing.T, pt types.PlantType) *Plant {
	t.Helper()
	data := config.DefaultTables().Plant(pt)
	if data == nil {
		t.Fatalf("no table data for plant %v", pt)
	}
	p := NewPlant(data, pt, 2, 3, 280, 280)
	p.SetID(0)
	return p
}
