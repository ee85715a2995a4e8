package entities

import (
	"testing"

	"github.com/decker502/pvzemu/pkg/components"
	"github.com/decker502/pvzemu/pkg/scene"
	"github.com/decker502/pvzemu/pkg/types"
)

// newTestScene 创建测试场景与工厂（固定种子）
func newTestScene(t *testing.T, st types.SceneType) (*scene.Scene, *Factories) {
	t.Helper()
	s := scene.New(st, 1, nil)
	return s, NewFactories(s)
}

// mustPlant 校验并种植，失败时终止测试
func mustPlant(t *testing.T, f *Factories, pt types.PlantType, row, col int) *components.Plant {
	t.Helper()
	if !f.Plants.CanPlant(pt, row, col, types.PlantNone) {
		t.Fatalf("Expected %s to be plantable at (%d, %d)", pt, row, col)
	}
	p := f.Plants.Create(pt, row, col, types.PlantNone)
	if p == nil {
		t.Fatalf("Failed to create %s at (%d, %d)", pt, row, col)
	}
	return p
}
