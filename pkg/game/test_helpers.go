package game

import (
	"testing"

	"github.com/decker502/pvzemu/pkg/types"
)

// newTestWorld 创建关闭出怪的测试世界（固定种子）
func newTestWorld(t *testing.T, st types.SceneType) *World {
	t.Helper()
	w := New(st, 1)
	w.Scene().StopSpawn = true
	return w
}

// mustToJSON 序列化世界，失败时终止测试
func mustToJSON(t *testing.T, w *World) string {
	t.Helper()
	s, err := w.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	return s
}
