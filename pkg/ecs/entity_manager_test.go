package ecs

import "testing"

// 测试实体类型
type testEntity struct {
	ID   int
	Name string
	Dead bool
}

func (e *testEntity) SetID(id int) { e.ID = id }

func TestPoolAddAssignsID(t *testing.T) {
	p := NewPool[*testEntity](true)
	a := &testEntity{Name: "a"}
	b := &testEntity{Name: "b"}

	idA := p.Add(a)
	idB := p.Add(b)

	// ID 从 0 开始递增
	if idA != 0 || idB != 1 {
		t.Errorf("expected ids 0 and 1, got %d and %d", idA, idB)
	}

	// Add 会写回实体自身的 ID 字段
	if a.ID != idA || b.ID != idB {
		t.Errorf("entity id field not updated: a=%d b=%d", a.ID, b.ID)
	}

	if p.Len() != 2 {
		t.Errorf("expected len 2, got %d", p.Len())
	}
}

func TestPoolGetAndRemove(t *testing.T) {
	p := NewPool[*testEntity](true)
	id := p.Add(&testEntity{Name: "x"})

	got, ok := p.Get(id)
	if !ok || got.Name != "x" {
		t.Fatalf("expected to find entity x, got %v (ok=%v)", got, ok)
	}

	p.Remove(id)
	if _, ok := p.Get(id); ok {
		t.Error("entity should not be found after Remove")
	}

	// 重复移除与越界访问都应被安全忽略
	p.Remove(id)
	p.Remove(99)
	if _, ok := p.Get(-1); ok {
		t.Error("negative id should not be found")
	}
	if p.Len() != 0 {
		t.Errorf("expected len 0, got %d", p.Len())
	}
}

func TestPoolRecyclesIDsFIFO(t *testing.T) {
	p := NewPool[*testEntity](true)
	for i := 0; i < 4; i++ {
		p.Add(&testEntity{})
	}

	p.Remove(2)
	p.Remove(0)

	// 先释放的 ID 先被复用
	if id := p.Add(&testEntity{}); id != 2 {
		t.Errorf("expected recycled id 2, got %d", id)
	}
	if id := p.Add(&testEntity{}); id != 0 {
		t.Errorf("expected recycled id 0, got %d", id)
	}
	if id := p.Add(&testEntity{}); id != 4 {
		t.Errorf("expected fresh id 4, got %d", id)
	}
}

func TestPoolWithoutRecycle(t *testing.T) {
	p := NewPool[*testEntity](false)
	p.Add(&testEntity{})
	p.Remove(0)

	if id := p.Add(&testEntity{}); id != 1 {
		t.Errorf("expected id 1 without recycling, got %d", id)
	}
}

func TestPoolIterationIsAscending(t *testing.T) {
	p := NewPool[*testEntity](true)
	for i := 0; i < 5; i++ {
		p.Add(&testEntity{})
	}
	p.Remove(1)
	p.Remove(3)
	p.Add(&testEntity{Name: "reused"}) // 复用 ID 1

	ids := p.IDs()
	expected := []int{0, 1, 2, 4}
	if len(ids) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, ids)
	}
	for i := range expected {
		if ids[i] != expected[i] {
			t.Errorf("expected %v, got %v", expected, ids)
			break
		}
	}

	items := p.Items()
	if items[1].Name != "reused" {
		t.Errorf("expected reused entity at position 1, got %q", items[1].Name)
	}
}

func TestPoolSweep(t *testing.T) {
	p := NewPool[*testEntity](true)
	for i := 0; i < 4; i++ {
		p.Add(&testEntity{Dead: i%2 == 1})
	}

	var removed []int
	n := p.Sweep(func(e *testEntity) bool { return e.Dead }, func(e *testEntity) {
		removed = append(removed, e.ID)
	})

	if n != 2 || len(removed) != 2 || removed[0] != 1 || removed[1] != 3 {
		t.Errorf("expected ids [1 3] swept, got %v (n=%d)", removed, n)
	}
	if p.Len() != 2 {
		t.Errorf("expected 2 live entities, got %d", p.Len())
	}
}

func TestPoolClear(t *testing.T) {
	p := NewPool[*testEntity](true)
	p.Add(&testEntity{})
	p.Add(&testEntity{})
	p.Remove(0)
	p.Clear()

	if p.Len() != 0 {
		t.Errorf("expected empty pool, got %d", p.Len())
	}
	// 清空后从 0 重新分配
	if id := p.Add(&testEntity{}); id != 0 {
		t.Errorf("expected id 0 after clear, got %d", id)
	}
}
