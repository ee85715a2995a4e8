// Package ecs 提供实体存储与空间索引
//
// 实体按类型分池存放（植物、僵尸、子弹、场地物品），每个池分配整数 ID，
// 并模拟定长数组槽位的行为：销毁并回收后，ID 会按先进先出的顺序被复用。
package ecs

// Identifiable 可被对象池分配 ID 的实体
type Identifiable interface {
	SetID(id int)
}

// Pool 类型化的实体对象池
//
// 所有操作均为 O(1)（遍历除外），遍历总是按 ID 升序进行，
// 保证序列化和系统更新顺序与插入顺序无关。
type Pool[T Identifiable] struct {
	items   []T
	present []bool
	count   int

	// 待复用的 ID 队列（先进先出）
	freeIDs []int
	recycle bool
}

// NewPool 创建对象池
//
// 参数:
//   - recycle: 是否复用已移除实体的 ID
func NewPool[T Identifiable](recycle bool) *Pool[T] {
	return &Pool[T]{recycle: recycle}
}

// Add 添加实体并返回分配的 ID，同时写回实体自身的 ID 字段
func (p *Pool[T]) Add(obj T) int {
	var id int
	if p.recycle && len(p.freeIDs) > 0 {
		id = p.freeIDs[0]
		p.freeIDs = p.freeIDs[1:]
	} else {
		id = len(p.items)
		var zero T
		p.items = append(p.items, zero)
		p.present = append(p.present, false)
	}

	p.items[id] = obj
	p.present[id] = true
	p.count++
	obj.SetID(id)
	return id
}

// Get 按 ID 获取实体
func (p *Pool[T]) Get(id int) (T, bool) {
	if id < 0 || id >= len(p.items) || !p.present[id] {
		var zero T
		return zero, false
	}
	return p.items[id], true
}

// Has 判断 ID 是否存在
func (p *Pool[T]) Has(id int) bool {
	return id >= 0 && id < len(p.items) && p.present[id]
}

// Remove 移除实体；不存在的 ID 被忽略
func (p *Pool[T]) Remove(id int) {
	if !p.Has(id) {
		return
	}
	var zero T
	p.items[id] = zero
	p.present[id] = false
	p.count--
	if p.recycle {
		p.freeIDs = append(p.freeIDs, id)
	}
}

// Clear 清空对象池，ID 从 0 重新分配
func (p *Pool[T]) Clear() {
	p.items = p.items[:0]
	p.present = p.present[:0]
	p.freeIDs = p.freeIDs[:0]
	p.count = 0
}

// Len 存活实体数量
func (p *Pool[T]) Len() int {
	return p.count
}

// IDs 返回当前所有 ID 的快照（升序）
//
// 系统更新时应遍历快照，避免在更新中创建/移除实体影响迭代。
func (p *Pool[T]) IDs() []int {
	ids := make([]int, 0, p.count)
	for id, ok := range p.present {
		if ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// Items 返回当前所有实体的快照（按 ID 升序）
func (p *Pool[T]) Items() []T {
	items := make([]T, 0, p.count)
	for id, ok := range p.present {
		if ok {
			items = append(items, p.items[id])
		}
	}
	return items
}

// Sweep 清理所有被标记删除的实体
//
// 对应帧末的垃圾回收：先标记（isDead 返回 true），后统一移除。
// onRemove 在实体被移除前调用，可用于同步空间索引。
func (p *Pool[T]) Sweep(isDead func(T) bool, onRemove func(T)) int {
	removed := 0
	for id, ok := range p.present {
		if !ok || !isDead(p.items[id]) {
			continue
		}
		if onRemove != nil {
			onRemove(p.items[id])
		}
		p.Remove(id)
		removed++
	}
	return removed
}
