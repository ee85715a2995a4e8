package ecs

import "sort"

// MaxRows 最宽场景（泳池/浓雾）的行数
const MaxRows = 6

// RowIndex 按行划分的僵尸 ID 索引
//
// 每行保存一个升序 ID 列表。所有改变僵尸所在行的路径（创建、换行、销毁）
// 都必须先移除再插入，索引与僵尸的 Row 字段始终同步。
type RowIndex struct {
	rows [MaxRows][]int
}

// NewRowIndex 创建空索引
func NewRowIndex() *RowIndex {
	return &RowIndex{}
}

func validRow(row int) bool {
	return row >= 0 && row < MaxRows
}

// Add 将 ID 加入指定行（重复添加无效果）
func (ri *RowIndex) Add(row, id int) {
	if !validRow(row) {
		return
	}
	ids := ri.rows[row]
	i := sort.SearchInts(ids, id)
	if i < len(ids) && ids[i] == id {
		return
	}
	ids = append(ids, 0)
	copy(ids[i+1:], ids[i:])
	ids[i] = id
	ri.rows[row] = ids
}

// Remove 将 ID 从指定行移除（不存在则忽略）
func (ri *RowIndex) Remove(row, id int) {
	if !validRow(row) {
		return
	}
	ids := ri.rows[row]
	i := sort.SearchInts(ids, id)
	if i < len(ids) && ids[i] == id {
		ri.rows[row] = append(ids[:i], ids[i+1:]...)
	}
}

// Move 把 ID 从 from 行移到 to 行
func (ri *RowIndex) Move(from, to, id int) {
	ri.Remove(from, id)
	ri.Add(to, id)
}

// Contains 判断 ID 是否在指定行
func (ri *RowIndex) Contains(row, id int) bool {
	if !validRow(row) {
		return false
	}
	ids := ri.rows[row]
	i := sort.SearchInts(ids, id)
	return i < len(ids) && ids[i] == id
}

// Row 返回指定行的 ID 快照
func (ri *RowIndex) Row(row int) []int {
	if !validRow(row) {
		return nil
	}
	return append([]int(nil), ri.rows[row]...)
}

// Window 返回 [row-k, row+k] 范围内所有行的 ID 快照
//
// 结果按行从小到大、行内按 ID 升序排列。
func (ri *RowIndex) Window(row, k int) []int {
	var out []int
	for r := row - k; r <= row+k; r++ {
		if validRow(r) {
			out = append(out, ri.rows[r]...)
		}
	}
	return out
}

// All 返回所有行的 ID 快照
func (ri *RowIndex) All() []int {
	return ri.Window(0, MaxRows)
}

// Len 所有行中 ID 的总数
func (ri *RowIndex) Len() int {
	n := 0
	for _, ids := range ri.rows {
		n += len(ids)
	}
	return n
}

// Clear 清空索引
func (ri *RowIndex) Clear() {
	for i := range ri.rows {
		ri.rows[i] = nil
	}
}
