package scene

import (
	"errors"
	"fmt"
)

// ErrInvariant 场景内部一致性被破坏
var ErrInvariant = errors.New("scene invariant violated")

// CheckInvariants 校验场景一致性
//
// 检查项：
//   - 行索引与每个存活僵尸的 Row 字段一致，且不包含已不存在的僵尸
//   - 格子槽位不引用已不存在的植物
//   - 存活僵尸的血量不为负
//
// 返回包装了 ErrInvariant 的错误，全部通过时返回 nil。
func (s *Scene) CheckInvariants() error {
	indexed := 0
	for _, z := range s.Zombies.Items() {
		if z.HP < 0 && !z.IsDead {
			return fmt.Errorf("%w: zombie %d has negative hp %d", ErrInvariant, z.ID, z.HP)
		}
		if !s.ZombiesByRow.Contains(z.Row, z.ID) {
			return fmt.Errorf("%w: zombie %d missing from row index %d", ErrInvariant, z.ID, z.Row)
		}
		indexed++
	}
	if n := s.ZombiesByRow.Len(); n != indexed {
		return fmt.Errorf("%w: row index holds %d ids for %d zombies", ErrInvariant, n, indexed)
	}

	for r := range s.PlantMap {
		for c, cell := range s.PlantMap[r] {
			for _, id := range cell.Slots() {
				p, ok := s.Plants.Get(id)
				if !ok {
					return fmt.Errorf("%w: cell (%d,%d) references missing plant %d", ErrInvariant, r, c, id)
				}
				if p.IsDead {
					return fmt.Errorf("%w: cell (%d,%d) references dead plant %d", ErrInvariant, r, c, id)
				}
			}
		}
	}
	return nil
}
