package game

import (
	"encoding/json"
	"fmt"

	"github.com/decker502/pvzemu/pkg/components"
	"github.com/decker502/pvzemu/pkg/scene"
	"github.com/decker502/pvzemu/pkg/types"
)

// SnapshotFlags 场景全局标志
type SnapshotFlags struct {
	IsZombieDance      bool `json:"is_zombie_dance"`
	IsFutureEnabled    bool `json:"is_future_enabled"`
	StopSpawn          bool `json:"stop_spawn"`
	EnableSplitPeaBug  bool `json:"enable_split_pea_bug"`
	IsGameOver         bool `json:"is_game_over"`
	ZombieDancingClock int  `json:"zombie_dancing_clock"`
}

// Snapshot 世界状态的只读投影
//
// 实体数组按 ID 升序排列。字段集合是回放与检查工具依赖的契约。
type Snapshot struct {
	Type  types.SceneType `json:"type"`
	Rows  int             `json:"rows"`
	Clock int             `json:"clock"`
	Flags SnapshotFlags   `json:"flags"`

	Sun   scene.SunData                   `json:"sun"`
	Spawn scene.SpawnData                 `json:"spawn"`
	Cards [scene.CardCount]scene.CardData `json:"cards"`

	Plants      []components.Plant      `json:"plants"`
	Zombies     []components.Zombie     `json:"zombies"`
	GridItems   []components.GridItem   `json:"griditems"`
	Projectiles []components.Projectile `json:"projectiles"`

	IcePath  scene.IcePath            `json:"ice_path"`
	PlantMap [][]components.PlantCell `json:"plant_map"`
}

// Snapshot 复制当前状态，不修改任何模拟状态
func (w *World) Snapshot() *Snapshot {
	s := w.scene
	snap := &Snapshot{
		Type:  s.Type,
		Rows:  s.Rows,
		Clock: s.Clock,
		Flags: SnapshotFlags{
			IsZombieDance:      s.IsZombieDance,
			IsFutureEnabled:    s.IsFutureEnabled,
			StopSpawn:          s.StopSpawn,
			EnableSplitPeaBug:  s.EnableSplitPeaBug,
			IsGameOver:         s.IsGameOver,
			ZombieDancingClock: s.ZombieDancingClock,
		},
		Sun:         s.Sun,
		Spawn:       s.Spawn,
		Cards:       s.Cards,
		IcePath:     s.IcePath,
		Plants:      []components.Plant{},
		Zombies:     []components.Zombie{},
		GridItems:   []components.GridItem{},
		Projectiles: []components.Projectile{},
	}

	for _, p := range s.Plants.Items() {
		snap.Plants = append(snap.Plants, *p)
	}
	for _, z := range s.Zombies.Items() {
		snap.Zombies = append(snap.Zombies, *z)
	}
	for _, g := range s.GridItems.Items() {
		snap.GridItems = append(snap.GridItems, *g)
	}
	for _, proj := range s.Projectiles.Items() {
		snap.Projectiles = append(snap.Projectiles, *proj)
	}

	snap.PlantMap = make([][]components.PlantCell, s.Rows)
	for r := 0; r < s.Rows; r++ {
		snap.PlantMap[r] = append([]components.PlantCell(nil), s.PlantMap[r][:]...)
	}
	return snap
}

// ToJSON 把当前状态序列化为 JSON
func (w *World) ToJSON() (string, error) {
	data, err := json.Marshal(w.Snapshot())
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return string(data), nil
}
