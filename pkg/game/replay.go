package game

import (
	"fmt"

	"github.com/decker502/pvzemu/pkg/config"
	"github.com/decker502/pvzemu/pkg/types"
)

// Recording 一场战斗的录像：初始条件加上按帧排列的动作
type Recording struct {
	Scene   string                `yaml:"scene"`
	Seed    int64                 `yaml:"seed"`
	Ticks   int                   `yaml:"ticks"`
	Actions []config.ActionConfig `yaml:"actions"`
}

// Recorder 包装 World，记录每个被接受的动作
type Recorder struct {
	world   *World
	scene   types.SceneType
	actions []config.ActionConfig
}

// NewRecorder 创建新的世界并开始录像
func NewRecorder(st types.SceneType, seed int64) *Recorder {
	return &Recorder{world: New(st, seed), scene: st}
}

// World 返回被录制的世界
func (r *Recorder) World() *World {
	return r.world
}

// Do 在当前帧执行动作，被接受时记入录像
//
// 返回:
//   - error: 与 World.Apply 相同
func (r *Recorder) Do(a config.ActionConfig) error {
	a.Tick = r.world.scene.Clock
	if err := r.world.Apply(a); err != nil {
		return err
	}
	r.actions = append(r.actions, a)
	return nil
}

// Step 推进世界 n 帧
func (r *Recorder) Step(n int) bool {
	return r.world.Step(n)
}

// RunScript 与 World.RunScript 相同，被接受的动作记入录像
func (r *Recorder) RunScript(actions []config.ActionConfig, ticks int) (int, error) {
	return r.world.runScript(actions, ticks, r.Do)
}

// Recording 导出到当前帧为止的录像
func (r *Recorder) Recording() *Recording {
	return &Recording{
		Scene:   r.scene.String(),
		Seed:    r.world.seed,
		Ticks:   r.world.scene.Clock,
		Actions: append([]config.ActionConfig(nil), r.actions...),
	}
}

// Replay 由录像重建世界
//
// 从相同的场景与种子出发，在每个动作记录的帧重新执行它，最后推进到录像的总帧数。
// 结果的快照与录制结束时逐位相同。
//
// 返回:
//   - *World: 重建后的世界
//   - error: 场景未知、动作在重放时被拒绝或游戏提前结束时返回错误
func Replay(rec *Recording) (*World, error) {
	st, ok := types.ParseSceneType(rec.Scene)
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", rec.Scene)
	}

	w := New(st, rec.Seed)
	for i, a := range rec.Actions {
		if a.Tick < w.scene.Clock {
			return nil, fmt.Errorf("action %d: tick %d is before current tick %d", i, a.Tick, w.scene.Clock)
		}
		if w.Step(a.Tick - w.scene.Clock) {
			return nil, fmt.Errorf("action %d: game ended at tick %d before replay finished", i, w.scene.Clock)
		}
		if err := w.Apply(a); err != nil {
			return nil, fmt.Errorf("action %d at tick %d: %w", i, a.Tick, err)
		}
	}

	if rec.Ticks > w.scene.Clock {
		w.Step(rec.Ticks - w.scene.Clock)
	}
	return w, nil
}
