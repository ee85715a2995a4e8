package game

import (
	"errors"
	"fmt"

	"github.com/decker502/pvzemu/pkg/config"
	"github.com/decker502/pvzemu/pkg/types"
)

// ErrActionRejected 动作合法但被场景拒绝（位置无效、阳光不足、卡槽冷却等）
var ErrActionRejected = errors.New("action rejected")

// Apply 执行一个脚本动作
//
// 参数:
//   - a: 动作（键名形式的类型，由 config.ActionConfig.Validate 校验）
//
// 返回:
//   - error: 键名无法解析时返回解析错误；场景拒绝时返回包装了 ErrActionRejected 的错误
func (w *World) Apply(a config.ActionConfig) error {
	switch a.Kind {
	case config.ActionPlant:
		pt, err := types.ParsePlantType(a.Type)
		if err != nil {
			return err
		}
		if a.Imitater != "" {
			target, err := types.ParsePlantType(a.Imitater)
			if err != nil {
				return err
			}
			if w.PlantImitater(target, a.Row, a.Col) == nil {
				return rejected(a)
			}
			return nil
		}
		if w.Plant(pt, a.Row, a.Col) == nil {
			return rejected(a)
		}

	case config.ActionSetCard:
		pt, err := types.ParsePlantType(a.Type)
		if err != nil {
			return err
		}
		imitater := types.PlantNone
		if a.Imitater != "" {
			if imitater, err = types.ParsePlantType(a.Imitater); err != nil {
				return err
			}
		}
		return w.SetCard(a.Card, pt, imitater)

	case config.ActionPlantCard:
		if w.PlantCard(a.Card, a.Row, a.Col) == nil {
			return rejected(a)
		}

	case config.ActionSpawn:
		zt, err := types.ParseZombieType(a.Type)
		if err != nil {
			return err
		}
		if w.Spawn(zt, a.Row, a.X) == nil {
			return rejected(a)
		}

	case config.ActionLurk:
		zt, err := types.ParseZombieType(a.Type)
		if err != nil {
			return err
		}
		if w.SpawnLurking(zt, a.Row, a.Col) == nil {
			return rejected(a)
		}

	case config.ActionRemove:
		if !w.RemovePlant(a.Row, a.Col) {
			return rejected(a)
		}

	case config.ActionLaunchCob:
		if !w.LaunchCob(a.Row, a.Col, int(a.X), int(a.Y)) {
			return rejected(a)
		}

	case config.ActionGridItem:
		gt, err := types.ParseGridItemType(a.Type)
		if err != nil {
			return err
		}
		if w.AddGridItem(gt, a.Row, a.Col) == nil {
			return rejected(a)
		}

	default:
		return fmt.Errorf("unknown action kind %q", a.Kind)
	}
	return nil
}

func rejected(a config.ActionConfig) error {
	return fmt.Errorf("%w: %s %s at (%d, %d)", ErrActionRejected, a.Kind, a.Type, a.Row, a.Col)
}

// RunScript 按帧执行动作脚本并推进到 ticks 帧
//
// 动作在对应帧开始前执行。被拒绝的动作只记录日志（调试模式下），不会中断运行。
//
// 返回:
//   - int: 被拒绝的动作数量
//   - error: 动作无法解析时返回错误
func (w *World) RunScript(actions []config.ActionConfig, ticks int) (int, error) {
	return w.runScript(actions, ticks, w.Apply)
}

func (w *World) runScript(actions []config.ActionConfig, ticks int, apply func(config.ActionConfig) error) (int, error) {
	failed := 0
	next := 0
	for w.scene.Clock < ticks {
		for next < len(actions) && actions[next].Tick <= w.scene.Clock {
			if err := apply(actions[next]); err != nil {
				if !errors.Is(err, ErrActionRejected) {
					return failed, fmt.Errorf("action %d: %w", next, err)
				}
				failed++
				w.logf("[World] Tick %d: %v", w.scene.Clock, err)
			}
			next++
		}
		if w.Update() {
			break
		}
	}
	return failed, nil
}
