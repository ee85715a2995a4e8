package config

import (
	"fmt"
	"os"

	"github.com/decker502/pvzemu/pkg/types"
	"gopkg.in/yaml.v3"
)

// 动作类型
const (
	ActionPlant     = "plant"     // 种植（type/row/col，可选 imitater）
	ActionPlantCard = "card"      // 使用卡槽种植（card/row/col）
	ActionSetCard   = "set_card"  // 设置卡槽（card/type，可选 imitater）
	ActionSpawn     = "spawn"     // 直接生成僵尸（type/row/x）
	ActionLurk      = "lurk"      // 潜伏生成（type/row/col）
	ActionRemove    = "remove"    // 铲除植物（row/col）
	ActionLaunchCob = "launch"    // 发射玉米炮（row/col/x/y）
	ActionGridItem  = "grid_item" // 放置场地物品（type/row/col）
)

// ActionConfig 场景脚本中的一个动作
type ActionConfig struct {
	Tick     int     `yaml:"tick"`     // 在第几帧开始前执行
	Kind     string  `yaml:"kind"`     // 动作类型
	Type     string  `yaml:"type"`     // 植物/僵尸/场地物品键名
	Imitater string  `yaml:"imitater"` // 模仿者的目标植物键名
	Card     int     `yaml:"card"`     // 卡槽序号
	Row      int     `yaml:"row"`
	Col      int     `yaml:"col"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
}

// DefaultReplayAppName 未指定 appName 时使用的 gdata 应用名
const DefaultReplayAppName = "pvzemu"

// ReplayConfig 回放存档配置
type ReplayConfig struct {
	AppName string `yaml:"appName"` // gdata 存储使用的应用名
	Name    string `yaml:"name"`    // 录像名称，为空时不保存
}

// SimulationConfig 无界面运行器的配置
//
// 配置文件位置: data/simulation.yaml（可通过 -config 参数指定）
type SimulationConfig struct {
	Scene   string         `yaml:"scene"`   // 场景名（day/night/pool/fog/roof/moon_night）
	Seed    int64          `yaml:"seed"`    // 随机种子
	Ticks   int            `yaml:"ticks"`   // 模拟帧数
	Debug   bool           `yaml:"debug"`   // 调试模式（输出日志并逐帧检查不变量）
	Actions []ActionConfig `yaml:"actions"` // 按帧排序的动作脚本
	Replay  ReplayConfig   `yaml:"replay"`
}

// LoadSimulationConfig 加载运行器配置
//
// 参数:
//   - path: 配置文件路径（如 "data/simulation.yaml"）
//
// 返回:
//   - *SimulationConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func LoadSimulationConfig(path string) (*SimulationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read simulation config: %w", err)
	}

	var config SimulationConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse simulation config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}
	if config.Replay.AppName == "" {
		config.Replay.AppName = DefaultReplayAppName
	}

	return &config, nil
}

// SceneType 返回解析后的场景类型
func (c *SimulationConfig) SceneType() types.SceneType {
	st, _ := types.ParseSceneType(c.Scene)
	return st
}

// Validate 验证配置的合法性
func (c *SimulationConfig) Validate() error {
	if _, ok := types.ParseSceneType(c.Scene); !ok {
		return fmt.Errorf("unknown scene %q", c.Scene)
	}
	if c.Ticks < 0 {
		return fmt.Errorf("ticks cannot be negative, got %d", c.Ticks)
	}

	last := 0
	for i, a := range c.Actions {
		if a.Tick < last {
			return fmt.Errorf("action %d: ticks must be non-decreasing (%d after %d)", i, a.Tick, last)
		}
		last = a.Tick
		if err := a.Validate(); err != nil {
			return fmt.Errorf("action %d: %w", i, err)
		}
	}
	return nil
}

// Validate 验证单个动作
func (a *ActionConfig) Validate() error {
	switch a.Kind {
	case ActionPlant, ActionSetCard:
		if _, err := types.ParsePlantType(a.Type); err != nil {
			return err
		}
		if a.Imitater != "" {
			if _, err := types.ParsePlantType(a.Imitater); err != nil {
				return err
			}
		}
	case ActionSpawn, ActionLurk:
		if _, err := types.ParseZombieType(a.Type); err != nil {
			return err
		}
	case ActionGridItem:
		if _, err := types.ParseGridItemType(a.Type); err != nil {
			return err
		}
	case ActionPlantCard, ActionRemove, ActionLaunchCob:
	default:
		return fmt.Errorf("unknown action kind %q", a.Kind)
	}
	if a.Kind == ActionPlantCard || a.Kind == ActionSetCard {
		if a.Card < 0 || a.Card >= 10 {
			return fmt.Errorf("card index %d out of range", a.Card)
		}
	}
	return nil
}
