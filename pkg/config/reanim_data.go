package config

import (
	"fmt"

	"github.com/decker502/pvzemu/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// 数据表默认路径
const (
	PlantReanimPath  = "data/reanim/plants.yaml"
	ZombieReanimPath = "data/reanim/zombies.yaml"
	PlantStatsPath   = "data/stats/plants.yaml"
	ZombieStatsPath  = "data/stats/zombies.yaml"
)

// PlantReanimData 单种植物的动画数据
type PlantReanimData struct {
	Frames int     `yaml:"frames"` // 动画总帧数
	FPS    float64 `yaml:"fps"`    // 默认帧率

	// Anims 动画名 -> [起始帧, 帧数]
	Anims map[string][]int `yaml:"anims"`

	// PeaOffsets 射手类植物每帧的子弹发射偏移 [x, y]，按绝对帧号索引
	PeaOffsets [][]float64 `yaml:"peaOffsets"`
}

// PlantReanimConfig 植物动画数据文件结构
type PlantReanimConfig struct {
	Plants map[string]PlantReanimData `yaml:"plants"`
}

// ZombieReanimData 单种僵尸的动画数据
type ZombieReanimData struct {
	Frames int     `yaml:"frames"`
	FPS    float64 `yaml:"fps"`

	// Ground 是否按 commonGround 曲线计算行走位移
	Ground bool `yaml:"ground"`

	Anims map[string][]int `yaml:"anims"`
}

// ZombieReanimConfig 僵尸动画数据文件结构
type ZombieReanimConfig struct {
	Zombies map[string]ZombieReanimData `yaml:"zombies"`

	// CommonGround 行走动画每帧的累计水平位移，按绝对帧号索引
	CommonGround []float64 `yaml:"commonGround"`
}

// LoadPlantReanimConfig 加载植物动画数据
//
// 参数:
//   - path: 数据文件路径（如 "data/reanim/plants.yaml"）
//
// 返回:
//   - *PlantReanimConfig: 解析并验证后的数据
//   - error: 读取、解析或验证失败时返回错误
func LoadPlantReanimConfig(path string) (*PlantReanimConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plant reanim file %s: %w", path, err)
	}
	config, err := parsePlantReanimConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid plant reanim data in %s: %w", path, err)
	}
	return config, nil
}

func parsePlantReanimConfig(data []byte) (*PlantReanimConfig, error) {
	var config PlantReanimConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse plant reanim YAML: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate 验证动画帧范围均落在总帧数之内
func (c *PlantReanimConfig) Validate() error {
	if len(c.Plants) == 0 {
		return fmt.Errorf("at least one plant is required")
	}
	for key, p := range c.Plants {
		if err := validateAnims(key, p.Frames, p.FPS, p.Anims); err != nil {
			return err
		}
		for i, off := range p.PeaOffsets {
			if len(off) != 2 {
				return fmt.Errorf("plant %s: peaOffsets[%d] must have 2 values, got %d", key, i, len(off))
			}
		}
	}
	return nil
}

// LoadZombieReanimConfig 加载僵尸动画数据
func LoadZombieReanimConfig(path string) (*ZombieReanimConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read zombie reanim file %s: %w", path, err)
	}
	config, err := parseZombieReanimConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid zombie reanim data in %s: %w", path, err)
	}
	return config, nil
}

func parseZombieReanimConfig(data []byte) (*ZombieReanimConfig, error) {
	var config ZombieReanimConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse zombie reanim YAML: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate 验证动画帧范围与位移曲线
func (c *ZombieReanimConfig) Validate() error {
	if len(c.Zombies) == 0 {
		return fmt.Errorf("at least one zombie is required")
	}
	for key, z := range c.Zombies {
		if err := validateAnims(key, z.Frames, z.FPS, z.Anims); err != nil {
			return err
		}
		if z.Ground && len(c.CommonGround) == 0 {
			return fmt.Errorf("zombie %s: ground enabled but commonGround is empty", key)
		}
	}
	return nil
}

func validateAnims(key string, frames int, fps float64, anims map[string][]int) error {
	if frames < 0 {
		return fmt.Errorf("%s: frames cannot be negative, got %d", key, frames)
	}
	if fps < 0 {
		return fmt.Errorf("%s: fps cannot be negative, got %v", key, fps)
	}
	for name, r := range anims {
		if len(r) != 2 {
			return fmt.Errorf("%s: anim %s must be [begin, count], got %v", key, name, r)
		}
		if r[0] < 0 || r[1] < 0 {
			return fmt.Errorf("%s: anim %s has negative range %v", key, name, r)
		}
		if frames > 0 && r[0]+r[1] > frames {
			return fmt.Errorf("%s: anim %s range %v exceeds %d frames", key, name, r, frames)
		}
	}
	return nil
}
