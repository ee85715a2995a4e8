package config

import (
	"fmt"

	"github.com/decker502/pvzemu/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// PlantStats 单个植物类型的属性配置
type PlantStats struct {
	Cost           int  `yaml:"cost"`           // 阳光花费
	Cooldown       int  `yaml:"cooldown"`       // 卡片冷却帧数
	HP             int  `yaml:"hp"`             // 初始血量
	CanAttack      bool `yaml:"canAttack"`      // 是否参与索敌
	EffectInterval int  `yaml:"effectInterval"` // 攻击/生产间隔帧数
	BootDelay      int  `yaml:"bootDelay"`      // 首次攻击的最大随机延迟
}

// PlantStatsConfig 植物属性配置文件结构
type PlantStatsConfig struct {
	Plants map[string]PlantStats `yaml:"plants"`
}

// LoadPlantStats 加载植物属性配置
func LoadPlantStats(filepath string) (*PlantStatsConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read plant stats file %s: %w", filepath, err)
	}

	config, err := parsePlantStats(data)
	if err != nil {
		return nil, fmt.Errorf("invalid plant stats in %s: %w", filepath, err)
	}
	return config, nil
}

func parsePlantStats(data []byte) (*PlantStatsConfig, error) {
	var config PlantStatsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse plant stats YAML: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate 验证植物属性
func (c *PlantStatsConfig) Validate() error {
	if len(c.Plants) == 0 {
		return fmt.Errorf("at least one plant type is required")
	}
	for plantType, stats := range c.Plants {
		if stats.Cost < 0 {
			return fmt.Errorf("plant %s: cost cannot be negative, got %d", plantType, stats.Cost)
		}
		if stats.Cooldown < 0 {
			return fmt.Errorf("plant %s: cooldown cannot be negative, got %d", plantType, stats.Cooldown)
		}
		if stats.HP <= 0 {
			return fmt.Errorf("plant %s: hp must be positive, got %d", plantType, stats.HP)
		}
		if stats.EffectInterval < 0 {
			return fmt.Errorf("plant %s: effectInterval cannot be negative, got %d", plantType, stats.EffectInterval)
		}
		if stats.BootDelay < 0 {
			return fmt.Errorf("plant %s: bootDelay cannot be negative, got %d", plantType, stats.BootDelay)
		}
	}
	return nil
}
