package config

import (
	"fmt"

	"github.com/decker502/pvzemu/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// AccessoryStats 防具配置
type AccessoryStats struct {
	Type string `yaml:"type"` // 防具键名（roadcone、screen_door 等）
	HP   int    `yaml:"hp"`   // 防具血量
}

// ZombieStats 单个僵尸类型的属性配置
type ZombieStats struct {
	HP         int             `yaml:"hp"`         // 本体血量
	DX         float64         `yaml:"dx"`         // 初始水平速度
	Accessory1 *AccessoryStats `yaml:"accessory1"` // 头部防具（路障、铁桶）
	Accessory2 *AccessoryStats `yaml:"accessory2"` // 身体护盾（铁栅门、报纸、梯子）
	HitBox     []int           `yaml:"hitBox"`     // 受击框 [x, y, width, height]
	AttackBox  []int           `yaml:"attackBox"`  // 攻击框 [x, y, width, height]
}

// ZombieStatsConfig 僵尸属性配置文件结构
type ZombieStatsConfig struct {
	Zombies map[string]ZombieStats `yaml:"zombies"` // 僵尸类型到属性的映射
}

// LoadZombieStats 加载僵尸属性配置
// 参数：
//
//	filepath - 数据文件路径（以 "data/" 开头）
//
// 返回：
//
//	*ZombieStatsConfig - 解析后的配置对象
//	error - 如果文件读取或解析失败，返回错误信息
func LoadZombieStats(filepath string) (*ZombieStatsConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read zombie stats file %s: %w", filepath, err)
	}

	config, err := parseZombieStats(data)
	if err != nil {
		return nil, fmt.Errorf("invalid zombie stats in %s: %w", filepath, err)
	}
	return config, nil
}

func parseZombieStats(data []byte) (*ZombieStatsConfig, error) {
	var config ZombieStatsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse zombie stats YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate 验证僵尸属性配置的完整性和合法性
func (c *ZombieStatsConfig) Validate() error {
	if len(c.Zombies) == 0 {
		return fmt.Errorf("at least one zombie type is required")
	}

	for zombieType, stats := range c.Zombies {
		if stats.HP <= 0 {
			return fmt.Errorf("zombie %s: hp must be positive, got %d", zombieType, stats.HP)
		}

		if stats.DX < 0 {
			return fmt.Errorf("zombie %s: dx cannot be negative, got %v", zombieType, stats.DX)
		}

		if stats.Accessory1 != nil && stats.Accessory1.HP <= 0 {
			return fmt.Errorf("zombie %s: accessory1 hp must be positive, got %d", zombieType, stats.Accessory1.HP)
		}

		if stats.Accessory2 != nil && stats.Accessory2.HP <= 0 {
			return fmt.Errorf("zombie %s: accessory2 hp must be positive, got %d", zombieType, stats.Accessory2.HP)
		}

		if len(stats.HitBox) != 4 {
			return fmt.Errorf("zombie %s: hitBox must have 4 values, got %d", zombieType, len(stats.HitBox))
		}

		if len(stats.AttackBox) != 4 {
			return fmt.Errorf("zombie %s: attackBox must have 4 values, got %d", zombieType, len(stats.AttackBox))
		}
	}

	return nil
}

// GetZombieStats 获取指定僵尸类型的完整属性
// 如果僵尸类型不存在，返回 nil 和 false
func (c *ZombieStatsConfig) GetZombieStats(zombieType string) (*ZombieStats, bool) {
	stats, ok := c.Zombies[zombieType]
	if !ok {
		return nil, false
	}
	return &stats, true
}
