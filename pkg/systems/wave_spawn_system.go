package systems

import (
	"log"

	"github.com/decker502/pvzemu/pkg/entities"
	"github.com/decker502/pvzemu/pkg/scene"
	"github.com/decker502/pvzemu/pkg/types"
)

const (
	// WaveSize 每波生成的普通僵尸数量
	WaveSize = 5

	// WaveInterval / WaveJitter 两波之间的基础间隔与随机抖动
	WaveInterval = 2500
	WaveJitter   = 600

	// flagWave 到达该波次时旗帜计数加一
	flagWave = 10
)

// WaveSpawnSystem 按倒计时分波生成僵尸
//
// 每波固定生成 WaveSize 只普通僵尸，出生行由 ZombieFactory 的平滑权重决定。
type WaveSpawnSystem struct {
	scene   *scene.Scene
	zombies *entities.ZombieFactory

	// Debug 开启后记录每一波的生成
	Debug bool
}

// NewWaveSpawnSystem 创建出怪系统
func NewWaveSpawnSystem(s *scene.Scene, zombies *entities.ZombieFactory) *WaveSpawnSystem {
	return &WaveSpawnSystem{scene: s, zombies: zombies}
}

// Update 推进出怪倒计时，StopSpawn 时暂停
func (s *WaveSpawnSystem) Update() {
	sp := &s.scene.Spawn
	if s.scene.StopSpawn || sp.Countdown.Endgame > 0 {
		return
	}

	if sp.Countdown.NextWave > 0 {
		sp.Countdown.NextWave--
	}
	if sp.Countdown.NextWave == 0 {
		s.spawnWave()
	}
}

// UpdatePoolCountdown 递减泳池潜伏抑制倒计时
//
// 在冰道之后、帧末执行，不受 StopSpawn 影响。
func (s *WaveSpawnSystem) UpdatePoolCountdown() {
	if s.scene.Spawn.Countdown.Pool > 0 {
		s.scene.Spawn.Countdown.Pool--
	}
}

func (s *WaveSpawnSystem) spawnWave() {
	sp := &s.scene.Spawn

	spawned := 0
	for i := 0; i < WaveSize; i++ {
		if s.zombies.Create(types.ZombieBasic) != nil {
			spawned++
		}
	}

	sp.Wave++
	if sp.Wave == flagWave {
		sp.TotalFlags++
	}

	sp.Countdown.NextWave = WaveInterval + s.scene.RNG.Int(WaveJitter)
	sp.Countdown.NextWaveInitial = sp.Countdown.NextWave

	if s.Debug {
		log.Printf("[WaveSpawnSystem] Wave %d: spawned %d zombies, next wave in %d ticks",
			sp.Wave, spawned, sp.Countdown.NextWave)
	}
}
