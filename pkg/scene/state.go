package scene

import (
	"github.com/decker502/pvzemu/pkg/ecs"
	"github.com/decker502/pvzemu/pkg/types"
)

// MaxSun 阳光上限（原版显示上限）
const MaxSun = 9990

// CardCount 卡槽数量
const CardCount = 10

// SunData 阳光经济状态
type SunData struct {
	Sun                 int `json:"sun"`
	NaturalSunGenerated int `json:"natural_sun_generated"`
	NaturalSunCountdown int `json:"natural_sun_countdown"`
}

// AddSun 增加阳光，带上限检查
func (s *SunData) AddSun(amount int) {
	s.Sun += amount
	if s.Sun > MaxSun {
		s.Sun = MaxSun
	}
}

// SpendSun 扣除阳光，如果阳光不足返回 false
func (s *SunData) SpendSun(amount int) bool {
	if s.Sun < amount {
		return false
	}
	s.Sun -= amount
	return true
}

// RowRandom 出怪行权重的平滑状态
type RowRandom struct {
	B float64 `json:"b"`
	C float64 `json:"c"`
	D float64 `json:"d"`
}

// SpawnCountdown 出怪相关的倒计时
type SpawnCountdown struct {
	NextWave        int `json:"next_wave"`
	NextWaveInitial int `json:"next_wave_initial"`
	LurkingSquad    int `json:"lurking_squad"`
	HugewaveFade    int `json:"hugewave_fade"`
	Endgame         int `json:"endgame"`
	// Pool 寒冰菇生效后泳池潜伏出怪的抑制时间
	Pool int `json:"pool"`
}

// SpawnData 出怪状态
type SpawnData struct {
	Wave            int                    `json:"wave"`
	TotalFlags      int                    `json:"total_flags"`
	RowRandom       [ecs.MaxRows]RowRandom `json:"row_random"`
	Countdown       SpawnCountdown         `json:"countdown"`
	HPInitial       int                    `json:"hp_initial"`
	HPThreshold     int                    `json:"hp_threshold"`
	IsHugewaveShown bool                   `json:"is_hugewave_shown"`
}

// firstWaveCountdown 第一波出怪前的等待帧数
const firstWaveCountdown = 600

func newSpawnData() SpawnData {
	return SpawnData{
		TotalFlags: 1000,
		Countdown: SpawnCountdown{
			NextWave:        firstWaveCountdown,
			NextWaveInitial: firstWaveCountdown,
		},
	}
}

// IcePath 冰车留下的冰道（每行一个冰道尖端）
type IcePath struct {
	Countdown [ecs.MaxRows]int `json:"countdown"`
	X         [ecs.MaxRows]int `json:"x"`
}

// iceTipDefault 无冰道时的尖端位置（场地右边界）
const iceTipDefault = 800

func newIcePath() IcePath {
	var ip IcePath
	for i := range ip.X {
		ip.X[i] = iceTipDefault
	}
	return ip
}

// ResetRow 清除一行的冰道
func (ip *IcePath) ResetRow(row int) {
	ip.Countdown[row] = 0
	ip.X[row] = iceTipDefault
}

// CardData 卡槽
type CardData struct {
	Type         types.PlantType `json:"type"`
	ImitaterType types.PlantType `json:"imitater_type"`
	ColdDown     int             `json:"cold_down"`
}

func newCards() [CardCount]CardData {
	var cards [CardCount]CardData
	for i := range cards {
		cards[i] = CardData{Type: types.PlantNone, ImitaterType: types.PlantNone}
	}
	return cards
}
