package types

// SceneType 场景类型，决定行数、水路与坐标公式
type SceneType int

const (
	SceneDay       SceneType = 0x0 // 白天
	SceneNight     SceneType = 0x1 // 黑夜
	ScenePool      SceneType = 0x2 // 泳池
	SceneFog       SceneType = 0x3 // 浓雾
	SceneRoof      SceneType = 0x4 // 屋顶
	SceneMoonNight SceneType = 0x5 // 月夜屋顶
)

var sceneTypeNames = map[SceneType]string{
	SceneDay:       "day",
	SceneNight:     "night",
	ScenePool:      "pool",
	SceneFog:       "fog",
	SceneRoof:      "roof",
	SceneMoonNight: "moon_night",
}

// String 返回场景类型的字符串表示
func (s SceneType) String() string {
	if n, ok := sceneTypeNames[s]; ok {
		return n
	}
	return "unknown"
}

// IsValid 判断是否为支持的战斗场景
func (s SceneType) IsValid() bool {
	_, ok := sceneTypeNames[s]
	return ok
}

// ParseSceneType 解析配置文件中的场景名
func ParseSceneType(name string) (SceneType, bool) {
	for t, n := range sceneTypeNames {
		if n == name {
			return t, true
		}
	}
	return SceneDay, false
}

// HasPool 泳池/浓雾场景（6 行，第 2、3 行为水路）
func (s SceneType) HasPool() bool {
	return s == ScenePool || s == SceneFog
}

// IsRoof 屋顶类场景（斜坡布局，需要花盆）
func (s SceneType) IsRoof() bool {
	return s == SceneRoof || s == SceneMoonNight
}

// IsNight 夜间场景（蘑菇不睡觉，没有自然阳光）
func (s SceneType) IsNight() bool {
	return s == SceneNight || s == SceneFog || s == SceneMoonNight
}

// Rows 场景的有效行数
func (s SceneType) Rows() int {
	if s.HasPool() {
		return 6
	}
	return 5
}
