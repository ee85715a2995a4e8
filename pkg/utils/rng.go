package utils

import "math/rand/v2"

// RNG 场景唯一的确定性随机源
//
// 所有带随机性的玩法（倒计时抖动、死亡动画选择、出怪行权重）
// 都必须通过同一个 RNG，才能由一个种子复现整场战斗。
type RNG struct {
	seed int64
	r    *rand.Rand
}

// NewRNG 使用种子创建随机源
func NewRNG(seed int64) *RNG {
	return &RNG{seed: seed, r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Seed 返回创建时使用的种子
func (g *RNG) Seed() int64 {
	return g.seed
}

// Int 返回 [0, n) 内的整数；n <= 0 时返回 0
func (g *RNG) Int(n int) int {
	if n <= 0 {
		return 0
	}
	return g.r.IntN(n)
}

// Float 返回 [a, b) 内的浮点数
func (g *RNG) Float(a, b float64) float64 {
	return a + (b-a)*g.r.Float64()
}

// Weighted 按权重随机选择下标
//
// 权重之和不为正时返回 0。
func (g *RNG) Weighted(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return 0
	}

	r := g.r.Float64() * total
	last := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		last = i
		if r < w {
			return i
		}
		r -= w
	}
	return last
}

// Between 返回 [a, b] 闭区间内的整数
func (g *RNG) Between(a, b int) int {
	if b <= a {
		return a
	}
	return a + g.r.IntN(b-a+1)
}
