package utils

import "math"

// Smoothstep 三次平滑插值 3t² - 2t³
func Smoothstep(t float64) float64 {
	return 3*t*t - 2*t*t*t
}

// JumpCurve 倭瓜起跳轨迹使用的二次平滑曲线
//
// 参数:
//   - countdown: 当前状态倒计时（从 50 递减）
//   - from, to: 起点与终点坐标
//
// 前 30 帧从 from 平滑移动到 to，之后停在 to。
func JumpCurve(countdown, from, to int) int {
	r := float64(50-countdown) / 30.0
	switch {
	case r <= 0:
		return from
	case r > 1:
		return to
	}
	r = Smoothstep(Smoothstep(r))
	return int(math.RoundToEven(float64(to-from)*r + float64(from)))
}
