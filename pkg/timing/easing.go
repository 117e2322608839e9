package timing

import "math"

// Easing Functions (缓动函数)
//
// 缓动函数把线性进度 p ∈ [0, 1] 映射为感知进度，用于塑造运动和透明度曲线。
// 下面的工厂函数都是纯函数：同样的参数总是得到同样的曲线，没有隐藏状态。

// EasingFunction 缓动函数类型
type EasingFunction func(percentComplete float64) float64

// MakeEaseOutEasingFunction 缓出
// 特点：开始快，结束慢（跳跃上升段）
// 公式：f(p) = 1 - (1-p)^(2s)
func MakeEaseOutEasingFunction(strength float64) EasingFunction {
	return func(p float64) float64 {
		return 1 - math.Pow(1-p, strength*2)
	}
}

// MakeEaseInEasingFunction 缓入
// 特点：开始慢，结束快（跳跃下降段）
// 公式：f(p) = p^(2s)
func MakeEaseInEasingFunction(strength float64) EasingFunction {
	return func(p float64) float64 {
		return math.Pow(p, strength*2)
	}
}

// MakeEaseOutInEasingFunction 先缓出后缓入
// 公式：f(p) = p + sin(2πp)/2π
func MakeEaseOutInEasingFunction() EasingFunction {
	return func(p float64) float64 {
		return p + math.Sin(p*2*math.Pi)/(2*math.Pi)
	}
}

// MakeEaseInOutEasingFunction 先缓入后缓出
// 公式：f(p) = p - sin(2πp)/2π
func MakeEaseInOutEasingFunction() EasingFunction {
	return func(p float64) float64 {
		return p - math.Sin(p*2*math.Pi)/(2*math.Pi)
	}
}

// MakeLinearEasingFunction 线性（无缓动）
func MakeLinearEasingFunction() EasingFunction {
	return func(p float64) float64 {
		return p
	}
}
