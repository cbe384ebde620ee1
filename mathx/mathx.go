package mathx

// Sign は x >= 0 なら +1、それ以外は -1 を返す。
// 0 (および -0) は +1 側に倒す。NaN は -1 になる。
func Sign(x float64) float64 {
	if x >= 0 {
		return 1.0
	}
	return -1.0
}

