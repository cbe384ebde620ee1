package tensor2d

import (
	"math/rand/v2"
	"slices"

	"github.com/sw965/perceptron/mathx"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/stat/distuv"
)

func NewZeros(rows, cols int) blas64.General {
	return blas64.General{
		Rows:   rows,
		Cols:   cols,
		Stride: cols,
		Data:   make([]float64, rows*cols),
	}
}

func NewZerosLike(gen blas64.General) blas64.General {
	return NewZeros(gen.Rows, gen.Cols)
}

// NewUniform は [min, max) の一様乱数で埋めた行列を返す。
func NewUniform(rows, cols int, min, max float64, src rand.Source) blas64.General {
	gen := NewZeros(rows, cols)
	dist := distuv.Uniform{Min: min, Max: max, Src: src}
	for i := range gen.Data {
		gen.Data[i] = dist.Rand()
	}
	return gen
}

func N(gen blas64.General) int {
	return gen.Rows * gen.Cols
}

func Clone(gen blas64.General) blas64.General {
	return blas64.General{
		Rows:   gen.Rows,
		Cols:   gen.Cols,
		Stride: gen.Stride,
		Data:   slices.Clone(gen.Data),
	}
}

func At(gen blas64.General, row, col int) int {
	return row*gen.Stride + col
}

// Row は row 行目をコピーせずに参照するベクトルを返す。
func Row(gen blas64.General, row int) blas64.Vector {
	offset := row * gen.Stride
	return blas64.Vector{
		N:    gen.Cols,
		Inc:  1,
		Data: gen.Data[offset : offset+gen.Cols],
	}
}

// Col は col 列目をコピーせずに参照するベクトルを返す。Inc は Stride になる。
func Col(gen blas64.General, col int) blas64.Vector {
	return blas64.Vector{
		N:    gen.Rows,
		Inc:  gen.Stride,
		Data: gen.Data[col:],
	}
}

func Dot(tA, tB blas.Transpose, a, b blas64.General) blas64.General {
	rows, cols := a.Rows, b.Cols
	if tA == blas.Trans {
		rows = a.Cols
	}
	if tB == blas.Trans {
		cols = b.Rows
	}
	y := NewZeros(rows, cols)
	blas64.Gemm(tA, tB, 1.0, a, b, 0.0, y)
	return y
}

// Sign は要素ごとに mathx.Sign を適用した新しい行列を返す。
func Sign(gen blas64.General) blas64.General {
	y := NewZerosLike(gen)
	for r := 0; r < gen.Rows; r++ {
		for c := 0; c < gen.Cols; c++ {
			y.Data[At(y, r, c)] = mathx.Sign(gen.Data[At(gen, r, c)])
		}
	}
	return y
}
