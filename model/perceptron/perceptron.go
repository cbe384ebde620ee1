package perceptron

import (
	"fmt"
	"slices"

	"github.com/sw965/perceptron/mathx"
	"gonum.org/v1/gonum/floats"
)

// Perceptron は重みベクトルとバイアスを持つ線形二値分類器。生成後は変更されない。
type Perceptron struct {
	weight []float64
	bias   float64
}

func New(weight []float64, bias float64) Perceptron {
	return Perceptron{
		weight: slices.Clone(weight),
		bias:   bias,
	}
}

// Compute は sign(input·weight + bias) を +1 または -1 で返す。
// input と weight の長さが違う場合はpanicする。
func (p Perceptron) Compute(input []float64) float64 {
	if len(input) != len(p.weight) {
		panic(fmt.Sprintf("perceptron: unmatching vector size: input=%d, weight=%d", len(input), len(p.weight)))
	}
	return mathx.Sign(floats.Dot(input, p.weight) + p.bias)
}

func (p Perceptron) Weight() []float64 {
	return slices.Clone(p.weight)
}

func (p Perceptron) Bias() float64 {
	return p.bias
}

func (p Perceptron) Len() int {
	return len(p.weight)
}
