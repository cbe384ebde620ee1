package network

import (
	"fmt"
	"slices"

	"github.com/pkg/errors"
	"github.com/sw965/perceptron/dataset"
	"github.com/sw965/perceptron/model/perceptron"
)

const (
	ClassNum  = dataset.ClassNum
	InputSize = dataset.ImageSize
)

var ErrUndecided = errors.New("could not tell what number is this")

// Network は数字 0..9 それぞれに1つずつ、計10個のパーセプトロンを持つ。
// i 番目のパーセプトロンが数字 i を担当する。
type Network struct {
	neurons []perceptron.Perceptron
}

// New はパーセプトロンの数が10でない、あるいは重みの長さが784でない場合にpanicする。
func New(neurons []perceptron.Perceptron) *Network {
	if len(neurons) != ClassNum {
		panic(fmt.Sprintf("network: invalid number of neurons. expected: %d, found: %d", ClassNum, len(neurons)))
	}
	for i, neuron := range neurons {
		if neuron.Len() != InputSize {
			panic(fmt.Sprintf("network: invalid neuron weight size at neuron %d. expected: %d, found: %d", i, InputSize, neuron.Len()))
		}
	}
	return &Network{neurons: slices.Clone(neurons)}
}

func (n *Network) Neurons() []perceptron.Perceptron {
	return slices.Clone(n.neurons)
}

// Predict は最初に +1 を出力したパーセプトロンの番号を返す。
// どれも +1 を出さなければ ErrUndecided。
func (n *Network) Predict(input []float64) (int, error) {
	if len(input) != InputSize {
		panic(fmt.Sprintf("network: input length %d does not match image size %d", len(input), InputSize))
	}
	for i, neuron := range n.neurons {
		if neuron.Compute(input) == 1.0 {
			return i, nil
		}
	}
	return 0, ErrUndecided
}

// Accuracy は正解率をパーセント [0, 100] で返す。判定不能は不正解として数える。
// テストデータが空の場合は 0。
func (n *Network) Accuracy(tests dataset.Samples) float64 {
	if len(tests) == 0 {
		return 0.0
	}

	correct := 0
	for _, test := range tests {
		y, err := n.Predict(test.Input)
		if err != nil {
			continue
		}
		if y == test.Label {
			correct += 1
		}
	}
	return 100.0 * float64(correct) / float64(len(tests))
}
