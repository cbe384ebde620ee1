package network

import (
	"log"
	"math/rand/v2"

	"github.com/pkg/errors"
	"github.com/sw965/perceptron/blas64/tensor/2d"
	"github.com/sw965/perceptron/dataset"
	"github.com/sw965/perceptron/model/perceptron"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

const (
	DefaultEpoch        = 50
	DefaultLearningRate = 0.01

	// 重みの初期値の範囲 [InitMin, InitMax)
	InitMin = -1.0
	InitMax = 1.0
)

var ErrShapeMismatch = errors.New("shape mismatch")

type Teacher struct {
	Epoch        int
	LearningRate float64
	Rng          *rand.Rand

	// nil でなければエポック毎に更新回数を出力する。
	Logger *log.Logger
}

func NewDefaultTeacher(rng *rand.Rand) Teacher {
	return Teacher{
		Epoch:        DefaultEpoch,
		LearningRate: DefaultLearningRate,
		Rng:          rng,
	}
}

// InitWeight は rows x cols の重み行列を一様乱数で初期化する。
func (t *Teacher) InitWeight(rows, cols int) *mat.Dense {
	// nil の *rand.Rand をそのまま渡すと nil でない rand.Source になってしまう
	var src rand.Source
	if t.Rng != nil {
		src = t.Rng
	}
	gen := tensor2d.NewUniform(rows, cols, InitMin, InitMax, src)
	w := &mat.Dense{}
	w.SetRawMatrix(gen)
	return w
}

// NewTargets は one-vs-rest の教師信号を作る。(i, j) はラベル i が j なら +1、そうでなければ -1。
func NewTargets(labels []int, classNum int) *mat.Dense {
	ts := tensor2d.NewZeros(len(labels), classNum)
	for i, label := range labels {
		for j := 0; j < classNum; j++ {
			if label == j {
				ts.Data[tensor2d.At(ts, i, j)] = 1.0
			} else {
				ts.Data[tensor2d.At(ts, i, j)] = -1.0
			}
		}
	}
	t := &mat.Dense{}
	t.SetRawMatrix(ts)
	return t
}

// Fit は w を Epoch 回だけ直接更新する。
//
// 出力の符号はエポック開始時に xs·w から一度だけ計算し、そのエポック中は固定する。
// 一方で重みの更新はサンプル毎に即座に w へ反映する。
func (t *Teacher) Fit(w, xs *mat.Dense, labels []int) error {
	wRows, classNum := w.Dims()
	n, inputSize := xs.Dims()
	if inputSize != wRows {
		return errors.Wrapf(ErrShapeMismatch, "inputs have %d columns, weight has %d rows", inputSize, wRows)
	}
	if n != len(labels) {
		return errors.Wrapf(ErrShapeMismatch, "inputs have %d rows, got %d labels", n, len(labels))
	}

	wg := w.RawMatrix()
	xg := xs.RawMatrix()
	ts := NewTargets(labels, classNum).RawMatrix()
	lr := t.LearningRate

	for epoch := 0; epoch < t.Epoch; epoch++ {
		ys := tensor2d.Sign(tensor2d.Dot(blas.NoTrans, blas.NoTrans, xg, wg))
		updates := 0
		for j := 0; j < classNum; j++ {
			wj := tensor2d.Col(wg, j)
			for i := 0; i < n; i++ {
				delta := lr * (ts.Data[tensor2d.At(ts, i, j)] - ys.Data[tensor2d.At(ys, i, j)])
				if delta == 0 {
					continue
				}
				blas64.Axpy(delta, tensor2d.Row(xg, i), wj)
				updates += 1
			}
		}
		if t.Logger != nil {
			t.Logger.Printf("epoch %d/%d: %d updates", epoch+1, t.Epoch, updates)
		}
	}
	return nil
}

// Slice は (784+1) x 10 の重み行列を列毎に分け、0..783 行目を重み、784 行目をバイアスとしてNetworkを作る。
func Slice(w *mat.Dense) *Network {
	rows, cols := w.Dims()
	neurons := make([]perceptron.Perceptron, cols)
	for j := range neurons {
		col := mat.Col(nil, j, w)
		neurons[j] = perceptron.New(col[:rows-1], col[rows-1])
	}
	return New(neurons)
}

// Teach は重みを初期化して学習し、Networkを返す。
func (t *Teacher) Teach(xs *mat.Dense, labels []int) (*Network, error) {
	w := t.InitWeight(dataset.TrainInputSize, ClassNum)
	if err := t.Fit(w, xs, labels); err != nil {
		return nil, err
	}
	return Slice(w), nil
}
