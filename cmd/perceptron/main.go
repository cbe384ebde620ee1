package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sw965/perceptron/config"
	"github.com/sw965/perceptron/dataset"
	"github.com/sw965/perceptron/mathx/randx"
	"github.com/sw965/perceptron/model/network"
)

func main() {
	c, err := config.New(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error, invalid usage: %v\n", err)
		fmt.Fprintln(os.Stderr, config.Usage)
		os.Exit(1)
	}

	accuracy, err := run(c, log.Default())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running perceptron algorithm: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Accuracy: %.2f%%\n", accuracy)
}

func run(c config.Config, logger *log.Logger) (float64, error) {
	start := time.Now()
	logger.Printf("%s を読み込んでいます...", c.DataFile)
	data, err := dataset.Load(c.DataFile)
	if err != nil {
		return 0, err
	}
	logger.Printf("読み込み完了: Train[%d], Test[%d] (%v)", data.TrainNum(), data.TestNum(), time.Since(start))

	start = time.Now()
	logger.Printf("学習を開始します: epoch=%d, learning rate=%g", c.Epoch, c.LearningRate)
	teacher := network.Teacher{
		Epoch:        int(c.Epoch),
		LearningRate: c.LearningRate,
		Rng:          randx.NewPCGFromTime(),
		Logger:       logger,
	}
	model, err := teacher.Teach(data.TrainInputs, data.TrainLabels)
	if err != nil {
		return 0, err
	}
	logger.Printf("学習完了 (%v)", time.Since(start))

	start = time.Now()
	accuracy := model.Accuracy(data.Tests)
	logger.Printf("評価完了 (%v)", time.Since(start))
	return accuracy, nil
}
