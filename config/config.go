package config

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
)

const (
	DefaultLearningRate = 0.01
	DefaultEpoch        = 50

	LearningRateFlag = "-l"
	EpochFlag        = "-e"
)

const Usage = `Usage:
    perceptron filename [options]
    where options:
        -l arg: Specify a learning rate 'arg' in the range [0,1]
        -e arg: Specify a number of epochs 'arg' in the range [0,255] to train`

var (
	ErrNoLearningRateArg      = errors.New("no argument for -l learning rate flag")
	ErrInvalidLearningRateArg = errors.New("invalid argument for -l learning rate flag")
	ErrLearningRateRange      = errors.New("learning rate -l argument should be in range [0,1]")
	ErrNoEpochArg             = errors.New("no argument for -e epochs flag")
	ErrInvalidEpochArg        = errors.New("invalid argument for -e epochs flag, should be an integer in range [0,255]")
	ErrNoFilename             = errors.New("no training data filename provided")
	ErrNoSuchFile             = errors.New("error opening training file: there's no such file")
)

type Config struct {
	LearningRate float64
	Epoch        uint8
	DataFile     string
}

// New は os.Args と同じ形式 (先頭はプログラム名) の引数を検証する。
// 検証は -l, -e, ファイル名の順に行い、最初に見つかったエラーを返す。
func New(args []string) (Config, error) {
	lr, err := parseLearningRate(args)
	if err != nil {
		return Config{}, err
	}

	epoch, err := parseEpoch(args)
	if err != nil {
		return Config{}, err
	}

	if len(args) < 2 {
		return Config{}, ErrNoFilename
	}
	path := args[1]
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Config{}, ErrNoSuchFile
	}

	return Config{
		LearningRate: lr,
		Epoch:        epoch,
		DataFile:     path,
	}, nil
}

// flagValue は最初に現れた flag の次の引数を返す。flag が無ければ ok=false。
func flagValue(args []string, flag string) (value string, ok bool, err error) {
	for i, arg := range args {
		if arg != flag {
			continue
		}
		if i == len(args)-1 {
			return "", true, errNoArg
		}
		return args[i+1], true, nil
	}
	return "", false, nil
}

var errNoArg = errors.New("no argument")

func parseLearningRate(args []string) (float64, error) {
	v, ok, err := flagValue(args, LearningRateFlag)
	if err != nil {
		return 0, ErrNoLearningRateArg
	}
	if !ok {
		return DefaultLearningRate, nil
	}

	lr, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, ErrInvalidLearningRateArg
	}
	if lr < 0 || lr > 1 {
		return 0, ErrLearningRateRange
	}
	return lr, nil
}

func parseEpoch(args []string) (uint8, error) {
	v, ok, err := flagValue(args, EpochFlag)
	if err != nil {
		return 0, ErrNoEpochArg
	}
	if !ok {
		return DefaultEpoch, nil
	}

	epoch, err := strconv.ParseUint(v, 10, 8)
	if err != nil {
		return 0, ErrInvalidEpochArg
	}
	return uint8(epoch), nil
}
