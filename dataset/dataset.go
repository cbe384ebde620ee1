package dataset

import (
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

const (
	ImageRows = 28
	ImageCols = 28
	ImageSize = ImageRows * ImageCols

	// ラベル + ピクセル
	FieldsPerRow = 1 + ImageSize

	// ラベル, ピクセル, バイアス特徴量
	SampleRowSize = FieldsPerRow + 1

	// バイアス特徴量込みの訓練用入力の次元数
	TrainInputSize = ImageSize + 1

	ClassNum    = 10
	TestPercent = 20
	PixelScale  = 255.0
	BiasFeature = 1.0
)

var (
	ErrNoFilename      = errors.New("no training data filename provided")
	ErrNoSuchFile      = errors.New("error opening training file: there's no such file")
	ErrUnreadable      = errors.New("error reading training file")
	ErrMalformedField  = errors.New("malformed csv field")
	ErrInconsistentRow = errors.New("inconsistent csv row length")
	ErrEmpty           = errors.New("training file contains no samples")
)

// Sample はテスト用の (ピクセル, 正解ラベル) の組。Input にバイアス特徴量は含まない。
type Sample struct {
	Input []float64
	Label int
}

type Samples []Sample

type Dataset struct {
	// 1行 = 784ピクセル + バイアス特徴量(1.0)。ラベルは含まない。
	TrainInputs *mat.Dense
	TrainLabels []int
	Tests       Samples
}

func (d *Dataset) TrainNum() int {
	return len(d.TrainLabels)
}

func (d *Dataset) TestNum() int {
	return len(d.Tests)
}

// Load はファイルを読み込み Parse する。
func Load(path string) (*Dataset, error) {
	if path == "" {
		return nil, ErrNoFilename
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrNoSuchFile, "%s", path)
		}
		return nil, errors.Wrapf(ErrUnreadable, "%s: %v", path, err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(ErrUnreadable, "%s: %v", path, err)
	}
	return Parse(string(b))
}

// Parse は空白区切りの行トークンを読み、先頭 TestPercent% をテスト用、残りを訓練用に分ける。
// 1つでも不正な行があれば何も返さない。
func Parse(text string) (*Dataset, error) {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return nil, ErrEmpty
	}

	rows := make([][]float64, len(tokens))
	for i, token := range tokens {
		row, err := parseRow(token, i)
		if err != nil {
			return nil, err
		}
		rows[i] = row
	}

	testN := len(rows) * TestPercent / 100
	tests := make(Samples, testN)
	for i, row := range rows[:testN] {
		tests[i] = Sample{
			Input: row[1 : 1+ImageSize : 1+ImageSize],
			Label: recoverLabel(row[0]),
		}
	}

	trainRows := rows[testN:]
	trainN := len(trainRows)
	data := make([]float64, 0, trainN*TrainInputSize)
	labels := make([]int, trainN)
	for i, row := range trainRows {
		labels[i] = recoverLabel(row[0])
		data = append(data, row[1:]...)
	}

	return &Dataset{
		TrainInputs: mat.NewDense(trainN, TrainInputSize, data),
		TrainLabels: labels,
		Tests:       tests,
	}, nil
}

// parseRow は "label,p0,...,p783" を [label/255, p0/255, ..., p783/255, 1.0] にする。
func parseRow(token string, rowIdx int) ([]float64, error) {
	fields := strings.Split(token, ",")
	if len(fields) != FieldsPerRow {
		return nil, errors.Wrapf(ErrInconsistentRow, "row %d: got %d fields, want %d", rowIdx, len(fields), FieldsPerRow)
	}

	row := make([]float64, 0, SampleRowSize)
	for j, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedField, "row %d, field %d: %q", rowIdx, j, field)
		}
		row = append(row, v/PixelScale)
	}

	label := row[0] * PixelScale
	if label != math.Trunc(label) || label < 0 || label >= ClassNum {
		return nil, errors.Wrapf(ErrMalformedField, "row %d: label %q is not a digit", rowIdx, fields[0])
	}

	row = append(row, BiasFeature)
	return row, nil
}

func recoverLabel(scaled float64) int {
	return int(math.Round(scaled * PixelScale))
}
