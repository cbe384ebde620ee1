package dataset_test

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sw965/perceptron/dataset"
)

// row はラベルと 784 ピクセル (i 番目は (seed+i)%256) の CSV 行を作る。
func row(label, seed int) (string, []float64) {
	fields := make([]string, 0, dataset.FieldsPerRow)
	fields = append(fields, strconv.Itoa(label))
	pixels := make([]float64, dataset.ImageSize)
	for i := range pixels {
		p := (seed + i) % 256
		pixels[i] = float64(p)
		fields = append(fields, strconv.Itoa(p))
	}
	return strings.Join(fields, ","), pixels
}

func scaled(pixels []float64) []float64 {
	y := make([]float64, len(pixels))
	for i, p := range pixels {
		y[i] = p / 255.0
	}
	return y
}

func TestParseSplit(t *testing.T) {
	for _, n := range []int{1, 4, 5, 9, 10, 23} {
		lines := make([]string, n)
		for i := range lines {
			lines[i], _ = row(i%10, i)
		}
		d, err := dataset.Parse(strings.Join(lines, "\n"))
		require.NoError(t, err)

		testN := n * 20 / 100
		assert.Equal(t, testN, d.TestNum(), "rows=%d", n)
		assert.Equal(t, n-testN, d.TrainNum(), "rows=%d", n)

		r, c := d.TrainInputs.Dims()
		assert.Equal(t, n-testN, r)
		assert.Equal(t, 785, c)
		for _, s := range d.Tests {
			assert.Len(t, s.Input, 784)
		}

		// ファイル順
		for i, s := range d.Tests {
			assert.Equal(t, i%10, s.Label)
		}
		for i, label := range d.TrainLabels {
			assert.Equal(t, (testN+i)%10, label)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	testLine, testPixels := row(7, 3)
	var lines []string
	lines = append(lines, testLine)
	trainLine, trainPixels := row(4, 100)
	for i := 0; i < 4; i++ {
		lines = append(lines, trainLine)
	}

	// 空白の種類は問わない
	d, err := dataset.Parse(strings.Join(lines, " \t\n"))
	require.NoError(t, err)
	require.Equal(t, 1, d.TestNum())
	require.Equal(t, 4, d.TrainNum())

	assert.Equal(t, 7, d.Tests[0].Label)
	assert.Equal(t, scaled(testPixels), d.Tests[0].Input)

	expected := append(scaled(trainPixels), 1.0)
	for i := 0; i < d.TrainNum(); i++ {
		assert.Equal(t, 4, d.TrainLabels[i])
		assert.Equal(t, expected, d.TrainInputs.RawRowView(i))
	}
}

func TestParseAllLabels(t *testing.T) {
	var lines []string
	for label := 0; label < 10; label++ {
		line, _ := row(label, label)
		lines = append(lines, line)
	}
	d, err := dataset.Parse(strings.Join(lines, "\n"))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, []int{d.Tests[0].Label, d.Tests[1].Label})
	assert.Equal(t, []int{2, 3, 4, 5, 6, 7, 8, 9}, d.TrainLabels)
}

func TestParseErrors(t *testing.T) {
	good, _ := row(1, 0)

	testCases := []struct {
		name string
		text string
		err  error
	}{
		{"empty", "", dataset.ErrEmpty},
		{"blank", " \n\t ", dataset.ErrEmpty},
		{"non numeric", good + "\n" + strings.Replace(good, "1,", "x,", 1), dataset.ErrMalformedField},
		{"empty field", good + "\n" + strings.Replace(good, ",", ",,", 1), dataset.ErrInconsistentRow},
		{"short row", good + "\n" + good[:strings.LastIndex(good, ",")], dataset.ErrInconsistentRow},
		{"long row", good + "\n" + good + ",0", dataset.ErrInconsistentRow},
		{"label out of range", strings.Replace(good, "1,", "12,", 1), dataset.ErrMalformedField},
		{"fractional label", strings.Replace(good, "1,", "1.5,", 1), dataset.ErrMalformedField},
		{"negative label", strings.Replace(good, "1,", "-1,", 1), dataset.ErrMalformedField},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := dataset.Parse(tc.text)
			assert.Nil(t, d)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.err), "got %v", err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	var lines []string
	for i := 0; i < 10; i++ {
		line, _ := row(i, i)
		lines = append(lines, line)
	}
	path := filepath.Join(dir, "train.csv")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))

	d, err := dataset.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, d.TestNum())
	assert.Equal(t, 8, d.TrainNum())
}

func TestLoadErrors(t *testing.T) {
	_, err := dataset.Load("")
	assert.True(t, errors.Is(err, dataset.ErrNoFilename))

	_, err = dataset.Load(filepath.Join(t.TempDir(), "nofile.csv"))
	assert.True(t, errors.Is(err, dataset.ErrNoSuchFile))

	// ディレクトリは読めない
	_, err = dataset.Load(t.TempDir())
	assert.True(t, errors.Is(err, dataset.ErrUnreadable))

	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("1,2,3"), 0o644))
	_, err = dataset.Load(path)
	assert.True(t, errors.Is(err, dataset.ErrInconsistentRow))
}
