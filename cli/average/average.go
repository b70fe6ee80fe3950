package average

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/vecbench/vbench/cli/common"
	"github.com/vecbench/vbench/cli/context"
)

const (
	DefaultInputPath = "ivfflat_build.txt"

	separator = ", "
)

// AverageLine returns the mean of the pair sums of one result line
func AverageLine(line string) (float64, error) {
	pairs, err := ParseLine(line)
	if err != nil {
		return 0, err
	}

	var sum float64
	for _, pair := range pairs {
		sum += pair.Sum()
	}

	return sum / float64(len(pairs)), nil
}

// Summarize averages every line of reader and joins the results.
// Each average is followed by ", ", including the last one.
func Summarize(reader io.Reader) (string, error) {
	var res strings.Builder

	scanner := common.FileLinesScanner(reader)

	lineNum := 0
	for scanner.Scan() {
		lineNum++

		avg, err := AverageLine(scanner.Text())
		if err != nil {
			return "", fmt.Errorf("Line %d: %s", lineNum, err)
		}

		log.Debugf("Line %d: %s", lineNum, FormatFloat(avg))
		res.WriteString(FormatFloat(avg))
		res.WriteString(separator)
	}

	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("Failed to read: %s", err)
	}

	return res.String(), nil
}

// FormatFloat formats a float the shortest way that parses back to the
// same value. Integral values keep a ".0" suffix, very small and very
// large values use the exponent form.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

// Run prints the summary of ctx.Average.InputPath
func Run(ctx *context.Ctx) error {
	inputPath := ctx.Average.InputPath
	if inputPath == "" {
		inputPath = DefaultInputPath
	}

	file, err := common.OpenDecompressed(inputPath)
	if err != nil {
		return fmt.Errorf("Failed to open result file: %s", err)
	}
	defer file.Close()

	summary, err := Summarize(file)
	if err != nil {
		return fmt.Errorf("Failed to summarize %s: %s", inputPath, err)
	}

	fmt.Println(summary)
	return nil
}
