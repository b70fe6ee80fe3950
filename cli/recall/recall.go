package recall

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/vecbench/vbench/cli/common"
	"github.com/vecbench/vbench/cli/context"
)

const (
	DefaultOutPath = "result.txt"

	answerSep      = " "
	groundTruthSep = ","
)

// ParseIds parses one line of ids separated by sep
func ParseIds(line string, sep string) ([]int, error) {
	var fields []string
	if sep == answerSep {
		fields = strings.Fields(line)
	} else {
		fields = strings.Split(line, sep)
	}

	ids := make([]int, 0, len(fields))
	for _, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		id, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("Bad id %q", field)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// ReadIdLists reads one id list per line
func ReadIdLists(reader io.Reader, sep string) ([][]int, error) {
	var lists [][]int

	scanner := common.FileLinesScanner(reader)
	lineNum := 0
	for scanner.Scan() {
		lineNum++

		ids, err := ParseIds(scanner.Text(), sep)
		if err != nil {
			return nil, fmt.Errorf("Line %d: %s", lineNum, err)
		}
		lists = append(lists, ids)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("Failed to read: %s", err)
	}

	return lists, nil
}

func readIdListsFile(path string, sep string) ([][]int, error) {
	file, err := common.OpenDecompressed(path)
	if err != nil {
		return nil, fmt.Errorf("Failed to open %s: %s", path, err)
	}
	defer file.Close()

	lists, err := ReadIdLists(file, sep)
	if err != nil {
		return nil, fmt.Errorf("Failed to read %s: %s", path, err)
	}

	return lists, nil
}

func sortedCopy(ids []int) []int {
	sorted := make([]int, len(ids))
	copy(sorted, ids)
	sort.Ints(sorted)
	return sorted
}

// Recall returns the share of answer ids found in groundTruth.
// An empty answer has recall 0.
func Recall(answer, groundTruth []int) float64 {
	if len(answer) == 0 {
		return 0
	}

	l1 := sortedCopy(answer)
	l2 := sortedCopy(groundTruth)

	found := 0
	i, j := 0, 0
	for i < len(l1) && j < len(l2) {
		switch {
		case l1[i] == l2[j]:
			found++
			i++
			j++
		case l1[i] < l2[j]:
			i++
		default:
			j++
		}
	}

	return float64(found) / float64(len(l1))
}

// Compute returns the recall of every answer line
func Compute(answers, groundTruth [][]int) ([]float64, error) {
	if len(answers) > len(groundTruth) {
		return nil, fmt.Errorf("Answer has %d lines, but ground truth has only %d",
			len(answers), len(groundTruth))
	}

	recalls := make([]float64, len(answers))
	for i, answer := range answers {
		recalls[i] = Recall(answer, groundTruth[i])
	}

	return recalls, nil
}

// Mean returns the average recall
func Mean(recalls []float64) float64 {
	if len(recalls) == 0 {
		return 0
	}

	var sum float64
	for _, r := range recalls {
		sum += r
	}

	return sum / float64(len(recalls))
}

// Write writes every recall on its own line,
// then an empty line and the mean recall
func Write(w io.Writer, recalls []float64) error {
	bufWriter := bufio.NewWriter(w)

	for _, r := range recalls {
		if _, err := fmt.Fprintln(bufWriter, strconv.FormatFloat(r, 'g', 6, 64)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(bufWriter, "\n%f", Mean(recalls)); err != nil {
		return err
	}

	return bufWriter.Flush()
}

// Run compares the answer file with the ground truth
// and returns the path of the written result
func Run(ctx *context.Ctx) (string, error) {
	recallCtx := &ctx.Recall

	outPath := recallCtx.OutPath
	if outPath == "" {
		outPath = DefaultOutPath
	}
	if ctx.Project.OutDir != "" && !filepath.IsAbs(outPath) {
		outPath = filepath.Join(ctx.Project.OutDir, outPath)
	}

	log.Debugf("Loading answers from %s", recallCtx.AnswerPath)
	answers, err := readIdListsFile(recallCtx.AnswerPath, answerSep)
	if err != nil {
		return "", err
	}

	if len(answers) == 0 {
		return "", fmt.Errorf("Answer file %s is empty", recallCtx.AnswerPath)
	}

	log.Debugf("Loading ground truth from %s", recallCtx.GroundTruthPath)
	groundTruth, err := readIdListsFile(recallCtx.GroundTruthPath, groundTruthSep)
	if err != nil {
		return "", err
	}

	recalls, err := Compute(answers, groundTruth)
	if err != nil {
		return "", err
	}

	err = common.WriteFileAtomic(outPath, func(w io.Writer) error {
		return Write(w, recalls)
	})
	if err != nil {
		return "", fmt.Errorf("Failed to write result: %s", err)
	}

	log.Infof("Mean recall for %d queries: %f", len(recalls), Mean(recalls))

	return outPath, nil
}
