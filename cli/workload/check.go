package workload

import (
	"fmt"
	"os"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/vecbench/vbench/cli/common"
)

// ScriptDiff is the difference between a rendered script and the file on disk
type ScriptDiff struct {
	Path      string
	Exists    bool
	DiffLines []string
}

func (d *ScriptDiff) Changed() bool {
	return !d.Exists || len(d.DiffLines) > 0
}

// Check renders every script of the sweep without writing anything
// and compares it with the file already present in sweep.OutDir
func Check(sweep *Sweep) ([]ScriptDiff, error) {
	if err := sweep.Validate(); err != nil {
		return nil, err
	}

	diffs := make([]ScriptDiff, 0, len(sweep.Params))

	for i := range sweep.Params {
		path, err := ScriptPath(sweep, i)
		if err != nil {
			return nil, err
		}

		rendered, err := Render(sweep, i)
		if err != nil {
			return nil, err
		}

		scriptDiff := ScriptDiff{Path: path, Exists: true}

		current, err := common.GetFileContent(path)
		if os.IsNotExist(err) {
			scriptDiff.Exists = false
			current = ""
		} else if err != nil {
			return nil, fmt.Errorf("Failed to read %s: %s", path, err)
		}

		if scriptDiff.DiffLines, err = getDiffLines(current, rendered, path); err != nil {
			return nil, fmt.Errorf("Failed to compute diff for %s: %s", path, err)
		}

		diffs = append(diffs, scriptDiff)
	}

	return diffs, nil
}

func getDiffLines(before, after string, path string) ([]string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: path,
		ToFile:   path,
		Context:  3,
	}

	diffString, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return nil, err
	}

	diffLines := strings.Split(strings.TrimSpace(diffString), "\n")
	if len(diffLines) == 1 && diffLines[0] == "" {
		return nil, nil
	}

	return diffLines, nil
}

// ColorizeDiffLines colors diff lines by their prefix
func ColorizeDiffLines(diffLines []string) []string {
	res := make([]string, len(diffLines))

	for i, line := range diffLines {
		switch {
		case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"):
			res[i] = line
		case strings.HasPrefix(line, "@@"):
			res[i] = common.ColorCyan.Sprint(line)
		case strings.HasPrefix(line, "-"):
			res[i] = common.ColorErr.Sprint(line)
		case strings.HasPrefix(line, "+"):
			res[i] = common.ColorOk.Sprint(line)
		default:
			res[i] = line
		}
	}

	return res
}
