package templates

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

// FileTemplate stores a single file template
type FileTemplate struct {
	Path    string
	Mode    os.FileMode
	Content string
}

var funcMap = template.FuncMap{
	"Repeat": repeat,
}

// repeat returns 0..n-1, it's used to range over a repetition count
func repeat(n int) []int {
	if n < 0 {
		n = 0
	}

	res := make([]int, n)
	for i := range res {
		res[i] = i
	}

	return res
}

// Render returns the templated file path and content
func (t *FileTemplate) Render(ctx interface{}) (string, string, error) {
	filePath, err := GetTemplatedStr(&t.Path, ctx)
	if err != nil {
		return "", "", fmt.Errorf("Failed to get file path by template %s: %s", t.Path, err)
	}

	content, err := GetTemplatedStr(&t.Content, ctx)
	if err != nil {
		return "", "", fmt.Errorf("Failed to template a file %s content: %s", filePath, err)
	}

	return filePath, content, nil
}

// Instantiate writes the templated file to destDir and returns its path.
// destDir isn't created, a missing directory is an error.
func (t *FileTemplate) Instantiate(destDir string, ctx interface{}) (string, error) {
	filePath, content, err := t.Render(ctx)
	if err != nil {
		return "", err
	}

	fullFilePath := filepath.Join(destDir, filePath)
	f, err := os.OpenFile(fullFilePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, t.Mode)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := f.WriteString(content); err != nil {
		return "", fmt.Errorf("Failed to write %s: %s", fullFilePath, err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("Failed to close %s: %s", fullFilePath, err)
	}

	return fullFilePath, nil
}

func GetTemplatedStr(text *string, obj interface{}) (string, error) {
	tmpl, err := template.New("s").Funcs(funcMap).Parse(*text)
	if err != nil {
		return "", err
	}

	buf := new(bytes.Buffer)
	if err = tmpl.Execute(buf, obj); err != nil {
		return "", err
	}

	return buf.String(), nil
}
