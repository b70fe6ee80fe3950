package common

import (
	"bufio"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/google/uuid"
	"github.com/otiai10/copy"
)

// IsDir checks if specified path is an existing directory
func IsDir(path string) (bool, error) {
	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	} else if err != nil {
		return false, err
	}

	return fileInfo.IsDir(), nil
}

// FileLinesScanner returns scanner for file
func FileLinesScanner(reader io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 64*1024), 64*1024*1024)
	scanner.Split(bufio.ScanLines)
	return scanner
}

// GetFileContentBytes returns file content
func GetFileContentBytes(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	fileContent, err := ioutil.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return fileContent, nil
}

// GetFileContent returns file content
func GetFileContent(path string) (string, error) {
	fileContent, err := GetFileContentBytes(path)
	if err != nil {
		return "", err
	}

	return string(fileContent), nil
}

// TmpFilePath returns a unique hidden path in the directory of destPath
func TmpFilePath(destPath string) string {
	return filepath.Join(
		filepath.Dir(destPath),
		fmt.Sprintf(".%s.%s.tmp", filepath.Base(destPath), uuid.New().String()),
	)
}

// WriteFileAtomic calls write with a temporary file placed next to destPath
// and renames it to destPath only if write succeeds, so readers see either
// the old or the new content. If rename fails the file is copied instead.
// The destination directory must exist.
func WriteFileAtomic(destPath string, write func(w io.Writer) error) error {
	destDir := filepath.Dir(destPath)
	if isDir, err := IsDir(destDir); err != nil {
		return fmt.Errorf("Failed to use directory %s: %s", destDir, err)
	} else if !isDir {
		return fmt.Errorf("Directory %s doesn't exist", destDir)
	}

	tmpPath := TmpFilePath(destPath)
	tmpFile, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("Failed to create tmp file: %s", err)
	}
	defer os.Remove(tmpPath)
	defer tmpFile.Close()

	bufWriter := bufio.NewWriter(tmpFile)
	if err := write(bufWriter); err != nil {
		return err
	}

	if err := bufWriter.Flush(); err != nil {
		return fmt.Errorf("Failed to flush %s: %s", tmpPath, err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("Failed to close %s: %s", tmpPath, err)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		log.Debugf("Failed to rename %s: %s, copy it to %s", tmpPath, err, destPath)
		if err := copy.Copy(tmpPath, destPath, copy.Options{Sync: true}); err != nil {
			return fmt.Errorf("Failed to copy tmp file: %s", err)
		}
	}

	return nil
}
