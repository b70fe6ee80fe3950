// +build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// can be overwritten by GOEXE
var goExe = "go"

// can be overwritten by CLIEXE
var cliExe = "vbench"

var packageName = "github.com/vecbench/vbench/cli"
var packagePath = "./cli"

func getBuildEnv() map[string]string {
	var gitTag string
	var gitCommit string

	if _, err := exec.LookPath("git"); err == nil {
		gitTag, _ = sh.Output("git", "describe", "--tags")
		gitCommit, _ = sh.Output("git", "rev-parse", "--short", "HEAD")
	}

	return map[string]string{
		"PACKAGE":       packageName,
		"GIT_TAG":       gitTag,
		"GIT_COMMIT":    gitCommit,
		"VERSION_LABEL": os.Getenv("VERSION_LABEL"),
	}
}

var ldflags = []string{
	"-s", "-w",
	"-X ${PACKAGE}/version.gitTag=${GIT_TAG}",
	"-X ${PACKAGE}/version.gitCommit=${GIT_COMMIT}",
	"-X ${PACKAGE}/version.versionLabel=${VERSION_LABEL}",
}
var ldflagsStr = strings.Join(ldflags, " ")

func init() {
	if specifiedGoExe := os.Getenv("GOEXE"); specifiedGoExe != "" {
		goExe = specifiedGoExe
	}

	if specifiedCliExe := os.Getenv("CLIEXE"); specifiedCliExe != "" {
		cliExe = specifiedCliExe
	}
}

// Run go vet
func Lint() error {
	fmt.Println("Running go vet...")
	return sh.RunV(goExe, "vet", "./cli/...")
}

// Run unit tests
func Unit() error {
	fmt.Println("Running unit tests...")
	if mg.Verbose() {
		return sh.RunV(goExe, "test", "-v", "./cli/...")
	}
	return sh.RunV(goExe, "test", "./cli/...")
}

// Run all tests
func Test() {
	mg.SerialDeps(Lint, Unit)
}

// Build vbench binary with version info
func Build() error {
	fmt.Println("Building...")
	return sh.RunWith(
		getBuildEnv(), goExe, "build",
		"-o", cliExe,
		"-ldflags", ldflagsStr,
		packagePath,
	)
}

// Generate shell completion scripts
func Completion() error {
	mg.Deps(Build)

	fmt.Println("Generating completion scripts...")
	return sh.RunV("./"+cliExe, "completion")
}

// Clean up after yourself
func Clean() {
	fmt.Println("Cleaning...")
	os.RemoveAll(cliExe)
	os.RemoveAll("completion")
}
