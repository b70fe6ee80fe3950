package version

import (
	"fmt"
	"runtime"
	"strings"

	goVersion "github.com/hashicorp/go-version"

	"github.com/vecbench/vbench/cli/common"
	"github.com/vecbench/vbench/cli/templates"
)

var (
	gitTag       string
	gitCommit    string
	versionLabel string
)

const (
	unknownVersion  = "<unknown>"
	cliVersionTitle = "Vector benchmark tools"
)

// NormalizeVersion turns a git tag like "v1.2" into "1.2.0".
// Tags that aren't versions are returned as is.
func NormalizeVersion(tag string, label string) string {
	if tag == "" {
		return unknownVersion
	}

	version := tag
	if normalizedVersion, err := goVersion.NewVersion(tag); err == nil {
		version = strings.Join(common.IntsToStrings(normalizedVersion.Segments()), ".")
	}

	if label != "" {
		version = fmt.Sprintf("%s/%s", version, label)
	}

	return version
}

func BuildCliVersionString() string {
	return formatVersion(cliVersionTmpl, map[string]string{
		"Title":   cliVersionTitle,
		"Version": NormalizeVersion(gitTag, versionLabel),
		"OS":      runtime.GOOS,
		"Arch":    runtime.GOARCH,
		"Commit":  gitCommit,
	})
}

func formatVersion(template string, templateArgs map[string]string) string {
	versionMsg, err := templates.GetTemplatedStr(&template, templateArgs)

	if err != nil {
		panic(err)
	}

	return versionMsg
}

var (
	cliVersionTmpl = `{{ .Title }}
 Version:	{{ .Version }}
 OS/Arch: 	{{ .OS }}/{{ .Arch }}
 Git commit:	{{ .Commit }}
`
)
