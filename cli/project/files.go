package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/vecbench/vbench/cli/common"
	"github.com/vecbench/vbench/cli/context"
)

const (
	vbenchConfFilename = ".vbench.yml"

	outDirSection  = "out-dir"
	dataDirSection = "data-dir"
	sweepsSection  = "sweeps"
)

var (
	defaultPaths map[string]string
)

func init() {
	defaultPaths = map[string]string{
		outDirSection:  ".",
		dataDirSection: ".",
	}
}

type VBenchConf map[string]interface{}

type PathOpts struct {
	SpecifiedPath   string
	ConfSectionName string
	DefaultPath     string
	BasePath        string
	GetAbs          bool
}

// GetPath picks a path from the flag value, then the config section,
// then the default. Relative paths are joined to BasePath if it's set.
func GetPath(conf VBenchConf, opts PathOpts) (string, error) {
	var path string
	var err error

	if opts.SpecifiedPath != "" {
		path = opts.SpecifiedPath
	} else if conf == nil || opts.ConfSectionName == "" {
		path = opts.DefaultPath
	} else if pathFromConf, found := conf[opts.ConfSectionName]; found {
		var ok bool
		if path, ok = pathFromConf.(string); !ok {
			return "", fmt.Errorf("%s config value should be string", opts.ConfSectionName)
		}
	} else {
		path = opts.DefaultPath
	}

	if path != "" && opts.BasePath != "" && !filepath.IsAbs(path) {
		path = filepath.Join(opts.BasePath, path)
	}

	if opts.GetAbs && path != "" {
		if path, err = filepath.Abs(path); err != nil {
			return "", fmt.Errorf("Failed to get absolute path: %s", err)
		}
	}

	return path, nil
}

func setConfPath(ctx *context.Ctx) error {
	if ctx.Project.ConfPath != "" {
		return nil
	}

	curDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("Failed to get current directory: %s", err)
	}

	ctx.Project.ConfPath = filepath.Join(curDir, vbenchConfFilename)
	return nil
}

// ParseConf reads .vbench.yml. A missing file gives an empty config,
// unless the path was specified explicitly.
func ParseConf(ctx *context.Ctx) (VBenchConf, error) {
	confIsSpecified := ctx.Project.ConfPath != ""

	if err := setConfPath(ctx); err != nil {
		return nil, fmt.Errorf("Failed to set conf path: %s", err)
	}

	conf := make(VBenchConf)

	if _, err := os.Stat(ctx.Project.ConfPath); err == nil {
		log.Debugf("Using configuration from %s", ctx.Project.ConfPath)
		if conf, err = common.ParseYmlFile(ctx.Project.ConfPath); err != nil {
			return nil, fmt.Errorf("Failed to read configuration from file: %s", err)
		}
	} else if !os.IsNotExist(err) || confIsSpecified {
		return nil, fmt.Errorf("Failed to use conf file: %s", err)
	}

	return conf, nil
}

// SetPaths fills the output and data directories.
// The priority of sources is:
// * user-specified flags
// * value from .vbench.yml
// * current directory
func SetPaths(ctx *context.Ctx, conf VBenchConf) error {
	var err error

	ctx.Project.OutDir, err = GetPath(conf, PathOpts{
		SpecifiedPath:   ctx.Project.OutDir,
		ConfSectionName: outDirSection,
		DefaultPath:     defaultPaths[outDirSection],
	})
	if err != nil {
		return fmt.Errorf("Failed to detect output dir: %s", err)
	}

	ctx.Project.DataDir, err = GetPath(conf, PathOpts{
		SpecifiedPath:   ctx.Project.DataDir,
		ConfSectionName: dataDirSection,
		DefaultPath:     defaultPaths[dataDirSection],
	})
	if err != nil {
		return fmt.Errorf("Failed to detect data dir: %s", err)
	}

	return nil
}
