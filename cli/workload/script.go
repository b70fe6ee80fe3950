package workload

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/apex/log"
	"github.com/vecbench/vbench/cli/common"
	"github.com/vecbench/vbench/cli/project"
	"github.com/vecbench/vbench/cli/templates"
)

const (
	scriptFileMode = 0644

	scriptPathTemplate = "workload-{{ .Dataset }}-{{ .IndexType }}-script{{ .Index }}.sh"
	scriptGlobTemplate = "workload-{{ .Dataset }}-{{ .IndexType }}-script*.sh"
)

// The index is rebuilt and dropped on every repetition
const ivfflatScriptTemplate = `load {{ .DatasetFile }} {{ .Table }}
{{ range Repeat .Repetitions }}create_index {{ $.Table }} {{ $.Column }} {{ $.IndexType }} {{ $.Param }}
similar_vector {{ $.QueryFile }} {{ $.GroundTruthFile }} {{ $.Table }} {{ $.Column }}
drop_index {{ $.Table }}
{{ end }}quit
`

// The index is built once, search parameters are reset between queries
const hnswScriptTemplate = `load {{ .DatasetFile }} {{ .Table }}
create_index {{ .Table }} {{ .Column }} {{ .IndexType }} {{ .Param }}
{{ range $i := Repeat .Repetitions }}{{ if $i }}reset_para {{ $.Table }} {{ $.IndexType }} {{ $.Param }}
{{ end }}similar_vector {{ $.QueryFile }} {{ $.GroundTruthFile }} {{ $.Table }} {{ $.Column }}
{{ end }}drop_index {{ .Table }}
quit
`

var (
	scriptTemplates = map[string]*templates.FileTemplate{
		IvfflatType: {
			Path:    scriptPathTemplate,
			Mode:    scriptFileMode,
			Content: ivfflatScriptTemplate,
		},
		HnswType: {
			Path:    scriptPathTemplate,
			Mode:    scriptFileMode,
			Content: hnswScriptTemplate,
		},
	}
)

// IndexTypes returns supported index types
func IndexTypes() []string {
	res := make([]string, 0, len(scriptTemplates))
	for indexType := range scriptTemplates {
		res = append(res, indexType)
	}

	sort.Strings(res)
	return res
}

func getScriptTemplate(indexType string) (*templates.FileTemplate, error) {
	tmpl, found := scriptTemplates[indexType]
	if !found {
		return nil, fmt.Errorf("Unsupported index type %q", indexType)
	}

	return tmpl, nil
}

// ScriptName returns the file name of the i-th script of the sweep
func ScriptName(sweep *Sweep, i int) (string, error) {
	tmpl := scriptPathTemplate
	name, err := templates.GetTemplatedStr(&tmpl, scriptCtx{Sweep: *sweep, Index: i})
	if err != nil {
		return "", project.InternalError("Failed to template script name: %s", err)
	}

	return name, nil
}

// ScriptPath returns the path of the i-th script of the sweep
func ScriptPath(sweep *Sweep, i int) (string, error) {
	name, err := ScriptName(sweep, i)
	if err != nil {
		return "", err
	}

	return filepath.Join(sweep.OutDir, name), nil
}

// Render returns the script content for the i-th parameter of the sweep
func Render(sweep *Sweep, i int) (string, error) {
	if i < 0 || i >= len(sweep.Params) {
		return "", project.InternalError("Parameter index %d is out of range [0, %d)", i, len(sweep.Params))
	}

	tmpl, err := getScriptTemplate(sweep.IndexType)
	if err != nil {
		return "", err
	}

	_, content, err := tmpl.Render(sweep.ctxFor(i))
	if err != nil {
		return "", project.InternalError("%s", err)
	}

	return content, nil
}

// Generate writes one script per parameter value into sweep.OutDir
// and returns the written paths in parameter order.
// The output directory isn't created, and files written before
// a failure are left in place.
func Generate(sweep *Sweep) ([]string, error) {
	if err := sweep.Validate(); err != nil {
		return nil, err
	}

	tmpl, err := getScriptTemplate(sweep.IndexType)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(sweep.Params))

	for i, param := range sweep.Params {
		path, err := tmpl.Instantiate(sweep.OutDir, sweep.ctxFor(i))
		if err != nil {
			return paths, fmt.Errorf("Failed to write script for %s %d: %s", sweep.IndexType, param, err)
		}

		log.Debugf("Written %s", path)
		paths = append(paths, path)
	}

	return paths, nil
}

// FindStale returns scripts of the sweep's dataset and index type in
// sweep.OutDir that aren't listed in generated
func FindStale(sweep *Sweep, generated []string) ([]string, error) {
	globTmpl := scriptGlobTemplate
	pattern, err := templates.GetTemplatedStr(&globTmpl, sweep)
	if err != nil {
		return nil, project.InternalError("Failed to template scripts pattern: %s", err)
	}

	existing, err := filepath.Glob(filepath.Join(sweep.OutDir, pattern))
	if err != nil {
		return nil, fmt.Errorf("Failed to list %s: %s", sweep.OutDir, err)
	}

	cleanGenerated := make([]string, len(generated))
	for i, path := range generated {
		cleanGenerated[i] = filepath.Clean(path)
	}

	return common.GetStringSlicesDifference(existing, cleanGenerated), nil
}
