package templates

import (
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTemplatedStr(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	text := `{{ range $i := Repeat .Count }}{{ if $i }},{{ end }}{{ $.Name }}{{ $i }}{{ end }}`

	res, err := GetTemplatedStr(&text, map[string]interface{}{"Name": "b", "Count": 3})
	assert.Nil(err)
	assert.Equal("b0,b1,b2", res)

	res, err = GetTemplatedStr(&text, map[string]interface{}{"Name": "b", "Count": -1})
	assert.Nil(err)
	assert.Equal("", res)

	bad := `{{ .Name `
	_, err = GetTemplatedStr(&bad, nil)
	assert.NotNil(err)
}

func TestInstantiate(t *testing.T) {
	assert := assert.New(t)

	dir, err := ioutil.TempDir("", "templates")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	tmpl := FileTemplate{
		Path:    "script-{{ .Param }}.sh",
		Mode:    0644,
		Content: "create_index t data ivfflat {{ .Param }}\n",
	}

	path, err := tmpl.Instantiate(dir, map[string]int{"Param": 7})
	assert.Nil(err)
	assert.Equal(filepath.Join(dir, "script-7.sh"), path)

	content, err := ioutil.ReadFile(path)
	assert.Nil(err)
	assert.Equal("create_index t data ivfflat 7\n", string(content))

	_, err = tmpl.Instantiate(filepath.Join(dir, "missing"), map[string]int{"Param": 7})
	assert.NotNil(err)
}
