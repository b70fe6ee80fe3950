package common

import (
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntsToStrings(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.Equal([]string{"3", "50", "-1"}, IntsToStrings([]int{3, 50, -1}))
	assert.Len(IntsToStrings(nil), 0)
}

func TestGetStringSlicesDifference(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.Equal(
		[]string{"a", "c"},
		GetStringSlicesDifference([]string{"c", "b", "a"}, []string{"b", "d"}),
	)
	assert.Len(GetStringSlicesDifference([]string{"a"}, []string{"a", "b"}), 0)
	assert.Len(GetStringSlicesDifference(nil, []string{"a"}), 0)
}

func TestStringSliceContains(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.True(StringSliceContains([]string{"hnsw", "ivfflat"}, "hnsw"))
	assert.False(StringSliceContains([]string{"hnsw", "ivfflat"}, "flat"))
	assert.False(StringSliceContains(nil, ""))
}

func TestFormatParams(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	params := struct {
		Table string
		Dim   int
	}{"sift", 128}

	lines := strings.Split(strings.TrimSpace(FormatParams("Sweep", params)), "\n")
	assert.Len(lines, 3)
	assert.Equal("Sweep:", lines[0])
	assert.Equal([]string{"Dim:", "128"}, strings.Fields(lines[1]))
	assert.Equal([]string{"Table:", "sift"}, strings.Fields(lines[2]))
}

func TestParseYmlFile(t *testing.T) {
	assert := assert.New(t)

	dir, err := ioutil.TempDir("", "yml")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "conf.yml")
	if err := ioutil.WriteFile(path, []byte("out-dir: scripts\nrepetitions: 3\n"), 0644); err != nil {
		log.Fatal(err)
	}

	conf, err := ParseYmlFile(path)
	assert.Nil(err)
	assert.Equal("scripts", conf["out-dir"])
	assert.Equal(3, conf["repetitions"])

	if err := ioutil.WriteFile(path, []byte("- a\n- b\n"), 0644); err != nil {
		log.Fatal(err)
	}
	_, err = ParseYmlFile(path)
	assert.NotNil(err)

	_, err = ParseYmlFile(filepath.Join(dir, "missing.yml"))
	assert.NotNil(err)
}

func TestRes(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	res := Res{ID: "script0.sh", Status: ResStatusOk}
	assert.True(strings.HasPrefix(res.String(), "script0.sh... "))
	assert.Contains(res.String(), "OK")

	res = Res{ID: "script0.sh", Status: ResStatusType(42)}
	assert.Equal("script0.sh... Status 42", res.String())
}
