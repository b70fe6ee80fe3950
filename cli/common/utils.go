package common

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/adam-hanna/arrayOperations"
	"github.com/fatih/structs"
	"gopkg.in/yaml.v2"
)

// IntsToStrings converts int slice to strings slice
func IntsToStrings(numbers []int) []string {
	var res []string

	for _, num := range numbers {
		res = append(res, strconv.Itoa(num))
	}

	return res
}

// ParseYmlFile reads YAML file and returns it's content as a map
func ParseYmlFile(path string) (map[string]interface{}, error) {
	fileContent, err := GetFileContentBytes(path)
	if err != nil {
		return nil, fmt.Errorf("Failed to read file: %s", err)
	}

	res := make(map[string]interface{})
	if err := yaml.Unmarshal(fileContent, res); err != nil {
		return nil, fmt.Errorf("Failed to parse %s: %s", path, err)
	}

	return res, nil
}

// GetStringSlicesDifference returns elements of s1 that aren't present in s2
func GetStringSlicesDifference(s1, s2 []string) []string {
	uniqueStrings := arrayOperations.DifferenceString(s1, s2)
	res := arrayOperations.IntersectString(s1, uniqueStrings)

	sort.Strings(res)
	return res
}

func StringSliceContains(s []string, elem string) bool {
	for _, sliceElem := range s {
		if sliceElem == elem {
			return true
		}
	}

	return false
}

// FormatParams formats exported struct fields as an aligned "name: value" table
func FormatParams(title string, params interface{}) string {
	fields := structs.Map(params)

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n", title)

	w := tabwriter.NewWriter(&b, 1, 1, 1, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(w, "\t%s:\t%v\n", name, fields[name])
	}
	w.Flush()

	return b.String()
}

// PrintParams prints formatted parameters to stdout
func PrintParams(title string, params interface{}) {
	fmt.Fprint(os.Stdout, FormatParams(title, params))
}
