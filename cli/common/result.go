package common

import (
	"fmt"

	"github.com/fatih/color"
)

type ResStatusType int

const (
	ResStatusOk ResStatusType = iota
	ResStatusUnchanged
	ResStatusChanged
	ResStatusFailed
)

// Res is the outcome of producing one artifact
type Res struct {
	ID     string
	Status ResStatusType
	Error  error
}

func (res *Res) String() string {
	resString, found := resStrings[res.Status]
	if !found {
		resString = fmt.Sprintf("Status %d", res.Status)
	}

	return fmt.Sprintf("%s... %s", res.ID, resString)
}

func (res *Res) FormatError() error {
	return fmt.Errorf("%s: %s", res.ID, res.Error)
}

var (
	ColorErr  *color.Color
	ColorWarn *color.Color
	ColorOk   *color.Color
	ColorCyan *color.Color

	resStrings map[ResStatusType]string
)

func init() {
	ColorErr = color.New(color.FgRed)
	ColorWarn = color.New(color.FgYellow)
	ColorOk = color.New(color.FgGreen)
	ColorCyan = color.New(color.FgCyan)

	resStrings = make(map[ResStatusType]string)
	resStrings[ResStatusOk] = ColorOk.Sprintf("OK")
	resStrings[ResStatusUnchanged] = ColorOk.Sprintf("UNCHANGED")
	resStrings[ResStatusChanged] = ColorWarn.Sprintf("CHANGED")
	resStrings[ResStatusFailed] = ColorErr.Sprintf("FAILED")
}
