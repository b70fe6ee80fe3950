package common

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

type emptyStruct struct{}
type ReadyChan chan emptyStruct

var (
	spinnerPicture    = spinner.CharSets[9]
	spinnerUpdateTime = 100 * time.Millisecond

	ready = emptyStruct{}
)

func SendReady(c ReadyChan) {
	c <- ready
}

// StartCommandSpinner starts running spinner
// until `ready` flag is received from the channel
func StartCommandSpinner(c ReadyChan, wg *sync.WaitGroup, prefix string) {
	defer wg.Done()

	s := spinner.New(spinnerPicture, spinnerUpdateTime)
	if prefix != "" {
		s.Prefix = fmt.Sprintf("%s ", strings.TrimSpace(prefix))
	}

	s.Start()

	// wait for the function to complete
	<-c

	s.Stop()
}

// RunFunctionWithSpinner executes function and starts a spinner
// with specified prefix in a background until function returns.
// The spinner is shown only if stdout is a terminal and showSpinner is set.
func RunFunctionWithSpinner(f func() error, prefix string, showSpinner bool) error {
	var err error
	var wg sync.WaitGroup
	c := make(ReadyChan, 1)

	if showSpinner && isatty.IsTerminal(os.Stdout.Fd()) {
		wg.Add(1)
		go StartCommandSpinner(c, &wg, prefix)
	}

	wg.Add(1)
	go func(f func() error, err *error) {
		defer wg.Done()
		defer SendReady(c)

		*err = f()
	}(f, &err)

	wg.Wait()

	return err
}
