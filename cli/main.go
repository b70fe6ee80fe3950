package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/vecbench/vbench/cli/commands"
	"github.com/vecbench/vbench/cli/project"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			log.Fatal(project.InternalError("Unhandled error: %v", r))
		}
	}()

	commands.Execute()
}
