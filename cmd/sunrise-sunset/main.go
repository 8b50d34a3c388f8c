// Package main is the entry point of sunrise-sunset.
package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/ubuntu/sunrise-sunset/cmd/sunrise-sunset/commands"
	"github.com/ubuntu/sunrise-sunset/internal/pipeline"
)

func main() {
	a, err := commands.New()
	if err != nil {
		slog.Error("Could not create application", "error", err)
		os.Exit(1)
	}

	os.Exit(run(a))
}

type app interface {
	Run() error
	UsageError() bool
}

func run(a app) int {
	if err := a.Run(); err != nil {
		slog.Error(err.Error())

		if a.UsageError() {
			return 2
		}
		var stageErr *pipeline.StageError
		if errors.As(err, &stageErr) {
			return stageErr.Stage.ExitCode()
		}
		return 1
	}

	return 0
}
