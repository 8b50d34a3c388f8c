// Package cmdutils provides utility functions for running commands.
package cmdutils

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"time"
)

// Result is the outcome of a command which ran to completion.
type Result struct {
	Stdout   *bytes.Buffer
	Stderr   *bytes.Buffer
	ExitCode int
}

// Run executes the command specified by name with arguments args in dir, using the provided context.
// env is added to the current environment.
//
// A non-zero exit code is not an error: err is only set when the command could not run to completion.
func Run(ctx context.Context, dir string, env []string, name string, args ...string) (res Result, err error) {
	res = Result{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	c.Stdout = res.Stdout
	c.Stderr = res.Stderr
	c.Env = append(c.Env, "LANG=C")
	c.Env = append(c.Env, os.Environ()...)
	c.Env = append(c.Env, env...)

	err = c.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && ctx.Err() == nil {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}

	return res, err
}

// RunWithTimeout calls Run but a timeout is added to the provided context.
func RunWithTimeout(ctx context.Context, timeout time.Duration, dir string, env []string, name string, args ...string) (Result, error) {
	c, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return Run(c, dir, env, name, args...)
}
