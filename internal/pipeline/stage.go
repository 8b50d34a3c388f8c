package pipeline

import "fmt"

// Stage is a step of a run. A failed run is classified by the stage it failed at.
type Stage int

const (
	// StageConfig covers loading the configuration and finding its default section.
	StageConfig Stage = iota
	// StageURL covers building the request URL.
	StageURL
	// StageFetch covers retrieving the API response.
	StageFetch
	// StageDecode covers parsing, normalizing and decoding the response.
	StageDecode
	// StageWrite covers serializing and writing the output document.
	StageWrite
)

func (s Stage) String() string {
	switch s {
	case StageConfig:
		return "config"
	case StageURL:
		return "url"
	case StageFetch:
		return "fetch"
	case StageDecode:
		return "decode"
	case StageWrite:
		return "write"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// ExitCode is the process exit code reported for a run failing at s.
func (s Stage) ExitCode() int {
	switch s {
	case StageConfig:
		return 3
	case StageURL:
		return 4
	case StageFetch:
		return 5
	case StageDecode:
		return 6
	case StageWrite:
		return 7
	default:
		return 1
	}
}

// StageError is returned by a failed run.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s error: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
