// Package constants is responsible for defining the constants used in the application.
// It also provides utility functions to get the default configuration paths.
package constants

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

var (
	// Version is the version of the application.
	Version = "Dev"
)

const (
	// CmdName is the name of the command line tool.
	CmdName = "sunrise-sunset"

	// ConfigName is the base name, without extension, of the configuration file.
	ConfigName = "sunrise_sunset"

	// DefaultConfigPath is the configuration file read when no other one is requested.
	DefaultConfigPath = "/etc/" + ConfigName + ".toml"

	// DefaultAppFolder is the name of the per-user configuration folder.
	DefaultAppFolder = "sunrise-sunset"

	// DefaultLogLevel is the default log level selected without any verbosity flags.
	DefaultLogLevel = slog.LevelInfo

	// DefaultFetchTimeout is how long a single request to the API may take, body included.
	DefaultFetchTimeout = 30 * time.Second

	// APIPath is appended to the configured base URL, followed by the coordinate query.
	APIPath = "/json"

	// OutputFileMode is the permission of the written result file.
	OutputFileMode os.FileMode = 0644
)

// TimeFields are the keys of the results object holding 12-hour clock times, in the order they are normalized.
var TimeFields = []string{
	"sunrise",
	"sunset",
	"first_light",
	"last_light",
	"dawn",
	"dusk",
	"solar_noon",
	"golden_hour",
}

type options struct {
	baseDir func() (string, error)
}

type option func(*options)

// GetUserConfigPath is the per-user directory searched for a configuration file.
func GetUserConfigPath(opts ...option) string {
	o := options{baseDir: os.UserConfigDir}
	for _, opt := range opts {
		opt(&o)
	}

	dir := getBaseDir(o.baseDir)
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, DefaultAppFolder)
}

// getBaseDir is a helper function to handle the case where the baseDir function returns an error, and instead return an empty string.
func getBaseDir(baseDirFunc func() (string, error)) string {
	dir, err := baseDirFunc()
	if err != nil {
		return ""
	}
	return dir
}
