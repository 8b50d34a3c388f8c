// Package cli provides utility functions for command line interface applications.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ubuntu/sunrise-sunset/internal/constants"
)

// InitViperConfig initializes the Viper configuration for a command.
//
// An explicit configuration file given by the "config" flag must exist. Without one, the configuration is
// searched for in the usual locations and its absence is not an error.
// Environment variables prefixed by the command name override configuration values. The first
// underscore after the prefix separates a section from its key when the section is one of sections, so
// that SUNRISE_SUNSET_DEFAULT_BASE_URL maps to default.base_url. Other underscores map to dashes, like flags.
func InitViperConfig(cmdName string, cmd *cobra.Command, vip *viper.Viper, sections ...string) error {
	vip.SetConfigType("toml")
	explicit := false
	if f := cmd.Flag("config"); f != nil && f.Value.String() != "" {
		vip.SetConfigFile(f.Value.String())
		explicit = true
	} else {
		vip.SetConfigName(constants.ConfigName)
		vip.AddConfigPath(".")
		if p := constants.GetUserConfigPath(); p != "" {
			vip.AddConfigPath(p)
		}
		vip.AddConfigPath("/etc/" + cmdName)
		vip.AddConfigPath("/usr/local/etc/" + cmdName)

		if binPath, err := os.Executable(); err != nil {
			slog.Warn("Failed to get current executable path, not adding it as a config dir", "error", err)
		} else {
			vip.AddConfigPath(filepath.Dir(binPath))
		}
	}
	if err := vip.ReadInConfig(); err != nil {
		var e viper.ConfigFileNotFoundError
		if errors.As(err, &e) && !explicit {
			slog.Info("No configuration file.\nWe will only use the defaults, env variables or flags.", "error", e)
		} else {
			return fmt.Errorf("invalid configuration file: %w", err)
		}
	} else {
		slog.Info("Using configuration file", "file", vip.ConfigFileUsed())
	}

	// Visit manually env to bind every possibly related environment variable to be able to unmarshal
	// those into a struct, even when the key is absent from the configuration file.
	// More context on https://github.com/spf13/viper/pull/1429.
	prefix := strings.ToUpper(strings.ReplaceAll(cmdName, "-", "_")) + "_"
	for _, e := range os.Environ() {
		if !strings.HasPrefix(e, prefix) {
			continue
		}

		name, _, _ := strings.Cut(e, "=")
		k := envToKey(strings.TrimPrefix(name, prefix), sections)
		if k == "" {
			continue
		}
		slog.Debug("Binding environment variable", "variable", name, "key", k)
		if err := vip.BindEnv(k, name); err != nil {
			return fmt.Errorf("could not bind environment variable: %w", err)
		}
	}

	return nil
}

// envToKey converts the unprefixed part of an environment variable name to a configuration key.
func envToKey(name string, sections []string) string {
	name = strings.ToLower(name)
	if section, key, found := strings.Cut(name, "_"); found && key != "" && slices.Contains(sections, section) {
		return section + "." + key
	}
	return strings.ReplaceAll(name, "_", "-")
}

// InstallConfigFlag adds a config flag to the command.
func InstallConfigFlag(cmd *cobra.Command, defaultPath string) *string {
	return cmd.PersistentFlags().String("config", defaultPath, "use a specific configuration file, empty to search the default locations")
}
