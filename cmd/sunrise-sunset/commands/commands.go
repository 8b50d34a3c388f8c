// Package commands provides the sunrise-sunset command line application.
package commands

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ubuntu/sunrise-sunset/internal/cli"
	"github.com/ubuntu/sunrise-sunset/internal/constants"
	"github.com/ubuntu/sunrise-sunset/internal/pipeline"
	"github.com/ubuntu/sunrise-sunset/internal/request"
)

// App represents the application.
type App struct {
	cmd    *cobra.Command
	viper  *viper.Viper
	config appConfig
}

// appConfig holds the configuration for the application.
type appConfig struct {
	Verbosity int           `mapstructure:"verbose" toml:"verbose"`
	JSONLogs  bool          `mapstructure:"json-logs" toml:"json-logs"`
	DryRun    bool          `mapstructure:"dry-run" toml:"dry-run"`
	Timeout   time.Duration `mapstructure:"timeout" toml:"timeout,omitempty"`

	Default *request.Coordinates `mapstructure:"default" toml:"default,omitempty"`
}

// New creates a new App instance with default values.
func New() (*App, error) {
	a := App{}

	a.cmd = &cobra.Command{
		Use:   constants.CmdName,
		Short: "Fetch today's sunrise and sunset times",
		Long: `Fetch the solar events of the configured location from the sunrise sunset API,
convert their times to the 24-hour clock and write them to a TOML file.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Command parsing has been successful. Returns to not print usage anymore.
			a.cmd.SilenceUsage = true
			a.setSlog() // Set verbosity before loading config
			if err := a.loadConfig(); err != nil {
				slog.Error("Could not load configuration", "stage", pipeline.StageConfig, "error", err)
				return &pipeline.StageError{Stage: pipeline.StageConfig, Err: err}
			}
			slog.Debug("Got app config", "config", a.config)

			a.setSlog() // Update logging after loading config if necessary
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a.cmd.SilenceUsage = true

			return a.run(cmd)
		},
	}
	a.viper = viper.New()
	a.cmd.CompletionOptions.HiddenDefaultCmd = true

	installRootCmd(&a)
	cli.InstallConfigFlag(a.cmd, constants.DefaultConfigPath)
	if err := a.cmd.MarkPersistentFlagFilename("config", "toml"); err != nil {
		panic(fmt.Sprintf("failed to mark config flag as filename: %v", err))
	}

	if err := a.viper.BindPFlags(a.cmd.PersistentFlags()); err != nil {
		return nil, err
	}
	if err := a.viper.BindPFlags(a.cmd.Flags()); err != nil {
		return nil, err
	}

	a.installVersion()

	return &a, nil
}

func installRootCmd(app *App) {
	cmd := app.cmd

	cmd.PersistentFlags().CountVarP(&app.config.Verbosity, "verbose", "v", "issue INFO (-v), DEBUG (-vv)")
	cmd.PersistentFlags().BoolVar(&app.config.JSONLogs, "json-logs", false, "enable JSON formatted logs")

	cmd.Flags().BoolVar(&app.config.DryRun, "dry-run", false, "print the resulting document instead of writing it")
	cmd.Flags().DurationVar(&app.config.Timeout, "timeout", constants.DefaultFetchTimeout, "timeout of the API request, 0 to wait indefinitely")
}

// setSlog configures logging. Dry runs print the document on stdout, so logs never go there.
func (a *App) setSlog() {
	if a.config.DryRun {
		cli.SetSlogStderr(a.config.Verbosity, a.config.JSONLogs)
		return
	}
	cli.SetSlog(a.config.Verbosity, a.config.JSONLogs)
}

func (a *App) loadConfig() error {
	if err := cli.InitViperConfig(constants.CmdName, a.cmd, a.viper, "default"); err != nil {
		return err
	}

	var md mapstructure.Metadata
	hooks := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.TextUnmarshallerHookFunc(),
	))
	withMetadata := func(c *mapstructure.DecoderConfig) { c.Metadata = &md }
	if err := a.viper.Unmarshal(&a.config, hooks, withMetadata); err != nil {
		return fmt.Errorf("unable to decode configuration into struct: %w", err)
	}
	if a.config.Default == nil {
		return request.ErrMissingDefault
	}

	// Every key of the default section is required, even when its zero value would be valid.
	var missing []string
	for _, k := range md.Unset {
		if strings.HasPrefix(k, "default.") {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return fmt.Errorf("%w: missing %s", request.ErrIncompleteDefault, strings.Join(missing, ", "))
	}

	return nil
}

// Run executes the command and associated process, returning an error if any.
func (a App) Run() error {
	return a.cmd.Execute()
}

// UsageError returns if the error is a command parsing or runtime one.
func (a App) UsageError() bool {
	return !a.cmd.SilenceUsage
}

// RootCmd returns the root command.
func (a App) RootCmd() cobra.Command {
	return *a.cmd
}

func (a *App) run(cmd *cobra.Command) error {
	p := pipeline.New(request.Config{Default: a.config.Default},
		pipeline.WithDryRun(a.config.DryRun),
		pipeline.WithTimeout(a.config.Timeout),
		pipeline.WithOutput(cmd.OutOrStdout()))

	return p.Run(cmd.Context())
}
