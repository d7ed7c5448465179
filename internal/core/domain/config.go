package domain

// Output modes accepted by configuration and flags.
const (
	OutputModeAuto = "auto"
	OutputModeTTY  = "tty"
	OutputModePipe = "pipe"
)

// Log formats accepted by configuration and flags.
const (
	LogFormatPretty = "pretty"
	LogFormatJSON   = "json"
)

// Config is the resolved configuration of one invocation.
type Config struct {
	Version         PackageVersion `mapstructure:"version"`
	BuildDir        string         `mapstructure:"build_dir"`
	LocalRepository string         `mapstructure:"local_repository"`
	BatchMode       bool           `mapstructure:"batch_mode"`
	OutputMode      string         `mapstructure:"output_mode"`
	LogFormat       string         `mapstructure:"log_format"`
}
