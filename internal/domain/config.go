package domain

// Config represents the envlines configuration after all layers are applied.
type Config struct {
	Source SourceConfig
	Output OutputConfig
}

type SourceConfig struct {
	Path     string
	Encoding string
}

type OutputConfig struct {
	Prefix string
	Format OutputFormat
	Color  bool
}

// OutputFormat selects how significant lines are rendered.
type OutputFormat string

const (
	FormatPlain OutputFormat = "plain"
	FormatJSON  OutputFormat = "json"
)

const (
	DefaultPath     = ".env"
	DefaultEncoding = "utf-8"
	DefaultPrefix   = "VAL: "
)

// DefaultConfig provides the values used when nothing else is configured.
func DefaultConfig() Config {
	return Config{
		Source: SourceConfig{
			Path:     DefaultPath,
			Encoding: DefaultEncoding,
		},
		Output: OutputConfig{
			Prefix: DefaultPrefix,
			Format: FormatPlain,
		},
	}
}

// ParseFormat maps a user-supplied name to an OutputFormat.
func ParseFormat(s string) (OutputFormat, bool) {
	switch OutputFormat(s) {
	case FormatPlain, "":
		return FormatPlain, true
	case FormatJSON:
		return FormatJSON, true
	default:
		return "", false
	}
}

// ScaffoldSpec describes a starter envlines.yaml to write into Root.
type ScaffoldSpec struct {
	Root   string
	Source SourceConfig
	Prefix string
}
