package config

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/envlines/internal/domain"
	"github.com/aalvaropc/envlines/internal/infra/textfile"
)

// ApplyYAML applies parsed values on top of cfg. Empty strings keep the
// current value, except for prefix which may be set to "" explicitly.
func ApplyYAML(cfg domain.Config, y YAMLConfig) domain.Config {
	s, o := y.Envlines.Source, y.Envlines.Output

	if strings.TrimSpace(s.Path) != "" {
		cfg.Source.Path = s.Path
	}
	if strings.TrimSpace(s.Encoding) != "" {
		cfg.Source.Encoding = s.Encoding
	}
	if o.Prefix != nil {
		cfg.Output.Prefix = *o.Prefix
	}
	if strings.TrimSpace(o.Format) != "" {
		cfg.Output.Format = domain.OutputFormat(strings.ToLower(strings.TrimSpace(o.Format)))
	}
	if o.Color != nil {
		cfg.Output.Color = *o.Color
	}
	return cfg
}

// ApplyEnv applies every variable that was set, even to an empty value.
func ApplyEnv(cfg domain.Config, env EnvOverrides) domain.Config {
	if env.Path != nil {
		cfg.Source.Path = *env.Path
	}
	if env.Encoding != nil {
		cfg.Source.Encoding = *env.Encoding
	}
	if env.Prefix != nil {
		cfg.Output.Prefix = *env.Prefix
	}
	if env.Format != nil {
		cfg.Output.Format = domain.OutputFormat(strings.ToLower(strings.TrimSpace(*env.Format)))
	}
	if env.Color != nil {
		cfg.Output.Color = *env.Color
	}
	return cfg
}

func Validate(cfg domain.Config) error {
	if strings.TrimSpace(cfg.Source.Path) == "" {
		return invalidField("source.path", "path is required")
	}
	if _, err := textfile.Lookup(cfg.Source.Encoding); err != nil {
		return invalidField("source.encoding", err.Error())
	}
	if _, ok := domain.ParseFormat(string(cfg.Output.Format)); !ok {
		return invalidField("output.format", fmt.Sprintf("unsupported format %q (expected plain|json)", cfg.Output.Format))
	}
	return nil
}

func invalidField(field, msg string) error {
	return &domain.OpError{
		Op:   "config.validate",
		Kind: domain.KindInvalidConfig,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
