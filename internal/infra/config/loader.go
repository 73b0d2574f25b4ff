package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/envlines/internal/domain"
	"github.com/aalvaropc/envlines/internal/ports"
)

const (
	DefaultFile = "envlines.yaml"
	EnvPrefix   = "ENVLINES"
)

type Loader struct {
	defaultFile string
}

type Option func(*Loader)

func WithDefaultFile(name string) Option {
	return func(l *Loader) { l.defaultFile = name }
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{defaultFile: DefaultFile}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.ConfigLoader = (*Loader)(nil)

// LoadConfig layers defaults, the YAML file and ENVLINES_* variables. The
// result is not validated: callers layer flags on top first and then call
// Validate. An explicit path must exist; the default file is optional.
func (l *Loader) LoadConfig(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = l.defaultFile
	}

	dto, found, err := readYAML(path, explicit)
	if err != nil {
		return cfg, err
	}
	if found {
		cfg = ApplyYAML(cfg, dto)
	}

	env, err := readEnv()
	if err != nil {
		return cfg, err
	}
	return ApplyEnv(cfg, env), nil
}

func readYAML(path string, required bool) (YAMLConfig, bool, error) {
	var dto YAMLConfig

	b, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return dto, false, nil
		}
		kind := domain.KindUnreadable
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return dto, false, &domain.OpError{
			Op:   "config.load",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}

	if err := yaml.Unmarshal(b, &dto); err != nil {
		return dto, false, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return dto, true, nil
}

func readEnv() (EnvOverrides, error) {
	var env EnvOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return env, &domain.OpError{
			Op:   "config.env",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}
	return env, nil
}
