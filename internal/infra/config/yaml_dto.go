package config

type YAMLConfig struct {
	Envlines YAMLEnvlines `yaml:"envlines"`
}

type YAMLEnvlines struct {
	Source YAMLSource `yaml:"source"`
	Output YAMLOutput `yaml:"output"`
}

type YAMLSource struct {
	Path     string `yaml:"path"`
	Encoding string `yaml:"encoding"`
}

type YAMLOutput struct {
	Prefix *string `yaml:"prefix"`
	Format string  `yaml:"format"`
	Color  *bool   `yaml:"color"`
}

// EnvOverrides is filled from ENVLINES_* variables. Nil fields were not set.
type EnvOverrides struct {
	Path     *string
	Encoding *string
	Prefix   *string
	Format   *string
	Color    *bool
}
