package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/envlines/internal/domain"
	"github.com/aalvaropc/envlines/internal/infra/config"
	"github.com/aalvaropc/envlines/internal/infra/logger"
	"github.com/aalvaropc/envlines/internal/ports"
)

// options holds raw flag values; only flags the user actually set override config.
type options struct {
	configPath string
	file       string
	encoding   string
	prefix     string
	format     string
	color      bool

	debug   bool
	logFile string

	loader ports.ConfigLoader
}

func (o *options) bindPersistent(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVarP(&o.configPath, "config", "c", "", "Config file (optional; defaults to ./"+config.DefaultFile+" when present)")
	pf.StringVarP(&o.file, "file", "f", "", "File to read (default "+domain.DefaultPath+")")
	pf.StringVar(&o.encoding, "encoding", "", "Text encoding of the file (default "+domain.DefaultEncoding+")")
	pf.StringVar(&o.prefix, "prefix", "", fmt.Sprintf("Label printed before each line (default %q)", domain.DefaultPrefix))
	pf.BoolVar(&o.debug, "debug", false, "enable verbose JSON logging to stderr")
	pf.StringVar(&o.logFile, "log-file", "", "append JSON logs to this file")
}

// resolve layers flags and the optional positional path on top of the loaded config.
func (o *options) resolve(cmd *cobra.Command, args []string) (domain.Config, error) {
	if o.loader == nil {
		o.loader = config.NewLoader()
	}

	cfg, err := o.loader.LoadConfig(o.configPath)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("file") {
		cfg.Source.Path = o.file
	}
	if len(args) > 0 {
		cfg.Source.Path = args[0]
	}
	if flags.Changed("encoding") {
		cfg.Source.Encoding = o.encoding
	}
	if flags.Changed("prefix") {
		cfg.Output.Prefix = o.prefix
	}
	if flags.Changed("format") {
		cfg.Output.Format = domain.OutputFormat(strings.ToLower(strings.TrimSpace(o.format)))
	}
	if flags.Changed("color") {
		cfg.Output.Color = o.color
	}

	if err := config.Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (o *options) setupLogger(stderr io.Writer) func() {
	cleanup, err := logger.Setup(logger.Config{
		File:   o.logFile,
		Debug:  o.debug,
		Stderr: stderr,
	})
	if err != nil {
		fmt.Fprintf(stderr, "warning: logging disabled: %v\n", err)
		return func() {}
	}
	return func() { _ = cleanup() }
}
