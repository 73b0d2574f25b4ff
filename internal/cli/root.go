package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/envlines/internal/buildinfo"
	"github.com/aalvaropc/envlines/internal/infra/logger"
	"github.com/aalvaropc/envlines/internal/infra/render"
	"github.com/aalvaropc/envlines/internal/infra/textfile"
	"github.com/aalvaropc/envlines/internal/usecase"
)

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		if msg := userMessage(err); msg != "" {
			fmt.Fprintln(os.Stderr, "hint: "+msg)
		}
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	o := &options{}

	cmd := &cobra.Command{
		Use:          "envlines [path]",
		Short:        "List the non-blank lines of an env file",
		Long:         "Reads an environment file in full and prints every line that is not blank, trimmed and prefixed with a label.",
		Version:      buildinfo.Version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer o.setupLogger(cmd.ErrOrStderr())()

			cfg, err := o.resolve(cmd, args)
			if err != nil {
				return err
			}
			logger.L().Debug("config.resolved",
				"path", cfg.Source.Path,
				"encoding", cfg.Source.Encoding,
				"format", cfg.Output.Format,
			)

			uc := usecase.NewPrintLines(
				textfile.NewReader(),
				render.NewPrinter(cmd.OutOrStdout(), cfg.Output),
				usecase.WithLogger(logger.L()),
			)

			_, err = uc.Execute(cmd.Context(), cfg.Source.Path, cfg.Source.Encoding)
			return err
		},
	}

	o.bindPersistent(cmd)
	cmd.Flags().StringVar(&o.format, "format", "", "Output format: plain|json (default plain)")
	cmd.Flags().BoolVar(&o.color, "color", false, "Style the prefix when writing to a terminal")

	cmd.SetVersionTemplate(buildinfo.String() + "\n")
	cmd.AddCommand(browseCmd(o))
	cmd.AddCommand(initCmd(o))
	cmd.AddCommand(versionCmd())
	return cmd
}
