package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/envlines/internal/infra/logger"
	"github.com/aalvaropc/envlines/internal/infra/textfile"
	"github.com/aalvaropc/envlines/internal/ui/tui"
	"github.com/aalvaropc/envlines/internal/usecase"
)

func browseCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "browse [path]",
		Short: "Browse and filter the non-blank lines interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer o.setupLogger(cmd.ErrOrStderr())()

			cfg, err := o.resolve(cmd, args)
			if err != nil {
				return err
			}

			uc := usecase.NewPrintLines(textfile.NewReader(), nil, usecase.WithLogger(logger.L()))

			res, lines, err := uc.Load(cmd.Context(), cfg.Source.Path, cfg.Source.Encoding)
			if err != nil {
				return err
			}

			return tui.Run(tui.Deps{
				Resource: res,
				Lines:    lines,
				Prefix:   cfg.Output.Prefix,
				Logger:   logger.L(),
			})
		},
	}
}
