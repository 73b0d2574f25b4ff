package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/envlines/internal/infra/config"
	"github.com/aalvaropc/envlines/internal/infra/fsscaffold"
	"github.com/aalvaropc/envlines/internal/usecase"
)

func initCmd(o *options) *cobra.Command {
	var dir string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Write a starter " + config.DefaultFile + " and git-ignore the env file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer o.setupLogger(cmd.ErrOrStderr())()

			if dir == "" {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("get working directory: %w", err)
				}
				dir = wd
			}
			root, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("invalid directory: %w", err)
			}

			cfg, err := o.resolve(cmd, args)
			if err != nil {
				return err
			}

			uc := usecase.NewInitConfig(fsscaffold.NewInitializer())
			if err := uc.Execute(root, cfg, force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s\n", filepath.Join(root, config.DefaultFile))
			return nil
		},
	}

	c.Flags().StringVarP(&dir, "dir", "d", "", "Directory to initialize (default: current directory)")
	c.Flags().BoolVar(&force, "force", false, "Overwrite an existing "+config.DefaultFile)
	return c
}
