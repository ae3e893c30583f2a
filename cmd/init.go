package cmd

import (
	"fmt"

	"github.com/nikogura/cvgen/pkg/config"
	"github.com/nikogura/cvgen/pkg/content"
	"github.com/nikogura/cvgen/pkg/fileutil"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var initForce bool

//nolint:gochecknoglobals // Cobra boilerplate
var initWithConfig bool

//nolint:gochecknoglobals // Cobra boilerplate
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a template content file",
	Long: `Write the example content file, ready to be edited.

With --with-config, a config file holding the default settings is written too
(to --config, or ./.cvgen.json).

Example:
  cvgen init
  cvgen init --content cv.json --force
  cvgen init --with-config`,
	Args: noArgs,
	RunE: runInit,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite existing files")
	initCmd.Flags().BoolVar(&initWithConfig, "with-config", false, "Also write a config file with the default settings")
}

func runInit(cmd *cobra.Command, args []string) (err error) {
	out := cmd.OutOrStdout()

	if initWithConfig {
		path := getConfigFile()
		if path == "" {
			path = config.DefaultFile
		}
		err = config.InitConfig(path, initForce)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "✓ Created %s\n", path)
	}

	var cfg config.Config
	cfg, err = loadConfig(cmd)
	if err != nil {
		return err
	}

	if content.IsRemote(cfg.ContentPath) {
		err = errors.Wrapf(ErrUsage, "cannot write a template to remote content source %s", cfg.ContentPath)
		return err
	}

	if !initForce && fileutil.FileExists(cfg.ContentPath) {
		err = errors.Wrapf(ErrUsage, "%s already exists (use --force to overwrite)", cfg.ContentPath)
		return err
	}

	err = content.Save(cfg.ContentPath, content.Seed())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "✓ Created %s\n", cfg.ContentPath)

	return err
}
