package cmd

import (
	"context"
	"os"
	"time"

	"github.com/nikogura/cvgen/pkg/config"
	"github.com/nikogura/cvgen/pkg/generator"
	"github.com/nikogura/cvgen/pkg/renderer"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var configFile string

//nolint:gochecknoglobals // Cobra boilerplate
var contentPath string

//nolint:gochecknoglobals // Cobra boilerplate
var outputDir string

//nolint:gochecknoglobals // Cobra boilerplate
var engineName string

//nolint:gochecknoglobals // Cobra boilerplate
var concurrency int

//nolint:gochecknoglobals // Cobra boilerplate
var timeout time.Duration

//nolint:gochecknoglobals // Cobra boilerplate
var markdown bool

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "cvgen",
	Short: "Generate audience-specific CVs from one content file",
	Long: `cvgen reads your career content from content.json and writes one CV per
target audience found in it.

Summary items, skills and job bullets can carry a "target_audiences" list.
Each audience gets a CV with only the items tagged for it plus the untagged
ones. Known technology names are emphasized automatically.

If content.json does not exist, a template is created and rendered.

Example:
  cvgen
  cvgen --engine html --output-dir ./out
  cvgen --content cv.yaml --concurrency 4`,
	Args:         noArgs,
	SilenceUsage: true,
	RunE:         runGenerate,
}

// Execute runs the root command and exits with a code describing the outcome.
func Execute() {
	err := rootCmd.Execute()
	os.Exit(ExitCodeFor(err))
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is ./"+config.DefaultFile+" when present)")
	rootCmd.PersistentFlags().StringVar(&contentPath, "content", "", "Content file (default content.json)")

	rootCmd.Flags().StringVar(&outputDir, "output-dir", "", "Output directory (default .)")
	rootCmd.Flags().StringVar(&engineName, "engine", "", "Render engine: pdf, pandoc or html (default pdf)")
	rootCmd.Flags().IntVar(&concurrency, "concurrency", 0, "Audiences rendered in parallel (default 1)")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 0, "Overall time limit (default 5m)")
	rootCmd.Flags().BoolVar(&markdown, "markdown", false, "Render inline Markdown in summary, intro and bullet text")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})
}

// getVerbose returns the verbose flag value.
func getVerbose() (result bool) {
	result = verbose
	return result
}

// getConfigFile returns the config file path.
func getConfigFile() (result string) {
	result = configFile
	return result
}

// loadConfig reads the config file and environment, then applies flags set on cmd.
func loadConfig(cmd *cobra.Command) (cfg config.Config, err error) {
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("content") {
		cfg.ContentPath = contentPath
	}
	if flags.Changed("output-dir") {
		cfg.OutputDir = outputDir
	}
	if flags.Changed("engine") {
		cfg.Engine = engineName
	}
	if flags.Changed("concurrency") {
		cfg.Concurrency = concurrency
	}
	if flags.Changed("timeout") {
		cfg.Timeout = config.Duration(timeout)
	}
	if flags.Changed("markdown") {
		cfg.Markdown = markdown
	}

	cfg.Normalize()
	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "invalid flags")
		return cfg, err
	}

	return cfg, err
}

func runGenerate(cmd *cobra.Command, args []string) (err error) {
	var cfg config.Config
	cfg, err = loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(cfg.Timeout))
	defer cancel()

	var engine renderer.Engine
	engine, err = renderer.NewEngine(cfg.Engine, renderer.EngineOptions{
		ChromePath:      cfg.Chrome.ExecPath,
		PandocBinary:    cfg.Pandoc.Binary,
		PandocPDFEngine: cfg.Pandoc.PDFEngine,
	})
	if err != nil {
		return err
	}
	defer engine.Close()

	_, err = generator.Run(ctx, generator.Options{
		ContentPath: cfg.ContentPath,
		OutputDir:   cfg.OutputDir,
		Engine:      engine,
		Concurrency: cfg.Concurrency,
		Markdown:    cfg.Markdown,
		Out:         cmd.OutOrStdout(),
		Verbose:     getVerbose(),
	})
	if err != nil {
		reportContentError(cmd, cfg.ContentPath, err)
		return err
	}

	return err
}
