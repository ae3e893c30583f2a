package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/nikogura/cvgen/pkg/audience"
	"github.com/nikogura/cvgen/pkg/config"
	"github.com/nikogura/cvgen/pkg/content"
	"github.com/nikogura/cvgen/pkg/generator"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the content file without rendering",
	Long: `Parse and validate the content file, reporting every structural problem at once.

Unlike the default command, a missing content file is an error here.

Example:
  cvgen validate
  cvgen validate --content cv.yaml`,
	Args: noArgs,
	RunE: runValidate,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) (err error) {
	var cfg config.Config
	cfg, err = loadConfig(cmd)
	if err != nil {
		return err
	}

	var doc content.Document
	doc, err = readContent(cmd.Context(), cfg.ContentPath)
	if err != nil {
		reportContentError(cmd, cfg.ContentPath, err)
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✓ %s is valid.\n", cfg.ContentPath)

	if getVerbose() {
		bullets := 0
		for _, job := range doc.Experience {
			bullets += len(job.Bullets)
		}
		audiences, _ := audience.Resolve(doc)
		fmt.Fprintf(out, "  %d summary item(s), %d skills item(s), %d job(s), %d bullet(s)\n",
			len(doc.Summary), len(doc.Skills), len(doc.Experience), bullets)
		fmt.Fprintf(out, "  audiences: %s\n", strings.Join(audiences, ", "))
	}

	return err
}

// readContent parses an existing content file or URL without seeding a missing one.
func readContent(ctx context.Context, path string) (doc content.Document, err error) {
	var data []byte
	if content.IsRemote(path) {
		data, err = content.Fetch(ctx, path)
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			err = errors.Wrapf(err, "failed to read content file: %s", path)
		}
	}
	if err != nil {
		return doc, err
	}

	doc, err = content.Parse(path, data)
	return doc, err
}

// reportContentError adds a hint to stderr for problems the user fixes in the content file.
func reportContentError(cmd *cobra.Command, path string, err error) {
	if errors.Is(err, content.ErrValidation) || errors.Is(err, content.ErrMalformedInput) || errors.Is(err, generator.ErrOutputCollision) {
		fmt.Fprintf(cmd.ErrOrStderr(), "\n❌ DATA VALIDATION FAILED\nPlease fix '%s' and try again.\n\n", path)
	}
}
