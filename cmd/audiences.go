package cmd

import (
	"fmt"

	"github.com/nikogura/cvgen/pkg/audience"
	"github.com/nikogura/cvgen/pkg/config"
	"github.com/nikogura/cvgen/pkg/content"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var audiencesCmd = &cobra.Command{
	Use:   "audiences",
	Short: "List the audiences a run would generate CVs for",
	Long: `Print one audience per line, in the order CVs are generated.

When the content file has no target_audiences tags, the single fallback
audience "General" is printed.

Example:
  cvgen audiences`,
	Args: noArgs,
	RunE: runAudiences,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(audiencesCmd)
}

func runAudiences(cmd *cobra.Command, args []string) (err error) {
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

	audiences, fallback := audience.Resolve(doc)
	out := cmd.OutOrStdout()
	for _, aud := range audiences {
		fmt.Fprintln(out, aud)
	}

	if fallback && getVerbose() {
		fmt.Fprintln(cmd.ErrOrStderr(), "(no target_audiences tags found, using the fallback audience)")
	}

	return err
}
