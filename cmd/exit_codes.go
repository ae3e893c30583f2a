package cmd

import (
	"github.com/nikogura/cvgen/pkg/config"
	"github.com/nikogura/cvgen/pkg/content"
	"github.com/nikogura/cvgen/pkg/generator"
	"github.com/nikogura/cvgen/pkg/renderer"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Exit codes for the cvgen CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess    = 0 // All CVs written
	ExitGeneral    = 1 // General/unexpected error
	ExitUsage      = 2 // Invalid flags or config
	ExitMalformed  = 3 // Content file is not valid JSON/YAML
	ExitValidation = 4 // Content file violates the schema or its audiences collide
	ExitRender     = 5 // Rendering or writing a CV failed
)

// ErrUsage marks command-line mistakes such as unknown flags.
var ErrUsage = errors.New("usage error")

func usageError(cause error) (err error) {
	err = errors.Wrap(ErrUsage, cause.Error())
	return err
}

// noArgs is cobra.NoArgs reported as a usage error.
func noArgs(cmd *cobra.Command, args []string) (err error) {
	err = cobra.NoArgs(cmd, args)
	if err != nil {
		err = usageError(err)
	}
	return err
}

// ExitCodeFor returns the process exit code for an error returned by a command.
func ExitCodeFor(err error) (code int) {
	switch {
	case err == nil:
		code = ExitSuccess
	case errors.Is(err, content.ErrMalformedInput):
		code = ExitMalformed
	case errors.Is(err, content.ErrValidation), errors.Is(err, generator.ErrOutputCollision):
		code = ExitValidation
	case errors.Is(err, renderer.ErrRender), errors.Is(err, renderer.ErrWriteOutput):
		code = ExitRender
	case errors.Is(err, ErrUsage), errors.Is(err, config.ErrInvalidConfig), errors.Is(err, renderer.ErrUnknownEngine):
		code = ExitUsage
	default:
		code = ExitGeneral
	}
	return code
}
