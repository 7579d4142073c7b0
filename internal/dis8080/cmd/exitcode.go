package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"dis8080/internal/i8080"
	"dis8080/internal/loader"
	"dis8080/internal/ui/colorize"
)

// Process exit statuses, following sysexits.h.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitUsage    = 64
	ExitDataErr  = 65
	ExitSoftware = 70
	ExitIOErr    = 74
)

// UsageError represents an error that should show usage information
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

// ExitCode maps an error returned by the command tree to an exit status.
// Truncated instructions and unreadable images never share a status.
func ExitCode(err error) int {
	var usageErr *UsageError
	var imageErr *loader.ImageError

	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &usageErr):
		return ExitUsage
	case errors.Is(err, i8080.ErrTruncated), errors.Is(err, loader.ErrImageTooLarge):
		return ExitDataErr
	case errors.As(err, &imageErr):
		return ExitIOErr
	default:
		return ExitFailure
	}
}

// reportError prints err as "error: ..." and the usage text for usage errors.
func reportError(w io.Writer, cmd *cobra.Command, err error) {
	prefix := "error:"
	if isTerminal(w) {
		prefix = colorize.ErrorPrefix()
	}
	fmt.Fprintf(w, "%s %v\n", prefix, err)

	var usageErr *UsageError
	if errors.As(err, &usageErr) && cmd != nil {
		fmt.Fprintf(w, "\n%s", cmd.UsageString())
	}
}
