package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"dis8080/internal/dis8080/log"
	"dis8080/internal/loader"
)

var rootCmd = NewRootCmd()

// NewRootCmd builds the dis8080 command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dis8080 [file]",
		Short: "Intel 8080 disassembler",
		Long: `dis8080 decodes a raw Intel 8080 machine-code image into an assembly listing:
address, raw bytes, mnemonic and operands, one line per instruction.
Use "-" as the file to read the image from standard input.`,
		Example: `
# Print the listing of a ROM
dis8080 invaders.rom

# Start decoding at offset 0x100
dis8080 --start 0x100 program.com

# Emit the listing as JSON
dis8080 --json invaders.rom
  `,
		Args:          exactFile,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			log.Setup(debug)

			if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
				os.Setenv("DIS8080_NO_COLOR", "1")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			image, start, err := loadImage(cmd, path)
			if err != nil {
				return err
			}

			jsonOutput, _ := cmd.Flags().GetBool("json")
			interactive, _ := cmd.Flags().GetBool("interactive")
			out := cmd.OutOrStdout()

			if jsonOutput {
				return runJSON(out, path, image, start)
			}

			// The viewer needs a terminal; fall back to the plain listing.
			if interactive && isTerminal(out) {
				return runInteractive(cmd.Context(), path, image, start)
			}

			began := time.Now()
			n, err := writeListing(out, image, start, useColor(out))
			slog.Debug("Decoded listing", "file", path, "instructions", n, "elapsed", time.Since(began))
			return err
		},
	}

	root.PersistentFlags().BoolP("debug", "d", false, "Debug")
	root.PersistentFlags().StringP("start", "s", "0", "Offset of the first instruction (decimal or 0x hex)")
	root.PersistentFlags().Bool("no-color", false, "Disable coloured output")

	root.Flags().BoolP("json", "j", false, "Output the listing as JSON")
	root.Flags().BoolP("interactive", "i", false, "Browse the listing in a scrollable viewer")

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Msg: err.Error()}
	})

	root.AddCommand(newStatsCmd(), newSchemaCmd())
	return root
}

// exactFile accepts exactly one positional argument, the image path.
func exactFile(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return &UsageError{Msg: fmt.Sprintf("expected exactly one file to disassemble, got %d arguments", len(args))}
	}
	return nil
}

// loadImage reads the image and validates the --start offset against it.
func loadImage(cmd *cobra.Command, path string) ([]byte, int, error) {
	startFlag, _ := cmd.Flags().GetString("start")
	start, err := parseOffset(startFlag)
	if err != nil {
		return nil, 0, err
	}

	image, err := loader.Load(path)
	if err != nil {
		return nil, 0, err
	}
	if start > len(image) {
		return nil, 0, &UsageError{Msg: fmt.Sprintf("start offset %#x is past the end of the %d byte image", start, len(image))}
	}

	slog.Debug("Loaded image", "file", path, "size", len(image), "start", start)
	return image, start, nil
}

// parseOffset parses a decimal, 0x hex or 0o octal offset.
func parseOffset(s string) (int, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, &UsageError{Msg: fmt.Sprintf("invalid start offset %q", s)}
	}
	return int(v), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(f.Fd())
}

func useColor(w io.Writer) bool {
	return isTerminal(w) && os.Getenv("DIS8080_NO_COLOR") == ""
}

func Execute() {
	// Bypass fang when output is piped so the listing is not decorated.
	var err error
	if !term.IsTerminal(os.Stdout.Fd()) {
		err = rootCmd.Execute()
		if err != nil {
			reportError(os.Stderr, rootCmd, err)
		}
	} else {
		// fang prints the error itself
		err = fang.Execute(
			context.Background(),
			rootCmd,
			fang.WithNotifySignal(os.Interrupt),
		)
	}

	_ = log.Close()
	if err != nil {
		os.Exit(ExitCode(err))
	}
}
