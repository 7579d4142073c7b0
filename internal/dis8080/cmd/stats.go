package cmd

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"dis8080/internal/dis8080/styles"
	"dis8080/internal/i8080"
)

// Stats summarizes a decoded image.
type Stats struct {
	Instructions int
	Bytes        int
	Undocumented int
	Mnemonics    []MnemonicCount // by count descending, then mnemonic
}

// MnemonicCount is the number of occurrences of one mnemonic.
type MnemonicCount struct {
	Mnemonic string
	Count    int
}

// collectStats decodes image from start. On truncation it returns the
// statistics of the instructions decoded so far along with the error.
func collectStats(image []byte, start int) (Stats, error) {
	var s Stats
	counts := make(map[string]int)

	stream, err := i8080.Decode(image, start)
	for _, inst := range stream {
		s.Instructions++
		s.Bytes += inst.Len
		counts[inst.Mnemonic]++
		if i8080.Lookup(inst.Opcode()).Undocumented {
			s.Undocumented++
		}
	}

	for mnemonic, count := range counts {
		s.Mnemonics = append(s.Mnemonics, MnemonicCount{Mnemonic: mnemonic, Count: count})
	}
	slices.SortFunc(s.Mnemonics, func(a, b MnemonicCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return strings.Compare(a.Mnemonic, b.Mnemonic)
	})

	return s, err
}

// Markdown renders the statistics as a markdown report.
func (s Stats) Markdown(file string, start int) string {
	var b strings.Builder

	b.WriteString("# dis8080 stats\n\n")
	fmt.Fprintf(&b, "```\n; %s\n; %d instructions, %d bytes from %04x\n", filepath.Base(file), s.Instructions, s.Bytes, start)
	if s.Undocumented > 0 {
		fmt.Fprintf(&b, "; %d undocumented opcodes\n", s.Undocumented)
	}
	b.WriteString("```\n")

	if len(s.Mnemonics) == 0 {
		return b.String()
	}

	b.WriteString("\n## Mnemonics\n\n| Mnemonic | Count |\n|---|---:|\n")
	for _, mc := range s.Mnemonics {
		fmt.Fprintf(&b, "| %s | %d |\n", mc.Mnemonic, mc.Count)
	}
	return b.String()
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [file]",
		Short: "Summarize the instructions of an image",
		Long: `Decode the whole image and report the number of instructions and
how often each mnemonic occurs.`,
		Example: `
# Mnemonic frequencies of a ROM
dis8080 stats invaders.rom
  `,
		Args: exactFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			image, start, err := loadImage(cmd, path)
			if err != nil {
				return err
			}

			stats, decodeErr := collectStats(image, start)
			if err := writeMarkdown(cmd.OutOrStdout(), stats.Markdown(path, start)); err != nil {
				return err
			}
			return decodeErr
		},
	}
}

// writeMarkdown renders md through glamour on a colour terminal and writes
// it raw otherwise.
func writeMarkdown(w io.Writer, md string) error {
	if useColor(w) {
		width, _, err := term.GetSize(w.(*os.File).Fd())
		if err != nil {
			width = 80
		}
		if rendered, err := styles.RenderMarkdown(md, width-2); err == nil {
			md = rendered
		}
	}
	_, err := io.WriteString(w, md)
	return err
}
