// Package colorize adds terminal colours to listing lines. Colouring is a
// presentation concern: callers always format plain text first.
package colorize

import (
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss/v2"

	"dis8080/internal/disasm"
)

var (
	addrStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	bytesStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// Disabled reports whether colouring is switched off with DIS8080_NO_COLOR.
func Disabled() bool {
	return os.Getenv("DIS8080_NO_COLOR") != ""
}

// getAssemblyLexer returns an assembly lexer, nil if none is registered
func getAssemblyLexer() chroma.Lexer {
	candidates := []string{"z80", "nasm", "gas"}
	for _, name := range candidates {
		if lexer := lexers.Get(name); lexer != nil {
			return lexer
		}
	}
	return nil
}

// getDisasmStyle returns the disassembly style with fallbacks
func getDisasmStyle() *chroma.Style {
	candidates := []string{"i8080-dark", "dracula", "monokai"}
	for _, name := range candidates {
		if style := styles.Get(name); style != nil {
			return style
		}
	}
	return styles.Fallback
}

// getTerminalFormatter returns an appropriate terminal formatter
func getTerminalFormatter() chroma.Formatter {
	candidates := []string{"terminal16m", "terminal256"}
	for _, name := range candidates {
		if formatter := formatters.Get(name); formatter != nil {
			return formatter
		}
	}
	return formatters.Fallback
}

// ErrorPrefix returns "error:", bold red unless colours are disabled.
func ErrorPrefix() string {
	if Disabled() {
		return "error:"
	}
	return errorStyle.Render("error:")
}

// ColorizeInstructionLine colours a line produced by disasm.Format while
// keeping its column layout.
func ColorizeInstructionLine(line string) string {
	if Disabled() {
		return line
	}
	if len(line) < disasm.MnemonicColumn || !isHex(line[:4]) {
		return colorizeFullLine(line)
	}

	var b strings.Builder
	b.WriteString(addrStyle.Render(line[:4]))

	// Byte dump: colour the hex pairs, keep the padding as is.
	dump := line[4:disasm.MnemonicColumn]
	for _, field := range strings.SplitAfter(dump, " ") {
		hex := strings.TrimSpace(field)
		if hex == "" {
			b.WriteString(field)
			continue
		}
		b.WriteString(bytesStyle.Render(hex))
		b.WriteString(field[len(hex):])
	}

	b.WriteString(colorizeFullLine(line[disasm.MnemonicColumn:]))
	return b.String()
}

// colorizeFullLine uses Chroma to colorize an assembly fragment
func colorizeFullLine(line string) string {
	if Disabled() {
		return line
	}

	lexer := getAssemblyLexer()
	if lexer == nil {
		return line
	}

	iterator, err := lexer.Tokenise(nil, line)
	if err != nil {
		return line
	}

	var buf strings.Builder
	if err := getTerminalFormatter().Format(&buf, getDisasmStyle(), iterator); err != nil {
		return line
	}

	// Lexers terminate their input with a newline, a listing line has none.
	return strings.ReplaceAll(buf.String(), "\n", "")
}

// isHex checks if s is made of hexadecimal digits
func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if !((ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')) {
			return false
		}
	}
	return s != ""
}

// StripANSI removes ANSI escape codes and returns the plain string
func StripANSI(s string) string {
	var result strings.Builder
	inEscape := false

	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
		} else if inEscape {
			if r == 'm' {
				inEscape = false
			}
		} else {
			result.WriteRune(r)
		}
	}

	return result.String()
}
