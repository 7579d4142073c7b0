package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"dis8080/internal/disasm"
	"dis8080/internal/i8080"
	"dis8080/internal/ui/colorize"
)

type model struct {
	viewport viewport.Model
	title    string
	width    int
	height   int
}

// listingLines decodes image into display lines. A truncation is shown as
// the final line and also returned.
func listingLines(image []byte, start int) ([]string, error) {
	var lines []string
	for inst, err := range i8080.NewDecoder(image, start).All() {
		if err != nil {
			lines = append(lines, fmt.Sprintf("%s %v", colorize.ErrorPrefix(), err))
			return lines, err
		}
		lines = append(lines, colorize.ColorizeInstructionLine(disasm.Format(inst)))
	}
	return lines, nil
}

func newModel(title string, lines []string) model {
	vp := viewport.New()
	vp.SetWidth(80)
	vp.SetHeight(22)

	vp.SetContent(strings.Join(lines, "\n"))

	return model{
		viewport: vp,
		title:    title,
		width:    80,
		height:   24,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width != m.width || msg.Height != m.height {
			m.width = msg.Width
			m.height = msg.Height
			// Title and menu bar take one line each.
			m.viewport.SetWidth(msg.Width)
			m.viewport.SetHeight(msg.Height - 2)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "g", "home":
			m.viewport.GotoTop()
			return m, nil
		case "G", "end":
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m model) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("99")).
		Bold(true).
		Padding(0, 1)

	menuStyle := lipgloss.NewStyle().
		Background(lipgloss.Color("235")).
		Foreground(lipgloss.Color("252")).
		Padding(0, 1).
		Width(m.width)

	menu := " ↑/↓: scroll • g/G: top/bottom • Q: quit "
	return titleStyle.Render(m.title) + "\n" + m.viewport.View() + "\n" + menuStyle.Render(menu)
}

// runInteractive shows the listing in a scrollable viewer. A truncated
// image is still browsable; the error is returned after the viewer exits.
func runInteractive(ctx context.Context, path string, image []byte, start int) error {
	lines, decodeErr := listingLines(image, start)

	title := fmt.Sprintf("%s  %d bytes from %04x", filepath.Base(path), len(image), start)
	program := tea.NewProgram(
		newModel(title, lines),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil {
		slog.Error("TUI run error", "error", err)
		return errors.Join(fmt.Errorf("TUI error: %w", err), decodeErr)
	}
	return decodeErr
}
