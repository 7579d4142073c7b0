package cmd

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"dis8080/internal/i8080"
	"dis8080/internal/ui/colorize"
)

func TestListingLines(t *testing.T) {
	t.Setenv("DIS8080_NO_COLOR", "1")

	lines, err := listingLines([]byte{0x76, 0x3E}, 0)
	if !errors.Is(err, i8080.ErrTruncated) {
		t.Fatalf("error = %v, want truncation", err)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "0000  76        HLT" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "error: incomplete instruction") {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestModelResize(t *testing.T) {
	t.Setenv("DIS8080_NO_COLOR", "1")

	lines, _ := listingLines(sampleImage, 0)
	m := newModel("sample.rom", lines)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(model)
	if m.width != 100 || m.height != 30 {
		t.Errorf("size = %dx%d, want 100x30", m.width, m.height)
	}

	view := colorize.StripANSI(m.View())
	for _, want := range []string{"sample.rom", "LXI", "Q: quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}
