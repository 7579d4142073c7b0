package colorize

import (
	"testing"

	"dis8080/internal/disasm"
)

func TestColorizeDisabled(t *testing.T) {
	t.Setenv("DIS8080_NO_COLOR", "1")

	line := "0043  3e 7f     MVI\tA,#0x7f"
	if got := ColorizeInstructionLine(line); got != line {
		t.Errorf("ColorizeInstructionLine() = %q, want input unchanged", got)
	}
	if got := ErrorPrefix(); got != "error:" {
		t.Errorf("ErrorPrefix() = %q", got)
	}
}

func TestColorizePreservesText(t *testing.T) {
	t.Setenv("DIS8080_NO_COLOR", "")

	lines := []string{
		disasm.Format(disasm.Inst{Addr: 0x43, Raw: [disasm.MaxLen]byte{0x3E, 0x7F}, Len: 2, Mnemonic: "MVI", Template: "A"}),
		disasm.Format(disasm.Inst{Addr: 0x100, Raw: [disasm.MaxLen]byte{0xC3, 0x00, 0x01}, Len: 3, Mnemonic: "JMP"}),
		disasm.Format(disasm.Inst{Addr: 0xffff, Raw: [disasm.MaxLen]byte{0x76}, Len: 1, Mnemonic: "HLT"}),
		"not a listing line",
	}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			got := ColorizeInstructionLine(line)
			if plain := StripANSI(got); plain != line {
				t.Errorf("stripped output = %q, want %q", plain, line)
			}
		})
	}

	if StripANSI(ErrorPrefix()) != "error:" {
		t.Errorf("ErrorPrefix() text = %q", StripANSI(ErrorPrefix()))
	}
}

func TestIsHex(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"0043", true},
		{"FFFF", true},
		{"00g0", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isHex(tt.in); got != tt.want {
			t.Errorf("isHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestStripANSI(t *testing.T) {
	if got := StripANSI("\x1b[1;31merror:\x1b[0m"); got != "error:" {
		t.Errorf("StripANSI() = %q", got)
	}
}
