package i8080

import (
	"testing"
)

// TestTableCompleteness verifies every opcode value has a usable entry.
func TestTableCompleteness(t *testing.T) {
	for op := 0; op < 256; op++ {
		e := Lookup(byte(op))
		if e.Mnemonic == "" {
			t.Errorf("opcode %02x has no mnemonic", op)
		}
		if e.Len < 1 || e.Len > 3 {
			t.Errorf("opcode %02x (%s) has length %d", op, e.Mnemonic, e.Len)
		}
	}
}

// expectedLen is the historical length rule keyed on the opcode nibbles.
func expectedLen(op byte) int {
	hi, lo := op>>4, op&0x0F
	switch {
	case hi <= 0x3 && lo == 0x1,
		(hi == 0x2 || hi == 0x3 || hi >= 0xC) && (lo == 0x2 || lo == 0xA),
		hi == 0xC && (lo == 0x3 || lo == 0xB),
		hi >= 0xC && (lo == 0x4 || lo == 0xC || lo == 0xD):
		return 3
	case hi == 0xD && (lo == 0x3 || lo == 0xB),
		(hi <= 0x3 || hi >= 0xC) && (lo == 0x6 || lo == 0xE):
		return 2
	default:
		return 1
	}
}

func TestLengthPolicy(t *testing.T) {
	for op := 0; op < 256; op++ {
		if got, want := Lookup(byte(op)).Len, expectedLen(byte(op)); got != want {
			t.Errorf("opcode %02x (%s): length %d, want %d", op, Lookup(byte(op)).Mnemonic, got, want)
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		op       byte
		mnemonic string
		template string
		length   int
	}{
		{0x00, "NOP", "", 1},
		{0x01, "LXI", "B", 3},
		{0x21, "LXI", "H", 3},
		{0x31, "LXI", "SP", 3},
		{0x32, "STA", "", 3},
		{0x3E, "MVI", "A", 2},
		{0x36, "MVI", "M", 2},
		{0x41, "MOV", "B,C", 1},
		{0x76, "HLT", "", 1},
		{0x77, "MOV", "M,A", 1},
		{0x86, "ADD", "M", 1},
		{0xC3, "JMP", "", 3},
		{0xC6, "ADI", "", 2},
		{0xCD, "CALL", "", 3},
		{0xD3, "OUT", "", 2},
		{0xDB, "IN", "", 2},
		{0xDF, "RST", "3", 1},
		{0xF1, "POP", "PSW", 1},
		{0xF5, "PUSH", "PSW", 1},
		{0xFE, "CPI", "", 2},
	}

	for _, tt := range tests {
		t.Run(tt.mnemonic, func(t *testing.T) {
			e := Lookup(tt.op)
			if e.Mnemonic != tt.mnemonic || e.Template != tt.template || e.Len != tt.length {
				t.Errorf("Lookup(%02x) = %+v, want %s %q len %d", tt.op, e, tt.mnemonic, tt.template, tt.length)
			}
		})
	}
}

func TestAliases(t *testing.T) {
	tests := []struct {
		name      string
		canonical byte
		aliases   []byte
	}{
		{"NOP", 0x00, []byte{0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38}},
		{"JMP", 0xC3, []byte{0xCB}},
		{"RET", 0xC9, []byte{0xD9}},
		{"CALL", 0xCD, []byte{0xDD, 0xED, 0xFD}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := Lookup(tt.canonical)
			if want.Undocumented {
				t.Fatalf("canonical opcode %02x marked undocumented", tt.canonical)
			}
			for _, op := range tt.aliases {
				got := Lookup(op)
				if !got.Undocumented {
					t.Errorf("alias %02x not marked undocumented", op)
				}
				got.Undocumented = false
				if got != want {
					t.Errorf("alias %02x = %+v, want %+v", op, got, want)
				}
			}
		})
	}
}

func TestUndocumentedCount(t *testing.T) {
	n := 0
	for op := 0; op < 256; op++ {
		if Lookup(byte(op)).Undocumented {
			n++
		}
	}
	if n != 12 {
		t.Errorf("found %d undocumented opcodes, want 12", n)
	}
}
