package disasm

import (
	"fmt"
	"strings"
)

// MnemonicColumn is the offset of the mnemonic within a formatted line.
// Address (4) + gap (2) + byte dump (3 per byte) + gap (1).
const MnemonicColumn = 4 + 2 + 3*MaxLen + 1

// Format renders an instruction as a listing line:
//
//	0043  21 34 12  LXI	H,$1234
//
// Short instructions pad the byte dump so the mnemonic column lines up.
// Instructions without operands end after the mnemonic.
func Format(inst Inst) string {
	var b strings.Builder
	b.Grow(MnemonicColumn + len(inst.Mnemonic) + 16)

	fmt.Fprintf(&b, "%04x  ", inst.Addr)
	for n := range MaxLen {
		if n < inst.Len {
			fmt.Fprintf(&b, "%02x ", inst.Raw[n])
		} else {
			b.WriteString("   ")
		}
	}
	b.WriteByte(' ')
	b.WriteString(inst.Mnemonic)

	if ops := inst.OperandText(); ops != "" {
		b.WriteByte('\t')
		b.WriteString(ops)
	}
	return b.String()
}
