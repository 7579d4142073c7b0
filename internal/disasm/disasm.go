// Package disasm defines the decoded instruction record and its listing
// format.
package disasm

import "fmt"

// MaxLen is the longest instruction encoding in bytes.
const MaxLen = 3

// Inst is a single decoded instruction.
type Inst struct {
	Addr     uint16       // address of the opcode byte
	Raw      [MaxLen]byte // raw encoding, only the first Len bytes are valid
	Len      int          // encoded length in bytes
	Mnemonic string       // upper case mnemonic
	Template string       // fixed operand text from the opcode table
}

// Opcode returns the first byte of the instruction.
func (i Inst) Opcode() byte {
	return i.Raw[0]
}

// Bytes returns the consumed bytes, opcode first.
func (i Inst) Bytes() []byte {
	return i.Raw[:i.Len]
}

// Operands returns the trailing operand bytes in image order.
func (i Inst) Operands() []byte {
	return i.Raw[1:i.Len]
}

// Immediate returns the operand text synthesized from the trailing bytes:
// "#0xNN" for an 8-bit immediate, "$HHLL" for a 16-bit little-endian word.
func (i Inst) Immediate() string {
	switch i.Len {
	case 2:
		return fmt.Sprintf("#0x%02x", i.Raw[1])
	case 3:
		return fmt.Sprintf("$%02x%02x", i.Raw[2], i.Raw[1])
	default:
		return ""
	}
}

// OperandText joins the template and the immediate with a comma when both
// are present.
func (i Inst) OperandText() string {
	imm := i.Immediate()
	switch {
	case i.Template == "":
		return imm
	case imm == "":
		return i.Template
	default:
		return i.Template + "," + imm
	}
}

// String returns the listing line for the instruction.
func (i Inst) String() string {
	return Format(i)
}

// Stream is a linear sequence of instructions.
type Stream []Inst

// Size returns the number of bytes covered by the stream.
func (s Stream) Size() int {
	n := 0
	for _, inst := range s {
		n += inst.Len
	}
	return n
}
