// Package i8080 decodes Intel 8080 machine code.
//
// The opcode table covers all 256 opcode values. Undocumented encodings are
// listed as aliases of their canonical instruction, so every byte decodes.
package i8080

// Entry describes how an opcode byte is encoded and printed.
type Entry struct {
	Len          int    // total instruction length in bytes, 1 to 3
	Mnemonic     string // upper case mnemonic
	Template     string // fixed operand text, empty if operands come only from trailing bytes
	Undocumented bool   // alias encoding of Mnemonic
}

// Trailing returns the number of operand bytes following the opcode.
func (e Entry) Trailing() int {
	return e.Len - 1
}

// Lookup returns the table entry for an opcode byte.
func Lookup(op byte) Entry {
	return table[op]
}

var table = [256]Entry{
	0x00: {1, "NOP", "", false},
	0x01: {3, "LXI", "B", false},
	0x02: {1, "STAX", "B", false},
	0x03: {1, "INX", "B", false},
	0x04: {1, "INR", "B", false},
	0x05: {1, "DCR", "B", false},
	0x06: {2, "MVI", "B", false},
	0x07: {1, "RLC", "", false},
	0x08: {1, "NOP", "", true},
	0x09: {1, "DAD", "B", false},
	0x0A: {1, "LDAX", "B", false},
	0x0B: {1, "DCX", "B", false},
	0x0C: {1, "INR", "C", false},
	0x0D: {1, "DCR", "C", false},
	0x0E: {2, "MVI", "C", false},
	0x0F: {1, "RRC", "", false},

	0x10: {1, "NOP", "", true},
	0x11: {3, "LXI", "D", false},
	0x12: {1, "STAX", "D", false},
	0x13: {1, "INX", "D", false},
	0x14: {1, "INR", "D", false},
	0x15: {1, "DCR", "D", false},
	0x16: {2, "MVI", "D", false},
	0x17: {1, "RAL", "", false},
	0x18: {1, "NOP", "", true},
	0x19: {1, "DAD", "D", false},
	0x1A: {1, "LDAX", "D", false},
	0x1B: {1, "DCX", "D", false},
	0x1C: {1, "INR", "E", false},
	0x1D: {1, "DCR", "E", false},
	0x1E: {2, "MVI", "E", false},
	0x1F: {1, "RAR", "", false},

	0x20: {1, "NOP", "", true},
	0x21: {3, "LXI", "H", false},
	0x22: {3, "SHLD", "", false},
	0x23: {1, "INX", "H", false},
	0x24: {1, "INR", "H", false},
	0x25: {1, "DCR", "H", false},
	0x26: {2, "MVI", "H", false},
	0x27: {1, "DAA", "", false},
	0x28: {1, "NOP", "", true},
	0x29: {1, "DAD", "H", false},
	0x2A: {3, "LHLD", "", false},
	0x2B: {1, "DCX", "H", false},
	0x2C: {1, "INR", "L", false},
	0x2D: {1, "DCR", "L", false},
	0x2E: {2, "MVI", "L", false},
	0x2F: {1, "CMA", "", false},

	0x30: {1, "NOP", "", true},
	0x31: {3, "LXI", "SP", false},
	0x32: {3, "STA", "", false},
	0x33: {1, "INX", "SP", false},
	0x34: {1, "INR", "M", false},
	0x35: {1, "DCR", "M", false},
	0x36: {2, "MVI", "M", false},
	0x37: {1, "STC", "", false},
	0x38: {1, "NOP", "", true},
	0x39: {1, "DAD", "SP", false},
	0x3A: {3, "LDA", "", false},
	0x3B: {1, "DCX", "SP", false},
	0x3C: {1, "INR", "A", false},
	0x3D: {1, "DCR", "A", false},
	0x3E: {2, "MVI", "A", false},
	0x3F: {1, "CMC", "", false},

	0x40: {1, "MOV", "B,B", false},
	0x41: {1, "MOV", "B,C", false},
	0x42: {1, "MOV", "B,D", false},
	0x43: {1, "MOV", "B,E", false},
	0x44: {1, "MOV", "B,H", false},
	0x45: {1, "MOV", "B,L", false},
	0x46: {1, "MOV", "B,M", false},
	0x47: {1, "MOV", "B,A", false},
	0x48: {1, "MOV", "C,B", false},
	0x49: {1, "MOV", "C,C", false},
	0x4A: {1, "MOV", "C,D", false},
	0x4B: {1, "MOV", "C,E", false},
	0x4C: {1, "MOV", "C,H", false},
	0x4D: {1, "MOV", "C,L", false},
	0x4E: {1, "MOV", "C,M", false},
	0x4F: {1, "MOV", "C,A", false},

	0x50: {1, "MOV", "D,B", false},
	0x51: {1, "MOV", "D,C", false},
	0x52: {1, "MOV", "D,D", false},
	0x53: {1, "MOV", "D,E", false},
	0x54: {1, "MOV", "D,H", false},
	0x55: {1, "MOV", "D,L", false},
	0x56: {1, "MOV", "D,M", false},
	0x57: {1, "MOV", "D,A", false},
	0x58: {1, "MOV", "E,B", false},
	0x59: {1, "MOV", "E,C", false},
	0x5A: {1, "MOV", "E,D", false},
	0x5B: {1, "MOV", "E,E", false},
	0x5C: {1, "MOV", "E,H", false},
	0x5D: {1, "MOV", "E,L", false},
	0x5E: {1, "MOV", "E,M", false},
	0x5F: {1, "MOV", "E,A", false},

	0x60: {1, "MOV", "H,B", false},
	0x61: {1, "MOV", "H,C", false},
	0x62: {1, "MOV", "H,D", false},
	0x63: {1, "MOV", "H,E", false},
	0x64: {1, "MOV", "H,H", false},
	0x65: {1, "MOV", "H,L", false},
	0x66: {1, "MOV", "H,M", false},
	0x67: {1, "MOV", "H,A", false},
	0x68: {1, "MOV", "L,B", false},
	0x69: {1, "MOV", "L,C", false},
	0x6A: {1, "MOV", "L,D", false},
	0x6B: {1, "MOV", "L,E", false},
	0x6C: {1, "MOV", "L,H", false},
	0x6D: {1, "MOV", "L,L", false},
	0x6E: {1, "MOV", "L,M", false},
	0x6F: {1, "MOV", "L,A", false},

	0x70: {1, "MOV", "M,B", false},
	0x71: {1, "MOV", "M,C", false},
	0x72: {1, "MOV", "M,D", false},
	0x73: {1, "MOV", "M,E", false},
	0x74: {1, "MOV", "M,H", false},
	0x75: {1, "MOV", "M,L", false},
	0x76: {1, "HLT", "", false},
	0x77: {1, "MOV", "M,A", false},
	0x78: {1, "MOV", "A,B", false},
	0x79: {1, "MOV", "A,C", false},
	0x7A: {1, "MOV", "A,D", false},
	0x7B: {1, "MOV", "A,E", false},
	0x7C: {1, "MOV", "A,H", false},
	0x7D: {1, "MOV", "A,L", false},
	0x7E: {1, "MOV", "A,M", false},
	0x7F: {1, "MOV", "A,A", false},

	0x80: {1, "ADD", "B", false},
	0x81: {1, "ADD", "C", false},
	0x82: {1, "ADD", "D", false},
	0x83: {1, "ADD", "E", false},
	0x84: {1, "ADD", "H", false},
	0x85: {1, "ADD", "L", false},
	0x86: {1, "ADD", "M", false},
	0x87: {1, "ADD", "A", false},
	0x88: {1, "ADC", "B", false},
	0x89: {1, "ADC", "C", false},
	0x8A: {1, "ADC", "D", false},
	0x8B: {1, "ADC", "E", false},
	0x8C: {1, "ADC", "H", false},
	0x8D: {1, "ADC", "L", false},
	0x8E: {1, "ADC", "M", false},
	0x8F: {1, "ADC", "A", false},

	0x90: {1, "SUB", "B", false},
	0x91: {1, "SUB", "C", false},
	0x92: {1, "SUB", "D", false},
	0x93: {1, "SUB", "E", false},
	0x94: {1, "SUB", "H", false},
	0x95: {1, "SUB", "L", false},
	0x96: {1, "SUB", "M", false},
	0x97: {1, "SUB", "A", false},
	0x98: {1, "SBB", "B", false},
	0x99: {1, "SBB", "C", false},
	0x9A: {1, "SBB", "D", false},
	0x9B: {1, "SBB", "E", false},
	0x9C: {1, "SBB", "H", false},
	0x9D: {1, "SBB", "L", false},
	0x9E: {1, "SBB", "M", false},
	0x9F: {1, "SBB", "A", false},

	0xA0: {1, "ANA", "B", false},
	0xA1: {1, "ANA", "C", false},
	0xA2: {1, "ANA", "D", false},
	0xA3: {1, "ANA", "E", false},
	0xA4: {1, "ANA", "H", false},
	0xA5: {1, "ANA", "L", false},
	0xA6: {1, "ANA", "M", false},
	0xA7: {1, "ANA", "A", false},
	0xA8: {1, "XRA", "B", false},
	0xA9: {1, "XRA", "C", false},
	0xAA: {1, "XRA", "D", false},
	0xAB: {1, "XRA", "E", false},
	0xAC: {1, "XRA", "H", false},
	0xAD: {1, "XRA", "L", false},
	0xAE: {1, "XRA", "M", false},
	0xAF: {1, "XRA", "A", false},

	0xB0: {1, "ORA", "B", false},
	0xB1: {1, "ORA", "C", false},
	0xB2: {1, "ORA", "D", false},
	0xB3: {1, "ORA", "E", false},
	0xB4: {1, "ORA", "H", false},
	0xB5: {1, "ORA", "L", false},
	0xB6: {1, "ORA", "M", false},
	0xB7: {1, "ORA", "A", false},
	0xB8: {1, "CMP", "B", false},
	0xB9: {1, "CMP", "C", false},
	0xBA: {1, "CMP", "D", false},
	0xBB: {1, "CMP", "E", false},
	0xBC: {1, "CMP", "H", false},
	0xBD: {1, "CMP", "L", false},
	0xBE: {1, "CMP", "M", false},
	0xBF: {1, "CMP", "A", false},

	0xC0: {1, "RNZ", "", false},
	0xC1: {1, "POP", "B", false},
	0xC2: {3, "JNZ", "", false},
	0xC3: {3, "JMP", "", false},
	0xC4: {3, "CNZ", "", false},
	0xC5: {1, "PUSH", "B", false},
	0xC6: {2, "ADI", "", false},
	0xC7: {1, "RST", "0", false},
	0xC8: {1, "RZ", "", false},
	0xC9: {1, "RET", "", false},
	0xCA: {3, "JZ", "", false},
	0xCB: {3, "JMP", "", true},
	0xCC: {3, "CZ", "", false},
	0xCD: {3, "CALL", "", false},
	0xCE: {2, "ACI", "", false},
	0xCF: {1, "RST", "1", false},

	0xD0: {1, "RNC", "", false},
	0xD1: {1, "POP", "D", false},
	0xD2: {3, "JNC", "", false},
	0xD3: {2, "OUT", "", false},
	0xD4: {3, "CNC", "", false},
	0xD5: {1, "PUSH", "D", false},
	0xD6: {2, "SUI", "", false},
	0xD7: {1, "RST", "2", false},
	0xD8: {1, "RC", "", false},
	0xD9: {1, "RET", "", true},
	0xDA: {3, "JC", "", false},
	0xDB: {2, "IN", "", false},
	0xDC: {3, "CC", "", false},
	0xDD: {3, "CALL", "", true},
	0xDE: {2, "SBI", "", false},
	0xDF: {1, "RST", "3", false},

	0xE0: {1, "RPO", "", false},
	0xE1: {1, "POP", "H", false},
	0xE2: {3, "JPO", "", false},
	0xE3: {1, "XTHL", "", false},
	0xE4: {3, "CPO", "", false},
	0xE5: {1, "PUSH", "H", false},
	0xE6: {2, "ANI", "", false},
	0xE7: {1, "RST", "4", false},
	0xE8: {1, "RPE", "", false},
	0xE9: {1, "PCHL", "", false},
	0xEA: {3, "JPE", "", false},
	0xEB: {1, "XCHG", "", false},
	0xEC: {3, "CPE", "", false},
	0xED: {3, "CALL", "", true},
	0xEE: {2, "XRI", "", false},
	0xEF: {1, "RST", "5", false},

	0xF0: {1, "RP", "", false},
	0xF1: {1, "POP", "PSW", false},
	0xF2: {3, "JP", "", false},
	0xF3: {1, "DI", "", false},
	0xF4: {3, "CP", "", false},
	0xF5: {1, "PUSH", "PSW", false},
	0xF6: {2, "ORI", "", false},
	0xF7: {1, "RST", "6", false},
	0xF8: {1, "RM", "", false},
	0xF9: {1, "SPHL", "", false},
	0xFA: {3, "JM", "", false},
	0xFB: {1, "EI", "", false},
	0xFC: {3, "CM", "", false},
	0xFD: {3, "CALL", "", true},
	0xFE: {2, "CPI", "", false},
	0xFF: {1, "RST", "7", false},
}
