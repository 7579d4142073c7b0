package i8080

import (
	"io"
	"iter"

	"dis8080/internal/disasm"
)

// AddressSpace is the size of the 8080 address space. Addresses of images
// larger than this wrap around; the loader rejects such images.
const AddressSpace = 0x10000

// Decoder walks an image one instruction at a time. It never modifies the
// image and holds no state besides its cursor, so several decoders may share
// one image.
type Decoder struct {
	image []byte
	pos   int
	err   error
}

// NewDecoder returns a decoder positioned at start. A start past the end of
// the image yields an empty sequence.
func NewDecoder(image []byte, start int) *Decoder {
	return &Decoder{
		image: image,
		pos:   min(max(start, 0), len(image)),
	}
}

// Pos returns the cursor, the address of the next opcode.
func (d *Decoder) Pos() int {
	return d.pos
}

// Next decodes the instruction at the cursor. It returns io.EOF once the
// image is exhausted. A *TruncatedError ends the pass: it is returned once,
// and every later call returns io.EOF.
func (d *Decoder) Next() (disasm.Inst, error) {
	if d.err != nil {
		return disasm.Inst{}, io.EOF
	}
	if d.pos >= len(d.image) {
		d.err = io.EOF
		return disasm.Inst{}, io.EOF
	}

	addr := d.pos
	op := d.image[addr]
	entry := Lookup(op)

	if have := len(d.image) - addr - 1; have < entry.Trailing() {
		d.err = &TruncatedError{
			Addr:   uint16(addr),
			Opcode: op,
			Need:   entry.Trailing(),
			Have:   have,
		}
		d.pos = len(d.image)
		return disasm.Inst{}, d.err
	}

	inst := disasm.Inst{
		Addr:     uint16(addr),
		Len:      entry.Len,
		Mnemonic: entry.Mnemonic,
		Template: entry.Template,
	}
	copy(inst.Raw[:], d.image[addr:addr+entry.Len])
	d.pos += entry.Len

	return inst, nil
}

// All returns the remaining instructions as a sequence. The sequence stops
// after the first error, which is yielded with a zero instruction.
func (d *Decoder) All() iter.Seq2[disasm.Inst, error] {
	return func(yield func(disasm.Inst, error) bool) {
		for {
			inst, err := d.Next()
			if err == io.EOF {
				return
			}
			if !yield(inst, err) || err != nil {
				return
			}
		}
	}
}

// Decode decodes image from start to the end. On truncation it returns the
// instructions decoded before the faulty opcode together with the error.
func Decode(image []byte, start int) (disasm.Stream, error) {
	var stream disasm.Stream
	for inst, err := range NewDecoder(image, start).All() {
		if err != nil {
			return stream, err
		}
		stream = append(stream, inst)
	}
	return stream, nil
}
