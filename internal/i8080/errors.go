package i8080

import (
	"errors"
	"fmt"
)

// ErrTruncated matches any TruncatedError via errors.Is.
var ErrTruncated = errors.New("incomplete instruction")

// TruncatedError reports an opcode whose encoding runs past the end of the
// image.
type TruncatedError struct {
	Addr   uint16 // address of the opcode byte
	Opcode byte
	Need   int // trailing bytes the opcode requires
	Have   int // trailing bytes left in the image
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("%v: reading additional bytes for instruction \"%02x\" at %04x (need %d, have %d)",
		ErrTruncated, e.Opcode, e.Addr, e.Need, e.Have)
}

func (e *TruncatedError) Is(target error) bool {
	return target == ErrTruncated
}

// Missing returns how many bytes the image is short by.
func (e *TruncatedError) Missing() int {
	return e.Need - e.Have
}
