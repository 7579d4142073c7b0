package cmd

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"dis8080/internal/disasm"
	"dis8080/internal/i8080"
	"dis8080/internal/ui/colorize"
)

// JSONOutput is the document written by --json.
type JSONOutput struct {
	File         string          `json:"file" jsonschema:"title=File,description=Path of the decoded image"`
	Digest       string          `json:"digest" jsonschema:"title=Digest,description=SHA-256 of the whole image in hex"`
	Size         int             `json:"size" jsonschema:"title=Size,description=Image size in bytes"`
	Start        int             `json:"start" jsonschema:"title=Start,description=Offset of the first decoded instruction"`
	Instructions []JSONInst      `json:"instructions" jsonschema:"title=Instructions"`
	Error        *JSONTruncation `json:"error,omitempty" jsonschema:"title=Error,description=Present when the image ends inside an instruction"`
}

// JSONInst is one decoded instruction.
type JSONInst struct {
	Address      string `json:"address" jsonschema:"pattern=^[0-9a-f]{4}$"`
	Bytes        string `json:"bytes" jsonschema:"description=Consumed bytes as space separated hex"`
	Length       int    `json:"length" jsonschema:"minimum=1,maximum=3"`
	Mnemonic     string `json:"mnemonic"`
	Operands     string `json:"operands,omitempty"`
	Undocumented bool   `json:"undocumented,omitempty" jsonschema:"description=Opcode is an alias encoding"`
}

// JSONTruncation describes a truncated final instruction.
type JSONTruncation struct {
	Message string `json:"message"`
	Address string `json:"address" jsonschema:"pattern=^[0-9a-f]{4}$"`
	Opcode  string `json:"opcode" jsonschema:"pattern=^[0-9a-f]{2}$"`
	Need    int    `json:"need" jsonschema:"description=Operand bytes the opcode requires"`
	Have    int    `json:"have" jsonschema:"description=Bytes left in the image"`
}

func newJSONInst(inst disasm.Inst) JSONInst {
	return JSONInst{
		Address:      fmt.Sprintf("%04x", inst.Addr),
		Bytes:        fmt.Sprintf("% x", inst.Bytes()),
		Length:       inst.Len,
		Mnemonic:     inst.Mnemonic,
		Operands:     inst.OperandText(),
		Undocumented: i8080.Lookup(inst.Opcode()).Undocumented,
	}
}

// writeListing writes one line per instruction as it is decoded, so the
// lines before a truncated instruction are still printed. It returns the
// number of lines written.
func writeListing(w io.Writer, image []byte, start int, color bool) (int, error) {
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	n := 0
	for inst, err := range i8080.NewDecoder(image, start).All() {
		if err != nil {
			return n, err
		}
		line := disasm.Format(inst)
		if color {
			line = colorize.ColorizeInstructionLine(line)
		}
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return n, fmt.Errorf("writing listing: %w", err)
		}
		n++
	}
	return n, bw.Flush()
}

// buildJSON decodes image into a JSONOutput. The truncation error, if any,
// is both recorded in the document and returned.
func buildJSON(path string, image []byte, start int) (JSONOutput, error) {
	digest := sha256.Sum256(image)
	doc := JSONOutput{
		File:         path,
		Digest:       hex.EncodeToString(digest[:]),
		Size:         len(image),
		Start:        start,
		Instructions: []JSONInst{},
	}

	stream, err := i8080.Decode(image, start)
	for _, inst := range stream {
		doc.Instructions = append(doc.Instructions, newJSONInst(inst))
	}

	var truncErr *i8080.TruncatedError
	if errors.As(err, &truncErr) {
		doc.Error = &JSONTruncation{
			Message: truncErr.Error(),
			Address: fmt.Sprintf("%04x", truncErr.Addr),
			Opcode:  fmt.Sprintf("%02x", truncErr.Opcode),
			Need:    truncErr.Need,
			Have:    truncErr.Have,
		}
	}
	return doc, err
}

func runJSON(w io.Writer, path string, image []byte, start int) error {
	doc, decodeErr := buildJSON(path, image, start)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return decodeErr
}
