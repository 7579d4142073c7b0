package colorize

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

func init() {
	// Register our custom disassembly style on package initialization
	_ = I8080Dark
}

// I8080Dark is the chroma style for listing mnemonics and operands.
var I8080Dark = styles.Register(chroma.MustNewStyle("i8080-dark", chroma.StyleEntries{
	chroma.Text:       "#FFFFFF",
	chroma.Background: "bg:#1e1e1e",
	chroma.Error:      "#FFFFFF", // '#' and '$' prefixes are not NASM syntax
	chroma.Comment:    "#6A9955",

	// Mnemonics
	chroma.Keyword:       "#FFFFFF",
	chroma.KeywordPseudo: "#FFFFFF",
	chroma.NameFunction:  "#FFFFFF",

	// Registers and register pairs
	chroma.Name:         "#7C9C9D",
	chroma.NameBuiltin:  "#7C9C9D",
	chroma.NameVariable: "#7C9C9D",

	// Immediates and addresses
	chroma.LiteralNumber:        "#FF5F87",
	chroma.LiteralNumberHex:     "#FF5F87",
	chroma.LiteralNumberInteger: "#FF5F87",

	chroma.Operator:    "#FFFFFF",
	chroma.Punctuation: "#FFFFFF",
}))
