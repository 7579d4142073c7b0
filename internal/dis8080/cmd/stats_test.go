package cmd

import (
	"reflect"
	"strings"
	"testing"
)

func TestCollectStats(t *testing.T) {
	image := []byte{
		0x41, 0x42, 0x00, // MOV, MOV, NOP
		0x08,       // NOP alias
		0x3E, 0x01, // MVI
		0xC3, 0x00, 0x00, // JMP
	}

	s, err := collectStats(image, 0)
	if err != nil {
		t.Fatalf("collectStats failed: %v", err)
	}
	if s.Instructions != 6 || s.Bytes != len(image) || s.Undocumented != 1 {
		t.Errorf("totals = %+v", s)
	}

	want := []MnemonicCount{{"MOV", 2}, {"NOP", 2}, {"JMP", 1}, {"MVI", 1}}
	if !reflect.DeepEqual(s.Mnemonics, want) {
		t.Errorf("Mnemonics = %v, want %v", s.Mnemonics, want)
	}
}

func TestCollectStatsTruncated(t *testing.T) {
	s, err := collectStats([]byte{0x76, 0x01}, 0)
	if ExitCode(err) != ExitDataErr {
		t.Fatalf("error = %v, want truncation", err)
	}
	if s.Instructions != 1 || s.Mnemonics[0].Mnemonic != "HLT" {
		t.Errorf("partial stats = %+v", s)
	}
}

func TestStatsMarkdown(t *testing.T) {
	s := Stats{Instructions: 3, Bytes: 5, Mnemonics: []MnemonicCount{{"MOV", 2}, {"JMP", 1}}}
	md := s.Markdown("/tmp/game.rom", 0x100)

	for _, want := range []string{
		"# dis8080 stats",
		"; game.rom",
		"; 3 instructions, 5 bytes from 0100",
		"| MOV | 2 |",
		"| JMP | 1 |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
	if strings.Contains(md, "undocumented") {
		t.Error("undocumented line printed without undocumented opcodes")
	}

	empty := Stats{}.Markdown("empty.rom", 0)
	if strings.Contains(empty, "## Mnemonics") {
		t.Errorf("empty stats should have no table:\n%s", empty)
	}
}

func TestStatsCommand(t *testing.T) {
	path := writeImage(t, "sample.rom", sampleImage)

	out, err := execute(t, "stats", path)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !strings.Contains(out, "; 4 instructions, 9 bytes from 0000") || !strings.Contains(out, "| LXI | 1 |") {
		t.Errorf("unexpected stats output:\n%s", out)
	}
}
