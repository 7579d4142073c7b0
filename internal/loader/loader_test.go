package loader

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dis8080/internal/i8080"
)

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	small := filepath.Join(tmpDir, "small.rom")
	if err := os.WriteFile(small, []byte{0x3E, 0x7F, 0x76}, 0644); err != nil {
		t.Fatal(err)
	}
	empty := filepath.Join(tmpDir, "empty.rom")
	if err := os.WriteFile(empty, nil, 0644); err != nil {
		t.Fatal(err)
	}
	full := filepath.Join(tmpDir, "full.rom")
	if err := os.WriteFile(full, make([]byte, i8080.AddressSpace), 0644); err != nil {
		t.Fatal(err)
	}
	large := filepath.Join(tmpDir, "large.rom")
	if err := os.WriteFile(large, make([]byte, i8080.AddressSpace+1), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		size    int
		wantErr error
	}{
		{"small image", small, 3, nil},
		{"empty image", empty, 0, nil},
		{"full address space", full, i8080.AddressSpace, nil},
		{"too large", large, 0, ErrImageTooLarge},
		{"missing file", filepath.Join(tmpDir, "missing.rom"), 0, fs.ErrNotExist},
		{"directory", tmpDir, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			image, err := Load(tt.path)

			if tt.name == "directory" {
				var imgErr *ImageError
				if !errors.As(err, &imgErr) {
					t.Fatalf("Load(dir) error = %v, want *ImageError", err)
				}
				return
			}

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Load() error = %v, want %v", err, tt.wantErr)
				}
				var imgErr *ImageError
				if !errors.As(err, &imgErr) {
					t.Fatalf("error %T is not an *ImageError", err)
				}
				if imgErr.Path != tt.path {
					t.Errorf("Path = %q, want %q", imgErr.Path, tt.path)
				}
				return
			}

			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			if len(image) != tt.size {
				t.Errorf("len = %d, want %d", len(image), tt.size)
			}
		})
	}
}

func TestRead(t *testing.T) {
	image, err := Read("buf", bytes.NewReader([]byte{0xC3, 0x00, 0x00}))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(image, []byte{0xC3, 0x00, 0x00}) {
		t.Errorf("Read() = % x", image)
	}
}

func TestImageErrorMessage(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.bin"))
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.HasPrefix(msg, "opening rom file ") || !strings.Contains(msg, "nope.bin") {
		t.Errorf("unexpected message %q", msg)
	}
	if strings.Count(msg, "nope.bin") != 1 {
		t.Errorf("path repeated in %q", msg)
	}
}
