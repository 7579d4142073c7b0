// Package loader reads byte images from disk or standard input.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"dis8080/internal/i8080"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// ErrImageTooLarge is returned for images that do not fit the 8080 address
// space.
var ErrImageTooLarge = fmt.Errorf("image larger than %d bytes", i8080.AddressSpace)

// ImageError reports an image that could not be obtained.
type ImageError struct {
	Path string
	Err  error
}

func (e *ImageError) Error() string {
	return fmt.Sprintf("opening rom file %s: %v", e.Path, e.Err)
}

func (e *ImageError) Unwrap() error {
	return e.Err
}

// Load reads the image at path, or standard input when path is Stdin.
func Load(path string) ([]byte, error) {
	if path == Stdin {
		return Read("<stdin>", os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &ImageError{Path: path, Err: unwrapPath(err)}
	}
	defer f.Close()

	return Read(path, f)
}

// Read reads a whole image from r. name is used in error messages.
func Read(name string, r io.Reader) ([]byte, error) {
	image, err := io.ReadAll(io.LimitReader(r, i8080.AddressSpace+1))
	if err != nil {
		return nil, &ImageError{Path: name, Err: unwrapPath(err)}
	}
	if len(image) > i8080.AddressSpace {
		return nil, &ImageError{Path: name, Err: ErrImageTooLarge}
	}
	return image, nil
}

// unwrapPath drops the *os.PathError wrapper, ImageError already names the
// file.
func unwrapPath(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}
