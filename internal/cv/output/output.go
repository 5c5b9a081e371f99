// Package output persists the final ring to a binary artifact.
package output

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/kolkov/cvemu/internal/cv/ring"
)

// Width selects the artifact encoding.
type Width int

const (
	// Byte writes one byte per color, truncating high bits. Lossless in
	// practice: after four rounds every color fits in a byte.
	Byte Width = iota

	// Word writes the full 64-bit colors, little-endian.
	Word
)

// String returns the width's configuration-surface name.
func (w Width) String() string {
	switch w {
	case Byte:
		return "byte"
	case Word:
		return "word"
	default:
		return fmt.Sprintf("Width(%d)", int(w))
	}
}

// ParseWidth maps a configuration name to a Width.
func ParseWidth(name string) (Width, error) {
	switch name {
	case "byte":
		return Byte, nil
	case "word":
		return Word, nil
	default:
		return 0, fmt.Errorf("output: unknown out width %q (want byte or word)", name)
	}
}

// WriteFile writes r to path in the given width, creating or truncating the
// file. Any write or close failure surfaces as an error; a partial artifact
// may remain on disk, as with any interrupted binary dump.
func WriteFile(path string, r ring.Ring, w Width) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: creating %s: %w", path, err)
	}

	bw := bufio.NewWriterSize(f, 1<<20)
	switch w {
	case Word:
		var buf [8]byte
		for _, c := range r {
			binary.LittleEndian.PutUint64(buf[:], uint64(c))
			if _, err = bw.Write(buf[:]); err != nil {
				break
			}
		}
	default:
		for _, c := range r {
			if err = bw.WriteByte(byte(c)); err != nil {
				break
			}
		}
	}
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("output: writing %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("output: flushing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("output: closing %s: %w", path, err)
	}
	return nil
}
