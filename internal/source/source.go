// Package source handles reading, hashing, and classifying source files.
package source

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/codescore/internal/analysis"
)

// DefaultMaxBytes is the upload and file size ceiling.
const DefaultMaxBytes = 5 << 20

var (
	ErrNoExtension          = errors.New("could not determine file extension")
	ErrUnsupportedExtension = errors.New("unsupported file type; only .js, .jsx and .py files are supported")
	ErrTooLarge             = errors.New("file exceeds the maximum allowed size")
)

// File holds a loaded source file with its content and metadata.
type File struct {
	Name     string
	Raw      string
	Hash     string
	Language analysis.Language
	FileType analysis.FileType
}

// Size is the content length in bytes.
func (f *File) Size() int { return len(f.Raw) }

// Detect maps a file name to its language and file type. The extension
// match is case-insensitive.
func Detect(fileName string) (analysis.Language, analysis.FileType, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(fileName)), ".")
	if ext == "" {
		return "", "", fmt.Errorf("source.Detect: %q: %w", fileName, ErrNoExtension)
	}
	ft := analysis.FileType(ext)
	if !ft.Valid() {
		return "", "", fmt.Errorf("source.Detect: %q: %w", fileName, ErrUnsupportedExtension)
	}
	return ft.Language(), ft, nil
}

// Hash returns the sha256 digest of data in "sha256:<hex>" form.
func Hash(data []byte) string {
	return fmt.Sprintf("sha256:%x", sha256.Sum256(data))
}

// New classifies in-memory content under the given file name. Content is
// decoded as UTF-8; invalid sequences become U+FFFD.
func New(fileName string, data []byte) (*File, error) {
	lang, ft, err := Detect(fileName)
	if err != nil {
		return nil, err
	}
	return &File{
		Name:     fileName,
		Raw:      strings.ToValidUTF8(string(data), "\uFFFD"),
		Hash:     Hash(data),
		Language: lang,
		FileType: ft,
	}, nil
}

// Read consumes r up to maxBytes and classifies the result. A non-positive
// maxBytes uses DefaultMaxBytes.
func Read(fileName string, r io.Reader, maxBytes int64) (*File, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("source.Read: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("source.Read: %q: %w", fileName, ErrTooLarge)
	}
	return New(fileName, data)
}

// Load reads a file from disk. The base name is used as the file name.
func Load(path string, maxBytes int64) (*File, error) {
	if _, _, err := Detect(path); err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("source.Load: %w", err)
	}
	defer fh.Close()
	return Read(filepath.Base(path), fh, maxBytes)
}

// IsInputError reports whether err is a client-side input problem rather
// than an I/O or internal failure.
func IsInputError(err error) bool {
	return errors.Is(err, ErrNoExtension) ||
		errors.Is(err, ErrUnsupportedExtension) ||
		errors.Is(err, ErrTooLarge)
}
