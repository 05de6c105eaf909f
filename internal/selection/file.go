package selection

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// AcceptedExtensions is the picker-level hint for document types the matching
// service understands. It is never enforced before submission.
var AcceptedExtensions = []string{".pdf", ".docx", ".doc", ".txt", ".jpg", ".jpeg", ".png"}

// File is one user-chosen local document.
type File struct {
	Name     string
	Content  []byte
	MIMEType string
}

// Open reads the file at path and detects its MIME type from the content.
func Open(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", path, err)
	}

	return NewFile(filepath.Base(path), data), nil
}

// NewFile wraps in-memory content as a selected file.
func NewFile(name string, content []byte) *File {
	return &File{
		Name:     name,
		Content:  content,
		MIMEType: mimetype.Detect(content).String(),
	}
}

func (f *File) Size() int {
	return len(f.Content)
}

// IsAccepted reports whether name carries one of the accepted extensions.
func IsAccepted(name string) bool {
	return slices.Contains(AcceptedExtensions, strings.ToLower(filepath.Ext(name)))
}
