// Package selection tracks the document the user picked for submission.
package selection

import (
	"sync"

	"github.com/mattn/go-runewidth"
)

// NoFileLabel is shown in place of a file name before anything is selected.
const NoFileLabel = "Waiting for a file..."

// Manager holds the currently selected file. Selecting replaces the previous
// file unconditionally; nothing is validated here.
type Manager struct {
	mu      sync.RWMutex
	current *File
}

func NewManager() *Manager {
	return &Manager{}
}

// Select replaces the current file. A nil file is ignored, the same way an
// empty picker result leaves the previous choice in place.
func (m *Manager) Select(f *File) {
	if f == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = f
}

func (m *Manager) Current() *File {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

func (m *Manager) HasFile() bool {
	return m.Current() != nil
}

// SubmitEnabled reports whether the submit action may be offered.
func (m *Manager) SubmitEnabled(busy bool) bool {
	return m.HasFile() && !busy
}

// DisplayName returns the selected file name cut to width terminal cells.
func (m *Manager) DisplayName(width int) string {
	f := m.Current()
	if f == nil {
		return NoFileLabel
	}
	return TruncateName(f.Name, width)
}

// TruncateName cuts name to width terminal cells. A non-positive width leaves it intact.
func TruncateName(name string, width int) string {
	if width <= 0 {
		return name
	}
	return runewidth.Truncate(name, width, "…")
}
