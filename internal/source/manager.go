package source

import (
	"os"
	"strings"

	"fortio.org/safecast"
)

// Manager owns every File loaded for the lifetime of a compilation and
// hands out dense, monotonically increasing IDs. Spans and token text views
// produced elsewhere reference a Manager's buffers and must not outlive it.
type Manager struct {
	files []File
}

// NewManager creates an empty Manager.
func NewManager() *Manager {
	return &Manager{}
}

// Load reads path from disk and registers it as a new source. It never
// panics or throws: on any I/O failure it returns InvalidID.
func (m *Manager) Load(path string) ID {
	content, err := os.ReadFile(path) //nolint:gosec // path is operator-supplied, not attacker data
	if err != nil {
		return InvalidID
	}
	return m.add(path, content)
}

// LoadString registers in-memory content under the given synthetic name
// (useful for tests and REPL-style callers).
func (m *Manager) LoadString(name string, content string) ID {
	return m.add(name, []byte(content))
}

func (m *Manager) add(path string, content []byte) ID {
	n, err := safecast.Conv[uint32](len(m.files))
	if err != nil {
		return InvalidID
	}
	id := ID(n)
	m.files = append(m.files, File{
		ID:          id,
		Path:        path,
		Content:     content,
		LineOffsets: buildLineOffsets(content),
	})
	return id
}

// Get returns the file metadata for id, or nil if id is out of range.
func (m *Manager) Get(id ID) *File {
	if !id.Valid() || int(id) >= len(m.files) {
		return nil
	}
	return &m.files[id]
}

// OffsetToLineCol resolves a byte offset to a 1-indexed (line, col) pair by
// binary-searching LineOffsets for the greatest entry <= offset. Returns
// (0, 0) if id is invalid or offset is out of range.
func (m *Manager) OffsetToLineCol(id ID, offset uint32) LineCol {
	f := m.Get(id)
	if f == nil {
		return LineCol{}
	}
	contentLen, err := safecast.Conv[uint32](len(f.Content))
	if err != nil || offset > contentLen {
		return LineCol{}
	}

	lo, hi := 0, len(f.LineOffsets)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if f.LineOffsets[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	lineStart := f.LineOffsets[lo]
	return LineCol{Line: uint32(lo) + 1, Col: offset - lineStart + 1}
}

// GetLine returns the n-th (1-indexed) line of id's content, with a
// trailing "\r\n" or "\n" stripped. Returns "" if n is out of range.
func (m *Manager) GetLine(id ID, n uint32) string {
	f := m.Get(id)
	if f == nil || n == 0 || int(n) > len(f.LineOffsets) {
		return ""
	}
	start := f.LineOffsets[n-1]
	var end uint32
	if int(n) < len(f.LineOffsets) {
		end = f.LineOffsets[n]
	} else {
		end = uint32(len(f.Content))
	}
	if start > uint32(len(f.Content)) {
		return ""
	}
	if end > uint32(len(f.Content)) {
		end = uint32(len(f.Content))
	}
	line := string(f.Content[start:end])
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line
}

// GetText returns the substring covered by span, or "" if span refers to a
// different file or extends past the end of the content.
func (m *Manager) GetText(span Span) string {
	f := m.Get(span.File)
	if f == nil {
		return ""
	}
	if span.End > uint32(len(f.Content)) || span.Start > span.End {
		return ""
	}
	return string(f.Content[span.Start:span.End])
}
