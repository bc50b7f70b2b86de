package source

// File owns the text of a single loaded source and the precomputed index
// needed to resolve byte offsets to line/column pairs in O(log n).
type File struct {
	ID ID

	// Path is the path the file was loaded from, or a synthetic name for
	// in-memory sources (e.g. "<stdin>", "<test>").
	Path string

	// Content holds the raw bytes of the file, as loaded. No encoding
	// transformation is performed beyond what was present on disk.
	Content []byte

	// LineOffsets[i] is the byte offset immediately following the i-th
	// newline. LineOffsets[0] is always 0. Strictly increasing.
	LineOffsets []uint32
}

// buildLineOffsets computes the line-start index for content in one
// forward pass: LineOffsets[0] == 0, and LineOffsets[i] for i>0 is the
// offset immediately after the i-th '\n'.
func buildLineOffsets(content []byte) []uint32 {
	offsets := make([]uint32, 1, 16)
	offsets[0] = 0
	for i, b := range content {
		if b == '\n' {
			offsets = append(offsets, uint32(i+1))
		}
	}
	return offsets
}
